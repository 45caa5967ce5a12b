package favorites

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// likedClubsSuffix names the one well-known storage key per profile. The
// file holds a JSON array of club-identifier strings, nothing else. No
// versioning, no migration.
const likedClubsSuffix = ".likedClubs.json"

// FileStore keeps one JSON file per profile under a directory. Access is
// serialized per process; writers in other processes race with last write
// wins, same as multiple tabs sharing browser storage.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(profileID string) string {
	return filepath.Join(s.dir, profileID+likedClubsSuffix)
}

func (s *FileStore) read(profileID string) []string {
	data, err := os.ReadFile(s.path(profileID))
	if err != nil {
		// Absent state is the lazy-initialization case, not an error.
		if !os.IsNotExist(err) {
			log.Printf("favorites: read %s: %v", profileID, err)
		}
		return []string{}
	}

	var liked []string
	if err := json.Unmarshal(data, &liked); err != nil {
		log.Printf("favorites: malformed state for %s: %v", profileID, err)
		return []string{}
	}
	if liked == nil {
		liked = []string{}
	}
	return liked
}

func (s *FileStore) write(profileID string, liked []string) {
	data, err := json.Marshal(liked)
	if err != nil {
		log.Printf("favorites: encode %s: %v", profileID, err)
		return
	}
	if err := os.WriteFile(s.path(profileID), data, 0o644); err != nil {
		log.Printf("favorites: write %s: %v", profileID, err)
	}
}

func (s *FileStore) Liked(profileID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(profileID)
}

func (s *FileStore) Toggle(profileID, clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := s.read(profileID)
	for i, id := range liked {
		if id == clubID {
			s.write(profileID, append(liked[:i], liked[i+1:]...))
			return false
		}
	}

	s.write(profileID, append(liked, clubID))
	return true
}

func (s *FileStore) IsLiked(profileID, clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.read(profileID) {
		if id == clubID {
			return true
		}
	}
	return false
}

package favorites

import "sync"

// MemoryStore is the in-memory Store: the null-object implementation for
// contexts with no durable storage, and the default in tests.
type MemoryStore struct {
	mu    sync.Mutex
	liked map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{liked: make(map[string][]string)}
}

func (s *MemoryStore) Liked(profileID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.liked[profileID]))
	copy(out, s.liked[profileID])
	return out
}

func (s *MemoryStore) Toggle(profileID, clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := s.liked[profileID]
	for i, id := range liked {
		if id == clubID {
			s.liked[profileID] = append(liked[:i], liked[i+1:]...)
			return false
		}
	}

	s.liked[profileID] = append(liked, clubID)
	return true
}

func (s *MemoryStore) IsLiked(profileID, clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.liked[profileID] {
		if id == clubID {
			return true
		}
	}
	return false
}

// Package favorites tracks which clubs a browser profile has liked. The
// set lives entirely on this side of the system: there is no server-of-record
// table, no cross-device sync, and no merge between concurrent writers;
// last write wins. Missing or malformed state always reads as "no favorites".
package favorites

// Store is the capability interface for the liked-clubs set. Implementations
// are chosen at composition time: FileStore for durable per-profile storage,
// MemoryStore for tests and non-interactive contexts.
type Store interface {
	// Liked returns the club IDs the profile has liked. Never nil.
	Liked(profileID string) []string

	// Toggle flips membership of clubID and persists the set. It reports
	// the new state: true when the club is now liked.
	Toggle(profileID, clubID string) bool

	// IsLiked reports membership without mutating stored state.
	IsLiked(profileID, clubID string) bool
}

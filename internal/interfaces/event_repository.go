// internal/interfaces/event_repository.go
package interfaces

import (
	"context"
	"time"

	"clubnights/internal/models"
)

// EventRepository defines read access to the events table. All listings
// return events joined with their club, ordered by date ascending and then
// by club ID ascending to break ties between same-instant events.
type EventRepository interface {
	// DistinctDatesFrom returns the distinct calendar dates, ascending, of
	// events at or after the given instant. Truncation to a calendar date
	// happens in the named timezone.
	DistinctDatesFrom(ctx context.Context, from time.Time, timeZone string) ([]time.Time, error)

	// ListBetween returns events whose date lies in [start, end).
	ListBetween(ctx context.Context, start, end time.Time) ([]*models.Event, error)

	// ListForClubsBetween returns events for the given club IDs whose date
	// lies in [start, end). Callers are expected to short-circuit an empty
	// ID set before reaching the repository.
	ListForClubsBetween(ctx context.Context, clubIDs []int, start, end time.Time) ([]*models.Event, error)
}

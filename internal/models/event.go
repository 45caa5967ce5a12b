// internal/models/event.go
package models

import "time"

// Event is a row in the events table joined with its owning club.
// Date and CreatedAt are timezone-aware instants; day bucketing truncates
// Date in the configured display timezone, never the stored value.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	ClubID      int       `json:"club_id"`
	DJ          string    `json:"dj"`
	Price       string    `json:"price"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	EventURL    *string   `json:"event_url,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Identifier  *string   `json:"identifier,omitempty"`
	Club        *Club     `json:"club,omitempty"`
}

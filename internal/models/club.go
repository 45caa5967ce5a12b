// internal/models/club.go
package models

// Club is a row in the clubs table. Clubs are maintained out-of-band and
// are read-only for this service.
type Club struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// internal/interfaces/club_repository.go
package interfaces

import (
	"context"

	"clubnights/internal/models"
)

// ClubRepository defines read access to the clubs table.
type ClubRepository interface {
	// List returns every club ordered by name ascending.
	List(ctx context.Context) ([]*models.Club, error)
	GetByID(ctx context.Context, id int) (*models.Club, error)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubnights/internal/interfaces"
	"clubnights/internal/models"
)

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) interfaces.ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) List(ctx context.Context) ([]*models.Club, error) {
	query := `SELECT id, name, location, description, website
			  FROM clubs ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.Location, &club.Description, &club.Website); err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		clubs = append(clubs, &club)
	}

	return clubs, rows.Err()
}

func (r *clubRepository) GetByID(ctx context.Context, id int) (*models.Club, error) {
	query := `SELECT id, name, location, description, website
			  FROM clubs WHERE id = $1`

	var club models.Club
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&club.ID, &club.Name, &club.Location, &club.Description, &club.Website,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get club by id: %w", err)
	}

	return &club, nil
}

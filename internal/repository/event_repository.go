package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"clubnights/internal/interfaces"
	"clubnights/internal/models"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) interfaces.EventRepository {
	return &eventRepository{db: db}
}

// eventColumns is the join projection shared by every event listing. The
// club row is embedded so a single query answers "event with its club".
const eventColumns = `
	e.id, e.title, e.club_id, e.dj, e.price, e.date, e.description, e.tags,
	e.created_at, e.event_url, e.image_url, e.identifier,
	c.id, c.name, c.location, c.description, c.website
`

func (r *eventRepository) DistinctDatesFrom(ctx context.Context, from time.Time, timeZone string) ([]time.Time, error) {
	// date is timestamptz; AT TIME ZONE shifts it into the display zone
	// before ::date truncates, so day buckets follow local midnights.
	query := `SELECT DISTINCT (date AT TIME ZONE $1)::date AS day
			  FROM events WHERE date >= $2
			  ORDER BY day ASC`

	rows, err := r.db.QueryContext(ctx, query, timeZone, from)
	if err != nil {
		return nil, fmt.Errorf("distinct event dates: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan event date: %w", err)
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

func (r *eventRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  JOIN clubs c ON c.id = e.club_id
			  WHERE e.date >= $1 AND e.date < $2
			  ORDER BY e.date ASC, e.club_id ASC`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list events between: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *eventRepository) ListForClubsBetween(ctx context.Context, clubIDs []int, start, end time.Time) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  JOIN clubs c ON c.id = e.club_id
			  WHERE e.club_id = ANY($1) AND e.date >= $2 AND e.date < $3
			  ORDER BY e.date ASC, e.club_id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(clubIDs), start, end)
	if err != nil {
		return nil, fmt.Errorf("list events for clubs: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		var event models.Event
		var club models.Club
		if err := rows.Scan(
			&event.ID, &event.Title, &event.ClubID, &event.DJ, &event.Price,
			&event.Date, &event.Description, pq.Array(&event.Tags),
			&event.CreatedAt, &event.EventURL, &event.ImageURL, &event.Identifier,
			&club.ID, &club.Name, &club.Location, &club.Description, &club.Website,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.Club = &club
		events = append(events, &event)
	}

	return events, rows.Err()
}

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var eventRows = []string{
	"id", "title", "club_id", "dj", "price", "date", "description", "tags",
	"created_at", "event_url", "image_url", "identifier",
	"c_id", "c_name", "c_location", "c_description", "c_website",
}

func TestDistinctDatesFrom(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT (date AT TIME ZONE $1)::date AS day`)).
		WithArgs("Europe/Berlin", from).
		WillReturnRows(sqlmock.NewRows([]string{"day"}).
			AddRow(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
			AddRow(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))

	repo := NewEventRepository(db)
	days, err := repo.DistinctDatesFrom(context.Background(), from, "Europe/Berlin")
	if err != nil {
		t.Fatalf("DistinctDatesFrom: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if got := days[0].Format("2006-01-02"); got != "2024-06-01" {
		t.Fatalf("expected 2024-06-01 first, got %s", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListBetweenJoinsClub(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	start := time.Date(2024, 5, 31, 22, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	eventDate := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN clubs c ON c.id = e.club_id`)).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(eventRows).
			AddRow(10, "Open Air", 1, "DJ A", "15€", eventDate, nil, []byte("{techno,open-air}"),
				eventDate, nil, nil, nil,
				1, "Odonien", "Köln", nil, nil))

	repo := NewEventRepository(db)
	events, err := repo.ListBetween(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListBetween: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	event := events[0]
	if event.ID != 10 || event.ClubID != 1 {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Club == nil || event.Club.Name != "Odonien" {
		t.Fatalf("expected embedded club, got %+v", event.Club)
	}
	if len(event.Tags) != 2 || event.Tags[0] != "techno" {
		t.Fatalf("unexpected tags %v", event.Tags)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListForClubsBetweenFiltersBySet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.club_id = ANY($1)`)).
		WithArgs(pq.Array([]int{1}), start, end).
		WillReturnRows(sqlmock.NewRows(eventRows))

	repo := NewEventRepository(db)
	events, err := repo.ListForClubsBetween(context.Background(), []int{1}, start, end)
	if err != nil {
		t.Fatalf("ListForClubsBetween: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListBetweenWrapsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM events e").WillReturnError(context.DeadlineExceeded)

	repo := NewEventRepository(db)
	_, err = repo.ListBetween(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
}

// Package query is the read side of the service: date-bucketed event
// listings and club listings over the repositories. The listings are
// fail-soft at this boundary: a backing-store error is logged and recorded
// on the result, and callers receive an empty slice instead of a fault.
// The recorded error keeps "no data" and "query failed" distinguishable
// even though both look empty on the wire.
package query

import (
	"context"
	"log"
	"time"

	"clubnights/internal/interfaces"
	"clubnights/internal/models"
)

// DayFormat is the calendar-date wire format (deep-link parameter included).
const DayFormat = "2006-01-02"

const defaultWindowDays = 14

// DatesResult is a fail-soft list of calendar dates in DayFormat.
type DatesResult struct {
	Dates []string
	Err   error
}

// EventsResult is a fail-soft list of events.
type EventsResult struct {
	Events []*models.Event
	Err    error
}

// ClubsResult is a fail-soft list of clubs.
type ClubsResult struct {
	Clubs []*models.Club
	Err   error
}

// EventGroup is a day bucket of events, used by the recommendations view.
type EventGroup struct {
	Date   string          `json:"date"`
	Events []*models.Event `json:"events"`
}

type Service struct {
	events interfaces.EventRepository
	clubs  interfaces.ClubRepository
	loc    *time.Location

	// WindowDays is the recommendation window length in days.
	WindowDays int
	// Now is injectable for testing; date-boundary behavior depends on it.
	Now func() time.Time
}

func NewService(events interfaces.EventRepository, clubs interfaces.ClubRepository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		events:     events,
		clubs:      clubs,
		loc:        loc,
		WindowDays: defaultWindowDays,
		Now:        time.Now,
	}
}

// Location returns the display timezone used for day bucketing.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) startOfToday() time.Time {
	now := s.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

// UpcomingEventDates returns the distinct calendar dates, ascending, that
// have at least one event today or later. The today-or-later filter is
// applied again here even though the query already constrains it, guarding
// against clock or timezone skew between service and store.
func (s *Service) UpcomingEventDates(ctx context.Context) DatesResult {
	from := s.startOfToday()

	days, err := s.events.DistinctDatesFrom(ctx, from, s.loc.String())
	if err != nil {
		log.Printf("upcoming event dates query failed: %v", err)
		return DatesResult{Dates: []string{}, Err: err}
	}

	today := from.Format(DayFormat)
	dates := make([]string, 0, len(days))
	for _, day := range days {
		d := day.Format(DayFormat)
		// ISO dates compare correctly as strings.
		if d >= today {
			dates = append(dates, d)
		}
	}

	return DatesResult{Dates: dates}
}

// EventsOnDate returns the events whose date-time falls within the given
// calendar day in the display timezone, each joined with its club, ordered
// by date-time and then club ID.
func (s *Service) EventsOnDate(ctx context.Context, day string) EventsResult {
	start, err := time.ParseInLocation(DayFormat, day, s.loc)
	if err != nil {
		log.Printf("events on date: invalid day %q: %v", day, err)
		return EventsResult{Events: []*models.Event{}, Err: err}
	}
	end := start.AddDate(0, 0, 1)

	events, err := s.events.ListBetween(ctx, start, end)
	if err != nil {
		log.Printf("events on date %s query failed: %v", day, err)
		return EventsResult{Events: []*models.Event{}, Err: err}
	}
	if events == nil {
		events = []*models.Event{}
	}

	return EventsResult{Events: events}
}

// EventsForClubs returns the events of the given clubs within [start, end).
// An empty club set returns immediately without touching the store.
func (s *Service) EventsForClubs(ctx context.Context, clubIDs []int, start, end time.Time) EventsResult {
	if len(clubIDs) == 0 {
		return EventsResult{Events: []*models.Event{}}
	}

	events, err := s.events.ListForClubsBetween(ctx, clubIDs, start, end)
	if err != nil {
		log.Printf("events for clubs query failed: %v", err)
		return EventsResult{Events: []*models.Event{}, Err: err}
	}
	if events == nil {
		events = []*models.Event{}
	}

	return EventsResult{Events: events}
}

// RecommendationWindow is [now, now+WindowDays) in the display timezone.
func (s *Service) RecommendationWindow() (time.Time, time.Time) {
	now := s.Now().In(s.loc)
	return now, now.AddDate(0, 0, s.WindowDays)
}

// RecommendedEvents returns the events of the given clubs inside the
// recommendation window.
func (s *Service) RecommendedEvents(ctx context.Context, clubIDs []int) EventsResult {
	start, end := s.RecommendationWindow()
	return s.EventsForClubs(ctx, clubIDs, start, end)
}

// ClubByID returns a single club. Unlike the listings this is not
// fail-soft: a detail view must distinguish a missing club from a failed
// lookup, so the repository error passes through (sql.ErrNoRows included).
func (s *Service) ClubByID(ctx context.Context, id int) (*models.Club, error) {
	return s.clubs.GetByID(ctx, id)
}

// AllClubs returns every club ordered by name.
func (s *Service) AllClubs(ctx context.Context) ClubsResult {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		log.Printf("list clubs query failed: %v", err)
		return ClubsResult{Clubs: []*models.Club{}, Err: err}
	}
	if clubs == nil {
		clubs = []*models.Club{}
	}

	return ClubsResult{Clubs: clubs}
}

// GroupByDay buckets events by calendar day in the display timezone.
// Events are expected in date order, so buckets come out ascending.
func (s *Service) GroupByDay(events []*models.Event) []EventGroup {
	groups := []EventGroup{}
	for _, event := range events {
		day := event.Date.In(s.loc).Format(DayFormat)
		if n := len(groups); n > 0 && groups[n-1].Date == day {
			groups[n-1].Events = append(groups[n-1].Events, event)
			continue
		}
		groups = append(groups, EventGroup{Date: day, Events: []*models.Event{event}})
	}
	return groups
}

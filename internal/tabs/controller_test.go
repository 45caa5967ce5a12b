package tabs

import (
	"context"
	"testing"

	"clubnights/internal/models"
	"clubnights/internal/query"
)

type stubSource struct {
	dates   query.DatesResult
	events  map[string]query.EventsResult
	gates   map[string]chan struct{}
	entered chan string
}

var _ EventSource = (*stubSource)(nil)

func (s *stubSource) UpcomingEventDates(ctx context.Context) query.DatesResult {
	return s.dates
}

func (s *stubSource) EventsOnDate(ctx context.Context, day string) query.EventsResult {
	if s.entered != nil {
		s.entered <- day
	}
	if gate, ok := s.gates[day]; ok {
		<-gate
	}
	return s.events[day]
}

func eventsFor(ids ...int) query.EventsResult {
	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, &models.Event{ID: id})
	}
	return query.EventsResult{Events: events}
}

func TestInitWithNoUpcomingDates(t *testing.T) {
	c := NewController(&stubSource{dates: query.DatesResult{Dates: []string{}}})
	c.Init(context.Background(), "")

	snap := c.Snapshot()
	if snap.State != NoUpcomingEvents {
		t.Fatalf("expected NoUpcomingEvents, got %v", snap.State)
	}
	if len(snap.Dates) != 0 || snap.Selected != "" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestInitSelectsEarliestDateByDefault(t *testing.T) {
	src := &stubSource{
		dates: query.DatesResult{Dates: []string{"2024-06-01", "2024-06-02"}},
		events: map[string]query.EventsResult{
			"2024-06-01": eventsFor(10, 11),
		},
	}
	c := NewController(src)
	c.Init(context.Background(), "")

	snap := c.Snapshot()
	if snap.State != EventsLoaded {
		t.Fatalf("expected EventsLoaded, got %v", snap.State)
	}
	if snap.Selected != "2024-06-01" {
		t.Fatalf("expected earliest date selected, got %s", snap.Selected)
	}
	if len(snap.Events) != 2 || snap.Events[0].ID != 10 {
		t.Fatalf("unexpected events %+v", snap.Events)
	}
}

func TestInitHonorsPreferredDate(t *testing.T) {
	src := &stubSource{
		dates: query.DatesResult{Dates: []string{"2024-06-01", "2024-06-02"}},
		events: map[string]query.EventsResult{
			"2024-06-02": eventsFor(12),
		},
	}
	c := NewController(src)
	c.Init(context.Background(), "2024-06-02")

	snap := c.Snapshot()
	if snap.Selected != "2024-06-02" {
		t.Fatalf("expected deep-linked date selected, got %s", snap.Selected)
	}
	if len(snap.Events) != 1 || snap.Events[0].ID != 12 {
		t.Fatalf("unexpected events %+v", snap.Events)
	}
}

func TestInitIgnoresUnknownPreferredDate(t *testing.T) {
	src := &stubSource{
		dates: query.DatesResult{Dates: []string{"2024-06-01"}},
		events: map[string]query.EventsResult{
			"2024-06-01": eventsFor(10),
		},
	}
	c := NewController(src)
	c.Init(context.Background(), "2024-07-15")

	if snap := c.Snapshot(); snap.Selected != "2024-06-01" {
		t.Fatalf("expected fallback to earliest, got %s", snap.Selected)
	}
}

func TestSelectRejectsUnknownDate(t *testing.T) {
	src := &stubSource{
		dates: query.DatesResult{Dates: []string{"2024-06-01"}},
		events: map[string]query.EventsResult{
			"2024-06-01": eventsFor(10),
		},
	}
	c := NewController(src)
	c.Init(context.Background(), "")

	if c.Select(context.Background(), "2024-07-15") {
		t.Fatal("expected unknown date to be rejected")
	}
	if snap := c.Snapshot(); snap.Selected != "2024-06-01" || snap.State != EventsLoaded {
		t.Fatalf("selection clobbered by rejected date: %+v", snap)
	}
}

// Two selection loads race; the one started later must win even when the
// earlier one finishes last.
func TestStaleLoadDoesNotClobberNewerSelection(t *testing.T) {
	gateA := make(chan struct{})
	gateB := make(chan struct{})
	src := &stubSource{
		dates: query.DatesResult{Dates: []string{"2024-06-01", "2024-06-02", "2024-06-03"}},
		events: map[string]query.EventsResult{
			"2024-06-01": eventsFor(10),
			"2024-06-02": eventsFor(20),
			"2024-06-03": eventsFor(30),
		},
	}
	c := NewController(src)
	c.Init(context.Background(), "")

	src.entered = make(chan string, 2)
	src.gates = map[string]chan struct{}{
		"2024-06-02": gateA,
		"2024-06-03": gateB,
	}

	doneA := make(chan struct{})
	doneB := make(chan struct{})
	go func() {
		defer close(doneA)
		c.Select(context.Background(), "2024-06-02")
	}()
	<-src.entered
	go func() {
		defer close(doneB)
		c.Select(context.Background(), "2024-06-03")
	}()
	<-src.entered

	// The newer load resolves first and is applied.
	close(gateB)
	<-doneB
	// The stale load resolves afterwards and must be dropped.
	close(gateA)
	<-doneA

	snap := c.Snapshot()
	if snap.Selected != "2024-06-03" {
		t.Fatalf("expected newest selection kept, got %s", snap.Selected)
	}
	if snap.State != EventsLoaded {
		t.Fatalf("expected EventsLoaded, got %v", snap.State)
	}
	if len(snap.Events) != 1 || snap.Events[0].ID != 30 {
		t.Fatalf("stale load clobbered events: %+v", snap.Events)
	}
}

func TestStateStrings(t *testing.T) {
	if Uninitialized.String() != "uninitialized" || NoUpcomingEvents.String() != "no_upcoming_events" {
		t.Fatal("unexpected state names")
	}
}

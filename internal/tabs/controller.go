// Package tabs drives the date-tabbed event list: it derives the upcoming
// day buckets, tracks the selected date, and loads that day's events. One
// Controller serves one view instance.
package tabs

import (
	"context"
	"sync"

	"clubnights/internal/models"
	"clubnights/internal/query"
)

// EventSource is the slice of the query layer the controller needs.
// *query.Service satisfies it.
type EventSource interface {
	UpcomingEventDates(ctx context.Context) query.DatesResult
	EventsOnDate(ctx context.Context, day string) query.EventsResult
}

type State int

const (
	Uninitialized State = iota
	DatesLoading
	DatesLoaded
	EventsLoading
	EventsLoaded
	// NoUpcomingEvents is a distinct terminal state, not an empty date list:
	// the view must be able to tell "nothing scheduled" apart from a list
	// that merely has not loaded yet.
	NoUpcomingEvents
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case DatesLoading:
		return "dates_loading"
	case DatesLoaded:
		return "dates_loaded"
	case EventsLoading:
		return "events_loading"
	case EventsLoaded:
		return "events_loaded"
	case NoUpcomingEvents:
		return "no_upcoming_events"
	}
	return "unknown"
}

// Snapshot is a point-in-time copy of the controller state.
type Snapshot struct {
	State    State
	Dates    []string
	Selected string
	Events   []*models.Event
}

type Controller struct {
	src EventSource

	mu       sync.Mutex
	state    State
	dates    []string
	selected string
	events   []*models.Event
	// seq is bumped on every selection change; a load completion whose seq
	// no longer matches is stale and must not clobber a newer selection.
	seq uint64
}

func NewController(src EventSource) *Controller {
	return &Controller{src: src, state: Uninitialized}
}

// Init loads the upcoming dates and selects the initial one: the preferred
// date (deep link) if it is among the loaded dates, else the earliest. With
// no upcoming dates the controller lands in NoUpcomingEvents.
func (c *Controller) Init(ctx context.Context, preferred string) {
	c.mu.Lock()
	c.state = DatesLoading
	c.mu.Unlock()

	res := c.src.UpcomingEventDates(ctx)

	c.mu.Lock()
	if len(res.Dates) == 0 {
		c.state = NoUpcomingEvents
		c.dates = []string{}
		c.mu.Unlock()
		return
	}
	c.dates = res.Dates
	c.state = DatesLoaded
	c.mu.Unlock()

	selected := res.Dates[0]
	for _, d := range res.Dates {
		if d == preferred {
			selected = preferred
			break
		}
	}
	c.Select(ctx, selected)
}

// Select changes the selected date and loads its events. A date not among
// the loaded ones is ignored and Select reports false. The selection is the
// canonical value the deep-link parameter is synced from.
func (c *Controller) Select(ctx context.Context, day string) bool {
	c.mu.Lock()
	if !c.hasDate(day) {
		c.mu.Unlock()
		return false
	}
	c.seq++
	seq := c.seq
	c.selected = day
	c.state = EventsLoading
	c.mu.Unlock()

	res := c.src.EventsOnDate(ctx, day)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer selection started while this load was in flight.
		return true
	}
	c.events = res.Events
	c.state = EventsLoaded
	return true
}

func (c *Controller) hasDate(day string) bool {
	for _, d := range c.dates {
		if d == day {
			return true
		}
	}
	return false
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:    c.state,
		Dates:    make([]string, len(c.dates)),
		Selected: c.selected,
		Events:   make([]*models.Event, len(c.events)),
	}
	copy(snap.Dates, c.dates)
	copy(snap.Events, c.events)
	return snap
}

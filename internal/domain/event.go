package domain

import (
	"context"
	"strings"
)

// Room is one bookable space from the fixed enumeration.
type Room string

const (
	RoomDayCare      Room = "DayCare"
	RoomDemo         Room = "Demo Room"
	RoomKindergarten Room = "Kindergarten"
	RoomNursery      Room = "Nursery"
	RoomPrimary      Room = "Primary"

	// RoomAll is a wildcard: an event tagged with it is visible under every
	// room filter, and a filter containing it matches every event.
	RoomAll Room = "All rooms"
)

// DefaultRooms returns the built-in room enumeration, in display order.
func DefaultRooms() []Room {
	return []Room{RoomDayCare, RoomDemo, RoomKindergarten, RoomNursery, RoomPrimary, RoomAll}
}

// Event represents one scheduled booking on the weekly calendar
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Rooms       []Room    `json:"rooms"`
	Date        Date      `json:"date"`
	Start       TimeOfDay `json:"start_time"`
	End         TimeOfDay `json:"end_time"`
	Description string    `json:"description"`
}

// TimeRange returns the event's start and end formatted for display,
// e.g. "9am - 10:30am".
func (e *Event) TimeRange() string {
	return FormatTimeRange(e.Start, e.End)
}

// MatchesFilter reports whether the event is visible under the given room
// filter. An empty filter means no filter is selected and matches everything.
// RoomAll is a wildcard on both sides.
func (e *Event) MatchesFilter(filter []Room) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == RoomAll {
			return true
		}
		for _, r := range e.Rooms {
			if r == RoomAll || r == f {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the event so callers can mutate it freely.
func (e *Event) Clone() *Event {
	out := *e
	out.Rooms = append([]Room(nil), e.Rooms...)
	return &out
}

// Candidate is an unvalidated, not-yet-stored event payload produced by the
// editor. The store assigns the ID on create.
type Candidate struct {
	Title       string
	Rooms       []Room
	Date        Date
	Start       TimeOfDay
	End         TimeOfDay
	Description string
}

// Patch describes a partial update to an event. Nil fields keep the existing
// value; a non-nil Rooms replaces the whole set.
type Patch struct {
	Title       *string
	Rooms       []Room
	Date        *Date
	Start       *TimeOfDay
	End         *TimeOfDay
	Description *string
}

// NormalizeRooms converts the editor's room-selection output into a Room set.
// Each value may itself be a comma-joined list (the legacy select control
// emits both shapes). Whitespace is trimmed, empties dropped, and duplicates
// removed while preserving first-seen order.
func NormalizeRooms(values []string) []Room {
	var out []Room
	seen := make(map[Room]struct{})
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			name := Room(strings.TrimSpace(part))
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	Replace(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date Date) ([]*Event, error)
}

// ScheduleService defines the business logic for the weekly calendar
type ScheduleService interface {
	CreateEvent(ctx context.Context, c Candidate) (*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, p Patch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	EventsOnDate(ctx context.Context, date Date, filter []Room) ([]*Event, error)
	WeekOf(d Date) Date
	WeekWindow(d Date) [7]Date
	Rooms() []Room
}

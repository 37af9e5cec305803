package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRooms(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []Room
	}{
		{"plain list", []string{"Nursery", "Primary"}, []Room{RoomNursery, RoomPrimary}},
		{"comma-joined string", []string{"Nursery, Primary"}, []Room{RoomNursery, RoomPrimary}},
		{"mixed shapes", []string{"DayCare", "Nursery,Primary"}, []Room{RoomDayCare, RoomNursery, RoomPrimary}},
		{"duplicates dropped", []string{"Nursery", "Nursery, Nursery"}, []Room{RoomNursery}},
		{"whitespace and empties", []string{" Nursery ", "", " , "}, []Room{RoomNursery}},
		{"nil input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRooms(tt.in))
		})
	}
}

func TestEventMatchesFilter(t *testing.T) {
	nursery := &Event{Rooms: []Room{RoomNursery}}
	both := &Event{Rooms: []Room{RoomNursery, RoomPrimary}}
	everywhere := &Event{Rooms: []Room{RoomAll}}

	tests := []struct {
		name   string
		event  *Event
		filter []Room
		want   bool
	}{
		{"empty filter matches", nursery, nil, true},
		{"matching room", nursery, []Room{RoomNursery}, true},
		{"non-matching room", nursery, []Room{RoomPrimary}, false},
		{"intersection suffices", both, []Room{RoomPrimary}, true},
		{"all-rooms tag matches any filter", everywhere, []Room{RoomKindergarten}, true},
		{"all-rooms filter matches any event", nursery, []Room{RoomAll}, true},
		{"multi-room filter", nursery, []Room{RoomDemo, RoomNursery}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.MatchesFilter(tt.filter))
		})
	}
}

func TestEventClone(t *testing.T) {
	orig := &Event{
		ID:    "ev-1",
		Title: "Staff Meeting",
		Rooms: []Room{RoomPrimary},
		Date:  Date{2024, time.March, 4},
	}
	clone := orig.Clone()
	clone.Title = "Changed"
	clone.Rooms[0] = RoomNursery

	assert.Equal(t, "Staff Meeting", orig.Title)
	assert.Equal(t, []Room{RoomPrimary}, orig.Rooms)
}

func TestEventTimeRange(t *testing.T) {
	e := &Event{Start: TimeOfDay{9, 0}, End: TimeOfDay{10, 30}}
	assert.Equal(t, "9am - 10:30am", e.TimeRange())
}

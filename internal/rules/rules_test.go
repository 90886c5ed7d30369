package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallplan/hallplan/pkg/model"
)

func TestFitsSlotUniqueness(t *testing.T) {
	sessions := []*model.Session{
		{ID: "a", Group: "D1", Slot: "Lecture 1"},
		{ID: "b", Group: "D1", Slot: "Lecture 2"},
		{ID: "c", Group: "D2", Slot: "Lecture 1"},
	}

	tests := []struct {
		name    string
		group   string
		slot    model.Slot
		exclude model.SessionID
		want    bool
	}{
		{name: "taken slot rejected", group: "D1", slot: "Lecture 1", want: false},
		{name: "free slot accepted", group: "D1", slot: "Lecture 3", want: true},
		{name: "other group unaffected", group: "D2", slot: "Lecture 2", want: true},
		{name: "excluded session ignored", group: "D1", slot: "Lecture 1", exclude: "a", want: true},
		{name: "exclusion is per session", group: "D1", slot: "Lecture 1", exclude: "b", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsSlotUniqueness(sessions, tt.group, tt.slot, tt.exclude))
		})
	}
}

func TestFitsRoomAvailability(t *testing.T) {
	room := model.NewRoom(model.RoomID{}, 30)
	room.MarkOccupied("Lecture 1", "a")

	assert.True(t, FitsRoomAvailability(room, "Lecture 2", ""))
	assert.False(t, FitsRoomAvailability(room, "Lecture 1", ""))
	assert.True(t, FitsRoomAvailability(room, "Lecture 1", "a"))
	assert.False(t, FitsRoomAvailability(room, "Lecture 1", "b"))
}

func TestPredicatesDoNotMutate(t *testing.T) {
	room := model.NewRoom(model.RoomID{}, 30)
	room.MarkOccupied("Lecture 1", "a")

	FitsRoomAvailability(room, "Lecture 1", "a")

	occupant, ok := room.Occupant("Lecture 1")
	assert.True(t, ok)
	assert.Equal(t, model.SessionID("a"), occupant)
}

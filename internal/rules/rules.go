// Package rules holds the pure constraint predicates shared by the
// session store and the allocator. Predicates never mutate state.
package rules

import "github.com/hallplan/hallplan/pkg/model"

// FitsSlotUniqueness checks that group has no session in slot yet.
// The session identified by exclude is ignored, so an edit does not
// collide with itself. Pass an empty id to exclude nothing.
func FitsSlotUniqueness(sessions []*model.Session, group string, slot model.Slot, exclude model.SessionID) bool {
	for _, s := range sessions {
		if s.ID == exclude {
			continue
		}
		if s.Group == group && s.Slot == slot {
			return false
		}
	}
	return true
}

// FitsRoomAvailability checks that room is free for slot, treating
// occupancy held by the session identified by exclude as free.
func FitsRoomAvailability(room *model.Room, slot model.Slot, exclude model.SessionID) bool {
	occupant, taken := room.Occupant(slot)
	if !taken {
		return true
	}
	return exclude != "" && occupant == exclude
}

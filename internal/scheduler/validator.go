package scheduler

import (
	"fmt"

	"github.com/hallplan/hallplan/internal/store"
)

// Validate checks the store for unassigned sessions and invariant
// violations. Returns false and a report for invalid schedules.
func Validate(st *store.Store) (bool, string) {
	var message string
	var valid bool = true
	var allAssigned bool = true
	var hasSlotCollision bool = false
	var hasRoomCollision bool = false

	sessions := st.Sessions()

	unassignedCount := 0
	for _, s := range sessions {
		if !s.Assigned() {
			unassignedCount++
		}
	}
	if unassignedCount > 0 {
		valid = false
		allAssigned = false
		message = fmt.Sprintf("- There are %d unassigned sessions:\n", unassignedCount)
		for _, s := range sessions {
			if !s.Assigned() {
				message += fmt.Sprintf("    %s (%s) - %s\n", s.Subject, s.Group, s.Slot)
			}
		}
	}

	groupSlots := make(map[string]bool)
	for _, s := range sessions {
		key := s.Group + "|" + string(s.Slot)
		if groupSlots[key] {
			valid = false
			hasSlotCollision = true
			message += fmt.Sprintf("- Group %s has multiple sessions in %s\n", s.Group, s.Slot)
		} else {
			groupSlots[key] = true
		}
	}

	roomSlots := make(map[string]bool)
	for _, s := range sessions {
		if s.Room == nil {
			continue
		}
		key := s.Room.ID.String() + "|" + string(s.Slot)
		if roomSlots[key] {
			valid = false
			hasRoomCollision = true
			message += fmt.Sprintf("- Room %s assigned multiple times for %s\n", s.Room.ID, s.Slot)
		} else {
			roomSlots[key] = true
		}
	}

	if hasRoomCollision {
		message = "[FAIL]: Room collision check.\n" + message
	} else {
		message = "[  OK]: Room collision check.\n" + message
	}
	if hasSlotCollision {
		message = "[FAIL]: Slot uniqueness check.\n" + message
	} else {
		message = "[  OK]: Slot uniqueness check.\n" + message
	}
	if !allAssigned {
		message = "[FAIL]: Session has room check.\n" + message
	} else {
		message = "[  OK]: Session has room check.\n" + message
	}

	return valid, message
}

package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySchedule   = errors.New("no sessions to allocate")
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySubject    = errors.New("subject must not be empty")
	ErrUnknownGroup    = errors.New("unknown group")
	ErrUnknownSlot     = errors.New("unknown time slot")
)

// DuplicateSlotError reports that a group already has a session in
// the requested slot.
type DuplicateSlotError struct {
	Group string
	Slot  Slot
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("%s for %s already exists", e.Slot, e.Group)
}

// RoomConflictError reports that a room is already occupied for a
// slot by a different session.
type RoomConflictError struct {
	Room RoomID
	Slot Slot
}

func (e *RoomConflictError) Error() string {
	return fmt.Sprintf("%s is already occupied for %s", e.Room, e.Slot)
}

// NoRoomAvailableError reports that no free room exists for a
// session's slot during allocation.
type NoRoomAvailableError struct {
	Group string
	Slot  Slot
}

func (e *NoRoomAvailableError) Error() string {
	return fmt.Sprintf("not enough available rooms for %s in %s", e.Slot, e.Group)
}

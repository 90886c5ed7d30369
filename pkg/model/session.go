package model

import "github.com/google/uuid"

// SessionID uniquely identifies a session for its whole lifetime.
type SessionID string

// NewSessionID generates a fresh session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Session is a scheduled lecture instance: one subject taught to one
// group in one slot, optionally bound to a room. A nil Room means the
// session is unassigned and eligible for automatic allocation.
type Session struct {
	ID      SessionID
	Subject string
	Group   string
	Slot    Slot
	Room    *Room
	// Pinned is set when the room was chosen by the operator rather
	// than the allocator. Pinned bindings survive re-allocation.
	Pinned bool
}

// Assigned checks if the session currently holds a room.
func (s *Session) Assigned() bool {
	return s.Room != nil
}

// Package store holds the room registry and the session store. Both
// are plain injected objects: everything that mutates scheduling
// state goes through a Store instance, there is no package state.
package store

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hallplan/hallplan/internal/rules"
	"github.com/hallplan/hallplan/pkg/model"
)

// Store owns session lifetime and keeps room occupancy in step with
// session bindings. Mutating operations validate every constraint
// before touching anything, so a failed call leaves the store
// unchanged. Callers sharing a Store across goroutines must
// serialize mutations themselves.
type Store struct {
	registry *Registry
	slots    model.Slots
	groups   []string

	sessions []*model.Session
	byID     map[model.SessionID]*model.Session
}

// New creates an empty store over the given registry. slots is the
// enumerated slot set; groups is the enumerated group set, or nil to
// accept any non-empty group name.
func New(registry *Registry, slots model.Slots, groups []string) *Store {
	return &Store{
		registry: registry,
		slots:    slots,
		groups:   groups,
		byID:     make(map[model.SessionID]*model.Session),
	}
}

// Registry returns the room registry backing this store.
func (st *Store) Registry() *Registry {
	return st.registry
}

// Slots returns the enumerated slot set.
func (st *Store) Slots() model.Slots {
	return st.slots
}

// Sessions returns the sessions in insertion order. The slice is a
// copy; the sessions are shared.
func (st *Store) Sessions() []*model.Session {
	out := make([]*model.Session, len(st.sessions))
	copy(out, st.sessions)
	return out
}

// Get looks a session up by id.
func (st *Store) Get(id model.SessionID) (*model.Session, bool) {
	s, ok := st.byID[id]
	return s, ok
}

// Add creates a session. room may be nil for an auto-allocatable
// session; a non-nil room pins the session to it.
func (st *Store) Add(subject, group string, slot model.Slot, room *model.Room) (*model.Session, error) {
	subject = strings.TrimSpace(subject)
	if err := st.validate(subject, group, slot, room, ""); err != nil {
		return nil, err
	}

	s := &model.Session{
		ID:      model.NewSessionID(),
		Subject: subject,
		Group:   group,
		Slot:    slot,
	}
	if room != nil {
		room.MarkOccupied(slot, s.ID)
		s.Room = room
		s.Pinned = true
	}
	st.sessions = append(st.sessions, s)
	st.byID[s.ID] = s
	log.Debug().Str("group", group).Str("slot", string(slot)).Bool("pinned", s.Pinned).Msg("session added")
	return s, nil
}

// Edit replaces a session's fields. All constraints are re-checked
// with the session itself excluded; on success the old room binding
// is released and the new one applied, as one step. A nil room
// unpins and unassigns the session.
func (st *Store) Edit(id model.SessionID, subject, group string, slot model.Slot, room *model.Room) (*model.Session, error) {
	s, ok := st.byID[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	subject = strings.TrimSpace(subject)
	if err := st.validate(subject, group, slot, room, id); err != nil {
		return nil, err
	}

	if s.Room != nil {
		s.Room.MarkFree(s.Slot)
	}
	s.Subject = subject
	s.Group = group
	s.Slot = slot
	if room != nil {
		room.MarkOccupied(slot, s.ID)
		s.Room = room
		s.Pinned = true
	} else {
		s.Room = nil
		s.Pinned = false
	}
	log.Debug().Str("group", group).Str("slot", string(slot)).Msg("session edited")
	return s, nil
}

// Remove deletes a session and releases its room binding. Removing
// an unknown id is a no-op.
func (st *Store) Remove(id model.SessionID) {
	s, ok := st.byID[id]
	if !ok {
		return
	}
	if s.Room != nil {
		s.Room.MarkFree(s.Slot)
	}
	delete(st.byID, id)
	for i, cur := range st.sessions {
		if cur.ID == id {
			st.sessions = append(st.sessions[:i], st.sessions[i+1:]...)
			break
		}
	}
	log.Debug().Str("group", s.Group).Str("slot", string(s.Slot)).Msg("session removed")
}

// Reset clears every session and every room's occupancy.
func (st *Store) Reset() {
	st.sessions = nil
	st.byID = make(map[model.SessionID]*model.Session)
	st.registry.Reset()
	log.Debug().Msg("store reset")
}

func (st *Store) validate(subject, group string, slot model.Slot, room *model.Room, exclude model.SessionID) error {
	if subject == "" {
		return model.ErrEmptySubject
	}
	if !st.knownGroup(group) {
		return model.ErrUnknownGroup
	}
	if !st.slots.Contains(slot) {
		return model.ErrUnknownSlot
	}
	if !rules.FitsSlotUniqueness(st.sessions, group, slot, exclude) {
		return &model.DuplicateSlotError{Group: group, Slot: slot}
	}
	if room != nil && !rules.FitsRoomAvailability(room, slot, exclude) {
		return &model.RoomConflictError{Room: room.ID, Slot: slot}
	}
	return nil
}

func (st *Store) knownGroup(group string) bool {
	if group == "" {
		return false
	}
	if len(st.groups) == 0 {
		return true
	}
	for _, g := range st.groups {
		if g == group {
			return true
		}
	}
	return false
}

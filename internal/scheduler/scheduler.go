// Package scheduler implements the allocation pass that binds
// unassigned sessions to rooms, and the post-run validator.
package scheduler

import (
	"github.com/rs/zerolog/log"

	"github.com/hallplan/hallplan/internal/rules"
	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

// Allocate assigns a room to every session lacking one and builds the
// per-group itineraries. The pass is greedy and deterministic: groups
// in first-appearance order, sessions in slot order, each candidate
// room picked to minimize floor distance from the group's previous
// room. Sessions that cannot be placed are collected as conflicts and
// the rest of the run continues.
//
// Rooms bound by an earlier run but not pinned by the operator are
// released first, so each run starts from the store's current pinned
// occupancy only.
func Allocate(st *store.Store) (*model.AllocationResult, error) {
	sessions := st.Sessions()
	if len(sessions) == 0 {
		return nil, model.ErrEmptySchedule
	}

	releaseUnpinned(sessions)

	res := &model.AllocationResult{}
	for _, group := range groupOrder(sessions) {
		ordered := sessionsOfGroup(sessions, group, st.Slots())
		itinerary := model.Itinerary{Group: group}
		var last *model.Room

		for i, s := range ordered {
			seq := i + 1

			var room *model.Room
			if s.Pinned && s.Room != nil {
				if !rules.FitsRoomAvailability(s.Room, s.Slot, s.ID) {
					res.Conflicts = append(res.Conflicts, model.Conflict{
						Session: s,
						Err:     &model.RoomConflictError{Room: s.Room.ID, Slot: s.Slot},
					})
					continue
				}
				room = s.Room
			} else {
				candidates := freeRooms(st.Registry(), s.Slot)
				if len(candidates) == 0 {
					res.Conflicts = append(res.Conflicts, model.Conflict{
						Session: s,
						Err:     &model.NoRoomAvailableError{Group: group, Slot: s.Slot},
					})
					continue
				}
				room = nearestByFloor(candidates, last)
			}

			room.MarkOccupied(s.Slot, s.ID)
			s.Room = room
			last = room
			itinerary.Entries = append(itinerary.Entries, model.ItineraryEntry{
				Session:  s,
				Room:     room.ID,
				Sequence: seq,
			})
			res.Bindings = append(res.Bindings, s)
		}

		res.Itineraries = append(res.Itineraries, itinerary)
	}

	log.Info().
		Int("assigned", res.Assigned()).
		Int("skipped", res.Skipped()).
		Int("groups", len(res.Itineraries)).
		Msg("allocation finished")
	return res, nil
}

func releaseUnpinned(sessions []*model.Session) {
	for _, s := range sessions {
		if s.Room != nil && !s.Pinned {
			s.Room.MarkFree(s.Slot)
			s.Room = nil
		}
	}
}

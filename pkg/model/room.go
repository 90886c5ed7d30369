package model

import (
	"fmt"
	"sort"
)

// RoomID locates a room inside the building: floor index and room
// index within the floor, both zero-based.
type RoomID struct {
	Floor int `json:"floor"`
	Index int `json:"index"`
}

func (id RoomID) String() string {
	return fmt.Sprintf("Floor %d, Room %d", id.Floor+1, id.Index+1)
}

// Room is a bookable physical space with a fixed capacity. Occupancy
// is tracked per slot along with the session holding it.
type Room struct {
	ID       RoomID
	Capacity int
	occupied map[Slot]SessionID
}

// NewRoom creates a room with empty occupancy.
func NewRoom(id RoomID, capacity int) *Room {
	return &Room{
		ID:       id,
		Capacity: capacity,
		occupied: make(map[Slot]SessionID),
	}
}

// IsFree checks if the room is unoccupied for the given slot.
func (r *Room) IsFree(slot Slot) bool {
	_, taken := r.occupied[slot]
	return !taken
}

// Occupant returns the session holding the given slot, if any.
func (r *Room) Occupant(slot Slot) (SessionID, bool) {
	id, ok := r.occupied[slot]
	return id, ok
}

// MarkOccupied books the slot for a session. Re-marking an already
// booked slot overwrites the occupant; marking the same occupant
// twice is a no-op.
func (r *Room) MarkOccupied(slot Slot, session SessionID) {
	r.occupied[slot] = session
}

// MarkFree releases the slot. Freeing a free slot is a no-op.
func (r *Room) MarkFree(slot Slot) {
	delete(r.occupied, slot)
}

// OccupiedSlots returns the booked slots in lexicographic order.
func (r *Room) OccupiedSlots() []Slot {
	out := make([]Slot, 0, len(r.occupied))
	for s := range r.occupied {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClearOccupancy releases every slot.
func (r *Room) ClearOccupancy() {
	r.occupied = make(map[Slot]SessionID)
}

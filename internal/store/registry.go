package store

import (
	"math/rand"

	"github.com/hallplan/hallplan/pkg/model"
)

// CapacityRule decides the capacity of each room at construction.
type CapacityRule func(id model.RoomID) int

// UniformCapacity gives every room the same capacity.
func UniformCapacity(n int) CapacityRule {
	return func(model.RoomID) int { return n }
}

// RandomCapacity draws capacities from [min, max). The seed makes the
// building reproducible across restarts.
func RandomCapacity(min, max int, seed int64) CapacityRule {
	rng := rand.New(rand.NewSource(seed))
	return func(model.RoomID) int { return min + rng.Intn(max-min) }
}

// Registry is the fixed set of bookable rooms, built once at startup.
// Room order is construction order: floor by floor, room by room.
type Registry struct {
	rooms []*model.Room
	byID  map[model.RoomID]*model.Room

	floors        int
	roomsPerFloor int
}

// NewRegistry builds floors × roomsPerFloor rooms with capacities
// from the given rule.
func NewRegistry(floors, roomsPerFloor int, capacity CapacityRule) *Registry {
	r := &Registry{
		byID:          make(map[model.RoomID]*model.Room, floors*roomsPerFloor),
		floors:        floors,
		roomsPerFloor: roomsPerFloor,
	}
	for floor := 0; floor < floors; floor++ {
		for idx := 0; idx < roomsPerFloor; idx++ {
			id := model.RoomID{Floor: floor, Index: idx}
			room := model.NewRoom(id, capacity(id))
			r.rooms = append(r.rooms, room)
			r.byID[id] = room
		}
	}
	return r
}

// Rooms returns all rooms in registry order.
func (r *Registry) Rooms() []*model.Room {
	return r.rooms
}

// RoomAt returns the room at the given floor and index, or nil when
// out of range.
func (r *Registry) RoomAt(floor, index int) *model.Room {
	return r.byID[model.RoomID{Floor: floor, Index: index}]
}

// Floors returns the floor count of the building.
func (r *Registry) Floors() int {
	return r.floors
}

// RoomsPerFloor returns how many rooms each floor holds.
func (r *Registry) RoomsPerFloor() int {
	return r.roomsPerFloor
}

// Reset releases every room's occupancy.
func (r *Registry) Reset() {
	for _, room := range r.rooms {
		room.ClearOccupancy()
	}
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallplan/hallplan/pkg/model"
)

func TestNewRegistryLayout(t *testing.T) {
	reg := NewRegistry(5, 4, UniformCapacity(30))

	rooms := reg.Rooms()
	require.Len(t, rooms, 20)
	assert.Equal(t, 5, reg.Floors())
	assert.Equal(t, 4, reg.RoomsPerFloor())

	// registry order is floor by floor, room by room
	assert.Equal(t, model.RoomID{Floor: 0, Index: 0}, rooms[0].ID)
	assert.Equal(t, model.RoomID{Floor: 0, Index: 3}, rooms[3].ID)
	assert.Equal(t, model.RoomID{Floor: 1, Index: 0}, rooms[4].ID)
	assert.Equal(t, model.RoomID{Floor: 4, Index: 3}, rooms[19].ID)
}

func TestRegistryRoomAt(t *testing.T) {
	reg := NewRegistry(2, 2, UniformCapacity(25))

	room := reg.RoomAt(1, 1)
	require.NotNil(t, room)
	assert.Equal(t, model.RoomID{Floor: 1, Index: 1}, room.ID)

	assert.Nil(t, reg.RoomAt(2, 0))
	assert.Nil(t, reg.RoomAt(0, 2))
	assert.Nil(t, reg.RoomAt(-1, 0))
}

func TestRandomCapacityRangeAndDeterminism(t *testing.T) {
	regA := NewRegistry(5, 4, RandomCapacity(20, 50, 7))
	regB := NewRegistry(5, 4, RandomCapacity(20, 50, 7))

	for i, room := range regA.Rooms() {
		assert.GreaterOrEqual(t, room.Capacity, 20)
		assert.Less(t, room.Capacity, 50)
		assert.Equal(t, regB.Rooms()[i].Capacity, room.Capacity)
	}
}

func TestRegistryReset(t *testing.T) {
	reg := NewRegistry(2, 2, UniformCapacity(30))
	reg.RoomAt(0, 0).MarkOccupied("Lecture 1", "a")
	reg.RoomAt(1, 1).MarkOccupied("Lecture 2", "b")

	reg.Reset()

	for _, room := range reg.Rooms() {
		assert.Empty(t, room.OccupiedSlots())
	}
}

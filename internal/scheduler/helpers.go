package scheduler

import (
	"sort"

	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

// groupOrder lists groups by first appearance in the session list.
func groupOrder(sessions []*model.Session) []string {
	seen := make(map[string]bool)
	var order []string
	for _, s := range sessions {
		if !seen[s.Group] {
			seen[s.Group] = true
			order = append(order, s.Group)
		}
	}
	return order
}

// sessionsOfGroup returns the group's sessions sorted by slot.
func sessionsOfGroup(sessions []*model.Session, group string, slots model.Slots) []*model.Session {
	var out []*model.Session
	for _, s := range sessions {
		if s.Group == group {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return slots.Less(out[i].Slot, out[j].Slot)
	})
	return out
}

// freeRooms returns the rooms free for slot, in registry order.
func freeRooms(reg *store.Registry, slot model.Slot) []*model.Room {
	var out []*model.Room
	for _, r := range reg.Rooms() {
		if r.IsFree(slot) {
			out = append(out, r)
		}
	}
	return out
}

// nearestByFloor picks the candidate closest to last by floor
// distance. Ties keep the earlier candidate, so with no previous
// room the first candidate in registry order wins.
func nearestByFloor(candidates []*model.Room, last *model.Room) *model.Room {
	best := candidates[0]
	if last == nil {
		return best
	}
	for _, c := range candidates[1:] {
		if absInt(c.ID.Floor-last.ID.Floor) < absInt(best.ID.Floor-last.ID.Floor) {
			best = c
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

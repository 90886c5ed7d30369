package model

import "slices"

// Slot is one enumerated time period, e.g. "Lecture 1".
type Slot string

// Slots is the ordered set of slots a schedule runs over. Order in the
// slice is chronological order.
type Slots []Slot

// DefaultSlots returns the standard five lecture periods.
func DefaultSlots() Slots {
	return Slots{"Lecture 1", "Lecture 2", "Lecture 3", "Lecture 4", "Lecture 5"}
}

// SlotsFromLabels converts configured labels into a slot set.
func SlotsFromLabels(labels []string) Slots {
	s := make(Slots, 0, len(labels))
	for _, l := range labels {
		s = append(s, Slot(l))
	}
	return s
}

// Contains reports whether sl is a member of the set.
func (s Slots) Contains(sl Slot) bool {
	return slices.Contains(s, sl)
}

// Index returns the chronological position of sl, or -1 if sl is not
// a member of the set.
func (s Slots) Index(sl Slot) int {
	return slices.Index(s, sl)
}

// Less orders two slots chronologically. Slots outside the set sort
// after members, lexicographically.
func (s Slots) Less(a, b Slot) bool {
	ia, ib := s.Index(a), s.Index(b)
	if ia == -1 && ib == -1 {
		return a < b
	}
	if ia == -1 || ib == -1 {
		return ib == -1
	}
	return ia < ib
}

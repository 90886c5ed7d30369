package model

// ItineraryEntry is one stop in a group's visit sequence. Sequence is
// the 1-based position of the session within the group's slot-ordered
// session list; a skipped session leaves a gap.
type ItineraryEntry struct {
	Session  *Session
	Room     RoomID
	Sequence int
}

// Itinerary is the ordered sequence of rooms one group visits across
// its slots. Consecutive entries form the path segments drawn by the
// presentation layer.
type Itinerary struct {
	Group   string
	Entries []ItineraryEntry
}

// Legs returns the consecutive room pairs of the itinerary.
func (it Itinerary) Legs() [][2]RoomID {
	if len(it.Entries) < 2 {
		return nil
	}
	legs := make([][2]RoomID, 0, len(it.Entries)-1)
	for i := 0; i < len(it.Entries)-1; i++ {
		legs = append(legs, [2]RoomID{it.Entries[i].Room, it.Entries[i+1].Room})
	}
	return legs
}

// Conflict records a session the allocator had to skip and why.
type Conflict struct {
	Session *Session
	Err     error
}

// AllocationResult is the outcome of one allocation run.
type AllocationResult struct {
	// Bindings lists every session holding a room after the run, in
	// group and slot order.
	Bindings []*Session
	// Itineraries holds one entry per group, ordered by the group's
	// first appearance in the store.
	Itineraries []Itinerary
	// Conflicts lists skipped sessions with their reasons.
	Conflicts []Conflict
}

// Assigned returns the number of sessions bound to a room.
func (r *AllocationResult) Assigned() int {
	return len(r.Bindings)
}

// Skipped returns the number of sessions left unassigned.
func (r *AllocationResult) Skipped() int {
	return len(r.Conflicts)
}

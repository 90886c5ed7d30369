package csvio

import (
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

// TimetableCSVRow is one assigned session in the exported timetable.
type TimetableCSVRow struct {
	Group    string `csv:"group"`
	Slot     string `csv:"slot"`
	Subject  string `csv:"subject"`
	Floor    int    `csv:"floor"`
	Room     int    `csv:"room"`
	Sequence int    `csv:"sequence"`
}

// ExportTimetable formats the store's current bindings into timetable
// rows and writes them to the CSV file at the given path.
func ExportTimetable(st *store.Store, path string) error {
	rows := timetableRows(st)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return gocsv.MarshalFile(&rows, out)
}

// ExportTimetableString formats the store's current bindings into
// timetable rows and returns them as a CSV string.
func ExportTimetableString(st *store.Store) (string, error) {
	rows := timetableRows(st)
	return gocsv.MarshalString(&rows)
}

// timetableRows lists assigned sessions group by group in slot order.
// Sequence counts every session of the group, so a session left
// unassigned shows up as a gap in the numbering.
func timetableRows(st *store.Store) []*TimetableCSVRow {
	sessions := st.Sessions()
	slots := st.Slots()

	seen := make(map[string]bool)
	var groups []string
	for _, s := range sessions {
		if !seen[s.Group] {
			seen[s.Group] = true
			groups = append(groups, s.Group)
		}
	}

	rows := []*TimetableCSVRow{}
	for _, group := range groups {
		var ofGroup []*model.Session
		for _, s := range sessions {
			if s.Group == group {
				ofGroup = append(ofGroup, s)
			}
		}
		sort.SliceStable(ofGroup, func(i, j int) bool {
			return slots.Less(ofGroup[i].Slot, ofGroup[j].Slot)
		})
		for i, s := range ofGroup {
			if !s.Assigned() {
				continue
			}
			rows = append(rows, &TimetableCSVRow{
				Group:    s.Group,
				Slot:     string(s.Slot),
				Subject:  s.Subject,
				Floor:    s.Room.ID.Floor,
				Room:     s.Room.ID.Index,
				Sequence: i + 1,
			})
		}
	}
	return rows
}

// Package csvio loads session rosters from CSV files and exports
// timetables back out.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

// SessionCSV is one roster row. Floor and Room pin the session to a
// room when both are present (zero-based); leave them empty for
// automatic allocation.
type SessionCSV struct {
	Subject string `csv:"subject"`
	Group   string `csv:"group"`
	Slot    string `csv:"slot"`
	Floor   string `csv:"floor"`
	Room    string `csv:"room"`
}

// LoadSessions reads and parses the given csv file for session data
// and adds every valid row to the store. Returns the number of added
// sessions and one error per rejected row.
func LoadSessions(path string, delim rune, st *store.Store) (int, []error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	f, err := os.Open(path)
	if err != nil {
		return 0, []error{fmt.Errorf("open %s: %w", path, err)}
	}
	defer f.Close()

	rows := []*SessionCSV{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, []error{fmt.Errorf("parse %s: %w", path, err)}
	}

	added := 0
	var errs []error
	for i, row := range rows {
		room, err := resolveRoom(st.Registry(), row.Floor, row.Room)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if _, err := st.Add(row.Subject, row.Group, model.Slot(row.Slot), room); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		added++
	}
	return added, errs
}

func resolveRoom(reg *store.Registry, floorStr, roomStr string) (*model.Room, error) {
	if floorStr == "" && roomStr == "" {
		return nil, nil
	}
	floor, err := strconv.Atoi(floorStr)
	if err != nil {
		return nil, fmt.Errorf("bad floor %q", floorStr)
	}
	index, err := strconv.Atoi(roomStr)
	if err != nil {
		return nil, fmt.Errorf("bad room %q", roomStr)
	}
	room := reg.RoomAt(floor, index)
	if room == nil {
		return nil, fmt.Errorf("no room at floor %d index %d", floor, index)
	}
	return room, nil
}

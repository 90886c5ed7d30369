package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	reg := store.NewRegistry(2, 2, store.UniformCapacity(30))
	return store.New(reg, model.DefaultSlots(), nil)
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSessions(t *testing.T) {
	st := newStore(t)
	path := writeRoster(t, strings.Join([]string{
		"subject,group,slot,floor,room",
		"Math,D1,Lecture 1,,",
		"Physics,D1,Lecture 2,1,0",
		"Chemistry,D2,Lecture 1,,",
	}, "\n"))

	added, errs := LoadSessions(path, ',', st)

	assert.Empty(t, errs)
	assert.Equal(t, 3, added)

	sessions := st.Sessions()
	require.Len(t, sessions, 3)
	assert.Equal(t, "Math", sessions[0].Subject)
	assert.False(t, sessions[0].Pinned)
	assert.True(t, sessions[1].Pinned)
	require.NotNil(t, sessions[1].Room)
	assert.Equal(t, model.RoomID{Floor: 1, Index: 0}, sessions[1].Room.ID)
}

func TestLoadSessionsRejectsBadRows(t *testing.T) {
	st := newStore(t)
	path := writeRoster(t, strings.Join([]string{
		"subject,group,slot,floor,room",
		"Math,D1,Lecture 1,,",
		"Dup,D1,Lecture 1,,",
		"NoSuchRoom,D2,Lecture 1,7,7",
		"BadSlot,D2,Lecture 9,,",
		"Physics,D2,Lecture 1,,",
	}, "\n"))

	added, errs := LoadSessions(path, ',', st)

	assert.Equal(t, 2, added)
	require.Len(t, errs, 3)
	assert.ErrorContains(t, errs[0], "row 2")
	assert.ErrorContains(t, errs[1], "no room at floor 7")
	assert.ErrorContains(t, errs[2], "row 4")
}

func TestLoadSessionsMissingFile(t *testing.T) {
	st := newStore(t)
	added, errs := LoadSessions(filepath.Join(t.TempDir(), "nope.csv"), ',', st)
	assert.Zero(t, added)
	require.Len(t, errs, 1)
}

func TestLoadSessionsSemicolonDelimiter(t *testing.T) {
	st := newStore(t)
	path := writeRoster(t, "subject;group;slot;floor;room\nMath;D1;Lecture 1;0;1\n")

	added, errs := LoadSessions(path, ';', st)
	assert.Empty(t, errs)
	assert.Equal(t, 1, added)
}

func TestExportTimetableString(t *testing.T) {
	st := newStore(t)
	_, err := st.Add("Physics", "D1", "Lecture 2", st.Registry().RoomAt(1, 1))
	require.NoError(t, err)
	_, err = st.Add("Math", "D1", "Lecture 1", st.Registry().RoomAt(0, 0))
	require.NoError(t, err)
	_, err = st.Add("Chemistry", "D2", "Lecture 1", nil) // unassigned, not exported
	require.NoError(t, err)

	out, err := ExportTimetableString(st)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "group,slot,subject,floor,room,sequence", lines[0])
	// slot order inside the group, not insertion order
	assert.Equal(t, "D1,Lecture 1,Math,0,0,1", lines[1])
	assert.Equal(t, "D1,Lecture 2,Physics,1,1,2", lines[2])
}

func TestExportTimetableFile(t *testing.T) {
	st := newStore(t)
	_, err := st.Add("Math", "D1", "Lecture 1", st.Registry().RoomAt(0, 0))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "timetable.csv")
	require.NoError(t, ExportTimetable(st, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "D1,Lecture 1,Math,0,0,1")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Floors)
	assert.Equal(t, 4, cfg.RoomsPerFloor)
	assert.Equal(t, 20, cfg.CapacityMin)
	assert.Equal(t, 50, cfg.CapacityMax)
	assert.Equal(t, 2, cfg.Divisions)
	assert.Equal(t, 3001, cfg.Port)
	assert.Len(t, cfg.Slots, 5)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hallplan.yaml")
	content := "floors: 2\nrooms_per_floor: 3\ndivisions: 4\nslots:\n  - Morning\n  - Afternoon\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Floors)
	assert.Equal(t, 3, cfg.RoomsPerFloor)
	assert.Equal(t, []string{"Morning", "Afternoon"}, cfg.Slots)
	assert.Equal(t, []string{"D1", "D2", "D3", "D4"}, cfg.Groups())
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hallplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("floors: 0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBuildStore(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	st := cfg.BuildStore()
	assert.Len(t, st.Registry().Rooms(), 20)
	assert.Len(t, st.Slots(), 5)

	// groups are enumerated from the division count
	_, err = st.Add("Math", "D3", "Lecture 1", nil)
	assert.Error(t, err)
	_, err = st.Add("Math", "D2", "Lecture 1", nil)
	assert.NoError(t, err)
}

package migration

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/backend/migrations"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add spends index", "add_spends_index"},
		{"Add-Spends-Index", "add_spends_index"},
		{"ADD__SPENDS", "add_spends"},
		{"   padded   ", "padded"},
		{"special!@#$chars", "specialchars"},
		{"_leading", "leading"},
		{"trailing_", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestList(t *testing.T) {
	fsys := fstest.MapFS{
		"000002_add_people.up.sql":   {},
		"000001_init.up.sql":         {},
		"000001_init.down.sql":       {},
		"000002_add_people.down.sql": {},
		"000003_only_up.up.sql":      {},
		"README.md":                  {},
		"notversioned_x.up.sql":      {},
	}

	entries, err := List(fsys)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Version: 1, Name: "init", HasDown: true}, entries[0])
	assert.Equal(t, Entry{Version: 2, Name: "add_people", HasDown: true}, entries[1])
	assert.Equal(t, Entry{Version: 3, Name: "only_up", HasDown: false}, entries[2])
}

func TestList_MissingDirectory(t *testing.T) {
	entries, err := List(os.DirFS(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_EmbeddedSchema(t *testing.T) {
	entries, err := List(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, uint(1), entries[0].Version)
	for _, e := range entries {
		assert.True(t, e.HasDown, "migration %d has no down file", e.Version)
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	first, err := Create(dir, "add spends index", "Speed up dashboard queries")
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.Version)
	assert.Equal(t, filepath.Join(dir, "000001_add_spends_index.up.sql"), first.UpPath)
	assert.Equal(t, filepath.Join(dir, "000001_add_spends_index.down.sql"), first.DownPath)

	up, err := os.ReadFile(first.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add_spends_index")
	assert.Contains(t, string(up), "-- Speed up dashboard queries")

	down, err := os.ReadFile(first.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")

	second, err := Create(dir, "drop legacy", "")
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.Version)

	entries, err := List(os.DirFS(dir))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	_, err := Create(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

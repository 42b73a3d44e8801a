package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slot.json")

	type payload struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	in := payload{Name: "draft", Value: 16}
	require.NoError(t, Save(path, in))

	out, err := Load[payload](path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slot.json")
	require.NoError(t, Save(path, map[string]int{"a": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot.json", entries[0].Name())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[map[string]int](filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.json")
	assert.False(t, Exists(path))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	assert.True(t, Exists(path))
}

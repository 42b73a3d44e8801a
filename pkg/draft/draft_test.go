package draft

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veoboard/pkg/storyboard"
	"veoboard/pkg/utils"
)

func newTestStore(t *testing.T, delay time.Duration) *Store {
	t.Helper()
	s, err := New(t.TempDir(), delay)
	require.NoError(t, err)
	return s
}

func TestSaveDebouncesToLatest(t *testing.T) {
	s := newTestStore(t, 50*time.Millisecond)

	first := storyboard.Template()
	s.Save("board", first)

	second := storyboard.Template()
	second.Metadata.ProjectTitle = "Second Draft"
	s.Save("board", second)

	// Before the quiet period elapses nothing has been written.
	assert.False(t, utils.Exists(s.path("board")))

	require.Eventually(t, func() bool {
		return utils.Exists(s.path("board"))
	}, 2*time.Second, 10*time.Millisecond)

	doc, ok := s.Load("board")
	require.True(t, ok)
	assert.Equal(t, "Second Draft", doc.Metadata.ProjectTitle)
}

func TestSaveSnapshotsTheDocument(t *testing.T) {
	s := newTestStore(t, 20*time.Millisecond)

	doc := storyboard.Template()
	s.Save("board", doc)
	doc.Metadata.ProjectTitle = "Mutated After Save"

	require.Eventually(t, func() bool {
		return utils.Exists(s.path("board"))
	}, 2*time.Second, 10*time.Millisecond)

	loaded, ok := s.Load("board")
	require.True(t, ok)
	assert.Equal(t, "Hair Powder Ad", loaded.Metadata.ProjectTitle)
}

func TestFlushWritesImmediately(t *testing.T) {
	s := newTestStore(t, time.Hour)

	s.Save("board", storyboard.Template())
	assert.False(t, utils.Exists(s.path("board")))

	s.Flush()
	assert.True(t, utils.Exists(s.path("board")))

	_, ok := s.Load("board")
	assert.True(t, ok)
}

func TestLoadMissingSlot(t *testing.T) {
	s := newTestStore(t, time.Hour)

	doc, ok := s.Load("nothing-here")
	assert.Nil(t, doc)
	assert.False(t, ok)
}

func TestLoadDiscardsUnparseableSlot(t *testing.T) {
	s := newTestStore(t, time.Hour)
	path := s.path("board")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc, ok := s.Load("board")
	assert.Nil(t, doc)
	assert.False(t, ok)
	assert.False(t, utils.Exists(path), "corrupt slot must be cleared")
}

func TestLoadDiscardsSchemaIncompatibleSlot(t *testing.T) {
	s := newTestStore(t, time.Hour)

	// Parses as JSON but no longer matches the document schema.
	stale := storyboard.Template()
	stale.Characters = nil
	require.NoError(t, utils.Save(s.path("board"), stale))

	doc, ok := s.Load("board")
	assert.Nil(t, doc)
	assert.False(t, ok)
	assert.False(t, utils.Exists(s.path("board")), "stale slot must be cleared")
}

func TestClearCancelsPendingAndDeletes(t *testing.T) {
	s := newTestStore(t, 30*time.Millisecond)

	s.Save("board", storyboard.Template())
	s.Flush()
	require.True(t, utils.Exists(s.path("board")))

	s.Save("board", storyboard.Template())
	s.Clear("board")

	assert.False(t, utils.Exists(s.path("board")))
	time.Sleep(100 * time.Millisecond)
	assert.False(t, utils.Exists(s.path("board")), "cancelled write must not resurface")

	// Clearing an already-empty slot is fine.
	s.Clear("board")
}

func TestSlotPathStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "board.json"), s.path("board"))
}

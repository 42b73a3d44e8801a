// Package draft persists storyboard documents to durable JSON-file slots.
// Writes are debounced so a burst of edits costs one write, and loads discard
// corrupt or schema-incompatible drafts instead of failing startup.
package draft

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"veoboard/pkg/storyboard"
	"veoboard/pkg/utils"
)

// DefaultDelay is the quiet period a burst of edits must outlast before the
// draft hits disk.
const DefaultDelay = 2 * time.Second

type Store struct {
	dir   string
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingWrite
}

type pendingWrite struct {
	timer *time.Timer
	doc   *storyboard.Storyboard
}

func New(dir string, delay time.Duration) (*Store, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		dir:     dir,
		delay:   delay,
		pending: make(map[string]*pendingWrite),
	}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save schedules a snapshot of doc to be written after the quiet period.
// Calling again for the same key before the period elapses replaces the
// snapshot and restarts the clock, so only the latest state within a burst is
// ever written.
func (s *Store) Save(key string, doc *storyboard.Storyboard) {
	snapshot := doc.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[key]; ok {
		p.doc = snapshot
		p.timer.Reset(s.delay)
		return
	}
	p := &pendingWrite{doc: snapshot}
	p.timer = time.AfterFunc(s.delay, func() { s.flush(key) })
	s.pending[key] = p
}

func (s *Store) flush(key string) {
	s.mu.Lock()
	p, ok := s.pending[key]
	if ok {
		p.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	if err := utils.Save(s.path(key), p.doc); err != nil {
		log.Warn("draft save failed", "key", key, "error", err)
		return
	}
	log.Debug("draft saved", "key", key)
}

// Flush writes every pending draft immediately. Used on shutdown so a burst
// of final edits is not lost to the debounce timer.
func (s *Store) Flush() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.pending))
	for k := range s.pending {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	for _, k := range keys {
		s.flush(k)
	}
}

// Load reads the slot for key. A missing slot returns (nil, false). A slot
// that cannot be decoded, or decodes but fails full validation, is deleted
// and reported absent: a stale draft must never block a session from
// starting.
func (s *Store) Load(key string) (*storyboard.Storyboard, bool) {
	path := s.path(key)
	if !utils.Exists(path) {
		return nil, false
	}

	doc, err := utils.Load[*storyboard.Storyboard](path)
	if err != nil {
		log.Warn("discarding unreadable draft", "key", key, "error", err)
		s.Clear(key)
		return nil, false
	}

	normalized, errs := storyboard.Validate(doc)
	if !errs.Empty() {
		log.Warn("discarding draft that no longer matches the schema", "key", key, "issues", len(errs.Issues()))
		s.Clear(key)
		return nil, false
	}
	return normalized, true
}

// Clear cancels any pending write for key and deletes its slot.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	if p, ok := s.pending[key]; ok {
		p.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("draft delete failed", "key", key, "error", err)
	}
}

// ABOUTME: Draft store for in-progress portfolio documents
// ABOUTME: Badger-backed, debounced, best-effort; a broken draft reads as no draft
package draft

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

// DebounceInterval coalesces bursts of edits into a single write per key.
const DebounceInterval = 300 * time.Millisecond

// Key maps a document identity to its draft key. A document that has no
// server id yet uses the fixed "new" key; two concurrent editors of new
// documents therefore overwrite each other, which is an accepted limitation.
func Key(id *int64) string {
	if id == nil {
		return "pf:draft:new"
	}
	return fmt.Sprintf("pf:draft:%d", *id)
}

// Store persists drafts locally. Writes are debounced per key and
// last-write-wins; every failure path is swallowed because a draft is a
// convenience, never the source of truth.
type Store struct {
	db *badger.DB

	mu       sync.Mutex
	debounce time.Duration
	pending  map[string]*pendingWrite
}

type pendingWrite struct {
	timer *time.Timer
	data  []byte
}

// Open opens (or creates) the draft database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}
	return &Store{db: db, debounce: DebounceInterval, pending: make(map[string]*pendingWrite)}, nil
}

// Close flushes pending writes and closes the database.
func (s *Store) Close() error {
	s.Flush()
	return s.db.Close()
}

// Persist schedules a write of the document under the draft key for id.
// Calls within the debounce window replace the pending payload, so a burst
// of N mutations yields exactly one write holding the last document state.
func (s *Store) Persist(id *int64, doc models.PortfolioData) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	key := Key(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if pw, ok := s.pending[key]; ok {
		pw.data = data
		pw.timer.Reset(s.debounce)
		return
	}
	pw := &pendingWrite{data: data}
	pw.timer = time.AfterFunc(s.debounce, func() { s.commit(key) })
	s.pending[key] = pw
}

func (s *Store) commit(key string) {
	s.mu.Lock()
	pw, ok := s.pending[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	data := pw.data
	s.mu.Unlock()

	// Storage errors (quota, closed db) are deliberately dropped.
	_ = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Flush commits all pending debounced writes immediately.
func (s *Store) Flush() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.pending))
	for key, pw := range s.pending {
		pw.timer.Stop()
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.commit(key)
	}
}

// Load reads the draft for id. Absent or unparsable entries report no
// draft; deserialization problems never reach the caller.
func (s *Store) Load(id *int64) (models.PortfolioData, bool) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(Key(id)))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return models.PortfolioData{}, false
	}

	var doc models.PortfolioData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.PortfolioData{}, false
	}
	return doc, true
}

// Clear removes the draft for id, cancelling any pending write for the
// same key. Called after a confirmed save so a stale draft cannot
// resurrect discarded edits on a later visit.
func (s *Store) Clear(id *int64) {
	key := Key(id)

	s.mu.Lock()
	if pw, ok := s.pending[key]; ok {
		pw.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	_ = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// SetDebounceForTest overrides the debounce window (tests only).
func (s *Store) SetDebounceForTest(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce = d
}

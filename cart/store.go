package cart

import (
	"sync"
	"time"
)

// Store holds one in-memory cart per session. Carts live for the
// process lifetime only and are never written to the database.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	cart    *Cart
	touched time.Time
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// entryLocked returns the session's entry, creating one on first use
// and marking it touched. Callers hold s.mu.
func (s *Store) entryLocked(sessionID string) *entry {
	e, ok := s.entries[sessionID]
	if !ok {
		e = &entry{cart: &Cart{}}
		s.entries[sessionID] = e
	}
	e.touched = time.Now()
	return e
}

// Get returns the cart for the session, creating an empty one on first
// use. The returned cart is not synchronized against other requests:
// handlers go through With and Snapshot; Get is for setup and tests.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entryLocked(sessionID).cart
}

// Drop discards the session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Snapshot returns a detached copy of the session's cart taken under
// the store lock.
func (s *Store) Snapshot(sessionID string) Snapshot {
	var snap Snapshot
	s.With(sessionID, func(c *Cart) {
		snap = c.Snapshot()
	})
	return snap
}

// With runs fn against the session's cart while holding the store lock,
// so handler mutations do not interleave across requests.
func (s *Store) With(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.entryLocked(sessionID).cart)
}

// EvictIdle drops carts untouched for longer than maxIdle and reports
// how many were removed. Sessions expire after a day, so their carts
// do not need to outlive the token.
func (s *Store) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	evicted := 0
	for id, e := range s.entries {
		if e.touched.Before(cutoff) {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

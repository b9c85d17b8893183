// Package memory provides an in-process ports.Store used for tests and
// ephemeral sessions.
package memory

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"spellsheet/internal/ports"
)

// ErrTxDone is returned when a finished transaction is used again
var ErrTxDone = errors.New("transaction already finished")

// Store is a map-backed ports.Store. Values are copied on the way in and out.
type Store struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int

	// FailSet, when set, is returned by every write. It lets tests simulate
	// a store that cannot persist.
	FailSet error
}

var _ ports.Store = (*Store)(nil)

// New returns an empty Store
func New() *Store {
	return &Store{data: map[string][]byte{}}
}

// Get returns a copy of the value stored under key
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set stores a copy of value under key
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet != nil {
		return s.FailSet
	}
	s.data[key] = slices.Clone(value)
	s.writes++
	return nil
}

// BeginTx starts a buffered transaction
func (s *Store) BeginTx() (ports.StoreTx, error) {
	return &tx{store: s, pending: map[string][]byte{}}, nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}

// Writes returns how many keys have been written since creation
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Snapshot returns a copy of all stored values
func (s *Store) Snapshot() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		out[k] = slices.Clone(v)
	}
	return out
}

type tx struct {
	store   *Store
	pending map[string][]byte
	done    bool
}

func (t *tx) Set(key string, value []byte) error {
	if t.done {
		return ErrTxDone
	}
	t.pending[key] = slices.Clone(value)
	return nil
}

func (t *tx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.store.FailSet != nil {
		return t.store.FailSet
	}
	maps.Copy(t.store.data, t.pending)
	t.store.writes += len(t.pending)
	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	return nil
}

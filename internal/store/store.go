package store

import (
	"sync"

	applog "shophood/internal/log"
)

// Snapshotter persists the full state after each transition.
type Snapshotter interface {
	Save(State) error
}

// Store serializes transitions over the application state. Each action runs
// to completion under the mutex, so handlers always observe a state produced
// by a whole transition.
type Store struct {
	mu    sync.Mutex
	state State
	snaps Snapshotter
}

// New installs the initial state. snaps may be nil (no persistence, used in
// tests).
func New(initial State, snaps Snapshotter) *Store {
	return &Store{state: initial, snaps: snaps}
}

// State returns the current state. Callers must treat the contained slices as
// read-only; mutations go through Dispatch.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the action and writes the snapshot synchronously. A failed
// write is logged and swallowed; the in-memory transition always wins.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(a)
}

// Exec runs a check against the current state and applies the returned action
// in one transition, all under the store lock. When fn returns an error the
// state is left untouched and the error is passed through. No other dispatch
// can land between the check and the apply.
func (s *Store) Exec(fn func(State) (Action, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := fn(s.state)
	if err != nil {
		return err
	}
	s.apply(a)
	return nil
}

func (s *Store) apply(a Action) {
	s.state = Apply(s.state, a)
	if s.snaps != nil {
		if err := s.snaps.Save(s.state); err != nil {
			applog.Error(nil, "snapshot.save", err, nil)
		}
	}
}

// Close flushes a final snapshot.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snaps != nil {
		if err := s.snaps.Save(s.state); err != nil {
			applog.Error(nil, "snapshot.flush", err, nil)
		}
	}
}

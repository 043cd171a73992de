// Package store holds the single live GameConfig of a wizard session and the
// ephemeral UI session state. Domain data and UI state are distinct types on
// purpose; only the GameConfig is ever exported.
package store

import (
	"sync"

	"lpm/internal/profile"
)

// Store holds one GameConfig value. Reads return a deep copy and writes
// replace the stored value atomically, so callers never observe a partially
// applied patch and never alias the stored value.
type Store struct {
	mu   sync.Mutex
	cfg  profile.GameConfig
	subs []func(profile.GameConfig)
}

// New creates a store seeded with the given config.
func New(initial profile.GameConfig) *Store {
	return &Store{cfg: initial.Clone()}
}

// Get returns a copy of the current config.
func (s *Store) Get() profile.GameConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Patch applies a pure old-to-new function and replaces the stored value.
// Subscribers are notified with a copy of the new value.
func (s *Store) Patch(fn func(profile.GameConfig) profile.GameConfig) {
	s.mu.Lock()
	s.cfg = fn(s.cfg.Clone())
	next := s.cfg.Clone()
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
}

// PatchErr applies a fallible mutator. On error the stored value is left
// unchanged and no notification fires.
func (s *Store) PatchErr(fn func(profile.GameConfig) (profile.GameConfig, error)) error {
	s.mu.Lock()
	next, err := fn(s.cfg.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.cfg = next
	snapshot := s.cfg.Clone()
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
	return nil
}

// Subscribe registers a callback invoked after every successful patch.
// Derived view values are recomputed from the value it receives, never
// cached elsewhere.
func (s *Store) Subscribe(fn func(profile.GameConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

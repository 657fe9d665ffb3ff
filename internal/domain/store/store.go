// Package store owns the authoritative application state. All mutation goes
// through Dispatch, which serializes transitions and persists each result.
package store

import (
	"context"
	"sync"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/pkg/logger"
)

// Persister writes a state document after every applied transition.
type Persister interface {
	Save(ctx context.Context, state *model.AppState) error
}

// Store is the single-writer state container. Reads are lock-free copies of
// the current pointer; the engine's copy-on-write discipline makes a
// published state safe to read concurrently forever.
type Store struct {
	mu        sync.RWMutex
	state     *model.AppState
	persister Persister
}

// New creates a store around an initial state.
func New(initial *model.AppState, persister Persister) *Store {
	return &Store{state: initial, persister: persister}
}

// Snapshot returns the current state for reading. Callers must not mutate it.
func (s *Store) Snapshot() *model.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a command under the write lock. The returned flag reports
// whether the command changed the state; guard rejections come back applied
// false with the previous state.
//
// Persistence is a side effect after the transition. A failed save leaves the
// new state installed and surfaces a storage error so the client can retry
// or export a backup.
func (s *Store) Dispatch(ctx context.Context, cmd engine.Command) (*model.AppState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := engine.Apply(ctx, s.state, cmd)
	if next == s.state {
		return s.state, false, nil
	}
	s.state = next

	if s.persister != nil {
		if err := s.persister.Save(ctx, next); err != nil {
			logger.Error(ctx, "state persist failed", "command", cmd.Name(), "error", err)
			return next, true, apperror.NewStorage(err)
		}
	}
	return next, true, nil
}

// Package snapshot persists the application state as a single JSON document
// on local storage and implements backup export/import on the same format.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"pharmos/internal/domain/model"
	"pharmos/pkg/logger"
)

// Store reads and writes the state document at a fixed path.
type Store struct {
	path string

	// saves are serialized; the dispatcher already runs one at a time but
	// seed tooling may write concurrently with a running server.
	mu sync.Mutex
}

// NewStore creates a snapshot store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state document. A missing file yields the seed state; a
// corrupt file is preserved on disk and the seed state is returned, matching
// the recovery behavior of the original data file handling.
func (s *Store) Load(ctx context.Context) (*model.AppState, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info(ctx, "no state document found, starting from seed", "path", s.path)
		return SeedState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state document: %w", err)
	}

	state, err := Decode(raw)
	if err != nil {
		logger.Warn(ctx, "state document is not parseable, starting from seed",
			"path", s.path, "error", err)
		return SeedState(), nil
	}
	EnsureCore(state)
	return state, nil
}

// Save atomically replaces the state document. Write to a temp file in the
// same directory, fsync, rename.
func (s *Store) Save(ctx context.Context, state *model.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync state document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state document: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace state document: %w", err)
	}
	return nil
}

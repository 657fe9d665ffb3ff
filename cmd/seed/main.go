// Package main provides a CLI tool that writes a demo state document.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pharmos/internal/infrastructure/snapshot"
	"pharmos/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	statePath := os.Getenv("STATE_PATH")
	if statePath == "" {
		statePath = "data/state.json"
	}

	if _, err := os.Stat(statePath); err == nil && os.Getenv("SEED_FORCE") != "true" {
		log.Fatalw("state document already exists, set SEED_FORCE=true to overwrite",
			"path", statePath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalw("failed to stat state document", "path", statePath, "error", err)
	}

	state := snapshot.SeedState()

	store := snapshot.NewStore(statePath)
	if err := store.Save(ctx, state); err != nil {
		log.Fatalw("failed to write state document", "path", statePath, "error", err)
	}

	log.Infow("seed state written",
		"path", statePath,
		"users", len(state.Users),
		"products", len(state.Products),
		"suppliers", len(state.Suppliers),
		"sales", len(state.Sales),
	)
	log.Info("default credentials: admin / admin")
}

// Package main is the entry point for the pharmos API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/reports"
	"pharmos/internal/domain/store"
	v1 "pharmos/internal/infrastructure/http/v1"
	"pharmos/internal/infrastructure/http/v1/handlers"
	"pharmos/internal/infrastructure/snapshot"
	"pharmos/pkg/logger"
	"pharmos/pkg/numerator"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting pharmos server")

	// --- State document ---
	statePath := getEnv("STATE_PATH", "data/state.json")
	snapshotStore := snapshot.NewStore(statePath)

	initial, err := snapshotStore.Load(ctx)
	if err != nil {
		log.Fatalw("failed to load state document", "path", statePath, "error", err)
	}
	stateStore := store.New(initial, snapshotStore)
	log.Infow("state document loaded",
		"path", statePath,
		"products", len(initial.Products),
		"sales", len(initial.Sales),
		"users", len(initial.Users),
	)

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Numerator Service ---
	// Rebuild sequences from the numbers already on file so generated numbers
	// never collide after a restart.
	sequences := numerator.NewMemoryStore()
	observeDocumentNumbers(sequences, initial)
	numeratorService := numerator.New(sequences)

	// --- Reports Service ---
	reportService := reports.NewService(stateStore)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Store:     stateStore,
		Logger:    log,
		JWT:       jwtService,
		Reports:   reportService,
		Numerator: numeratorService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// observeDocumentNumbers raises numbering sequences past every generated
// invoice number found in the loaded state. Supplier-assigned numbers that
// do not match the generated format are skipped.
func observeDocumentNumbers(seqs *numerator.MemoryStore, state *model.AppState) {
	observe := func(prefix, number string) {
		n := numerator.ParseNumber(number)
		if n <= 0 {
			return
		}
		var year int
		if _, err := fmt.Sscanf(number, prefix+"-%d-", &year); err != nil || year == 0 {
			return
		}
		seqs.Observe(fmt.Sprintf("%s_%d", prefix, year), n)
	}

	for _, p := range state.Purchases {
		observe(handlers.PurchasePrefix, p.InvoiceNumber)
	}
	for _, r := range state.PurchaseReturns {
		observe(handlers.PurchaseReturnPrefix, r.InvoiceNumber)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pharmos/internal/domain/store"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store   *store.Store
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st, started: time.Now()}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information and ledger sizes.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	state := h.store.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"app":            "pharmos",
		"version":        "0.1.0",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"state": map[string]any{
			"products":  len(state.Products),
			"suppliers": len(state.Suppliers),
			"sales":     len(state.Sales),
			"purchases": len(state.Purchases),
			"users":     len(state.Users),
		},
	})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
	"pharmos/internal/infrastructure/http/v1/dto"
	"pharmos/internal/infrastructure/snapshot"
)

// maxBackupSize caps uploaded backup payloads.
const maxBackupSize = 64 << 20

// AdminHandler handles company settings, year-end counts and backups.
type AdminHandler struct {
	*BaseHandler
	store *store.Store
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(base *BaseHandler, st *store.Store) *AdminHandler {
	return &AdminHandler{BaseHandler: base, store: st}
}

// GetCompany returns the pharmacy identity block.
// GET /api/v1/admin/company
func (h *AdminHandler) GetCompany(c *gin.Context) {
	h.OK(c, h.store.Snapshot().CompanyInfo)
}

// UpdateCompany replaces the pharmacy identity block.
// PUT /api/v1/admin/company
func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	var info model.CompanyInfo
	if !h.BindJSON(c, &info) {
		return
	}
	if info.Name == "" {
		h.Error(c, apperror.NewValidation("company name is required"))
		return
	}
	if info.PrinterSettings.Type == "" {
		info.PrinterSettings.Type = model.PrinterA4
	}

	if _, ok := dispatch(c, h.store, engine.UpdateCompanyInfo{Info: info}, "company info was not updated"); !ok {
		return
	}
	h.OK(c, info)
}

// ListAnnualCounts returns year-end inventory archives, newest first.
// GET /api/v1/admin/annual-counts
func (h *AdminHandler) ListAnnualCounts(c *gin.Context) {
	h.OK(c, h.store.Snapshot().AnnualInventoryCounts)
}

// CreateAnnualCount archives every stock position and zeroes them. There is
// no inverse operation.
// POST /api/v1/admin/annual-counts
func (h *AdminHandler) CreateAnnualCount(c *gin.Context) {
	var req dto.AnnualCountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	state, ok := dispatch(c, h.store, engine.PerformAnnualInventoryCount{Notes: req.Notes}, "annual count was not performed")
	if !ok {
		return
	}
	h.OK(c, state.AnnualInventoryCounts[0])
}

// ExportBackup streams a compressed backup of the full state, session user
// stripped.
// GET /api/v1/admin/backup
func (h *AdminHandler) ExportBackup(c *gin.Context) {
	state := h.store.Snapshot()

	c.Header("Content-Type", "application/zstd")
	c.Header("Content-Disposition", `attachment; filename="`+snapshot.BackupFilename(time.Now())+`"`)
	c.Status(http.StatusOK)

	if err := snapshot.Export(c.Writer, state); err != nil {
		// Headers are gone already; all we can do is log through the chain.
		_ = c.Error(apperror.NewInternal(err))
	}
}

// ImportBackup restores state from an uploaded backup, compressed or plain
// JSON. The signed-in session survives the restore.
// POST /api/v1/admin/backup
func (h *AdminHandler) ImportBackup(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBackupSize)

	incoming, err := snapshot.Import(body)
	if err != nil {
		h.Error(c, apperror.NewBusinessRule(apperror.CodeInvalidBackup,
			"backup payload could not be read").WithCause(err))
		return
	}

	_, applied, err := h.store.Dispatch(c.Request.Context(), engine.ReplaceState{State: incoming})
	if err != nil {
		h.Error(c, err)
		return
	}
	if !applied {
		h.Error(c, apperror.NewBusinessRule(apperror.CodeInvalidBackup,
			"backup is missing core collections"))
		return
	}

	h.OK(c, gin.H{
		"restored":  true,
		"products":  len(incoming.Products),
		"sales":     len(incoming.Sales),
		"purchases": len(incoming.Purchases),
		"suppliers": len(incoming.Suppliers),
	})
}

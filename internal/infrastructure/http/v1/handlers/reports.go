package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/reports"
	"pharmos/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles read-only report endpoints.
type ReportsHandler struct {
	*BaseHandler
	reports *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, svc *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, reports: svc}
}

// Dashboard returns the landing page summary.
// GET /api/v1/reports/dashboard
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	h.OK(c, h.reports.Dashboard(c.Request.Context(), time.Now()))
}

// StockValue values the inventory at cost.
// GET /api/v1/reports/stock-value
func (h *ReportsHandler) StockValue(c *gin.Context) {
	h.OK(c, h.reports.StockValue(c.Request.Context()))
}

// SupplierDebts lists suppliers with outstanding balances.
// GET /api/v1/reports/supplier-debts
func (h *ReportsHandler) SupplierDebts(c *gin.Context) {
	h.OK(c, h.reports.SupplierDebts(c.Request.Context()))
}

// Profit nets the period's money flows. Both dates are inclusive.
// GET /api/v1/reports/profit?from=2026-01-01&to=2026-01-31
func (h *ReportsHandler) Profit(c *gin.Context) {
	var q dto.PeriodQuery
	if !h.BindQuery(c, &q) {
		return
	}

	from, err := time.Parse("2006-01-02", q.From)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid from date").WithDetail("from", q.From))
		return
	}
	to, err := time.Parse("2006-01-02", q.To)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid to date").WithDetail("to", q.To))
		return
	}
	if to.Before(from) {
		h.Error(c, apperror.NewValidation("to date precedes from date"))
		return
	}

	h.OK(c, h.reports.Financials(c.Request.Context(), from, to.Add(24*time.Hour)))
}

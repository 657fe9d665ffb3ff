package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// OpeningHandler handles go-live opening stock and opening debt entries.
type OpeningHandler struct {
	*BaseHandler
	store *store.Store
}

// NewOpeningHandler creates a new opening balances handler.
func NewOpeningHandler(base *BaseHandler, st *store.Store) *OpeningHandler {
	return &OpeningHandler{BaseHandler: base, store: st}
}

// ListOpeningStock returns opening stock invoices, newest first.
// GET /api/v1/document/opening-stock
func (h *OpeningHandler) ListOpeningStock(c *gin.Context) {
	h.OK(c, h.store.Snapshot().OpeningStockInvoices)
}

// CreateOpeningStock loads starting inventory. Line metadata overwrites the
// product, last line per product wins.
// POST /api/v1/document/opening-stock
func (h *OpeningHandler) CreateOpeningStock(c *gin.Context) {
	var invoice model.OpeningStockInvoice
	if !h.BindJSON(c, &invoice) {
		return
	}
	ensureID(&invoice.ID)
	ensureDate(&invoice.Date)
	if err := invoice.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	for i, item := range invoice.Items {
		if !productExists(c, state, item.ProductID, i+1) {
			return
		}
	}

	if _, ok := dispatch(c, h.store, engine.AddOpeningStockInvoice{Invoice: invoice}, "opening stock was not posted"); !ok {
		return
	}
	h.Created(c, invoice.ID)
}

// DeleteOpeningStock subtracts the loaded quantities back out. Pricing
// metadata written at load time stays.
// DELETE /api/v1/document/opening-stock/:id
func (h *OpeningHandler) DeleteOpeningStock(c *gin.Context) {
	id := c.Param("id")
	found := false
	for _, inv := range h.store.Snapshot().OpeningStockInvoices {
		if inv.ID == id {
			found = true
			break
		}
	}
	if !found {
		h.Error(c, apperror.NewNotFound("opening stock invoice", id))
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeleteOpeningStockInvoice{InvoiceID: id}, "opening stock was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

// ListOpeningDebt returns opening debt invoices, newest first.
// GET /api/v1/document/opening-debt
func (h *OpeningHandler) ListOpeningDebt(c *gin.Context) {
	h.OK(c, h.store.Snapshot().OpeningDebtInvoices)
}

// CreateOpeningDebt loads pre-existing supplier debt.
// POST /api/v1/document/opening-debt
func (h *OpeningHandler) CreateOpeningDebt(c *gin.Context) {
	var invoice model.OpeningDebtInvoice
	if !h.BindJSON(c, &invoice) {
		return
	}
	ensureID(&invoice.ID)
	ensureDate(&invoice.Date)
	if err := invoice.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	if !supplierExists(c, h.store.Snapshot(), invoice.SupplierID) {
		return
	}

	if _, ok := dispatch(c, h.store, engine.AddOpeningDebtInvoice{Invoice: invoice}, "opening debt was not posted"); !ok {
		return
	}
	h.Created(c, invoice.ID)
}

// DeleteOpeningDebt reverses an opening debt entry.
// DELETE /api/v1/document/opening-debt/:id
func (h *OpeningHandler) DeleteOpeningDebt(c *gin.Context) {
	id := c.Param("id")
	found := false
	for _, inv := range h.store.Snapshot().OpeningDebtInvoices {
		if inv.ID == id {
			found = true
			break
		}
	}
	if !found {
		h.Error(c, apperror.NewNotFound("opening debt invoice", id))
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeleteOpeningDebtInvoice{InvoiceID: id}, "opening debt was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// SalesHandler handles POS sales and sales returns.
type SalesHandler struct {
	*BaseHandler
	store *store.Store
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, st *store.Store) *SalesHandler {
	return &SalesHandler{BaseHandler: base, store: st}
}

// ListSales returns the sales history, newest first.
// GET /api/v1/document/sales
func (h *SalesHandler) ListSales(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Sales)
}

// CreateSale posts a checkout. Sales are append-only; corrections go through
// sales returns.
// POST /api/v1/document/sales
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var sale model.Sale
	if !h.BindJSON(c, &sale) {
		return
	}
	ensureID(&sale.ID)
	ensureDate(&sale.Date)
	if err := sale.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	for i, item := range sale.Items {
		if !productExists(c, state, item.ProductID, i+1) {
			return
		}
	}

	if _, ok := dispatch(c, h.store, engine.AddSale{Sale: sale}, "sale was not posted"); !ok {
		return
	}
	h.Created(c, sale.ID)
}

// ListSalesReturns returns the sales return history, newest first.
// GET /api/v1/document/sales-returns
func (h *SalesHandler) ListSalesReturns(c *gin.Context) {
	h.OK(c, h.store.Snapshot().SalesReturns)
}

// CreateSalesReturn restocks returned goods.
// POST /api/v1/document/sales-returns
func (h *SalesHandler) CreateSalesReturn(c *gin.Context) {
	var ret model.SalesReturn
	if !h.BindJSON(c, &ret) {
		return
	}
	ensureID(&ret.ID)
	ensureDate(&ret.Date)
	if err := ret.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	for i, item := range ret.Items {
		if !productExists(c, state, item.ProductID, i+1) {
			return
		}
	}

	if _, ok := dispatch(c, h.store, engine.AddSalesReturn{Return: ret}, "sales return was not posted"); !ok {
		return
	}
	h.Created(c, ret.ID)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// InventoryHandler handles stock adjustments and stocktakes.
type InventoryHandler struct {
	*BaseHandler
	store *store.Store
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, st *store.Store) *InventoryHandler {
	return &InventoryHandler{BaseHandler: base, store: st}
}

// ListAdjustments returns stock adjustment invoices, newest first.
// GET /api/v1/document/stock-adjustments
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	h.OK(c, h.store.Snapshot().StockAdjustments)
}

// CreateAdjustment writes quantities on or off per line reason. Only
// stocktake gains add stock; every other reason writes off.
// POST /api/v1/document/stock-adjustments
func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var invoice model.StockAdjustmentInvoice
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

	if _, ok := dispatch(c, h.store, engine.AddStockAdjustment{Invoice: invoice}, "adjustment was not posted"); !ok {
		return
	}
	h.Created(c, invoice.ID)
}

// ListStocktakes returns physical counts, newest first.
// GET /api/v1/document/stocktakes
func (h *InventoryHandler) ListStocktakes(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Stocktakes)
}

// CreateStocktake records a count. Nonzero differences spawn a derived
// adjustment invoice in the same transition.
// POST /api/v1/document/stocktakes
func (h *InventoryHandler) CreateStocktake(c *gin.Context) {
	var stocktake model.Stocktake
	if !h.BindJSON(c, &stocktake) {
		return
	}
	ensureID(&stocktake.ID)
	ensureDate(&stocktake.Date)
	if err := stocktake.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	for i, item := range stocktake.Items {
		if !productExists(c, state, item.ProductID, i+1) {
			return
		}
	}

	next, ok := dispatch(c, h.store, engine.AddStocktake{Stocktake: stocktake}, "stocktake was not posted")
	if !ok {
		return
	}

	response := gin.H{"id": stocktake.ID}
	derivedID := engine.DerivedAdjustmentID(stocktake.ID)
	for i := range next.StockAdjustments {
		if next.StockAdjustments[i].ID == derivedID {
			response["adjustmentId"] = derivedID
			break
		}
	}
	h.OK(c, response)
}

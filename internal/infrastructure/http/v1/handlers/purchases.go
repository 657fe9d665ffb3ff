package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
	"pharmos/pkg/numerator"
)

// Number prefixes for generated invoice numbers.
const (
	PurchasePrefix       = "PUR"
	PurchaseReturnPrefix = "PRT"
)

// PurchaseHandler handles supplier invoices and purchase returns.
type PurchaseHandler struct {
	*BaseHandler
	store   *store.Store
	numbers *numerator.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, st *store.Store, numbers *numerator.Service) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, store: st, numbers: numbers}
}

// ensureInvoiceNumber generates a number for documents that arrive without one.
func (h *PurchaseHandler) ensureInvoiceNumber(c *gin.Context, number *string, prefix string) bool {
	if *number != "" {
		return true
	}
	generated, err := h.numbers.Next(c.Request.Context(), prefix)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return false
	}
	*number = generated
	return true
}

// ListPurchases returns the purchase history, newest first.
// GET /api/v1/document/purchases
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Purchases)
}

// GetPurchase returns one purchase by id.
// GET /api/v1/document/purchases/:id
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id := c.Param("id")
	purchase := h.store.Snapshot().FindPurchase(id)
	if purchase == nil {
		h.Error(c, apperror.NewNotFound("purchase", id))
		return
	}
	h.OK(c, purchase)
}

// CreatePurchase posts a supplier invoice: stock rises, pricing metadata is
// overwritten, the supplier balance grows by the amount still due.
// POST /api/v1/document/purchases
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var purchase model.Purchase
	if !h.BindJSON(c, &purchase) {
		return
	}
	ensureID(&purchase.ID)
	ensureDate(&purchase.InvoiceDate)
	if !h.ensureInvoiceNumber(c, &purchase.InvoiceNumber, PurchasePrefix) {
		return
	}
	if err := purchase.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	if !supplierExists(c, h.store.Snapshot(), purchase.SupplierID) {
		return
	}

	if _, ok := dispatch(c, h.store, engine.AddPurchase{Purchase: purchase}, "purchase was not posted"); !ok {
		return
	}
	h.Created(c, purchase.ID)
}

// UpdatePurchase reconciles an edited invoice. Stock and balances move by the
// difference between the old and new documents.
// PUT /api/v1/document/purchases/:id
func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	var purchase model.Purchase
	if !h.BindJSON(c, &purchase) {
		return
	}
	purchase.ID = c.Param("id")
	if err := purchase.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	if state.FindPurchase(purchase.ID) == nil {
		h.Error(c, apperror.NewNotFound("purchase", purchase.ID))
		return
	}
	if !supplierExists(c, state, purchase.SupplierID) {
		return
	}

	if _, ok := dispatch(c, h.store, engine.UpdatePurchase{Purchase: purchase}, "purchase was not updated"); !ok {
		return
	}
	h.OK(c, purchase)
}

// DeletePurchase reverses and removes an invoice.
// DELETE /api/v1/document/purchases/:id
func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	id := c.Param("id")
	if h.store.Snapshot().FindPurchase(id) == nil {
		h.Error(c, apperror.NewNotFound("purchase", id))
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeletePurchase{PurchaseID: id}, "purchase was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

// CorruptPurchase discards an invoice entered in error. Same ledger effects
// as deletion; a separate operation so intent shows in traces and logs.
// POST /api/v1/document/purchases/:id/corrupt
func (h *PurchaseHandler) CorruptPurchase(c *gin.Context) {
	id := c.Param("id")
	if h.store.Snapshot().FindPurchase(id) == nil {
		h.Error(c, apperror.NewNotFound("purchase", id))
		return
	}

	if _, ok := dispatch(c, h.store, engine.CorruptPurchase{PurchaseID: id}, "purchase was not discarded"); !ok {
		return
	}
	h.Success(c, "purchase discarded")
}

// ListPurchaseReturns returns the purchase return history, newest first.
// GET /api/v1/document/purchase-returns
func (h *PurchaseHandler) ListPurchaseReturns(c *gin.Context) {
	h.OK(c, h.store.Snapshot().PurchaseReturns)
}

// CreatePurchaseReturn sends goods back to a supplier.
// POST /api/v1/document/purchase-returns
func (h *PurchaseHandler) CreatePurchaseReturn(c *gin.Context) {
	var ret model.PurchaseReturn
	if !h.BindJSON(c, &ret) {
		return
	}
	ensureID(&ret.ID)
	ensureDate(&ret.ReturnDate)
	if !h.ensureInvoiceNumber(c, &ret.InvoiceNumber, PurchaseReturnPrefix) {
		return
	}
	if err := ret.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	if !supplierExists(c, h.store.Snapshot(), ret.SupplierID) {
		return
	}

	if _, ok := dispatch(c, h.store, engine.AddPurchaseReturn{Return: ret}, "purchase return was not posted"); !ok {
		return
	}
	h.Created(c, ret.ID)
}

// UpdatePurchaseReturn reconciles an edited return via the same delta
// mechanism as purchases, with inverted signs.
// PUT /api/v1/document/purchase-returns/:id
func (h *PurchaseHandler) UpdatePurchaseReturn(c *gin.Context) {
	var ret model.PurchaseReturn
	if !h.BindJSON(c, &ret) {
		return
	}
	ret.ID = c.Param("id")
	if err := ret.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	if !purchaseReturnExists(c, state, ret.ID) {
		return
	}
	if !supplierExists(c, state, ret.SupplierID) {
		return
	}

	if _, ok := dispatch(c, h.store, engine.UpdatePurchaseReturn{Return: ret}, "purchase return was not updated"); !ok {
		return
	}
	h.OK(c, ret)
}

// DeletePurchaseReturn reverses and removes a return.
// DELETE /api/v1/document/purchase-returns/:id
func (h *PurchaseHandler) DeletePurchaseReturn(c *gin.Context) {
	id := c.Param("id")
	if !purchaseReturnExists(c, h.store.Snapshot(), id) {
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeletePurchaseReturn{ReturnID: id}, "purchase return was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

func purchaseReturnExists(c *gin.Context, state *model.AppState, id string) bool {
	for i := range state.PurchaseReturns {
		if state.PurchaseReturns[i].ID == id {
			return true
		}
	}
	_ = c.Error(apperror.NewNotFound("purchase return", id))
	c.Abort()
	return false
}

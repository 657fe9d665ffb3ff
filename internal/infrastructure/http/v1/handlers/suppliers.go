package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// SupplierHandler handles supplier catalog endpoints.
type SupplierHandler struct {
	*BaseHandler
	store *store.Store
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(base *BaseHandler, st *store.Store) *SupplierHandler {
	return &SupplierHandler{BaseHandler: base, store: st}
}

// List returns all suppliers.
// GET /api/v1/catalog/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Suppliers)
}

// Get returns one supplier by id.
// GET /api/v1/catalog/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id := c.Param("id")
	supplier := h.store.Snapshot().FindSupplier(id)
	if supplier == nil {
		h.Error(c, apperror.NewNotFound("supplier", id))
		return
	}
	h.OK(c, supplier)
}

// Create registers a supplier. The id is generated and the balance starts at
// zero; debt only moves through ledger transactions.
// POST /api/v1/catalog/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var supplier model.Supplier
	if !h.BindJSON(c, &supplier) {
		return
	}
	if err := supplier.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}

	state, ok := dispatch(c, h.store, engine.AddSupplier{Supplier: supplier}, "supplier was not added")
	if !ok {
		return
	}
	h.Created(c, state.Suppliers[len(state.Suppliers)-1].ID)
}

// Update replaces a supplier, balance included.
// PUT /api/v1/catalog/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	var supplier model.Supplier
	if !h.BindJSON(c, &supplier) {
		return
	}
	supplier.ID = c.Param("id")
	if err := supplier.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	if h.store.Snapshot().FindSupplier(supplier.ID) == nil {
		h.Error(c, apperror.NewNotFound("supplier", supplier.ID))
		return
	}

	if _, ok := dispatch(c, h.store, engine.UpdateSupplier{Supplier: supplier}, "supplier was not updated"); !ok {
		return
	}
	h.OK(c, supplier)
}

// Delete removes a supplier.
// DELETE /api/v1/catalog/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if h.store.Snapshot().FindSupplier(id) == nil {
		h.Error(c, apperror.NewNotFound("supplier", id))
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeleteSupplier{SupplierID: id}, "supplier was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

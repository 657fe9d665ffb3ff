package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	store *store.Store
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, st *store.Store) *ProductHandler {
	return &ProductHandler{BaseHandler: base, store: st}
}

// List returns all products.
// GET /api/v1/catalog/products
func (h *ProductHandler) List(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Products)
}

// Get returns one product by id.
// GET /api/v1/catalog/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	product := h.store.Snapshot().FindProduct(id)
	if product == nil {
		h.Error(c, apperror.NewNotFound("product", id))
		return
	}
	h.OK(c, product)
}

// Create registers a new product. Products keep their human-assigned code
// when one is supplied.
// POST /api/v1/catalog/products
func (h *ProductHandler) Create(c *gin.Context) {
	var product model.Product
	if !h.BindJSON(c, &product) {
		return
	}
	ensureID(&product.ID)
	if err := product.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	if h.store.Snapshot().FindProduct(product.ID) != nil {
		h.Error(c, apperror.NewDuplicate("product", "id", product.ID))
		return
	}

	if _, ok := dispatch(c, h.store, engine.AddProduct{Product: product}, "product was not added"); !ok {
		return
	}
	h.Created(c, product.ID)
}

// Update replaces a product, stock included.
// PUT /api/v1/catalog/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var product model.Product
	if !h.BindJSON(c, &product) {
		return
	}
	product.ID = c.Param("id")
	if err := product.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	if h.store.Snapshot().FindProduct(product.ID) == nil {
		h.Error(c, apperror.NewNotFound("product", product.ID))
		return
	}

	if _, ok := dispatch(c, h.store, engine.UpdateProduct{Product: product}, "product was not updated"); !ok {
		return
	}
	h.OK(c, product)
}

// Delete removes a product. Historical documents keep referencing it.
// DELETE /api/v1/catalog/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if h.store.Snapshot().FindProduct(id) == nil {
		h.Error(c, apperror.NewNotFound("product", id))
		return
	}

	if _, ok := dispatch(c, h.store, engine.DeleteProduct{ProductID: id}, "product was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

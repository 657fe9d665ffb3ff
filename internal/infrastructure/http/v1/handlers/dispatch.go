package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/core/id"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// dispatch applies a command and registers failures on the gin context.
// A guard rejection surfaces as a 422 with the given reason.
func dispatch(c *gin.Context, st *store.Store, cmd engine.Command, rejectReason string) (*model.AppState, bool) {
	state, applied, err := st.Dispatch(c.Request.Context(), cmd)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return state, false
	}
	if !applied {
		_ = c.Error(apperror.NewNoEffect(rejectReason))
		c.Abort()
		return state, false
	}
	return state, true
}

// ensureID fills a missing document id.
func ensureID(docID *string) {
	if *docID == "" {
		*docID = id.NewString()
	}
}

// ensureDate fills a missing document date with the current timestamp.
func ensureDate(date *string) {
	if *date == "" {
		*date = time.Now().UTC().Format(time.RFC3339)
	}
}

// supplierExists rejects documents referencing an unknown supplier.
func supplierExists(c *gin.Context, state *model.AppState, supplierID string) bool {
	if state.FindSupplier(supplierID) == nil {
		_ = c.Error(apperror.NewNotFound("supplier", supplierID))
		c.Abort()
		return false
	}
	return true
}

// productExists rejects document lines referencing an unknown product.
func productExists(c *gin.Context, state *model.AppState, productID string, lineNo int) bool {
	if state.FindProduct(productID) == nil {
		_ = c.Error(apperror.NewNotFound("product", productID).WithDetail("lineNo", lineNo))
		c.Abort()
		return false
	}
	return true
}

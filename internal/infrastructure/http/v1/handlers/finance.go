package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/core/apperror"
	"pharmos/internal/domain/engine"
	"pharmos/internal/domain/model"
	"pharmos/internal/domain/store"
)

// FinanceHandler handles supplier payments, customer receipts and expenses.
type FinanceHandler struct {
	*BaseHandler
	store *store.Store
}

// NewFinanceHandler creates a new finance handler.
func NewFinanceHandler(base *BaseHandler, st *store.Store) *FinanceHandler {
	return &FinanceHandler{BaseHandler: base, store: st}
}

// --- Supplier payments ---

// ListSupplierPayments returns supplier payments, newest first.
// GET /api/v1/finance/supplier-payments
func (h *FinanceHandler) ListSupplierPayments(c *gin.Context) {
	h.OK(c, h.store.Snapshot().SupplierPayments)
}

// CreateSupplierPayment settles supplier debt. The discount is debt forgiven
// by the supplier and reduces the balance alongside the cash amount.
// POST /api/v1/finance/supplier-payments
func (h *FinanceHandler) CreateSupplierPayment(c *gin.Context) {
	var payment model.SupplierPayment
	if !h.BindJSON(c, &payment) {
		return
	}
	ensureID(&payment.ID)
	ensureDate(&payment.Date)
	if err := payment.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	state := h.store.Snapshot()
	if !supplierExists(c, state, payment.SupplierID) {
		return
	}
	for i, alloc := range payment.InvoicePayments {
		if state.FindPurchase(alloc.InvoiceID) == nil {
			h.Error(c, apperror.NewNotFound("purchase", alloc.InvoiceID).WithDetail("lineNo", i+1))
			return
		}
	}

	if _, ok := dispatch(c, h.store, engine.AddSupplierPayment{Payment: payment}, "payment was not posted"); !ok {
		return
	}
	h.Created(c, payment.ID)
}

// DeleteSupplierPayment reverses and removes a payment.
// DELETE /api/v1/finance/supplier-payments/:id
func (h *FinanceHandler) DeleteSupplierPayment(c *gin.Context) {
	id := c.Param("id")
	if !paymentExists(c, h.store.Snapshot(), id) {
		return
	}
	if _, ok := dispatch(c, h.store, engine.DeleteSupplierPayment{PaymentID: id}, "payment was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

func paymentExists(c *gin.Context, state *model.AppState, id string) bool {
	for i := range state.SupplierPayments {
		if state.SupplierPayments[i].ID == id {
			return true
		}
	}
	_ = c.Error(apperror.NewNotFound("supplier payment", id))
	c.Abort()
	return false
}

// --- Customer receipts ---

// ListCustomerReceipts returns customer receipts, newest first.
// GET /api/v1/finance/customer-receipts
func (h *FinanceHandler) ListCustomerReceipts(c *gin.Context) {
	h.OK(c, h.store.Snapshot().CustomerReceipts)
}

// CreateCustomerReceipt records money received outside a sale.
// POST /api/v1/finance/customer-receipts
func (h *FinanceHandler) CreateCustomerReceipt(c *gin.Context) {
	var receipt model.CustomerReceipt
	if !h.BindJSON(c, &receipt) {
		return
	}
	ensureID(&receipt.ID)
	ensureDate(&receipt.Date)
	if err := receipt.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}

	if _, ok := dispatch(c, h.store, engine.AddCustomerReceipt{Receipt: receipt}, "receipt was not posted"); !ok {
		return
	}
	h.Created(c, receipt.ID)
}

// DeleteCustomerReceipt removes a receipt.
// DELETE /api/v1/finance/customer-receipts/:id
func (h *FinanceHandler) DeleteCustomerReceipt(c *gin.Context) {
	id := c.Param("id")
	found := false
	for _, r := range h.store.Snapshot().CustomerReceipts {
		if r.ID == id {
			found = true
			break
		}
	}
	if !found {
		h.Error(c, apperror.NewNotFound("customer receipt", id))
		return
	}
	if _, ok := dispatch(c, h.store, engine.DeleteCustomerReceipt{ReceiptID: id}, "receipt was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

// --- Expenses ---

// ListExpenses returns expense entries, newest first.
// GET /api/v1/finance/expenses
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Expenses)
}

// CreateExpense records an operating cost.
// POST /api/v1/finance/expenses
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var expense model.Expense
	if !h.BindJSON(c, &expense) {
		return
	}
	ensureID(&expense.ID)
	ensureDate(&expense.Date)
	if err := expense.Validate(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}

	if _, ok := dispatch(c, h.store, engine.AddExpense{Expense: expense}, "expense was not posted"); !ok {
		return
	}
	h.Created(c, expense.ID)
}

// DeleteExpense removes an expense entry.
// DELETE /api/v1/finance/expenses/:id
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	found := false
	for _, e := range h.store.Snapshot().Expenses {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		h.Error(c, apperror.NewNotFound("expense", id))
		return
	}
	if _, ok := dispatch(c, h.store, engine.DeleteExpense{ExpenseID: id}, "expense was not deleted"); !ok {
		return
	}
	h.NoContent(c)
}

// --- Expense categories ---

// ListExpenseCategories returns the category list.
// GET /api/v1/finance/expense-categories
func (h *FinanceHandler) ListExpenseCategories(c *gin.Context) {
	h.OK(c, h.store.Snapshot().ExpenseCategories)
}

// CreateExpenseCategory appends a category.
// POST /api/v1/finance/expense-categories
func (h *FinanceHandler) CreateExpenseCategory(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
	}
	if !h.BindJSON(c, &req) {
		return
	}

	_, applied, err := h.store.Dispatch(c.Request.Context(), engine.AddExpenseCategory{Category: req.Category})
	if err != nil {
		h.Error(c, err)
		return
	}
	if !applied {
		h.Error(c, apperror.NewDuplicate("expense category", "name", req.Category))
		return
	}
	h.Success(c, "category added")
}

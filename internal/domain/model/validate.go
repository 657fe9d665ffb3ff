package model

import (
	"context"

	"pharmos/internal/core/apperror"
)

// Validation runs at the API boundary. The reconciliation engine assumes
// commands are well formed and only applies silent-skip rules for dangling
// references.

// Validate checks a user account.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").
			WithDetail("field", "username")
	}
	switch u.Role {
	case RoleAdmin, RolePharmacist, RoleCashier:
	default:
		return apperror.NewValidation("unknown role").
			WithDetail("field", "role").
			WithDetail("value", string(u.Role))
	}
	return nil
}

// Validate checks a product.
func (p *Product) Validate(ctx context.Context) error {
	if p.ID == "" {
		return apperror.NewValidation("product code is required").
			WithDetail("field", "id")
	}
	if p.Name == "" {
		return apperror.NewValidation("product name is required").
			WithDetail("field", "name")
	}
	if p.CostPrice < 0 || p.PacketSellPrice < 0 || p.StripSellPrice < 0 {
		return apperror.NewValidation("prices must not be negative")
	}
	if p.StripCount < 0 {
		return apperror.NewValidation("strip count must not be negative").
			WithDetail("field", "stripCount")
	}
	return nil
}

// Validate checks a supplier.
func (s *Supplier) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("supplier name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Validate checks a sale document.
func (s *Sale) Validate(ctx context.Context) error {
	if len(s.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range s.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.SellUnit != UnitPacket && item.SellUnit != UnitStrip {
			return apperror.NewValidation("unknown sell unit").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a sales return document.
func (r *SalesReturn) Validate(ctx context.Context) error {
	if len(r.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range r.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a purchase document.
func (p *Purchase) Validate(ctx context.Context) error {
	if p.SupplierID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if len(p.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range p.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Bonus < 0 {
			return apperror.NewValidation("bonus must not be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a purchase return document.
func (r *PurchaseReturn) Validate(ctx context.Context) error {
	if r.SupplierID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if len(r.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range r.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a stock adjustment invoice.
func (a *StockAdjustmentInvoice) Validate(ctx context.Context) error {
	if len(a.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range a.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Reason == "" {
			return apperror.NewValidation("reason is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a stocktake document.
func (s *Stocktake) Validate(ctx context.Context) error {
	if len(s.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range s.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.ActualStock < 0 {
			return apperror.NewValidation("actual stock must not be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a supplier payment.
func (p *SupplierPayment) Validate(ctx context.Context) error {
	if p.SupplierID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if p.Amount <= 0 {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	if p.Discount < 0 {
		return apperror.NewValidation("discount must not be negative").
			WithDetail("field", "discount")
	}
	for i, alloc := range p.InvoicePayments {
		if alloc.InvoiceID == "" {
			return apperror.NewValidation("invoice is required").
				WithDetail("field", "invoicePayments").
				WithDetail("lineNo", i+1)
		}
		if alloc.PaidAmount <= 0 {
			return apperror.NewValidation("paid amount must be positive").
				WithDetail("field", "invoicePayments").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks a customer receipt.
func (r *CustomerReceipt) Validate(ctx context.Context) error {
	if r.CustomerName == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}
	if r.Amount <= 0 {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	return nil
}

// Validate checks an expense entry.
func (e *Expense) Validate(ctx context.Context) error {
	if e.Category == "" {
		return apperror.NewValidation("category is required").
			WithDetail("field", "category")
	}
	if e.Amount <= 0 {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	return nil
}

// Validate checks an opening stock invoice.
func (o *OpeningStockInvoice) Validate(ctx context.Context) error {
	if len(o.Items) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}
	for i, item := range o.Items {
		if item.ProductID == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Validate checks an opening debt invoice.
func (o *OpeningDebtInvoice) Validate(ctx context.Context) error {
	if o.SupplierID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if o.AmountDue <= 0 {
		return apperror.NewValidation("amount due must be positive").
			WithDetail("field", "amountDue")
	}
	return nil
}

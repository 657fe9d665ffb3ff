package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pharmos/internal/domain/model"
	"pharmos/pkg/logger"
)

var tracer = otel.Tracer("pharmos/engine")

// Apply reduces a command against the current state and returns the next
// state. It is pure and synchronous: no I/O, no mutation of the input.
//
// When a guard rejects the transition (deleting the session user, deleting
// the last admin, failed login, malformed import, unknown record id) the
// input pointer is returned unchanged. Callers detect no-ops by pointer
// identity.
func Apply(ctx context.Context, state *model.AppState, cmd Command) *model.AppState {
	ctx, span := tracer.Start(ctx, "engine.apply",
		trace.WithAttributes(attribute.String("command", cmd.Name())))
	defer span.End()

	next := dispatch(state, cmd)
	if next == state {
		logger.Debug(ctx, "command had no effect", "command", cmd.Name())
	} else {
		logger.Debug(ctx, "command applied", "command", cmd.Name())
	}
	return next
}

func dispatch(state *model.AppState, cmd Command) *model.AppState {
	switch c := cmd.(type) {
	case Login:
		return applyLogin(state, c)
	case Logout:
		return applyLogout(state)
	case AddUser:
		return applyAddUser(state, c)
	case UpdateUser:
		return applyUpdateUser(state, c)
	case DeleteUser:
		return applyDeleteUser(state, c)
	case AddProduct:
		return applyAddProduct(state, c)
	case UpdateProduct:
		return applyUpdateProduct(state, c)
	case DeleteProduct:
		return applyDeleteProduct(state, c)
	case AddSupplier:
		return applyAddSupplier(state, c)
	case UpdateSupplier:
		return applyUpdateSupplier(state, c)
	case DeleteSupplier:
		return applyDeleteSupplier(state, c)
	case AddSale:
		return applyAddSale(state, c)
	case AddSalesReturn:
		return applyAddSalesReturn(state, c)
	case AddPurchase:
		return applyAddPurchase(state, c)
	case UpdatePurchase:
		return applyUpdatePurchase(state, c)
	case DeletePurchase:
		return applyRemovePurchase(state, c.PurchaseID)
	case CorruptPurchase:
		return applyRemovePurchase(state, c.PurchaseID)
	case AddPurchaseReturn:
		return applyAddPurchaseReturn(state, c)
	case UpdatePurchaseReturn:
		return applyUpdatePurchaseReturn(state, c)
	case DeletePurchaseReturn:
		return applyDeletePurchaseReturn(state, c)
	case AddStockAdjustment:
		return applyAddStockAdjustment(state, c)
	case AddStocktake:
		return applyAddStocktake(state, c)
	case PerformAnnualInventoryCount:
		return applyAnnualInventoryCount(state, c)
	case AddSupplierPayment:
		return applyAddSupplierPayment(state, c)
	case DeleteSupplierPayment:
		return applyDeleteSupplierPayment(state, c)
	case AddCustomerReceipt:
		return applyAddCustomerReceipt(state, c)
	case DeleteCustomerReceipt:
		return applyDeleteCustomerReceipt(state, c)
	case AddExpense:
		return applyAddExpense(state, c)
	case DeleteExpense:
		return applyDeleteExpense(state, c)
	case AddExpenseCategory:
		return applyAddExpenseCategory(state, c)
	case AddOpeningStockInvoice:
		return applyAddOpeningStock(state, c)
	case DeleteOpeningStockInvoice:
		return applyDeleteOpeningStock(state, c)
	case AddOpeningDebtInvoice:
		return applyAddOpeningDebt(state, c)
	case DeleteOpeningDebtInvoice:
		return applyDeleteOpeningDebt(state, c)
	case UpdateCompanyInfo:
		return applyUpdateCompanyInfo(state, c)
	case ReplaceState:
		return applyReplaceState(state, c)
	default:
		return state
	}
}

// --- copy-on-write helpers ---

// shallow copies the state struct; touched collections must still be
// replaced with fresh slices before modification.
func shallow(s *model.AppState) *model.AppState {
	next := *s
	return &next
}

func prepend[T any](head T, rest []T) []T {
	out := make([]T, 0, len(rest)+1)
	out = append(out, head)
	out = append(out, rest...)
	return out
}

func appendCopy[T any](items []T, tail T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, tail)
	return out
}

func removeByID[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

// applyStockDeltas returns a fresh product slice with per-product stock
// changes applied. Products absent from the map are shared, products absent
// from the ledger are skipped silently.
func applyStockDeltas(products []model.Product, deltas map[string]float64) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		if d, ok := deltas[p.ID]; ok {
			p.Stock += d
		}
		out[i] = p
	}
	return out
}

// applyBalanceDeltas does the same for supplier balances.
func applyBalanceDeltas(suppliers []model.Supplier, deltas map[string]float64) []model.Supplier {
	out := make([]model.Supplier, len(suppliers))
	for i, s := range suppliers {
		if d, ok := deltas[s.ID]; ok {
			s.Balance += d
		}
		out[i] = s
	}
	return out
}

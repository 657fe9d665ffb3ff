package engine

import (
	"pharmos/internal/domain/model"
)

func allocate(purchases []model.Purchase, allocations []model.InvoicePayment, sign float64) []model.Purchase {
	if len(allocations) == 0 {
		return purchases
	}
	out := make([]model.Purchase, len(purchases))
	for i, p := range purchases {
		for _, alloc := range allocations {
			if alloc.InvoiceID == p.ID {
				p.AmountPaid += sign * alloc.PaidAmount
				p.AmountDue -= sign * alloc.PaidAmount
			}
		}
		out[i] = p
	}
	return out
}

func applyAddSupplierPayment(state *model.AppState, cmd AddSupplierPayment) *model.AppState {
	payment := cmd.Payment

	next := shallow(state)
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		payment.SupplierID: -(payment.Amount + payment.Discount),
	})
	next.Purchases = allocate(state.Purchases, payment.InvoicePayments, 1)
	next.SupplierPayments = prepend(payment, state.SupplierPayments)
	return next
}

func applyDeleteSupplierPayment(state *model.AppState, cmd DeleteSupplierPayment) *model.AppState {
	var payment *model.SupplierPayment
	for i := range state.SupplierPayments {
		if state.SupplierPayments[i].ID == cmd.PaymentID {
			payment = &state.SupplierPayments[i]
			break
		}
	}
	if payment == nil {
		return state
	}

	next := shallow(state)
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		payment.SupplierID: payment.Amount + payment.Discount,
	})
	next.Purchases = allocate(state.Purchases, payment.InvoicePayments, -1)
	next.SupplierPayments = removeByID(state.SupplierPayments, func(p model.SupplierPayment) bool { return p.ID == cmd.PaymentID })
	return next
}

func applyAddCustomerReceipt(state *model.AppState, cmd AddCustomerReceipt) *model.AppState {
	next := shallow(state)
	next.CustomerReceipts = prepend(cmd.Receipt, state.CustomerReceipts)
	return next
}

func applyDeleteCustomerReceipt(state *model.AppState, cmd DeleteCustomerReceipt) *model.AppState {
	next := shallow(state)
	next.CustomerReceipts = removeByID(state.CustomerReceipts, func(r model.CustomerReceipt) bool { return r.ID == cmd.ReceiptID })
	return next
}

func applyAddExpense(state *model.AppState, cmd AddExpense) *model.AppState {
	next := shallow(state)
	next.Expenses = prepend(cmd.Expense, state.Expenses)
	return next
}

func applyDeleteExpense(state *model.AppState, cmd DeleteExpense) *model.AppState {
	next := shallow(state)
	next.Expenses = removeByID(state.Expenses, func(e model.Expense) bool { return e.ID == cmd.ExpenseID })
	return next
}

func applyAddExpenseCategory(state *model.AppState, cmd AddExpenseCategory) *model.AppState {
	for _, c := range state.ExpenseCategories {
		if c == cmd.Category {
			return state
		}
	}
	next := shallow(state)
	next.ExpenseCategories = appendCopy(state.ExpenseCategories, cmd.Category)
	return next
}

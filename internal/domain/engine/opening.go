package engine

import (
	"pharmos/internal/domain/model"
)

func applyAddOpeningStock(state *model.AppState, cmd AddOpeningStockInvoice) *model.AppState {
	invoice := cmd.Invoice

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		var total float64
		var last *model.OpeningStockItem
		for j := range invoice.Items {
			if invoice.Items[j].ProductID == p.ID {
				total += invoice.Items[j].Quantity
				last = &invoice.Items[j]
			}
		}
		if last != nil {
			// Quantities for one product sum; metadata comes from the last
			// line for that product. Packet sell price is untouched.
			p.Stock += total
			p.CostPrice = last.CostPrice
			p.ExpiryDate = last.ExpiryDate
			p.StripCount = last.StripCount
			p.StripSellPrice = last.StripSellPrice
		}
		products[i] = p
	}

	next := shallow(state)
	next.Products = products
	next.OpeningStockInvoices = prepend(invoice, state.OpeningStockInvoices)
	return next
}

func applyDeleteOpeningStock(state *model.AppState, cmd DeleteOpeningStockInvoice) *model.AppState {
	var invoice *model.OpeningStockInvoice
	for i := range state.OpeningStockInvoices {
		if state.OpeningStockInvoices[i].ID == cmd.InvoiceID {
			invoice = &state.OpeningStockInvoices[i]
			break
		}
	}
	if invoice == nil {
		return state
	}

	// Only quantities reverse; the metadata overwrite is not restored.
	deltas := make(map[string]float64)
	for _, item := range invoice.Items {
		deltas[item.ProductID] -= item.Quantity
	}

	next := shallow(state)
	next.Products = applyStockDeltas(state.Products, deltas)
	next.OpeningStockInvoices = removeByID(state.OpeningStockInvoices, func(inv model.OpeningStockInvoice) bool { return inv.ID == cmd.InvoiceID })
	return next
}

func applyAddOpeningDebt(state *model.AppState, cmd AddOpeningDebtInvoice) *model.AppState {
	invoice := cmd.Invoice

	next := shallow(state)
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		invoice.SupplierID: invoice.AmountDue,
	})
	next.OpeningDebtInvoices = prepend(invoice, state.OpeningDebtInvoices)
	return next
}

func applyDeleteOpeningDebt(state *model.AppState, cmd DeleteOpeningDebtInvoice) *model.AppState {
	var invoice *model.OpeningDebtInvoice
	for i := range state.OpeningDebtInvoices {
		if state.OpeningDebtInvoices[i].ID == cmd.InvoiceID {
			invoice = &state.OpeningDebtInvoices[i]
			break
		}
	}
	if invoice == nil {
		return state
	}

	next := shallow(state)
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		invoice.SupplierID: -invoice.AmountDue,
	})
	next.OpeningDebtInvoices = removeByID(state.OpeningDebtInvoices, func(inv model.OpeningDebtInvoice) bool { return inv.ID == cmd.InvoiceID })
	return next
}

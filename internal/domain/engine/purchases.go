package engine

import (
	"pharmos/internal/domain/model"
)

// overwritePricing applies latest-purchase-wins: the invoice line becomes the
// product's authoritative pricing metadata.
func overwritePricing(p model.Product, item model.PurchaseItem) model.Product {
	p.CostPrice = item.CostPrice
	p.PacketSellPrice = item.PacketSellPrice
	p.StripSellPrice = item.StripSellPrice
	p.StripCount = item.StripCount
	p.ExpiryDate = item.ExpiryDate
	return p
}

func findPurchaseItem(items []model.PurchaseItem, productID string) (model.PurchaseItem, bool) {
	for _, item := range items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return model.PurchaseItem{}, false
}

func applyAddPurchase(state *model.AppState, cmd AddPurchase) *model.AppState {
	purchase := cmd.Purchase

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		if item, ok := findPurchaseItem(purchase.Items, p.ID); ok {
			p.Stock += item.Quantity + item.Bonus
			p = overwritePricing(p, item)
		}
		products[i] = p
	}

	suppliers := applyBalanceDeltas(state.Suppliers, map[string]float64{
		purchase.SupplierID: purchase.AmountDue,
	})

	next := shallow(state)
	next.Products = products
	next.Suppliers = suppliers
	next.Purchases = prepend(purchase, state.Purchases)
	return next
}

func applyUpdatePurchase(state *model.AppState, cmd UpdatePurchase) *model.AppState {
	updated := cmd.Purchase
	original := state.FindPurchase(updated.ID)
	if original == nil {
		return state
	}

	// Net effect of the edit, accumulated per key: subtract the original
	// contribution, add the new one, apply in a single pass.
	stockDeltas := make(map[string]float64)
	balanceDeltas := make(map[string]float64)

	for _, item := range original.Items {
		stockDeltas[item.ProductID] -= item.Quantity + item.Bonus
	}
	balanceDeltas[original.SupplierID] -= original.AmountDue

	for _, item := range updated.Items {
		stockDeltas[item.ProductID] += item.Quantity + item.Bonus
	}
	balanceDeltas[updated.SupplierID] += updated.AmountDue

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		if d, ok := stockDeltas[p.ID]; ok {
			p.Stock += d
			if item, found := findPurchaseItem(updated.Items, p.ID); found {
				p = overwritePricing(p, item)
			}
		}
		products[i] = p
	}

	purchases := make([]model.Purchase, len(state.Purchases))
	for i, p := range state.Purchases {
		if p.ID == updated.ID {
			purchases[i] = updated
		} else {
			purchases[i] = p
		}
	}

	next := shallow(state)
	next.Products = products
	next.Suppliers = applyBalanceDeltas(state.Suppliers, balanceDeltas)
	next.Purchases = purchases
	return next
}

// applyRemovePurchase serves both delete and corrupt: reverse every effect of
// posting, then drop the record.
func applyRemovePurchase(state *model.AppState, purchaseID string) *model.AppState {
	purchase := state.FindPurchase(purchaseID)
	if purchase == nil {
		return state
	}

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		if item, ok := findPurchaseItem(purchase.Items, p.ID); ok {
			p.Stock -= item.Quantity + item.Bonus
		}
		products[i] = p
	}

	next := shallow(state)
	next.Products = products
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		purchase.SupplierID: -purchase.AmountDue,
	})
	next.Purchases = removeByID(state.Purchases, func(p model.Purchase) bool { return p.ID == purchaseID })
	return next
}

func findReturnItem(items []model.PurchaseReturnItem, productID string) (model.PurchaseReturnItem, bool) {
	for _, item := range items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return model.PurchaseReturnItem{}, false
}

func applyAddPurchaseReturn(state *model.AppState, cmd AddPurchaseReturn) *model.AppState {
	ret := cmd.Return

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		if item, ok := findReturnItem(ret.Items, p.ID); ok {
			p.Stock -= item.Quantity + item.Bonus
		}
		products[i] = p
	}

	next := shallow(state)
	next.Products = products
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		ret.SupplierID: -ret.TotalReturnValue,
	})
	next.PurchaseReturns = prepend(ret, state.PurchaseReturns)
	return next
}

func applyUpdatePurchaseReturn(state *model.AppState, cmd UpdatePurchaseReturn) *model.AppState {
	updated := cmd.Return
	var original *model.PurchaseReturn
	for i := range state.PurchaseReturns {
		if state.PurchaseReturns[i].ID == updated.ID {
			original = &state.PurchaseReturns[i]
			break
		}
	}
	if original == nil {
		return state
	}

	stockDeltas := make(map[string]float64)
	balanceDeltas := make(map[string]float64)

	// A return decreases stock and balance, so reverting the original adds
	// both back before the new return's effect is subtracted.
	for _, item := range original.Items {
		stockDeltas[item.ProductID] += item.Quantity + item.Bonus
	}
	balanceDeltas[original.SupplierID] += original.TotalReturnValue

	for _, item := range updated.Items {
		stockDeltas[item.ProductID] -= item.Quantity + item.Bonus
	}
	balanceDeltas[updated.SupplierID] -= updated.TotalReturnValue

	returns := make([]model.PurchaseReturn, len(state.PurchaseReturns))
	for i, r := range state.PurchaseReturns {
		if r.ID == updated.ID {
			returns[i] = updated
		} else {
			returns[i] = r
		}
	}

	next := shallow(state)
	next.Products = applyStockDeltas(state.Products, stockDeltas)
	next.Suppliers = applyBalanceDeltas(state.Suppliers, balanceDeltas)
	next.PurchaseReturns = returns
	return next
}

func applyDeletePurchaseReturn(state *model.AppState, cmd DeletePurchaseReturn) *model.AppState {
	var ret *model.PurchaseReturn
	for i := range state.PurchaseReturns {
		if state.PurchaseReturns[i].ID == cmd.ReturnID {
			ret = &state.PurchaseReturns[i]
			break
		}
	}
	if ret == nil {
		return state
	}

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		if item, ok := findReturnItem(ret.Items, p.ID); ok {
			p.Stock += item.Quantity + item.Bonus
		}
		products[i] = p
	}

	next := shallow(state)
	next.Products = products
	next.Suppliers = applyBalanceDeltas(state.Suppliers, map[string]float64{
		ret.SupplierID: ret.TotalReturnValue,
	})
	next.PurchaseReturns = removeByID(state.PurchaseReturns, func(r model.PurchaseReturn) bool { return r.ID == cmd.ReturnID })
	return next
}

package engine

import (
	"pharmos/internal/domain/model"
)

func applyAddSale(state *model.AppState, cmd AddSale) *model.AppState {
	sale := cmd.Sale

	// Strip quantities convert to fractional packets using the product's
	// current strip count, not the snapshot on the cart line.
	deltas := make(map[string]float64)
	for _, p := range state.Products {
		for _, item := range sale.Items {
			if item.ProductID != p.ID {
				continue
			}
			if item.SellUnit == model.UnitPacket {
				deltas[p.ID] -= item.Quantity
			} else {
				deltas[p.ID] -= item.Quantity / p.StripsPerPacket()
			}
		}
	}

	next := shallow(state)
	next.Products = applyStockDeltas(state.Products, deltas)
	next.Sales = prepend(sale, state.Sales)
	return next
}

func applyAddSalesReturn(state *model.AppState, cmd AddSalesReturn) *model.AppState {
	ret := cmd.Return

	deltas := make(map[string]float64)
	for _, p := range state.Products {
		for _, item := range ret.Items {
			if item.ProductID != p.ID {
				continue
			}
			if item.ReturnUnit == model.UnitPacket {
				deltas[p.ID] += item.Quantity
			} else {
				deltas[p.ID] += item.Quantity / p.StripsPerPacket()
			}
		}
	}

	next := shallow(state)
	next.Products = applyStockDeltas(state.Products, deltas)
	next.SalesReturns = prepend(ret, state.SalesReturns)
	return next
}

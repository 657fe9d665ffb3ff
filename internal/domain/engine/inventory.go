package engine

import (
	"fmt"
	"math"
	"time"

	"pharmos/internal/core/id"
	"pharmos/internal/domain/model"
)

func adjustmentDeltas(items []model.StockAdjustmentItem) map[string]float64 {
	deltas := make(map[string]float64)
	for _, item := range items {
		if item.Increases() {
			deltas[item.ProductID] += item.Quantity
		} else {
			deltas[item.ProductID] -= item.Quantity
		}
	}
	return deltas
}

func applyAddStockAdjustment(state *model.AppState, cmd AddStockAdjustment) *model.AppState {
	next := shallow(state)
	next.Products = applyStockDeltas(state.Products, adjustmentDeltas(cmd.Invoice.Items))
	next.StockAdjustments = prepend(cmd.Invoice, state.StockAdjustments)
	return next
}

// DerivedAdjustmentID returns the deterministic id of the adjustment invoice
// a stocktake spawns. Re-posting the same stocktake yields the same id.
func DerivedAdjustmentID(stocktakeID string) string {
	return "adj_" + stocktakeID
}

func applyAddStocktake(state *model.AppState, cmd AddStocktake) *model.AppState {
	stocktake := cmd.Stocktake

	var adjustmentItems []model.StockAdjustmentItem
	for _, item := range stocktake.Items {
		if item.Difference == 0 {
			continue
		}
		reason := model.ReasonStocktakeLoss
		if item.Difference > 0 {
			reason = model.ReasonStocktakeGain
		}
		qty := math.Abs(item.Difference)
		adjustmentItems = append(adjustmentItems, model.StockAdjustmentItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       qty,
			CostPrice:      item.CostPrice,
			Reason:         reason,
			ItemTotalValue: qty * item.CostPrice,
		})
	}

	next := shallow(state)
	next.Stocktakes = prepend(stocktake, state.Stocktakes)

	// Counting alone moves nothing. Differences post atomically with the
	// stocktake through a derived adjustment invoice.
	if len(adjustmentItems) > 0 {
		ref := stocktake.ID
		if len(ref) > 6 {
			ref = ref[len(ref)-6:]
		}
		invoice := model.StockAdjustmentInvoice{
			ID:             DerivedAdjustmentID(stocktake.ID),
			Date:           stocktake.Date,
			Items:          adjustmentItems,
			TotalLossValue: stocktake.TotalValueChange,
			Notes:          fmt.Sprintf("تسوية تلقائية من جرد رقم: %s", ref),
		}
		next.Products = applyStockDeltas(state.Products, adjustmentDeltas(adjustmentItems))
		next.StockAdjustments = prepend(invoice, state.StockAdjustments)
	}

	return next
}

func applyAnnualInventoryCount(state *model.AppState, cmd PerformAnnualInventoryCount) *model.AppState {
	snapshot := make([]model.InventorySnapshotLine, len(state.Products))
	total := 0.0
	for i, p := range state.Products {
		line := model.InventorySnapshotLine{
			ProductID:        p.ID,
			ProductName:      p.Name,
			QuantityBefore:   p.Stock,
			CostPrice:        p.CostPrice,
			TotalValueBefore: p.Stock * p.CostPrice,
		}
		snapshot[i] = line
		total += line.TotalValueBefore
	}

	now := time.Now().UTC().Format(time.RFC3339)
	count := model.AnnualInventoryCount{
		ID:               id.NewString(),
		Date:             now,
		Notes:            cmd.Notes,
		Snapshot:         snapshot,
		TotalValueBefore: total,
	}

	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		p.Stock = 0
		products[i] = p
	}

	next := shallow(state)
	next.Products = products
	next.AnnualInventoryCounts = prepend(count, state.AnnualInventoryCounts)
	return next
}

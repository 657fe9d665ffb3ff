package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/domain/model"
)

func TestAddStockAdjustment_Direction(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		reason string
		want   float64
	}{
		{model.ReasonDamage, 8},
		{model.ReasonExpiry, 8},
		{model.ReasonTheft, 8},
		{model.ReasonCorrection, 8},
		{model.ReasonOther, 8},
		{model.ReasonStocktakeLoss, 8},
		{model.ReasonStocktakeGain, 12},
		{"free-form note", 8},
	}
	for _, tc := range cases {
		t.Run(tc.reason, func(t *testing.T) {
			state := newTestState(t)
			next := Apply(ctx, state, AddStockAdjustment{Invoice: model.StockAdjustmentInvoice{
				ID:   "adj1",
				Date: "2026-04-01",
				Items: []model.StockAdjustmentItem{
					{ProductID: "p1", Quantity: 2, CostPrice: 2, Reason: tc.reason, ItemTotalValue: 4},
				},
			}})
			assert.Equal(t, tc.want, stockOf(t, next, "p1"))
			require.Len(t, next.StockAdjustments, 1)
		})
	}
}

func TestAddStocktake_DerivesAdjustment(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, AddStocktake{Stocktake: model.Stocktake{
		ID:   "stk-1234567890",
		Date: "2026-04-15",
		Items: []model.StocktakeItem{
			{ProductID: "p1", Name: "Amoxil", SystemStock: 10, ActualStock: 7, Difference: -3, CostPrice: 2},
			{ProductID: "p2", Name: "Panadol", SystemStock: 5, ActualStock: 6, Difference: 1, CostPrice: 1},
		},
		TotalValueChange: -5,
	}})

	// Count and derived adjustment land atomically.
	require.Len(t, next.Stocktakes, 1)
	require.Len(t, next.StockAdjustments, 1)

	adj := next.StockAdjustments[0]
	assert.Equal(t, "adj_stk-1234567890", adj.ID)
	assert.Equal(t, "2026-04-15", adj.Date)
	assert.True(t, strings.HasSuffix(adj.Notes, "567890"), "note references the last six id characters, got %q", adj.Notes)

	require.Len(t, adj.Items, 2)
	assert.Equal(t, model.ReasonStocktakeLoss, adj.Items[0].Reason)
	assert.Equal(t, 3.0, adj.Items[0].Quantity)
	assert.Equal(t, 6.0, adj.Items[0].ItemTotalValue)
	assert.Equal(t, model.ReasonStocktakeGain, adj.Items[1].Reason)
	assert.Equal(t, 1.0, adj.Items[1].Quantity)

	assert.Equal(t, 7.0, stockOf(t, next, "p1"))
	assert.Equal(t, 6.0, stockOf(t, next, "p2"))
}

func TestAddStocktake_NoDifferencesNoAdjustment(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, AddStocktake{Stocktake: model.Stocktake{
		ID:   "stk2",
		Date: "2026-04-15",
		Items: []model.StocktakeItem{
			{ProductID: "p1", SystemStock: 10, ActualStock: 10, Difference: 0, CostPrice: 2},
		},
	}})

	require.Len(t, next.Stocktakes, 1)
	assert.Empty(t, next.StockAdjustments)
	assert.Equal(t, 10.0, stockOf(t, next, "p1"))
}

func TestAnnualInventoryCount(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, PerformAnnualInventoryCount{Notes: "year end"})

	require.Len(t, next.AnnualInventoryCounts, 1)
	count := next.AnnualInventoryCounts[0]
	assert.NotEmpty(t, count.ID)
	assert.Equal(t, "year end", count.Notes)

	require.Len(t, count.Snapshot, 2)
	assert.Equal(t, 10.0, count.Snapshot[0].QuantityBefore)
	assert.Equal(t, 20.0, count.Snapshot[0].TotalValueBefore)
	assert.Equal(t, 25.0, count.TotalValueBefore)

	for _, p := range next.Products {
		assert.Equal(t, 0.0, p.Stock, "product %s", p.ID)
	}
	// The archive keeps the pre-reset quantities.
	assert.Equal(t, 10.0, stockOf(t, state, "p1"))
}

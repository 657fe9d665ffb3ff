package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/domain/model"
)

func TestAddOpeningStock(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, AddOpeningStockInvoice{Invoice: model.OpeningStockInvoice{
		ID:   "os1",
		Date: "2026-01-01",
		Items: []model.OpeningStockItem{
			{ProductID: "p1", Quantity: 5, CostPrice: 3, ExpiryDate: "2028-06-01", StripCount: 8, StripSellPrice: 0.7, ItemTotalValue: 15},
			{ProductID: "p1", Quantity: 2, CostPrice: 4, ExpiryDate: "2028-09-01", StripCount: 6, StripSellPrice: 0.9, ItemTotalValue: 8},
		},
		TotalValue: 23,
	}})

	p := next.FindProduct("p1")
	require.NotNil(t, p)
	// Quantities sum across duplicate lines; metadata comes from the last.
	assert.Equal(t, 17.0, p.Stock)
	assert.Equal(t, 4.0, p.CostPrice)
	assert.Equal(t, "2028-09-01", p.ExpiryDate)
	assert.Equal(t, 6.0, p.StripCount)
	assert.Equal(t, 0.9, p.StripSellPrice)
	// The packet sell price is not part of the opening metadata.
	assert.Equal(t, 5.0, p.PacketSellPrice)

	require.Len(t, next.OpeningStockInvoices, 1)
}

func TestDeleteOpeningStock_ReversesQuantitiesOnly(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	added := Apply(ctx, state, AddOpeningStockInvoice{Invoice: model.OpeningStockInvoice{
		ID:   "os1",
		Date: "2026-01-01",
		Items: []model.OpeningStockItem{
			{ProductID: "p1", Quantity: 5, CostPrice: 3, ExpiryDate: "2028-06-01", ItemTotalValue: 15},
		},
		TotalValue: 15,
	}})
	deleted := Apply(ctx, added, DeleteOpeningStockInvoice{InvoiceID: "os1"})

	p := deleted.FindProduct("p1")
	require.NotNil(t, p)
	assert.Equal(t, 10.0, p.Stock)
	// The metadata overwrite survives deletion.
	assert.Equal(t, 3.0, p.CostPrice)
	assert.Equal(t, "2028-06-01", p.ExpiryDate)
	assert.Empty(t, deleted.OpeningStockInvoices)
}

func TestOpeningDebt_AddAndDeleteInvert(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	invoice := model.OpeningDebtInvoice{
		ID:               "od1",
		Date:             "2026-01-01",
		SupplierID:       "s2",
		OldInvoiceNumber: "OLD-55",
		OldInvoiceDate:   "2025-11-20",
		AmountDue:        750,
	}

	added := Apply(ctx, state, AddOpeningDebtInvoice{Invoice: invoice})
	assert.Equal(t, 750.0, balanceOf(t, added, "s2"))
	require.Len(t, added.OpeningDebtInvoices, 1)

	deleted := Apply(ctx, added, DeleteOpeningDebtInvoice{InvoiceID: "od1"})
	assert.Equal(t, 0.0, balanceOf(t, deleted, "s2"))
	assert.Empty(t, deleted.OpeningDebtInvoices)
}

func TestDeleteOpeningInvoices_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	assert.Same(t, state, Apply(ctx, state, DeleteOpeningStockInvoice{InvoiceID: "ghost"}))
	assert.Same(t, state, Apply(ctx, state, DeleteOpeningDebtInvoice{InvoiceID: "ghost"}))
}

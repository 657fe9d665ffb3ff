package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/domain/model"
)

func TestAddSale_PacketAndStripUnits(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	// p1 has 10 strips per packet: 5 strips cost half a packet.
	next := Apply(ctx, state, AddSale{Sale: model.Sale{
		ID:   "sale1",
		Date: "2026-03-01T10:00:00Z",
		Items: []model.CartItem{
			{ProductID: "p1", Quantity: 2, SellUnit: model.UnitPacket, PricePerUnit: 5},
			{ProductID: "p1", Quantity: 5, SellUnit: model.UnitStrip, PricePerUnit: 0.5},
			{ProductID: "p2", Quantity: 1, SellUnit: model.UnitPacket, PricePerUnit: 3},
		},
		Subtotal: 15.5,
		Total:    15.5,
	}})

	assert.Equal(t, 7.5, stockOf(t, next, "p1"))
	assert.Equal(t, 4.0, stockOf(t, next, "p2"))
	require.Len(t, next.Sales, 1)
	assert.Equal(t, "sale1", next.Sales[0].ID)
}

func TestAddSale_StripCountDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	// p2 has no strip count configured; a strip counts as a whole packet.
	next := Apply(ctx, state, AddSale{Sale: model.Sale{
		ID:   "sale1",
		Date: "2026-03-01T10:00:00Z",
		Items: []model.CartItem{
			{ProductID: "p2", Quantity: 2, SellUnit: model.UnitStrip, PricePerUnit: 3},
		},
		Total: 6,
	}})

	assert.Equal(t, 3.0, stockOf(t, next, "p2"))
}

func TestAddSale_UnknownProductSkipped(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, AddSale{Sale: model.Sale{
		ID:   "sale1",
		Date: "2026-03-01T10:00:00Z",
		Items: []model.CartItem{
			{ProductID: "deleted", Quantity: 3, SellUnit: model.UnitPacket, PricePerUnit: 1},
		},
		Total: 3,
	}})

	// The sale still records even when its product is gone from the catalog.
	require.Len(t, next.Sales, 1)
	assert.Equal(t, 10.0, stockOf(t, next, "p1"))
	assert.Equal(t, 5.0, stockOf(t, next, "p2"))
}

func TestAddSalesReturn_Restocks(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, AddSalesReturn{Return: model.SalesReturn{
		ID:   "ret1",
		Date: "2026-03-02T10:00:00Z",
		Items: []model.SalesReturnItem{
			{ProductID: "p1", Quantity: 1, ReturnUnit: model.UnitPacket, PricePerUnit: 5},
			{ProductID: "p1", Quantity: 5, ReturnUnit: model.UnitStrip, PricePerUnit: 0.5},
		},
		TotalReturnValue: 7.5,
	}})

	assert.Equal(t, 11.5, stockOf(t, next, "p1"))
	require.Len(t, next.SalesReturns, 1)
	assert.Equal(t, "ret1", next.SalesReturns[0].ID)
}

func TestSaleThenReturn_RoundTrips(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	afterSale := Apply(ctx, state, AddSale{Sale: model.Sale{
		ID:   "sale1",
		Date: "2026-03-01T10:00:00Z",
		Items: []model.CartItem{
			{ProductID: "p1", Quantity: 3, SellUnit: model.UnitPacket, PricePerUnit: 5},
		},
		Total: 15,
	}})
	afterReturn := Apply(ctx, afterSale, AddSalesReturn{Return: model.SalesReturn{
		ID:   "ret1",
		Date: "2026-03-02T10:00:00Z",
		Items: []model.SalesReturnItem{
			{ProductID: "p1", Quantity: 3, ReturnUnit: model.UnitPacket, PricePerUnit: 5},
		},
		TotalReturnValue: 15,
	}})

	assert.Equal(t, stockOf(t, state, "p1"), stockOf(t, afterReturn, "p1"))
}

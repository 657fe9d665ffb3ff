package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/domain/model"
)

func testPurchase() model.Purchase {
	return model.Purchase{
		ID:            "pur1",
		SupplierID:    "s1",
		InvoiceNumber: "INV-100",
		InvoiceDate:   "2026-02-01",
		Items: []model.PurchaseItem{
			{ProductID: "p1", Quantity: 20, Bonus: 2, CostPrice: 2.5, PacketSellPrice: 6, StripSellPrice: 0.6, StripCount: 12, ExpiryDate: "2028-01-01", ItemTotal: 50},
		},
		Subtotal:   50,
		Total:      50,
		AmountPaid: 10,
		AmountDue:  40,
	}
}

func TestAddPurchase(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, AddPurchase{Purchase: testPurchase()})

	// Stock rises by quantity plus bonus.
	assert.Equal(t, 32.0, stockOf(t, next, "p1"))
	// Supplier owes the unpaid remainder on top of the running balance.
	assert.Equal(t, 1040.0, balanceOf(t, next, "s1"))
	require.Len(t, next.Purchases, 1)
	assert.Equal(t, "pur1", next.Purchases[0].ID)

	// Latest purchase wins the pricing metadata.
	p := next.FindProduct("p1")
	assert.Equal(t, 2.5, p.CostPrice)
	assert.Equal(t, 6.0, p.PacketSellPrice)
	assert.Equal(t, 0.6, p.StripSellPrice)
	assert.Equal(t, 12.0, p.StripCount)
	assert.Equal(t, "2028-01-01", p.ExpiryDate)
}

func TestAddPurchase_DuplicateLinesUseFirstMatch(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	purchase := testPurchase()
	purchase.Items = append(purchase.Items, model.PurchaseItem{
		ProductID: "p1", Quantity: 100, CostPrice: 9, PacketSellPrice: 9, ExpiryDate: "2029-01-01",
	})

	next := Apply(ctx, state, AddPurchase{Purchase: purchase})

	// Only the first line for a product posts.
	assert.Equal(t, 32.0, stockOf(t, next, "p1"))
	assert.Equal(t, 2.5, next.FindProduct("p1").CostPrice)
}

func TestUpdatePurchase_AppliesDeltas(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)
	state = Apply(ctx, state, AddPurchase{Purchase: testPurchase()})

	updated := testPurchase()
	updated.Items[0].Quantity = 10
	updated.Items[0].Bonus = 0
	updated.AmountDue = 25

	next := Apply(ctx, state, UpdatePurchase{Purchase: updated})

	// 10 base +22 posted -22 original +10 new.
	assert.Equal(t, 20.0, stockOf(t, next, "p1"))
	// 1000 +40 posted -40 original +25 new.
	assert.Equal(t, 1025.0, balanceOf(t, next, "s1"))
	require.Len(t, next.Purchases, 1)
	assert.Equal(t, 25.0, next.Purchases[0].AmountDue)
}

func TestUpdatePurchase_EquivalentToDeleteThenCreate(t *testing.T) {
	ctx := context.Background()
	base := newTestState(t)
	posted := Apply(ctx, base, AddPurchase{Purchase: testPurchase()})

	updated := testPurchase()
	updated.SupplierID = "s2"
	updated.Items[0].Quantity = 7
	updated.Items[0].Bonus = 3
	updated.AmountDue = 18

	viaUpdate := Apply(ctx, posted, UpdatePurchase{Purchase: updated})
	viaReplace := Apply(ctx,
		Apply(ctx, posted, DeletePurchase{PurchaseID: "pur1"}),
		AddPurchase{Purchase: updated})

	// Editing in place and replaying from scratch land on the same numbers.
	for _, p := range viaUpdate.Products {
		assert.Equal(t, stockOf(t, viaReplace, p.ID), p.Stock, "stock of %s", p.ID)
	}
	for _, s := range viaUpdate.Suppliers {
		assert.Equal(t, balanceOf(t, viaReplace, s.ID), s.Balance, "balance of %s", s.ID)
	}
	require.Len(t, viaUpdate.Purchases, 1)
	assert.Equal(t, viaReplace.Purchases[0].AmountDue, viaUpdate.Purchases[0].AmountDue)
}

func TestUpdatePurchase_SupplierChangeMovesDebt(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)
	state = Apply(ctx, state, AddPurchase{Purchase: testPurchase()})

	updated := testPurchase()
	updated.SupplierID = "s2"

	next := Apply(ctx, state, UpdatePurchase{Purchase: updated})

	assert.Equal(t, 1000.0, balanceOf(t, next, "s1"))
	assert.Equal(t, 40.0, balanceOf(t, next, "s2"))
}

func TestUpdatePurchase_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	next := Apply(ctx, state, UpdatePurchase{Purchase: testPurchase()})
	assert.Same(t, state, next)
}

func TestRemovePurchase(t *testing.T) {
	ctx := context.Background()
	base := newTestState(t)
	posted := Apply(ctx, base, AddPurchase{Purchase: testPurchase()})

	for _, cmd := range []Command{DeletePurchase{PurchaseID: "pur1"}, CorruptPurchase{PurchaseID: "pur1"}} {
		next := Apply(ctx, posted, cmd)
		assert.Equal(t, 10.0, stockOf(t, next, "p1"), "%s reverses stock", cmd.Name())
		assert.Equal(t, 1000.0, balanceOf(t, next, "s1"), "%s reverses balance", cmd.Name())
		assert.Empty(t, next.Purchases, "%s drops the record", cmd.Name())
	}

	t.Run("unknown id is a no-op", func(t *testing.T) {
		next := Apply(ctx, posted, DeletePurchase{PurchaseID: "ghost"})
		assert.Same(t, posted, next)
	})
}

func testPurchaseReturn() model.PurchaseReturn {
	return model.PurchaseReturn{
		ID:            "pret1",
		SupplierID:    "s1",
		InvoiceNumber: "PRT-2026-00001",
		ReturnDate:    "2026-02-10",
		Items: []model.PurchaseReturnItem{
			{ProductID: "p1", Quantity: 4, Bonus: 1, CostPrice: 2, ItemTotal: 8},
		},
		TotalReturnValue: 8,
	}
}

func TestPurchaseReturn_AddAndDeleteInvert(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	added := Apply(ctx, state, AddPurchaseReturn{Return: testPurchaseReturn()})
	assert.Equal(t, 5.0, stockOf(t, added, "p1"))
	assert.Equal(t, 992.0, balanceOf(t, added, "s1"))
	require.Len(t, added.PurchaseReturns, 1)

	deleted := Apply(ctx, added, DeletePurchaseReturn{ReturnID: "pret1"})
	assert.Equal(t, stockOf(t, state, "p1"), stockOf(t, deleted, "p1"))
	assert.Equal(t, balanceOf(t, state, "s1"), balanceOf(t, deleted, "s1"))
	assert.Empty(t, deleted.PurchaseReturns)
}

func TestUpdatePurchaseReturn_AppliesDeltas(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)
	state = Apply(ctx, state, AddPurchaseReturn{Return: testPurchaseReturn()})

	updated := testPurchaseReturn()
	updated.Items[0].Quantity = 2
	updated.Items[0].Bonus = 0
	updated.TotalReturnValue = 4

	next := Apply(ctx, state, UpdatePurchaseReturn{Return: updated})

	// 10 base -5 original +5 reverted -2 new.
	assert.Equal(t, 8.0, stockOf(t, next, "p1"))
	// 1000 -8 original +8 reverted -4 new.
	assert.Equal(t, 996.0, balanceOf(t, next, "s1"))
	require.Len(t, next.PurchaseReturns, 1)
	assert.Equal(t, 4.0, next.PurchaseReturns[0].TotalReturnValue)
}

package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmos/internal/domain/model"
)

type fixedState struct {
	state *model.AppState
}

func (f fixedState) Snapshot() *model.AppState { return f.state }

func reportState() *model.AppState {
	return &model.AppState{
		Products: []model.Product{
			{ID: "p1", Name: "Amoxil", Stock: 10, CostPrice: 2, ExpiryDate: "2026-09-15"},
			{ID: "p2", Name: "Panadol", Stock: 3, CostPrice: 5, ExpiryDate: "2030-01-01"},
		},
		Suppliers: []model.Supplier{
			{ID: "s1", Name: "United Pharma", Balance: 400},
			{ID: "s2", Name: "Clear Depot", Balance: 0},
		},
		Sales: []model.Sale{
			{ID: "sale1", Date: "2026-08-31T09:30:00Z", Total: 20},
			{ID: "sale2", Date: "2026-08-31T16:00:00Z", Total: 15},
			{ID: "sale3", Date: "2026-08-30T12:00:00Z", Total: 99},
		},
		SalesReturns: []model.SalesReturn{
			{ID: "ret1", Date: "2026-08-31", TotalReturnValue: 5},
		},
		CustomerReceipts: []model.CustomerReceipt{
			{ID: "rc1", Date: "2026-08-31", Amount: 10},
			{ID: "rc2", Date: "2026-07-01", Amount: 500},
		},
		Expenses: []model.Expense{
			{ID: "e1", Date: "2026-08-31", Amount: 8},
		},
		SupplierPayments: []model.SupplierPayment{
			{ID: "pay1", Date: "2026-08-31", Amount: 100},
		},
	}
}

func newTestService() *Service {
	return NewService(fixedState{state: reportState()})
}

func TestDashboard(t *testing.T) {
	svc := newTestService()
	now, err := time.Parse(time.RFC3339, "2026-08-31T18:00:00Z")
	require.NoError(t, err)

	d := svc.Dashboard(context.Background(), now)

	assert.Equal(t, 35.0, d.SalesTodayTotal)
	assert.Equal(t, 2, d.SalesTodayCount)
	assert.Equal(t, 2, d.ProductCount)
	// p2 sits under the 10-packet threshold.
	assert.Equal(t, 1, d.LowStockCount)
	// p1 expires inside the 90-day horizon.
	assert.Equal(t, 1, d.ExpiringSoonCount)
	assert.Equal(t, 35.0, d.StockValue)
	assert.Equal(t, 400.0, d.SupplierDebtsTotal)
}

func TestStockValue(t *testing.T) {
	svc := newTestService()

	report := svc.StockValue(context.Background())

	require.Len(t, report.Lines, 2)
	assert.Equal(t, 20.0, report.Lines[0].Value)
	assert.Equal(t, 15.0, report.Lines[1].Value)
	assert.Equal(t, 35.0, report.TotalValue)
}

func TestSupplierDebts_SkipsZeroBalances(t *testing.T) {
	svc := newTestService()

	report := svc.SupplierDebts(context.Background())

	require.Len(t, report.Lines, 1)
	assert.Equal(t, "s1", report.Lines[0].SupplierID)
	assert.Equal(t, 400.0, report.TotalDebt)
}

func TestFinancials(t *testing.T) {
	svc := newTestService()
	from, _ := time.Parse("2006-01-02", "2026-08-31")
	to := from.Add(24 * time.Hour)

	sum := svc.Financials(context.Background(), from, to)

	assert.Equal(t, 35.0, sum.SalesTotal)
	assert.Equal(t, 2, sum.SalesCount)
	assert.Equal(t, 5.0, sum.SalesReturnTotal)
	assert.Equal(t, 10.0, sum.ReceiptsTotal)
	assert.Equal(t, 8.0, sum.ExpensesTotal)
	assert.Equal(t, 100.0, sum.PaymentsTotal)
	// 35 - 5 + 10 - 8.
	assert.Equal(t, 32.0, sum.NetRevenue)
}

func TestFinancials_MixedDateFormats(t *testing.T) {
	svc := newTestService()
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-09-01")

	sum := svc.Financials(context.Background(), from, to)

	// RFC3339 sale timestamps and date-only documents both count.
	assert.Equal(t, 134.0, sum.SalesTotal)
	assert.Equal(t, 3, sum.SalesCount)
	assert.Equal(t, 10.0, sum.ReceiptsTotal)
}

package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pharmos/internal/domain/model"
)

// StateProvider yields the current state for reading.
type StateProvider interface {
	Snapshot() *model.AppState
}

// Service computes reports from the live state.
type Service struct {
	states StateProvider

	// lowStockThreshold marks products needing reorder, in packets.
	lowStockThreshold float64
	// expiryHorizon flags products expiring within this window.
	expiryHorizon time.Duration
}

// NewService creates a report service with default thresholds.
func NewService(states StateProvider) *Service {
	return &Service{
		states:            states,
		lowStockThreshold: 10,
		expiryHorizon:     90 * 24 * time.Hour,
	}
}

// parseDocDate accepts both full timestamps and date-only values, the two
// formats found in ledger documents.
func parseDocDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func inRange(dateStr string, from, to time.Time) bool {
	t, ok := parseDocDate(dateStr)
	if !ok {
		return false
	}
	return !t.Before(from) && t.Before(to)
}

// Dashboard builds the landing page summary.
func (s *Service) Dashboard(ctx context.Context, now time.Time) Dashboard {
	state := s.states.Snapshot()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	salesTotal := decimal.Zero
	salesCount := 0
	for _, sale := range state.Sales {
		if inRange(sale.Date, dayStart, dayEnd) {
			salesTotal = salesTotal.Add(decimal.NewFromFloat(sale.Total))
			salesCount++
		}
	}

	stockValue := decimal.Zero
	lowStock := 0
	expiring := 0
	horizon := now.Add(s.expiryHorizon)
	for _, p := range state.Products {
		stockValue = stockValue.Add(
			decimal.NewFromFloat(p.Stock).Mul(decimal.NewFromFloat(p.CostPrice)))
		if p.Stock < s.lowStockThreshold {
			lowStock++
		}
		if exp, ok := parseDocDate(p.ExpiryDate); ok && exp.Before(horizon) {
			expiring++
		}
	}

	debts := decimal.Zero
	for _, sup := range state.Suppliers {
		debts = debts.Add(decimal.NewFromFloat(sup.Balance))
	}

	return Dashboard{
		SalesTodayTotal:    salesTotal.InexactFloat64(),
		SalesTodayCount:    salesCount,
		ProductCount:       len(state.Products),
		LowStockCount:      lowStock,
		ExpiringSoonCount:  expiring,
		StockValue:         stockValue.InexactFloat64(),
		SupplierDebtsTotal: debts.InexactFloat64(),
	}
}

// StockValue values the inventory at cost.
func (s *Service) StockValue(ctx context.Context) StockValueReport {
	state := s.states.Snapshot()

	lines := make([]StockValueLine, len(state.Products))
	total := decimal.Zero
	for i, p := range state.Products {
		value := decimal.NewFromFloat(p.Stock).Mul(decimal.NewFromFloat(p.CostPrice))
		lines[i] = StockValueLine{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			CostPrice: p.CostPrice,
			Value:     value.InexactFloat64(),
		}
		total = total.Add(value)
	}
	return StockValueReport{Lines: lines, TotalValue: total.InexactFloat64()}
}

// SupplierDebts lists suppliers with a nonzero balance.
func (s *Service) SupplierDebts(ctx context.Context) SupplierDebtsReport {
	state := s.states.Snapshot()

	var lines []SupplierDebtLine
	total := decimal.Zero
	for _, sup := range state.Suppliers {
		if sup.Balance == 0 {
			continue
		}
		lines = append(lines, SupplierDebtLine{
			SupplierID: sup.ID,
			Name:       sup.Name,
			Balance:    sup.Balance,
		})
		total = total.Add(decimal.NewFromFloat(sup.Balance))
	}
	return SupplierDebtsReport{Lines: lines, TotalDebt: total.InexactFloat64()}
}

// Financials nets the period's money flows.
func (s *Service) Financials(ctx context.Context, from, to time.Time) FinancialSummary {
	state := s.states.Snapshot()

	sales := decimal.Zero
	salesCount := 0
	for _, sale := range state.Sales {
		if inRange(sale.Date, from, to) {
			sales = sales.Add(decimal.NewFromFloat(sale.Total))
			salesCount++
		}
	}

	returns := decimal.Zero
	for _, r := range state.SalesReturns {
		if inRange(r.Date, from, to) {
			returns = returns.Add(decimal.NewFromFloat(r.TotalReturnValue))
		}
	}

	receipts := decimal.Zero
	for _, r := range state.CustomerReceipts {
		if inRange(r.Date, from, to) {
			receipts = receipts.Add(decimal.NewFromFloat(r.Amount))
		}
	}

	expenses := decimal.Zero
	for _, e := range state.Expenses {
		if inRange(e.Date, from, to) {
			expenses = expenses.Add(decimal.NewFromFloat(e.Amount))
		}
	}

	payments := decimal.Zero
	for _, p := range state.SupplierPayments {
		if inRange(p.Date, from, to) {
			payments = payments.Add(decimal.NewFromFloat(p.Amount))
		}
	}

	net := sales.Sub(returns).Add(receipts).Sub(expenses)
	return FinancialSummary{
		From:             from.Format("2006-01-02"),
		To:               to.Format("2006-01-02"),
		SalesTotal:       sales.InexactFloat64(),
		SalesCount:       salesCount,
		SalesReturnTotal: returns.InexactFloat64(),
		ReceiptsTotal:    receipts.InexactFloat64(),
		ExpensesTotal:    expenses.InexactFloat64(),
		PaymentsTotal:    payments.InexactFloat64(),
		NetRevenue:       net.InexactFloat64(),
	}
}

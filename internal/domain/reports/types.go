// Package reports computes read-only aggregates over the current state.
// Monetary totals are summed with decimal arithmetic so long histories do
// not accumulate float drift in the presented figures.
package reports

// Dashboard is the landing page summary.
type Dashboard struct {
	SalesTodayTotal    float64 `json:"salesTodayTotal"`
	SalesTodayCount    int     `json:"salesTodayCount"`
	ProductCount       int     `json:"productCount"`
	LowStockCount      int     `json:"lowStockCount"`
	ExpiringSoonCount  int     `json:"expiringSoonCount"`
	StockValue         float64 `json:"stockValue"`
	SupplierDebtsTotal float64 `json:"supplierDebtsTotal"`
}

// StockValueLine values one product at cost.
type StockValueLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Stock     float64 `json:"stock"`
	CostPrice float64 `json:"costPrice"`
	Value     float64 `json:"value"`
}

// StockValueReport values the whole inventory at cost.
type StockValueReport struct {
	Lines      []StockValueLine `json:"lines"`
	TotalValue float64          `json:"totalValue"`
}

// SupplierDebtLine is one supplier's outstanding balance.
type SupplierDebtLine struct {
	SupplierID string  `json:"supplierId"`
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
}

// SupplierDebtsReport lists outstanding supplier balances.
type SupplierDebtsReport struct {
	Lines     []SupplierDebtLine `json:"lines"`
	TotalDebt float64            `json:"totalDebt"`
}

// FinancialSummary nets revenue against returns and expenses for a period.
type FinancialSummary struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	SalesTotal       float64 `json:"salesTotal"`
	SalesCount       int     `json:"salesCount"`
	SalesReturnTotal float64 `json:"salesReturnTotal"`
	ReceiptsTotal    float64 `json:"receiptsTotal"`
	ExpensesTotal    float64 `json:"expensesTotal"`
	PaymentsTotal    float64 `json:"paymentsTotal"`
	NetRevenue       float64 `json:"netRevenue"`
}

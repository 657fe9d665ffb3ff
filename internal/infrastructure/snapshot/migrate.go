package snapshot

import (
	"encoding/json"

	"pharmos/internal/domain/model"
)

// document is the on-disk shape plus legacy keys from older installations.
type document struct {
	model.AppState

	// Renamed to annualInventoryCounts.
	InventoryCounts []model.AnnualInventoryCount `json:"inventoryCounts,omitempty"`

	// Superseded by opening stock/debt invoices; dropped on load.
	OpeningBalance json.RawMessage `json:"openingBalance,omitempty"`
}

// Decode parses a state document and upgrades legacy shapes.
//
// The core collections (products, sales, suppliers, purchases) deliberately
// keep their nil-ness: the restore guard uses their absence to reject
// malformed backups. Everything else gets defaults here.
func Decode(raw []byte) (*model.AppState, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	state := doc.AppState

	if state.Users == nil {
		state.Users = SeedUsers()
	}
	if state.SalesReturns == nil {
		state.SalesReturns = []model.SalesReturn{}
	}
	if state.PurchaseReturns == nil {
		state.PurchaseReturns = []model.PurchaseReturn{}
	}
	if state.SupplierPayments == nil {
		state.SupplierPayments = []model.SupplierPayment{}
	}
	if state.CustomerReceipts == nil {
		state.CustomerReceipts = []model.CustomerReceipt{}
	}
	if state.Expenses == nil {
		state.Expenses = []model.Expense{}
	}
	if state.ExpenseCategories == nil {
		state.ExpenseCategories = SeedExpenseCategories()
	}
	if state.Stocktakes == nil {
		state.Stocktakes = []model.Stocktake{}
	}
	if state.OpeningStockInvoices == nil {
		state.OpeningStockInvoices = []model.OpeningStockInvoice{}
	}
	if state.OpeningDebtInvoices == nil {
		state.OpeningDebtInvoices = []model.OpeningDebtInvoice{}
	}

	// Company identity defaults, including the printer block for documents
	// written before printing settings existed.
	if state.CompanyInfo == (model.CompanyInfo{}) {
		state.CompanyInfo = SeedCompanyInfo()
	}
	if state.CompanyInfo.PrinterSettings.Type == "" {
		state.CompanyInfo.PrinterSettings = model.PrinterSettings{Type: model.PrinterA4}
	}

	// inventoryCounts was renamed.
	if state.AnnualInventoryCounts == nil {
		if doc.InventoryCounts != nil {
			state.AnnualInventoryCounts = doc.InventoryCounts
		} else {
			state.AnnualInventoryCounts = []model.AnnualInventoryCount{}
		}
	}

	// The first adjustment format had no line items and cannot be upgraded;
	// the whole collection resets.
	if state.StockAdjustments == nil || hasLegacyAdjustments(state.StockAdjustments) {
		state.StockAdjustments = []model.StockAdjustmentInvoice{}
	}

	return &state, nil
}

// EnsureCore defaults the guarded core collections for the local load path,
// where an absent collection means an older document rather than a bad
// backup.
func EnsureCore(state *model.AppState) {
	if state.Products == nil {
		state.Products = []model.Product{}
	}
	if state.Sales == nil {
		state.Sales = []model.Sale{}
	}
	if state.Suppliers == nil {
		state.Suppliers = []model.Supplier{}
	}
	if state.Purchases == nil {
		state.Purchases = []model.Purchase{}
	}
}

func hasLegacyAdjustments(adjustments []model.StockAdjustmentInvoice) bool {
	for _, a := range adjustments {
		if a.Items == nil {
			return true
		}
	}
	return false
}

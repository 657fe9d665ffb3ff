// Package engine implements the state reconciliation engine: a pure reducer
// that applies ledger commands to the application state. Every transition
// produces a fresh state value; published states are never mutated.
package engine

import (
	"pharmos/internal/domain/model"
)

// Command is one state transition request. The set is closed: the engine
// knows every command type and anything else is ignored.
type Command interface {
	// Name returns the stable command identifier used in spans and logs.
	Name() string
}

// --- Session ---

// Login authenticates a user and installs the session user on success.
type Login struct {
	Username string
	Password string
}

// Logout clears the session user.
type Logout struct{}

// --- Users ---

// AddUser appends a new account. ID is generated.
type AddUser struct{ User model.User }

// UpdateUser replaces the account with the same id.
type UpdateUser struct{ User model.User }

// DeleteUser removes an account unless it is the session user or the last admin.
type DeleteUser struct{ UserID string }

// --- Catalog ---

// AddProduct appends a product under its human-assigned code.
type AddProduct struct{ Product model.Product }

// UpdateProduct replaces the product with the same id, stock included.
type UpdateProduct struct{ Product model.Product }

// DeleteProduct removes a product. Historical documents keep referencing it.
type DeleteProduct struct{ ProductID string }

// AddSupplier appends a supplier. ID is generated, balance starts at zero.
type AddSupplier struct{ Supplier model.Supplier }

// UpdateSupplier replaces the supplier with the same id.
type UpdateSupplier struct{ Supplier model.Supplier }

// DeleteSupplier removes a supplier.
type DeleteSupplier struct{ SupplierID string }

// --- Trade documents ---

// AddSale posts a checkout: stock drops per line, the sale is prepended.
type AddSale struct{ Sale model.Sale }

// AddSalesReturn restocks returned goods.
type AddSalesReturn struct{ Return model.SalesReturn }

// AddPurchase posts a supplier invoice.
type AddPurchase struct{ Purchase model.Purchase }

// UpdatePurchase reconciles an edited invoice via delta maps.
type UpdatePurchase struct{ Purchase model.Purchase }

// DeletePurchase reverses and removes an invoice.
type DeletePurchase struct{ PurchaseID string }

// CorruptPurchase discards an invoice entered in error. Same inverse effects
// as DeletePurchase; kept as a separate operation for intent and audit.
type CorruptPurchase struct{ PurchaseID string }

// AddPurchaseReturn sends goods back to a supplier.
type AddPurchaseReturn struct{ Return model.PurchaseReturn }

// UpdatePurchaseReturn reconciles an edited return via delta maps.
type UpdatePurchaseReturn struct{ Return model.PurchaseReturn }

// DeletePurchaseReturn reverses and removes a return.
type DeletePurchaseReturn struct{ ReturnID string }

// --- Inventory control ---

// AddStockAdjustment writes quantities on or off per line reason.
type AddStockAdjustment struct{ Invoice model.StockAdjustmentInvoice }

// AddStocktake records a count and derives an adjustment for the differences.
type AddStocktake struct{ Stocktake model.Stocktake }

// PerformAnnualInventoryCount archives all positions and zeroes stock.
type PerformAnnualInventoryCount struct{ Notes string }

// --- Finance ---

// AddSupplierPayment settles supplier debt, optionally allocated to invoices.
type AddSupplierPayment struct{ Payment model.SupplierPayment }

// DeleteSupplierPayment reverses and removes a payment.
type DeleteSupplierPayment struct{ PaymentID string }

// AddCustomerReceipt records incoming money.
type AddCustomerReceipt struct{ Receipt model.CustomerReceipt }

// DeleteCustomerReceipt removes a receipt.
type DeleteCustomerReceipt struct{ ReceiptID string }

// AddExpense records an operating cost.
type AddExpense struct{ Expense model.Expense }

// DeleteExpense removes an expense entry.
type DeleteExpense struct{ ExpenseID string }

// AddExpenseCategory appends a category unless it already exists.
type AddExpenseCategory struct{ Category string }

// --- Opening balances ---

// AddOpeningStockInvoice loads starting inventory.
type AddOpeningStockInvoice struct{ Invoice model.OpeningStockInvoice }

// DeleteOpeningStockInvoice subtracts the loaded quantities back out.
type DeleteOpeningStockInvoice struct{ InvoiceID string }

// AddOpeningDebtInvoice loads pre-existing supplier debt.
type AddOpeningDebtInvoice struct{ Invoice model.OpeningDebtInvoice }

// DeleteOpeningDebtInvoice reverses an opening debt entry.
type DeleteOpeningDebtInvoice struct{ InvoiceID string }

// --- Administration ---

// UpdateCompanyInfo replaces the company identity block.
type UpdateCompanyInfo struct{ Info model.CompanyInfo }

// ReplaceState adopts an imported snapshot wholesale, keeping the session user.
type ReplaceState struct{ State *model.AppState }

func (Login) Name() string                       { return "login" }
func (Logout) Name() string                      { return "logout" }
func (AddUser) Name() string                     { return "add_user" }
func (UpdateUser) Name() string                  { return "update_user" }
func (DeleteUser) Name() string                  { return "delete_user" }
func (AddProduct) Name() string                  { return "add_product" }
func (UpdateProduct) Name() string               { return "update_product" }
func (DeleteProduct) Name() string               { return "delete_product" }
func (AddSupplier) Name() string                 { return "add_supplier" }
func (UpdateSupplier) Name() string              { return "update_supplier" }
func (DeleteSupplier) Name() string              { return "delete_supplier" }
func (AddSale) Name() string                     { return "add_sale" }
func (AddSalesReturn) Name() string              { return "add_sales_return" }
func (AddPurchase) Name() string                 { return "add_purchase" }
func (UpdatePurchase) Name() string              { return "update_purchase" }
func (DeletePurchase) Name() string              { return "delete_purchase" }
func (CorruptPurchase) Name() string             { return "corrupt_purchase" }
func (AddPurchaseReturn) Name() string           { return "add_purchase_return" }
func (UpdatePurchaseReturn) Name() string        { return "update_purchase_return" }
func (DeletePurchaseReturn) Name() string        { return "delete_purchase_return" }
func (AddStockAdjustment) Name() string          { return "add_stock_adjustment" }
func (AddStocktake) Name() string                { return "add_stocktake" }
func (PerformAnnualInventoryCount) Name() string { return "perform_annual_inventory_count" }
func (AddSupplierPayment) Name() string          { return "add_supplier_payment" }
func (DeleteSupplierPayment) Name() string       { return "delete_supplier_payment" }
func (AddCustomerReceipt) Name() string          { return "add_customer_receipt" }
func (DeleteCustomerReceipt) Name() string       { return "delete_customer_receipt" }
func (AddExpense) Name() string                  { return "add_expense" }
func (DeleteExpense) Name() string               { return "delete_expense" }
func (AddExpenseCategory) Name() string          { return "add_expense_category" }
func (AddOpeningStockInvoice) Name() string      { return "add_opening_stock_invoice" }
func (DeleteOpeningStockInvoice) Name() string   { return "delete_opening_stock_invoice" }
func (AddOpeningDebtInvoice) Name() string       { return "add_opening_debt_invoice" }
func (DeleteOpeningDebtInvoice) Name() string    { return "delete_opening_debt_invoice" }
func (UpdateCompanyInfo) Name() string           { return "update_company_info" }
func (ReplaceState) Name() string                { return "replace_state" }

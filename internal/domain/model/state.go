package model

// AppState is the entire application document. It is immutable by
// convention: the reconciliation engine produces a fresh value for every
// transition and never writes through a previously published pointer.
//
// Collection ordering is part of the contract. Catalog collections (users,
// products, suppliers) append new entries at the end; transaction histories
// prepend, so index 0 is always the most recent document.
type AppState struct {
	Users                 []User                   `json:"users"`
	CurrentUser           *User                    `json:"currentUser"`
	Products              []Product                `json:"products"`
	Sales                 []Sale                   `json:"sales"`
	SalesReturns          []SalesReturn            `json:"salesReturns"`
	Purchases             []Purchase               `json:"purchases"`
	PurchaseReturns       []PurchaseReturn         `json:"purchaseReturns"`
	Suppliers             []Supplier               `json:"suppliers"`
	StockAdjustments      []StockAdjustmentInvoice `json:"stockAdjustments"`
	Stocktakes            []Stocktake              `json:"stocktakes"`
	SupplierPayments      []SupplierPayment        `json:"supplierPayments"`
	CustomerReceipts      []CustomerReceipt        `json:"customerReceipts"`
	Expenses              []Expense                `json:"expenses"`
	ExpenseCategories     []string                 `json:"expenseCategories"`
	CompanyInfo           CompanyInfo              `json:"companyInfo"`
	OpeningStockInvoices  []OpeningStockInvoice    `json:"openingStockInvoices"`
	OpeningDebtInvoices   []OpeningDebtInvoice     `json:"openingDebtInvoices"`
	AnnualInventoryCounts []AnnualInventoryCount   `json:"annualInventoryCounts"`
}

// FindProduct returns the product with the given id, or nil.
func (s *AppState) FindProduct(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// FindSupplier returns the supplier with the given id, or nil.
func (s *AppState) FindSupplier(id string) *Supplier {
	for i := range s.Suppliers {
		if s.Suppliers[i].ID == id {
			return &s.Suppliers[i]
		}
	}
	return nil
}

// FindPurchase returns the purchase with the given id, or nil.
func (s *AppState) FindPurchase(id string) *Purchase {
	for i := range s.Purchases {
		if s.Purchases[i].ID == id {
			return &s.Purchases[i]
		}
	}
	return nil
}

// FindUser returns the user with the given id, or nil.
func (s *AppState) FindUser(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindUserByName returns the user with the given username, or nil.
func (s *AppState) FindUserByName(username string) *User {
	for i := range s.Users {
		if s.Users[i].Username == username {
			return &s.Users[i]
		}
	}
	return nil
}

// AdminCount returns the number of admin accounts.
func (s *AppState) AdminCount() int {
	n := 0
	for i := range s.Users {
		if s.Users[i].Role == RoleAdmin {
			n++
		}
	}
	return n
}

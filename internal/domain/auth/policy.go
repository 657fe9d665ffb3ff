package auth

import (
	"pharmos/internal/domain/model"
)

// View names the functional areas of the application surface.
type View string

const (
	ViewDashboard        View = "dashboard"
	ViewInventory        View = "inventory"
	ViewPOS              View = "pos"
	ViewPurchases        View = "purchases"
	ViewSalesReturns     View = "salesReturns"
	ViewPurchaseReturns  View = "purchaseReturns"
	ViewStockAdjustments View = "stockAdjustments"
	ViewStocktake        View = "stocktake"
	ViewReports          View = "reports"
	ViewSuppliers        View = "suppliers"
	ViewFinancials       View = "financials"
	ViewAdmin            View = "admin"
)

// viewsByRole is the static permission table. Cashiers get the till and
// returns, pharmacists everything operational, admins everything.
var viewsByRole = map[model.Role][]View{
	model.RoleAdmin: {
		ViewDashboard, ViewInventory, ViewPOS, ViewPurchases, ViewSalesReturns,
		ViewPurchaseReturns, ViewStockAdjustments, ViewStocktake, ViewReports,
		ViewSuppliers, ViewFinancials, ViewAdmin,
	},
	model.RolePharmacist: {
		ViewDashboard, ViewInventory, ViewPOS, ViewPurchases, ViewSalesReturns,
		ViewPurchaseReturns, ViewStockAdjustments, ViewStocktake, ViewSuppliers,
	},
	model.RoleCashier: {
		ViewDashboard, ViewPOS, ViewSalesReturns,
	},
}

// AllowedViews returns the views a role may access. Unknown roles get none.
func AllowedViews(role model.Role) []View {
	return viewsByRole[role]
}

// CanAccess reports whether a role may use a view.
func CanAccess(role model.Role, view View) bool {
	for _, v := range viewsByRole[role] {
		if v == view {
			return true
		}
	}
	return false
}

// FallbackView is where a user lands when a view is denied.
const FallbackView = ViewDashboard

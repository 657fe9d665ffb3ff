package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmos/internal/domain/model"
)

func TestAllowedViews(t *testing.T) {
	assert.Len(t, AllowedViews(model.RoleAdmin), 12)
	assert.Len(t, AllowedViews(model.RolePharmacist), 9)
	assert.Equal(t, []View{ViewDashboard, ViewPOS, ViewSalesReturns}, AllowedViews(model.RoleCashier))
	assert.Empty(t, AllowedViews(model.Role("intern")))
}

func TestCanAccess(t *testing.T) {
	cases := []struct {
		role model.Role
		view View
		want bool
	}{
		{model.RoleAdmin, ViewAdmin, true},
		{model.RoleAdmin, ViewReports, true},
		{model.RolePharmacist, ViewPurchases, true},
		{model.RolePharmacist, ViewReports, false},
		{model.RolePharmacist, ViewFinancials, false},
		{model.RolePharmacist, ViewAdmin, false},
		{model.RoleCashier, ViewPOS, true},
		{model.RoleCashier, ViewSalesReturns, true},
		{model.RoleCashier, ViewInventory, false},
		{model.RoleCashier, ViewAdmin, false},
		{model.Role("intern"), ViewDashboard, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanAccess(tc.role, tc.view), "%s / %s", tc.role, tc.view)
	}
}

package snapshot

import (
	"time"

	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/model"
)

// Seed data for a fresh installation: one admin account, a small Arabic
// demo catalog and two sample sales, matching the demo dataset shipped with
// the original application.

// SeedUsers returns the default accounts. The admin password is "admin",
// stored hashed; it is expected to be changed after first login.
func SeedUsers() []model.User {
	hash, err := auth.HashPassword("admin")
	if err != nil {
		// bcrypt only fails on invalid cost, which is fixed here
		panic(err)
	}
	return []model.User{
		{ID: "user1", Username: "admin", PasswordHash: hash, Role: model.RoleAdmin},
	}
}

// SeedExpenseCategories returns the default expense categories.
func SeedExpenseCategories() []string {
	return []string{"رواتب", "إيجار", "فواتير (ماء، كهرباء)", "صيانة", "نثريات", "أخرى"}
}

// SeedCompanyInfo returns the default company identity.
func SeedCompanyInfo() model.CompanyInfo {
	return model.CompanyInfo{
		Name:        "صيدليتي",
		Address:     "بغداد - المنصور",
		Phone:       "07700000000",
		Logo:        "",
		FooterNotes: "شكراً لزيارتكم! نتمنى لكم دوام الصحة والعافية.",
		PrinterSettings: model.PrinterSettings{
			Type: model.PrinterA4,
		},
	}
}

func seedProducts() []model.Product {
	return []model.Product{
		{ID: "1001", Name: "باندول اكسترا", ScientificName: "Paracetamol, Caffeine", Category: "GSK", CostPrice: 1250, StripCount: 2, StripSellPrice: 1000, PacketSellPrice: 2000, ExpiryDate: "2026-12-31", Stock: 100},
		{ID: "1002", Name: "فولتارين 50 ملغ", ScientificName: "Diclofenac Sodium", Category: "Novartis", CostPrice: 2500, StripCount: 3, StripSellPrice: 1250, PacketSellPrice: 3500, ExpiryDate: "2025-10-31", Stock: 50},
		{ID: "1003", Name: "اموكسيل 500 ملغ", ScientificName: "Amoxicillin", Category: "Hikma", CostPrice: 1750, StripCount: 2, StripSellPrice: 1000, PacketSellPrice: 1900, ExpiryDate: "2027-01-20", Stock: 80},
		{ID: "1004", Name: "بروفين 400 ملغ", ScientificName: "Ibuprofen", Category: "Abbott", CostPrice: 900, StripCount: 3, StripSellPrice: 500, PacketSellPrice: 1500, ExpiryDate: "2026-08-15", Stock: 120},
		{ID: "1005", Name: "زينات 250 ملغ", ScientificName: "Cefuroxime", Category: "GSK", CostPrice: 6000, StripCount: 1, StripSellPrice: 7500, PacketSellPrice: 7500, ExpiryDate: "2025-05-01", Stock: 30},
		{ID: "1006", Name: "لوسارتان 50 ملغ", ScientificName: "Losartan", Category: "MSD", CostPrice: 4500, StripCount: 2, StripSellPrice: 3000, PacketSellPrice: 6000, ExpiryDate: "2027-03-10", Stock: 65},
		{ID: "1007", Name: "اتورفاستاتين 20 ملغ", ScientificName: "Atorvastatin", Category: "Pfizer", CostPrice: 8000, StripCount: 3, StripSellPrice: 3500, PacketSellPrice: 10000, ExpiryDate: "2026-11-25", Stock: 40},
	}
}

func seedSuppliers() []model.Supplier {
	return []model.Supplier{
		{ID: "sup1", Name: "الشركة المتحدة للأدوية", Phone: "07701234567", Balance: 150000},
		{ID: "sup2", Name: "مذخر النقاء", Phone: "07801234567", Balance: 75000},
	}
}

func seedSales(products []model.Product) []model.Sale {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)

	p0, p1, p3 := products[0], products[1], products[3]
	return []model.Sale{
		{
			ID:   "sale1",
			Date: yesterday.Format(time.RFC3339),
			Items: []model.CartItem{
				{ProductID: p0.ID, Name: p0.Name, Quantity: 2, SellUnit: model.UnitPacket, PricePerUnit: p0.PacketSellPrice, Stock: p0.Stock, StripCount: p0.StripCount},
			},
			Subtotal: p0.PacketSellPrice * 2,
			Discount: 0,
			Total:    p0.PacketSellPrice * 2,
		},
		{
			ID:   "sale2",
			Date: now.Format(time.RFC3339),
			Items: []model.CartItem{
				{ProductID: p1.ID, Name: p1.Name, Quantity: 1, SellUnit: model.UnitPacket, PricePerUnit: p1.PacketSellPrice, Stock: p1.Stock, StripCount: p1.StripCount},
				{ProductID: p3.ID, Name: p3.Name, Quantity: 1, SellUnit: model.UnitPacket, PricePerUnit: p3.PacketSellPrice, Stock: p3.Stock, StripCount: p3.StripCount},
			},
			Subtotal: p1.PacketSellPrice + p3.PacketSellPrice,
			Discount: 0,
			Total:    p1.PacketSellPrice + p3.PacketSellPrice,
		},
	}
}

// SeedState builds a complete fresh-install state document.
func SeedState() *model.AppState {
	products := seedProducts()
	return &model.AppState{
		Users:                 SeedUsers(),
		CurrentUser:           nil,
		Products:              products,
		Sales:                 seedSales(products),
		SalesReturns:          []model.SalesReturn{},
		Purchases:             []model.Purchase{},
		PurchaseReturns:       []model.PurchaseReturn{},
		Suppliers:             seedSuppliers(),
		StockAdjustments:      []model.StockAdjustmentInvoice{},
		Stocktakes:            []model.Stocktake{},
		SupplierPayments:      []model.SupplierPayment{},
		CustomerReceipts:      []model.CustomerReceipt{},
		Expenses:              []model.Expense{},
		ExpenseCategories:     SeedExpenseCategories(),
		CompanyInfo:           SeedCompanyInfo(),
		OpeningStockInvoices:  []model.OpeningStockInvoice{},
		OpeningDebtInvoices:   []model.OpeningDebtInvoice{},
		AnnualInventoryCounts: []model.AnnualInventoryCount{},
	}
}

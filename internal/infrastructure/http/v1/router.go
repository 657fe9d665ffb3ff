package v1

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/reports"
	"pharmos/internal/domain/store"
	"pharmos/internal/infrastructure/http/v1/handlers"
	"pharmos/internal/infrastructure/http/v1/middleware"
	"pharmos/pkg/logger"
	"pharmos/pkg/numerator"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Store is the authoritative state container
	Store *store.Store

	// Logger for request logging
	Logger *logger.Logger

	// JWT issues and validates access tokens
	JWT *auth.JWTService

	// Reports computes read-only aggregates
	Reports *reports.Service

	// Numerator generates document numbers
	Numerator *numerator.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	baseHandler := handlers.NewBaseHandler()

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Store)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")

	// Auth routes
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.Store, cfg.JWT)
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)

		sessionGroup := authGroup.Group("")
		sessionGroup.Use(middleware.Auth(cfg.JWT))
		sessionGroup.POST("/logout", authHandler.Logout)
		sessionGroup.GET("/me", authHandler.Me)
	}

	// Protected endpoints
	protected := apiV1.Group("")
	protected.Use(middleware.Auth(cfg.JWT))

	registerCatalogRoutes(protected, baseHandler, cfg)
	registerDocumentRoutes(protected, baseHandler, cfg)
	registerFinanceRoutes(protected, baseHandler, cfg)
	registerAdminRoutes(protected, baseHandler, cfg)
	registerReportRoutes(protected, baseHandler, cfg)

	return router
}

// registerCatalogRoutes registers product and supplier endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")

	productHandler := handlers.NewProductHandler(base, cfg.Store)
	RegisterCatalogRoutes(catalogs.Group("/products"), productHandler, auth.ViewInventory)

	supplierHandler := handlers.NewSupplierHandler(base, cfg.Store)
	RegisterCatalogRoutes(catalogs.Group("/suppliers"), supplierHandler, auth.ViewSuppliers)
}

// registerDocumentRoutes registers trade and inventory document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	docs := rg.Group("/document")

	salesHandler := handlers.NewSalesHandler(base, cfg.Store)
	{
		sales := docs.Group("/sales", middleware.RequireView(auth.ViewPOS))
		sales.GET("", salesHandler.ListSales)
		sales.POST("", salesHandler.CreateSale)

		salesReturns := docs.Group("/sales-returns", middleware.RequireView(auth.ViewSalesReturns))
		salesReturns.GET("", salesHandler.ListSalesReturns)
		salesReturns.POST("", salesHandler.CreateSalesReturn)
	}

	purchaseHandler := handlers.NewPurchaseHandler(base, cfg.Store, cfg.Numerator)
	{
		purchases := docs.Group("/purchases", middleware.RequireView(auth.ViewPurchases))
		purchases.GET("", purchaseHandler.ListPurchases)
		purchases.POST("", purchaseHandler.CreatePurchase)
		purchases.GET("/:id", purchaseHandler.GetPurchase)
		purchases.PUT("/:id", purchaseHandler.UpdatePurchase)
		purchases.DELETE("/:id", purchaseHandler.DeletePurchase)
		purchases.POST("/:id/corrupt", purchaseHandler.CorruptPurchase)

		purchaseReturns := docs.Group("/purchase-returns", middleware.RequireView(auth.ViewPurchaseReturns))
		purchaseReturns.GET("", purchaseHandler.ListPurchaseReturns)
		purchaseReturns.POST("", purchaseHandler.CreatePurchaseReturn)
		purchaseReturns.PUT("/:id", purchaseHandler.UpdatePurchaseReturn)
		purchaseReturns.DELETE("/:id", purchaseHandler.DeletePurchaseReturn)
	}

	inventoryHandler := handlers.NewInventoryHandler(base, cfg.Store)
	{
		adjustments := docs.Group("/stock-adjustments", middleware.RequireView(auth.ViewStockAdjustments))
		adjustments.GET("", inventoryHandler.ListAdjustments)
		adjustments.POST("", inventoryHandler.CreateAdjustment)

		stocktakes := docs.Group("/stocktakes", middleware.RequireView(auth.ViewStocktake))
		stocktakes.GET("", inventoryHandler.ListStocktakes)
		stocktakes.POST("", inventoryHandler.CreateStocktake)
	}

	openingHandler := handlers.NewOpeningHandler(base, cfg.Store)
	{
		openingStock := docs.Group("/opening-stock", middleware.RequireView(auth.ViewFinancials))
		openingStock.GET("", openingHandler.ListOpeningStock)
		openingStock.POST("", openingHandler.CreateOpeningStock)
		openingStock.DELETE("/:id", openingHandler.DeleteOpeningStock)

		openingDebt := docs.Group("/opening-debt", middleware.RequireView(auth.ViewFinancials))
		openingDebt.GET("", openingHandler.ListOpeningDebt)
		openingDebt.POST("", openingHandler.CreateOpeningDebt)
		openingDebt.DELETE("/:id", openingHandler.DeleteOpeningDebt)
	}
}

// registerFinanceRoutes registers money movement endpoints.
func registerFinanceRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	finance := rg.Group("/finance", middleware.RequireView(auth.ViewFinancials))
	financeHandler := handlers.NewFinanceHandler(base, cfg.Store)

	finance.GET("/supplier-payments", financeHandler.ListSupplierPayments)
	finance.POST("/supplier-payments", financeHandler.CreateSupplierPayment)
	finance.DELETE("/supplier-payments/:id", financeHandler.DeleteSupplierPayment)

	finance.GET("/customer-receipts", financeHandler.ListCustomerReceipts)
	finance.POST("/customer-receipts", financeHandler.CreateCustomerReceipt)
	finance.DELETE("/customer-receipts/:id", financeHandler.DeleteCustomerReceipt)

	finance.GET("/expenses", financeHandler.ListExpenses)
	finance.POST("/expenses", financeHandler.CreateExpense)
	finance.DELETE("/expenses/:id", financeHandler.DeleteExpense)

	finance.GET("/expense-categories", financeHandler.ListExpenseCategories)
	finance.POST("/expense-categories", financeHandler.CreateExpenseCategory)
}

// registerAdminRoutes registers account, company and backup endpoints.
func registerAdminRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	admin := rg.Group("/admin", middleware.RequireView(auth.ViewAdmin))

	userHandler := handlers.NewUserHandler(base, cfg.Store)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	adminHandler := handlers.NewAdminHandler(base, cfg.Store)
	admin.GET("/company", adminHandler.GetCompany)
	admin.PUT("/company", adminHandler.UpdateCompany)
	admin.GET("/annual-counts", adminHandler.ListAnnualCounts)
	admin.POST("/annual-counts", adminHandler.CreateAnnualCount)
	admin.GET("/backup", adminHandler.ExportBackup)
	admin.POST("/backup", adminHandler.ImportBackup)
}

// registerReportRoutes registers report endpoints. The dashboard is open to
// every role; the rest sits behind the reports view.
func registerReportRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	reportsGroup := rg.Group("/reports")
	reportHandler := handlers.NewReportsHandler(base, cfg.Reports)

	reportsGroup.GET("/dashboard", middleware.RequireView(auth.ViewDashboard), reportHandler.Dashboard)
	reportsGroup.GET("/stock-value", middleware.RequireView(auth.ViewReports), reportHandler.StockValue)
	reportsGroup.GET("/supplier-debts", middleware.RequireView(auth.ViewReports), reportHandler.SupplierDebts)
	reportsGroup.GET("/profit", middleware.RequireView(auth.ViewReports), reportHandler.Profit)
}

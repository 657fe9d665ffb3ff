// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"pharmos/internal/domain/auth"
	"pharmos/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog under
// one application view.
//
// Usage:
//
//	handler := handlers.NewProductHandler(baseHandler, store)
//	RegisterCatalogRoutes(catalogs.Group("/products"), handler, auth.ViewInventory)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, view auth.View) {
	group.Use(middleware.RequireView(view))
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

package catalog

import (
	"festly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public read route: furniture and service items for a venue
	venues := rg.Group("/venues")
	{
		venues.GET("/:id/catalog", controller.GetCatalogByVenue) // GET /api/v1/venues/:id/catalog
	}

	// Admin management routes
	admin := rg.Group("/admin/catalog")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateItem)       // POST /api/v1/admin/catalog
		admin.GET("/:id", controller.GetItem)       // GET /api/v1/admin/catalog/:id
		admin.PUT("/:id", controller.UpdateItem)    // PUT /api/v1/admin/catalog/:id
		admin.DELETE("/:id", controller.DeleteItem) // DELETE /api/v1/admin/catalog/:id
	}
}

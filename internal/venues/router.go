package venues

import (
	"festly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing routes
	venues := rg.Group("/venues")
	{
		venues.GET("", controller.ListVenues)          // GET /api/v1/venues
		venues.GET("/:id", controller.GetVenue)        // GET /api/v1/venues/:id
		venues.GET("/:id/rate", controller.GetVenueRate) // GET /api/v1/venues/:id/rate
	}

	// Admin management routes
	admin := rg.Group("/admin/venues")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateVenue)       // POST /api/v1/admin/venues
		admin.PUT("/:id", controller.UpdateVenue)    // PUT /api/v1/admin/venues/:id
		admin.DELETE("/:id", controller.DeleteVenue) // DELETE /api/v1/admin/venues/:id
	}
}

package booking

import (
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Guest-facing booking flow, no login required
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", controller.StartSession)                         // POST /api/v1/bookings
		bookings.GET("/:id", controller.GetSession)                        // GET /api/v1/bookings/:id
		bookings.PUT("/:id/identity", controller.UpdateIdentity)           // PUT /api/v1/bookings/:id/identity
		bookings.PUT("/:id/selections", controller.UpdateSelection)        // PUT /api/v1/bookings/:id/selections
		bookings.PUT("/:id/window", controller.SetTimeWindow)              // PUT /api/v1/bookings/:id/window
		bookings.POST("/:id/advance", controller.Advance)                  // POST /api/v1/bookings/:id/advance
		bookings.POST("/:id/retreat", controller.Retreat)                  // POST /api/v1/bookings/:id/retreat
		bookings.POST("/:id/payment", controller.SubmitPayment)            // POST /api/v1/bookings/:id/payment
		bookings.DELETE("/:id", controller.Abandon)                        // DELETE /api/v1/bookings/:id?confirm=true
		bookings.POST("/validate-field", controller.ValidateIdentityField) // POST /api/v1/bookings/validate-field
	}

	// Confirmed reservation lookup by code
	reservations := rg.Group("/reservations")
	{
		reservations.GET("/:code", controller.GetReservation) // GET /api/v1/reservations/:code
	}
}

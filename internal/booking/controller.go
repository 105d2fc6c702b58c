package booking

import (
	"errors"
	"net/http"

	"festly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) StartSession(ctx *gin.Context) {
	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	view, err := c.service.StartSession(ctx.Request.Context(), venueID)
	if err != nil {
		c.respondError(ctx, err, "Failed to start booking session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking session started", view, nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	view, err := c.service.GetSession(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondError(ctx, err, "Failed to get booking session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking session retrieved", view, nil)
}

func (c *Controller) UpdateIdentity(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req UpdateIdentityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.UpdateIdentity(ctx.Request.Context(), sessionID, GuestIdentity{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentNumber: req.DocumentNumber,
		GuestCount:     req.GuestCount,
	})
	if err != nil {
		c.respondError(ctx, err, "Failed to update guest identity")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Guest identity updated", view, nil)
}

func (c *Controller) ValidateIdentityField(ctx *gin.Context) {
	var req ValidateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result := ValidateField(req.Field, req.Value)
	response.RespondJSON(ctx, "success", http.StatusOK, "Field validated", result, nil)
}

func (c *Controller) UpdateSelection(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req UpdateSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid item ID", nil, err.Error())
		return
	}

	view, err := c.service.UpdateSelection(ctx.Request.Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		c.respondError(ctx, err, "Failed to update selection")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection updated", view, nil)
}

func (c *Controller) SetTimeWindow(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req SetTimeWindowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.SetTimeWindow(ctx.Request.Context(), sessionID, TimeWindow{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		c.respondError(ctx, err, "Failed to set time window")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Time window updated", view, nil)
}

func (c *Controller) Advance(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	view, err := c.service.Advance(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondError(ctx, err, "Cannot advance to next stage")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Advanced to next stage", view, nil)
}

func (c *Controller) Retreat(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	view, err := c.service.Retreat(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondError(ctx, err, "Cannot go back to previous stage")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Returned to previous stage", view, nil)
}

func (c *Controller) SubmitPayment(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req SubmitPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.SubmitPayment(ctx.Request.Context(), sessionID, req.PaymentMethod, req.ApprovalToken)
	if err != nil {
		c.respondError(ctx, err, "Reservation submission failed")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation confirmed", view, nil)
}

// Abandon discards a session. It is destructive, so it requires the
// explicit ?confirm=true flag; without it nothing is deleted.
func (c *Controller) Abandon(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	if ctx.Query("confirm") != "true" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest,
			"Abandoning discards all booking progress; pass confirm=true to proceed", nil, nil)
		return
	}

	if err := c.service.Abandon(ctx.Request.Context(), sessionID); err != nil {
		c.respondError(ctx, err, "Failed to abandon booking session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking session abandoned", nil, nil)
}

func (c *Controller) GetReservation(ctx *gin.Context) {
	code := ctx.Param("code")

	reservation, err := c.service.GetReservationByCode(ctx.Request.Context(), code)
	if err != nil {
		c.respondError(ctx, err, "Failed to get reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation retrieved", ToReservationResponse(reservation), nil)
}

func (c *Controller) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid session ID", nil, err.Error())
		return uuid.Nil, false
	}
	return sessionID, true
}

func (c *Controller) respondError(ctx *gin.Context, err error, message string) {
	response.RespondJSON(ctx, "error", statusForError(err), message, nil, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrVenueUnavailable):
		return http.StatusNotFound
	case errors.Is(err, ErrSubmissionInFlight),
		errors.Is(err, ErrSessionConfirmed):
		return http.StatusConflict
	case errors.Is(err, ErrIdentityInvalid),
		errors.Is(err, ErrSelectionInvalid),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrSubmitRequired),
		errors.Is(err, ErrPaymentMethodMissing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

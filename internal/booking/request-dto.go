package booking

// StartSessionRequest opens a booking session for a venue
type StartSessionRequest struct {
	VenueID string `json:"venue_id" binding:"required,uuid"`
}

// UpdateIdentityRequest carries the guest identity form. Binding stays
// loose here: field-level rules live in the identity validator so the
// guest gets per-field messages instead of a bind failure.
type UpdateIdentityRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"document_number"`
	GuestCount     int    `json:"guest_count"`
}

// UpdateSelectionRequest sets the quantity for one catalog item
type UpdateSelectionRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

// SetTimeWindowRequest sets the rental window in 24-hour HH:MM
type SetTimeWindowRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// SubmitPaymentRequest triggers the single submission commit point
type SubmitPaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	ApprovalToken string `json:"approval_token"`
}

// ValidateFieldRequest checks a single identity field as the guest types
type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

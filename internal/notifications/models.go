package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventStatus tracks a confirmation event through the pipeline
type EventStatus string

const (
	EventStatusQueued  EventStatus = "QUEUED"
	EventStatusSending EventStatus = "SENDING"
	EventStatusSent    EventStatus = "SENT"
	EventStatusFailed  EventStatus = "FAILED"
)

// ConfirmationEvent is the message published when a reservation is
// confirmed. It carries everything the email worker needs, so the
// worker never reads the database.
type ConfirmationEvent struct {
	ID               uuid.UUID   `json:"id"`
	ConfirmationCode string      `json:"confirmation_code"`
	VenueID          uuid.UUID   `json:"venue_id"`
	GuestName        string      `json:"guest_name"`
	GuestEmail       string      `json:"guest_email"`
	GuestCount       int         `json:"guest_count"`
	StartTime        string      `json:"start_time"`
	EndTime          string      `json:"end_time"`
	Total            float64     `json:"total"`
	Status           EventStatus `json:"status"`
	LastError        string      `json:"last_error,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

func (e *ConfirmationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes events for the same guest to the same partition,
// preserving per-guest ordering
func (e *ConfirmationEvent) PartitionKey() string {
	return e.GuestEmail
}

func (e *ConfirmationEvent) MarkSent() {
	e.Status = EventStatusSent
}

func (e *ConfirmationEvent) MarkFailed(err error) {
	e.Status = EventStatusFailed
	e.LastError = err.Error()
}

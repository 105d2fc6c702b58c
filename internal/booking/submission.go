package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// DraftLine is one priced selection inside a submission draft
type DraftLine struct {
	CatalogItemID uuid.UUID `json:"catalog_item_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	LineTotal     float64   `json:"line_total"`
}

// Draft is everything the submission adapter needs to commit one
// reservation, assembled from the workflow state at submit time
type Draft struct {
	SessionID     uuid.UUID     `json:"session_id"`
	VenueID       uuid.UUID     `json:"venue_id"`
	Identity      GuestIdentity `json:"identity"`
	Window        TimeWindow    `json:"window"`
	Breakdown     Breakdown     `json:"breakdown"`
	Lines         []DraftLine   `json:"lines"`
	PaymentMethod string        `json:"payment_method"`
	ApprovalToken string        `json:"approval_token"`
}

// SubmissionAdapter commits a draft to the backing system and returns
// its confirmation code. Implementations decide what "commit" means;
// the workflow only cares about success or failure.
type SubmissionAdapter interface {
	Submit(ctx context.Context, draft Draft) (string, error)
}

type gormSubmissionAdapter struct {
	repo Repository
}

// NewSubmissionAdapter commits drafts as reservation rows through the
// booking repository
func NewSubmissionAdapter(repo Repository) SubmissionAdapter {
	return &gormSubmissionAdapter{repo: repo}
}

func (a *gormSubmissionAdapter) Submit(ctx context.Context, draft Draft) (string, error) {
	code, err := generateConfirmationCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	reservation := draftToReservation(draft, code)
	if err := a.repo.Create(ctx, reservation); err != nil {
		return "", fmt.Errorf("failed to persist reservation: %w", err)
	}

	return code, nil
}

func draftToReservation(draft Draft, code string) *Reservation {
	reservation := &Reservation{
		ConfirmationCode: code,
		VenueID:          draft.VenueID,

		GuestFirstName: draft.Identity.FirstName,
		GuestLastName:  draft.Identity.LastName,
		GuestEmail:     draft.Identity.Email,
		GuestPhone:     draft.Identity.Phone,
		GuestDocument:  draft.Identity.DocumentNumber,
		GuestCount:     draft.Identity.GuestCount,

		StartTime:   draft.Window.StartTime,
		EndTime:     draft.Window.EndTime,
		BilledHours: draft.Breakdown.BilledHours,

		HourlyRate:    draft.Breakdown.HourlyRate,
		VenueCost:     draft.Breakdown.VenueCost,
		FurnitureCost: draft.Breakdown.FurnitureCost,
		MandatoryCost: draft.Breakdown.MandatoryCost,
		Subtotal:      draft.Breakdown.Subtotal,
		Tax:           draft.Breakdown.Tax,
		Total:         draft.Breakdown.Total,

		PaymentMethod: draft.PaymentMethod,
		ApprovalToken: draft.ApprovalToken,
	}

	for _, line := range draft.Lines {
		reservation.Items = append(reservation.Items, ReservationItem{
			CatalogItemID: line.CatalogItemID,
			Name:          line.Name,
			Category:      line.Category,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			LineTotal:     line.LineTotal,
		})
	}

	return reservation
}

const confirmationCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateConfirmationCode produces a code like FST-K7M2P9QX, skipping
// ambiguous characters (0/O, 1/I)
func generateConfirmationCode() (string, error) {
	const length = 8

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmationCharset))))
		if err != nil {
			return "", err
		}
		code[i] = confirmationCharset[n.Int64()]
	}

	return fmt.Sprintf("FST-%s", string(code)), nil
}

package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode_Format(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		code, err := generateConfirmationCode()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(code, "FST-"))
		assert.Len(t, code, 12)

		suffix := strings.TrimPrefix(code, "FST-")
		for _, ch := range suffix {
			assert.Contains(t, confirmationCharset, string(ch), "ambiguous characters must not appear")
		}

		assert.False(t, seen[code], "codes should not repeat")
		seen[code] = true
	}
}

func TestDraftToReservation_MapsAllFields(t *testing.T) {
	itemID := uuid.New()
	draft := Draft{
		SessionID: uuid.New(),
		VenueID:   uuid.New(),
		Identity:  validIdentity(),
		Window:    TimeWindow{StartTime: "18:00", EndTime: "23:00"},
		Breakdown: Breakdown{
			BilledHours:   5,
			HourlyRate:    500,
			VenueCost:     2500,
			FurnitureCost: 500,
			MandatoryCost: 200,
			Subtotal:      3200,
			Tax:           576,
			Total:         3776,
		},
		Lines: []DraftLine{
			{CatalogItemID: itemID, Name: "Sillas", Category: "FURNITURE", UnitPrice: 5, Quantity: 100, LineTotal: 500},
		},
		PaymentMethod: "cash",
		ApprovalToken: "APR-1",
	}

	reservation := draftToReservation(draft, "FST-MAP12345")

	assert.Equal(t, "FST-MAP12345", reservation.ConfirmationCode)
	assert.Equal(t, draft.VenueID, reservation.VenueID)
	assert.Equal(t, "Maria", reservation.GuestFirstName)
	assert.Equal(t, "Quispe", reservation.GuestLastName)
	assert.Equal(t, 80, reservation.GuestCount)
	assert.Equal(t, "18:00", reservation.StartTime)
	assert.Equal(t, "23:00", reservation.EndTime)
	assert.Equal(t, 5, reservation.BilledHours)
	assert.InDelta(t, 3776.0, reservation.Total, 1e-9)
	assert.Equal(t, "cash", reservation.PaymentMethod)
	assert.Equal(t, "APR-1", reservation.ApprovalToken)

	require.Len(t, reservation.Items, 1)
	assert.Equal(t, itemID, reservation.Items[0].CatalogItemID)
	assert.Equal(t, 100, reservation.Items[0].Quantity)
	assert.InDelta(t, 500.0, reservation.Items[0].LineTotal, 1e-9)
}

type stubRepo struct {
	created *Reservation
	err     error
}

func (r *stubRepo) Create(ctx context.Context, reservation *Reservation) error {
	if r.err != nil {
		return r.err
	}
	r.created = reservation
	return nil
}

func (r *stubRepo) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	return nil, ErrReservationNotFound
}

func TestSubmissionAdapter_PersistsAndReturnsCode(t *testing.T) {
	repo := &stubRepo{}
	adapter := NewSubmissionAdapter(repo)

	code, err := adapter.Submit(context.Background(), Draft{
		VenueID:  uuid.New(),
		Identity: validIdentity(),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "FST-"))
	require.NotNil(t, repo.created)
	assert.Equal(t, code, repo.created.ConfirmationCode)
}

func TestSubmissionAdapter_PropagatesRepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	adapter := NewSubmissionAdapter(repo)

	code, err := adapter.Submit(context.Background(), Draft{VenueID: uuid.New()})

	assert.Error(t, err)
	assert.Empty(t, code)
}

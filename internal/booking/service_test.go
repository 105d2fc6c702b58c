package booking

import (
	"context"
	"errors"
	"testing"

	"festly/internal/catalog"
	"festly/internal/venues"
	"festly/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRateProvider struct {
	mock.Mock
}

func (m *mockRateProvider) GetVenueRate(ctx context.Context, venueID uuid.UUID) (*venues.Rate, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.Rate), args.Error(1)
}

type mockCatalogProvider struct {
	mock.Mock
}

func (m *mockCatalogProvider) GetCatalog(ctx context.Context, venueID uuid.UUID) ([]catalog.Item, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

type mockSubmissionAdapter struct {
	mock.Mock
}

func (m *mockSubmissionAdapter) Submit(ctx context.Context, draft Draft) (string, error) {
	args := m.Called(ctx, draft)
	return args.String(0), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyReservationConfirmed(ctx context.Context, reservation *Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, reservation *Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *mockRepository) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

type serviceFixture struct {
	service  Service
	rates    *mockRateProvider
	catalog  *mockCatalogProvider
	adapter  *mockSubmissionAdapter
	notifier *mockNotifier
	repo     *mockRepository

	venueID   uuid.UUID
	seguridad catalog.Item
	sillas    catalog.Item
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	stock := 300
	f := &serviceFixture{
		rates:    new(mockRateProvider),
		catalog:  new(mockCatalogProvider),
		adapter:  new(mockSubmissionAdapter),
		notifier: new(mockNotifier),
		repo:     new(mockRepository),
		venueID:  uuid.New(),
	}

	f.seguridad = catalog.Item{ID: uuid.New(), Name: "Seguridad", UnitPrice: 200, Category: catalog.CategoryMandatory}
	f.sillas = catalog.Item{ID: uuid.New(), Name: "Silla tiffany", UnitPrice: 5, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: &stock}

	f.rates.On("GetVenueRate", mock.Anything, f.venueID).
		Return(&venues.Rate{VenueID: f.venueID, HourlyRate: 500}, nil)
	f.catalog.On("GetCatalog", mock.Anything, f.venueID).
		Return([]catalog.Item{f.seguridad, f.sillas}, nil)

	f.service = NewService(
		f.rates,
		f.catalog,
		NewMemorySessionStore(),
		f.adapter,
		f.repo,
		f.notifier,
		nil,
		logger.GetDefault(),
	)

	return f
}

// driveToPayment walks a fresh session to the payment stage
func (f *serviceFixture) driveToPayment(t *testing.T) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	view, err := f.service.StartSession(ctx, f.venueID)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = f.service.UpdateIdentity(ctx, sessionID, validIdentity())
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, sessionID)
	require.NoError(t, err)

	_, err = f.service.SetTimeWindow(ctx, sessionID, TimeWindow{StartTime: "18:00", EndTime: "23:00"})
	require.NoError(t, err)
	_, err = f.service.UpdateSelection(ctx, sessionID, f.sillas.ID, 100)
	require.NoError(t, err)

	view, err = f.service.Advance(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, StagePayment, view.Stage)

	return sessionID
}

func TestStartSession_OpensAtIdentityWithMandatorySelected(t *testing.T) {
	f := newServiceFixture(t)

	view, err := f.service.StartSession(context.Background(), f.venueID)

	require.NoError(t, err)
	assert.Equal(t, StageIdentity, view.Stage)
	assert.Equal(t, f.venueID, view.VenueID)
	assert.Equal(t, 1, view.Selections[f.seguridad.ID])
}

func TestStartSession_UnknownVenue(t *testing.T) {
	f := newServiceFixture(t)
	unknownID := uuid.New()
	f.rates.On("GetVenueRate", mock.Anything, unknownID).
		Return(nil, venues.ErrVenueNotFound)

	_, err := f.service.StartSession(context.Background(), unknownID)

	assert.ErrorIs(t, err, ErrVenueUnavailable)
}

func TestSelectionPolicy_SeatingMustCoverGuestCount(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	view, err := f.service.StartSession(ctx, f.venueID)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = f.service.UpdateIdentity(ctx, sessionID, validIdentity()) // 80 guests
	require.NoError(t, err)
	_, err = f.service.SetTimeWindow(ctx, sessionID, TimeWindow{StartTime: "18:00", EndTime: "23:00"})
	require.NoError(t, err)

	// 50 chairs for 80 guests is not enough
	view, err = f.service.UpdateSelection(ctx, sessionID, f.sillas.ID, 50)
	require.NoError(t, err)
	assert.False(t, view.SelectionValid)

	view, err = f.service.UpdateSelection(ctx, sessionID, f.sillas.ID, 80)
	require.NoError(t, err)
	assert.True(t, view.SelectionValid)
}

func TestSubmitPayment_ConfirmsAndNotifies(t *testing.T) {
	f := newServiceFixture(t)
	sessionID := f.driveToPayment(t)
	ctx := context.Background()

	reservation := &Reservation{ConfirmationCode: "FST-OK123456", VenueID: f.venueID}
	f.adapter.On("Submit", mock.Anything, mock.Anything).Return("FST-OK123456", nil).Once()
	f.repo.On("GetByCode", mock.Anything, "FST-OK123456").Return(reservation, nil)
	f.notifier.On("NotifyReservationConfirmed", mock.Anything, reservation).Return(nil).Once()

	view, err := f.service.SubmitPayment(ctx, sessionID, "cash", "APR-1")

	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, view.Stage)
	assert.Equal(t, "FST-OK123456", view.ConfirmationCode)
	assert.InDelta(t, 3776.0, view.Breakdown.Total, 1e-9)

	f.adapter.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestSubmitPayment_DraftRepricedFromCatalog(t *testing.T) {
	f := newServiceFixture(t)
	sessionID := f.driveToPayment(t)

	var captured Draft
	f.adapter.On("Submit", mock.Anything, mock.MatchedBy(func(d Draft) bool {
		captured = d
		return true
	})).Return("FST-DRAFT123", nil).Once()
	f.repo.On("GetByCode", mock.Anything, "FST-DRAFT123").Return(&Reservation{ConfirmationCode: "FST-DRAFT123"}, nil)
	f.notifier.On("NotifyReservationConfirmed", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.SubmitPayment(context.Background(), sessionID, "card", "APR-2")
	require.NoError(t, err)

	assert.Equal(t, f.venueID, captured.VenueID)
	assert.Equal(t, "card", captured.PaymentMethod)
	assert.Len(t, captured.Lines, 2)

	for _, line := range captured.Lines {
		switch line.CatalogItemID {
		case f.sillas.ID:
			assert.Equal(t, 100, line.Quantity)
			assert.InDelta(t, 5.0, line.UnitPrice, 1e-9, "unit price comes from the catalog, not the client")
			assert.InDelta(t, 500.0, line.LineTotal, 1e-9)
		case f.seguridad.ID:
			assert.Equal(t, 1, line.Quantity)
			assert.InDelta(t, 200.0, line.LineTotal, 1e-9)
		default:
			t.Fatalf("unexpected line item %s", line.CatalogItemID)
		}
	}
}

func TestSubmitPayment_FailureKeepsPaymentAndAllowsRetry(t *testing.T) {
	f := newServiceFixture(t)
	sessionID := f.driveToPayment(t)
	ctx := context.Background()

	f.adapter.On("Submit", mock.Anything, mock.Anything).
		Return("", errors.New("gateway timeout")).Once()

	_, err := f.service.SubmitPayment(ctx, sessionID, "cash", "APR-3")
	require.Error(t, err)

	view, err := f.service.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, StagePayment, view.Stage)
	assert.Empty(t, view.ConfirmationCode)
	assert.Empty(t, view.ApprovalToken)

	// the in-flight guard cleared, the retry goes through
	f.adapter.On("Submit", mock.Anything, mock.Anything).Return("FST-RETRY123", nil).Once()
	f.repo.On("GetByCode", mock.Anything, "FST-RETRY123").Return(&Reservation{ConfirmationCode: "FST-RETRY123"}, nil)
	f.notifier.On("NotifyReservationConfirmed", mock.Anything, mock.Anything).Return(nil)

	view, err = f.service.SubmitPayment(ctx, sessionID, "cash", "APR-3")
	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, view.Stage)

	f.adapter.AssertExpectations(t)
}

func TestSubmitPayment_NotifierFailureDoesNotRollBack(t *testing.T) {
	f := newServiceFixture(t)
	sessionID := f.driveToPayment(t)

	f.adapter.On("Submit", mock.Anything, mock.Anything).Return("FST-NOTIF123", nil).Once()
	f.repo.On("GetByCode", mock.Anything, "FST-NOTIF123").Return(&Reservation{ConfirmationCode: "FST-NOTIF123"}, nil)
	f.notifier.On("NotifyReservationConfirmed", mock.Anything, mock.Anything).
		Return(errors.New("kafka unavailable"))

	view, err := f.service.SubmitPayment(context.Background(), sessionID, "cash", "APR-4")

	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, view.Stage)
}

func TestRetreat_PreservesSelectionsAcrossStages(t *testing.T) {
	f := newServiceFixture(t)
	sessionID := f.driveToPayment(t)
	ctx := context.Background()

	view, err := f.service.Retreat(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, StageSelections, view.Stage)
	assert.Equal(t, 100, view.Selections[f.sillas.ID])

	view, err = f.service.Retreat(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, StageIdentity, view.Stage)
	assert.Equal(t, 100, view.Selections[f.sillas.ID])
}

func TestAbandon_DiscardsSession(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	view, err := f.service.StartSession(ctx, f.venueID)
	require.NoError(t, err)

	require.NoError(t, f.service.Abandon(ctx, view.SessionID))

	_, err = f.service.GetSession(ctx, view.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_UnknownSession(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.GetSession(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

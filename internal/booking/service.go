package booking

import (
	"context"
	"errors"
	"fmt"

	"festly/internal/catalog"
	"festly/internal/shared/constants"
	"festly/internal/venues"
	"festly/pkg/cache"
	"festly/pkg/logger"

	"github.com/google/uuid"
)

var ErrVenueUnavailable = errors.New("venue is not available for booking")

// seatingSubcategory marks the catalog items counted against guest
// capacity by the selection policy
const seatingSubcategory = "chairs"

// ConfirmationNotifier is told about confirmed reservations after the
// commit point. Notification failures never roll back a reservation.
type ConfirmationNotifier interface {
	NotifyReservationConfirmed(ctx context.Context, reservation *Reservation) error
}

// Service interface defines the contract for the booking workflow
type Service interface {
	StartSession(ctx context.Context, venueID uuid.UUID) (*View, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*View, error)
	UpdateIdentity(ctx context.Context, sessionID uuid.UUID, identity GuestIdentity) (*View, error)
	UpdateSelection(ctx context.Context, sessionID uuid.UUID, itemID uuid.UUID, qty int) (*View, error)
	SetTimeWindow(ctx context.Context, sessionID uuid.UUID, window TimeWindow) (*View, error)
	Advance(ctx context.Context, sessionID uuid.UUID) (*View, error)
	Retreat(ctx context.Context, sessionID uuid.UUID) (*View, error)
	SubmitPayment(ctx context.Context, sessionID uuid.UUID, methodID, approvalToken string) (*View, error)
	Abandon(ctx context.Context, sessionID uuid.UUID) error
	GetReservationByCode(ctx context.Context, code string) (*Reservation, error)
}

type service struct {
	rates    venues.RateProvider
	catalog  catalog.Provider
	sessions SessionStore
	adapter  SubmissionAdapter
	repo     Repository
	notifier ConfirmationNotifier
	cache    cache.Service
	log      *logger.Logger
}

func NewService(
	rates venues.RateProvider,
	catalogProvider catalog.Provider,
	sessions SessionStore,
	adapter SubmissionAdapter,
	repo Repository,
	notifier ConfirmationNotifier,
	cacheService cache.Service,
	log *logger.Logger,
) Service {
	return &service{
		rates:    rates,
		catalog:  catalogProvider,
		sessions: sessions,
		adapter:  adapter,
		repo:     repo,
		notifier: notifier,
		cache:    cacheService,
		log:      log,
	}
}

// StartSession opens a booking session for a venue, snapshotting its
// rate so mid-session rate changes cannot shift the quoted price
func (s *service) StartSession(ctx context.Context, venueID uuid.UUID) (*View, error) {
	rate, err := s.rates.GetVenueRate(ctx, venueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			return nil, ErrVenueUnavailable
		}
		return nil, fmt.Errorf("failed to fetch venue rate: %w", err)
	}

	state := NewState(venueID, *rate)

	wf, err := s.buildWorkflow(ctx, state)
	if err != nil {
		return nil, err
	}
	s.refreshSelectionValidity(wf)

	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}

	s.log.LogBookingStarted(ctx, state.SessionID.String(), venueID.String())

	view := wf.View()
	return &view, nil
}

func (s *service) GetSession(ctx context.Context, sessionID uuid.UUID) (*View, error) {
	wf, err := s.loadWorkflow(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := wf.View()
	return &view, nil
}

func (s *service) UpdateIdentity(ctx context.Context, sessionID uuid.UUID, identity GuestIdentity) (*View, error) {
	return s.mutate(ctx, sessionID, func(wf *Workflow) error {
		return wf.UpdateIdentity(identity)
	})
}

func (s *service) UpdateSelection(ctx context.Context, sessionID uuid.UUID, itemID uuid.UUID, qty int) (*View, error) {
	return s.mutate(ctx, sessionID, func(wf *Workflow) error {
		return wf.UpdateSelection(itemID, qty)
	})
}

func (s *service) SetTimeWindow(ctx context.Context, sessionID uuid.UUID, window TimeWindow) (*View, error) {
	return s.mutate(ctx, sessionID, func(wf *Workflow) error {
		return wf.SetTimeWindow(window)
	})
}

func (s *service) Advance(ctx context.Context, sessionID uuid.UUID) (*View, error) {
	return s.mutate(ctx, sessionID, func(wf *Workflow) error {
		return wf.Advance()
	})
}

func (s *service) Retreat(ctx context.Context, sessionID uuid.UUID) (*View, error) {
	return s.mutate(ctx, sessionID, func(wf *Workflow) error {
		return wf.Retreat()
	})
}

// SubmitPayment is the single commit point of the workflow. The guard
// flag is persisted before the adapter is called, so a concurrent
// submit on the same session is rejected instead of double-committing.
func (s *service) SubmitPayment(ctx context.Context, sessionID uuid.UUID, methodID, approvalToken string) (*View, error) {
	wf, err := s.loadWorkflow(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := wf.BeginSubmission(methodID, approvalToken); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, wf.State()); err != nil {
		return nil, err
	}

	draft := s.buildDraft(wf, methodID, approvalToken)

	code, submitErr := s.adapter.Submit(ctx, draft)
	if submitErr != nil {
		s.log.LogSubmissionFailed(ctx, sessionID.String(), submitErr)

		if err := wf.FailSubmission(); err != nil {
			return nil, err
		}
		if err := s.sessions.Save(ctx, wf.State()); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("reservation submission failed: %w", submitErr)
	}

	if err := wf.CompleteSubmission(code); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, wf.State()); err != nil {
		return nil, err
	}

	s.log.LogReservationConfirmed(ctx, sessionID.String(), wf.State().VenueID.String(), code, wf.Breakdown().Total)
	s.notifyConfirmed(ctx, code)

	view := wf.View()
	return &view, nil
}

// Abandon discards the session and everything in it. The destructive
// confirmation prompt lives at the transport layer; by the time this
// runs the guest has already confirmed.
func (s *service) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.log.LogBookingAbandoned(ctx, sessionID.String(), string(state.Stage))
	return nil
}

// GetReservationByCode looks up a confirmed reservation, cached briefly
// since confirmation pages tend to be refreshed
func (s *service) GetReservationByCode(ctx context.Context, code string) (*Reservation, error) {
	if s.cache == nil {
		return s.repo.GetByCode(ctx, code)
	}

	var reservation Reservation
	err := s.cache.GetOrSet(ctx,
		constants.BuildReservationByCodeKey(code),
		constants.TTL_RESERVATION_BY_CODE,
		func() (interface{}, error) {
			return s.repo.GetByCode(ctx, code)
		},
		&reservation,
	)
	if err != nil {
		return s.repo.GetByCode(ctx, code)
	}
	return &reservation, nil
}

// mutate runs one command against a loaded workflow, re-evaluates the
// selection policy, persists, and returns the fresh read model
func (s *service) mutate(ctx context.Context, sessionID uuid.UUID, command func(*Workflow) error) (*View, error) {
	wf, err := s.loadWorkflow(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := command(wf); err != nil {
		return nil, err
	}

	s.refreshSelectionValidity(wf)

	if err := s.sessions.Save(ctx, wf.State()); err != nil {
		return nil, err
	}

	view := wf.View()
	return &view, nil
}

func (s *service) loadWorkflow(ctx context.Context, sessionID uuid.UUID) (*Workflow, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildWorkflow(ctx, state)
}

func (s *service) buildWorkflow(ctx context.Context, state *State) (*Workflow, error) {
	items, err := s.catalog.GetCatalog(ctx, state.VenueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue catalog: %w", err)
	}

	wf := NewWorkflow(state, items)

	for _, staleID := range wf.Breakdown().StaleItemIDs {
		s.log.LogStaleCatalogItem(ctx, staleID.String())
	}

	return wf, nil
}

// refreshSelectionValidity applies the selection policy: when the venue
// offers seating, the seated count must cover the guest count; venues
// without seating items skip the check. The time window must also be
// complete before selections can be considered done.
func (s *service) refreshSelectionValidity(wf *Workflow) {
	state := wf.State()
	if state.Stage == StageConfirmed {
		return
	}

	valid := state.Window.IsComplete() && seatingCovers(wf.Ledger(), state.Identity.GuestCount)
	wf.SetSelectionValid(valid)
}

func seatingCovers(ledger *SelectionLedger, guestCount int) bool {
	offered := false
	seated := 0

	for id, qty := range ledger.Quantities() {
		if item, ok := ledger.Item(id); ok && item.Subcategory == seatingSubcategory {
			seated += qty
		}
	}
	for _, item := range ledger.Items() {
		if item.Subcategory == seatingSubcategory {
			offered = true
			break
		}
	}

	if !offered {
		return true
	}
	return seated >= guestCount
}

// buildDraft reprices every ledger line from the catalog at submission
// time; quantities are trusted from the ledger, prices never from the
// client
func (s *service) buildDraft(wf *Workflow, methodID, approvalToken string) Draft {
	state := wf.State()
	ledger := wf.Ledger()

	draft := Draft{
		SessionID:     state.SessionID,
		VenueID:       state.VenueID,
		Identity:      state.Identity,
		Window:        state.Window,
		Breakdown:     wf.Breakdown(),
		PaymentMethod: methodID,
		ApprovalToken: approvalToken,
	}

	for id, qty := range ledger.Quantities() {
		item, ok := ledger.Item(id)
		if !ok {
			continue // stale entries price at zero and are not committed
		}
		draft.Lines = append(draft.Lines, DraftLine{
			CatalogItemID: item.ID,
			Name:          item.Name,
			Category:      string(item.Category),
			UnitPrice:     item.UnitPrice,
			Quantity:      qty,
			LineTotal:     item.UnitPrice * float64(qty),
		})
	}

	return draft
}

func (s *service) notifyConfirmed(ctx context.Context, code string) {
	if s.notifier == nil {
		return
	}

	reservation, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		s.log.ErrorWithContext(ctx, "Failed to load reservation for notification", err, map[string]interface{}{
			"confirmation_code": code,
		})
		return
	}

	if err := s.notifier.NotifyReservationConfirmed(ctx, reservation); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish confirmation notification", err, map[string]interface{}{
			"confirmation_code": code,
		})
	}
}

package booking

import (
	"errors"
	"time"

	"festly/internal/catalog"
	"festly/internal/venues"

	"github.com/google/uuid"
)

// Stage is one of the four ordered states of the booking workflow
type Stage string

const (
	StageIdentity   Stage = "IDENTITY"
	StageSelections Stage = "SELECTIONS"
	StagePayment    Stage = "PAYMENT"
	StageConfirmed  Stage = "CONFIRMED"
)

var (
	ErrInvalidTransition    = errors.New("invalid stage transition")
	ErrIdentityInvalid      = errors.New("guest identity is incomplete or invalid")
	ErrSelectionInvalid     = errors.New("furniture selection does not meet requirements")
	ErrSubmitRequired       = errors.New("payment stage advances only through submission")
	ErrSessionConfirmed     = errors.New("booking session is already confirmed")
	ErrSubmissionInFlight   = errors.New("a submission is already in progress")
	ErrNoSubmissionPending  = errors.New("no submission in progress")
	ErrPaymentMethodMissing = errors.New("payment method not selected")
)

// State is the complete serializable state of one booking session.
// It is an explicit value: commands load it, mutate it through a
// Workflow, and save it back. No ambient mutation.
type State struct {
	SessionID uuid.UUID   `json:"session_id"`
	VenueID   uuid.UUID   `json:"venue_id"`
	Rate      venues.Rate `json:"rate"` // immutable snapshot taken at session start

	Stage          Stage             `json:"stage"`
	Identity       GuestIdentity     `json:"identity"`
	Window         TimeWindow        `json:"window"`
	Selections     map[uuid.UUID]int `json:"selections"`
	SelectionValid bool              `json:"selection_valid"`

	PaymentMethod      string `json:"payment_method,omitempty"`
	ApprovalToken      string `json:"approval_token,omitempty"`
	ConfirmationCode   string `json:"confirmation_code,omitempty"`
	SubmissionInFlight bool   `json:"submission_in_flight"`

	// FrozenBreakdown is the structural copy captured at the single
	// commit point. Set once, never recomputed afterwards.
	FrozenBreakdown *Breakdown `json:"frozen_breakdown,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewState opens a booking session for a venue with its rate snapshot
func NewState(venueID uuid.UUID, rate venues.Rate) *State {
	now := time.Now().UTC()
	return &State{
		SessionID:  uuid.New(),
		VenueID:    venueID,
		Rate:       rate,
		Stage:      StageIdentity,
		Selections: make(map[uuid.UUID]int),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Workflow binds a session state to the venue's catalog and applies
// the stage machine's rules to it
type Workflow struct {
	state  *State
	ledger *SelectionLedger
}

// NewWorkflow wraps a state with the catalog it selects from. Mandatory
// items are backfilled into the ledger (idempotent, safe on reload).
func NewWorkflow(state *State, items []catalog.Item) *Workflow {
	ledger := NewSelectionLedgerWithQuantities(items, state.Selections)
	ledger.InitializeMandatory()
	state.Selections = ledger.Quantities()

	return &Workflow{
		state:  state,
		ledger: ledger,
	}
}

// State exposes the underlying session state
func (w *Workflow) State() *State {
	return w.state
}

// Ledger exposes the selection ledger bound to this session
func (w *Workflow) Ledger() *SelectionLedger {
	return w.ledger
}

// Breakdown returns the current derived pricing. After confirmation it
// returns the frozen copy, detached from any later input.
func (w *Workflow) Breakdown() Breakdown {
	if w.state.Stage == StageConfirmed && w.state.FrozenBreakdown != nil {
		return w.state.FrozenBreakdown.Copy()
	}
	return ComputeBreakdown(w.state.Rate, w.state.Window, w.ledger)
}

// UpdateIdentity replaces the guest identity. Allowed until the session
// is confirmed; the guest may retreat and revise earlier answers.
func (w *Workflow) UpdateIdentity(identity GuestIdentity) error {
	if w.state.Stage == StageConfirmed {
		return ErrSessionConfirmed
	}
	w.state.Identity = identity
	w.touch()
	return nil
}

// SetTimeWindow replaces the rental window
func (w *Workflow) SetTimeWindow(window TimeWindow) error {
	if w.state.Stage == StageConfirmed {
		return ErrSessionConfirmed
	}
	w.state.Window = window
	w.touch()
	return nil
}

// UpdateSelection sets an item quantity in the ledger. Items belonging
// to a single-choice subcategory displace any sibling selection.
func (w *Workflow) UpdateSelection(itemID uuid.UUID, qty int) error {
	if w.state.Stage == StageConfirmed {
		return ErrSessionConfirmed
	}

	if item, ok := w.ledger.Item(itemID); ok && item.Subcategory != "" && !item.IsMandatory() {
		w.ledger.ApplyExclusiveSelection(item.Subcategory, itemID, qty)
	} else {
		w.ledger.SetQuantity(itemID, qty)
	}

	w.state.Selections = w.ledger.Quantities()
	w.touch()
	return nil
}

// SetSelectionValid records the externally computed selection-validity
// flag. The workflow gates on it, it never recomputes it.
func (w *Workflow) SetSelectionValid(valid bool) {
	w.state.SelectionValid = valid
	w.touch()
}

// SelectPaymentMethod records the chosen payment method at the payment
// stage. Nothing is charged here; the single commit point is submission.
func (w *Workflow) SelectPaymentMethod(methodID string) error {
	if w.state.Stage != StagePayment {
		return ErrInvalidTransition
	}
	w.state.PaymentMethod = methodID
	w.touch()
	return nil
}

// CanGoForward reports whether the current stage's gate is open,
// without side effects
func (w *Workflow) CanGoForward() bool {
	switch w.state.Stage {
	case StageIdentity:
		return len(w.state.Identity.Validate()) == 0
	case StageSelections:
		return w.state.SelectionValid
	default:
		// Payment advances only through submission, Confirmed is terminal
		return false
	}
}

// CanGoBack reports whether a backward transition is available
func (w *Workflow) CanGoBack() bool {
	return w.state.Stage == StageSelections || w.state.Stage == StagePayment
}

// Advance moves to the next stage when the current stage's gate allows
// it. Payment -> Confirmed never happens here: that transition only
// occurs through a successful submission.
func (w *Workflow) Advance() error {
	switch w.state.Stage {
	case StageIdentity:
		if errs := w.state.Identity.Validate(); len(errs) > 0 {
			return ErrIdentityInvalid
		}
		w.state.Stage = StageSelections
	case StageSelections:
		if !w.state.SelectionValid {
			return ErrSelectionInvalid
		}
		w.state.Stage = StagePayment
	case StagePayment:
		return ErrSubmitRequired
	default:
		return ErrInvalidTransition
	}

	w.touch()
	return nil
}

// Retreat moves one stage back. The ledger and identity survive
// backward navigation; only abandoning the session discards them.
func (w *Workflow) Retreat() error {
	switch w.state.Stage {
	case StageSelections:
		w.state.Stage = StageIdentity
	case StagePayment:
		w.state.Stage = StageSelections
	default:
		return ErrInvalidTransition
	}

	w.touch()
	return nil
}

// BeginSubmission arms the single-submission guard. A second submission
// attempt while one is outstanding is rejected, not queued.
func (w *Workflow) BeginSubmission(methodID, approvalToken string) error {
	if w.state.Stage == StageConfirmed {
		return ErrSessionConfirmed
	}
	if w.state.Stage != StagePayment {
		return ErrInvalidTransition
	}
	if w.state.SubmissionInFlight {
		return ErrSubmissionInFlight
	}
	if methodID == "" {
		return ErrPaymentMethodMissing
	}

	w.state.PaymentMethod = methodID
	w.state.ApprovalToken = approvalToken
	w.state.SubmissionInFlight = true
	w.touch()
	return nil
}

// CompleteSubmission commits the session: the breakdown in effect at
// submission time is frozen as a structural copy and the workflow
// enters its terminal stage.
func (w *Workflow) CompleteSubmission(confirmationCode string) error {
	if !w.state.SubmissionInFlight {
		return ErrNoSubmissionPending
	}

	frozen := ComputeBreakdown(w.state.Rate, w.state.Window, w.ledger).Copy()
	w.state.FrozenBreakdown = &frozen
	w.state.ConfirmationCode = confirmationCode
	w.state.Stage = StageConfirmed
	w.state.SubmissionInFlight = false
	w.touch()
	return nil
}

// FailSubmission clears the in-flight guard after a failed submission.
// The stage stays at Payment, the approval token is discarded, and
// nothing is committed; the guest may retry manually.
func (w *Workflow) FailSubmission() error {
	if !w.state.SubmissionInFlight {
		return ErrNoSubmissionPending
	}
	w.state.ApprovalToken = ""
	w.state.SubmissionInFlight = false
	w.touch()
	return nil
}

func (w *Workflow) touch() {
	w.state.UpdatedAt = time.Now().UTC()
}

// View is the read model exposed to the presentation layer
type View struct {
	SessionID        uuid.UUID         `json:"session_id"`
	VenueID          uuid.UUID         `json:"venue_id"`
	Stage            Stage             `json:"stage"`
	CanGoBack        bool              `json:"can_go_back"`
	CanGoForward     bool              `json:"can_go_forward"`
	Identity         GuestIdentity     `json:"identity"`
	Window           TimeWindow        `json:"window"`
	Selections       map[uuid.UUID]int `json:"selections"`
	SelectionValid   bool              `json:"selection_valid"`
	Breakdown        BreakdownView     `json:"breakdown"`
	PaymentMethod    string            `json:"payment_method,omitempty"`
	ConfirmationCode string            `json:"confirmation_code,omitempty"`
	ApprovalToken    string            `json:"approval_token,omitempty"`
	Errors           map[string]string `json:"errors,omitempty"`
}

// BreakdownView is the presentation form of a Breakdown, rounded to
// 2 decimal places. Only here do amounts lose precision.
type BreakdownView struct {
	BilledHours   int     `json:"billed_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
	VenueCost     float64 `json:"venue_cost"`
	FurnitureCost float64 `json:"furniture_cost"`
	MandatoryCost float64 `json:"mandatory_cost"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

func (b Breakdown) View() BreakdownView {
	return BreakdownView{
		BilledHours:   b.BilledHours,
		HourlyRate:    Round2(b.HourlyRate),
		VenueCost:     Round2(b.VenueCost),
		FurnitureCost: Round2(b.FurnitureCost),
		MandatoryCost: Round2(b.MandatoryCost),
		Subtotal:      Round2(b.Subtotal),
		Tax:           Round2(b.Tax),
		Total:         Round2(b.Total),
	}
}

// View builds the read model for the current state
func (w *Workflow) View() View {
	v := View{
		SessionID:        w.state.SessionID,
		VenueID:          w.state.VenueID,
		Stage:            w.state.Stage,
		CanGoBack:        w.CanGoBack(),
		CanGoForward:     w.CanGoForward(),
		Identity:         w.state.Identity,
		Window:           w.state.Window,
		Selections:       w.ledger.Quantities(),
		SelectionValid:   w.state.SelectionValid,
		Breakdown:        w.Breakdown().View(),
		PaymentMethod:    w.state.PaymentMethod,
		ConfirmationCode: w.state.ConfirmationCode,
		ApprovalToken:    w.state.ApprovalToken,
	}

	if w.state.Stage == StageIdentity {
		if errs := w.state.Identity.Validate(); len(errs) > 0 {
			v.Errors = errs
		}
	}

	return v
}

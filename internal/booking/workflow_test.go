package booking

import (
	"testing"

	"festly/internal/catalog"
	"festly/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIdentity() GuestIdentity {
	return GuestIdentity{
		FirstName:      "Maria",
		LastName:       "Quispe",
		Email:          "maria@example.com",
		Phone:          "+51987654321",
		DocumentNumber: "12345678",
		GuestCount:     80,
	}
}

func newTestWorkflow(t *testing.T) (*Workflow, catalog.Item, catalog.Item) {
	t.Helper()

	stock := 200
	seguridad := catalog.Item{ID: uuid.New(), Name: "Seguridad", UnitPrice: 200, Category: catalog.CategoryMandatory}
	sillas := catalog.Item{ID: uuid.New(), Name: "Silla tiffany", UnitPrice: 5, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: &stock}

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 500}
	state := NewState(rate.VenueID, rate)
	wf := NewWorkflow(state, []catalog.Item{seguridad, sillas})

	return wf, seguridad, sillas
}

// advanceToPayment drives a fresh workflow through Identity and
// Selections with valid inputs
func advanceToPayment(t *testing.T, wf *Workflow, sillas catalog.Item) {
	t.Helper()

	require.NoError(t, wf.UpdateIdentity(validIdentity()))
	require.NoError(t, wf.Advance())

	require.NoError(t, wf.SetTimeWindow(TimeWindow{StartTime: "18:00", EndTime: "23:00"}))
	require.NoError(t, wf.UpdateSelection(sillas.ID, 100))
	wf.SetSelectionValid(true)
	require.NoError(t, wf.Advance())

	require.Equal(t, StagePayment, wf.State().Stage)
}

func TestNewWorkflow_StartsAtIdentityWithMandatoryItems(t *testing.T) {
	wf, seguridad, _ := newTestWorkflow(t)

	assert.Equal(t, StageIdentity, wf.State().Stage)
	assert.Equal(t, 1, wf.Ledger().Quantity(seguridad.ID))
}

func TestAdvance_BlockedByInvalidIdentity(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	err := wf.Advance()

	assert.ErrorIs(t, err, ErrIdentityInvalid)
	assert.Equal(t, StageIdentity, wf.State().Stage)
}

func TestAdvance_BlockedByInvalidSelection(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)
	require.NoError(t, wf.UpdateIdentity(validIdentity()))
	require.NoError(t, wf.Advance())

	wf.SetSelectionValid(false)
	err := wf.Advance()

	assert.ErrorIs(t, err, ErrSelectionInvalid)
	assert.Equal(t, StageSelections, wf.State().Stage)
}

func TestAdvance_PaymentRequiresSubmission(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)
	advanceToPayment(t, wf, sillas)

	err := wf.Advance()

	assert.ErrorIs(t, err, ErrSubmitRequired)
	assert.Equal(t, StagePayment, wf.State().Stage)
}

func TestRetreat_PreservesLedgerAndIdentity(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)
	advanceToPayment(t, wf, sillas)

	require.NoError(t, wf.Retreat())
	assert.Equal(t, StageSelections, wf.State().Stage)
	assert.Equal(t, 100, wf.Ledger().Quantity(sillas.ID))

	require.NoError(t, wf.Retreat())
	assert.Equal(t, StageIdentity, wf.State().Stage)
	assert.Equal(t, 100, wf.Ledger().Quantity(sillas.ID))
	assert.Equal(t, validIdentity(), wf.State().Identity)

	// cannot retreat past the first stage
	assert.ErrorIs(t, wf.Retreat(), ErrInvalidTransition)
}

func TestSubmission_SuccessConfirmsAndFreezesBreakdown(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)
	advanceToPayment(t, wf, sillas)

	require.NoError(t, wf.BeginSubmission("cash", "APR-123"))
	require.NoError(t, wf.CompleteSubmission("FST-ABC12345"))

	assert.Equal(t, StageConfirmed, wf.State().Stage)
	assert.Equal(t, "FST-ABC12345", wf.State().ConfirmationCode)

	frozen := wf.Breakdown()
	assert.InDelta(t, 3776.0, frozen.Total, 1e-9)

	// later ledger mutations must not leak into the frozen breakdown
	wf.Ledger().SetQuantity(sillas.ID, 1)
	assert.InDelta(t, 3776.0, wf.Breakdown().Total, 1e-9)
}

func TestSubmission_FailureKeepsPaymentStageAndAllowsRetry(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)
	advanceToPayment(t, wf, sillas)

	require.NoError(t, wf.BeginSubmission("card", "APR-999"))

	// a concurrent submit is rejected while one is outstanding
	assert.ErrorIs(t, wf.BeginSubmission("card", "APR-999"), ErrSubmissionInFlight)

	require.NoError(t, wf.FailSubmission())

	assert.Equal(t, StagePayment, wf.State().Stage)
	assert.Empty(t, wf.State().ApprovalToken)
	assert.Empty(t, wf.State().ConfirmationCode)
	assert.Nil(t, wf.State().FrozenBreakdown)

	// the guard is clear, a second submit is accepted
	assert.NoError(t, wf.BeginSubmission("card", "APR-999"))
}

func TestSubmission_RequiresPaymentStage(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	assert.ErrorIs(t, wf.BeginSubmission("cash", ""), ErrInvalidTransition)
}

func TestSubmission_RequiresPaymentMethod(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)
	advanceToPayment(t, wf, sillas)

	assert.ErrorIs(t, wf.BeginSubmission("", "APR-1"), ErrPaymentMethodMissing)
}

func TestConfirmed_IsTerminal(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)
	advanceToPayment(t, wf, sillas)
	require.NoError(t, wf.BeginSubmission("cash", "APR-1"))
	require.NoError(t, wf.CompleteSubmission("FST-TERMINAL"))

	assert.ErrorIs(t, wf.Advance(), ErrInvalidTransition)
	assert.ErrorIs(t, wf.Retreat(), ErrInvalidTransition)
	assert.ErrorIs(t, wf.UpdateIdentity(validIdentity()), ErrSessionConfirmed)
	assert.ErrorIs(t, wf.UpdateSelection(sillas.ID, 5), ErrSessionConfirmed)
	assert.ErrorIs(t, wf.SetTimeWindow(TimeWindow{StartTime: "10:00", EndTime: "12:00"}), ErrSessionConfirmed)
	assert.ErrorIs(t, wf.BeginSubmission("cash", "APR-2"), ErrSessionConfirmed)
}

func TestUpdateSelection_ExclusiveSubcategoryDisplacesSibling(t *testing.T) {
	stock := 300
	chairA := catalog.Item{ID: uuid.New(), Name: "Silla tiffany", UnitPrice: 8, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: &stock}
	chairB := catalog.Item{ID: uuid.New(), Name: "Silla plegable", UnitPrice: 5, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: &stock}

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 500}
	wf := NewWorkflow(NewState(rate.VenueID, rate), []catalog.Item{chairA, chairB})

	require.NoError(t, wf.UpdateSelection(chairA.ID, 80))
	require.NoError(t, wf.UpdateSelection(chairB.ID, 90))

	assert.Equal(t, 0, wf.Ledger().Quantity(chairA.ID))
	assert.Equal(t, 90, wf.Ledger().Quantity(chairB.ID))
}

func TestView_ReflectsStageAndGates(t *testing.T) {
	wf, _, sillas := newTestWorkflow(t)

	view := wf.View()
	assert.Equal(t, StageIdentity, view.Stage)
	assert.False(t, view.CanGoBack)
	assert.False(t, view.CanGoForward)
	assert.NotEmpty(t, view.Errors)

	advanceToPayment(t, wf, sillas)
	view = wf.View()
	assert.Equal(t, StagePayment, view.Stage)
	assert.True(t, view.CanGoBack)
	assert.False(t, view.CanGoForward, "payment advances only through submission")
	assert.InDelta(t, 3776.0, view.Breakdown.Total, 1e-9)
}

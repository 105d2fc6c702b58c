package booking

import (
	"testing"

	"festly/internal/catalog"
	"festly/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeBreakdown_ReferenceScenario(t *testing.T) {
	// Rate 500/h over 18:00-23:00, one mandatory service and 100 chairs
	seguridad := catalog.Item{ID: uuid.New(), Name: "Seguridad", UnitPrice: 200, Category: catalog.CategoryMandatory}
	sillas := catalog.Item{ID: uuid.New(), Name: "Sillas", UnitPrice: 5, Category: catalog.CategoryFurniture, Subcategory: "chairs"}

	ledger := NewSelectionLedger([]catalog.Item{seguridad, sillas})
	ledger.InitializeMandatory()
	ledger.SetQuantity(sillas.ID, 100)

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 500}
	window := TimeWindow{StartTime: "18:00", EndTime: "23:00"}

	b := ComputeBreakdown(rate, window, ledger)

	assert.Equal(t, 5, b.BilledHours)
	assert.InDelta(t, 2500.0, b.VenueCost, 1e-9)
	assert.InDelta(t, 500.0, b.FurnitureCost, 1e-9)
	assert.InDelta(t, 200.0, b.MandatoryCost, 1e-9)
	assert.InDelta(t, 3200.0, b.Subtotal, 1e-9)
	assert.InDelta(t, 576.0, b.Tax, 1e-9)
	assert.InDelta(t, 3776.0, b.Total, 1e-9)
}

func TestComputeBreakdown_TaxAndTotalInvariants(t *testing.T) {
	seguridad := catalog.Item{ID: uuid.New(), Name: "Seguridad", UnitPrice: 199.99, Category: catalog.CategoryMandatory}
	sillas := catalog.Item{ID: uuid.New(), Name: "Sillas", UnitPrice: 7.77, Category: catalog.CategoryFurniture}
	toldo := catalog.Item{ID: uuid.New(), Name: "Toldo", UnitPrice: 149.5, Category: catalog.CategoryService}

	ledger := NewSelectionLedger([]catalog.Item{seguridad, sillas, toldo})
	ledger.InitializeMandatory()

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 333.33}
	window := TimeWindow{StartTime: "20:30", EndTime: "01:15"}

	quantities := []struct {
		item catalog.Item
		qty  int
	}{
		{sillas, 37},
		{toldo, 2},
	}

	for _, q := range quantities {
		ledger.SetQuantity(q.item.ID, q.qty)

		b := ComputeBreakdown(rate, window, ledger)

		assert.InDelta(t, b.Subtotal*TaxRate, b.Tax, 1e-9)
		assert.InDelta(t, b.Subtotal+b.Tax, b.Total, 1e-9)
		assert.InDelta(t, b.VenueCost+b.FurnitureCost+b.MandatoryCost, b.Subtotal, 1e-9)
	}
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	item := catalog.Item{ID: uuid.New(), Name: "Sillas", UnitPrice: 8, Category: catalog.CategoryFurniture}
	ledger := NewSelectionLedger([]catalog.Item{item})
	ledger.SetQuantity(item.ID, 25)

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 450}
	window := TimeWindow{StartTime: "09:00", EndTime: "13:00"}

	first := ComputeBreakdown(rate, window, ledger)
	second := ComputeBreakdown(rate, window, ledger)

	assert.Equal(t, first.Subtotal, second.Subtotal)
	assert.Equal(t, first.Tax, second.Tax)
	assert.Equal(t, first.Total, second.Total)
}

func TestComputeBreakdown_IncompleteWindowStillPricesItems(t *testing.T) {
	seguridad := catalog.Item{ID: uuid.New(), Name: "Seguridad", UnitPrice: 200, Category: catalog.CategoryMandatory}
	ledger := NewSelectionLedger([]catalog.Item{seguridad})
	ledger.InitializeMandatory()

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 500}

	b := ComputeBreakdown(rate, TimeWindow{}, ledger)

	assert.Equal(t, 0, b.BilledHours)
	assert.InDelta(t, 0.0, b.VenueCost, 1e-9)
	assert.InDelta(t, 200.0, b.MandatoryCost, 1e-9)
	assert.InDelta(t, 236.0, b.Total, 1e-9)
}

func TestComputeBreakdown_StaleItemsPriceAtZero(t *testing.T) {
	known := catalog.Item{ID: uuid.New(), Name: "Sillas", UnitPrice: 8, Category: catalog.CategoryFurniture}
	staleID := uuid.New()

	ledger := NewSelectionLedgerWithQuantities(
		[]catalog.Item{known},
		map[uuid.UUID]int{known.ID: 10, staleID: 5},
	)

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 100}
	window := TimeWindow{StartTime: "10:00", EndTime: "12:00"}

	b := ComputeBreakdown(rate, window, ledger)

	assert.InDelta(t, 80.0, b.FurnitureCost, 1e-9, "only the known item contributes cost")
	assert.Contains(t, b.StaleItemIDs, staleID)
}

func TestBreakdownCopy_DetachedFromOriginal(t *testing.T) {
	original := Breakdown{
		Subtotal:     100,
		StaleItemIDs: []uuid.UUID{uuid.New()},
	}

	copied := original.Copy()
	copied.StaleItemIDs[0] = uuid.New()

	assert.NotEqual(t, copied.StaleItemIDs[0], original.StaleItemIDs[0])
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 576.0, Round2(576.0000000001))
	assert.Equal(t, 3.14, Round2(3.14159))
	assert.Equal(t, 1234.57, Round2(1234.567))
}

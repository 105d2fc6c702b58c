package booking

import (
	"math"

	"festly/internal/venues"

	"github.com/google/uuid"
)

// TaxRate is applied uniformly to the subtotal. No per-item exemptions.
const TaxRate = 0.18

// Breakdown is the fully derived cost decomposition for one booking.
// It is recomputed from current inputs on every change and never
// hand-edited; amounts keep full float precision so chained values
// (tax from subtotal, total from subtotal plus tax) do not accumulate
// rounding error. Round only at presentation time.
type Breakdown struct {
	BilledHours   int     `json:"billed_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
	VenueCost     float64 `json:"venue_cost"`
	FurnitureCost float64 `json:"furniture_cost"`
	MandatoryCost float64 `json:"mandatory_cost"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`

	// StaleItemIDs collects ledger entries that no longer resolve to a
	// catalog item. They are priced at zero; callers should log them as
	// data-integrity warnings.
	StaleItemIDs []uuid.UUID `json:"-"`
}

// ComputeBreakdown derives the full cost decomposition from the venue
// rate, the time window, and the selection ledger. Pure and
// deterministic: same inputs, same output.
//
// Zero billed hours still price furniture and mandatory items; blocking
// an incomplete window is the workflow's job, not the pricing engine's.
func ComputeBreakdown(rate venues.Rate, window TimeWindow, ledger *SelectionLedger) Breakdown {
	b := Breakdown{
		BilledHours: window.BilledHours(),
		HourlyRate:  rate.HourlyRate,
	}

	b.VenueCost = float64(b.BilledHours) * rate.HourlyRate

	for id, qty := range ledger.Quantities() {
		item, ok := ledger.Item(id)
		if !ok {
			// unknown id prices at zero instead of corrupting the breakdown
			b.StaleItemIDs = append(b.StaleItemIDs, id)
			continue
		}

		cost := item.UnitPrice * float64(qty)
		if item.IsMandatory() {
			b.MandatoryCost += cost
		} else {
			b.FurnitureCost += cost
		}
	}

	b.Subtotal = b.VenueCost + b.FurnitureCost + b.MandatoryCost
	b.Tax = b.Subtotal * TaxRate
	b.Total = b.Subtotal + b.Tax

	return b
}

// Copy returns a structural copy, detached from the original's slice
func (b Breakdown) Copy() Breakdown {
	out := b
	if len(b.StaleItemIDs) > 0 {
		out.StaleItemIDs = make([]uuid.UUID, len(b.StaleItemIDs))
		copy(out.StaleItemIDs, b.StaleItemIDs)
	}
	return out
}

// Round2 rounds a currency amount to 2 decimal places for presentation
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

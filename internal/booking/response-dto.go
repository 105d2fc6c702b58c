package booking

import (
	"time"

	"github.com/google/uuid"
)

// ReservationResponse is the public shape of a confirmed reservation.
// The approval token never leaves the server.
type ReservationResponse struct {
	ConfirmationCode string                    `json:"confirmation_code"`
	VenueID          uuid.UUID                 `json:"venue_id"`
	GuestName        string                    `json:"guest_name"`
	GuestEmail       string                    `json:"guest_email"`
	GuestCount       int                       `json:"guest_count"`
	StartTime        string                    `json:"start_time"`
	EndTime          string                    `json:"end_time"`
	Breakdown        BreakdownView             `json:"breakdown"`
	PaymentMethod    string                    `json:"payment_method"`
	Items            []ReservationItemResponse `json:"items"`
	CreatedAt        time.Time                 `json:"created_at"`
}

type ReservationItemResponse struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// ToReservationResponse maps a stored reservation to its public shape,
// rounding amounts for presentation
func ToReservationResponse(r *Reservation) ReservationResponse {
	resp := ReservationResponse{
		ConfirmationCode: r.ConfirmationCode,
		VenueID:          r.VenueID,
		GuestName:        r.GuestFirstName + " " + r.GuestLastName,
		GuestEmail:       r.GuestEmail,
		GuestCount:       r.GuestCount,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Breakdown: BreakdownView{
			BilledHours:   r.BilledHours,
			HourlyRate:    Round2(r.HourlyRate),
			VenueCost:     Round2(r.VenueCost),
			FurnitureCost: Round2(r.FurnitureCost),
			MandatoryCost: Round2(r.MandatoryCost),
			Subtotal:      Round2(r.Subtotal),
			Tax:           Round2(r.Tax),
			Total:         Round2(r.Total),
		},
		PaymentMethod: r.PaymentMethod,
		CreatedAt:     r.CreatedAt,
	}

	for _, item := range r.Items {
		resp.Items = append(resp.Items, ReservationItemResponse{
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: Round2(item.UnitPrice),
			Quantity:  item.Quantity,
			LineTotal: Round2(item.LineTotal),
		})
	}

	return resp
}

package request

import (
	"time"

	"eventdeck/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name            string     `json:"name" binding:"required"`
	BookingType     string     `json:"booking_type" binding:"required"`
	ContactEmail    *string    `json:"contact_email,omitempty"`
	ContactPhone    *string    `json:"contact_phone,omitempty"`
	AgentName       *string    `json:"agent_name,omitempty"`
	FeeAmountCents  *int64     `json:"fee_amount_cents,omitempty"`
	FeeCurrency     string     `json:"fee_currency"`
	PerformanceDate *time.Time `json:"performance_date,omitempty"`
}

func (r *CreateBookingRequest) ToDomain(eventID uuid.UUID) (*booking.Booking, error) {
	return booking.NewBooking(booking.NewBookingParams{
		EventID:         eventID,
		Name:            r.Name,
		BookingType:     booking.Type(r.BookingType),
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		AgentName:       r.AgentName,
		FeeAmountCents:  r.FeeAmountCents,
		FeeCurrency:     r.FeeCurrency,
		PerformanceDate: r.PerformanceDate,
	})
}

type UpdateBookingRequest struct {
	Name            *string    `json:"name,omitempty"`
	BookingType     *string    `json:"booking_type,omitempty"`
	ContactEmail    *string    `json:"contact_email,omitempty"`
	ContactPhone    *string    `json:"contact_phone,omitempty"`
	AgentName       *string    `json:"agent_name,omitempty"`
	FeeAmountCents  *int64     `json:"fee_amount_cents,omitempty"`
	FeeCurrency     *string    `json:"fee_currency,omitempty"`
	Status          *string    `json:"booking_status,omitempty"`
	PerformanceDate *time.Time `json:"performance_date,omitempty"`
	ContractSigned  *bool      `json:"contract_signed,omitempty"`
}

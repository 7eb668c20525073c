package response

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	EventID         uuid.UUID  `json:"eventId"`
	Name            string     `json:"name"`
	BookingType     string     `json:"bookingType"`
	ContactEmail    *string    `json:"contactEmail,omitempty"`
	ContactPhone    *string    `json:"contactPhone,omitempty"`
	AgentName       *string    `json:"agentName,omitempty"`
	FeeAmountCents  *int64     `json:"feeAmountCents,omitempty"`
	FeeCurrency     string     `json:"feeCurrency"`
	Status          string     `json:"status"`
	PerformanceDate *time.Time `json:"performanceDate,omitempty"`
	ContractSigned  bool       `json:"contractSigned"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		EventID:         v.EventID,
		Name:            v.Name,
		BookingType:     v.BookingType,
		ContactEmail:    v.ContactEmail,
		ContactPhone:    v.ContactPhone,
		AgentName:       v.AgentName,
		FeeAmountCents:  v.FeeAmountCents,
		FeeCurrency:     v.FeeCurrency,
		Status:          v.Status,
		PerformanceDate: v.PerformanceDate,
		ContractSigned:  v.ContractSigned,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

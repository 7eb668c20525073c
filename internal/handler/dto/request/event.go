package request

import (
	"time"

	"eventdeck/internal/domain/event"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      *string    `json:"description,omitempty"`
	EventType        string     `json:"event_type" binding:"required"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	VenueName        *string    `json:"venue_name,omitempty"`
	VenueAddress     *string    `json:"venue_address,omitempty"`
	MaxCapacity      *int32     `json:"max_capacity,omitempty"`
	BudgetTotalCents int64      `json:"budget_total_cents"`
	IsPublic         bool       `json:"is_public"`
}

func (r *CreateEventRequest) ToDomain(ownerID uuid.UUID) (*event.Event, error) {
	return event.NewEvent(event.NewEventParams{
		OwnerID:          ownerID,
		Title:            r.Title,
		Description:      r.Description,
		EventType:        event.Type(r.EventType),
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		VenueName:        r.VenueName,
		VenueAddress:     r.VenueAddress,
		MaxCapacity:      r.MaxCapacity,
		BudgetTotalCents: r.BudgetTotalCents,
		IsPublic:         r.IsPublic,
	})
}

type UpdateEventRequest struct {
	Title            *string    `json:"title,omitempty"`
	Description      *string    `json:"description,omitempty"`
	EventType        *string    `json:"event_type,omitempty"`
	Status           *string    `json:"status,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	VenueName        *string    `json:"venue_name,omitempty"`
	VenueAddress     *string    `json:"venue_address,omitempty"`
	MaxCapacity      *int32     `json:"max_capacity,omitempty"`
	BudgetTotalCents *int64     `json:"budget_total_cents,omitempty"`
	IsPublic         *bool      `json:"is_public,omitempty"`
}

package response

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	EventType        string     `json:"eventType"`
	Status           string     `json:"status"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	VenueName        *string    `json:"venueName,omitempty"`
	VenueAddress     *string    `json:"venueAddress,omitempty"`
	MaxCapacity      *int32     `json:"maxCapacity,omitempty"`
	BudgetTotalCents int64      `json:"budgetTotalCents"`
	IsPublic         bool       `json:"isPublic"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:               v.ID,
		OwnerID:          v.OwnerID,
		Title:            v.Title,
		Description:      v.Description,
		EventType:        v.EventType,
		Status:           v.Status,
		StartDate:        v.StartDate,
		EndDate:          v.EndDate,
		VenueName:        v.VenueName,
		VenueAddress:     v.VenueAddress,
		MaxCapacity:      v.MaxCapacity,
		BudgetTotalCents: v.BudgetTotalCents,
		IsPublic:         v.IsPublic,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type EventSummaryResponse struct {
	EventID              uuid.UUID `json:"eventId"`
	RevenueCents         int64     `json:"revenueCents"`
	TicketsSold          int64     `json:"ticketsSold"`
	TicketsTotal         int64     `json:"ticketsTotal"`
	BudgetEstimatedCents int64     `json:"budgetEstimatedCents"`
	BudgetActualCents    int64     `json:"budgetActualCents"`
	TasksTotal           int64     `json:"tasksTotal"`
	TasksCompleted       int64     `json:"tasksCompleted"`
}

func FromEventSummaryView(v *queries.EventSummaryView) *EventSummaryResponse {
	return &EventSummaryResponse{
		EventID:              v.EventID,
		RevenueCents:         v.RevenueCents,
		TicketsSold:          v.TicketsSold,
		TicketsTotal:         v.TicketsTotal,
		BudgetEstimatedCents: v.BudgetEstimatedCents,
		BudgetActualCents:    v.BudgetActualCents,
		TasksTotal:           v.TasksTotal,
		TasksCompleted:       v.TasksCompleted,
	}
}

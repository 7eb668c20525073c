package commands

import (
	"time"
)

// Write-side patch types prevent dependency on read-side query views (CQRS
// separation). Nil fields keep the stored value.

type EventPatch struct {
	Title            *string
	Description      *string
	EventType        *string
	Status           *string
	StartDate        *time.Time
	EndDate          *time.Time
	VenueName        *string
	VenueAddress     *string
	MaxCapacity      *int32
	BudgetTotalCents *int64
	IsPublic         *bool
}

type BudgetItemPatch struct {
	Category           *string
	ItemName           *string
	Description        *string
	EstimatedCostCents *int64
	ActualCostCents    *int64
	VendorName         *string
	VendorContact      *string
	PaymentStatus      *string
	PaymentDueDate     *time.Time
	IsFixedCost        *bool
}

type BookingPatch struct {
	Name            *string
	BookingType     *string
	ContactEmail    *string
	ContactPhone    *string
	AgentName       *string
	FeeAmountCents  *int64
	FeeCurrency     *string
	Status          *string
	PerformanceDate *time.Time
	ContractSigned  *bool
}

type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
}

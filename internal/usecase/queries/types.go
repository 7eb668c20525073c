package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	Company   *string    `json:"company,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

type EventView struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"owner_id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	EventType        string     `json:"event_type"`
	Status           string     `json:"status"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	VenueName        *string    `json:"venue_name,omitempty"`
	VenueAddress     *string    `json:"venue_address,omitempty"`
	MaxCapacity      *int32     `json:"max_capacity,omitempty"`
	BudgetTotalCents int64      `json:"budget_total_cents"`
	IsPublic         bool       `json:"is_public"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type TicketTypeView struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description,omitempty"`
	PriceCents    int64      `json:"price_cents"`
	QuantityTotal int32      `json:"quantity_total"`
	QuantitySold  int32      `json:"quantity_sold"`
	Tier          string     `json:"tier"`
	SaleStart     *time.Time `json:"sale_start,omitempty"`
	SaleEnd       *time.Time `json:"sale_end,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type InstanceView struct {
	ID              uuid.UUID `json:"id"`
	TicketTypeID    uuid.UUID `json:"ticket_type_id"`
	EventID         uuid.UUID `json:"event_id"`
	CodePayload     string    `json:"code_payload"`
	ArtifactLocator *string   `json:"artifact_locator,omitempty"`
	Status          string    `json:"status"`
	IssuedAt        time.Time `json:"issued_at"`
}

type BudgetItemView struct {
	ID                 uuid.UUID  `json:"id"`
	EventID            uuid.UUID  `json:"event_id"`
	Category           string     `json:"category"`
	ItemName           string     `json:"item_name"`
	Description        *string    `json:"description,omitempty"`
	EstimatedCostCents int64      `json:"estimated_cost_cents"`
	ActualCostCents    int64      `json:"actual_cost_cents"`
	VendorName         *string    `json:"vendor_name,omitempty"`
	VendorContact      *string    `json:"vendor_contact,omitempty"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentDueDate     *time.Time `json:"payment_due_date,omitempty"`
	IsFixedCost        bool       `json:"is_fixed_cost"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	EventID         uuid.UUID  `json:"event_id"`
	Name            string     `json:"name"`
	BookingType     string     `json:"booking_type"`
	ContactEmail    *string    `json:"contact_email,omitempty"`
	ContactPhone    *string    `json:"contact_phone,omitempty"`
	AgentName       *string    `json:"agent_name,omitempty"`
	FeeAmountCents  *int64     `json:"fee_amount_cents,omitempty"`
	FeeCurrency     string     `json:"fee_currency"`
	Status          string     `json:"booking_status"`
	PerformanceDate *time.Time `json:"performance_date,omitempty"`
	ContractSigned  bool       `json:"contract_signed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type TaskView struct {
	ID          uuid.UUID  `json:"id"`
	EventID     uuid.UUID  `json:"event_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventSummaryView struct {
	EventID              uuid.UUID `json:"event_id"`
	RevenueCents         int64     `json:"revenue_cents"`
	TicketsSold          int64     `json:"tickets_sold"`
	TicketsTotal         int64     `json:"tickets_total"`
	BudgetEstimatedCents int64     `json:"budget_estimated_cents"`
	BudgetActualCents    int64     `json:"budget_actual_cents"`
	TasksTotal           int64     `json:"tasks_total"`
	TasksCompleted       int64     `json:"tasks_completed"`
}

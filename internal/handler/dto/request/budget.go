package request

import (
	"time"

	"eventdeck/internal/domain/budget"
	"eventdeck/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateBudgetItemRequest struct {
	Category           string     `json:"category" binding:"required"`
	ItemName           string     `json:"item_name" binding:"required"`
	Description        *string    `json:"description,omitempty"`
	EstimatedCostCents int64      `json:"estimated_cost_cents"`
	ActualCostCents    int64      `json:"actual_cost_cents"`
	VendorName         *string    `json:"vendor_name,omitempty"`
	VendorContact      *string    `json:"vendor_contact,omitempty"`
	PaymentStatus      *string    `json:"payment_status,omitempty"`
	PaymentDueDate     *time.Time `json:"payment_due_date,omitempty"`
	IsFixedCost        bool       `json:"is_fixed_cost"`
}

func (r *CreateBudgetItemRequest) ToDomain(eventID uuid.UUID) (*budget.Item, error) {
	item, err := budget.NewItem(budget.NewItemParams{
		EventID:            eventID,
		Category:           r.Category,
		ItemName:           r.ItemName,
		Description:        r.Description,
		EstimatedCostCents: r.EstimatedCostCents,
		ActualCostCents:    r.ActualCostCents,
		VendorName:         r.VendorName,
		VendorContact:      r.VendorContact,
		PaymentDueDate:     r.PaymentDueDate,
		IsFixedCost:        r.IsFixedCost,
	})
	if err != nil {
		return nil, err
	}
	status := budget.PaymentStatus(patch.Coalesce(r.PaymentStatus, string(budget.PaymentPending)))
	if !status.IsValid() {
		return nil, budget.ErrInvalidPaymentStatus
	}
	item.PaymentStatus = status
	return item, nil
}

type UpdateBudgetItemRequest struct {
	Category           *string    `json:"category,omitempty"`
	ItemName           *string    `json:"item_name,omitempty"`
	Description        *string    `json:"description,omitempty"`
	EstimatedCostCents *int64     `json:"estimated_cost_cents,omitempty"`
	ActualCostCents    *int64     `json:"actual_cost_cents,omitempty"`
	VendorName         *string    `json:"vendor_name,omitempty"`
	VendorContact      *string    `json:"vendor_contact,omitempty"`
	PaymentStatus      *string    `json:"payment_status,omitempty"`
	PaymentDueDate     *time.Time `json:"payment_due_date,omitempty"`
	IsFixedCost        *bool      `json:"is_fixed_cost,omitempty"`
}

package response

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
)

type BudgetItemResponse struct {
	ID                 uuid.UUID  `json:"id"`
	EventID            uuid.UUID  `json:"eventId"`
	Category           string     `json:"category"`
	ItemName           string     `json:"itemName"`
	Description        *string    `json:"description,omitempty"`
	EstimatedCostCents int64      `json:"estimatedCostCents"`
	ActualCostCents    int64      `json:"actualCostCents"`
	VendorName         *string    `json:"vendorName,omitempty"`
	VendorContact      *string    `json:"vendorContact,omitempty"`
	PaymentStatus      string     `json:"paymentStatus"`
	PaymentDueDate     *time.Time `json:"paymentDueDate,omitempty"`
	IsFixedCost        bool       `json:"isFixedCost"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func FromBudgetItemView(v *queries.BudgetItemView) *BudgetItemResponse {
	return &BudgetItemResponse{
		ID:                 v.ID,
		EventID:            v.EventID,
		Category:           v.Category,
		ItemName:           v.ItemName,
		Description:        v.Description,
		EstimatedCostCents: v.EstimatedCostCents,
		ActualCostCents:    v.ActualCostCents,
		VendorName:         v.VendorName,
		VendorContact:      v.VendorContact,
		PaymentStatus:      v.PaymentStatus,
		PaymentDueDate:     v.PaymentDueDate,
		IsFixedCost:        v.IsFixedCost,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

package budget

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategory        = errors.New("budget category must not be empty")
	ErrEmptyItemName        = errors.New("budget item name must not be empty")
	ErrNegativeCost         = errors.New("cost must not be negative")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string { return string(s) }

type Item struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	Category           string
	ItemName           string
	Description        *string
	EstimatedCostCents int64
	ActualCostCents    int64
	VendorName         *string
	VendorContact      *string
	PaymentStatus      PaymentStatus
	PaymentDueDate     *time.Time
	IsFixedCost        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type NewItemParams struct {
	EventID            uuid.UUID
	Category           string
	ItemName           string
	Description        *string
	EstimatedCostCents int64
	ActualCostCents    int64
	VendorName         *string
	VendorContact      *string
	PaymentDueDate     *time.Time
	IsFixedCost        bool
}

func NewItem(p NewItemParams) (*Item, error) {
	category := strings.TrimSpace(p.Category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	name := strings.TrimSpace(p.ItemName)
	if name == "" {
		return nil, ErrEmptyItemName
	}
	if p.EstimatedCostCents < 0 || p.ActualCostCents < 0 {
		return nil, ErrNegativeCost
	}

	return &Item{
		ID:                 uuid.New(),
		EventID:            p.EventID,
		Category:           category,
		ItemName:           name,
		Description:        p.Description,
		EstimatedCostCents: p.EstimatedCostCents,
		ActualCostCents:    p.ActualCostCents,
		VendorName:         p.VendorName,
		VendorContact:      p.VendorContact,
		PaymentStatus:      PaymentPending,
		PaymentDueDate:     p.PaymentDueDate,
		IsFixedCost:        p.IsFixedCost,
	}, nil
}

// OverspendCents is positive when the item ran over its estimate.
func (i *Item) OverspendCents() int64 {
	return i.ActualCostCents - i.EstimatedCostCents
}

//go:build unit || e2e

package builder

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// TicketTypeViewBuilder assembles read-side ticket type views for tests.
// Build returns an independent copy, so one builder can seed many cases.
type TicketTypeViewBuilder struct {
	view queries.TicketTypeView
}

func NewTicketTypeViewBuilder() *TicketTypeViewBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &TicketTypeViewBuilder{
		view: queries.TicketTypeView{
			ID:            uuid.New(),
			EventID:       uuid.New(),
			Name:          "General Admission",
			PriceCents:    5000,
			QuantityTotal: 100,
			QuantitySold:  0,
			Tier:          "regular",
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

func (b *TicketTypeViewBuilder) WithID(id uuid.UUID) *TicketTypeViewBuilder {
	b.view.ID = id
	return b
}

func (b *TicketTypeViewBuilder) WithEventID(eventID uuid.UUID) *TicketTypeViewBuilder {
	b.view.EventID = eventID
	return b
}

func (b *TicketTypeViewBuilder) WithQuantities(total, sold int32) *TicketTypeViewBuilder {
	b.view.QuantityTotal = total
	b.view.QuantitySold = sold
	return b
}

func (b *TicketTypeViewBuilder) Inactive() *TicketTypeViewBuilder {
	b.view.IsActive = false
	return b
}

func (b *TicketTypeViewBuilder) Build() *queries.TicketTypeView {
	var v queries.TicketTypeView
	_ = copier.Copy(&v, &b.view)
	return &v
}

//go:build unit || e2e

package builder

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventViewBuilder struct {
	view queries.EventView
}

func NewEventViewBuilder() *EventViewBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &EventViewBuilder{
		view: queries.EventView{
			ID:               uuid.New(),
			OwnerID:          uuid.New(),
			Title:            "Summer Music Festival",
			EventType:        "concert",
			Status:           "planning",
			BudgetTotalCents: 1_000_000,
			IsPublic:         false,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
}

func (b *EventViewBuilder) WithID(id uuid.UUID) *EventViewBuilder {
	b.view.ID = id
	return b
}

func (b *EventViewBuilder) WithOwner(ownerID uuid.UUID) *EventViewBuilder {
	b.view.OwnerID = ownerID
	return b
}

func (b *EventViewBuilder) Public() *EventViewBuilder {
	b.view.IsPublic = true
	return b
}

func (b *EventViewBuilder) WithBudgetTotal(cents int64) *EventViewBuilder {
	b.view.BudgetTotalCents = cents
	return b
}

func (b *EventViewBuilder) Build() *queries.EventView {
	var v queries.EventView
	_ = copier.Copy(&v, &b.view)
	return &v
}

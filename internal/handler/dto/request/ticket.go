package request

import (
	"time"

	"eventdeck/internal/domain/ticket"

	"github.com/google/uuid"
)

type CreateTicketTypeRequest struct {
	Name          string     `json:"name" binding:"required"`
	Description   *string    `json:"description,omitempty"`
	PriceCents    int64      `json:"price_cents"`
	QuantityTotal int32      `json:"quantity_total" binding:"required"`
	Tier          string     `json:"tier" binding:"required"`
	SaleStart     *time.Time `json:"sale_start,omitempty"`
	SaleEnd       *time.Time `json:"sale_end,omitempty"`
}

func (r *CreateTicketTypeRequest) ToDomain(eventID uuid.UUID) (*ticket.TicketType, error) {
	return ticket.NewTicketType(ticket.NewTicketTypeParams{
		EventID:       eventID,
		Name:          r.Name,
		Description:   r.Description,
		PriceCents:    r.PriceCents,
		QuantityTotal: r.QuantityTotal,
		Tier:          ticket.Tier(r.Tier),
		SaleStart:     r.SaleStart,
		SaleEnd:       r.SaleEnd,
	})
}

type IssueBatchRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}

package ticket

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TicketType is a sellable category of admission with a fixed total capacity.
// quantitySold is the authoritative sold counter; it is mutated only through
// the capacity ledger, never written directly by other code paths.
type TicketType struct {
	id            uuid.UUID
	eventID       uuid.UUID
	name          string
	description   *string
	priceCents    int64
	quantityTotal int32
	quantitySold  int32
	tier          Tier
	saleStart     *time.Time
	saleEnd       *time.Time
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

type NewTicketTypeParams struct {
	EventID       uuid.UUID
	Name          string
	Description   *string
	PriceCents    int64
	QuantityTotal int32
	Tier          Tier
	SaleStart     *time.Time
	SaleEnd       *time.Time
}

func NewTicketType(p NewTicketTypeParams) (*TicketType, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !p.Tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if p.QuantityTotal <= 0 {
		return nil, ErrInvalidQuantity
	}
	if p.SaleStart != nil && p.SaleEnd != nil && p.SaleEnd.Before(*p.SaleStart) {
		return nil, ErrInvalidSaleRange
	}

	return &TicketType{
		id:            uuid.New(),
		eventID:       p.EventID,
		name:          name,
		description:   p.Description,
		priceCents:    p.PriceCents,
		quantityTotal: p.QuantityTotal,
		quantitySold:  0,
		tier:          p.Tier,
		saleStart:     p.SaleStart,
		saleEnd:       p.SaleEnd,
		isActive:      true,
	}, nil
}

func ReconstructTicketType(
	id, eventID uuid.UUID,
	name string,
	description *string,
	priceCents int64,
	quantityTotal, quantitySold int32,
	tier Tier,
	saleStart, saleEnd *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*TicketType, error) {
	if quantitySold < 0 || quantitySold > quantityTotal {
		return nil, ErrSoldExceedsTotal
	}
	return &TicketType{
		id:            id,
		eventID:       eventID,
		name:          name,
		description:   description,
		priceCents:    priceCents,
		quantityTotal: quantityTotal,
		quantitySold:  quantitySold,
		tier:          tier,
		saleStart:     saleStart,
		saleEnd:       saleEnd,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *TicketType) Remaining() int32 {
	return t.quantityTotal - t.quantitySold
}

// ReserveQuantity admits qty against the remaining capacity, all or nothing.
// The caller must hold whatever lock makes the check-and-increment atomic.
func (t *TicketType) ReserveQuantity(qty int32) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if remaining := t.Remaining(); qty > remaining {
		return &CapacityExceededError{
			TicketTypeID: t.id.String(),
			Requested:    qty,
			Remaining:    remaining,
		}
	}
	t.quantitySold += qty
	return nil
}

// ReleaseQuantity undoes a prior reservation (compensating action).
func (t *TicketType) ReleaseQuantity(qty int32) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > t.quantitySold {
		return ErrSoldExceedsTotal
	}
	t.quantitySold -= qty
	return nil
}

func (t *TicketType) ID() uuid.UUID         { return t.id }
func (t *TicketType) EventID() uuid.UUID    { return t.eventID }
func (t *TicketType) Name() string          { return t.name }
func (t *TicketType) Description() *string  { return t.description }
func (t *TicketType) PriceCents() int64     { return t.priceCents }
func (t *TicketType) QuantityTotal() int32  { return t.quantityTotal }
func (t *TicketType) QuantitySold() int32   { return t.quantitySold }
func (t *TicketType) Tier() Tier            { return t.tier }
func (t *TicketType) SaleStart() *time.Time { return t.saleStart }
func (t *TicketType) SaleEnd() *time.Time   { return t.saleEnd }
func (t *TicketType) IsActive() bool        { return t.isActive }
func (t *TicketType) CreatedAt() time.Time  { return t.createdAt }
func (t *TicketType) UpdatedAt() time.Time  { return t.updatedAt }

package queries

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var (
	ErrTicketTypeNotFound     = errs.New("ticket type not found")
	ErrTicketInstanceNotFound = errs.New("ticket instance not found")
)

type TicketQueries interface {
	GetTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
	ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error)
	GetInstance(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*InstanceView, error)
	ListInstances(ctx context.Context, actor uuid.UUID, ticketTypeID uuid.UUID) ([]*InstanceView, error)
}

type TicketTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error)
}

type InstanceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InstanceView, error)
	ListByTicketType(ctx context.Context, ticketTypeID uuid.UUID) ([]*InstanceView, error)
}

type ticketQueriesImpl struct {
	ticketTypes TicketTypeReadStore
	instances   InstanceReadStore
	events      EventReadStore
}

func NewTicketQueries(ticketTypes TicketTypeReadStore, instances InstanceReadStore, events EventReadStore) TicketQueries {
	return &ticketQueriesImpl{
		ticketTypes: ticketTypes,
		instances:   instances,
		events:      events,
	}
}

func (q *ticketQueriesImpl) GetTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error) {
	view, err := q.ticketTypes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *ticketQueriesImpl) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error) {
	return q.ticketTypes.ListByEvent(ctx, eventID)
}

// Instance lookups expose code payloads, so they are restricted to the
// owner of the issuing event.
func (q *ticketQueriesImpl) GetInstance(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*InstanceView, error) {
	view, err := q.instances.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketInstanceNotFound
		}
		return nil, err
	}

	if err := authorizeEventOwner(ctx, q.events, actor, view.EventID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *ticketQueriesImpl) ListInstances(ctx context.Context, actor uuid.UUID, ticketTypeID uuid.UUID) ([]*InstanceView, error) {
	tt, err := q.GetTicketType(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}

	if err := authorizeEventOwner(ctx, q.events, actor, tt.EventID); err != nil {
		return nil, err
	}
	return q.instances.ListByTicketType(ctx, ticketTypeID)
}

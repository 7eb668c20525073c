package queries

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListByEvent(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	events    EventReadStore
}

func NewBookingQueries(readStore BookingReadStore, events EventReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		events:    events,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := authorizeEventOwner(ctx, q.events, actor, view.EventID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByEvent(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) ([]*BookingView, error) {
	if err := authorizeEventOwner(ctx, q.events, actor, eventID); err != nil {
		return nil, err
	}
	return q.readStore.ListByEvent(ctx, eventID)
}

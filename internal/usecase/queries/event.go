package queries

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var (
	ErrEventNotFound = errs.New("event not found")
	ErrEventAccess   = errs.New("event access denied")
)

type EventQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*EventView, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*EventView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*EventView, error)
	FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{
		readStore: readStore,
	}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	// Public events are visible to anyone; private events only to their owner.
	if !view.IsPublic && view.OwnerID != actor {
		return nil, ErrEventAccess
	}

	return view, nil
}

func (q *eventQueriesImpl) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*EventView, error) {
	return q.readStore.ListByOwner(ctx, ownerID)
}

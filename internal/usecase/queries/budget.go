package queries

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var ErrBudgetItemNotFound = errs.New("budget item not found")

type BudgetQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BudgetItemView, error)
	ListByEvent(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) ([]*BudgetItemView, error)
}

type BudgetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BudgetItemView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*BudgetItemView, error)
}

type budgetQueriesImpl struct {
	readStore BudgetReadStore
	events    EventReadStore
}

func NewBudgetQueries(readStore BudgetReadStore, events EventReadStore) BudgetQueries {
	return &budgetQueriesImpl{
		readStore: readStore,
		events:    events,
	}
}

func (q *budgetQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BudgetItemView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBudgetItemNotFound
		}
		return nil, err
	}

	if err := authorizeEventOwner(ctx, q.events, actor, view.EventID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *budgetQueriesImpl) ListByEvent(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) ([]*BudgetItemView, error) {
	if err := authorizeEventOwner(ctx, q.events, actor, eventID); err != nil {
		return nil, err
	}
	return q.readStore.ListByEvent(ctx, eventID)
}

// authorizeEventOwner resolves the owning user of eventID and rejects
// everyone else. Financial and operational read models hang off events,
// so the check is shared across their query services.
func authorizeEventOwner(ctx context.Context, events EventReadStore, actor uuid.UUID, eventID uuid.UUID) error {
	ownerID, err := events.FindOwnerID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if ownerID != actor {
		return ErrEventAccess
	}
	return nil
}

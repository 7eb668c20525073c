package queries

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var ErrTaskNotFound = errs.New("task not found")

type TaskQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*TaskView, error)
	ListByEvent(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) ([]*TaskView, error)
}

type TaskReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TaskView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*TaskView, error)
}

type taskQueriesImpl struct {
	readStore TaskReadStore
	events    EventReadStore
}

func NewTaskQueries(readStore TaskReadStore, events EventReadStore) TaskQueries {
	return &taskQueriesImpl{
		readStore: readStore,
		events:    events,
	}
}

func (q *taskQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*TaskView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if err := authorizeEventOwner(ctx, q.events, actor, view.EventID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *taskQueriesImpl) ListByEvent(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) ([]*TaskView, error) {
	if err := authorizeEventOwner(ctx, q.events, actor, eventID); err != nil {
		return nil, err
	}
	return q.readStore.ListByEvent(ctx, eventID)
}

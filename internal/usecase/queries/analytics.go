package queries

import (
	"context"

	"github.com/google/uuid"
)

type AnalyticsQueries interface {
	EventSummary(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) (*EventSummaryView, error)
}

type SummaryReadStore interface {
	Summarize(ctx context.Context, eventID uuid.UUID) (*EventSummaryView, error)
}

type analyticsQueriesImpl struct {
	readStore SummaryReadStore
	events    EventReadStore
}

func NewAnalyticsQueries(readStore SummaryReadStore, events EventReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{
		readStore: readStore,
		events:    events,
	}
}

func (q *analyticsQueriesImpl) EventSummary(ctx context.Context, actor uuid.UUID, eventID uuid.UUID) (*EventSummaryView, error) {
	if err := authorizeEventOwner(ctx, q.events, actor, eventID); err != nil {
		return nil, err
	}
	return q.readStore.Summarize(ctx, eventID)
}

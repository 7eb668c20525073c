package repository

import (
	"context"

	"eventdeck/internal/infra"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// Summarize aggregates the dashboard numbers for one event in a single
// round trip.
func (r *AnalyticsRepository) Summarize(ctx context.Context, eventID uuid.UUID) (*queries.EventSummaryView, error) {
	const query = `
SELECT
    COALESCE((SELECT SUM(price_cents * quantity_sold) FROM ticket_types WHERE event_id = $1), 0) AS revenue_cents,
    COALESCE((SELECT SUM(quantity_sold) FROM ticket_types WHERE event_id = $1), 0)               AS tickets_sold,
    COALESCE((SELECT SUM(quantity_total) FROM ticket_types WHERE event_id = $1), 0)              AS tickets_total,
    COALESCE((SELECT SUM(estimated_cost_cents) FROM budget_items WHERE event_id = $1), 0)        AS budget_estimated_cents,
    COALESCE((SELECT SUM(actual_cost_cents) FROM budget_items WHERE event_id = $1), 0)           AS budget_actual_cents,
    (SELECT COUNT(*) FROM tasks WHERE event_id = $1)                                             AS tasks_total,
    (SELECT COUNT(*) FROM tasks WHERE event_id = $1 AND status = 'completed')                    AS tasks_completed`

	var v queries.EventSummaryView
	v.EventID = eventID
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&v.RevenueCents, &v.TicketsSold, &v.TicketsTotal,
		&v.BudgetEstimatedCents, &v.BudgetActualCents,
		&v.TasksTotal, &v.TasksCompleted)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize event", err)
	}
	return &v, nil
}

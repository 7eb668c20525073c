package repository

import (
	"context"
	"errors"

	"eventdeck/internal/domain/event"
	"eventdeck/internal/infra"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	const stmt = `
INSERT INTO events (id, owner_id, title, description, event_type, status, start_date, end_date,
                    venue_name, venue_address, max_capacity, budget_total_cents, is_public)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, stmt,
		e.ID(), e.OwnerID(), e.Title(), e.Description(), e.EventType().String(), e.Status().String(),
		e.StartDate(), e.EndDate(), e.VenueName(), e.VenueAddress(), e.MaxCapacity(),
		e.BudgetTotalCents(), e.IsPublic())
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("event owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, p commands.EventPatch) error {
	const stmt = `
UPDATE events SET
    title              = COALESCE($2, title),
    description        = COALESCE($3, description),
    event_type         = COALESCE($4, event_type),
    status             = COALESCE($5, status),
    start_date         = COALESCE($6, start_date),
    end_date           = COALESCE($7, end_date),
    venue_name         = COALESCE($8, venue_name),
    venue_address      = COALESCE($9, venue_address),
    max_capacity       = COALESCE($10, max_capacity),
    budget_total_cents = COALESCE($11, budget_total_cents),
    is_public          = COALESCE($12, is_public),
    updated_at         = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id,
		p.Title, p.Description, p.EventType, p.Status, p.StartDate, p.EndDate,
		p.VenueName, p.VenueAddress, p.MaxCapacity, p.BudgetTotalCents, p.IsPublic)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindOwnerID resolves event ownership for authorization checks.
func (r *EventRepository) FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT owner_id FROM events WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find event owner", err)
	}
	return ownerID, nil
}

const eventViewColumns = `
id, owner_id, title, description, event_type, status, start_date, end_date,
venue_name, venue_address, max_capacity, budget_total_cents, is_public, created_at, updated_at`

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	query := `SELECT ` + eventViewColumns + ` FROM events WHERE id = $1`

	v, err := scanEventView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return v, nil
}

func (r *EventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.EventView, error) {
	query := `SELECT ` + eventViewColumns + ` FROM events WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	var views []*queries.EventView
	for rows.Next() {
		v, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event rows", err)
	}
	return views, nil
}

func scanEventView(row pgx.Row) (*queries.EventView, error) {
	var v queries.EventView
	err := row.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.EventType, &v.Status,
		&v.StartDate, &v.EndDate, &v.VenueName, &v.VenueAddress, &v.MaxCapacity,
		&v.BudgetTotalCents, &v.IsPublic, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

package repository

import (
	"context"
	"errors"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/infra"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketTypeRepository struct {
	pool *pgxpool.Pool
}

func NewTicketTypeRepository(pool *pgxpool.Pool) *TicketTypeRepository {
	return &TicketTypeRepository{pool: pool}
}

func (r *TicketTypeRepository) Create(ctx context.Context, t *ticket.TicketType) error {
	const stmt = `
INSERT INTO ticket_types (id, event_id, name, description, price_cents, quantity_total,
                          quantity_sold, tier, sale_start, sale_end, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, stmt,
		t.ID(), t.EventID(), t.Name(), t.Description(), t.PriceCents(), t.QuantityTotal(),
		t.QuantitySold(), t.Tier().String(), t.SaleStart(), t.SaleEnd(), t.IsActive())
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("event does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create ticket type", err)
	}
	return nil
}

// Deactivate soft-disables sales; quantity counters stay intact.
func (r *TicketTypeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ticket_types SET is_active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate ticket type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket type not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const ticketTypeViewColumns = `
id, event_id, name, description, price_cents, quantity_total, quantity_sold,
tier, sale_start, sale_end, is_active, created_at, updated_at`

func (r *TicketTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketTypeView, error) {
	query := `SELECT ` + ticketTypeViewColumns + ` FROM ticket_types WHERE id = $1`

	v, err := scanTicketTypeView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ticket type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket type", err)
	}
	return v, nil
}

func (r *TicketTypeRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.TicketTypeView, error) {
	query := `SELECT ` + ticketTypeViewColumns + ` FROM ticket_types WHERE event_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket types", err)
	}
	defer rows.Close()

	var views []*queries.TicketTypeView
	for rows.Next() {
		v, err := scanTicketTypeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket type row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ticket type rows", err)
	}
	return views, nil
}

func scanTicketTypeView(row pgx.Row) (*queries.TicketTypeView, error) {
	var v queries.TicketTypeView
	err := row.Scan(&v.ID, &v.EventID, &v.Name, &v.Description, &v.PriceCents,
		&v.QuantityTotal, &v.QuantitySold, &v.Tier, &v.SaleStart, &v.SaleEnd,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

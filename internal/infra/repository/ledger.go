package repository

import (
	"context"
	"errors"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLedger is the authoritative capacity ledger. Reserve performs the
// remaining-capacity check and the sold-counter increment in one conditional
// UPDATE, so two racing reservations can never jointly oversell: the database
// serializes the row update and the WHERE clause re-evaluates against the
// committed counter.
type PostgresLedger struct {
	pool *pgxpool.Pool
}

func NewPostgresLedger(pool *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{pool: pool}
}

func (l *PostgresLedger) Reserve(ctx context.Context, ticketTypeID uuid.UUID, qty int32) (ticket.Reservation, error) {
	if qty <= 0 {
		return ticket.Reservation{}, ticket.ErrInvalidQuantity
	}

	const stmt = `
UPDATE ticket_types
SET quantity_sold = quantity_sold + $2, updated_at = now()
WHERE id = $1 AND quantity_sold + $2 <= quantity_total
RETURNING quantity_total - quantity_sold`

	var remainingAfter int32
	err := l.pool.QueryRow(ctx, stmt, ticketTypeID, qty).Scan(&remainingAfter)
	if err == nil {
		return ticket.Reservation{TicketTypeID: ticketTypeID, Quantity: qty}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return ticket.Reservation{}, infra.WrapRepoErr("failed to reserve capacity", err)
	}

	// No row matched: either the type is unknown or capacity is short.
	const remainingQuery = `SELECT quantity_total - quantity_sold FROM ticket_types WHERE id = $1`
	var remaining int32
	if err := l.pool.QueryRow(ctx, remainingQuery, ticketTypeID).Scan(&remaining); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ticket.Reservation{}, infra.WrapRepoErr("ticket type not found", err, infra.KindNotFound)
		}
		return ticket.Reservation{}, infra.WrapRepoErr("failed to read remaining capacity", err)
	}

	return ticket.Reservation{}, &ticket.CapacityExceededError{
		TicketTypeID: ticketTypeID.String(),
		Requested:    qty,
		Remaining:    remaining,
	}
}

func (l *PostgresLedger) Release(ctx context.Context, res ticket.Reservation) error {
	const stmt = `
UPDATE ticket_types
SET quantity_sold = quantity_sold - $2, updated_at = now()
WHERE id = $1 AND quantity_sold >= $2`

	tag, err := l.pool.Exec(ctx, stmt, res.TicketTypeID, res.Quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to release capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("release exceeds reserved capacity", pgx.ErrNoRows, infra.KindConflict)
	}
	return nil
}

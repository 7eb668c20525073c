package repository

import (
	"context"
	"errors"

	"eventdeck/internal/domain/booking"
	"eventdeck/internal/infra"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const stmt = `
INSERT INTO artist_bookings (id, event_id, name, booking_type, contact_email, contact_phone,
                             agent_name, fee_amount_cents, fee_currency, booking_status,
                             performance_date, contract_signed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, stmt,
		b.ID, b.EventID, b.Name, b.BookingType.String(), b.ContactEmail, b.ContactPhone,
		b.AgentName, b.FeeAmountCents, b.FeeCurrency, b.Status.String(),
		b.PerformanceDate, b.ContractSigned)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("event does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, p commands.BookingPatch) error {
	const stmt = `
UPDATE artist_bookings SET
    name             = COALESCE($2, name),
    booking_type     = COALESCE($3, booking_type),
    contact_email    = COALESCE($4, contact_email),
    contact_phone    = COALESCE($5, contact_phone),
    agent_name       = COALESCE($6, agent_name),
    fee_amount_cents = COALESCE($7, fee_amount_cents),
    fee_currency     = COALESCE($8, fee_currency),
    booking_status   = COALESCE($9, booking_status),
    performance_date = COALESCE($10, performance_date),
    contract_signed  = COALESCE($11, contract_signed),
    updated_at       = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id,
		p.Name, p.BookingType, p.ContactEmail, p.ContactPhone, p.AgentName,
		p.FeeAmountCents, p.FeeCurrency, p.Status, p.PerformanceDate, p.ContractSigned)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artist_bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const bookingViewColumns = `
id, event_id, name, booking_type, contact_email, contact_phone, agent_name,
fee_amount_cents, fee_currency, booking_status, performance_date, contract_signed,
created_at, updated_at`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + ` FROM artist_bookings WHERE id = $1`

	v, err := scanBookingView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return v, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + ` FROM artist_bookings WHERE event_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(&v.ID, &v.EventID, &v.Name, &v.BookingType, &v.ContactEmail,
		&v.ContactPhone, &v.AgentName, &v.FeeAmountCents, &v.FeeCurrency, &v.Status,
		&v.PerformanceDate, &v.ContractSigned, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

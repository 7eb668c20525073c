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

type InstanceRepository struct {
	pool *pgxpool.Pool
}

func NewInstanceRepository(pool *pgxpool.Pool) *InstanceRepository {
	return &InstanceRepository{pool: pool}
}

// CreateBatch persists a whole issuance batch atomically: either every
// instance becomes durably visible or none does.
func (r *InstanceRepository) CreateBatch(ctx context.Context, instances []*ticket.Instance) error {
	if len(instances) == 0 {
		return nil
	}

	const stmt = `
INSERT INTO ticket_instances (id, ticket_type_id, event_id, code_payload, artifact_locator, status, issued_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	batch := &pgx.Batch{}
	for _, inst := range instances {
		batch.Queue(stmt, inst.ID, inst.TicketTypeID, inst.EventID,
			inst.CodePayload, inst.ArtifactLocator, inst.Status.String(), inst.IssuedAt)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin instance batch", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	br := tx.SendBatch(ctx, batch)
	for range instances {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if infra.IsUniqueViolation(err) {
				return infra.WrapRepoErr("duplicate ticket code", err, infra.KindDuplicateKey)
			}
			return infra.WrapRepoErr("failed to insert ticket instance", err)
		}
	}
	if err := br.Close(); err != nil {
		return infra.WrapRepoErr("failed to flush instance batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit instance batch", err)
	}
	return nil
}

func (r *InstanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ticket.InstanceStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ticket_instances SET status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update instance status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket instance not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *InstanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.InstanceView, error) {
	const query = `
SELECT id, ticket_type_id, event_id, code_payload, artifact_locator, status, issued_at
FROM ticket_instances
WHERE id = $1`

	v, err := scanInstanceView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ticket instance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket instance", err)
	}
	return v, nil
}

func (r *InstanceRepository) ListByTicketType(ctx context.Context, ticketTypeID uuid.UUID) ([]*queries.InstanceView, error) {
	const query = `
SELECT id, ticket_type_id, event_id, code_payload, artifact_locator, status, issued_at
FROM ticket_instances
WHERE ticket_type_id = $1
ORDER BY issued_at`

	rows, err := r.pool.Query(ctx, query, ticketTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket instances", err)
	}
	defer rows.Close()

	var views []*queries.InstanceView
	for rows.Next() {
		v, err := scanInstanceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan instance row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read instance rows", err)
	}
	return views, nil
}

func scanInstanceView(row pgx.Row) (*queries.InstanceView, error) {
	var v queries.InstanceView
	err := row.Scan(&v.ID, &v.TicketTypeID, &v.EventID, &v.CodePayload,
		&v.ArtifactLocator, &v.Status, &v.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

package repository

import (
	"context"
	"errors"

	"eventdeck/internal/domain/budget"
	"eventdeck/internal/infra"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

func (r *BudgetRepository) Create(ctx context.Context, item *budget.Item) error {
	const stmt = `
INSERT INTO budget_items (id, event_id, category, item_name, description, estimated_cost_cents,
                          actual_cost_cents, vendor_name, vendor_contact, payment_status,
                          payment_due_date, is_fixed_cost)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, stmt,
		item.ID, item.EventID, item.Category, item.ItemName, item.Description,
		item.EstimatedCostCents, item.ActualCostCents, item.VendorName, item.VendorContact,
		item.PaymentStatus.String(), item.PaymentDueDate, item.IsFixedCost)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("event does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create budget item", err)
	}
	return nil
}

func (r *BudgetRepository) Update(ctx context.Context, id uuid.UUID, p commands.BudgetItemPatch) error {
	const stmt = `
UPDATE budget_items SET
    category             = COALESCE($2, category),
    item_name            = COALESCE($3, item_name),
    description          = COALESCE($4, description),
    estimated_cost_cents = COALESCE($5, estimated_cost_cents),
    actual_cost_cents    = COALESCE($6, actual_cost_cents),
    vendor_name          = COALESCE($7, vendor_name),
    vendor_contact       = COALESCE($8, vendor_contact),
    payment_status       = COALESCE($9, payment_status),
    payment_due_date     = COALESCE($10, payment_due_date),
    is_fixed_cost        = COALESCE($11, is_fixed_cost),
    updated_at           = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id,
		p.Category, p.ItemName, p.Description, p.EstimatedCostCents, p.ActualCostCents,
		p.VendorName, p.VendorContact, p.PaymentStatus, p.PaymentDueDate, p.IsFixedCost)
	if err != nil {
		return infra.WrapRepoErr("failed to update budget item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("budget item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM budget_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete budget item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("budget item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const budgetViewColumns = `
id, event_id, category, item_name, description, estimated_cost_cents, actual_cost_cents,
vendor_name, vendor_contact, payment_status, payment_due_date, is_fixed_cost, created_at, updated_at`

func (r *BudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BudgetItemView, error) {
	query := `SELECT ` + budgetViewColumns + ` FROM budget_items WHERE id = $1`

	v, err := scanBudgetItemView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("budget item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find budget item", err)
	}
	return v, nil
}

func (r *BudgetRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.BudgetItemView, error) {
	query := `SELECT ` + budgetViewColumns + ` FROM budget_items WHERE event_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list budget items", err)
	}
	defer rows.Close()

	var views []*queries.BudgetItemView
	for rows.Next() {
		v, err := scanBudgetItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan budget item row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read budget item rows", err)
	}
	return views, nil
}

func scanBudgetItemView(row pgx.Row) (*queries.BudgetItemView, error) {
	var v queries.BudgetItemView
	err := row.Scan(&v.ID, &v.EventID, &v.Category, &v.ItemName, &v.Description,
		&v.EstimatedCostCents, &v.ActualCostCents, &v.VendorName, &v.VendorContact,
		&v.PaymentStatus, &v.PaymentDueDate, &v.IsFixedCost, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

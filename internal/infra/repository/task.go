package repository

import (
	"context"
	"errors"

	"eventdeck/internal/domain/task"
	"eventdeck/internal/infra"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	const stmt = `
INSERT INTO tasks (id, event_id, title, description, category, priority, status, due_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, stmt,
		t.ID, t.EventID, t.Title, t.Description, t.Category,
		t.Priority.String(), t.Status.String(), t.DueDate)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("event does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create task", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, p commands.TaskPatch) error {
	const stmt = `
UPDATE tasks SET
    title       = COALESCE($2, title),
    description = COALESCE($3, description),
    category    = COALESCE($4, category),
    priority    = COALESCE($5, priority),
    status      = COALESCE($6, status),
    due_date    = COALESCE($7, due_date),
    updated_at  = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id,
		p.Title, p.Description, p.Category, p.Priority, p.Status, p.DueDate)
	if err != nil {
		return infra.WrapRepoErr("failed to update task", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("task not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete task", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("task not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const taskViewColumns = `
id, event_id, title, description, category, priority, status, due_date, created_at, updated_at`

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.TaskView, error) {
	query := `SELECT ` + taskViewColumns + ` FROM tasks WHERE id = $1`

	v, err := scanTaskView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("task not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find task", err)
	}
	return v, nil
}

func (r *TaskRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.TaskView, error) {
	query := `SELECT ` + taskViewColumns + ` FROM tasks WHERE event_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tasks", err)
	}
	defer rows.Close()

	var views []*queries.TaskView
	for rows.Next() {
		v, err := scanTaskView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan task row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read task rows", err)
	}
	return views, nil
}

func scanTaskView(row pgx.Row) (*queries.TaskView, error) {
	var v queries.TaskView
	err := row.Scan(&v.ID, &v.EventID, &v.Title, &v.Description, &v.Category,
		&v.Priority, &v.Status, &v.DueDate, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

package request

import (
	"time"

	"eventdeck/internal/domain/task"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) ToDomain(eventID uuid.UUID) (*task.Task, error) {
	return task.NewTask(task.NewTaskParams{
		EventID:     eventID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    task.Priority(r.Priority),
		DueDate:     r.DueDate,
	})
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

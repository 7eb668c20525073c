package response

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
)

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	EventID     uuid.UUID  `json:"eventId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromTaskView(v *queries.TaskView) *TaskResponse {
	return &TaskResponse{
		ID:          v.ID,
		EventID:     v.EventID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Priority:    v.Priority,
		Status:      v.Status,
		DueDate:     v.DueDate,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

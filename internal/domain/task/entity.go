package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("task title must not be empty")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidStatus   = errors.New("invalid task status")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

func (p Priority) String() string { return string(p) }

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

type Task struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Title       string
	Description *string
	Category    *string
	Priority    Priority
	Status      Status
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewTaskParams struct {
	EventID     uuid.UUID
	Title       string
	Description *string
	Category    *string
	Priority    Priority
	DueDate     *time.Time
}

func NewTask(p NewTaskParams) (*Task, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	return &Task{
		ID:          uuid.New(),
		EventID:     p.EventID,
		Title:       title,
		Description: p.Description,
		Category:    p.Category,
		Priority:    priority,
		Status:      StatusTodo,
		DueDate:     p.DueDate,
	}, nil
}

package commands

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/task"
	reqdto "eventdeck/internal/handler/dto/request"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

var ErrTaskNotFound = errs.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, t *task.Task) error
	Update(ctx context.Context, id uuid.UUID, p TaskPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskCommands interface {
	CreateTask(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateTaskRequest) (uuid.UUID, error)
	UpdateTask(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type taskCommandsImpl struct {
	taskRepo  TaskRepository
	readStore queries.TaskReadStore
	eventRepo EventRepository
}

func NewTaskCommands(taskRepo TaskRepository, readStore queries.TaskReadStore, eventRepo EventRepository) TaskCommands {
	return &taskCommandsImpl{
		taskRepo:  taskRepo,
		readStore: readStore,
		eventRepo: eventRepo,
	}
}

func (c *taskCommandsImpl) CreateTask(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateTaskRequest) (uuid.UUID, error) {
	if err := requireEventOwner(ctx, c.eventRepo, actor, eventID); err != nil {
		return uuid.Nil, err
	}

	t, err := req.ToDomain(eventID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.taskRepo.Create(ctx, t); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return t.ID, nil
}

func (c *taskCommandsImpl) UpdateTask(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateTaskRequest) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	if req.Priority != nil && !task.Priority(*req.Priority).IsValid() {
		return errs.Mark(task.ErrInvalidPriority, ErrDomainValidation)
	}
	if req.Status != nil && !task.Status(*req.Status).IsValid() {
		return errs.Mark(task.ErrInvalidStatus, ErrDomainValidation)
	}

	patch := TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}

	if err := c.taskRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTaskNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *taskCommandsImpl) DeleteTask(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	if err := c.taskRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTaskNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *taskCommandsImpl) authorize(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTaskNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return requireEventOwner(ctx, c.eventRepo, actor, view.EventID)
}

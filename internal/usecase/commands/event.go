package commands

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/event"
	reqdto "eventdeck/internal/handler/dto/request"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var (
	ErrEventNotFound           = errs.New("event not found")
	ErrNotEventOwner           = errs.New("caller does not own the event")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type EventRepository interface {
	Create(ctx context.Context, e *event.Event) error
	Update(ctx context.Context, id uuid.UUID, p EventPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type EventCommands interface {
	CreateEvent(ctx context.Context, actor uuid.UUID, req reqdto.CreateEventRequest) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateEventRequest) error
	DeleteEvent(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type eventCommandsImpl struct {
	eventRepo EventRepository
}

func NewEventCommands(eventRepo EventRepository) EventCommands {
	return &eventCommandsImpl{eventRepo: eventRepo}
}

func (c *eventCommandsImpl) CreateEvent(ctx context.Context, actor uuid.UUID, req reqdto.CreateEventRequest) (uuid.UUID, error) {
	e, err := req.ToDomain(actor)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.eventRepo.Create(ctx, e); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return e.ID(), nil
}

func (c *eventCommandsImpl) UpdateEvent(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateEventRequest) error {
	if err := requireEventOwner(ctx, c.eventRepo, actor, id); err != nil {
		return err
	}

	if req.EventType != nil && !event.Type(*req.EventType).IsValid() {
		return errs.Mark(event.ErrInvalidType, ErrDomainValidation)
	}
	if req.Status != nil && !event.Status(*req.Status).IsValid() {
		return errs.Mark(event.ErrInvalidStatus, ErrDomainValidation)
	}

	patch := EventPatch{
		Title:            req.Title,
		Description:      req.Description,
		EventType:        req.EventType,
		Status:           req.Status,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		VenueName:        req.VenueName,
		VenueAddress:     req.VenueAddress,
		MaxCapacity:      req.MaxCapacity,
		BudgetTotalCents: req.BudgetTotalCents,
		IsPublic:         req.IsPublic,
	}

	if err := c.eventRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *eventCommandsImpl) DeleteEvent(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if err := requireEventOwner(ctx, c.eventRepo, actor, id); err != nil {
		return err
	}

	if err := c.eventRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// requireEventOwner gates every mutation that hangs off an event.
func requireEventOwner(ctx context.Context, repo EventRepository, actor uuid.UUID, eventID uuid.UUID) error {
	ownerID, err := repo.FindOwnerID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if ownerID != actor {
		return ErrNotEventOwner
	}
	return nil
}

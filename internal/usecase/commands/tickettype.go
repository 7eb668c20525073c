package commands

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/ticket"
	reqdto "eventdeck/internal/handler/dto/request"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

var ErrTicketTypeNotFound = errs.New("ticket type not found")

type TicketTypeRepository interface {
	Create(ctx context.Context, t *ticket.TicketType) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type TicketTypeCommands interface {
	CreateTicketType(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateTicketTypeRequest) (uuid.UUID, error)
	DeactivateTicketType(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type ticketTypeCommandsImpl struct {
	ticketTypeRepo TicketTypeRepository
	readStore      queries.TicketTypeReadStore
	eventRepo      EventRepository
}

func NewTicketTypeCommands(ticketTypeRepo TicketTypeRepository, readStore queries.TicketTypeReadStore, eventRepo EventRepository) TicketTypeCommands {
	return &ticketTypeCommandsImpl{
		ticketTypeRepo: ticketTypeRepo,
		readStore:      readStore,
		eventRepo:      eventRepo,
	}
}

func (c *ticketTypeCommandsImpl) CreateTicketType(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateTicketTypeRequest) (uuid.UUID, error) {
	if err := requireEventOwner(ctx, c.eventRepo, actor, eventID); err != nil {
		return uuid.Nil, err
	}

	t, err := req.ToDomain(eventID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.ticketTypeRepo.Create(ctx, t); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return t.ID(), nil
}

func (c *ticketTypeCommandsImpl) DeactivateTicketType(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTicketTypeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := requireEventOwner(ctx, c.eventRepo, actor, view.EventID); err != nil {
		return err
	}

	if err := c.ticketTypeRepo.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTicketTypeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

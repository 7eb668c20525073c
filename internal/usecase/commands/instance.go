package commands

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

var ErrInstanceNotFound = errs.New("ticket instance not found")

type InstanceCommands interface {
	Redeem(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type instanceCommandsImpl struct {
	instanceRepo InstanceRepository
	readStore    queries.InstanceReadStore
	eventRepo    EventRepository
}

func NewInstanceCommands(instanceRepo InstanceRepository, readStore queries.InstanceReadStore, eventRepo EventRepository) InstanceCommands {
	return &instanceCommandsImpl{
		instanceRepo: instanceRepo,
		readStore:    readStore,
		eventRepo:    eventRepo,
	}
}

// Redeem marks an instance as used. Already-redeemed and voided instances
// are rejected by the domain transition, not by the store.
func (c *instanceCommandsImpl) Redeem(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInstanceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := requireEventOwner(ctx, c.eventRepo, actor, view.EventID); err != nil {
		return err
	}

	inst := &ticket.Instance{
		ID:           view.ID,
		TicketTypeID: view.TicketTypeID,
		EventID:      view.EventID,
		CodePayload:  view.CodePayload,
		Status:       ticket.InstanceStatus(view.Status),
		IssuedAt:     view.IssuedAt,
	}
	if err := inst.Redeem(); err != nil {
		return err
	}

	if err := c.instanceRepo.UpdateStatus(ctx, id, inst.Status); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

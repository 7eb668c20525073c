package commands

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/budget"
	reqdto "eventdeck/internal/handler/dto/request"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

var ErrBudgetItemNotFound = errs.New("budget item not found")

type BudgetRepository interface {
	Create(ctx context.Context, item *budget.Item) error
	Update(ctx context.Context, id uuid.UUID, p BudgetItemPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BudgetCommands interface {
	CreateItem(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateBudgetItemRequest) (uuid.UUID, error)
	UpdateItem(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateBudgetItemRequest) error
	DeleteItem(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type budgetCommandsImpl struct {
	budgetRepo BudgetRepository
	readStore  queries.BudgetReadStore
	eventRepo  EventRepository
}

func NewBudgetCommands(budgetRepo BudgetRepository, readStore queries.BudgetReadStore, eventRepo EventRepository) BudgetCommands {
	return &budgetCommandsImpl{
		budgetRepo: budgetRepo,
		readStore:  readStore,
		eventRepo:  eventRepo,
	}
}

func (c *budgetCommandsImpl) CreateItem(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateBudgetItemRequest) (uuid.UUID, error) {
	if err := requireEventOwner(ctx, c.eventRepo, actor, eventID); err != nil {
		return uuid.Nil, err
	}

	item, err := req.ToDomain(eventID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.budgetRepo.Create(ctx, item); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return item.ID, nil
}

func (c *budgetCommandsImpl) UpdateItem(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateBudgetItemRequest) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	if req.PaymentStatus != nil && !budget.PaymentStatus(*req.PaymentStatus).IsValid() {
		return errs.Mark(budget.ErrInvalidPaymentStatus, ErrDomainValidation)
	}

	patch := BudgetItemPatch{
		Category:           req.Category,
		ItemName:           req.ItemName,
		Description:        req.Description,
		EstimatedCostCents: req.EstimatedCostCents,
		ActualCostCents:    req.ActualCostCents,
		VendorName:         req.VendorName,
		VendorContact:      req.VendorContact,
		PaymentStatus:      req.PaymentStatus,
		PaymentDueDate:     req.PaymentDueDate,
		IsFixedCost:        req.IsFixedCost,
	}

	if err := c.budgetRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBudgetItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *budgetCommandsImpl) DeleteItem(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	if err := c.budgetRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBudgetItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *budgetCommandsImpl) authorize(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBudgetItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return requireEventOwner(ctx, c.eventRepo, actor, view.EventID)
}

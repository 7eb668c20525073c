package commands

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/booking"
	reqdto "eventdeck/internal/handler/dto/request"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, id uuid.UUID, p BookingPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateBookingRequest) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateBookingRequest) error
	DeleteBooking(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	readStore   queries.BookingReadStore
	eventRepo   EventRepository
}

func NewBookingCommands(bookingRepo BookingRepository, readStore queries.BookingReadStore, eventRepo EventRepository) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		readStore:   readStore,
		eventRepo:   eventRepo,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor uuid.UUID, eventID uuid.UUID, req reqdto.CreateBookingRequest) (uuid.UUID, error) {
	if err := requireEventOwner(ctx, c.eventRepo, actor, eventID); err != nil {
		return uuid.Nil, err
	}

	b, err := req.ToDomain(eventID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, b); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b.ID, nil
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, actor uuid.UUID, id uuid.UUID, req reqdto.UpdateBookingRequest) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	if req.BookingType != nil && !booking.Type(*req.BookingType).IsValid() {
		return errs.Mark(booking.ErrInvalidType, ErrDomainValidation)
	}
	if req.Status != nil && !booking.Status(*req.Status).IsValid() {
		return errs.Mark(booking.ErrInvalidStatus, ErrDomainValidation)
	}

	patch := BookingPatch{
		Name:            req.Name,
		BookingType:     req.BookingType,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		AgentName:       req.AgentName,
		FeeAmountCents:  req.FeeAmountCents,
		FeeCurrency:     req.FeeCurrency,
		Status:          req.Status,
		PerformanceDate: req.PerformanceDate,
		ContractSigned:  req.ContractSigned,
	}

	if err := c.bookingRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	if err := c.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) authorize(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return requireEventOwner(ctx, c.eventRepo, actor, view.EventID)
}

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/pkg/clock"
	"eventdeck/internal/pkg/config"
	"eventdeck/internal/pkg/errs"
	"eventdeck/internal/usecase/queries"
)

var (
	ErrTicketTypeInactive     = errs.New("ticket type is not active")
	ErrBatchTooLarge          = errs.New("batch size exceeds limit")
	ErrBatchPersistenceFailed = errs.New("batch persistence failed")
)

// CapacityLedger admits or refuses quantities against a ticket type's
// remaining capacity. Reserve is atomic: concurrent calls never admit
// more than the total, and a refusal carries the remaining count via
// *ticket.CapacityExceededError.
type CapacityLedger interface {
	Reserve(ctx context.Context, ticketTypeID uuid.UUID, qty int32) (ticket.Reservation, error)
	Release(ctx context.Context, res ticket.Reservation) error
}

type InstanceRepository interface {
	CreateBatch(ctx context.Context, instances []*ticket.Instance) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status ticket.InstanceStatus) error
}

// ArtifactEncoder renders a code payload into image bytes.
type ArtifactEncoder interface {
	Encode(payload string) ([]byte, error)
	Key(payload string) string
	ContentType() string
}

// ObjectStore persists artifact bytes under a key and returns a locator.
// Writes to the same key overwrite, which makes uploads retryable.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// SlotFailure records an artifact that could not be produced for one slot
// of a batch. The instance itself is still issued, just without a locator.
type SlotFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type IssuanceResult struct {
	TicketTypeID    uuid.UUID
	Requested       int32
	Instances       []*ticket.Instance
	FailedArtifacts []SlotFailure
}

type IssuanceCommands interface {
	IssueBatch(ctx context.Context, actor uuid.UUID, ticketTypeID uuid.UUID, quantity int32) (*IssuanceResult, error)
}

type issuanceCommandsImpl struct {
	ledger       CapacityLedger
	instanceRepo InstanceRepository
	encoder      ArtifactEncoder
	store        ObjectStore
	readStore    queries.TicketTypeReadStore
	eventRepo    EventRepository
	clock        clock.Clock
	cfg          config.IssuanceConfig
}

func NewIssuanceCommands(
	ledger CapacityLedger,
	instanceRepo InstanceRepository,
	encoder ArtifactEncoder,
	store ObjectStore,
	readStore queries.TicketTypeReadStore,
	eventRepo EventRepository,
	clock clock.Clock,
	cfg config.IssuanceConfig,
) IssuanceCommands {
	return &issuanceCommandsImpl{
		ledger:       ledger,
		instanceRepo: instanceRepo,
		encoder:      encoder,
		store:        store,
		readStore:    readStore,
		eventRepo:    eventRepo,
		clock:        clock,
		cfg:          cfg,
	}
}

// IssueBatch reserves capacity, mints instances with unique code payloads,
// renders and uploads their artifacts, and persists the batch. Capacity is
// the only gate: artifact failures degrade single slots, while a persistence
// failure rolls the reservation back and fails the whole batch.
func (c *issuanceCommandsImpl) IssueBatch(ctx context.Context, actor uuid.UUID, ticketTypeID uuid.UUID, quantity int32) (*IssuanceResult, error) {
	if quantity <= 0 {
		return nil, errs.Mark(ticket.ErrInvalidQuantity, ErrDomainValidation)
	}
	if int(quantity) > c.cfg.MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	view, err := c.validateTicketType(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}

	if err := requireEventOwner(ctx, c.eventRepo, actor, view.EventID); err != nil {
		return nil, err
	}

	reservation, err := c.ledger.Reserve(ctx, ticketTypeID, quantity)
	if err != nil {
		return nil, err
	}

	instances := c.mintInstances(ticketTypeID, view.EventID, quantity)
	failures := c.produceArtifacts(ctx, instances)

	if err := c.instanceRepo.CreateBatch(ctx, instances); err != nil {
		if releaseErr := c.ledger.Release(ctx, reservation); releaseErr != nil {
			slog.Error("failed to release reservation after persist failure",
				"ticket_type_id", ticketTypeID, "quantity", quantity, "error", releaseErr.Error())
		}
		return nil, errs.Mark(err, ErrBatchPersistenceFailed)
	}

	return &IssuanceResult{
		TicketTypeID:    ticketTypeID,
		Requested:       quantity,
		Instances:       instances,
		FailedArtifacts: failures,
	}, nil
}

func (c *issuanceCommandsImpl) validateTicketType(ctx context.Context, ticketTypeID uuid.UUID) (*queries.TicketTypeView, error) {
	view, err := c.readStore.FindByID(ctx, ticketTypeID)
	if err != nil {
		return nil, ErrTicketTypeNotFound
	}
	if !view.IsActive {
		return nil, ErrTicketTypeInactive
	}
	return view, nil
}

// mintInstances assigns identifiers and code payloads in slot order. The
// salt disambiguates payloads minted within the same millisecond.
func (c *issuanceCommandsImpl) mintInstances(ticketTypeID, eventID uuid.UUID, quantity int32) []*ticket.Instance {
	now := c.clock.Now()
	instances := make([]*ticket.Instance, quantity)
	for i := range instances {
		salt := fmt.Sprintf("%d-%d", now.UnixMilli(), i)
		instances[i] = ticket.NewInstance(ticketTypeID, eventID, salt, now)
	}
	return instances
}

// produceArtifacts renders and uploads artifacts concurrently, bounded by
// the configured worker limit. A failed slot leaves its instance without a
// locator and the batch carries on.
func (c *issuanceCommandsImpl) produceArtifacts(ctx context.Context, instances []*ticket.Instance) []SlotFailure {
	reasons := make([]string, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.ArtifactConcurrency)
	for i, inst := range instances {
		g.Go(func() error {
			data, err := c.encoder.Encode(inst.CodePayload)
			if err != nil {
				reasons[i] = err.Error()
				return nil
			}

			locator, err := c.store.Put(gctx, c.encoder.Key(inst.CodePayload), data, c.encoder.ContentType())
			if err != nil {
				reasons[i] = err.Error()
				return nil
			}

			inst.ArtifactLocator = &locator
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	var failures []SlotFailure
	for i, reason := range reasons {
		if reason != "" {
			slog.Warn("artifact generation failed for slot",
				"slot", i, "instance_id", instances[i].ID, "reason", reason)
			failures = append(failures, SlotFailure{Index: i, Reason: reason})
		}
	}
	return failures
}

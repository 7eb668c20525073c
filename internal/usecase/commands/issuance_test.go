//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/pkg/clock"
	"eventdeck/internal/pkg/config"
	"eventdeck/internal/usecase/commands"
	"eventdeck/tests/common/builder"
	commandsmock "eventdeck/tests/mock/commands"
	queriesmock "eventdeck/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IssuanceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ledger       *commandsmock.MockCapacityLedger
	instanceRepo *commandsmock.MockInstanceRepository
	encoder      *commandsmock.MockArtifactEncoder
	store        *commandsmock.MockObjectStore
	readStore    *queriesmock.MockTicketTypeReadStore
	eventRepo    *commandsmock.MockEventRepository
	issuance     commands.IssuanceCommands

	owner        uuid.UUID
	eventID      uuid.UUID
	ticketTypeID uuid.UUID
}

func (s *IssuanceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = commandsmock.NewMockCapacityLedger(s.ctrl)
	s.instanceRepo = commandsmock.NewMockInstanceRepository(s.ctrl)
	s.encoder = commandsmock.NewMockArtifactEncoder(s.ctrl)
	s.store = commandsmock.NewMockObjectStore(s.ctrl)
	s.readStore = queriesmock.NewMockTicketTypeReadStore(s.ctrl)
	s.eventRepo = commandsmock.NewMockEventRepository(s.ctrl)

	s.owner = uuid.New()
	s.eventID = uuid.New()
	s.ticketTypeID = uuid.New()

	// ArtifactConcurrency 1 keeps slot execution in submission order, which
	// makes per-slot failure injection deterministic.
	cfg := config.IssuanceConfig{ArtifactConcurrency: 1, MaxBatchSize: 10}
	fixed := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.issuance = commands.NewIssuanceCommands(
		s.ledger, s.instanceRepo, s.encoder, s.store,
		s.readStore, s.eventRepo, fixed, cfg,
	)
}

func (s *IssuanceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIssuanceSuite(t *testing.T) {
	suite.Run(t, new(IssuanceTestSuite))
}

func (s *IssuanceTestSuite) expectValidTicketType(total, sold int32) {
	view := builder.NewTicketTypeViewBuilder().
		WithID(s.ticketTypeID).
		WithEventID(s.eventID).
		WithQuantities(total, sold).
		Build()
	s.readStore.EXPECT().FindByID(gomock.Any(), s.ticketTypeID).Return(view, nil)
	s.eventRepo.EXPECT().FindOwnerID(gomock.Any(), s.eventID).Return(s.owner, nil)
}

func (s *IssuanceTestSuite) TestIssueBatchSuccess() {
	const quantity = int32(5)

	s.expectValidTicketType(100, 0)
	s.ledger.EXPECT().Reserve(gomock.Any(), s.ticketTypeID, quantity).
		Return(ticket.Reservation{TicketTypeID: s.ticketTypeID, Quantity: quantity}, nil)

	s.encoder.EXPECT().Encode(gomock.Any()).
		Return([]byte("png-bytes"), nil).Times(int(quantity))
	s.encoder.EXPECT().Key(gomock.Any()).
		DoAndReturn(func(payload string) string { return "qr/" + payload + ".png" }).
		Times(int(quantity))
	s.encoder.EXPECT().ContentType().Return("image/png").Times(int(quantity))
	s.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").
		DoAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
			return "https://cdn.example.com/" + key, nil
		}).Times(int(quantity))

	var persisted []*ticket.Instance
	s.instanceRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instances []*ticket.Instance) error {
			persisted = instances
			return nil
		})

	result, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, quantity)
	s.Require().NoError(err)

	s.Equal(s.ticketTypeID, result.TicketTypeID)
	s.Equal(quantity, result.Requested)
	s.Len(result.Instances, int(quantity))
	s.Empty(result.FailedArtifacts)
	s.Equal(result.Instances, persisted)

	payloads := make(map[string]struct{}, quantity)
	for _, inst := range result.Instances {
		s.Require().NotNil(inst.ArtifactLocator)
		s.Equal(ticket.InstanceAvailable, inst.Status)
		payloads[inst.CodePayload] = struct{}{}
	}
	s.Len(payloads, int(quantity), "code payloads must be unique within a batch")
}

func (s *IssuanceTestSuite) TestIssueBatchCapacityExceeded() {
	const quantity = int32(10)

	s.expectValidTicketType(10, 2)
	s.ledger.EXPECT().Reserve(gomock.Any(), s.ticketTypeID, quantity).
		Return(ticket.Reservation{}, &ticket.CapacityExceededError{
			TicketTypeID: s.ticketTypeID.String(),
			Requested:    quantity,
			Remaining:    8,
		})

	_, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, quantity)
	s.Require().Error(err)

	var capErr *ticket.CapacityExceededError
	s.Require().ErrorAs(err, &capErr)
	s.Equal(int32(10), capErr.Requested)
	s.Equal(int32(8), capErr.Remaining)
}

func (s *IssuanceTestSuite) TestIssueBatchPartialArtifactFailure() {
	const quantity = int32(5)

	s.expectValidTicketType(100, 0)
	s.ledger.EXPECT().Reserve(gomock.Any(), s.ticketTypeID, quantity).
		Return(ticket.Reservation{TicketTypeID: s.ticketTypeID, Quantity: quantity}, nil)

	// Slots 1 and 3 fail to encode; the batch carries on.
	slot := 0
	s.encoder.EXPECT().Encode(gomock.Any()).
		DoAndReturn(func(string) ([]byte, error) {
			defer func() { slot++ }()
			if slot == 1 || slot == 3 {
				return nil, fmt.Errorf("render failed for slot %d", slot)
			}
			return []byte("png-bytes"), nil
		}).Times(int(quantity))
	s.encoder.EXPECT().Key(gomock.Any()).Return("qr/key.png").Times(3)
	s.encoder.EXPECT().ContentType().Return("image/png").Times(3)
	s.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/qr/key.png", nil).Times(3)

	s.instanceRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, quantity)
	s.Require().NoError(err)

	s.Len(result.Instances, int(quantity), "failed artifacts must not drop instances")
	s.Require().Len(result.FailedArtifacts, 2)
	s.Equal(1, result.FailedArtifacts[0].Index)
	s.Equal(3, result.FailedArtifacts[1].Index)
	s.Contains(result.FailedArtifacts[0].Reason, "render failed")

	s.Nil(result.Instances[1].ArtifactLocator)
	s.Nil(result.Instances[3].ArtifactLocator)
	s.NotNil(result.Instances[0].ArtifactLocator)
	s.NotNil(result.Instances[2].ArtifactLocator)
	s.NotNil(result.Instances[4].ArtifactLocator)
}

func (s *IssuanceTestSuite) TestIssueBatchPersistFailureReleasesReservation() {
	const quantity = int32(3)
	reservation := ticket.Reservation{TicketTypeID: s.ticketTypeID, Quantity: quantity}

	s.expectValidTicketType(100, 0)
	s.ledger.EXPECT().Reserve(gomock.Any(), s.ticketTypeID, quantity).Return(reservation, nil)

	s.encoder.EXPECT().Encode(gomock.Any()).Return([]byte("png-bytes"), nil).Times(int(quantity))
	s.encoder.EXPECT().Key(gomock.Any()).Return("qr/key.png").Times(int(quantity))
	s.encoder.EXPECT().ContentType().Return("image/png").Times(int(quantity))
	s.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/qr/key.png", nil).Times(int(quantity))

	s.instanceRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	s.ledger.EXPECT().Release(gomock.Any(), reservation).Return(nil)

	_, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, quantity)
	s.Require().ErrorIs(err, commands.ErrBatchPersistenceFailed)
}

func (s *IssuanceTestSuite) TestIssueBatchRejectsInvalidQuantity() {
	_, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, 0)
	s.Require().ErrorIs(err, commands.ErrDomainValidation)

	_, err = s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, -5)
	s.Require().ErrorIs(err, commands.ErrDomainValidation)
}

func (s *IssuanceTestSuite) TestIssueBatchRejectsOversizedBatch() {
	_, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, 11)
	s.Require().ErrorIs(err, commands.ErrBatchTooLarge)
}

func (s *IssuanceTestSuite) TestIssueBatchRejectsInactiveTicketType() {
	view := builder.NewTicketTypeViewBuilder().
		WithID(s.ticketTypeID).
		WithEventID(s.eventID).
		Inactive().
		Build()
	s.readStore.EXPECT().FindByID(gomock.Any(), s.ticketTypeID).Return(view, nil)

	_, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, 5)
	s.Require().ErrorIs(err, commands.ErrTicketTypeInactive)
}

func (s *IssuanceTestSuite) TestIssueBatchRejectsNonOwner() {
	view := builder.NewTicketTypeViewBuilder().
		WithID(s.ticketTypeID).
		WithEventID(s.eventID).
		Build()
	s.readStore.EXPECT().FindByID(gomock.Any(), s.ticketTypeID).Return(view, nil)
	s.eventRepo.EXPECT().FindOwnerID(gomock.Any(), s.eventID).Return(uuid.New(), nil)

	_, err := s.issuance.IssueBatch(context.Background(), s.owner, s.ticketTypeID, 5)
	s.Require().ErrorIs(err, commands.ErrNotEventOwner)
}

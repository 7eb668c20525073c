//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventdeck/internal/pkg/clock"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"
	"eventdeck/tests/common/builder"
	commandsmock "eventdeck/tests/mock/commands"
	queriesmock "eventdeck/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdvisorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	completion  *commandsmock.MockCompletionClient
	events      *queriesmock.MockEventReadStore
	budgetItems *queriesmock.MockBudgetReadStore
	ticketTypes *queriesmock.MockTicketTypeReadStore
	advisor     commands.AdvisorCommands

	owner   uuid.UUID
	eventID uuid.UUID
	now     time.Time
}

func (s *AdvisorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.completion = commandsmock.NewMockCompletionClient(s.ctrl)
	s.events = queriesmock.NewMockEventReadStore(s.ctrl)
	s.budgetItems = queriesmock.NewMockBudgetReadStore(s.ctrl)
	s.ticketTypes = queriesmock.NewMockTicketTypeReadStore(s.ctrl)

	s.owner = uuid.New()
	s.eventID = uuid.New()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.advisor = commands.NewAdvisorCommands(
		s.completion, s.events, s.budgetItems, s.ticketTypes,
		clock.NewMockClock(s.now),
	)
}

func (s *AdvisorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdvisorSuite(t *testing.T) {
	suite.Run(t, new(AdvisorTestSuite))
}

func (s *AdvisorTestSuite) expectEventData() {
	eventView := builder.NewEventViewBuilder().
		WithID(s.eventID).
		WithOwner(s.owner).
		WithBudgetTotal(500_000).
		Build()
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(eventView, nil)

	vendor := "StageCo"
	s.budgetItems.EXPECT().ListByEvent(gomock.Any(), s.eventID).Return([]*queries.BudgetItemView{
		{
			ID: uuid.New(), EventID: s.eventID, Category: "venue", ItemName: "Main Stage",
			EstimatedCostCents: 100_000, ActualCostCents: 150_000, VendorName: &vendor,
		},
		{
			ID: uuid.New(), EventID: s.eventID, Category: "catering", ItemName: "Buffet",
			EstimatedCostCents: 50_000, ActualCostCents: 40_000,
		},
	}, nil)

	tt := builder.NewTicketTypeViewBuilder().
		WithEventID(s.eventID).
		WithQuantities(100, 40).
		Build()
	s.ticketTypes.EXPECT().ListByEvent(gomock.Any(), s.eventID).Return([]*queries.TicketTypeView{tt}, nil)
}

func (s *AdvisorTestSuite) TestOptimizeBudgetBuildsAnalysis() {
	s.expectEventData()
	s.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"suggestions":[{"title":"Renegotiate stage contract","description":"...","potential_savings":"15%","priority":"high","category":"venue"}]}`, nil)

	result, err := s.advisor.OptimizeBudget(context.Background(), s.owner, s.eventID)
	s.Require().NoError(err)

	// 40 sold at 5000 cents each.
	s.Equal(int64(200_000), result.Analysis.Financials.TotalRevenue)
	s.Equal(int64(150_000), result.Analysis.Financials.TotalBudget)
	s.Equal(int64(190_000), result.Analysis.Financials.TotalSpent)
	s.Equal(int64(10_000), result.Analysis.Financials.Margin)
	s.InDelta(5.0, result.Analysis.Financials.MarginPercentage, 0.001)

	s.Require().Len(result.Analysis.OverspendItems, 1)
	s.Equal("Main Stage", result.Analysis.OverspendItems[0].Name)
	s.Equal(int64(50_000), result.Analysis.OverspendItems[0].OverspendAmount)
	s.InDelta(50.0, result.Analysis.OverspendItems[0].PercentageOver, 0.001)

	s.Require().Len(result.Suggestions, 1)
	s.Equal("Renegotiate stage contract", result.Suggestions[0].Title)
	s.Equal(s.now, result.GeneratedAt)
}

func (s *AdvisorTestSuite) TestOptimizeBudgetFallsBackOnMalformedResponse() {
	s.expectEventData()
	s.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("sorry, I can only answer in prose", nil)

	result, err := s.advisor.OptimizeBudget(context.Background(), s.owner, s.eventID)
	s.Require().NoError(err)

	s.Require().Len(result.Suggestions, 3)
	s.Equal("Review Vendor Contracts", result.Suggestions[0].Title)
}

func (s *AdvisorTestSuite) TestOptimizeBudgetFallsBackOnAPIFailure() {
	s.expectEventData()
	s.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("rate limited"))

	result, err := s.advisor.OptimizeBudget(context.Background(), s.owner, s.eventID)
	s.Require().NoError(err)
	s.Len(result.Suggestions, 3)
}

func (s *AdvisorTestSuite) TestOptimizeBudgetCapsSuggestionsAtThree() {
	s.expectEventData()
	s.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"suggestions":[{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"}]}`, nil)

	result, err := s.advisor.OptimizeBudget(context.Background(), s.owner, s.eventID)
	s.Require().NoError(err)
	s.Len(result.Suggestions, 3)
}

func (s *AdvisorTestSuite) TestOptimizeBudgetRejectsNonOwner() {
	eventView := builder.NewEventViewBuilder().
		WithID(s.eventID).
		WithOwner(uuid.New()).
		Build()
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(eventView, nil)

	_, err := s.advisor.OptimizeBudget(context.Background(), uuid.New(), s.eventID)
	s.Require().ErrorIs(err, commands.ErrNotEventOwner)
}

package components

import (
	"eventdeck/internal/pkg/clock"
	"eventdeck/internal/usecase"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewEventCommands,
		commands.NewTicketTypeCommands,
		commands.NewIssuanceCommands,
		commands.NewInstanceCommands,
		commands.NewBudgetCommands,
		commands.NewBookingCommands,
		commands.NewTaskCommands,
		commands.NewAdvisorCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEventQueries,
		queries.NewTicketQueries,
		queries.NewBudgetQueries,
		queries.NewBookingQueries,
		queries.NewTaskQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

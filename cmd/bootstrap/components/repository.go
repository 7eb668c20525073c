package components

import (
	repo_impl "eventdeck/internal/infra/repository"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(commands.EventRepository)),
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			repo_impl.NewTicketTypeRepository,
			fx.As(new(commands.TicketTypeRepository)),
			fx.As(new(queries.TicketTypeReadStore)),
		),
		fx.Annotate(
			repo_impl.NewInstanceRepository,
			fx.As(new(commands.InstanceRepository)),
			fx.As(new(queries.InstanceReadStore)),
		),
		fx.Annotate(
			repo_impl.NewPostgresLedger,
			fx.As(new(commands.CapacityLedger)),
		),
		fx.Annotate(
			repo_impl.NewBudgetRepository,
			fx.As(new(commands.BudgetRepository)),
			fx.As(new(queries.BudgetReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repo_impl.NewTaskRepository,
			fx.As(new(commands.TaskRepository)),
			fx.As(new(queries.TaskReadStore)),
		),
		fx.Annotate(
			repo_impl.NewAnalyticsRepository,
			fx.As(new(queries.SummaryReadStore)),
		),
	),
)

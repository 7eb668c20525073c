package components

import (
	"eventdeck/internal/handler"
	"eventdeck/internal/handler/api"
	"eventdeck/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEventHandler,
		api.NewTicketHandler,
		api.NewBudgetHandler,
		api.NewBookingHandler,
		api.NewTaskHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	event *api.EventHandler,
	ticket *api.TicketHandler,
	budget *api.BudgetHandler,
	booking *api.BookingHandler,
	task *api.TaskHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Event:   event,
		Ticket:  ticket,
		Budget:  budget,
		Booking: booking,
		Task:    task,
	}
}

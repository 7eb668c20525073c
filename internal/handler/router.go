package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eventdeck/internal/handler/api"
	"eventdeck/internal/handler/middleware"
	"eventdeck/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Event   *api.EventHandler
	Ticket  *api.TicketHandler
	Budget  *api.BudgetHandler
	Booking *api.BookingHandler
	Task    *api.TaskHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		events := apiGroup.Group("/events")
		{
			// Public events are readable without a session.
			public := events.Group("")
			public.Use(authMiddleware.OptionalAuth())
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.GetEvent},
				{Method: http.MethodGet, Path: "/:id/ticket-types", Handler: h.Ticket.ListTicketTypes},
			})

			owned := events.Group("")
			owned.Use(authMiddleware.RequireAuth())
			addRoutes(owned, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Event.CreateEvent},
				{Method: http.MethodGet, Path: "", Handler: h.Event.ListEvents},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Event.UpdateEvent},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Event.DeleteEvent},
				{Method: http.MethodGet, Path: "/:id/summary", Handler: h.Event.GetEventSummary},
				{Method: http.MethodPost, Path: "/:id/ticket-types", Handler: h.Ticket.CreateTicketType},
				{Method: http.MethodPost, Path: "/:id/budget-items", Handler: h.Budget.CreateItem},
				{Method: http.MethodGet, Path: "/:id/budget-items", Handler: h.Budget.ListItems},
				{Method: http.MethodPost, Path: "/:id/budget-advice", Handler: h.Budget.OptimizeBudget},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListBookings},
				{Method: http.MethodPost, Path: "/:id/tasks", Handler: h.Task.CreateTask},
				{Method: http.MethodGet, Path: "/:id/tasks", Handler: h.Task.ListTasks},
			})
		}

		ticketTypes := apiGroup.Group("/ticket-types")
		{
			public := ticketTypes.Group("")
			public.Use(authMiddleware.OptionalAuth())
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Ticket.GetTicketType},
			})

			owned := ticketTypes.Group("")
			owned.Use(authMiddleware.RequireAuth())
			addRoutes(owned, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Ticket.DeactivateTicketType},
				{Method: http.MethodPost, Path: "/:id/issue", Handler: h.Ticket.IssueBatch},
				{Method: http.MethodGet, Path: "/:id/instances", Handler: h.Ticket.ListInstances},
			})
		}

		instances := apiGroup.Group("/instances")
		instances.Use(authMiddleware.RequireAuth())
		{
			addRoutes(instances, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Ticket.GetInstance},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: h.Ticket.RedeemInstance},
			})
		}

		budgetItems := apiGroup.Group("/budget-items")
		budgetItems.Use(authMiddleware.RequireAuth())
		{
			addRoutes(budgetItems, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Budget.GetItem},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Budget.UpdateItem},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Budget.DeleteItem},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking},
			})
		}

		tasks := apiGroup.Group("/tasks")
		tasks.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tasks, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Task.GetTask},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Task.UpdateTask},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Task.DeleteTask},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

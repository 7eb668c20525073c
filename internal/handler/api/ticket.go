package api

import (
	"errors"
	"net/http"

	"eventdeck/internal/domain/ticket"
	reqdto "eventdeck/internal/handler/dto/request"
	resdto "eventdeck/internal/handler/dto/response"
	"eventdeck/internal/handler/middleware"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	ticketTypeCommands commands.TicketTypeCommands
	issuanceCommands   commands.IssuanceCommands
	instanceCommands   commands.InstanceCommands
	ticketQueries      queries.TicketQueries
}

func NewTicketHandler(
	ticketTypeCommands commands.TicketTypeCommands,
	issuanceCommands commands.IssuanceCommands,
	instanceCommands commands.InstanceCommands,
	ticketQueries queries.TicketQueries,
) *TicketHandler {
	return &TicketHandler{
		ticketTypeCommands: ticketTypeCommands,
		issuanceCommands:   issuanceCommands,
		instanceCommands:   instanceCommands,
		ticketQueries:      ticketQueries,
	}
}

// @Summary Create ticket type
// @Description Create a ticket type under an owned event
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.CreateTicketTypeRequest true "Ticket type request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/ticket-types [post]
func (h *TicketHandler) CreateTicketType(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	var req reqdto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.ticketTypeCommands.CreateTicketType(c.Request.Context(), actor, eventID, req)
	if err != nil {
		handleEventMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List ticket types
// @Description List ticket types of an event
// @Tags tickets
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.TicketTypeResponse
// @Router /events/{id}/ticket-types [get]
func (h *TicketHandler) ListTicketTypes(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	views, err := h.ticketQueries.ListTicketTypes(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.TicketTypeResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTicketTypeView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get ticket type
// @Description Get a ticket type with its remaining capacity
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket type ID"
// @Success 200 {object} resdto.TicketTypeResponse
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id} [get]
func (h *TicketHandler) GetTicketType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket type ID format"})
		return
	}

	view, err := h.ticketQueries.GetTicketType(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTicketTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket type not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketTypeView(view))
}

// @Summary Deactivate ticket type
// @Description Stop sales for a ticket type without touching issued tickets
// @Tags tickets
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id} [delete]
func (h *TicketHandler) DeactivateTicketType(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket type ID format"})
		return
	}

	if err := h.ticketTypeCommands.DeactivateTicketType(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket type not found"})
		default:
			handleEventMutationError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Issue ticket batch
// @Description Issue a batch of tickets against the remaining capacity of a ticket type
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Param request body reqdto.IssueBatchRequest true "Batch request"
// @Success 201 {object} resdto.IssueBatchResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ticket-types/{id}/issue [post]
func (h *TicketHandler) IssueBatch(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ticketTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket type ID format"})
		return
	}

	var req reqdto.IssueBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.issuanceCommands.IssueBatch(c.Request.Context(), actor, ticketTypeID, req.Quantity)
	if err != nil {
		var capacityErr *ticket.CapacityExceededError
		switch {
		case errors.As(err, &capacityErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Insufficient capacity",
				"requested": capacityErr.Requested,
				"remaining": capacityErr.Remaining,
			})
		case errors.Is(err, commands.ErrTicketTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket type not found"})
		case errors.Is(err, commands.ErrTicketTypeInactive):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket type is not active"})
		case errors.Is(err, commands.ErrNotEventOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, commands.ErrBatchTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Batch size exceeds limit"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		case errors.Is(err, commands.ErrBatchPersistenceFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist issued tickets"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIssuanceResult(result))
}

// @Summary List ticket instances
// @Description List issued tickets of a ticket type (owner only)
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 200 {array} resdto.InstanceResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id}/instances [get]
func (h *TicketHandler) ListInstances(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ticketTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket type ID format"})
		return
	}

	views, err := h.ticketQueries.ListInstances(c.Request.Context(), actor, ticketTypeID)
	if err != nil {
		handleTicketQueryError(c, err)
		return
	}

	response := make([]*resdto.InstanceResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromInstanceView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get ticket instance
// @Description Get one issued ticket (owner only)
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instance ID"
// @Success 200 {object} resdto.InstanceResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /instances/{id} [get]
func (h *TicketHandler) GetInstance(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID format"})
		return
	}

	view, err := h.ticketQueries.GetInstance(c.Request.Context(), actor, id)
	if err != nil {
		handleTicketQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInstanceView(view))
}

// @Summary Redeem ticket instance
// @Description Mark an issued ticket as redeemed at the door
// @Tags tickets
// @Security BearerAuth
// @Param id path string true "Instance ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /instances/{id}/redeem [post]
func (h *TicketHandler) RedeemInstance(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID format"})
		return
	}

	if err := h.instanceCommands.Redeem(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrInstanceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket instance not found"})
		case errors.Is(err, ticket.ErrAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket already redeemed"})
		case errors.Is(err, ticket.ErrInstanceVoid):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket is void"})
		default:
			handleEventMutationError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func handleTicketQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrTicketTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket type not found"})
	case errors.Is(err, queries.ErrTicketInstanceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket instance not found"})
	case errors.Is(err, queries.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, queries.ErrEventAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

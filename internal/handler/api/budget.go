package api

import (
	"errors"
	"net/http"

	reqdto "eventdeck/internal/handler/dto/request"
	resdto "eventdeck/internal/handler/dto/response"
	"eventdeck/internal/handler/middleware"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BudgetHandler struct {
	budgetCommands  commands.BudgetCommands
	budgetQueries   queries.BudgetQueries
	advisorCommands commands.AdvisorCommands
}

func NewBudgetHandler(budgetCommands commands.BudgetCommands, budgetQueries queries.BudgetQueries, advisorCommands commands.AdvisorCommands) *BudgetHandler {
	return &BudgetHandler{
		budgetCommands:  budgetCommands,
		budgetQueries:   budgetQueries,
		advisorCommands: advisorCommands,
	}
}

// @Summary Create budget item
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.CreateBudgetItemRequest true "Budget item request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/budget-items [post]
func (h *BudgetHandler) CreateItem(c *gin.Context) {
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

	var req reqdto.CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.budgetCommands.CreateItem(c.Request.Context(), actor, eventID, req)
	if err != nil {
		handleEventMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List budget items
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.BudgetItemResponse
// @Failure 403 {object} map[string]string
// @Router /events/{id}/budget-items [get]
func (h *BudgetHandler) ListItems(c *gin.Context) {
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

	views, err := h.budgetQueries.ListByEvent(c.Request.Context(), actor, eventID)
	if err != nil {
		handleBudgetQueryError(c, err)
		return
	}

	response := make([]*resdto.BudgetItemResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBudgetItemView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get budget item
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget item ID"
// @Success 200 {object} resdto.BudgetItemResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /budget-items/{id} [get]
func (h *BudgetHandler) GetItem(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget item ID format"})
		return
	}

	view, err := h.budgetQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		handleBudgetQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBudgetItemView(view))
}

// @Summary Update budget item
// @Tags budget
// @Accept json
// @Security BearerAuth
// @Param id path string true "Budget item ID"
// @Param request body reqdto.UpdateBudgetItemRequest true "Update request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /budget-items/{id} [patch]
func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget item ID format"})
		return
	}

	var req reqdto.UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.budgetCommands.UpdateItem(c.Request.Context(), actor, id, req); err != nil {
		if errors.Is(err, commands.ErrBudgetItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
			return
		}
		handleEventMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete budget item
// @Tags budget
// @Security BearerAuth
// @Param id path string true "Budget item ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /budget-items/{id} [delete]
func (h *BudgetHandler) DeleteItem(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget item ID format"})
		return
	}

	if err := h.budgetCommands.DeleteItem(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, commands.ErrBudgetItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
			return
		}
		handleEventMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Budget optimization advice
// @Description Analyze event financials and return cost optimization suggestions
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} commands.AdvisorResult
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/budget-advice [post]
func (h *BudgetHandler) OptimizeBudget(c *gin.Context) {
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

	result, err := h.advisorCommands.OptimizeBudget(c.Request.Context(), actor, eventID)
	if err != nil {
		handleEventMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func handleBudgetQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrBudgetItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
	case errors.Is(err, queries.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, queries.ErrEventAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

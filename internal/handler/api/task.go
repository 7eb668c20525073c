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

type TaskHandler struct {
	taskCommands commands.TaskCommands
	taskQueries  queries.TaskQueries
}

func NewTaskHandler(taskCommands commands.TaskCommands, taskQueries queries.TaskQueries) *TaskHandler {
	return &TaskHandler{
		taskCommands: taskCommands,
		taskQueries:  taskQueries,
	}
}

// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.CreateTaskRequest true "Task request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
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

	var req reqdto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.taskCommands.CreateTask(c.Request.Context(), actor, eventID, req)
	if err != nil {
		handleEventMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.TaskResponse
// @Failure 403 {object} map[string]string
// @Router /events/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
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

	views, err := h.taskQueries.ListByEvent(c.Request.Context(), actor, eventID)
	if err != nil {
		handleTaskQueryError(c, err)
		return
	}

	response := make([]*resdto.TaskResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTaskView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} resdto.TaskResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	view, err := h.taskQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		handleTaskQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTaskView(view))
}

// @Summary Update task
// @Tags tasks
// @Accept json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.UpdateTaskRequest true "Update request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req reqdto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.taskCommands.UpdateTask(c.Request.Context(), actor, id, req); err != nil {
		if errors.Is(err, commands.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		handleEventMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskCommands.DeleteTask(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, commands.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		handleEventMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func handleTaskQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, queries.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, queries.ErrEventAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

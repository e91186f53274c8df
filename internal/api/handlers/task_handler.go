package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/pkg/response"
)

type TaskHandler struct {
	svc *application.TaskService
}

func NewTaskHandler(svc *application.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks godoc
// @Summary List tasks
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Docket, customer or product"
// @Param mine query bool false "Only tasks assigned to the caller"
// @Success 200 {array} task.Task
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var filter task.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}
	tasks, err := h.svc.ListTasks(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a delivery task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body task.CreateTaskInput true "Task"
// @Success 201 {object} task.Task
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var input task.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.CreateTask(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTask godoc
// @Summary Get a task with its requirements and progress
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} application.TaskDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.GetTask(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateTask godoc
// @Summary Update an open task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param input body task.UpdateTaskInput true "Changes"
// @Success 200 {object} task.Task
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input task.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.UpdateTask(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CancelTask godoc
// @Summary Cancel an open task
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Task is already closed"
// @Router /tasks/{id}/cancel [post]
func (h *TaskHandler) CancelTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.CancelTask(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Task cancelled"})
}

// DeleteTask godoc
// @Summary Delete a task with its requirements, submissions and files
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTask(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDrivers godoc
// @Summary Active drivers available for assignment
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.User
// @Router /users/drivers [get]
func (h *TaskHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.svc.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

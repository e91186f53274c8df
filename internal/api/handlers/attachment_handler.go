package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/task"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// ListByTask godoc
// @Summary Requirements of a task with their latest status
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {array} application.AttachmentStatus
// @Router /tasks/{id}/attachments [get]
func (h *AttachmentHandler) ListByTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListByTask(c.Request.Context(), actor, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddAttachment godoc
// @Summary Add a document or checklist requirement to a task
// @Tags attachments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param input body task.CreateAttachmentInput true "Requirement"
// @Success 201 {object} task.Attachment
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks/{id}/attachments [post]
func (h *AttachmentHandler) AddAttachment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input task.CreateAttachmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	att, err := h.svc.AddAttachment(c.Request.Context(), actor, taskID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, att)
}

// DeleteAttachment godoc
// @Summary Delete a requirement and its submissions
// @Tags attachments
// @Security BearerAuth
// @Param id path string true "Attachment ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteAttachment(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

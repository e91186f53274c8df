package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
)

type ChecklistHandler struct {
	svc *application.ChecklistService
}

func NewChecklistHandler(svc *application.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// ListTemplates godoc
// @Summary List checklist templates
// @Tags checklist-templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} checklist.Template
// @Router /checklist-templates [get]
func (h *ChecklistHandler) ListTemplates(c *gin.Context) {
	list, err := h.svc.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []checklist.Template{}
	}
	c.JSON(http.StatusOK, list)
}

// GetTemplate godoc
// @Summary Get a checklist template with its ordered fields
// @Tags checklist-templates
// @Security BearerAuth
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} checklist.Template
// @Failure 404 {object} response.ErrorResponse
// @Router /checklist-templates/{id} [get]
func (h *ChecklistHandler) GetTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTemplate godoc
// @Summary Create a checklist template
// @Tags checklist-templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body checklist.TemplateInput true "Template and fields"
// @Success 201 {object} checklist.Template
// @Failure 400 {object} response.ErrorResponse
// @Router /checklist-templates [post]
func (h *ChecklistHandler) CreateTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var input checklist.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.CreateTemplate(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTemplate godoc
// @Summary Replace a template's metadata and fields
// @Tags checklist-templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param input body checklist.TemplateInput true "Template and fields"
// @Success 200 {object} checklist.Template
// @Failure 400 {object} response.ErrorResponse
// @Router /checklist-templates/{id} [put]
func (h *ChecklistHandler) UpdateTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input checklist.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.UpdateTemplate(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ReorderFields godoc
// @Summary Reorder template fields
// @Tags checklist-templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param input body checklist.ReorderInput true "Every field id in the new order"
// @Success 200 {object} checklist.Template
// @Failure 400 {object} response.ErrorResponse
// @Router /checklist-templates/{id}/reorder [put]
func (h *ChecklistHandler) ReorderFields(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input checklist.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.ReorderFields(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CloneTemplate godoc
// @Summary Copy a template and its fields
// @Tags checklist-templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param input body checklist.CloneInput false "Title of the copy"
// @Success 201 {object} checklist.Template
// @Router /checklist-templates/{id}/clone [post]
func (h *ChecklistHandler) CloneTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input checklist.CloneInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
	}
	t, err := h.svc.CloneTemplate(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// DeleteTemplate godoc
// @Summary Delete an unused template
// @Tags checklist-templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse "Template is in use"
// @Router /checklist-templates/{id} [delete]
func (h *ChecklistHandler) DeleteTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTemplate(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateValues godoc
// @Summary Dry-run validation of form values against a template
// @Tags checklist-templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param input body checklist.ValidateInput true "Form values"
// @Success 200 {object} checklist.ValidateResult
// @Router /checklist-templates/{id}/validate [post]
func (h *ChecklistHandler) ValidateValues(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input checklist.ValidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.svc.ValidateValues(c.Request.Context(), id, input.FormData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

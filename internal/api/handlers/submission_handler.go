package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SubmissionHandler struct {
	svc    *application.SubmissionService
	export *application.ExportService
}

func NewSubmissionHandler(svc *application.SubmissionService, export *application.ExportService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, export: export}
}

// SubmitChecklist godoc
// @Summary Submit a filled checklist for a requirement
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Attachment ID"
// @Param input body submission.ChecklistInput true "Form values keyed by field name"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Missing required fields"
// @Failure 403 {object} response.ErrorResponse
// @Router /attachments/{id}/submissions/checklist [post]
func (h *SubmissionHandler) SubmitChecklist(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	attachmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input submission.ChecklistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.svc.SubmitChecklist(c.Request.Context(), actor, attachmentID, input.FormData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// SubmitDocument godoc
// @Summary Upload a document for a requirement
// @Tags submissions
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Attachment ID"
// @Param file formData file true "PDF, image or Word document"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Invalid file"
// @Failure 403 {object} response.ErrorResponse
// @Router /attachments/{id}/submissions/document [post]
func (h *SubmissionHandler) SubmitDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	attachmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	up, f, err := formFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:  "Please select a file to upload",
			Fields: map[string]string{"file": "Please select a file to upload"},
		})
		return
	}
	defer f.Close()

	sub, err := h.svc.SubmitDocument(c.Request.Context(), actor, attachmentID, up)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// History godoc
// @Summary All submissions of a requirement, oldest first
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {array} submission.Submission
// @Router /attachments/{id}/submissions [get]
func (h *SubmissionHandler) History(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	attachmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.History(c.Request.Context(), actor, attachmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []submission.Submission{}
	}
	c.JSON(http.StatusOK, list)
}

// Prefill godoc
// @Summary Form values for a new checklist attempt
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} application.PrefillResult
// @Router /attachments/{id}/prefill [get]
func (h *SubmissionHandler) Prefill(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	attachmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.svc.Prefill(c.Request.Context(), actor, attachmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// reviewFilter binds the queue filter; task_id is parsed by hand because the
// binder has no UUID support.
func reviewFilter(c *gin.Context) (submission.ReviewFilter, bool) {
	var filter submission.ReviewFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return filter, false
	}
	if raw := c.Query("task_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: fmt.Sprintf("invalid task_id: %q", raw)})
			return filter, false
		}
		filter.TaskID = &id
	}
	return filter, true
}

// ReviewQueue godoc
// @Summary Submissions for review, newest first
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param status query string false "submitted, approved, rejected or flagged"
// @Param assigned_to query string false "transport or warehouse"
// @Param task_id query string false "Task ID"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} submission.View
// @Router /submissions [get]
func (h *SubmissionHandler) ReviewQueue(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	filter, ok := reviewFilter(c)
	if !ok {
		return
	}
	list, err := h.svc.ReviewQueue(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []submission.View{}
	}
	c.JSON(http.StatusOK, list)
}

// GetSubmission godoc
// @Summary Get a submission with its requirement and task
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} submission.View
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// FileURL godoc
// @Summary Short-lived download link of a document submission
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.URLResponse
// @Failure 400 {object} response.ErrorResponse "Not a document submission"
// @Router /submissions/{id}/file-url [get]
func (h *SubmissionHandler) FileURL(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	url, err := h.svc.FileURL(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.URLResponse{URL: url})
}

// Review godoc
// @Summary Approve, reject or flag a submission
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param input body submission.ReviewInput true "Decision"
// @Success 200 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Comment required"
// @Failure 409 {object} response.ErrorResponse "Reviewed by someone else"
// @Router /submissions/{id}/review [post]
func (h *SubmissionHandler) Review(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input submission.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.svc.Review(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Export godoc
// @Summary Export the filtered review queue as XLSX
// @Tags submissions
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "submitted, approved, rejected or flagged"
// @Param assigned_to query string false "transport or warehouse"
// @Success 200 {file} file
// @Router /submissions/export.xlsx [get]
func (h *SubmissionHandler) Export(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	filter, ok := reviewFilter(c)
	if !ok {
		return
	}
	data, err := h.export.SubmissionsWorkbook(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("submissions_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// MyChecklists godoc
// @Summary Checklist requirements of the caller's department
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param status query string false "all, needs_action, pending, submitted, approved, rejected or flagged"
// @Success 200 {array} application.AttachmentStatus
// @Router /my/checklists [get]
func (h *SubmissionHandler) MyChecklists(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.svc.MyChecklists(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []application.AttachmentStatus{}
	}
	c.JSON(http.StatusOK, list)
}

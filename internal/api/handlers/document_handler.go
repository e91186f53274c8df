package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/document"
	"github.com/linskybing/logistics-go/pkg/response"
)

type DocumentHandler struct {
	svc *application.DocumentService
}

func NewDocumentHandler(svc *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ListDocuments godoc
// @Summary List library documents
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param department query string false "Department"
// @Param status query string false "Status"
// @Param tag query string false "Tag"
// @Param search query string false "Title or file name"
// @Success 200 {array} document.Document
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var filter document.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.svc.ListDocuments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []document.Document{}
	}
	c.JSON(http.StatusOK, list)
}

// GetDocument godoc
// @Summary Get a document with a download link
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} document.WithURL
// @Failure 404 {object} response.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.svc.GetDocument(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UploadDocument godoc
// @Summary Upload a document under its standardised name
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param title formData string true "Title"
// @Param department formData string true "Department"
// @Param policy_area formData string true "Policy area"
// @Param responsible_role formData string true "Responsible role"
// @Param status formData string false "Active, Draft, Under Review or Archived"
// @Param version formData string true "Version"
// @Param document_date formData string true "YYYY-MM-DD"
// @Param tags formData []string false "Tags" collectionFormat(multi)
// @Success 201 {object} document.Document
// @Failure 400 {object} response.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var input document.UploadInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
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

	doc, err := h.svc.Upload(c.Request.Context(), actor, input, up)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UpdateDocument godoc
// @Summary Update document metadata
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param input body document.UpdateInput true "Changes"
// @Success 200 {object} document.Document
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input document.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	doc, err := h.svc.UpdateDocument(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument godoc
// @Summary Delete a document and its file
// @Tags documents
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 204
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteDocument(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

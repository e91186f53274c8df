package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
)

type Handlers struct {
	User       *UserHandler
	Task       *TaskHandler
	Attachment *AttachmentHandler
	Submission *SubmissionHandler
	Checklist  *ChecklistHandler
	Document   *DocumentHandler
	Dashboard  *DashboardHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:       NewUserHandler(svc.User),
		Task:       NewTaskHandler(svc.Task),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Submission: NewSubmissionHandler(svc.Submission, svc.Export),
		Checklist:  NewChecklistHandler(svc.Checklist),
		Document:   NewDocumentHandler(svc.Document),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Router:     router,
	}
	return h
}

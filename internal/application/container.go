package application

import (
	"github.com/linskybing/logistics-go/internal/notify"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
)

type Services struct {
	Lifecycle  *LifecycleEngine
	User       *UserService
	Task       *TaskService
	Attachment *AttachmentService
	Submission *SubmissionService
	Checklist  *ChecklistService
	Document   *DocumentService
	Dashboard  *DashboardService
	Export     *ExportService
}

func New(repos *repository.Repos, store storage.ObjectStore, dispatcher *notify.Dispatcher) *Services {
	lifecycle := NewLifecycleEngine(repos)
	return &Services{
		Lifecycle:  lifecycle,
		User:       NewUserService(repos),
		Task:       NewTaskService(repos, store),
		Attachment: NewAttachmentService(repos, store, lifecycle),
		Submission: NewSubmissionService(repos, lifecycle, store, dispatcher),
		Checklist:  NewChecklistService(repos),
		Document:   NewDocumentService(repos, store),
		Dashboard:  NewDashboardService(repos),
		Export:     NewExportService(repos),
	}
}

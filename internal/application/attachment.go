package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
	"gorm.io/gorm"
)

// AttachmentService manages the requirements attached to a task.
type AttachmentService struct {
	Repos     *repository.Repos
	Store     storage.ObjectStore
	Lifecycle *LifecycleEngine
}

func NewAttachmentService(repos *repository.Repos, store storage.ObjectStore, lifecycle *LifecycleEngine) *AttachmentService {
	return &AttachmentService{
		Repos:     repos,
		Store:     store,
		Lifecycle: lifecycle,
	}
}

func (s *AttachmentService) AddAttachment(ctx context.Context, actor user.Identity, taskID uuid.UUID, in task.CreateAttachmentInput) (*task.Attachment, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := s.Repos.Task.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, lookupErr(err, ErrTaskNotFound, "load task")
	}
	if !t.Status.Open() {
		return nil, invalid("requirements cannot be added to a %s task", t.Status)
	}

	switch in.AttachmentType {
	case task.AttachmentChecklist:
		if in.ChecklistTemplateID == nil {
			return nil, invalidField("checklist_template_id", "Please select a checklist template")
		}
		if _, err := s.Repos.Template.GetTemplateByID(ctx, *in.ChecklistTemplateID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, invalidField("checklist_template_id", "Checklist template does not exist")
			}
			return nil, infra("load checklist template", err)
		}
	case task.AttachmentDocument:
		if in.ChecklistTemplateID != nil {
			return nil, invalidField("checklist_template_id", "Document requirements cannot reference a checklist template")
		}
	default:
		return nil, invalidField("attachment_type", "attachment_type must be document or checklist")
	}
	if in.AssignedTo != task.DepartmentTransport && in.AssignedTo != task.DepartmentWarehouse {
		return nil, invalidField("assigned_to", "assigned_to must be transport or warehouse")
	}

	a := &task.Attachment{
		TaskID:              taskID,
		AttachmentType:      in.AttachmentType,
		Title:               strings.TrimSpace(in.Title),
		ChecklistTemplateID: in.ChecklistTemplateID,
		IsRequired:          true,
		AssignedTo:          in.AssignedTo,
		CreatedBy:           actor.ID,
	}
	if in.IsRequired != nil {
		a.IsRequired = *in.IsRequired
	}
	if a.Title == "" {
		return nil, invalidField("title", "Title is required")
	}
	if err := s.Repos.Attachment.CreateAttachment(ctx, a); err != nil {
		return nil, infra("create attachment", err)
	}
	return a, nil
}

func (s *AttachmentService) ListByTask(ctx context.Context, actor user.Identity, taskID uuid.UUID) ([]AttachmentStatus, error) {
	if _, err := s.Repos.Task.GetTaskByID(ctx, taskID); err != nil {
		return nil, lookupErr(err, ErrTaskNotFound, "load task")
	}
	atts, err := s.Repos.Attachment.ListAttachmentsByTask(ctx, taskID)
	if err != nil {
		return nil, infra("list attachments", err)
	}
	return withStatuses(ctx, s.Repos, atts, false)
}

// DeleteAttachment removes a requirement and its submissions. Removing the
// last unapproved requirement can complete the task, so completion is
// re-evaluated afterwards.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, actor user.Identity, id uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return err
	}
	att, err := s.Repos.Attachment.GetAttachmentByID(ctx, id)
	if err != nil {
		return lookupErr(err, ErrAttachmentNotFound, "load attachment")
	}

	var paths []string
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		ids := []uuid.UUID{id}
		var err error
		if paths, err = tx.Submission.ListFilePathsByAttachments(ctx, ids); err != nil {
			return infra("list submission files", err)
		}
		if err := tx.Submission.DeleteByAttachments(ctx, ids); err != nil {
			return infra("delete submissions", err)
		}
		if err := tx.Attachment.DeleteAttachment(ctx, id); err != nil {
			return infra("delete attachment", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	removeObjects(ctx, s.Store, paths)
	bestEffort("complete task "+att.TaskID.String(), func() error {
		_, err := s.Lifecycle.ReevaluateCompletion(context.WithoutCancel(ctx), att.TaskID)
		return err
	})
	return nil
}

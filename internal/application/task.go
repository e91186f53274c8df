package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
	"gorm.io/gorm"
)

type TaskService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
}

func NewTaskService(repos *repository.Repos, store storage.ObjectStore) *TaskService {
	return &TaskService{
		Repos: repos,
		Store: store,
	}
}

// TaskSummary is the slice of a task shown next to one of its requirements.
type TaskSummary struct {
	ID                  uuid.UUID   `json:"id"`
	DocketNumber        string      `json:"docket_number"`
	CustomerName        string      `json:"customer_name"`
	Status              task.Status `json:"status"`
	PlannedDeliveryDate *time.Time  `json:"planned_delivery_date"`
}

// AttachmentStatus is a requirement with the status of its latest submission.
type AttachmentStatus struct {
	task.Attachment
	Status           submission.Status      `json:"status"`
	LatestSubmission *submission.Submission `json:"latest_submission,omitempty"`
	CanSubmit        bool                   `json:"can_submit"`
	Task             *TaskSummary           `json:"task,omitempty"`
}

type TaskProgress struct {
	Required         int `json:"required"`
	RequiredApproved int `json:"required_approved"`
}

type TaskDetail struct {
	task.Task
	Attachments []AttachmentStatus `json:"attachments"`
	Progress    TaskProgress       `json:"progress"`
}

func (s *TaskService) CreateTask(ctx context.Context, actor user.Identity, in task.CreateTaskInput) (*task.Task, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}

	t := &task.Task{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		ProductName:     strings.TrimSpace(in.ProductName),
		Supplier:        strings.TrimSpace(in.Supplier),
		NumberOfBags:    in.NumberOfBags,
		BagWeight:       in.BagWeight,
		DocketNumber:    strings.TrimSpace(in.DocketNumber),
		VehicleType:     in.VehicleType,
		HaulierTanker:   strings.TrimSpace(in.HaulierTanker),
		Status:          task.StatusNew,
		CreatedBy:       actor.ID,
	}
	if t.VehicleType == "" {
		t.VehicleType = task.VehicleTruck
	}

	var err error
	if t.PlannedDecantDate, err = parseDate("planned_decant_date", in.PlannedDecantDate); err != nil {
		return nil, err
	}
	if t.PlannedDeliveryDate, err = parseDate("planned_delivery_date", in.PlannedDeliveryDate); err != nil {
		return nil, err
	}
	if err := s.assignDriver(ctx, t, in.AssignedDriverID); err != nil {
		return nil, err
	}

	if err := s.Repos.Task.CreateTask(ctx, t); err != nil {
		return nil, infra("create task", err)
	}
	return t, nil
}

// GetTask returns the task with each requirement's latest submission status.
func (s *TaskService) GetTask(ctx context.Context, actor user.Identity, id uuid.UUID) (TaskDetail, error) {
	// Tasks are shared across a department; requirement access is gated by
	// canView and canSubmit.
	t, err := s.Repos.Task.GetTaskByID(ctx, id)
	if err != nil {
		return TaskDetail{}, lookupErr(err, ErrTaskNotFound, "load task")
	}
	atts, err := s.Repos.Attachment.ListAttachmentsByTask(ctx, id)
	if err != nil {
		return TaskDetail{}, infra("list attachments", err)
	}
	items, err := withStatuses(ctx, s.Repos, atts, false)
	if err != nil {
		return TaskDetail{}, err
	}

	detail := TaskDetail{Task: t, Attachments: items}
	for _, it := range items {
		if !it.IsRequired {
			continue
		}
		detail.Progress.Required++
		if it.Status == submission.StatusApproved {
			detail.Progress.RequiredApproved++
		}
	}
	return detail, nil
}

// ListTasks returns every task. Mine narrows it to the actor's assignments.
func (s *TaskService) ListTasks(ctx context.Context, actor user.Identity, filter task.ListFilter) ([]task.Task, error) {
	filter.AssignedDriverID = nil
	if filter.Mine {
		id := actor.ID
		filter.AssignedDriverID = &id
	}
	tasks, err := s.Repos.Task.ListTasks(ctx, filter)
	if err != nil {
		return nil, infra("list tasks", err)
	}
	return tasks, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, actor user.Identity, id uuid.UUID, in task.UpdateTaskInput) (*task.Task, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := s.Repos.Task.GetTaskByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrTaskNotFound, "load task")
	}
	if !t.Status.Open() {
		return nil, invalid("a %s task cannot be edited", t.Status)
	}

	if in.CustomerName != nil {
		t.CustomerName = strings.TrimSpace(*in.CustomerName)
	}
	if in.DeliveryAddress != nil {
		t.DeliveryAddress = strings.TrimSpace(*in.DeliveryAddress)
	}
	if in.ProductName != nil {
		t.ProductName = strings.TrimSpace(*in.ProductName)
	}
	if in.Supplier != nil {
		t.Supplier = strings.TrimSpace(*in.Supplier)
	}
	if in.NumberOfBags != nil {
		t.NumberOfBags = *in.NumberOfBags
	}
	if in.BagWeight != nil {
		t.BagWeight = *in.BagWeight
	}
	if in.DocketNumber != nil {
		t.DocketNumber = strings.TrimSpace(*in.DocketNumber)
	}
	if in.VehicleType != nil {
		t.VehicleType = *in.VehicleType
	}
	if in.HaulierTanker != nil {
		t.HaulierTanker = strings.TrimSpace(*in.HaulierTanker)
	}
	if in.PlannedDecantDate != nil {
		if t.PlannedDecantDate, err = parseDate("planned_decant_date", *in.PlannedDecantDate); err != nil {
			return nil, err
		}
	}
	if in.PlannedDeliveryDate != nil {
		if t.PlannedDeliveryDate, err = parseDate("planned_delivery_date", *in.PlannedDeliveryDate); err != nil {
			return nil, err
		}
	}
	if in.AssignedDriverID != nil {
		if err := s.assignDriver(ctx, &t, in.AssignedDriverID); err != nil {
			return nil, err
		}
	}
	if t.CustomerName == "" || t.DeliveryAddress == "" || t.ProductName == "" {
		return nil, invalid("customer name, delivery address and product name are required")
	}

	if err := s.Repos.Task.SaveTask(ctx, &t); err != nil {
		return nil, infra("save task", err)
	}
	return &t, nil
}

// CancelTask moves an open task to cancelled. Cancelled tasks are ignored by
// the lifecycle engine from then on.
func (s *TaskService) CancelTask(ctx context.Context, actor user.Identity, id uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return err
	}
	changed, err := s.Repos.Task.UpdateStatusIf(ctx, id,
		[]task.Status{task.StatusNew, task.StatusInProgress}, task.StatusCancelled)
	if err != nil {
		return infra("cancel task", err)
	}
	if changed {
		return nil
	}

	t, err := s.Repos.Task.GetTaskByID(ctx, id)
	if err != nil {
		return lookupErr(err, ErrTaskNotFound, "load task")
	}
	return invalid("a %s task cannot be cancelled", t.Status)
}

// DeleteTask removes the task with its requirements and submissions. Stored
// files are removed afterwards on a best-effort basis.
func (s *TaskService) DeleteTask(ctx context.Context, actor user.Identity, id uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.Repos.Task.GetTaskByID(ctx, id); err != nil {
		return lookupErr(err, ErrTaskNotFound, "load task")
	}

	var paths []string
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		atts, err := tx.Attachment.ListAttachmentsByTask(ctx, id)
		if err != nil {
			return infra("list attachments", err)
		}
		ids := attachmentIDs(atts)
		if len(ids) > 0 {
			if paths, err = tx.Submission.ListFilePathsByAttachments(ctx, ids); err != nil {
				return infra("list submission files", err)
			}
			if err := tx.Submission.DeleteByAttachments(ctx, ids); err != nil {
				return infra("delete submissions", err)
			}
		}
		if err := tx.Attachment.DeleteAttachmentsByTask(ctx, id); err != nil {
			return infra("delete attachments", err)
		}
		if err := tx.Task.DeleteTask(ctx, id); err != nil {
			return infra("delete task", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	removeObjects(ctx, s.Store, paths)
	return nil
}

// ListDrivers returns active drivers for task assignment.
func (s *TaskService) ListDrivers(ctx context.Context) ([]user.User, error) {
	users, err := s.Repos.User.ListUsers(ctx, user.ListFilter{Role: user.RoleDriver, Status: user.StatusActive})
	if err != nil {
		return nil, infra("list drivers", err)
	}
	return users, nil
}


func (s *TaskService) assignDriver(ctx context.Context, t *task.Task, driverID *uuid.UUID) error {
	if driverID == nil || *driverID == uuid.Nil {
		t.AssignedDriverID = nil
		t.AssignedDriverName = ""
		return nil
	}
	u, err := s.Repos.User.GetUserByID(ctx, *driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidField("assigned_driver_id", "Assigned driver does not exist")
		}
		return infra("load driver", err)
	}
	if u.Role != user.RoleDriver {
		return invalidField("assigned_driver_id", "Assigned user is not a driver")
	}
	id := u.ID
	t.AssignedDriverID = &id
	t.AssignedDriverName = u.Identity().DisplayName()
	return nil
}

// parseDate accepts YYYY-MM-DD or RFC3339; an empty string clears the date.
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, invalidField(field, "must be a date (YYYY-MM-DD)")
}

// withStatuses pairs each attachment with its latest submission. withTask adds
// a task summary per item.
func withStatuses(ctx context.Context, repos *repository.Repos, atts []task.Attachment, withTask bool) ([]AttachmentStatus, error) {
	out := make([]AttachmentStatus, 0, len(atts))
	if len(atts) == 0 {
		return out, nil
	}
	latest, err := repos.Submission.LatestByAttachments(ctx, attachmentIDs(atts))
	if err != nil {
		return nil, infra("load latest submissions", err)
	}

	summaries := map[uuid.UUID]*TaskSummary{}
	for _, a := range atts {
		item := AttachmentStatus{Attachment: a, Status: submission.StatusPending}
		if sub, ok := latest[a.ID]; ok {
			sub := sub
			item.Status = sub.Status
			item.LatestSubmission = &sub
		}
		item.CanSubmit = item.Status.AllowsResubmission()

		if withTask {
			summary, ok := summaries[a.TaskID]
			if !ok {
				t, err := repos.Task.GetTaskByID(ctx, a.TaskID)
				if err != nil {
					return nil, lookupErr(err, ErrTaskNotFound, "load task")
				}
				summary = &TaskSummary{
					ID:                  t.ID,
					DocketNumber:        t.DocketNumber,
					CustomerName:        t.CustomerName,
					Status:              t.Status,
					PlannedDeliveryDate: t.PlannedDeliveryDate,
				}
				summaries[a.TaskID] = summary
			}
			item.Task = summary
		}
		out = append(out, item)
	}
	return out, nil
}

func attachmentIDs(atts []task.Attachment) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(atts))
	for _, a := range atts {
		ids = append(ids, a.ID)
	}
	return ids
}

func removeObjects(ctx context.Context, store storage.ObjectStore, paths []string) {
	if store == nil {
		return
	}
	bg := context.WithoutCancel(ctx)
	for _, p := range paths {
		p := p
		bestEffort("remove object "+p, func() error {
			return store.Remove(bg, p)
		})
	}
}

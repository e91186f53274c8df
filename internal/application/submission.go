package application

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/formengine"
	"github.com/linskybing/logistics-go/internal/notify"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionService struct {
	Repos         *repository.Repos
	Lifecycle     *LifecycleEngine
	Store         storage.ObjectStore
	Dispatcher    *notify.Dispatcher
	MaxUploadSize int64
	SignedURLTTL  time.Duration

	now func() time.Time
}

func NewSubmissionService(repos *repository.Repos, lifecycle *LifecycleEngine, store storage.ObjectStore, dispatcher *notify.Dispatcher) *SubmissionService {
	s := &SubmissionService{
		Repos:         repos,
		Lifecycle:     lifecycle,
		Store:         store,
		Dispatcher:    dispatcher,
		MaxUploadSize: config.MaxUploadSize,
		SignedURLTTL:  config.SignedURLTTL,
		now:           time.Now,
	}
	if s.MaxUploadSize <= 0 {
		s.MaxUploadSize = 10 << 20
	}
	if s.SignedURLTTL <= 0 {
		s.SignedURLTTL = time.Hour
	}
	return s
}

// SubmitChecklist validates form values against the requirement's template
// and records a new submission.
func (s *SubmissionService) SubmitChecklist(ctx context.Context, actor user.Identity, attachmentID uuid.UUID, values map[string]any) (*submission.Submission, error) {
	att, err := s.loadSubmittable(ctx, actor, attachmentID, task.AttachmentChecklist)
	if err != nil {
		return nil, err
	}
	if att.ChecklistTemplateID == nil {
		return nil, invalid("requirement %q has no checklist template", att.Title)
	}

	tmpl, err := s.Repos.Template.GetTemplateByID(ctx, *att.ChecklistTemplateID)
	if err != nil {
		return nil, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}

	clean, fieldErrs := formengine.Validate(tmpl.Fields, values)
	if fieldErrs != nil {
		return nil, &ValidationError{Message: "Please fill in all required fields", Fields: fieldErrs}
	}

	sub := &submission.Submission{
		TaskAttachmentID: att.ID,
		Status:           submission.StatusSubmitted,
		FormData:         datatypes.JSONMap(clean),
		SubmittedBy:      actor.ID,
		SubmittedByName:  actor.DisplayName(),
	}
	if err := s.insert(ctx, att, sub); err != nil {
		return nil, err
	}
	s.afterSubmit(ctx, att)
	return sub, nil
}

// SubmitDocument stores the file and records a new submission pointing at it.
// The object is removed again when the row cannot be written.
func (s *SubmissionService) SubmitDocument(ctx context.Context, actor user.Identity, attachmentID uuid.UUID, up FileUpload) (*submission.Submission, error) {
	att, err := s.loadSubmittable(ctx, actor, attachmentID, task.AttachmentDocument)
	if err != nil {
		return nil, err
	}
	if err := validateSubmissionFile(&up, s.MaxUploadSize); err != nil {
		return nil, err
	}

	objectPath := storage.SubmissionPath(att.TaskID, att.ID, s.now(), up.Name)
	mimeType := baseContentType(up.ContentType)
	if err := s.Store.Put(ctx, objectPath, mimeType, up.Reader, up.Size); err != nil {
		return nil, infra("upload file", err)
	}

	fileName, size := up.Name, up.Size
	sub := &submission.Submission{
		TaskAttachmentID: att.ID,
		Status:           submission.StatusSubmitted,
		FilePath:         &objectPath,
		FileName:         &fileName,
		FileSize:         &size,
		MimeType:         &mimeType,
		SubmittedBy:      actor.ID,
		SubmittedByName:  actor.DisplayName(),
	}
	if err := s.insert(ctx, att, sub); err != nil {
		bestEffort("remove orphaned object "+objectPath, func() error {
			return s.Store.Remove(context.WithoutCancel(ctx), objectPath)
		})
		return nil, err
	}
	s.afterSubmit(ctx, att)
	return sub, nil
}

// Review records a decision on a submission. Reject and flag need a comment.
// Approval may complete the task; overturning an approval may reopen it. The
// submitter is notified in the background.
func (s *SubmissionService) Review(ctx context.Context, actor user.Identity, submissionID uuid.UUID, in submission.ReviewInput) (*submission.Submission, error) {
	if !actor.Role.CanReview() {
		return nil, forbidden("only reviewers can review submissions")
	}
	status, ok := in.Decision.Status()
	if !ok {
		return nil, invalidField("decision", "decision must be one of approve, reject, flag")
	}
	comment := strings.TrimSpace(in.Comments)
	if in.Decision.RequiresComment() && comment == "" {
		return nil, invalidField("comments", "Please provide a comment for rejection or flagging")
	}

	sub, err := s.Repos.Submission.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, lookupErr(err, ErrSubmissionNotFound, "load submission")
	}
	att, err := s.Repos.Attachment.GetAttachmentByID(ctx, sub.TaskAttachmentID)
	if err != nil {
		return nil, lookupErr(err, ErrAttachmentNotFound, "load attachment")
	}
	// Only the latest row of a requirement is open for review.
	latest, err := latestOf(ctx, s.Repos, sub.TaskAttachmentID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.ID != sub.ID {
		return nil, invalid("Only the latest submission can be reviewed")
	}

	previous := sub.Status
	now := s.now()
	reviewer := actor.ID
	sub.Status = status
	sub.ReviewedBy = &reviewer
	sub.ReviewedAt = &now
	sub.ReviewerComments = nil
	if comment != "" {
		sub.ReviewerComments = &comment
	}

	updated, err := s.Repos.Submission.UpdateReview(ctx, &sub, in.ExpectedVersion)
	if err != nil {
		return nil, infra("save review", err)
	}
	if !updated {
		if in.ExpectedVersion != nil {
			return nil, ErrStaleVersion
		}
		return nil, ErrSubmissionNotFound
	}
	log.Printf("[review] submission %s %s -> %s by %s", sub.ID, previous, status, actor.Email)

	bg := context.WithoutCancel(ctx)
	switch {
	case status == submission.StatusApproved:
		bestEffort("complete task "+att.TaskID.String(), func() error {
			_, err := s.Lifecycle.ReevaluateCompletion(bg, att.TaskID)
			return err
		})
	case previous == submission.StatusApproved:
		bestEffort("reopen task "+att.TaskID.String(), func() error {
			_, err := s.Lifecycle.ReevaluateRegression(bg, att.TaskID)
			return err
		})
	}

	s.notify(bg, sub, att)
	return &sub, nil
}

// History lists every submission of a requirement, oldest first.
func (s *SubmissionService) History(ctx context.Context, actor user.Identity, attachmentID uuid.UUID) ([]submission.Submission, error) {
	att, err := s.Repos.Attachment.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return nil, lookupErr(err, ErrAttachmentNotFound, "load attachment")
	}
	if err := canView(actor, att.AssignedTo); err != nil {
		return nil, err
	}
	list, err := s.Repos.Submission.ListSubmissionsByAttachment(ctx, attachmentID)
	if err != nil {
		return nil, infra("list submissions", err)
	}
	return list, nil
}

// Latest returns the newest submission of a requirement, or nil when there is none.
func (s *SubmissionService) Latest(ctx context.Context, attachmentID uuid.UUID) (*submission.Submission, error) {
	return latestOf(ctx, s.Repos, attachmentID)
}

// StatusOf is the status of the latest submission, pending when none exists.
func (s *SubmissionService) StatusOf(ctx context.Context, attachmentID uuid.UUID) (submission.Status, error) {
	latest, err := latestOf(ctx, s.Repos, attachmentID)
	if err != nil {
		return "", err
	}
	if latest == nil {
		return submission.StatusPending, nil
	}
	return latest.Status, nil
}

func (s *SubmissionService) Get(ctx context.Context, actor user.Identity, id uuid.UUID) (submission.View, error) {
	view, err := s.Repos.Submission.GetSubmissionView(ctx, id)
	if err != nil {
		return submission.View{}, lookupErr(err, ErrSubmissionNotFound, "load submission")
	}
	if err := canView(actor, task.Department(view.AssignedTo)); err != nil {
		return submission.View{}, err
	}
	return view, nil
}

// ReviewQueue lists submissions for reviewers, newest first.
func (s *SubmissionService) ReviewQueue(ctx context.Context, actor user.Identity, filter submission.ReviewFilter) ([]submission.View, error) {
	if !actor.Role.CanReview() {
		return nil, forbidden("only reviewers can list submissions")
	}
	views, err := s.Repos.Submission.ListViews(ctx, filter)
	if err != nil {
		return nil, infra("list submissions", err)
	}
	return views, nil
}

// FileURL returns a short-lived download link for a document submission.
func (s *SubmissionService) FileURL(ctx context.Context, actor user.Identity, id uuid.UUID) (string, error) {
	view, err := s.Get(ctx, actor, id)
	if err != nil {
		return "", err
	}
	if view.FilePath == nil {
		return "", invalid("submission has no file")
	}
	url, err := s.Store.SignedURL(ctx, *view.FilePath, s.SignedURLTTL)
	if err != nil {
		return "", infra("sign file url", err)
	}
	return url, nil
}

// PrefillResult carries the initial state of a checklist form.
type PrefillResult struct {
	AttachmentID uuid.UUID              `json:"attachment_id"`
	TemplateID   uuid.UUID              `json:"template_id"`
	Values       map[string]any         `json:"values"`
	Status       submission.Status      `json:"status"`
	Latest       *submission.Submission `json:"latest_submission,omitempty"`
	CanSubmit    bool                   `json:"can_submit"`
}

// Prefill returns form values for a new attempt. After a rejection or flag
// the previous answers are carried over, files excepted.
func (s *SubmissionService) Prefill(ctx context.Context, actor user.Identity, attachmentID uuid.UUID) (PrefillResult, error) {
	att, err := s.Repos.Attachment.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return PrefillResult{}, lookupErr(err, ErrAttachmentNotFound, "load attachment")
	}
	if err := canView(actor, att.AssignedTo); err != nil {
		return PrefillResult{}, err
	}
	if att.AttachmentType != task.AttachmentChecklist || att.ChecklistTemplateID == nil {
		return PrefillResult{}, invalid("requirement %q is not a checklist", att.Title)
	}
	tmpl, err := s.Repos.Template.GetTemplateByID(ctx, *att.ChecklistTemplateID)
	if err != nil {
		return PrefillResult{}, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}
	latest, err := latestOf(ctx, s.Repos, attachmentID)
	if err != nil {
		return PrefillResult{}, err
	}

	res := PrefillResult{AttachmentID: att.ID, TemplateID: tmpl.ID, Status: submission.StatusPending, Latest: latest}
	var previous map[string]any
	if latest != nil {
		res.Status = latest.Status
		if latest.Status == submission.StatusRejected || latest.Status == submission.StatusFlagged {
			previous = latest.FormData
		}
	}
	res.CanSubmit = res.Status.AllowsResubmission()
	res.Values = formengine.Prefill(tmpl.Fields, previous)
	return res, nil
}

// MyChecklists lists the checklist requirements of the actor's department with
// their latest status. filter is empty or "all", a status, or "needs_action".
func (s *SubmissionService) MyChecklists(ctx context.Context, actor user.Identity, filter string) ([]AttachmentStatus, error) {
	dept, ok := task.DepartmentForRole(actor.Role)
	if !ok {
		return nil, forbidden("role %q has no checklists", actor.Role)
	}
	atts, err := s.Repos.Attachment.ListAttachmentsByDepartment(ctx, dept, task.AttachmentChecklist)
	if err != nil {
		return nil, infra("list checklists", err)
	}
	items, err := withStatuses(ctx, s.Repos, atts, true)
	if err != nil {
		return nil, err
	}

	out := make([]AttachmentStatus, 0, len(items))
	for _, it := range items {
		if matchesStatusFilter(it.Status, filter) {
			out = append(out, it)
		}
	}
	return out, nil
}

func matchesStatusFilter(status submission.Status, filter string) bool {
	switch filter {
	case "", "all":
		return true
	case "needs_action":
		return status.AllowsResubmission()
	default:
		return string(status) == filter
	}
}

// loadSubmittable loads the attachment and checks that the actor may submit to
// it now.
func (s *SubmissionService) loadSubmittable(ctx context.Context, actor user.Identity, attachmentID uuid.UUID, want task.AttachmentType) (task.Attachment, error) {
	att, err := s.Repos.Attachment.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return att, lookupErr(err, ErrAttachmentNotFound, "load attachment")
	}
	if err := canSubmit(actor, att.AssignedTo); err != nil {
		return att, err
	}
	if att.AttachmentType != want {
		return att, invalid("requirement %q expects a %s submission", att.Title, att.AttachmentType)
	}

	t, err := s.Repos.Task.GetTaskByID(ctx, att.TaskID)
	if err != nil {
		return att, lookupErr(err, ErrTaskNotFound, "load task")
	}
	if t.Status == task.StatusCancelled {
		return att, invalid("task %s has been cancelled", t.DocketNumber)
	}

	if err := ensureResubmittable(ctx, s.Repos, att.ID); err != nil {
		return att, err
	}
	return att, nil
}

// insert writes the submission under a lock on the attachment so that two
// concurrent submissions cannot both pass the resubmission check.
func (s *SubmissionService) insert(ctx context.Context, att task.Attachment, sub *submission.Submission) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Attachment.LockAttachment(ctx, att.ID); err != nil {
			return lookupErr(err, ErrAttachmentNotFound, "lock attachment")
		}
		if err := ensureResubmittable(ctx, tx, att.ID); err != nil {
			return err
		}
		if err := tx.Submission.CreateSubmission(ctx, sub); err != nil {
			return infra("create submission", err)
		}
		return nil
	})
}

func (s *SubmissionService) afterSubmit(ctx context.Context, att task.Attachment) {
	log.Printf("[submit] attachment %s received a submission", att.ID)
	bestEffort("start task "+att.TaskID.String(), func() error {
		return s.Lifecycle.OnFirstSubmission(context.WithoutCancel(ctx), att.TaskID)
	})
}

func (s *SubmissionService) notify(ctx context.Context, sub submission.Submission, att task.Attachment) {
	if s.Dispatcher == nil {
		return
	}
	n := notify.SubmissionNotification{
		SubmissionID:    sub.ID,
		Status:          sub.Status,
		AttachmentTitle: att.Title,
	}
	if sub.ReviewerComments != nil {
		n.ReviewerComments = *sub.ReviewerComments
	}
	if t, err := s.Repos.Task.GetTaskByID(ctx, att.TaskID); err == nil {
		n.TaskTitle = t.Title()
	}
	s.Dispatcher.Dispatch(n)
}

func ensureResubmittable(ctx context.Context, repos *repository.Repos, attachmentID uuid.UUID) error {
	latest, err := latestOf(ctx, repos, attachmentID)
	if err != nil {
		return err
	}
	if latest == nil || latest.Status.AllowsResubmission() {
		return nil
	}
	if latest.Status == submission.StatusApproved {
		return invalid("This requirement has already been approved")
	}
	return invalid("A submission for this requirement is already awaiting review")
}

func latestOf(ctx context.Context, repos *repository.Repos, attachmentID uuid.UUID) (*submission.Submission, error) {
	latest, err := repos.Submission.LatestSubmission(ctx, attachmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, infra("load latest submission", err)
	}
	return &latest, nil
}

// canSubmit allows the department's own role; admins may submit for either.
func canSubmit(actor user.Identity, assignedTo task.Department) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}
	dept, ok := task.DepartmentForRole(actor.Role)
	if !ok || dept != assignedTo {
		return forbidden("this requirement is assigned to %s", assignedTo)
	}
	return nil
}

// canView allows reviewers everything and fulfilling roles their department.
func canView(actor user.Identity, assignedTo task.Department) error {
	if actor.Role.CanReview() {
		return nil
	}
	return canSubmit(actor, assignedTo)
}

package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/notify"
	"github.com/linskybing/logistics-go/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 7, 17, 10, 0, 0, 0, time.UTC)

func newSubmissionService(m *repoMocks) (*SubmissionService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	svc := NewSubmissionService(m.Repos, NewLifecycleEngine(m.Repos), store, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func inspectionTemplate() checklist.Template {
	id := uuid.New()
	return checklist.Template{
		ID:    id,
		Title: "Pre-delivery inspection",
		Fields: []checklist.Field{
			{ID: uuid.New(), TemplateID: id, FieldName: "driver_name", FieldLabel: "Driver name", FieldType: checklist.FieldText, IsRequired: true, DisplayOrder: 0},
			{ID: uuid.New(), TemplateID: id, FieldName: "vehicle_checked", FieldLabel: "Vehicle checked", FieldType: checklist.FieldCheckbox, IsRequired: true, DisplayOrder: 1},
			{ID: uuid.New(), TemplateID: id, FieldName: "photo", FieldLabel: "Photo", FieldType: checklist.FieldFile, DisplayOrder: 2},
		},
	}
}

func checklistAttachment(tmpl checklist.Template) task.Attachment {
	return task.Attachment{
		ID:                  uuid.New(),
		TaskID:              uuid.New(),
		AttachmentType:      task.AttachmentChecklist,
		Title:               "Inspection",
		ChecklistTemplateID: &tmpl.ID,
		IsRequired:          true,
		AssignedTo:          task.DepartmentTransport,
	}
}

func documentAttachment() task.Attachment {
	return task.Attachment{
		ID:             uuid.New(),
		TaskID:         uuid.New(),
		AttachmentType: task.AttachmentDocument,
		Title:          "Proof of delivery",
		IsRequired:     true,
		AssignedTo:     task.DepartmentTransport,
	}
}

// expectSubmittable primes the lookups made before any write.
func expectSubmittable(m *repoMocks, att task.Attachment, latest *submission.Submission) {
	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)
	m.Task.EXPECT().GetTaskByID(gomock.Any(), att.TaskID).Return(task.Task{ID: att.TaskID, Status: task.StatusNew}, nil)
	if latest == nil {
		m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(submission.Submission{}, gorm.ErrRecordNotFound)
	} else {
		m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(*latest, nil)
	}
}

// expectInsert primes the locked insert and the task start that follows it.
func expectInsert(m *repoMocks, att task.Attachment, created **submission.Submission) {
	m.Attachment.EXPECT().LockAttachment(gomock.Any(), att.ID).Return(nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(submission.Submission{}, gorm.ErrRecordNotFound)
	m.Submission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *submission.Submission) error {
			s.ID = uuid.New()
			*created = s
			return nil
		})
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), att.TaskID, []task.Status{task.StatusNew}, task.StatusInProgress).Return(true, nil)
}

// --------------------- SubmitChecklist ---------------------
func TestSubmitChecklist_Success(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	att := checklistAttachment(tmpl)
	driver := actor(user.RoleDriver)

	var created *submission.Submission
	expectSubmittable(m, att, nil)
	m.Template.EXPECT().GetTemplateByID(gomock.Any(), tmpl.ID).Return(tmpl, nil)
	expectInsert(m, att, &created)

	sub, err := svc.SubmitChecklist(testCtx, driver, att.ID, map[string]any{
		"driver_name":     "Dan",
		"vehicle_checked": true,
		"not_a_field":     "dropped",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, submission.StatusSubmitted, sub.Status)
	assert.Equal(t, driver.ID, sub.SubmittedBy)
	assert.Equal(t, "Test driver", sub.SubmittedByName)
	assert.Equal(t, true, sub.FormData["vehicle_checked"])
	assert.NotContains(t, sub.FormData, "not_a_field")
}

func TestSubmitChecklist_RequiredCheckboxUnchecked(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	att := checklistAttachment(tmpl)

	expectSubmittable(m, att, nil)
	m.Template.EXPECT().GetTemplateByID(gomock.Any(), tmpl.ID).Return(tmpl, nil)
	// no LockAttachment, CreateSubmission or UpdateStatusIf: nothing is written

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleDriver), att.ID, map[string]any{
		"driver_name":     "Dan",
		"vehicle_checked": false,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please fill in all required fields", ve.Message)
	assert.Equal(t, "Vehicle checked is required", ve.Fields["vehicle_checked"])
	assert.NotContains(t, ve.Fields, "driver_name")
}

func TestSubmitChecklist_WrongDepartment(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := checklistAttachment(inspectionTemplate())

	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleWarehouse), att.ID, map[string]any{})
	assert.ErrorIs(t, err, ErrPermission)
}

func TestSubmitChecklist_ReviewerCannotSubmit(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := checklistAttachment(inspectionTemplate())

	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleExecutive), att.ID, map[string]any{})
	assert.ErrorIs(t, err, ErrPermission)
}

func TestSubmitChecklist_LockedWhileAwaitingReview(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := checklistAttachment(inspectionTemplate())

	expectSubmittable(m, att, &submission.Submission{ID: uuid.New(), Status: submission.StatusSubmitted})

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleDriver), att.ID, map[string]any{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "awaiting review")
}

func TestSubmitChecklist_LockedAfterApproval(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := checklistAttachment(inspectionTemplate())

	expectSubmittable(m, att, &submission.Submission{ID: uuid.New(), Status: submission.StatusApproved})

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleAdmin), att.ID, map[string]any{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "approved")
}

func TestSubmitChecklist_ResubmitAfterRejection(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	att := checklistAttachment(tmpl)

	var created *submission.Submission
	expectSubmittable(m, att, &submission.Submission{ID: uuid.New(), Status: submission.StatusRejected})
	m.Template.EXPECT().GetTemplateByID(gomock.Any(), tmpl.ID).Return(tmpl, nil)
	expectInsert(m, att, &created)

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleDriver), att.ID, map[string]any{
		"driver_name":     "Dan",
		"vehicle_checked": true,
	})
	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestSubmitChecklist_CancelledTask(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := checklistAttachment(inspectionTemplate())

	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)
	m.Task.EXPECT().GetTaskByID(gomock.Any(), att.TaskID).Return(task.Task{ID: att.TaskID, Status: task.StatusCancelled}, nil)

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleDriver), att.ID, map[string]any{})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestSubmitChecklist_TaskStartFailureDoesNotFailSubmission(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	att := checklistAttachment(tmpl)

	expectSubmittable(m, att, nil)
	m.Template.EXPECT().GetTemplateByID(gomock.Any(), tmpl.ID).Return(tmpl, nil)
	m.Attachment.EXPECT().LockAttachment(gomock.Any(), att.ID).Return(nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(submission.Submission{}, gorm.ErrRecordNotFound)
	m.Submission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), att.TaskID, gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	_, err := svc.SubmitChecklist(testCtx, actor(user.RoleDriver), att.ID, map[string]any{
		"driver_name":     "Dan",
		"vehicle_checked": true,
	})
	assert.NoError(t, err)
}

// --------------------- SubmitDocument ---------------------
func pdfUpload(size int) FileUpload {
	body := "%PDF-1.7\n"
	if size > len(body) {
		body += strings.Repeat("x", size-len(body))
	}
	body = body[:size]
	return FileUpload{
		Name:        "pod.PDF",
		ContentType: "application/pdf",
		Size:        int64(size),
		Reader:      strings.NewReader(body),
	}
}

func TestSubmitDocument_Success(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	att := documentAttachment()

	var created *submission.Submission
	expectSubmittable(m, att, nil)
	expectInsert(m, att, &created)

	sub, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, pdfUpload(64))
	require.NoError(t, err)

	wantPath := storage.SubmissionPath(att.TaskID, att.ID, fixedNow, "pod.PDF")
	require.NotNil(t, sub.FilePath)
	assert.Equal(t, wantPath, *sub.FilePath)
	assert.True(t, strings.HasSuffix(wantPath, ".pdf"))
	assert.Equal(t, "pod.PDF", *sub.FileName)
	assert.Equal(t, int64(64), *sub.FileSize)
	assert.Equal(t, "application/pdf", *sub.MimeType)

	obj, ok := store.Object(wantPath)
	require.True(t, ok)
	assert.Len(t, obj.Data, 64)
}

func TestSubmitDocument_RejectsMimeType(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	att := documentAttachment()

	expectSubmittable(m, att, nil)

	up := pdfUpload(10)
	up.ContentType = "application/zip"
	_, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, up)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid file type. Please upload PDF, images, or Word documents.", ve.Fields["file"])
	assert.Equal(t, 0, store.Len())
}

func TestSubmitDocument_RejectsContentNotMatchingType(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	att := documentAttachment()

	expectSubmittable(m, att, nil)

	body := "MZ\x90\x00 not really a pdf"
	up := FileUpload{Name: "pod.pdf", ContentType: "application/pdf", Size: int64(len(body)), Reader: strings.NewReader(body)}
	_, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, up)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "File content does not match its type", ve.Fields["file"])
	assert.Equal(t, 0, store.Len())
}

func TestSubmitDocument_AcceptsPNG(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	att := documentAttachment()

	var created *submission.Submission
	expectSubmittable(m, att, nil)
	expectInsert(m, att, &created)

	body := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 24)
	up := FileUpload{Name: "seal.png", ContentType: "image/png", Size: int64(len(body)), Reader: strings.NewReader(body)}
	sub, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, up)
	require.NoError(t, err)

	obj, ok := store.Object(*sub.FilePath)
	require.True(t, ok)
	assert.Equal(t, body, string(obj.Data))
}

func TestSubmitDocument_RejectsOversizedFile(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	svc.MaxUploadSize = 1 << 20
	att := documentAttachment()

	expectSubmittable(m, att, nil)

	up := pdfUpload(10)
	up.Size = 2 << 20
	_, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, up)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "File size must be less than 1MB", ve.Fields["file"])
	assert.Equal(t, 0, store.Len())
}

func TestSubmitDocument_ChecklistAttachmentRejected(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := checklistAttachment(inspectionTemplate())

	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)

	_, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, pdfUpload(10))
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestSubmitDocument_RemovesObjectWhenInsertFails(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	att := documentAttachment()

	expectSubmittable(m, att, nil)
	m.Attachment.EXPECT().LockAttachment(gomock.Any(), att.ID).Return(nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(submission.Submission{}, gorm.ErrRecordNotFound)
	m.Submission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := svc.SubmitDocument(testCtx, actor(user.RoleDriver), att.ID, pdfUpload(10))
	var ie *InfrastructureError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, store.Len())
}

// --------------------- Review ---------------------
func expectReviewLookup(m *repoMocks, sub submission.Submission, att task.Attachment) {
	m.Submission.EXPECT().GetSubmissionByID(gomock.Any(), sub.ID).Return(sub, nil)
	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(sub, nil)
}

func expectUpdateReview(m *repoMocks, ok bool) {
	m.Submission.EXPECT().UpdateReview(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *submission.Submission, _ *int) (bool, error) {
			if ok {
				s.Version++
			}
			return ok, nil
		})
}

func TestReview_RejectRequiresComment(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)

	for _, d := range []submission.Decision{submission.DecisionReject, submission.DecisionFlag} {
		_, err := svc.Review(testCtx, actor(user.RoleAdmin), uuid.New(), submission.ReviewInput{Decision: d, Comments: "   "})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "decision %s", d)
		assert.Equal(t, "Please provide a comment for rejection or flagging", ve.Fields["comments"])
	}
}

func TestReview_DriverCannotReview(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)

	_, err := svc.Review(testCtx, actor(user.RoleDriver), uuid.New(), submission.ReviewInput{Decision: submission.DecisionApprove})
	assert.ErrorIs(t, err, ErrPermission)
}

func TestReview_UnknownDecision(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)

	_, err := svc.Review(testCtx, actor(user.RoleAdmin), uuid.New(), submission.ReviewInput{Decision: "escalate"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestReview_ApproveWithoutCommentCompletesTask(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := documentAttachment()
	sub := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusSubmitted, Version: 1}
	reviewer := actor(user.RoleOperationalLead)

	expectReviewLookup(m, sub, att)
	expectUpdateReview(m, true)
	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), att.TaskID).Return([]uuid.UUID{att.ID}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{att.ID}).Return([]uuid.UUID{att.ID}, nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), att.TaskID, openStatuses, task.StatusCompleted).Return(true, nil)

	got, err := svc.Review(testCtx, reviewer, sub.ID, submission.ReviewInput{Decision: submission.DecisionApprove})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, got.Status)
	assert.Equal(t, &reviewer.ID, got.ReviewedBy)
	assert.Equal(t, fixedNow, *got.ReviewedAt)
	assert.Nil(t, got.ReviewerComments)
	assert.Equal(t, 2, got.Version)
}

func TestReview_RejectStoresTrimmedComment(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := documentAttachment()
	sub := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusSubmitted, Version: 1}

	expectReviewLookup(m, sub, att)
	expectUpdateReview(m, true)

	got, err := svc.Review(testCtx, actor(user.RoleWarehouse), sub.ID, submission.ReviewInput{
		Decision: submission.DecisionReject,
		Comments: "  Signature missing  ",
	})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusRejected, got.Status)
	require.NotNil(t, got.ReviewerComments)
	assert.Equal(t, "Signature missing", *got.ReviewerComments)
}

func TestReview_OverturnedApprovalReopensTask(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := documentAttachment()
	sub := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusApproved, Version: 2}

	expectReviewLookup(m, sub, att)
	expectUpdateReview(m, true)
	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), att.TaskID).Return([]uuid.UUID{att.ID}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{att.ID}).Return(nil, nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), att.TaskID, []task.Status{task.StatusCompleted}, task.StatusInProgress).Return(true, nil)

	_, err := svc.Review(testCtx, actor(user.RoleAdmin), sub.ID, submission.ReviewInput{
		Decision: submission.DecisionFlag,
		Comments: "Wrong customer on document",
	})
	require.NoError(t, err)
}

func TestReview_StaleVersion(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := documentAttachment()
	sub := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusSubmitted, Version: 2}

	expectReviewLookup(m, sub, att)
	expectUpdateReview(m, false)

	_, err := svc.Review(testCtx, actor(user.RoleAdmin), sub.ID, submission.ReviewInput{
		Decision:        submission.DecisionApprove,
		ExpectedVersion: ptr(1),
	})
	assert.ErrorIs(t, err, ErrStaleVersion)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReview_SupersededSubmissionRefused(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	att := documentAttachment()
	old := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusRejected, Version: 2}
	newer := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusSubmitted, Version: 1}

	m.Submission.EXPECT().GetSubmissionByID(gomock.Any(), old.ID).Return(old, nil)
	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(newer, nil)

	_, err := svc.Review(testCtx, actor(user.RoleAdmin), old.ID, submission.ReviewInput{Decision: submission.DecisionApprove})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Only the latest submission can be reviewed", ve.Message)
}

func TestReview_SubmissionNotFound(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)

	m.Submission.EXPECT().GetSubmissionByID(gomock.Any(), gomock.Any()).Return(submission.Submission{}, gorm.ErrRecordNotFound)

	_, err := svc.Review(testCtx, actor(user.RoleAdmin), uuid.New(), submission.ReviewInput{Decision: submission.DecisionApprove})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.SubmissionNotification
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.SubmissionNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func TestReview_NotifiesSubmitter(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	rec := &recordingNotifier{}
	svc.Dispatcher = notify.NewDispatcher(rec, time.Second)

	att := documentAttachment()
	sub := submission.Submission{ID: uuid.New(), TaskAttachmentID: att.ID, Status: submission.StatusSubmitted, Version: 1}

	expectReviewLookup(m, sub, att)
	expectUpdateReview(m, true)
	m.Task.EXPECT().GetTaskByID(gomock.Any(), att.TaskID).Return(task.Task{ID: att.TaskID, DocketNumber: "D-7", CustomerName: "Acme"}, nil)

	_, err := svc.Review(testCtx, actor(user.RoleAdmin), sub.ID, submission.ReviewInput{
		Decision: submission.DecisionReject,
		Comments: "Blurry scan",
	})
	require.NoError(t, err)
	svc.Dispatcher.Wait()

	require.Len(t, rec.sent, 1)
	n := rec.sent[0]
	assert.Equal(t, sub.ID, n.SubmissionID)
	assert.Equal(t, submission.StatusRejected, n.Status)
	assert.Equal(t, "Blurry scan", n.ReviewerComments)
	assert.Equal(t, "Docket #D-7 - Acme", n.TaskTitle)
	assert.Equal(t, "Proof of delivery", n.AttachmentTitle)
}

// --------------------- Queries ---------------------
func TestStatusOf_PendingWithoutSubmissions(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	id := uuid.New()

	m.Submission.EXPECT().LatestSubmission(gomock.Any(), id).Return(submission.Submission{}, gorm.ErrRecordNotFound)

	st, err := svc.StatusOf(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusPending, st)
}

func TestPrefill_CarriesValuesAfterRejection(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	att := checklistAttachment(tmpl)
	latest := submission.Submission{
		ID:     uuid.New(),
		Status: submission.StatusRejected,
		FormData: map[string]any{
			"driver_name":     "Dan",
			"vehicle_checked": true,
			"photo":           map[string]any{"name": "truck.jpg", "uploaded": true},
		},
	}

	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)
	m.Template.EXPECT().GetTemplateByID(gomock.Any(), tmpl.ID).Return(tmpl, nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(latest, nil)

	res, err := svc.Prefill(testCtx, actor(user.RoleDriver), att.ID)
	require.NoError(t, err)
	assert.True(t, res.CanSubmit)
	assert.Equal(t, submission.StatusRejected, res.Status)
	assert.Equal(t, "Dan", res.Values["driver_name"])
	assert.Equal(t, true, res.Values["vehicle_checked"])
	assert.Nil(t, res.Values["photo"])
}

func TestPrefill_FreshFormWhenApproved(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	att := checklistAttachment(tmpl)
	latest := submission.Submission{ID: uuid.New(), Status: submission.StatusApproved, FormData: map[string]any{"driver_name": "Dan"}}

	m.Attachment.EXPECT().GetAttachmentByID(gomock.Any(), att.ID).Return(att, nil)
	m.Template.EXPECT().GetTemplateByID(gomock.Any(), tmpl.ID).Return(tmpl, nil)
	m.Submission.EXPECT().LatestSubmission(gomock.Any(), att.ID).Return(latest, nil)

	res, err := svc.Prefill(testCtx, actor(user.RoleDriver), att.ID)
	require.NoError(t, err)
	assert.False(t, res.CanSubmit)
	assert.Equal(t, "", res.Values["driver_name"])
	assert.Equal(t, false, res.Values["vehicle_checked"])
}

func TestMyChecklists_FiltersByStatus(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)
	tmpl := inspectionTemplate()
	a1, a2 := checklistAttachment(tmpl), checklistAttachment(tmpl)
	a2.TaskID = a1.TaskID

	m.Attachment.EXPECT().ListAttachmentsByDepartment(gomock.Any(), task.DepartmentTransport, task.AttachmentChecklist).Return([]task.Attachment{a1, a2}, nil).Times(2)
	m.Submission.EXPECT().LatestByAttachments(gomock.Any(), []uuid.UUID{a1.ID, a2.ID}).Return(map[uuid.UUID]submission.Submission{
		a2.ID: {ID: uuid.New(), TaskAttachmentID: a2.ID, Status: submission.StatusFlagged},
	}, nil).Times(2)
	m.Task.EXPECT().GetTaskByID(gomock.Any(), a1.TaskID).Return(task.Task{ID: a1.TaskID, DocketNumber: "D-1"}, nil).Times(2)

	all, err := svc.MyChecklists(testCtx, actor(user.RoleDriver), "all")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, submission.StatusPending, all[0].Status)
	assert.Equal(t, "D-1", all[0].Task.DocketNumber)

	flagged, err := svc.MyChecklists(testCtx, actor(user.RoleDriver), "flagged")
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, a2.ID, flagged[0].ID)
	assert.True(t, flagged[0].CanSubmit)
}

func TestMyChecklists_RoleWithoutDepartment(t *testing.T) {
	m := setupRepoMocks(t)
	svc, _ := newSubmissionService(m)

	_, err := svc.MyChecklists(testCtx, actor(user.RoleExecutive), "")
	assert.ErrorIs(t, err, ErrPermission)
}

func TestFileURL(t *testing.T) {
	m := setupRepoMocks(t)
	svc, store := newSubmissionService(m)
	path := "t/a/1.pdf"
	require.NoError(t, store.Put(testCtx, path, "application/pdf", strings.NewReader("x"), 1))

	view := submission.View{Submission: submission.Submission{ID: uuid.New(), FilePath: &path}, AssignedTo: string(task.DepartmentTransport)}
	m.Submission.EXPECT().GetSubmissionView(gomock.Any(), view.ID).Return(view, nil)

	url, err := svc.FileURL(testCtx, actor(user.RoleExecutive), view.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "memory://"))
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	repos  *repository.Repos
	driver user.User
	task   task.Task
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	repos := repository.New(testutils.NewTestDB(t))

	driver := user.User{Email: "driver@test.io", Password: "x", FirstName: "Dan", LastName: "Driver", Role: user.RoleDriver, Status: user.StatusActive}
	require.NoError(t, repos.User.CreateUser(ctx, &driver))

	tk := task.Task{CustomerName: "Acme", DeliveryAddress: "Dock 1", ProductName: "Pellets", DocketNumber: "D-1", VehicleType: task.VehicleTruck, Status: task.StatusNew, AssignedDriverID: &driver.ID}
	require.NoError(t, repos.Task.CreateTask(ctx, &tk))

	return fixture{repos: repos, driver: driver, task: tk}
}

func (f fixture) attachment(t *testing.T, required bool) task.Attachment {
	t.Helper()
	a := task.Attachment{TaskID: f.task.ID, AttachmentType: task.AttachmentDocument, Title: "POD", IsRequired: required, AssignedTo: task.DepartmentTransport}
	require.NoError(t, f.repos.Attachment.CreateAttachment(context.Background(), &a))
	return a
}

func (f fixture) submit(t *testing.T, attachmentID uuid.UUID, status submission.Status) submission.Submission {
	t.Helper()
	s := submission.Submission{TaskAttachmentID: attachmentID, Status: status, SubmittedBy: f.driver.ID, SubmittedByName: "Dan Driver"}
	require.NoError(t, f.repos.Submission.CreateSubmission(context.Background(), &s))
	return s
}

func TestUpdateStatusIf_IsConditional(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	changed, err := f.repos.Task.UpdateStatusIf(ctx, f.task.ID, []task.Status{task.StatusNew}, task.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.repos.Task.UpdateStatusIf(ctx, f.task.ID, []task.Status{task.StatusNew}, task.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := f.repos.Task.GetTaskByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, got.Status)
}

func TestLatestSubmission_SameTimestampUsesInsertionOrder(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.attachment(t, true)

	at := time.Now().Truncate(time.Second)
	first := submission.Submission{TaskAttachmentID: a.ID, Status: submission.StatusRejected, SubmittedBy: f.driver.ID, CreatedAt: at}
	second := submission.Submission{TaskAttachmentID: a.ID, Status: submission.StatusSubmitted, SubmittedBy: f.driver.ID, CreatedAt: at}
	require.NoError(t, f.repos.Submission.CreateSubmission(ctx, &first))
	require.NoError(t, f.repos.Submission.CreateSubmission(ctx, &second))

	latest, err := f.repos.Submission.LatestSubmission(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	history, err := f.repos.Submission.ListSubmissionsByAttachment(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
}

func TestLatestSubmission_NoneIsNotFound(t *testing.T) {
	f := setup(t)
	a := f.attachment(t, true)

	_, err := f.repos.Submission.LatestSubmission(context.Background(), a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLatestByAttachments(t *testing.T) {
	f := setup(t)
	a1 := f.attachment(t, true)
	a2 := f.attachment(t, true)
	a3 := f.attachment(t, false)
	f.submit(t, a1.ID, submission.StatusRejected)
	s1b := f.submit(t, a1.ID, submission.StatusSubmitted)
	s2 := f.submit(t, a2.ID, submission.StatusApproved)

	latest, err := f.repos.Submission.LatestByAttachments(context.Background(), []uuid.UUID{a1.ID, a2.ID, a3.ID})

	require.NoError(t, err)
	assert.Len(t, latest, 2)
	assert.Equal(t, s1b.ID, latest[a1.ID].ID)
	assert.Equal(t, s2.ID, latest[a2.ID].ID)
	_, ok := latest[a3.ID]
	assert.False(t, ok)
}

func TestApprovedAttachmentIDs_Distinct(t *testing.T) {
	f := setup(t)
	a1 := f.attachment(t, true)
	a2 := f.attachment(t, true)
	f.submit(t, a1.ID, submission.StatusApproved)
	f.submit(t, a1.ID, submission.StatusApproved)
	f.submit(t, a2.ID, submission.StatusRejected)

	ids, err := f.repos.Submission.ApprovedAttachmentIDs(context.Background(), []uuid.UUID{a1.ID, a2.ID})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a1.ID}, ids)
}

func TestUpdateReview_Version(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.attachment(t, true)
	s := f.submit(t, a.ID, submission.StatusSubmitted)
	require.Equal(t, 1, s.Version)

	now := time.Now()
	s.Status = submission.StatusApproved
	s.ReviewedBy = &f.driver.ID
	s.ReviewedAt = &now

	stale := 7
	ok, err := f.repos.Submission.UpdateReview(ctx, &s, &stale)
	require.NoError(t, err)
	assert.False(t, ok)

	current := 1
	ok, err = f.repos.Submission.UpdateReview(ctx, &s, &current)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Version)

	got, err := f.repos.Submission.GetSubmissionByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, got.Status)
	assert.Equal(t, 2, got.Version)
	assert.Nil(t, got.ReviewerComments)
}

func TestListViews_JoinsTaskAndRequirement(t *testing.T) {
	f := setup(t)
	a := f.attachment(t, true)
	f.submit(t, a.ID, submission.StatusSubmitted)

	views, err := f.repos.Submission.ListViews(context.Background(), submission.ReviewFilter{Status: submission.StatusSubmitted})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, f.task.ID, views[0].TaskID)
	assert.Equal(t, "D-1", views[0].DocketNumber)
	assert.Equal(t, "POD", views[0].AttachmentTitle)
	assert.Equal(t, "transport", views[0].AssignedTo)
	assert.Nil(t, views[0].ReviewerName)
}

func TestListAttachmentsByDepartment_SkipsCancelledTasks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := task.Attachment{TaskID: f.task.ID, AttachmentType: task.AttachmentChecklist, Title: "Inspection", IsRequired: true, AssignedTo: task.DepartmentTransport}
	require.NoError(t, f.repos.Attachment.CreateAttachment(ctx, &a))

	list, err := f.repos.Attachment.ListAttachmentsByDepartment(ctx, task.DepartmentTransport, task.AttachmentChecklist)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.repos.Task.UpdateStatusIf(ctx, f.task.ID, []task.Status{task.StatusNew}, task.StatusCancelled)
	require.NoError(t, err)

	list, err = f.repos.Attachment.ListAttachmentsByDepartment(ctx, task.DepartmentTransport, task.AttachmentChecklist)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTemplate_ReplaceFieldsInTx(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	tmpl := checklist.Template{
		Title: "Inspection",
		Fields: []checklist.Field{
			{FieldName: "a", FieldLabel: "A", FieldType: checklist.FieldText, DisplayOrder: 0},
			{FieldName: "b", FieldLabel: "B", FieldType: checklist.FieldCheckbox, DisplayOrder: 1},
		},
	}
	require.NoError(t, f.repos.Template.CreateTemplate(ctx, &tmpl))

	err := f.repos.ExecTx(ctx, func(tx *repository.Repos) error {
		return tx.Template.ReplaceFields(ctx, tmpl.ID, []checklist.Field{
			{FieldName: "c", FieldLabel: "C", FieldType: checklist.FieldSelect, Options: []string{"x", "y"}, DisplayOrder: 0},
		})
	})
	require.NoError(t, err)

	got, err := f.repos.Template.GetTemplateByID(ctx, tmpl.ID)
	require.NoError(t, err)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "c", got.Fields[0].FieldName)
	assert.Equal(t, []string{"x", "y"}, []string(got.Fields[0].Options))
}

func TestCountTasksByStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	other := task.Task{CustomerName: "Other", DeliveryAddress: "x", ProductName: "y", VehicleType: task.VehicleTank, Status: task.StatusCompleted}
	require.NoError(t, f.repos.Task.CreateTask(ctx, &other))

	all, err := f.repos.Task.CountTasksByStatus(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), all[task.StatusNew])
	assert.Equal(t, int64(1), all[task.StatusCompleted])

	mine, err := f.repos.Task.CountTasksByStatus(ctx, &f.driver.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine[task.StatusNew])
	assert.Zero(t, mine[task.StatusCompleted])
}

//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_LockAndConditionalWrites(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(testutils.SetupPostgres(t))
	assert.Equal(t, "postgres", repos.Dialect())

	driver := user.User{Email: "pg-driver@test.io", Password: "x", FirstName: "Pat", LastName: "Driver", Role: user.RoleDriver, Status: user.StatusActive}
	require.NoError(t, repos.User.CreateUser(ctx, &driver))
	tk := task.Task{CustomerName: "Acme", DeliveryAddress: "Dock 9", ProductName: "Pallets", DocketNumber: "PG-1", VehicleType: task.VehicleTruck, Status: task.StatusNew, AssignedDriverID: &driver.ID}
	require.NoError(t, repos.Task.CreateTask(ctx, &tk))
	a := task.Attachment{TaskID: tk.ID, AttachmentType: task.AttachmentDocument, Title: "POD", IsRequired: true, AssignedTo: task.DepartmentTransport}
	require.NoError(t, repos.Attachment.CreateAttachment(ctx, &a))

	var created submission.Submission
	err := repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Attachment.LockAttachment(ctx, a.ID); err != nil {
			return err
		}
		created = submission.Submission{TaskAttachmentID: a.ID, Status: submission.StatusSubmitted, SubmittedBy: driver.ID, SubmittedByName: "Pat Driver"}
		if err := tx.Submission.CreateSubmission(ctx, &created); err != nil {
			return err
		}
		_, err := tx.Task.UpdateStatusIf(ctx, tk.ID, []task.Status{task.StatusNew}, task.StatusInProgress)
		return err
	})
	require.NoError(t, err)

	got, err := repos.Task.GetTaskByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, got.Status)

	stale := created.Version
	created.Status = submission.StatusApproved
	ok, err := repos.Submission.UpdateReview(ctx, &created, &stale)
	require.NoError(t, err)
	assert.True(t, ok)

	again := created
	again.Status = submission.StatusRejected
	ok, err = repos.Submission.UpdateReview(ctx, &again, &stale)
	require.NoError(t, err)
	assert.False(t, ok)
}

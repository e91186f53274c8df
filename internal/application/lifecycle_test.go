package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	openStatuses = []task.Status{task.StatusNew, task.StatusInProgress}
	testCtx      = context.Background()
)

// --------------------- OnFirstSubmission ---------------------
func TestOnFirstSubmission_MovesNewToInProgress(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID := uuid.New()

	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), taskID, []task.Status{task.StatusNew}, task.StatusInProgress).Return(true, nil)

	require.NoError(t, engine.OnFirstSubmission(testCtx, taskID))
}

func TestOnFirstSubmission_Idempotent(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID := uuid.New()

	gomock.InOrder(
		m.Task.EXPECT().UpdateStatusIf(gomock.Any(), taskID, []task.Status{task.StatusNew}, task.StatusInProgress).Return(true, nil),
		m.Task.EXPECT().UpdateStatusIf(gomock.Any(), taskID, []task.Status{task.StatusNew}, task.StatusInProgress).Return(false, nil),
	)

	require.NoError(t, engine.OnFirstSubmission(testCtx, taskID))
	require.NoError(t, engine.OnFirstSubmission(testCtx, taskID))
}

func TestOnFirstSubmission_RepoError(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)

	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	err := engine.OnFirstSubmission(testCtx, uuid.New())
	var ie *InfrastructureError
	assert.ErrorAs(t, err, &ie)
}

// --------------------- ReevaluateCompletion ---------------------
func TestReevaluateCompletion_AllRequiredApproved(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID, a, b := uuid.New(), uuid.New(), uuid.New()

	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), taskID).Return([]uuid.UUID{a, b}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{a, b}).Return([]uuid.UUID{b, a}, nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), taskID, openStatuses, task.StatusCompleted).Return(true, nil)

	changed, err := engine.ReevaluateCompletion(testCtx, taskID)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestReevaluateCompletion_PartiallyApproved(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID, a, b := uuid.New(), uuid.New(), uuid.New()

	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), taskID).Return([]uuid.UUID{a, b}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{a, b}).Return([]uuid.UUID{a}, nil)

	changed, err := engine.ReevaluateCompletion(testCtx, taskID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReevaluateCompletion_NoRequiredAttachmentsNeverCompletes(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID := uuid.New()

	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), taskID).Return(nil, nil)

	changed, err := engine.ReevaluateCompletion(testCtx, taskID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReevaluateCompletion_AlreadyCompletedOrCancelled(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID, a := uuid.New(), uuid.New()

	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), taskID).Return([]uuid.UUID{a}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{a}).Return([]uuid.UUID{a}, nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), taskID, openStatuses, task.StatusCompleted).Return(false, nil)

	changed, err := engine.ReevaluateCompletion(testCtx, taskID)
	require.NoError(t, err)
	assert.False(t, changed)
}

// --------------------- ReevaluateRegression ---------------------
func TestReevaluateRegression_ReopensWhenApprovalLost(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID, a := uuid.New(), uuid.New()

	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), taskID).Return([]uuid.UUID{a}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{a}).Return(nil, nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), taskID, []task.Status{task.StatusCompleted}, task.StatusInProgress).Return(true, nil)

	changed, err := engine.ReevaluateRegression(testCtx, taskID)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestReevaluateRegression_StillCovered(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	taskID, a := uuid.New(), uuid.New()

	// an older approved submission still covers the requirement
	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), taskID).Return([]uuid.UUID{a}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{a}).Return([]uuid.UUID{a}, nil)

	changed, err := engine.ReevaluateRegression(testCtx, taskID)
	require.NoError(t, err)
	assert.False(t, changed)
}

// --------------------- ReconcileAll ---------------------
func TestReconcileAll_ContinuesPastFailures(t *testing.T) {
	m := setupRepoMocks(t)
	engine := NewLifecycleEngine(m.Repos)
	good, bad, a := uuid.New(), uuid.New(), uuid.New()

	m.Task.EXPECT().ListTaskIDsByStatus(gomock.Any(), task.StatusInProgress).Return([]uuid.UUID{bad, good}, nil)
	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), bad).Return(nil, errors.New("boom"))
	m.Attachment.EXPECT().ListRequiredAttachmentIDs(gomock.Any(), good).Return([]uuid.UUID{a}, nil)
	m.Submission.EXPECT().ApprovedAttachmentIDs(gomock.Any(), []uuid.UUID{a}).Return([]uuid.UUID{a}, nil)
	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), good, openStatuses, task.StatusCompleted).Return(true, nil)

	n, err := engine.ReconcileAll(testCtx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

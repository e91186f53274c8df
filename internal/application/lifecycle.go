package application

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/repository"
)

// LifecycleEngine derives task status from submission events:
// new -> in_progress on the first submission, in_progress -> completed once
// every required attachment has an approved submission. Cancelled tasks are
// never touched.
type LifecycleEngine struct {
	Repos *repository.Repos
}

func NewLifecycleEngine(repos *repository.Repos) *LifecycleEngine {
	return &LifecycleEngine{
		Repos: repos,
	}
}

// OnFirstSubmission moves a new task to in_progress. Re-applying it is a no-op.
func (e *LifecycleEngine) OnFirstSubmission(ctx context.Context, taskID uuid.UUID) error {
	changed, err := e.Repos.Task.UpdateStatusIf(ctx, taskID, []task.Status{task.StatusNew}, task.StatusInProgress)
	if err != nil {
		return infra("start task", err)
	}
	if changed {
		log.Printf("[lifecycle] task %s -> %s", taskID, task.StatusInProgress)
	}
	return nil
}

// ReevaluateCompletion completes the task when every required attachment has
// at least one approved submission. A task without required attachments is
// never completed automatically. It reports whether the status changed.
func (e *LifecycleEngine) ReevaluateCompletion(ctx context.Context, taskID uuid.UUID) (bool, error) {
	covered, hasRequired, err := e.requiredCovered(ctx, taskID)
	if err != nil || !hasRequired || !covered {
		return false, err
	}

	changed, err := e.Repos.Task.UpdateStatusIf(ctx, taskID,
		[]task.Status{task.StatusNew, task.StatusInProgress}, task.StatusCompleted)
	if err != nil {
		return false, infra("complete task", err)
	}
	if changed {
		log.Printf("[lifecycle] task %s -> %s", taskID, task.StatusCompleted)
	}
	return changed, nil
}

// ReevaluateRegression reopens a completed task whose required attachments are
// no longer all approved, which happens when an approval is overturned.
func (e *LifecycleEngine) ReevaluateRegression(ctx context.Context, taskID uuid.UUID) (bool, error) {
	covered, hasRequired, err := e.requiredCovered(ctx, taskID)
	if err != nil || !hasRequired || covered {
		return false, err
	}

	changed, err := e.Repos.Task.UpdateStatusIf(ctx, taskID,
		[]task.Status{task.StatusCompleted}, task.StatusInProgress)
	if err != nil {
		return false, infra("reopen task", err)
	}
	if changed {
		log.Printf("[lifecycle] task %s reopened -> %s", taskID, task.StatusInProgress)
	}
	return changed, nil
}

// ReconcileAll re-runs completion for every in-progress task and returns how
// many were completed. Failures on one task do not stop the sweep.
func (e *LifecycleEngine) ReconcileAll(ctx context.Context) (int, error) {
	ids, err := e.Repos.Task.ListTaskIDsByStatus(ctx, task.StatusInProgress)
	if err != nil {
		return 0, infra("list in-progress tasks", err)
	}

	completed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return completed, ctx.Err()
		}
		changed, err := e.ReevaluateCompletion(ctx, id)
		if err != nil {
			log.Printf("[lifecycle] reconcile task %s: %v", id, err)
			continue
		}
		if changed {
			completed++
		}
	}
	return completed, nil
}

func (e *LifecycleEngine) requiredCovered(ctx context.Context, taskID uuid.UUID) (covered, hasRequired bool, err error) {
	required, err := e.Repos.Attachment.ListRequiredAttachmentIDs(ctx, taskID)
	if err != nil {
		return false, false, infra("list required attachments", err)
	}
	if len(required) == 0 {
		return false, false, nil
	}

	approved, err := e.Repos.Submission.ApprovedAttachmentIDs(ctx, required)
	if err != nil {
		return false, true, infra("list approved attachments", err)
	}

	approvedSet := make(map[uuid.UUID]struct{}, len(approved))
	for _, id := range approved {
		approvedSet[id] = struct{}{}
	}
	for _, id := range required {
		if _, ok := approvedSet[id]; !ok {
			return false, true, nil
		}
	}
	return true, true, nil
}

package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
)

type DashboardStats struct {
	TotalTasks       int64 `json:"total_tasks"`
	NewTasks         int64 `json:"new_tasks"`
	InProgressTasks  int64 `json:"in_progress_tasks"`
	CompletedTasks   int64 `json:"completed_tasks"`
	CancelledTasks   int64 `json:"cancelled_tasks"`
	TotalSubmissions int64 `json:"total_submissions"`
	PendingReviews   int64 `json:"pending_reviews"`
	Rejected         int64 `json:"rejected"`
	Flagged          int64 `json:"flagged"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{
		Repos: repos,
	}
}

// Stats counts tasks and submissions. Drivers only see their own.
func (s *DashboardService) Stats(ctx context.Context, actor user.Identity) (DashboardStats, error) {
	var scope *uuid.UUID
	if actor.Role == user.RoleDriver {
		id := actor.ID
		scope = &id
	}

	tasks, err := s.Repos.Task.CountTasksByStatus(ctx, scope)
	if err != nil {
		return DashboardStats{}, infra("count tasks", err)
	}
	subs, err := s.Repos.Submission.CountSubmissionsByStatus(ctx, scope)
	if err != nil {
		return DashboardStats{}, infra("count submissions", err)
	}

	stats := DashboardStats{
		NewTasks:        tasks[task.StatusNew],
		InProgressTasks: tasks[task.StatusInProgress],
		CompletedTasks:  tasks[task.StatusCompleted],
		CancelledTasks:  tasks[task.StatusCancelled],
		// a submitted row is always the latest of its attachment, since it
		// blocks further submissions until reviewed
		PendingReviews: subs[submission.StatusSubmitted],
		Rejected:       subs[submission.StatusRejected],
		Flagged:        subs[submission.StatusFlagged],
	}
	for _, n := range tasks {
		stats.TotalTasks += n
	}
	for _, n := range subs {
		stats.TotalSubmissions += n
	}
	return stats, nil
}

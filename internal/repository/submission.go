package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateSubmission(ctx context.Context, s *submission.Submission) error
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (submission.Submission, error)
	GetSubmissionView(ctx context.Context, id uuid.UUID) (submission.View, error)
	ListSubmissionsByAttachment(ctx context.Context, attachmentID uuid.UUID) ([]submission.Submission, error)
	LatestSubmission(ctx context.Context, attachmentID uuid.UUID) (submission.Submission, error)
	LatestByAttachments(ctx context.Context, attachmentIDs []uuid.UUID) (map[uuid.UUID]submission.Submission, error)
	ApprovedAttachmentIDs(ctx context.Context, attachmentIDs []uuid.UUID) ([]uuid.UUID, error)
	UpdateReview(ctx context.Context, s *submission.Submission, expectedVersion *int) (bool, error)
	ListViews(ctx context.Context, filter submission.ReviewFilter) ([]submission.View, error)
	CountSubmissionsByStatus(ctx context.Context, submittedBy *uuid.UUID) (map[submission.Status]int64, error)
	ListFilePathsByAttachments(ctx context.Context, attachmentIDs []uuid.UUID) ([]string, error)
	DeleteByAttachments(ctx context.Context, attachmentIDs []uuid.UUID) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

// newestFirst orders submissions so that the first row is the latest one.
const newestFirst = "task_submissions.created_at DESC, task_submissions.id DESC"

func (r *DBSubmissionRepo) CreateSubmission(ctx context.Context, s *submission.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBSubmissionRepo) GetSubmissionByID(ctx context.Context, id uuid.UUID) (submission.Submission, error) {
	var s submission.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBSubmissionRepo) GetSubmissionView(ctx context.Context, id uuid.UUID) (submission.View, error) {
	var views []submission.View
	if err := r.viewQuery(ctx).Where("task_submissions.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return submission.View{}, err
	}
	if len(views) == 0 {
		return submission.View{}, gorm.ErrRecordNotFound
	}
	return views[0], nil
}

// ListSubmissionsByAttachment returns the history oldest first.
func (r *DBSubmissionRepo) ListSubmissionsByAttachment(ctx context.Context, attachmentID uuid.UUID) ([]submission.Submission, error) {
	var list []submission.Submission
	err := r.db.WithContext(ctx).
		Where("task_attachment_id = ?", attachmentID).
		Order("task_submissions.created_at ASC, task_submissions.id ASC").
		Find(&list).Error
	return list, err
}

func (r *DBSubmissionRepo) LatestSubmission(ctx context.Context, attachmentID uuid.UUID) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.WithContext(ctx).
		Where("task_attachment_id = ?", attachmentID).
		Order(newestFirst).
		First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) LatestByAttachments(ctx context.Context, attachmentIDs []uuid.UUID) (map[uuid.UUID]submission.Submission, error) {
	latest := make(map[uuid.UUID]submission.Submission, len(attachmentIDs))
	if len(attachmentIDs) == 0 {
		return latest, nil
	}
	var list []submission.Submission
	err := r.db.WithContext(ctx).
		Where("task_attachment_id IN ?", attachmentIDs).
		Order(newestFirst).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		if _, seen := latest[s.TaskAttachmentID]; !seen {
			latest[s.TaskAttachmentID] = s
		}
	}
	return latest, nil
}

// ApprovedAttachmentIDs returns the distinct ids among attachmentIDs that have
// at least one approved submission.
func (r *DBSubmissionRepo) ApprovedAttachmentIDs(ctx context.Context, attachmentIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(attachmentIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).Model(&submission.Submission{}).
		Where("task_attachment_id IN ? AND status = ?", attachmentIDs, submission.StatusApproved).
		Distinct().
		Pluck("task_attachment_id", &ids).Error
	return ids, err
}

// UpdateReview writes the review columns and bumps the version. With a non-nil
// expectedVersion the write only applies while the stored version matches; the
// result reports whether a row changed.
func (r *DBSubmissionRepo) UpdateReview(ctx context.Context, s *submission.Submission, expectedVersion *int) (bool, error) {
	now := time.Now()
	q := r.db.WithContext(ctx).Model(&submission.Submission{}).Where("id = ?", s.ID)
	if expectedVersion != nil {
		q = q.Where("version = ?", *expectedVersion)
	}
	res := q.Updates(map[string]any{
		"status":            s.Status,
		"reviewed_by":       s.ReviewedBy,
		"reviewed_at":       s.ReviewedAt,
		"reviewer_comments": s.ReviewerComments,
		"version":           gorm.Expr("version + 1"),
		"updated_at":        now,
	})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if expectedVersion != nil {
		s.Version = *expectedVersion + 1
	} else {
		s.Version++
	}
	s.UpdatedAt = now
	return true, nil
}

func (r *DBSubmissionRepo) ListViews(ctx context.Context, filter submission.ReviewFilter) ([]submission.View, error) {
	q := r.viewQuery(ctx)
	if filter.Status != "" {
		q = q.Where("task_submissions.status = ?", filter.Status)
	}
	if filter.AssignedTo != "" {
		q = q.Where("task_attachments.assigned_to = ?", filter.AssignedTo)
	}
	if filter.TaskID != nil {
		q = q.Where("task_attachments.task_id = ?", *filter.TaskID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var views []submission.View
	if err := q.Order(newestFirst).Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *DBSubmissionRepo) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("task_submissions").
		Select(`task_submissions.*,
			task_attachments.task_id,
			tasks.docket_number,
			tasks.customer_name,
			task_attachments.title AS attachment_title,
			task_attachments.attachment_type,
			task_attachments.assigned_to,
			reviewers.first_name || ' ' || reviewers.last_name AS reviewer_name`).
		Joins("JOIN task_attachments ON task_attachments.id = task_submissions.task_attachment_id").
		Joins("JOIN tasks ON tasks.id = task_attachments.task_id").
		Joins("LEFT JOIN users reviewers ON reviewers.id = task_submissions.reviewed_by")
}

func (r *DBSubmissionRepo) CountSubmissionsByStatus(ctx context.Context, submittedBy *uuid.UUID) (map[submission.Status]int64, error) {
	var rows []struct {
		Status submission.Status
		Count  int64
	}
	q := r.db.WithContext(ctx).Model(&submission.Submission{}).Select("status, COUNT(*) AS count")
	if submittedBy != nil {
		q = q.Where("submitted_by = ?", *submittedBy)
	}
	if err := q.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[submission.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DBSubmissionRepo) ListFilePathsByAttachments(ctx context.Context, attachmentIDs []uuid.UUID) ([]string, error) {
	var paths []string
	if len(attachmentIDs) == 0 {
		return paths, nil
	}
	err := r.db.WithContext(ctx).Model(&submission.Submission{}).
		Where("task_attachment_id IN ? AND file_path IS NOT NULL", attachmentIDs).
		Pluck("file_path", &paths).Error
	return paths, err
}

func (r *DBSubmissionRepo) DeleteByAttachments(ctx context.Context, attachmentIDs []uuid.UUID) error {
	if len(attachmentIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("task_attachment_id IN ?", attachmentIDs).
		Delete(&submission.Submission{}).Error
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}

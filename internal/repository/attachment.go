package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttachmentRepo interface {
	CreateAttachment(ctx context.Context, a *task.Attachment) error
	GetAttachmentByID(ctx context.Context, id uuid.UUID) (task.Attachment, error)
	ListAttachmentsByTask(ctx context.Context, taskID uuid.UUID) ([]task.Attachment, error)
	ListAttachmentsByDepartment(ctx context.Context, dept task.Department, typ task.AttachmentType) ([]task.Attachment, error)
	ListRequiredAttachmentIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error)
	CountAttachmentsByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
	DeleteAttachmentsByTask(ctx context.Context, taskID uuid.UUID) error
	LockAttachment(ctx context.Context, id uuid.UUID) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{
		db: db,
	}
}

func (r *DBAttachmentRepo) CreateAttachment(ctx context.Context, a *task.Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *DBAttachmentRepo) GetAttachmentByID(ctx context.Context, id uuid.UUID) (task.Attachment, error) {
	var a task.Attachment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return a, err
	}
	return a, nil
}

func (r *DBAttachmentRepo) ListAttachmentsByTask(ctx context.Context, taskID uuid.UUID) ([]task.Attachment, error) {
	var list []task.Attachment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// ListAttachmentsByDepartment skips attachments of cancelled tasks.
func (r *DBAttachmentRepo) ListAttachmentsByDepartment(ctx context.Context, dept task.Department, typ task.AttachmentType) ([]task.Attachment, error) {
	var list []task.Attachment
	err := r.db.WithContext(ctx).
		Joins("JOIN tasks ON tasks.id = task_attachments.task_id").
		Where("task_attachments.assigned_to = ? AND task_attachments.attachment_type = ?", dept, typ).
		Where("tasks.status <> ?", task.StatusCancelled).
		Order("task_attachments.created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *DBAttachmentRepo) ListRequiredAttachmentIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&task.Attachment{}).
		Where("task_id = ? AND is_required = ?", taskID, true).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBAttachmentRepo) CountAttachmentsByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&task.Attachment{}).
		Where("checklist_template_id = ?", templateID).
		Count(&n).Error
	return n, err
}

func (r *DBAttachmentRepo) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&task.Attachment{}).Error
}

func (r *DBAttachmentRepo) DeleteAttachmentsByTask(ctx context.Context, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&task.Attachment{}).Error
}

// LockAttachment takes a row lock on the attachment for the rest of the
// transaction, serializing concurrent submissions. SQLite has no row locks
// and serializes writers on its own.
func (r *DBAttachmentRepo) LockAttachment(ctx context.Context, id uuid.UUID) error {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var a task.Attachment
	return q.Select("id").Where("id = ?", id).First(&a).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{
		db: tx,
	}
}

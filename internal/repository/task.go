package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"gorm.io/gorm"
)

type TaskRepo interface {
	CreateTask(ctx context.Context, t *task.Task) error
	GetTaskByID(ctx context.Context, id uuid.UUID) (task.Task, error)
	ListTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, error)
	SaveTask(ctx context.Context, t *task.Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from []task.Status, to task.Status) (bool, error)
	ListTaskIDsByStatus(ctx context.Context, status task.Status) ([]uuid.UUID, error)
	CountTasksByStatus(ctx context.Context, driverID *uuid.UUID) (map[task.Status]int64, error)
	WithTx(tx *gorm.DB) TaskRepo
}

type DBTaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *DBTaskRepo {
	return &DBTaskRepo{
		db: db,
	}
}

func (r *DBTaskRepo) CreateTask(ctx context.Context, t *task.Task) error {
	return r.db.WithContext(ctx).Omit("Attachments").Create(t).Error
}

func (r *DBTaskRepo) GetTaskByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	var t task.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTaskRepo) ListTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	var tasks []task.Task
	q := r.db.WithContext(ctx).Model(&task.Task{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AssignedDriverID != nil {
		q = q.Where("assigned_driver_id = ?", *filter.AssignedDriverID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("LOWER(customer_name) LIKE LOWER(?) OR LOWER(docket_number) LIKE LOWER(?) OR LOWER(product_name) LIKE LOWER(?)", like, like, like)
	}
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *DBTaskRepo) SaveTask(ctx context.Context, t *task.Task) error {
	return r.db.WithContext(ctx).Omit("Attachments").Save(t).Error
}

func (r *DBTaskRepo) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&task.Task{}).Error
}

// UpdateStatusIf moves the task to `to` only while its status is one of
// `from`. It reports whether a row changed.
func (r *DBTaskRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from []task.Status, to task.Status) (bool, error) {
	res := r.db.WithContext(ctx).Model(&task.Task{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBTaskRepo) ListTaskIDsByStatus(ctx context.Context, status task.Status) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&task.Task{}).
		Where("status = ?", status).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTaskRepo) CountTasksByStatus(ctx context.Context, driverID *uuid.UUID) (map[task.Status]int64, error) {
	var rows []struct {
		Status task.Status
		Count  int64
	}
	q := r.db.WithContext(ctx).Model(&task.Task{}).Select("status, COUNT(*) AS count")
	if driverID != nil {
		q = q.Where("assigned_driver_id = ?", *driverID)
	}
	if err := q.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[task.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DBTaskRepo) WithTx(tx *gorm.DB) TaskRepo {
	if tx == nil {
		return r
	}
	return &DBTaskRepo{
		db: tx,
	}
}

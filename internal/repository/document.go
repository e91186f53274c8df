package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	CreateDocument(ctx context.Context, d *document.Document) error
	GetDocumentByID(ctx context.Context, id uuid.UUID) (document.Document, error)
	ListDocuments(ctx context.Context, filter document.ListFilter) ([]document.Document, error)
	SaveDocument(ctx context.Context, d *document.Document) error
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) CreateDocument(ctx context.Context, d *document.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DBDocumentRepo) GetDocumentByID(ctx context.Context, id uuid.UUID) (document.Document, error) {
	var d document.Document
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return d, err
	}
	return d, nil
}

// ListDocuments filters in SQL on columns and in memory on tags, which are a
// JSON array whose query syntax differs between PostgreSQL and SQLite.
func (r *DBDocumentRepo) ListDocuments(ctx context.Context, filter document.ListFilter) ([]document.Document, error) {
	var list []document.Document
	q := r.db.WithContext(ctx).Model(&document.Document{})
	if filter.Department != "" {
		q = q.Where("LOWER(department) = LOWER(?)", filter.Department)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", strings.ToLower(filter.Status))
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(file_name) LIKE LOWER(?)", like, like)
	}
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	if filter.Tag == "" {
		return list, nil
	}
	tag := strings.ToLower(strings.TrimSpace(filter.Tag))
	out := list[:0]
	for _, d := range list {
		for _, t := range d.Tags {
			if t == tag {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func (r *DBDocumentRepo) SaveDocument(ctx context.Context, d *document.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DBDocumentRepo) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&document.Document{}).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}

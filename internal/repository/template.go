package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	CreateTemplate(ctx context.Context, t *checklist.Template) error
	GetTemplateByID(ctx context.Context, id uuid.UUID) (checklist.Template, error)
	GetTemplateByTitle(ctx context.Context, title string) (checklist.Template, error)
	ListTemplates(ctx context.Context) ([]checklist.Template, error)
	SaveTemplate(ctx context.Context, t *checklist.Template) error
	ReplaceFields(ctx context.Context, templateID uuid.UUID, fields []checklist.Field) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{
		db: db,
	}
}

func orderedFields(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, created_at ASC")
}

// CreateTemplate inserts the template together with its fields.
func (r *DBTemplateRepo) CreateTemplate(ctx context.Context, t *checklist.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *DBTemplateRepo) GetTemplateByID(ctx context.Context, id uuid.UUID) (checklist.Template, error) {
	var t checklist.Template
	err := r.db.WithContext(ctx).
		Preload("Fields", orderedFields).
		Where("id = ?", id).
		First(&t).Error
	return t, err
}

func (r *DBTemplateRepo) GetTemplateByTitle(ctx context.Context, title string) (checklist.Template, error) {
	var t checklist.Template
	err := r.db.WithContext(ctx).
		Preload("Fields", orderedFields).
		Where("title = ?", title).
		First(&t).Error
	return t, err
}

func (r *DBTemplateRepo) ListTemplates(ctx context.Context) ([]checklist.Template, error) {
	var list []checklist.Template
	err := r.db.WithContext(ctx).
		Preload("Fields", orderedFields).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// SaveTemplate updates the header columns only; fields go through ReplaceFields.
func (r *DBTemplateRepo) SaveTemplate(ctx context.Context, t *checklist.Template) error {
	return r.db.WithContext(ctx).Omit("Fields").Save(t).Error
}

// ReplaceFields deletes the template's fields and inserts the given set. Call
// it inside a transaction.
func (r *DBTemplateRepo) ReplaceFields(ctx context.Context, templateID uuid.UUID, fields []checklist.Field) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("template_id = ?", templateID).Delete(&checklist.Field{}).Error; err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	for i := range fields {
		fields[i].TemplateID = templateID
	}
	return db.Create(&fields).Error
}

func (r *DBTemplateRepo) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("template_id = ?", id).Delete(&checklist.Field{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&checklist.Template{}).Error
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{
		db: tx,
	}
}

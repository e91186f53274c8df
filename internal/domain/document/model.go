package document

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusDraft       Status = "draft"
	StatusUnderReview Status = "under review"
	StatusArchived    Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDraft, StatusUnderReview, StatusArchived:
		return true
	default:
		return false
	}
}

// Document is a company policy or reference file in the document library.
type Document struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string                      `gorm:"size:255;not null" json:"title"`
	FilePath        string                      `gorm:"size:500;not null" json:"file_path"`
	FileName        string                      `gorm:"size:255;not null" json:"file_name"`
	FileSize        int64                       `json:"file_size"`
	MimeType        string                      `gorm:"size:255" json:"mime_type"`
	Department      string                      `gorm:"size:100;index" json:"department"`
	PolicyArea      string                      `gorm:"size:100" json:"policy_area"`
	ResponsibleRole string                      `gorm:"size:100" json:"responsible_role"`
	Status          Status                      `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Version         string                      `gorm:"size:20" json:"version"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	DocumentDate    time.Time                   `json:"document_date"`
	UploadedBy      uuid.UUID                   `gorm:"type:uuid" json:"uploaded_by"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

package submission

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	// StatusPending is never stored; it is reported when no submission exists.
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusFlagged   Status = "flagged"
)

// AllowsResubmission reports whether a new submission may follow one in this state.
func (s Status) AllowsResubmission() bool {
	switch s {
	case StatusPending, StatusRejected, StatusFlagged:
		return true
	default:
		return false
	}
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionFlag    Decision = "flag"
)

// Status maps a review decision onto the stored submission status.
func (d Decision) Status() (Status, bool) {
	switch d {
	case DecisionApprove:
		return StatusApproved, true
	case DecisionReject:
		return StatusRejected, true
	case DecisionFlag:
		return StatusFlagged, true
	default:
		return "", false
	}
}

func (d Decision) RequiresComment() bool {
	return d == DecisionReject || d == DecisionFlag
}

// Submission is one attempt at fulfilling an attachment. Checklist submissions
// carry FormData; document submissions carry the File* columns.
type Submission struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	TaskAttachmentID uuid.UUID         `gorm:"type:uuid;not null;index" json:"task_attachment_id"`
	Status           Status            `gorm:"type:varchar(20);not null;default:'submitted';index" json:"status"`
	FormData         datatypes.JSONMap `json:"form_data,omitempty"`
	FilePath         *string           `gorm:"size:500" json:"file_path,omitempty"`
	FileName         *string           `gorm:"size:255" json:"file_name,omitempty"`
	FileSize         *int64            `json:"file_size,omitempty"`
	MimeType         *string           `gorm:"size:255" json:"mime_type,omitempty"`
	SubmittedBy      uuid.UUID         `gorm:"type:uuid;not null;index" json:"submitted_by"`
	SubmittedByName  string            `gorm:"size:255" json:"submitted_by_name"`
	ReviewedBy       *uuid.UUID        `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time        `json:"reviewed_at,omitempty"`
	ReviewerComments *string           `gorm:"type:text" json:"reviewer_comments,omitempty"`
	Version          int               `gorm:"not null;default:1" json:"version"`
	CreatedAt        time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (Submission) TableName() string {
	return "task_submissions"
}

// BeforeCreate assigns a time-ordered UUIDv7 so that id breaks created_at ties
// in insertion order.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		s.ID = id
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}

func (s Submission) IsDocument() bool {
	return s.FilePath != nil
}

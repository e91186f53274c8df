package submission

import "github.com/google/uuid"

type ReviewInput struct {
	Decision        Decision `json:"decision" binding:"required,oneof=approve reject flag" example:"reject"`
	Comments        string   `json:"comments" example:"Signature missing on page 2"`
	ExpectedVersion *int     `json:"expected_version" example:"1"`
}

type ChecklistInput struct {
	FormData map[string]any `json:"form_data" binding:"required"`
}

// ReviewFilter narrows the review queue and the export.
type ReviewFilter struct {
	Status     Status     `form:"status" binding:"omitempty,oneof=submitted approved rejected flagged"`
	AssignedTo string     `form:"assigned_to" binding:"omitempty,oneof=transport warehouse"`
	TaskID     *uuid.UUID `form:"-"`
	Limit      int        `form:"limit" binding:"omitempty,min=1,max=500"`
}

// View is a submission joined with its requirement and task.
type View struct {
	Submission      `gorm:"embedded"`
	TaskID          uuid.UUID `json:"task_id"`
	DocketNumber    string    `json:"docket_number"`
	CustomerName    string    `json:"customer_name"`
	AttachmentTitle string    `json:"attachment_title"`
	AttachmentType  string    `json:"attachment_type"`
	AssignedTo      string    `json:"assigned_to"`
	ReviewerName    *string   `json:"reviewer_name,omitempty"`
}

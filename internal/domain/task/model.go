package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"gorm.io/gorm"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Open reports whether the task can still change through submissions or edits.
func (s Status) Open() bool {
	return s == StatusNew || s == StatusInProgress
}

type VehicleType string

const (
	VehicleTruck VehicleType = "truck"
	VehicleTank  VehicleType = "tank"
)

type Task struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName        string       `gorm:"size:255;not null" json:"customer_name"`
	DeliveryAddress     string       `gorm:"type:text;not null" json:"delivery_address"`
	ProductName         string       `gorm:"size:255;not null" json:"product_name"`
	Supplier            string       `gorm:"size:255" json:"supplier"`
	NumberOfBags        int          `json:"number_of_bags"`
	BagWeight           float64      `json:"bag_weight"`
	DocketNumber        string       `gorm:"size:100;index" json:"docket_number"`
	VehicleType         VehicleType  `gorm:"type:varchar(20);not null;default:'truck'" json:"vehicle_type"`
	HaulierTanker       string       `gorm:"size:255" json:"haulier_tanker"`
	PlannedDecantDate   *time.Time   `json:"planned_decant_date"`
	PlannedDeliveryDate *time.Time   `json:"planned_delivery_date"`
	AssignedDriverID    *uuid.UUID   `gorm:"type:uuid;index" json:"assigned_driver_id"`
	AssignedDriverName  string       `gorm:"size:255" json:"assigned_driver_name"`
	Status              Status       `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	CreatedBy           uuid.UUID    `gorm:"type:uuid" json:"created_by"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
	Attachments         []Attachment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Title is the short label used in notifications and exports.
func (t Task) Title() string {
	if t.DocketNumber == "" {
		return t.CustomerName
	}
	return fmt.Sprintf("Docket #%s - %s", t.DocketNumber, t.CustomerName)
}

type AttachmentType string

const (
	AttachmentDocument  AttachmentType = "document"
	AttachmentChecklist AttachmentType = "checklist"
)

// Department is the side of the business a requirement is assigned to.
type Department string

const (
	DepartmentTransport Department = "transport"
	DepartmentWarehouse Department = "warehouse"
)

// DepartmentForRole maps a fulfilling role to its department. Other roles have none.
func DepartmentForRole(r user.Role) (Department, bool) {
	switch r {
	case user.RoleDriver:
		return DepartmentTransport, true
	case user.RoleWarehouse:
		return DepartmentWarehouse, true
	default:
		return "", false
	}
}

// Attachment is a requirement on a task that must be fulfilled by a submission.
type Attachment struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"task_id"`
	AttachmentType      AttachmentType `gorm:"type:varchar(20);not null" json:"attachment_type"`
	Title               string         `gorm:"size:255;not null" json:"title"`
	ChecklistTemplateID *uuid.UUID     `gorm:"type:uuid;index" json:"checklist_template_id"`
	IsRequired          bool           `gorm:"not null;default:true" json:"is_required"`
	AssignedTo          Department     `gorm:"type:varchar(20);not null;index" json:"assigned_to"`
	CreatedBy           uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (Attachment) TableName() string {
	return "task_attachments"
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

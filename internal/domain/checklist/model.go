package checklist

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldText      FieldType = "text"
	FieldTextarea  FieldType = "textarea"
	FieldNumber    FieldType = "number"
	FieldDate      FieldType = "date"
	FieldCheckbox  FieldType = "checkbox"
	FieldRadio     FieldType = "radio"
	FieldSelect    FieldType = "select"
	FieldFile      FieldType = "file"
	FieldSignature FieldType = "signature"
	FieldParagraph FieldType = "paragraph"
)

// FieldTypes lists every supported field type in builder order.
var FieldTypes = []FieldType{
	FieldText, FieldTextarea, FieldNumber, FieldDate, FieldCheckbox,
	FieldRadio, FieldSelect, FieldFile, FieldSignature, FieldParagraph,
}

type Template struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  *string        `gorm:"type:text" json:"description"`
	LayoutConfig datatypes.JSON `json:"layout_config,omitempty"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Fields       []Field        `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"fields"`
}

func (Template) TableName() string {
	return "checklist_templates"
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Field struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	TemplateID   uuid.UUID                   `gorm:"type:uuid;not null;index" json:"template_id"`
	FieldName    string                      `gorm:"size:255;not null" json:"field_name"`
	FieldLabel   string                      `gorm:"size:255" json:"field_label"`
	FieldType    FieldType                   `gorm:"type:varchar(20);not null" json:"field_type"`
	IsRequired   bool                        `gorm:"not null;default:false" json:"is_required"`
	Options      datatypes.JSONSlice[string] `json:"options"`
	Placeholder  *string                     `gorm:"size:255" json:"placeholder"`
	HelpText     *string                     `gorm:"type:text" json:"help_text"`
	DisplayOrder int                         `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time                   `json:"created_at"`
}

func (Field) TableName() string {
	return "checklist_template_fields"
}

func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

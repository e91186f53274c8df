package checklist

import (
	"encoding/json"

	"github.com/google/uuid"
)

type FieldInput struct {
	ID          *uuid.UUID `json:"id"`
	FieldName   string     `json:"field_name" binding:"omitempty,max=255" example:"driver_name"`
	FieldLabel  string     `json:"field_label" binding:"required_unless=FieldType paragraph,max=255" example:"Driver Name"`
	FieldType   FieldType  `json:"field_type" binding:"required,oneof=text textarea number date checkbox radio select file signature paragraph" example:"text"`
	IsRequired  bool       `json:"is_required"`
	Options     []string   `json:"options"`
	Placeholder *string    `json:"placeholder"`
	HelpText    *string    `json:"help_text"`
}

type TemplateInput struct {
	Title        string          `json:"title" binding:"required,max=255" example:"Pre-delivery inspection"`
	Description  *string         `json:"description"`
	LayoutConfig json.RawMessage `json:"layout_config" swaggertype:"object"`
	Fields       []FieldInput    `json:"fields" binding:"dive"`
}

type ReorderInput struct {
	FieldIDs []uuid.UUID `json:"field_ids" binding:"required,min=1"`
}

type CloneInput struct {
	Title string `json:"title" binding:"max=255" example:"Pre-delivery inspection (Copy)"`
}

type ValidateInput struct {
	FormData map[string]any `json:"form_data"`
}

// ValidateResult is the dry-run outcome of filling a template.
type ValidateResult struct {
	Valid  bool              `json:"valid"`
	Values map[string]any    `json:"values"`
	Errors map[string]string `json:"errors,omitempty"`
}

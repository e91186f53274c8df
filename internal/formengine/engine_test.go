package formengine

import (
	"encoding/json"
	"testing"

	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func field(name, label string, t checklist.FieldType, required bool, opts ...string) checklist.Field {
	return checklist.Field{FieldName: name, FieldLabel: label, FieldType: t, IsRequired: required, Options: opts}
}

func TestValidate_RequiredTextMissing(t *testing.T) {
	fields := []checklist.Field{
		field("driver_name", "Driver Name", checklist.FieldText, true),
		field("temp", "Temp", checklist.FieldNumber, false),
	}

	clean, errs := Validate(fields, map[string]any{"driver_name": "", "temp": "4"})

	assert.Nil(t, clean)
	require.Len(t, errs, 1)
	assert.Equal(t, "Driver Name is required", errs["driver_name"])
}

func TestValidate_WhitespaceTextIsMissing(t *testing.T) {
	fields := []checklist.Field{field("notes", "Notes", checklist.FieldTextarea, true)}

	_, errs := Validate(fields, map[string]any{"notes": "   "})

	assert.Equal(t, "Notes is required", errs["notes"])
}

func TestValidate_Normalizes(t *testing.T) {
	fields := []checklist.Field{
		field("driver_name", "Driver Name", checklist.FieldText, true),
		field("temp", "Temp", checklist.FieldNumber, false),
		field("delivered_on", "Delivered On", checklist.FieldDate, false),
		field("photo", "Photo", checklist.FieldFile, false),
		field("intro", "", checklist.FieldParagraph, false),
	}

	clean, errs := Validate(fields, map[string]any{
		"driver_name":  "Sam",
		"temp":         json.Number("4.5"),
		"delivered_on": "2025-07-17T10:30:00Z",
		"photo":        map[string]any{"name": "dock.jpg", "size": float64(2048)},
		"intro":        "ignored",
		"unknown":      "dropped",
	})

	require.Nil(t, errs)
	assert.Equal(t, map[string]any{
		"driver_name":  "Sam",
		"temp":         4.5,
		"delivered_on": "2025-07-17",
		"photo":        map[string]any{"name": "dock.jpg", "uploaded": true},
	}, clean)
}

func TestValidate_InvalidNumber(t *testing.T) {
	fields := []checklist.Field{field("temp", "Temp", checklist.FieldNumber, false)}

	_, errs := Validate(fields, map[string]any{"temp": "warm"})

	assert.Equal(t, "Temp must be a number", errs["temp"])
}

func TestValidate_RequiredCheckbox(t *testing.T) {
	fields := []checklist.Field{field("seal_intact", "Seal Intact", checklist.FieldCheckbox, true)}

	_, errs := Validate(fields, map[string]any{"seal_intact": false})
	assert.Equal(t, "Seal Intact is required", errs["seal_intact"])

	_, errs = Validate(fields, map[string]any{})
	assert.Equal(t, "Seal Intact is required", errs["seal_intact"])

	clean, errs := Validate(fields, map[string]any{"seal_intact": true})
	assert.Nil(t, errs)
	assert.Equal(t, true, clean["seal_intact"])
}

func TestValidate_OptionalCheckboxDefaultsFalse(t *testing.T) {
	fields := []checklist.Field{field("tarp", "Tarp", checklist.FieldCheckbox, false)}

	clean, errs := Validate(fields, nil)

	assert.Nil(t, errs)
	assert.Equal(t, false, clean["tarp"])
}

func TestValidate_SelectWithoutOptions(t *testing.T) {
	fields := []checklist.Field{field("grade", "Grade", checklist.FieldSelect, true)}

	_, errs := Validate(fields, map[string]any{"grade": "C"})
	assert.Equal(t, "Grade has no selectable options", errs["grade"])

	_, errs = Validate(fields, map[string]any{})
	assert.Equal(t, "Grade is required", errs["grade"])
}

func TestValidate_ChoiceOutsideOptions(t *testing.T) {
	fields := []checklist.Field{field("grade", "Grade", checklist.FieldRadio, true, "A", "B")}

	_, errs := Validate(fields, map[string]any{"grade": "C"})
	assert.Equal(t, "Grade must be one of: A, B", errs["grade"])

	clean, errs := Validate(fields, map[string]any{"grade": "B"})
	assert.Nil(t, errs)
	assert.Equal(t, "B", clean["grade"])
}

func TestValidate_Signature(t *testing.T) {
	fields := []checklist.Field{field("sig", "Signature", checklist.FieldSignature, true)}

	_, errs := Validate(fields, map[string]any{"sig": "hello"})
	assert.Equal(t, "Signature must be a signature image", errs["sig"])

	_, errs = Validate(fields, map[string]any{"sig": ""})
	assert.Equal(t, "Signature is required", errs["sig"])

	clean, errs := Validate(fields, map[string]any{"sig": "data:image/png;base64,iVBORw0KGgo="})
	assert.Nil(t, errs)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", clean["sig"])
}

func TestValidate_ParagraphNeverRequired(t *testing.T) {
	fields := []checklist.Field{field("paragraph_1a2b3c4d", "", checklist.FieldParagraph, true)}

	clean, errs := Validate(fields, map[string]any{})

	assert.Nil(t, errs)
	assert.Empty(t, clean)
}

func TestPrefill(t *testing.T) {
	fields := []checklist.Field{
		field("driver_name", "Driver Name", checklist.FieldText, true),
		field("seal_intact", "Seal Intact", checklist.FieldCheckbox, true),
		field("photo", "Photo", checklist.FieldFile, false),
		field("temp", "Temp", checklist.FieldNumber, false),
		field("notes", "Notes", checklist.FieldTextarea, false),
		field("intro", "", checklist.FieldParagraph, false),
	}
	previous := map[string]any{
		"driver_name": "Sam",
		"seal_intact": true,
		"photo":       map[string]any{"name": "dock.jpg", "uploaded": true},
		"temp":        4.5,
	}

	got := Prefill(fields, previous)

	assert.Equal(t, map[string]any{
		"driver_name": "Sam",
		"seal_intact": true,
		"photo":       nil,
		"temp":        4.5,
		"notes":       "",
	}, got)
}

func TestPrefill_NoPrevious(t *testing.T) {
	fields := []checklist.Field{
		field("driver_name", "Driver Name", checklist.FieldText, true),
		field("seal_intact", "Seal Intact", checklist.FieldCheckbox, true),
	}

	got := Prefill(fields, nil)

	assert.Equal(t, map[string]any{"driver_name": "", "seal_intact": false}, got)
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{"b": "B is required", "a": "A is required"}
	assert.Equal(t, "a: A is required; b: B is required", errs.Error())
}

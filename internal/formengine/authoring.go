package formengine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9_]`)
)

// FieldNameFromLabel derives a field_name: lower-cased, whitespace runs become
// underscores, anything outside [a-z0-9_] is removed.
func FieldNameFromLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = whitespaceRe.ReplaceAllString(s, "_")
	return nonSlugRe.ReplaceAllString(s, "")
}

// BuildFields turns builder input into template fields: names are derived when
// missing, options are trimmed, display_order is renumbered and names are
// checked for uniqueness. An input id must name one of the existing fields and
// may appear only once.
func BuildFields(templateID uuid.UUID, existing []checklist.Field, inputs []checklist.FieldInput) ([]checklist.Field, FieldErrors) {
	fields := make([]checklist.Field, 0, len(inputs))
	errs := FieldErrors{}

	known := make(map[uuid.UUID]bool, len(existing))
	for _, f := range existing {
		known[f.ID] = true
	}
	seen := map[uuid.UUID]bool{}

	for i, in := range inputs {
		if _, ok := Lookup(in.FieldType); !ok {
			errs[fmt.Sprintf("fields[%d].field_type", i)] = fmt.Sprintf("unsupported field type %q", in.FieldType)
			continue
		}

		f := checklist.Field{
			TemplateID:  templateID,
			FieldLabel:  strings.TrimSpace(in.FieldLabel),
			FieldType:   in.FieldType,
			IsRequired:  in.IsRequired,
			Options:     cleanOptions(in.Options),
			Placeholder: in.Placeholder,
			HelpText:    in.HelpText,
		}
		if in.ID != nil && *in.ID != uuid.Nil {
			key := fmt.Sprintf("fields[%d].id", i)
			switch {
			case !known[*in.ID]:
				errs[key] = "field id does not belong to this template"
				continue
			case seen[*in.ID]:
				errs[key] = "field id appears more than once"
				continue
			}
			seen[*in.ID] = true
			f.ID = *in.ID
		}
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}

		switch {
		case in.FieldType == checklist.FieldParagraph:
			f.IsRequired = false
			f.FieldName = strings.TrimSpace(in.FieldName)
			if f.FieldName == "" {
				f.FieldName = "paragraph_" + strings.ReplaceAll(f.ID.String(), "-", "")[:8]
			}
		case strings.TrimSpace(in.FieldName) != "":
			f.FieldName = FieldNameFromLabel(in.FieldName)
		default:
			f.FieldName = FieldNameFromLabel(f.FieldLabel)
		}
		if f.FieldName == "" {
			f.FieldName = fmt.Sprintf("field_%d", i+1)
		}
		fields = append(fields, f)
	}

	Renumber(fields)
	for name, msg := range CheckUnique(fields) {
		errs[name] = msg
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return fields, nil
}

// Renumber assigns display_order 0..n-1 in slice order.
func Renumber(fields []checklist.Field) {
	for i := range fields {
		fields[i].DisplayOrder = i
	}
}

// CheckUnique reports every field_name used more than once.
func CheckUnique(fields []checklist.Field) FieldErrors {
	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		seen[f.FieldName]++
	}
	var errs FieldErrors
	for name, n := range seen {
		if n > 1 {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[name] = fmt.Sprintf("field name %q is used by %d fields", name, n)
		}
	}
	return errs
}

// SortByDisplayOrder orders fields for rendering, keeping ties stable.
func SortByDisplayOrder(fields []checklist.Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].DisplayOrder < fields[j].DisplayOrder
	})
}

// Reorder returns fields arranged in the order of ids, renumbered. ids must
// name every field exactly once.
func Reorder(fields []checklist.Field, ids []uuid.UUID) ([]checklist.Field, error) {
	if len(ids) != len(fields) {
		return nil, fmt.Errorf("expected %d field ids, got %d", len(fields), len(ids))
	}
	byID := make(map[uuid.UUID]checklist.Field, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}
	out := make([]checklist.Field, 0, len(ids))
	for _, id := range ids {
		f, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("field %s is not part of this template or is listed twice", id)
		}
		delete(byID, id)
		out = append(out, f)
	}
	Renumber(out)
	return out, nil
}

// CloneFields copies fields for a new template with fresh ids.
func CloneFields(templateID uuid.UUID, fields []checklist.Field) []checklist.Field {
	src := append([]checklist.Field(nil), fields...)
	SortByDisplayOrder(src)
	out := make([]checklist.Field, 0, len(src))
	for _, f := range src {
		f.ID = uuid.New()
		f.TemplateID = templateID
		f.Options = append([]string(nil), f.Options...)
		out = append(out, f)
	}
	Renumber(out)
	return out
}

// ToInputs converts stored fields back into builder input, preserving ids.
func ToInputs(fields []checklist.Field) []checklist.FieldInput {
	out := make([]checklist.FieldInput, 0, len(fields))
	for _, f := range fields {
		id := f.ID
		out = append(out, checklist.FieldInput{
			ID:          &id,
			FieldName:   f.FieldName,
			FieldLabel:  f.FieldLabel,
			FieldType:   f.FieldType,
			IsRequired:  f.IsRequired,
			Options:     append([]string(nil), f.Options...),
			Placeholder: f.Placeholder,
			HelpText:    f.HelpText,
		})
	}
	return out
}

func cleanOptions(opts []string) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

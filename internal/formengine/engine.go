package formengine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/linskybing/logistics-go/internal/domain/checklist"
)

// FieldErrors maps field_name to a user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// RequiredMessage is the message reported for an empty required field.
func RequiredMessage(label string) string {
	return fmt.Sprintf("%s is required", label)
}

// Validate normalizes values against the template fields. The returned map
// holds one entry per interactive field; keys not defined by the template are
// dropped. errs is nil when every field is valid.
func Validate(fields []checklist.Field, values map[string]any) (map[string]any, FieldErrors) {
	clean := make(map[string]any, len(fields))
	var errs FieldErrors

	for _, f := range fields {
		kind, ok := Lookup(f.FieldType)
		if !ok {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[f.FieldName] = fmt.Sprintf("%s has unsupported type %q", labelOf(f), f.FieldType)
			continue
		}
		if !kind.Interactive() {
			continue
		}

		v, err := kind.Normalize(f, values[f.FieldName])
		if err != nil {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[f.FieldName] = fmt.Sprintf("%s %s", labelOf(f), err.Error())
			continue
		}
		if f.IsRequired && kind.Missing(v) {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[f.FieldName] = RequiredMessage(labelOf(f))
			continue
		}
		clean[f.FieldName] = v
	}

	if errs != nil {
		return nil, errs
	}
	return clean, nil
}

// Prefill builds initial form values. Values from previous are carried over
// except files, which must be uploaded again; absent fields start at their
// kind's zero value.
func Prefill(fields []checklist.Field, previous map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		kind, ok := Lookup(f.FieldType)
		if !ok || !kind.Interactive() {
			continue
		}
		if f.FieldType == checklist.FieldFile {
			out[f.FieldName] = nil
			continue
		}
		if v, ok := previous[f.FieldName]; ok && v != nil {
			out[f.FieldName] = v
			continue
		}
		out[f.FieldName] = kind.Zero()
	}
	return out
}

func labelOf(f checklist.Field) string {
	if strings.TrimSpace(f.FieldLabel) != "" {
		return f.FieldLabel
	}
	return f.FieldName
}

package formengine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/logistics-go/internal/domain/checklist"
)

// Kind is the behaviour of one field type. Normalize turns a raw client value
// into its stored form (or reports why it is invalid); Missing decides whether a
// normalized value counts as absent for a required field.
type Kind interface {
	Interactive() bool
	Zero() any
	Normalize(f checklist.Field, raw any) (any, error)
	Missing(v any) bool
}

var registry = map[checklist.FieldType]Kind{
	checklist.FieldText:      textKind{},
	checklist.FieldTextarea:  textKind{},
	checklist.FieldNumber:    numberKind{},
	checklist.FieldDate:      dateKind{},
	checklist.FieldCheckbox:  checkboxKind{},
	checklist.FieldRadio:     choiceKind{},
	checklist.FieldSelect:    choiceKind{},
	checklist.FieldFile:      fileKind{},
	checklist.FieldSignature: signatureKind{},
	checklist.FieldParagraph: paragraphKind{},
}

// Lookup returns the behaviour registered for t.
func Lookup(t checklist.FieldType) (Kind, bool) {
	k, ok := registry[t]
	return k, ok
}

var errNoOptions = errors.New("has no selectable options")

type textKind struct{}

func (textKind) Interactive() bool { return true }
func (textKind) Zero() any         { return "" }

func (textKind) Normalize(_ checklist.Field, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return nil, errors.New("must be text")
	}
}

func (textKind) Missing(v any) bool {
	s, _ := v.(string)
	return strings.TrimSpace(s) == ""
}

type numberKind struct{}

func (numberKind) Interactive() bool { return true }
func (numberKind) Zero() any         { return nil }

func (numberKind) Normalize(_ checklist.Field, raw any) (any, error) {
	var n float64
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, errors.New("must be a number")
		}
		n = f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New("must be a number")
		}
		n = f
	default:
		return nil, errors.New("must be a number")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, errors.New("must be a finite number")
	}
	return n, nil
}

func (numberKind) Missing(v any) bool { return v == nil }

type dateKind struct{}

const dateLayout = "2006-01-02"

func (dateKind) Interactive() bool { return true }
func (dateKind) Zero() any         { return nil }

func (dateKind) Normalize(_ checklist.Field, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v.Format(dateLayout), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return t.Format(dateLayout), nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return nil, errors.New("must be a date (YYYY-MM-DD)")
}

func (dateKind) Missing(v any) bool { return v == nil }

type checkboxKind struct{}

func (checkboxKind) Interactive() bool { return true }
func (checkboxKind) Zero() any         { return false }

func (checkboxKind) Normalize(_ checklist.Field, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.New("must be true or false")
		}
		return b, nil
	default:
		return nil, errors.New("must be true or false")
	}
}

// Missing treats an unticked box as absent, so a required checkbox must be ticked.
func (checkboxKind) Missing(v any) bool {
	b, _ := v.(bool)
	return !b
}

type choiceKind struct{}

func (choiceKind) Interactive() bool { return true }
func (choiceKind) Zero() any         { return nil }

func (choiceKind) Normalize(f checklist.Field, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		if len(f.Options) == 0 {
			return nil, errNoOptions
		}
		if !slices.Contains([]string(f.Options), v) {
			return nil, fmt.Errorf("must be one of: %s", strings.Join(f.Options, ", "))
		}
		return v, nil
	default:
		return nil, errors.New("must be a single option")
	}
}

func (choiceKind) Missing(v any) bool { return v == nil }

// fileKind stores only the file name of an upload; the bytes travel separately.
type fileKind struct{}

func (fileKind) Interactive() bool { return true }
func (fileKind) Zero() any         { return nil }

func (fileKind) Normalize(_ checklist.Field, raw any) (any, error) {
	var name string
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		name = v
	case map[string]any:
		n, ok := v["name"].(string)
		if !ok {
			return nil, errors.New("must reference an uploaded file")
		}
		name = n
	default:
		return nil, errors.New("must reference an uploaded file")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return map[string]any{"name": name, "uploaded": true}, nil
}

func (fileKind) Missing(v any) bool { return v == nil }

type signatureKind struct{}

func (signatureKind) Interactive() bool { return true }
func (signatureKind) Zero() any         { return nil }

func (signatureKind) Normalize(_ checklist.Field, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		if strings.HasPrefix(v, "data:image/") && strings.Contains(v, ";base64,") {
			return v, nil
		}
	}
	return nil, errors.New("must be a signature image")
}

func (signatureKind) Missing(v any) bool { return v == nil }

// paragraphKind is static instructional text.
type paragraphKind struct{}

func (paragraphKind) Interactive() bool                           { return false }
func (paragraphKind) Zero() any                                   { return nil }
func (paragraphKind) Normalize(checklist.Field, any) (any, error) { return nil, nil }
func (paragraphKind) Missing(any) bool                            { return false }

package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/linskybing/logistics-go/internal/domain/user"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("task %w", ErrNotFound)
	ErrAttachmentNotFound = fmt.Errorf("attachment %w", ErrNotFound)
	ErrSubmissionNotFound = fmt.Errorf("submission %w", ErrNotFound)
	ErrTemplateNotFound   = fmt.Errorf("checklist template %w", ErrNotFound)
	ErrDocumentNotFound   = fmt.Errorf("document %w", ErrNotFound)

	ErrStaleVersion = fmt.Errorf("%w: submission was reviewed by someone else, reload and try again", ErrConflict)
	ErrEmailTaken   = fmt.Errorf("%w: email already registered", ErrConflict)
)

// ValidationError reports rejected input. Fields maps a field name to its
// message when the failure is field-specific.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func invalidField(field, msg string) *ValidationError {
	return &ValidationError{Message: msg, Fields: map[string]string{field: msg}}
}

// InfrastructureError wraps a failure of the database or object store.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func infra(op string, err error) error {
	if err == nil {
		return nil
	}
	return &InfrastructureError{Op: op, Err: err}
}

// lookupErr maps a repository read error onto notFound or an infrastructure error.
func lookupErr(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return infra(op, err)
}

func forbidden(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPermission, fmt.Sprintf(format, args...))
}

func requireRole(actor user.Identity, roles ...user.Role) error {
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return forbidden("role %q may not perform this action", actor.Role)
}

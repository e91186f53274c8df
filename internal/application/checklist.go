package application

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/formengine"
	"github.com/linskybing/logistics-go/internal/repository"
	"gorm.io/datatypes"
)

// ChecklistService manages checklist templates authored in the form builder.
type ChecklistService struct {
	Repos *repository.Repos
}

func NewChecklistService(repos *repository.Repos) *ChecklistService {
	return &ChecklistService{
		Repos: repos,
	}
}

func (s *ChecklistService) CreateTemplate(ctx context.Context, actor user.Identity, in checklist.TemplateInput) (*checklist.Template, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	t := &checklist.Template{ID: uuid.New(), CreatedBy: actor.ID}
	if err := applyTemplateInput(t, in); err != nil {
		return nil, err
	}
	fields, errs := formengine.BuildFields(t.ID, nil, in.Fields)
	if errs != nil {
		return nil, &ValidationError{Message: "Please fix the highlighted fields", Fields: errs}
	}
	t.Fields = fields

	if err := s.Repos.Template.CreateTemplate(ctx, t); err != nil {
		return nil, infra("create checklist template", err)
	}
	return t, nil
}

func (s *ChecklistService) GetTemplate(ctx context.Context, id uuid.UUID) (*checklist.Template, error) {
	t, err := s.Repos.Template.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}
	return &t, nil
}

func (s *ChecklistService) ListTemplates(ctx context.Context) ([]checklist.Template, error) {
	list, err := s.Repos.Template.ListTemplates(ctx)
	if err != nil {
		return nil, infra("list checklist templates", err)
	}
	return list, nil
}

// UpdateTemplate replaces the header and the whole field list. Fields sent
// with an id keep it.
func (s *ChecklistService) UpdateTemplate(ctx context.Context, actor user.Identity, id uuid.UUID, in checklist.TemplateInput) (*checklist.Template, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := s.Repos.Template.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}
	if err := applyTemplateInput(&t, in); err != nil {
		return nil, err
	}
	fields, errs := formengine.BuildFields(t.ID, t.Fields, in.Fields)
	if errs != nil {
		return nil, &ValidationError{Message: "Please fix the highlighted fields", Fields: errs}
	}

	if err := s.saveWithFields(ctx, &t, fields); err != nil {
		return nil, err
	}
	return &t, nil
}

// ReorderFields applies a new field order given as the full list of field ids.
func (s *ChecklistService) ReorderFields(ctx context.Context, actor user.Identity, id uuid.UUID, in checklist.ReorderInput) (*checklist.Template, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := s.Repos.Template.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}
	fields, err := formengine.Reorder(t.Fields, in.FieldIDs)
	if err != nil {
		return nil, invalidField("field_ids", err.Error())
	}
	if err := s.saveWithFields(ctx, &t, fields); err != nil {
		return nil, err
	}
	return &t, nil
}

// CloneTemplate copies a template and its fields under a new title.
func (s *ChecklistService) CloneTemplate(ctx context.Context, actor user.Identity, id uuid.UUID, in checklist.CloneInput) (*checklist.Template, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	src, err := s.Repos.Template.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = src.Title + " (Copy)"
	}
	t := &checklist.Template{
		ID:           uuid.New(),
		Title:        title,
		Description:  src.Description,
		LayoutConfig: append(datatypes.JSON(nil), src.LayoutConfig...),
		CreatedBy:    actor.ID,
	}
	t.Fields = formengine.CloneFields(t.ID, src.Fields)

	if err := s.Repos.Template.CreateTemplate(ctx, t); err != nil {
		return nil, infra("clone checklist template", err)
	}
	return t, nil
}

// DeleteTemplate refuses while any task requirement still references the template.
func (s *ChecklistService) DeleteTemplate(ctx context.Context, actor user.Identity, id uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.Repos.Template.GetTemplateByID(ctx, id); err != nil {
		return lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}
	n, err := s.Repos.Attachment.CountAttachmentsByTemplate(ctx, id)
	if err != nil {
		return infra("count template usage", err)
	}
	if n > 0 {
		return invalid("template is used by %d task requirement(s)", n)
	}
	if err := s.Repos.Template.DeleteTemplate(ctx, id); err != nil {
		return infra("delete checklist template", err)
	}
	return nil
}

// ValidateValues runs the form engine against a template without storing anything.
func (s *ChecklistService) ValidateValues(ctx context.Context, id uuid.UUID, values map[string]any) (checklist.ValidateResult, error) {
	t, err := s.Repos.Template.GetTemplateByID(ctx, id)
	if err != nil {
		return checklist.ValidateResult{}, lookupErr(err, ErrTemplateNotFound, "load checklist template")
	}
	clean, errs := formengine.Validate(t.Fields, values)
	if errs != nil {
		return checklist.ValidateResult{Valid: false, Errors: errs}, nil
	}
	return checklist.ValidateResult{Valid: true, Values: clean}, nil
}

func (s *ChecklistService) saveWithFields(ctx context.Context, t *checklist.Template, fields []checklist.Field) error {
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Template.SaveTemplate(ctx, t); err != nil {
			return infra("save checklist template", err)
		}
		if err := tx.Template.ReplaceFields(ctx, t.ID, fields); err != nil {
			return infra("save checklist fields", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	t.Fields = fields
	return nil
}

func applyTemplateInput(t *checklist.Template, in checklist.TemplateInput) error {
	t.Title = strings.TrimSpace(in.Title)
	if t.Title == "" {
		return invalidField("title", "Title is required")
	}
	t.Description = in.Description
	if len(in.LayoutConfig) > 0 && string(in.LayoutConfig) != "null" {
		if !json.Valid(in.LayoutConfig) {
			return invalidField("layout_config", "layout_config must be valid JSON")
		}
		t.LayoutConfig = datatypes.JSON(in.LayoutConfig)
	}
	return nil
}

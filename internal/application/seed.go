package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/formengine"
	"github.com/linskybing/logistics-go/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

// SeedData is the content of a seed file.
type SeedData struct {
	Users     []SeedUser     `yaml:"users"`
	Templates []SeedTemplate `yaml:"templates"`
}

type SeedUser struct {
	Email     string    `yaml:"email"`
	Password  string    `yaml:"password"`
	FirstName string    `yaml:"first_name"`
	LastName  string    `yaml:"last_name"`
	Role      user.Role `yaml:"role"`
}

type SeedTemplate struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Fields      []SeedField `yaml:"fields"`
}

type SeedField struct {
	Name     string              `yaml:"name"`
	Label    string              `yaml:"label"`
	Type     checklist.FieldType `yaml:"type"`
	Required bool                `yaml:"required"`
	Options  []string            `yaml:"options"`
	HelpText string              `yaml:"help_text"`
}

type SeedReport struct {
	UsersCreated     int
	UsersSkipped     int
	TemplatesCreated int
	TemplatesSkipped int
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) (SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed file: %w", err)
	}
	return data, nil
}

type Seeder struct {
	Repos *repository.Repos
}

func NewSeeder(repos *repository.Repos) *Seeder {
	return &Seeder{
		Repos: repos,
	}
}

// Seed creates missing users (by email) and templates (by title). Existing
// rows are left untouched, so running it twice is harmless.
func (s *Seeder) Seed(ctx context.Context, data SeedData) (SeedReport, error) {
	var report SeedReport

	for _, su := range data.Users {
		email := normalizeEmail(su.Email)
		_, err := s.Repos.User.GetUserByEmail(ctx, email)
		if err == nil {
			report.UsersSkipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return report, infra("load user", err)
		}
		if !su.Role.Valid() {
			return report, invalid("seed user %s has unknown role %q", email, su.Role)
		}
		hashed, err := hashPassword(su.Password)
		if err != nil {
			return report, err
		}
		u := &user.User{
			Email:     email,
			Password:  hashed,
			FirstName: su.FirstName,
			LastName:  su.LastName,
			Role:      su.Role,
			Status:    user.StatusActive,
		}
		if err := s.Repos.User.CreateUser(ctx, u); err != nil {
			return report, infra("create user", err)
		}
		log.Printf("[seed] created %s user %s", u.Role, u.Email)
		report.UsersCreated++
	}

	for _, st := range data.Templates {
		_, err := s.Repos.Template.GetTemplateByTitle(ctx, st.Title)
		if err == nil {
			report.TemplatesSkipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return report, infra("load checklist template", err)
		}

		t := &checklist.Template{ID: uuid.New(), Title: st.Title}
		if st.Description != "" {
			desc := st.Description
			t.Description = &desc
		}
		fields, errs := formengine.BuildFields(t.ID, nil, st.inputs())
		if errs != nil {
			return report, &ValidationError{Message: fmt.Sprintf("seed template %q is invalid", st.Title), Fields: errs}
		}
		t.Fields = fields
		if err := s.Repos.Template.CreateTemplate(ctx, t); err != nil {
			return report, infra("create checklist template", err)
		}
		log.Printf("[seed] created checklist template %q", t.Title)
		report.TemplatesCreated++
	}

	return report, nil
}

func (st SeedTemplate) inputs() []checklist.FieldInput {
	out := make([]checklist.FieldInput, 0, len(st.Fields))
	for _, f := range st.Fields {
		in := checklist.FieldInput{
			FieldName:  f.Name,
			FieldLabel: f.Label,
			FieldType:  f.Type,
			IsRequired: f.Required,
			Options:    f.Options,
		}
		if f.HelpText != "" {
			help := f.HelpText
			in.HelpText = &help
		}
		out = append(out, in)
	}
	return out
}

package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/repository/mock"
)

type repoMocks struct {
	User       *mock.MockUserRepo
	Task       *mock.MockTaskRepo
	Attachment *mock.MockAttachmentRepo
	Submission *mock.MockSubmissionRepo
	Template   *mock.MockTemplateRepo
	Document   *mock.MockDocumentRepo
	Repos      *repository.Repos
}

// --------------------- Setup ---------------------
func setupRepoMocks(t *testing.T) *repoMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		User:       mock.NewMockUserRepo(ctrl),
		Task:       mock.NewMockTaskRepo(ctrl),
		Attachment: mock.NewMockAttachmentRepo(ctrl),
		Submission: mock.NewMockSubmissionRepo(ctrl),
		Template:   mock.NewMockTemplateRepo(ctrl),
		Document:   mock.NewMockDocumentRepo(ctrl),
	}
	m.Repos = &repository.Repos{
		User:       m.User,
		Task:       m.Task,
		Attachment: m.Attachment,
		Submission: m.Submission,
		Template:   m.Template,
		Document:   m.Document,
	}
	return m
}

func actor(role user.Role) user.Identity {
	return user.Identity{ID: uuid.New(), Email: string(role) + "@test.io", Role: role, FirstName: "Test", LastName: string(role)}
}

func ptr[T any](v T) *T { return &v }

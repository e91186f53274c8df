package repository

//go:generate mockgen -destination=mock/mock_repository.go -package=mock . UserRepo,TaskRepo,AttachmentRepo,SubmissionRepo,TemplateRepo,DocumentRepo

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Task       TaskRepo
	Attachment AttachmentRepo
	Submission SubmissionRepo
	Template   TemplateRepo
	Document   DocumentRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Task:       NewTaskRepo(db),
		Attachment: NewAttachmentRepo(db),
		Submission: NewSubmissionRepo(db),
		Template:   NewTemplateRepo(db),
		Document:   NewDocumentRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Task:       r.Task.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Template:   r.Template.WithTx(tx),
		Document:   r.Document.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a transaction. Repos assembled without a database
// (mocks in unit tests) run fn directly.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Dialect reports the name of the underlying database dialect.
func (r *Repos) Dialect() string {
	if r.db == nil {
		return ""
	}
	return r.db.Dialector.Name()
}

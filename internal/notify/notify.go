package notify

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/submission"
)

// SubmissionNotification tells a submitter about a review decision.
type SubmissionNotification struct {
	SubmissionID     uuid.UUID         `json:"submission_id"`
	Status           submission.Status `json:"status"`
	ReviewerComments string            `json:"reviewer_comments,omitempty"`
	TaskTitle        string            `json:"task_title,omitempty"`
	AttachmentTitle  string            `json:"attachment_title,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, n SubmissionNotification) error
}

// Recipient is the person a notification is addressed to.
type Recipient struct {
	Email string
	Name  string
}

// RecipientResolver finds who submitted a submission.
type RecipientResolver interface {
	SubmissionRecipient(ctx context.Context, submissionID uuid.UUID) (Recipient, error)
}

// LogNotifier only logs; it is used when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n SubmissionNotification) error {
	log.Printf("[notify] submission %s %s (task=%q requirement=%q)", n.SubmissionID, n.Status, n.TaskTitle, n.AttachmentTitle)
	return nil
}

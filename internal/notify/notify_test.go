package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierFunc func(ctx context.Context, n SubmissionNotification) error

func (f notifierFunc) Notify(ctx context.Context, n SubmissionNotification) error { return f(ctx, n) }

type staticResolver struct {
	r   Recipient
	err error
}

func (s staticResolver) SubmissionRecipient(context.Context, uuid.UUID) (Recipient, error) {
	return s.r, s.err
}

func TestDispatcher_SwallowsErrorsAndPanics(t *testing.T) {
	var mu sync.Mutex
	var calls int
	d := NewDispatcher(notifierFunc(func(ctx context.Context, n SubmissionNotification) error {
		mu.Lock()
		calls++
		mu.Unlock()
		if n.Status == submission.StatusFlagged {
			panic("boom")
		}
		return errors.New("smtp down")
	}), time.Second)

	d.Dispatch(SubmissionNotification{SubmissionID: uuid.New(), Status: submission.StatusRejected})
	d.Dispatch(SubmissionNotification{SubmissionID: uuid.New(), Status: submission.StatusFlagged})
	d.Wait()

	assert.Equal(t, 2, calls)
}

func TestDispatcher_ContextHasDeadline(t *testing.T) {
	var hasDeadline bool
	d := NewDispatcher(notifierFunc(func(ctx context.Context, n SubmissionNotification) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}), time.Second)

	d.Dispatch(SubmissionNotification{SubmissionID: uuid.New(), Status: submission.StatusApproved})
	d.Wait()

	assert.True(t, hasDeadline)
}

func TestRenderSubmissionEmail(t *testing.T) {
	n := SubmissionNotification{
		SubmissionID:     uuid.New(),
		Status:           submission.StatusRejected,
		ReviewerComments: "Photo is <blurry>",
		TaskTitle:        "Docket #D-1 - Acme",
		AttachmentTitle:  "Proof of delivery",
	}

	msg, err := RenderSubmissionEmail("BMT Logistics", "https://app.example", Recipient{Email: "d@x.io", Name: "Dan"}, n)

	require.NoError(t, err)
	assert.Equal(t, "d@x.io", msg.To)
	assert.Equal(t, "❌ Your submission needs revision - Proof of delivery", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Dan,")
	assert.Contains(t, msg.HTML, "Photo is &lt;blurry&gt;")
	assert.Contains(t, msg.HTML, "Resubmit Now")
}

func TestRenderSubmissionEmail_Defaults(t *testing.T) {
	msg, err := RenderSubmissionEmail("BMT Logistics", "", Recipient{Email: "d@x.io"}, SubmissionNotification{Status: submission.StatusApproved})

	require.NoError(t, err)
	assert.Equal(t, "✅ Your submission has been approved - Submission", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Driver,")
	assert.NotContains(t, msg.HTML, "Reviewer Comments")

	_, err = RenderSubmissionEmail("BMT Logistics", "", Recipient{}, SubmissionNotification{Status: submission.StatusSubmitted})
	assert.Error(t, err)
}

func TestEmailNotifier_Notify(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	cfg := SMTPConfig{Host: "smtp.example", Port: 587, From: "noreply@example", FromName: "BMT Logistics"}
	n := NewEmailNotifier(cfg, staticResolver{r: Recipient{Email: "d@x.io", Name: "Dan"}}).
		WithSender(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		})

	err := n.Notify(context.Background(), SubmissionNotification{SubmissionID: uuid.New(), Status: submission.StatusFlagged, AttachmentTitle: "POD"})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example:587", gotAddr)
	assert.Equal(t, "noreply@example", gotFrom)
	assert.Equal(t, []string{"d@x.io"}, gotTo)
	assert.True(t, strings.Contains(string(gotMsg), "Content-Type: text/html; charset=UTF-8"))
	assert.Contains(t, string(gotMsg), "Submission Flagged")
}

func TestEmailNotifier_ResolverError(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.example", Port: 25}, staticResolver{err: errors.New("not found")})

	err := n.Notify(context.Background(), SubmissionNotification{Status: submission.StatusApproved})

	assert.Error(t, err)
}

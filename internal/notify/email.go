package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"mime"
	"net/smtp"
	"strings"

	"github.com/linskybing/logistics-go/internal/domain/submission"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
	// AppURL is linked from the email call-to-action button.
	AppURL string
}

type statusStyle struct {
	Subject string
	Heading string
	Color   string
	Icon    string
	Message string
	Action  string
}

var statusStyles = map[submission.Status]statusStyle{
	submission.StatusApproved: {
		Subject: "✅ Your submission has been approved",
		Heading: "Submission Approved",
		Color:   "#22c55e",
		Icon:    "✅",
		Message: "Great work! Your submission has been reviewed and approved.",
		Action:  "View Task",
	},
	submission.StatusRejected: {
		Subject: "❌ Your submission needs revision",
		Heading: "Submission Rejected",
		Color:   "#ef4444",
		Icon:    "❌",
		Message: "Your submission has been reviewed and requires changes. Please review the feedback below and resubmit.",
		Action:  "Resubmit Now",
	},
	submission.StatusFlagged: {
		Subject: "⚠️ Your submission has been flagged",
		Heading: "Submission Flagged",
		Color:   "#eab308",
		Icon:    "⚠️",
		Message: "Your submission has been flagged for further review. Please see the comments below.",
		Action:  "Resubmit Now",
	},
}

var emailTemplate = template.Must(template.New("submission").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #1e3a5f 0%, #2d5a87 100%); padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
      <h1 style="color: white; margin: 0; font-size: 24px;">{{.Brand}}</h1>
    </div>
    <div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 8px 8px;">
      <div style="background: white; padding: 25px; border-radius: 8px;">
        <div style="text-align: center; font-size: 28px;">{{.Style.Icon}}</div>
        <h2 style="color: {{.Style.Color}}; text-align: center; margin: 0 0 15px 0;">{{.Style.Heading}}</h2>
        <p>Hi {{.Name}},</p>
        <p>{{.Style.Message}}</p>
        {{if .TaskTitle}}<p><strong>Task:</strong> {{.TaskTitle}}</p>{{end}}
        {{if .AttachmentTitle}}<p><strong>Requirement:</strong> {{.AttachmentTitle}}</p>{{end}}
        {{if .Comments}}
        <div style="background: #f1f5f9; padding: 15px; border-radius: 6px; border-left: 4px solid {{.Style.Color}}; margin: 20px 0;">
          <p style="margin: 0 0 5px 0; font-weight: 600; font-size: 14px; color: #64748b;">Reviewer Comments:</p>
          <p style="margin: 0; color: #334155;">{{.Comments}}</p>
        </div>
        {{end}}
        {{if .AppURL}}
        <div style="text-align: center; margin-top: 30px;">
          <a href="{{.AppURL}}" style="display: inline-block; background: {{.Style.Color}}; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; font-weight: 600;">{{.Style.Action}}</a>
        </div>
        {{end}}
      </div>
      <p style="text-align: center; color: #64748b; font-size: 12px; margin-top: 20px;">
        This is an automated notification from {{.Brand}} Task Management System.
      </p>
    </div>
  </body>
</html>
`))

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// RenderSubmissionEmail builds the email for n addressed to r.
func RenderSubmissionEmail(brand, appURL string, r Recipient, n SubmissionNotification) (Message, error) {
	style, ok := statusStyles[n.Status]
	if !ok {
		return Message{}, fmt.Errorf("no email for status %q", n.Status)
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "Driver"
	}
	subjectSuffix := n.AttachmentTitle
	if subjectSuffix == "" {
		subjectSuffix = "Submission"
	}

	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, map[string]any{
		"Brand":           brand,
		"Style":           style,
		"Name":            name,
		"TaskTitle":       n.TaskTitle,
		"AttachmentTitle": n.AttachmentTitle,
		"Comments":        n.ReviewerComments,
		"AppURL":          appURL,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      r.Email,
		Subject: style.Subject + " - " + subjectSuffix,
		HTML:    buf.String(),
	}, nil
}

// SendFunc matches smtp.SendMail so tests can capture outgoing mail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier emails the submitter of a reviewed submission over SMTP.
type EmailNotifier struct {
	cfg      SMTPConfig
	resolver RecipientResolver
	send     SendFunc
}

func NewEmailNotifier(cfg SMTPConfig, resolver RecipientResolver) *EmailNotifier {
	n := &EmailNotifier{cfg: cfg, resolver: resolver}
	if cfg.UseTLS {
		n.send = n.sendTLS
	} else {
		n.send = smtp.SendMail
	}
	return n
}

// WithSender replaces the SMTP transport.
func (e *EmailNotifier) WithSender(send SendFunc) *EmailNotifier {
	e.send = send
	return e
}

func (e *EmailNotifier) Notify(ctx context.Context, n SubmissionNotification) error {
	r, err := e.resolver.SubmissionRecipient(ctx, n.SubmissionID)
	if err != nil {
		return fmt.Errorf("resolve recipient: %w", err)
	}
	if r.Email == "" {
		return fmt.Errorf("submission %s has no recipient email", n.SubmissionID)
	}

	msg, err := RenderSubmissionEmail(e.cfg.FromName, e.cfg.AppURL, r, n)
	if err != nil {
		return err
	}

	log.Printf("[notify] sending %s notification to %s", n.Status, r.Email)
	var auth smtp.Auth
	if e.cfg.Username != "" {
		auth = smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	return e.send(addr, auth, e.cfg.From, []string{msg.To}, e.buildMIME(msg))
}

func (e *EmailNotifier) buildMIME(msg Message) []byte {
	var b strings.Builder
	from := e.cfg.From
	if e.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", e.cfg.FromName), e.cfg.From)
	}
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

// sendTLS talks SMTP over an implicit TLS connection (port 465).
func (e *EmailNotifier) sendTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: e.cfg.Host})
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %v", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %v", err)
	}
	defer client.Close()

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %v", err)
		}
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %v", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to add recipient %s: %v", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data connection: %v", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write email body: %v", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data connection: %v", err)
	}
	return client.Quit()
}

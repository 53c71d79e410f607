package folio

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

// Mailer delivers contact-form notifications to the site owner.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ResendMailer sends email via the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a mailer with the given API key and sender
// address.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send sends a single email via Resend.
func (m *ResendMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}

// contactNotificationHTML formats a new contact message for the owner's
// inbox. Visitor-supplied fields are escaped.
func contactNotificationHTML(msg ContactMessage) string {
	return fmt.Sprintf(
		"<h2>New contact message</h2><p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)
}

// notifyOwner emails the configured owner about a new contact message.
// Best-effort: failures are logged by the caller, never surfaced to the
// visitor.
func (a *App) notifyOwner(ctx context.Context, msg ContactMessage) error {
	if a.mailer == nil || a.Config.OwnerEmail == "" {
		return nil
	}
	subject := "Contact form: " + msg.Subject
	return a.mailer.Send(ctx, a.Config.OwnerEmail, subject, contactNotificationHTML(msg))
}

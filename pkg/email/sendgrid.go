package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const ProviderSendGrid = "sendgrid"

// SendGridSender sends emails via the SendGrid API. It is the primary
// transport of the notification chain.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a SendGrid sender. With an empty API key the
// sender is still returned but fails fast on Send, so the notifier can fall
// through to the secondary transport without a network call.
func NewSendGridSender(cfg SendGridConfig) *SendGridSender {
	s := &SendGridSender{
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
	if s.fromName == "" {
		s.fromName = "Portfolio Contact"
	}
	if cfg.APIKey != "" {
		s.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return s
}

// Provider returns the transport name used in logs and metrics.
func (s *SendGridSender) Provider() string {
	return ProviderSendGrid
}

// Send delivers the message through SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if s.client == nil {
		return newSendError(ProviderSendGrid, KindCredentialMissing,
			fmt.Errorf("SENDGRID_API_KEY is not set"))
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", msg.To)
	m := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return newSendError(ProviderSendGrid, KindTransportUnavailable, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		kind := KindSendRejected
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = KindAuthFailed
		}
		sendErr := newSendError(ProviderSendGrid, kind,
			fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body))
		if kind == KindAuthFailed {
			sendErr.Hint = `check that SENDGRID_API_KEY is valid and has "Mail Send" permissions`
		}
		return sendErr
	}
	return nil
}

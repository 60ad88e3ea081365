package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"strings"
)

const ProviderGmail = "gmail"

// GmailSender sends emails through Gmail's SMTP submission endpoint. It is
// the secondary transport, used when SendGrid fails.
//
// Gmail blocks plain password login for automated senders: the password here
// must be an application-specific password generated under
// Google Account > Security > 2-Step Verification > App Passwords.
type GmailSender struct {
	host     string
	port     string
	username string
	password string
}

// GmailConfig holds the Gmail SMTP account configuration.
type GmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// NewGmailSender creates a Gmail SMTP sender.
func NewGmailSender(cfg GmailConfig) *GmailSender {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &GmailSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Provider returns the transport name used in logs and metrics.
func (s *GmailSender) Provider() string {
	return ProviderGmail
}

// Send delivers the message over SMTP as a multipart/alternative MIME body
// carrying both the plain-text and HTML renderings.
func (s *GmailSender) Send(ctx context.Context, msg Message) error {
	if s.username == "" || s.password == "" {
		return newSendError(ProviderGmail, KindCredentialMissing,
			fmt.Errorf("EMAIL_USER/EMAIL_PASS are not set"))
	}

	raw := s.buildMIME(msg)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port

	// smtp.SendMail has no context plumbing; run it in a goroutine and
	// abandon the attempt if the per-attempt deadline fires first.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.username, []string{msg.To}, raw)
	}()

	select {
	case <-ctx.Done():
		return newSendError(ProviderGmail, KindTransportUnavailable, ctx.Err())
	case err := <-done:
		if err != nil {
			return s.classify(err)
		}
		return nil
	}
}

func (s *GmailSender) classify(err error) *SendError {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch {
		case protoErr.Code == 535 || protoErr.Code == 534 || protoErr.Code == 530:
			sendErr := newSendError(ProviderGmail, KindAuthFailed, err)
			sendErr.Hint = "use an App Password, not the account login password " +
				"(Google Account > Security > 2-Step Verification > App Passwords)"
			return sendErr
		case protoErr.Code >= 400:
			return newSendError(ProviderGmail, KindSendRejected, err)
		}
	}
	// Legacy string match: some auth failures surface as plain errors
	if strings.Contains(err.Error(), "535") {
		sendErr := newSendError(ProviderGmail, KindAuthFailed, err)
		sendErr.Hint = "use an App Password, not the account login password"
		return sendErr
	}
	return newSendError(ProviderGmail, KindTransportUnavailable, err)
}

func (s *GmailSender) buildMIME(msg Message) []byte {
	const boundary = "portfolio-contact-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.username)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

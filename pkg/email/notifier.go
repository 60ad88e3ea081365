package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sender is a single email transport. Implementations classify their own
// failures as *SendError so the notifier can log and count them uniformly.
type Sender interface {
	Provider() string
	Send(ctx context.Context, msg Message) error
}

// AttemptObserver is notified of every transport attempt. Used to feed
// metrics without coupling this package to the metrics registry.
type AttemptObserver func(provider, outcome string, kind FailureKind)

// Notifier delivers contact notifications through an ordered fallback chain:
// the primary transport first, the secondary only if the primary fails. The
// chain has exactly two levels and no per-transport retries.
type Notifier struct {
	senders        []Sender
	to             string
	attemptTimeout time.Duration
	log            *slog.Logger
	observe        AttemptObserver
}

// NotifierOption customizes a Notifier.
type NotifierOption func(*Notifier)

// WithAttemptTimeout bounds each transport attempt. The original service
// imposed no timeout; this keeps detached goroutines from being retained
// indefinitely on a wedged provider.
func WithAttemptTimeout(d time.Duration) NotifierOption {
	return func(n *Notifier) { n.attemptTimeout = d }
}

// WithAttemptObserver registers a metrics hook for transport attempts.
func WithAttemptObserver(fn AttemptObserver) NotifierOption {
	return func(n *Notifier) { n.observe = fn }
}

// NewNotifier creates a notifier that mails the owner address through the
// given transports, in order.
func NewNotifier(to string, log *slog.Logger, primary, secondary Sender, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		senders:        []Sender{primary, secondary},
		to:             to,
		attemptTimeout: 10 * time.Second,
		log:            log,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify emails the site owner about a contact-form submission. The result is
// only meaningful for logging: callers must not surface it to the submitter,
// whose response has already been committed.
func (n *Notifier) Notify(ctx context.Context, name, email, message string) error {
	if n.to == "" {
		err := newSendError("notifier", KindCredentialMissing,
			fmt.Errorf("CONTACT_EMAIL_TO is not configured"))
		n.log.Error("contact notification skipped", "error", err)
		return err
	}

	msg, err := NewContactMessage(n.to, name, email, message, time.Now())
	if err != nil {
		return err
	}

	var lastErr error
	for _, sender := range n.senders {
		if err := n.attempt(ctx, sender, msg); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	// Total failure: both transports refused the message. Callers log this;
	// the submitter never sees it.
	return fmt.Errorf("contact notification failed on all transports: %w", lastErr)
}

func (n *Notifier) attempt(ctx context.Context, sender Sender, msg Message) error {
	attemptCtx := ctx
	if n.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, n.attemptTimeout)
		defer cancel()
	}

	err := sender.Send(attemptCtx, msg)
	if err == nil {
		n.log.Info("contact notification sent", "provider", sender.Provider(), "to", msg.To)
		if n.observe != nil {
			n.observe(sender.Provider(), "sent", "")
		}
		return nil
	}

	kind := KindTransportUnavailable
	hint := ""
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		kind = sendErr.Kind
		hint = sendErr.Hint
	}

	attrs := []any{"provider", sender.Provider(), "kind", string(kind), "error", err}
	if hint != "" {
		attrs = append(attrs, "hint", hint)
	}
	n.log.Warn("contact notification attempt failed", attrs...)
	if n.observe != nil {
		n.observe(sender.Provider(), "failed", kind)
	}
	return err
}

package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation failures carry the exact client-facing message; the handler maps
// them to HTTP 400. They are user input errors, never logged as system errors.
var (
	ErrMissingField = errors.New("Please provide name, email, and message")
	ErrInvalidEmail = errors.New("Please provide a valid email address")
)

// ContactRequest is the wire shape of a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// RequestMeta carries origin details captured from the HTTP request, kept for
// abuse tracking.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// ContactSubmission is the durable record of one contact-form submission.
// It is immutable once created: written at most once, never updated or
// deleted by this system (retention is an external concern).
type ContactSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	IPAddress   string    `json:"ipAddress"`
	UserAgent   string    `json:"userAgent"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactUsecase orchestrates a submission. Validate is the synchronous
// gate; Dispatch detaches persistence and owner notification as independent
// background tasks. The handler responds between the two calls, so the
// client's latency is validation-only and background outcomes are observable
// only in logs and metrics.
type ContactUsecase interface {
	Validate(req *ContactRequest) error
	Dispatch(req *ContactRequest, meta RequestMeta)
}

// ContactRepository persists submissions.
type ContactRepository interface {
	Create(ctx context.Context, sub *ContactSubmission) error
	ListRecent(ctx context.Context, limit int) ([]ContactSubmission, error)
}

// ContactNotifier emails the site owner about a submission.
type ContactNotifier interface {
	Notify(ctx context.Context, name, email, message string) error
}

package usecase

import (
	"context"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/observability/metrics"
	"go-portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type contactUsecase struct {
	repo        domain.ContactRepository // nil when no database is configured
	notifier    domain.ContactNotifier
	validate    *validator.Validate
	metrics     *metrics.ContactMetrics
	taskTimeout time.Duration
}

// NewContactUsecase creates a new contact usecase. The validator instance
// must have the custom "email_shape" validation registered.
func NewContactUsecase(repo domain.ContactRepository, notifier domain.ContactNotifier, validate *validator.Validate, m *metrics.ContactMetrics) domain.ContactUsecase {
	return &contactUsecase{
		repo:        repo,
		notifier:    notifier,
		validate:    validate,
		metrics:     m,
		taskTimeout: 30 * time.Second,
	}
}

// Validate is the synchronous gate: required fields must be non-blank and the
// email must pass the permissive shape check. Pure, no I/O.
func (uc *contactUsecase) Validate(req *domain.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		uc.metrics.ObserveSubmission("rejected")
		return domain.ErrMissingField
	}
	if err := uc.validate.Var(req.Email, "email_shape"); err != nil {
		uc.metrics.ObserveSubmission("rejected")
		return domain.ErrInvalidEmail
	}
	return nil
}

// Dispatch creates the submission record and detaches persistence and
// notification. Callers must have committed the HTTP response first: nothing
// that happens here can reach the client. Submission values are stored and
// forwarded exactly as received; trimming applies only to the presence check
// in Validate.
func (uc *contactUsecase) Dispatch(req *domain.ContactRequest, meta domain.RequestMeta) {
	sub := &domain.ContactSubmission{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		SubmittedAt: time.Now().UTC(),
	}
	uc.metrics.ObserveSubmission("accepted")

	// Fire-and-forget: both tasks run on their own detached context so the
	// request lifecycle ending cannot cancel them. Neither waits for the
	// other, and no ordering between them is guaranteed.
	go uc.store(sub)
	go uc.notifyOwner(sub)
}

func (uc *contactUsecase) store(sub *domain.ContactSubmission) {
	defer recoverBackgroundTask("store")

	if uc.repo == nil {
		logger.Log.Warn("submission not persisted: no database configured", "submission_id", sub.ID)
		uc.metrics.ObserveStore("skipped")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), uc.taskTimeout)
	defer cancel()

	if err := uc.repo.Create(ctx, sub); err != nil {
		// Best-effort durability: the response already left, the record is lost.
		logger.Log.Error("failed to persist contact submission", "submission_id", sub.ID, "error", err)
		uc.metrics.ObserveStore("failed")
		return
	}
	logger.Log.Info("contact submission persisted", "submission_id", sub.ID)
	uc.metrics.ObserveStore("stored")
}

func (uc *contactUsecase) notifyOwner(sub *domain.ContactSubmission) {
	defer recoverBackgroundTask("notify")

	ctx, cancel := context.WithTimeout(context.Background(), uc.taskTimeout)
	defer cancel()

	if err := uc.notifier.Notify(ctx, sub.Name, sub.Email, sub.Message); err != nil {
		logger.Log.Error("contact notification failed", "submission_id", sub.ID, "error", err)
	}
}

// recoverBackgroundTask keeps a panic in detached work from taking the
// process down. Nothing raised here may cross back into the response path.
func recoverBackgroundTask(task string) {
	if r := recover(); r != nil {
		logger.Log.Error("panic in background task", "task", task, "panic", r)
	}
}

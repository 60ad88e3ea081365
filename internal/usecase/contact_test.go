package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

// Mock collaborators
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockContactRepo) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, name, email, message string) error {
	return m.Called(ctx, name, email, message).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidateRequiredFields(t *testing.T) {
	uc := usecase.NewContactUsecase(nil, new(MockNotifier), newValidator(), nil)

	cases := []struct {
		name string
		req  domain.ContactRequest
	}{
		{"empty name", domain.ContactRequest{Name: "", Email: "ada@x.co", Message: "Hi"}},
		{"whitespace name", domain.ContactRequest{Name: "   ", Email: "ada@x.co", Message: "Hi"}},
		{"empty email", domain.ContactRequest{Name: "Ada", Email: "", Message: "Hi"}},
		{"empty message", domain.ContactRequest{Name: "Ada", Email: "ada@x.co", Message: ""}},
		{"whitespace message", domain.ContactRequest{Name: "Ada", Email: "ada@x.co", Message: "\t\n"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Validate(&tc.req)
			assert.ErrorIs(t, err, domain.ErrMissingField)
		})
	}
}

func TestValidateEmailShape(t *testing.T) {
	uc := usecase.NewContactUsecase(nil, new(MockNotifier), newValidator(), nil)

	invalid := []string{"not-an-email", "no-at-sign.com", "missing@dot", "spaces in@local.part", "double@@at.com"}
	for _, email := range invalid {
		err := uc.Validate(&domain.ContactRequest{Name: "Ada", Email: email, Message: "Hi"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q should be rejected", email)
	}

	// The check is shape-only and deliberately permissive
	valid := []string{"ada@x.co", "a@b.c", "weird+tag@sub.domain.io"}
	for _, email := range valid {
		err := uc.Validate(&domain.ContactRequest{Name: "Ada", Email: email, Message: "Hi"})
		assert.NoError(t, err, "email %q should be accepted", email)
	}
}

func TestDispatchInvokesStoreAndNotifier(t *testing.T) {
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewContactUsecase(repo, notifier, newValidator(), nil)

	stored := make(chan *domain.ContactSubmission, 1)
	notified := make(chan struct{}, 1)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactSubmission")).
		Run(func(args mock.Arguments) {
			stored <- args.Get(1).(*domain.ContactSubmission)
		}).Return(nil)
	notifier.On("Notify", mock.Anything, "Ada", "ada@x.co", "Hi").
		Run(func(mock.Arguments) { notified <- struct{}{} }).Return(nil)

	req := &domain.ContactRequest{Name: "Ada", Email: "ada@x.co", Message: "Hi"}
	require.NoError(t, uc.Validate(req))
	uc.Dispatch(req, domain.RequestMeta{IPAddress: "203.0.113.9", UserAgent: "curl/8.0"})

	select {
	case sub := <-stored:
		assert.Equal(t, "Ada", sub.Name)
		assert.Equal(t, "ada@x.co", sub.Email)
		assert.Equal(t, "Hi", sub.Message)
		assert.Equal(t, "203.0.113.9", sub.IPAddress)
		assert.Equal(t, "curl/8.0", sub.UserAgent)
		assert.False(t, sub.SubmittedAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("submission was never persisted")
	}

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}

func TestDispatchReturnsWithoutWaitingOnSlowCollaborators(t *testing.T) {
	release := make(chan struct{})
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).Return(nil)

	uc := usecase.NewContactUsecase(repo, notifier, newValidator(), nil)

	start := time.Now()
	uc.Dispatch(&domain.ContactRequest{Name: "Ada", Email: "ada@x.co", Message: "Hi"},
		domain.RequestMeta{})
	elapsed := time.Since(start)
	close(release)

	// Dispatch must not block on storage or notification latency
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestBackgroundFailuresStayInBackground(t *testing.T) {
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	done := make(chan struct{}, 2)
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { done <- struct{}{} }).Return(errors.New("db down"))
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { done <- struct{}{} }).Return(errors.New("both transports failed"))

	uc := usecase.NewContactUsecase(repo, notifier, newValidator(), nil)

	// Dispatch has no error return at all: failures are logged, never surfaced
	uc.Dispatch(&domain.ContactRequest{Name: "Ada", Email: "ada@x.co", Message: "Hi"},
		domain.RequestMeta{})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("background task did not run")
		}
	}
}

func TestDispatchWithoutRepositorySkipsPersistence(t *testing.T) {
	notifier := new(MockNotifier)
	notified := make(chan struct{}, 1)
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { notified <- struct{}{} }).Return(nil)

	uc := usecase.NewContactUsecase(nil, notifier, newValidator(), nil)
	uc.Dispatch(&domain.ContactRequest{Name: "Ada", Email: "ada@x.co", Message: "Hi"},
		domain.RequestMeta{})

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier should still run without a repository")
	}
}

func TestHealthCheck(t *testing.T) {
	uc := usecase.NewHealthUsecase()
	status := uc.Check(context.Background())

	assert.Equal(t, "OK", status.Status)
	assert.NotEmpty(t, status.Message)
	_, err := time.Parse(time.RFC3339, status.Timestamp)
	assert.NoError(t, err)
}

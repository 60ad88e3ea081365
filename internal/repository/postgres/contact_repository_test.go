package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:          uuid.New(),
		Name:        "Ada",
		Email:       "ada@x.co",
		Message:     "Hi",
		IPAddress:   "203.0.113.9",
		UserAgent:   "curl/8.0",
		SubmittedAt: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func TestCreateInsertsAllColumns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sub := newSubmission()
	mock.ExpectExec("INSERT INTO contact_submissions").
		WithArgs(sub.ID, sub.Name, sub.Email, sub.Message, sub.IPAddress, sub.UserAgent, sub.SubmittedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := postgres.NewContactRepository(mock)
	require.NoError(t, repo.Create(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePropagatesError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sub := newSubmission()
	mock.ExpectExec("INSERT INTO contact_submissions").
		WithArgs(sub.ID, sub.Name, sub.Email, sub.Message, sub.IPAddress, sub.UserAgent, sub.SubmittedAt).
		WillReturnError(errors.New("connection refused"))

	repo := postgres.NewContactRepository(mock)
	err = repo.Create(context.Background(), sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert contact submission")
}

func TestListRecentScansRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sub := newSubmission()
	rows := pgxmock.NewRows([]string{"id", "name", "email", "message", "ip_address", "user_agent", "submitted_at"}).
		AddRow(sub.ID, sub.Name, sub.Email, sub.Message, sub.IPAddress, sub.UserAgent, sub.SubmittedAt)

	mock.ExpectQuery("SELECT (.+) FROM contact_submissions").
		WithArgs(25).
		WillReturnRows(rows)

	repo := postgres.NewContactRepository(mock)
	subs, err := repo.ListRecent(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, *sub, subs[0])
}

func TestListRecentDefaultsLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM contact_submissions").
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "message", "ip_address", "user_agent", "submitted_at"}))

	repo := postgres.NewContactRepository(mock)
	subs, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, subs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

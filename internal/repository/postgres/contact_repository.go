package postgres

import (
	"context"
	"fmt"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. Narrowed to an
// interface so tests can substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type contactRepo struct {
	db DB
}

func NewContactRepository(db DB) domain.ContactRepository {
	return &contactRepo{db: db}
}

// Create inserts the submission record. Submissions are append-only facts:
// there is no update or delete path.
func (r *contactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, message, ip_address, user_agent, submitted_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.Name, sub.Email, sub.Message, sub.IPAddress, sub.UserAgent, sub.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// ListRecent returns the newest submissions, most recent first.
func (r *contactRepo) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, name, email, message, ip_address, user_agent, submitted_at
              FROM contact_submissions ORDER BY submitted_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.ContactSubmission
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.IPAddress, &s.UserAgent, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

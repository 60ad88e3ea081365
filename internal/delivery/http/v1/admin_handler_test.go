package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContactRepo struct {
	subs      []domain.ContactSubmission
	lastLimit int
}

func (s *stubContactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	s.subs = append(s.subs, *sub)
	return nil
}

func (s *stubContactRepo) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	s.lastLimit = limit
	return s.subs, nil
}

const adminSecret = "test-secret"

func newAdminRouter(repo domain.ContactRepository) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminJWT(adminSecret))
	v1.NewAdminHandler(admin, repo)
	return r
}

func adminToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "owner",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminSubmissionsRequiresToken(t *testing.T) {
	r := newAdminRouter(&stubContactRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSubmissionsRejectsBadSignature(t *testing.T) {
	r := newAdminRouter(&stubContactRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "wrong-secret"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSubmissionsListsRecent(t *testing.T) {
	repo := &stubContactRepo{subs: []domain.ContactSubmission{
		{ID: uuid.New(), Name: "Ada", Email: "ada@x.co", Message: "Hi", SubmittedAt: time.Now().UTC()},
	}}
	r := newAdminRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, adminSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), "ada@x.co")
}

func TestAdminDisabledWithoutSecret(t *testing.T) {
	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminJWT(""))
	v1.NewAdminHandler(admin, &stubContactRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, adminSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package v1

import (
	"net/http"
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	contactRepo domain.ContactRepository
}

// NewAdminHandler registers the owner-only routes. The group is expected to
// carry the AdminJWT middleware.
func NewAdminHandler(admin *gin.RouterGroup, contactRepo domain.ContactRepository) {
	handler := &AdminHandler{contactRepo: contactRepo}

	admin.GET("/submissions", handler.ListSubmissions)
}

// ListSubmissions returns the most recent contact submissions. Read-only:
// submissions are immutable and this surface adds no mutation path.
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	if h.contactRepo == nil {
		c.Error(apperror.New(http.StatusServiceUnavailable, "Submission store is not configured", nil))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	subs, err := h.contactRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to load submissions", err))
		return
	}

	response.Success(c, http.StatusOK, "Submissions retrieved", gin.H{
		"submissions": subs,
		"count":       len(subs),
	})
}

package v1

import (
	"net/http"

	"go-portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler registers the liveness probe.
func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health Check
// @Description  Pure liveness probe; performs no dependency checks.
// @Tags         health
// @Produce      json
// @Success      200  {object}  usecase.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	// Raw payload, not the response envelope: the probe contract is
	// {status, message, timestamp}
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

package handlers

import (
	"net/http"

	"socialdots/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	usecase usecase.IHealthUseCase
}

func NewHealthHandler(uc usecase.IHealthUseCase) *HealthHandler {
	return &HealthHandler{usecase: uc}
}

// Health godoc
// @Summary Database and integration health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.usecase.Check(c.Request.Context())
	code, overall := http.StatusOK, usecase.HealthStatusHealthy
	if !report.Healthy() {
		code, overall = http.StatusServiceUnavailable, usecase.HealthStatusUnhealthy
	}
	c.JSON(code, gin.H{
		"status":    overall,
		"database":  report.Database,
		"frappe":    report.ERP,
		"ai_agent":  report.AIAgent,
		"timestamp": report.Timestamp,
	})
}

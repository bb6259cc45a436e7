package handlers

import (
	"errors"
	"net/http"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AgentHandler struct {
	usecase usecase.IAgentUseCase
}

func NewAgentHandler(uc usecase.IAgentUseCase) *AgentHandler {
	return &AgentHandler{usecase: uc}
}

// Webhook godoc
// @Summary Inbound AI agent event
// @Description type is one of whatsapp_message, chatbot_conversation, order_inquiry. Unknown types return a null result.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} response.AgentWebhookResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /webhooks/ai-agent [post]
func (h *AgentHandler) Webhook(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid JSON", http.StatusBadRequest))
		return
	}
	webhookType := request.ResolveAgentWebhookType(body)

	result, err := h.usecase.HandleWebhook(c.Request.Context(), webhookType, body)
	if err != nil {
		logrus.WithError(err).WithField("type", webhookType).Warn("[agent][handler] webhook failed")
		respondError(c, mapAgentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgentResult(result))
}

// ListLogs godoc
// @Summary List AI agent audit logs
// @Tags admin
// @Produce json
// @Param type query string false "Log type"
// @Param limit query int false "Max rows"
// @Success 200 {array} entities.AgentLog
// @Security AdminKey
// @Router /v1/admin/agent-logs [get]
func (h *AgentHandler) ListLogs(c *gin.Context) {
	logs, err := h.usecase.ListLogs(c.Request.Context(), entities.AgentLogType(c.Query("type")), queryInt(c, "limit", usecase.DefaultAgentLogLimit))
	if err != nil {
		respondError(c, mapAgentError(err))
		return
	}
	c.JSON(http.StatusOK, logs)
}

func mapAgentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgentWebhook):
		return pkg.NewDomainError("INVALID_WEBHOOK", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLead):
		return pkg.NewDomainErrorSimple("INVALID_LEAD", "Lead name and email are required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

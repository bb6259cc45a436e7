package usecase

//go:generate mockgen -source=agent_usecase.go -destination=../adapter/http/handlers/mocks/agent_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidAgentWebhook = errors.New("invalid ai agent webhook")

// Inbound AI agent webhook types.
const (
	AgentWebhookWhatsApp     = "whatsapp_message"
	AgentWebhookChatbot      = "chatbot_conversation"
	AgentWebhookOrderInquiry = "order_inquiry"
)

const DefaultAgentLogLimit = 50

// IAgentUseCase handles events pushed by the AI agent and exposes its audit log.
type IAgentUseCase interface {
	HandleWebhook(ctx context.Context, webhookType string, data map[string]any) (map[string]any, error)
	ListLogs(ctx context.Context, logType entities.AgentLogType, limit int) ([]entities.AgentLog, error)
}

type AgentUseCase struct {
	agent interfaces.IAgentClient
	logs  interfaces.IAgentLogRepository
	leads ILeadUseCase
	now   func() time.Time
}

var _ IAgentUseCase = (*AgentUseCase)(nil)

func NewAgentUseCase(agent interfaces.IAgentClient, logs interfaces.IAgentLogRepository, leads ILeadUseCase) *AgentUseCase {
	return &AgentUseCase{
		agent: agent,
		logs:  logs,
		leads: leads,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// HandleWebhook dispatches on the webhook type. An unknown type yields a nil result
// and no error.
func (u *AgentUseCase) HandleWebhook(ctx context.Context, webhookType string, data map[string]any) (map[string]any, error) {
	if data == nil {
		data = map[string]any{}
	}
	switch webhookType {
	case AgentWebhookWhatsApp:
		return u.whatsApp(ctx, data)
	case AgentWebhookChatbot:
		return u.chatbot(ctx, stringField(data, "user_id"), stringField(data, "message"), mapField(data, "context"), data)
	case AgentWebhookOrderInquiry:
		return u.orderInquiry(ctx, data)
	}
	logrus.WithField("type", webhookType).Warn("[agent][usecase] unknown webhook type")
	return nil, nil
}

func (u *AgentUseCase) ListLogs(ctx context.Context, logType entities.AgentLogType, limit int) ([]entities.AgentLog, error) {
	if limit <= 0 {
		limit = DefaultAgentLogLimit
	}
	return u.logs.List(ctx, logType, limit)
}

// whatsApp records the inbound message, runs it through the chatbot and sends the
// chatbot's reply back over WhatsApp when there is one.
func (u *AgentUseCase) whatsApp(ctx context.Context, data map[string]any) (map[string]any, error) {
	phone := stringField(data, "phone_number")
	message := stringField(data, "message")
	if phone == "" || message == "" {
		return nil, fmt.Errorf("%w: phone_number and message are required", ErrInvalidAgentWebhook)
	}
	u.audit(ctx, entities.AgentLog{
		LogType:        entities.AgentLogTypeWhatsApp,
		UserIdentifier: phone,
		MessageContent: message,
		Payload:        data,
		Status:         entities.AgentLogStatusReceived,
	})

	resp, err := u.chatbot(ctx, phone, message, map[string]any{"channel": "whatsapp", "phone_number": phone}, data)
	if err != nil {
		return nil, err
	}
	reply := interfaces.AgentResponse(resp).Reply()
	if reply == "" {
		return resp, nil
	}

	sent, err := u.agent.SendWhatsApp(ctx, phone, reply)
	entry := entities.AgentLog{
		LogType:        entities.AgentLogTypeWhatsApp,
		UserIdentifier: phone,
		MessageContent: reply,
		Payload:        map[string]any{"phone_number": phone, "message": reply, "message_type": "text"},
		Status:         entities.AgentLogStatusSent,
	}
	if err != nil {
		entry.Status = entities.AgentLogStatusFailed
		entry.ResponseContent = err.Error()
		u.audit(ctx, entry)
		return nil, err
	}
	entry.ResponseContent = responseText(sent)
	u.audit(ctx, entry)
	return resp, nil
}

func (u *AgentUseCase) chatbot(ctx context.Context, userID, message string, chatContext, raw map[string]any) (map[string]any, error) {
	if userID == "" || message == "" {
		return nil, fmt.Errorf("%w: user and message are required", ErrInvalidAgentWebhook)
	}
	resp, err := u.agent.ProcessChatbotMessage(ctx, userID, message, chatContext)
	entry := entities.AgentLog{
		LogType:        entities.AgentLogTypeChatbot,
		UserIdentifier: userID,
		MessageContent: message,
		Payload:        raw,
		Status:         entities.AgentLogStatusProcessed,
	}
	if err != nil {
		entry.Status = entities.AgentLogStatusFailed
		entry.ResponseContent = err.Error()
		u.audit(ctx, entry)
		return nil, err
	}
	entry.ResponseContent = resp.Reply()
	u.audit(ctx, entry)
	return resp, nil
}

// orderInquiry turns an inquiry collected by the agent into a lead.
func (u *AgentUseCase) orderInquiry(ctx context.Context, data map[string]any) (map[string]any, error) {
	lead, err := u.leads.Submit(ctx, LeadInput{
		Name:              stringField(data, "name"),
		Email:             stringField(data, "email"),
		Phone:             stringField(data, "phone"),
		Company:           stringField(data, "company"),
		Message:           stringField(data, "message"),
		ServiceInterestID: stringField(data, "service_id"),
		Source:            entities.LeadSourceAIAgent,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"lead_id": lead.ID, "status": "created"}, nil
}

func (u *AgentUseCase) audit(ctx context.Context, entry entities.AgentLog) {
	entry.ID = uuid.NewString()
	entry.CreatedAt = u.now()
	if _, err := u.logs.Append(ctx, entry); err != nil {
		logrus.WithError(err).WithField("log_type", entry.LogType).Warn("[agent][usecase] agent log append failed")
	}
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
	}
	return ""
}

func mapField(data map[string]any, key string) map[string]any {
	m, _ := data[key].(map[string]any)
	return m
}

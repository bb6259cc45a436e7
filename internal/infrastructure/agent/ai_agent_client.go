package agent

import (
	"context"
	"net/http"

	"socialdots/internal/infrastructure/config"
	"socialdots/internal/infrastructure/httpclient"
	"socialdots/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrAgentNotConfigured = errors.Wrap(interfaces.ErrNotConfigured, "ai agent")
	ErrAgentUnhealthy     = errors.New("ai agent reported unhealthy")
)

// Client calls the external AI agent service with a bearer key.
type Client struct {
	http       *httpclient.Client
	configured bool
}

var _ interfaces.IAgentClient = (*Client)(nil)

func NewClient(cfg config.AgentConfig) *Client {
	return &Client{
		http: httpclient.New(cfg.WebhookURL, cfg.Timeout, map[string]string{
			"Authorization": "Bearer " + cfg.APIKey,
		}),
		configured: cfg.WebhookURL != "",
	}
}

func (c *Client) HTTPClient() *http.Client {
	return c.http.HTTPClient()
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any) (interfaces.AgentResponse, error) {
	if !c.configured {
		return nil, ErrAgentNotConfigured
	}
	out := interfaces.AgentResponse{}
	if err := c.http.DoJSON(ctx, http.MethodPost, endpoint, body, &out); err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Error("[agent][client] request failed")
		return nil, errors.Wrapf(err, "agent %s", endpoint)
	}
	return out, nil
}

func (c *Client) NotifyNewLead(ctx context.Context, payload map[string]any) (interfaces.AgentResponse, error) {
	return c.post(ctx, "lead/new", payload)
}

func (c *Client) NotifyPaymentSuccess(ctx context.Context, payload map[string]any) (interfaces.AgentResponse, error) {
	return c.post(ctx, "payment/success", payload)
}

func (c *Client) ProcessChatbotMessage(ctx context.Context, userID, message string, chatContext map[string]any) (interfaces.AgentResponse, error) {
	if chatContext == nil {
		chatContext = map[string]any{}
	}
	return c.post(ctx, "chatbot/process", map[string]any{
		"user_id": userID,
		"message": message,
		"context": chatContext,
	})
}

func (c *Client) SendWhatsApp(ctx context.Context, phoneNumber, message string) (interfaces.AgentResponse, error) {
	return c.post(ctx, "whatsapp/send", map[string]any{
		"phone_number": phoneNumber,
		"message":      message,
		"message_type": "text",
	})
}

func (c *Client) Health(ctx context.Context) error {
	if !c.configured {
		return ErrAgentNotConfigured
	}
	var out struct {
		Status string `json:"status"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, "health", nil, &out); err != nil {
		return errors.Wrap(err, "agent health")
	}
	if out.Status != "healthy" {
		return ErrAgentUnhealthy
	}
	return nil
}

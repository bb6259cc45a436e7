package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

import "context"

// IChatNotifier posts a plain-text message to the team chat channel.
type IChatNotifier interface {
	Notify(ctx context.Context, text string) error
}

// AgentResponse is the JSON object returned by the AI agent.
type AgentResponse map[string]any

// Reply returns the agent's "response" field when it is a non-empty string.
func (r AgentResponse) Reply() string {
	s, _ := r["response"].(string)
	return s
}

// IAgentClient abstracts the outbound AI agent webhook.
type IAgentClient interface {
	NotifyNewLead(ctx context.Context, payload map[string]any) (AgentResponse, error)
	NotifyPaymentSuccess(ctx context.Context, payload map[string]any) (AgentResponse, error)
	ProcessChatbotMessage(ctx context.Context, userID, message string, chatContext map[string]any) (AgentResponse, error)
	SendWhatsApp(ctx context.Context, phoneNumber, message string) (AgentResponse, error)
	Health(ctx context.Context) error
}

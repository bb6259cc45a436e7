package entities

import "time"

type AgentLogType string

const (
	AgentLogTypeWhatsApp     AgentLogType = "whatsapp"
	AgentLogTypeChatbot      AgentLogType = "chatbot"
	AgentLogTypeOrderBooking AgentLogType = "order_booking"
	AgentLogTypeNotification AgentLogType = "notification"
	AgentLogTypeChat         AgentLogType = "chat"
	AgentLogTypeERP          AgentLogType = "erp"
)

type AgentLogStatus string

const (
	AgentLogStatusSent      AgentLogStatus = "sent"
	AgentLogStatusFailed    AgentLogStatus = "failed"
	AgentLogStatusReceived  AgentLogStatus = "received"
	AgentLogStatusProcessed AgentLogStatus = "processed"
)

// AgentLog is an append-only audit row for one outbound or inbound webhook exchange.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (log_type-created_at-index): log_type, created_at
type AgentLog struct {
	ID              string         `json:"id"`
	LogType         AgentLogType   `json:"log_type"`
	UserIdentifier  string         `json:"user_identifier,omitempty"`
	MessageContent  string         `json:"message_content,omitempty"`
	ResponseContent string         `json:"response_content,omitempty"`
	Payload         map[string]any `json:"payload,omitempty"`
	Status          AgentLogStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

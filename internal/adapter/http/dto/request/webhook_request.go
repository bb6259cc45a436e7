package request

import (
	"strings"
	"time"

	"socialdots/internal/usecase"
	"socialdots/internal/usecase/interfaces"
)

// PaymentNotificationRequest is the body Mercado Pago posts to the notification url.
// The same values are also repeated in the query string as type and data.id.
type PaymentNotificationRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ToInput merges body and query values; the query wins because it is what the
// signature manifest is built from.
func (r PaymentNotificationRequest) ToInput(queryType, queryDataID, signature, requestID string, now time.Time) usecase.PaymentWebhookInput {
	typ := strings.TrimSpace(queryType)
	if typ == "" {
		typ = r.Type
	}
	dataID := strings.TrimSpace(queryDataID)
	if dataID == "" {
		dataID = r.Data.ID
	}
	return usecase.PaymentWebhookInput{
		Type:   typ,
		DataID: dataID,
		Signature: interfaces.WebhookSignature{
			Header:    signature,
			RequestID: requestID,
			DataID:    dataID,
			Now:       now,
		},
	}
}

// ResolveAgentWebhookType reads the type field of an AI agent webhook body.
func ResolveAgentWebhookType(body map[string]any) string {
	s, _ := body["type"].(string)
	return strings.TrimSpace(s)
}

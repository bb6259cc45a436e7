package response

import (
	"time"

	"socialdots/internal/domain/entities"
)

type LeadCreatedResponse struct {
	Status  string `json:"status"`
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
}

func FromCreatedLead(l entities.Lead) LeadCreatedResponse {
	return LeadCreatedResponse{Status: "success", LeadID: l.ID, Message: "Lead created successfully"}
}

type AgentWebhookResponse struct {
	Status string         `json:"status"`
	Result map[string]any `json:"result"`
}

func FromAgentResult(result map[string]any) AgentWebhookResponse {
	return AgentWebhookResponse{Status: "success", Result: result}
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlots(date string, slots []entities.TimeRange) SlotsResponse {
	out := SlotsResponse{Date: date, Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
			Label: s.Start.Format("3:04 PM"),
		})
	}
	return out
}

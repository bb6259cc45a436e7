package entities

// SideEffectKind names a best-effort action triggered by an order or lead.
type SideEffectKind string

const (
	SideEffectERPPushOrder        SideEffectKind = "erp.push_order"
	SideEffectAgentPaymentSuccess SideEffectKind = "agent.payment_success"
	SideEffectAgentNewLead        SideEffectKind = "agent.new_lead"
	SideEffectChatLeadCreated     SideEffectKind = "chat.lead_created"
	SideEffectChatOrderCreated    SideEffectKind = "chat.order_created"
)

// SideEffect is the unit of work handed to a dispatcher. It only carries ids so that a
// retried effect always acts on the current stored state.
type SideEffect struct {
	Kind    SideEffectKind `json:"kind"`
	OrderID string         `json:"order_id,omitempty"`
	LeadID  string         `json:"lead_id,omitempty"`
}

// SideEffectKinds lists every kind a worker must handle.
func SideEffectKinds() []SideEffectKind {
	return []SideEffectKind{
		SideEffectERPPushOrder,
		SideEffectAgentPaymentSuccess,
		SideEffectAgentNewLead,
		SideEffectChatLeadCreated,
		SideEffectChatOrderCreated,
	}
}

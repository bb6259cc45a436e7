package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SideEffectRunner executes one side effect against the current stored state and audits
// every outbound attempt in the agent log. A returned error asks the dispatcher to retry,
// except interfaces.ErrUnknownSideEffect.
type SideEffectRunner struct {
	orders      interfaces.IOrderRepository
	leads       interfaces.ILeadRepository
	fulfillment IFulfillmentUseCase
	agent       interfaces.IAgentClient
	chat        interfaces.IChatNotifier
	logs        interfaces.IAgentLogRepository
	now         func() time.Time
}

var _ interfaces.ISideEffectRunner = (*SideEffectRunner)(nil)

func NewSideEffectRunner(
	orders interfaces.IOrderRepository,
	leads interfaces.ILeadRepository,
	fulfillment IFulfillmentUseCase,
	agent interfaces.IAgentClient,
	chat interfaces.IChatNotifier,
	logs interfaces.IAgentLogRepository,
) *SideEffectRunner {
	return &SideEffectRunner{
		orders:      orders,
		leads:       leads,
		fulfillment: fulfillment,
		agent:       agent,
		chat:        chat,
		logs:        logs,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (r *SideEffectRunner) Run(ctx context.Context, effect entities.SideEffect) error {
	var err error
	switch effect.Kind {
	case entities.SideEffectERPPushOrder:
		err = r.pushOrder(ctx, effect.OrderID)
	case entities.SideEffectAgentPaymentSuccess:
		err = r.notifyPaymentSuccess(ctx, effect.OrderID)
	case entities.SideEffectAgentNewLead:
		err = r.notifyNewLead(ctx, effect.LeadID)
	case entities.SideEffectChatLeadCreated:
		err = r.chatLeadCreated(ctx, effect.LeadID)
	case entities.SideEffectChatOrderCreated:
		err = r.chatOrderCreated(ctx, effect.OrderID)
	default:
		logrus.WithField("kind", effect.Kind).Error("[side-effect][runner] unknown kind, dropping")
		return fmt.Errorf("%w: %q", interfaces.ErrUnknownSideEffect, effect.Kind)
	}

	if errors.Is(err, interfaces.ErrNotConfigured) {
		logrus.WithError(err).WithField("kind", effect.Kind).Warn("[side-effect][runner] integration not configured, skipping")
		return nil
	}
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrLeadNotFound) {
		logrus.WithError(err).WithFields(logrus.Fields{"kind": effect.Kind, "order_id": effect.OrderID, "lead_id": effect.LeadID}).Warn("[side-effect][runner] subject vanished, dropping")
		return nil
	}
	return err
}

func (r *SideEffectRunner) pushOrder(ctx context.Context, orderID string) error {
	err := r.fulfillment.PushOrder(ctx, orderID)
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, interfaces.ErrNotConfigured) {
		return err
	}
	entry := entities.AgentLog{
		LogType:        entities.AgentLogTypeERP,
		UserIdentifier: orderID,
		MessageContent: "ERP push: " + orderID,
		Status:         entities.AgentLogStatusSent,
	}
	if err != nil {
		entry.Status = entities.AgentLogStatusFailed
		entry.ResponseContent = err.Error()
	}
	r.audit(ctx, entry)
	return err
}

func (r *SideEffectRunner) notifyPaymentSuccess(ctx context.Context, orderID string) error {
	order, err := r.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	amount, _ := order.Amount.Float64()
	payload := map[string]any{
		"order_id":       order.OrderID,
		"customer_name":  order.CustomerName,
		"customer_email": order.CustomerEmail,
		"amount":         amount,
		"service":        nullable(order.ServiceName),
		"payment_id":     order.PaymentID,
	}
	resp, err := r.agent.NotifyPaymentSuccess(ctx, payload)
	return r.auditAgentCall(ctx, err, resp, entities.AgentLog{
		LogType:        entities.AgentLogTypeNotification,
		UserIdentifier: order.CustomerEmail,
		MessageContent: "Payment success notification: " + order.OrderID,
		Payload:        payload,
	})
}

func (r *SideEffectRunner) notifyNewLead(ctx context.Context, leadID string) error {
	lead, err := r.loadLead(ctx, leadID)
	if err != nil {
		return err
	}
	payload := map[string]any{
		"lead_id":          lead.ID,
		"name":             lead.Name,
		"email":            lead.Email,
		"phone":            lead.Phone,
		"company":          lead.Company,
		"service_interest": nullable(lead.ServiceInterest),
		"message":          lead.Message,
		"source":           lead.Source,
	}
	resp, err := r.agent.NotifyNewLead(ctx, payload)
	return r.auditAgentCall(ctx, err, resp, entities.AgentLog{
		LogType:        entities.AgentLogTypeNotification,
		UserIdentifier: lead.Email,
		MessageContent: "New lead notification: " + lead.Name,
		Payload:        payload,
	})
}

func (r *SideEffectRunner) chatLeadCreated(ctx context.Context, leadID string) error {
	lead, err := r.loadLead(ctx, leadID)
	if err != nil {
		return err
	}
	return r.postChat(ctx, lead.Email, FormatLeadMessage(lead))
}

func (r *SideEffectRunner) chatOrderCreated(ctx context.Context, orderID string) error {
	order, err := r.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return r.postChat(ctx, order.CustomerEmail, FormatOrderMessage(order))
}

func (r *SideEffectRunner) postChat(ctx context.Context, user, text string) error {
	err := r.chat.Notify(ctx, text)
	if errors.Is(err, interfaces.ErrNotConfigured) {
		return err
	}
	entry := entities.AgentLog{
		LogType:        entities.AgentLogTypeChat,
		UserIdentifier: user,
		MessageContent: text,
		Status:         entities.AgentLogStatusSent,
	}
	if err != nil {
		entry.Status = entities.AgentLogStatusFailed
		entry.ResponseContent = err.Error()
	}
	r.audit(ctx, entry)
	return err
}

func (r *SideEffectRunner) auditAgentCall(ctx context.Context, callErr error, resp interfaces.AgentResponse, entry entities.AgentLog) error {
	if errors.Is(callErr, interfaces.ErrNotConfigured) {
		return callErr
	}
	entry.Status = entities.AgentLogStatusSent
	if callErr != nil {
		entry.Status = entities.AgentLogStatusFailed
		entry.ResponseContent = callErr.Error()
	} else {
		entry.ResponseContent = responseText(resp)
	}
	r.audit(ctx, entry)
	return callErr
}

// audit appends entry to the agent log. A failed append is logged and ignored.
func (r *SideEffectRunner) audit(ctx context.Context, entry entities.AgentLog) {
	if r.logs == nil {
		return
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = r.now()
	if _, err := r.logs.Append(ctx, entry); err != nil {
		logrus.WithError(err).WithField("log_type", entry.LogType).Warn("[side-effect][runner] agent log append failed")
	}
}

func (r *SideEffectRunner) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OrderID == "" {
		return entities.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return o, nil
}

func (r *SideEffectRunner) loadLead(ctx context.Context, leadID string) (entities.Lead, error) {
	l, err := r.leads.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, fmt.Errorf("%w: %s", ErrLeadNotFound, leadID)
	}
	return l, nil
}

func responseText(resp interfaces.AgentResponse) string {
	if len(resp) == 0 {
		return ""
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return ""
	}
	return string(b)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

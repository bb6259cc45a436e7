package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type runnerMocks struct {
	orders *mock_interfaces.MockIOrderRepository
	leads  *mock_interfaces.MockILeadRepository
	erp    *mock_interfaces.MockIERPClient
	agent  *mock_interfaces.MockIAgentClient
	chat   *mock_interfaces.MockIChatNotifier
	logs   *mock_interfaces.MockIAgentLogRepository
}

func newRunner(ctrl *gomock.Controller) (*SideEffectRunner, runnerMocks) {
	m := runnerMocks{
		orders: mock_interfaces.NewMockIOrderRepository(ctrl),
		leads:  mock_interfaces.NewMockILeadRepository(ctrl),
		erp:    mock_interfaces.NewMockIERPClient(ctrl),
		agent:  mock_interfaces.NewMockIAgentClient(ctrl),
		chat:   mock_interfaces.NewMockIChatNotifier(ctrl),
		logs:   mock_interfaces.NewMockIAgentLogRepository(ctrl),
	}
	r := NewSideEffectRunner(m.orders, m.leads, NewFulfillmentUseCase(m.orders, m.erp), m.agent, m.chat, m.logs)
	r.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return r, m
}

func expectAudit(t *testing.T, m runnerMocks, logType entities.AgentLogType, status entities.AgentLogStatus) {
	t.Helper()
	m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.AgentLog) (entities.AgentLog, error) {
			if l.ID == "" || l.CreatedAt.IsZero() {
				t.Fatalf("expected id and timestamp on audit row: %+v", l)
			}
			if l.LogType != logType || l.Status != status {
				t.Fatalf("expected %s/%s audit row, got %s/%s", logType, status, l.LogType, l.Status)
			}
			return l, nil
		},
	)
}

func sampleLead() entities.Lead {
	return entities.Lead{ID: "lead-1", Name: "Ana", Email: "ana@example.com", Status: entities.LeadStatusNew, Source: "contact_form"}
}

func TestSideEffectRunner_Chat(t *testing.T) {
	t.Run("lead message is posted and audited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(sampleLead(), nil)
		m.chat.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, text string) error {
			if !strings.HasPrefix(text, "🎯 *New Lead Created*") || !strings.Contains(text, "*Name:* Ana") {
				t.Fatalf("unexpected message: %q", text)
			}
			return nil
		})
		expectAudit(t, m, entities.AgentLogTypeChat, entities.AgentLogStatusSent)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectChatLeadCreated, LeadID: "lead-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("chat failure is audited and retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Amount: decimal.NewFromInt(10)}, nil)
		m.chat.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("500"))
		expectAudit(t, m, entities.AgentLogTypeChat, entities.AgentLogStatusFailed)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectChatOrderCreated, OrderID: "SD1"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unconfigured chat is skipped without audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(sampleLead(), nil)
		m.chat.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.Wrap(interfaces.ErrNotConfigured, "slack"))

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectChatLeadCreated, LeadID: "lead-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("vanished lead is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectChatLeadCreated, LeadID: "lead-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSideEffectRunner_Agent(t *testing.T) {
	t.Run("new lead payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(sampleLead(), nil)
		m.agent.EXPECT().NotifyNewLead(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload map[string]any) (interfaces.AgentResponse, error) {
				if payload["lead_id"] != "lead-1" || payload["email"] != "ana@example.com" {
					t.Fatalf("unexpected payload: %v", payload)
				}
				if payload["service_interest"] != nil {
					t.Fatalf("expected null service interest, got %v", payload["service_interest"])
				}
				return interfaces.AgentResponse{"status": "ok"}, nil
			},
		)
		expectAudit(t, m, entities.AgentLogTypeNotification, entities.AgentLogStatusSent)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectAgentNewLead, LeadID: "lead-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("payment success failure is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", PaymentID: "pay-1", Amount: decimal.RequireFromString("12.50")}, nil)
		m.agent.EXPECT().NotifyPaymentSuccess(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload map[string]any) (interfaces.AgentResponse, error) {
				if payload["payment_id"] != "pay-1" || payload["amount"] != 12.5 {
					t.Fatalf("unexpected payload: %v", payload)
				}
				return nil, errors.New("timeout")
			},
		)
		expectAudit(t, m, entities.AgentLogTypeNotification, entities.AgentLogStatusFailed)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectAgentPaymentSuccess, OrderID: "SD1"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSideEffectRunner_ERP(t *testing.T) {
	t.Run("push failure is audited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(paidServiceOrder(), nil)
		m.erp.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", errors.New("erp down"))
		expectAudit(t, m, entities.AgentLogTypeERP, entities.AgentLogStatusFailed)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectERPPushOrder, OrderID: "SD1"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unconfigured erp is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(paidServiceOrder(), nil)
		m.erp.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", errors.Wrap(interfaces.ErrNotConfigured, "erp"))

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectERPPushOrder, OrderID: "SD1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unpaid order is audited as sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newRunner(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusCancelled}, nil)
		expectAudit(t, m, entities.AgentLogTypeERP, entities.AgentLogStatusSent)

		if err := r.Run(context.Background(), entities.SideEffect{Kind: entities.SideEffectERPPushOrder, OrderID: "SD1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSideEffectRunner_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, _ := newRunner(ctrl)

	err := r.Run(context.Background(), entities.SideEffect{Kind: "email.send"})
	if !errors.Is(err, interfaces.ErrUnknownSideEffect) {
		t.Fatalf("expected ErrUnknownSideEffect, got %v", err)
	}
}

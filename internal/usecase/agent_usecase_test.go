package usecase

import (
	"context"
	"errors"
	"testing"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type agentMocks struct {
	agent *mock_interfaces.MockIAgentClient
	logs  *mock_interfaces.MockIAgentLogRepository
	leads *mock_interfaces.MockILeadRepository
}

func newAgentUseCase(ctrl *gomock.Controller) (*AgentUseCase, agentMocks) {
	m := agentMocks{
		agent: mock_interfaces.NewMockIAgentClient(ctrl),
		logs:  mock_interfaces.NewMockIAgentLogRepository(ctrl),
		leads: mock_interfaces.NewMockILeadRepository(ctrl),
	}
	return NewAgentUseCase(m.agent, m.logs, NewLeadUseCase(m.leads, nil, nil)), m
}

func TestAgentUseCase_WhatsApp(t *testing.T) {
	t.Run("reply is sent back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgentUseCase(ctrl)

		var statuses []entities.AgentLogStatus
		m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, l entities.AgentLog) (entities.AgentLog, error) {
				statuses = append(statuses, l.Status)
				return l, nil
			},
		)
		m.agent.EXPECT().ProcessChatbotMessage(gomock.Any(), "+15550001", "hi", map[string]any{"channel": "whatsapp", "phone_number": "+15550001"}).
			Return(interfaces.AgentResponse{"response": "Hello!"}, nil)
		m.agent.EXPECT().SendWhatsApp(gomock.Any(), "+15550001", "Hello!").Return(interfaces.AgentResponse{"status": "queued"}, nil)

		res, err := uc.HandleWebhook(context.Background(), AgentWebhookWhatsApp, map[string]any{"phone_number": "+15550001", "message": "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res["response"] != "Hello!" {
			t.Fatalf("unexpected result: %v", res)
		}
		want := []entities.AgentLogStatus{entities.AgentLogStatusReceived, entities.AgentLogStatusProcessed, entities.AgentLogStatusSent}
		for i := range want {
			if statuses[i] != want[i] {
				t.Fatalf("expected audit statuses %v, got %v", want, statuses)
			}
		}
	})

	t.Run("empty reply is not sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgentUseCase(ctrl)

		m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).Times(2).Return(entities.AgentLog{}, nil)
		m.agent.EXPECT().ProcessChatbotMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.AgentResponse{}, nil)

		if _, err := uc.HandleWebhook(context.Background(), AgentWebhookWhatsApp, map[string]any{"phone_number": "1", "message": "hi"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAgentUseCase(ctrl)

		if _, err := uc.HandleWebhook(context.Background(), AgentWebhookWhatsApp, map[string]any{"message": "hi"}); !errors.Is(err, ErrInvalidAgentWebhook) {
			t.Fatalf("expected ErrInvalidAgentWebhook, got %v", err)
		}
	})
}

func TestAgentUseCase_Chatbot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAgentUseCase(ctrl)

	m.agent.EXPECT().ProcessChatbotMessage(gomock.Any(), "u1", "pricing?", map[string]any{"page": "/pricing"}).Return(nil, errors.New("timeout"))
	m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.AgentLog) (entities.AgentLog, error) {
			if l.LogType != entities.AgentLogTypeChatbot || l.Status != entities.AgentLogStatusFailed {
				t.Fatalf("unexpected audit row: %+v", l)
			}
			return l, nil
		},
	)

	_, err := uc.HandleWebhook(context.Background(), AgentWebhookChatbot, map[string]any{
		"user_id": "u1", "message": "pricing?", "context": map[string]any{"page": "/pricing"},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAgentUseCase_OrderInquiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAgentUseCase(ctrl)

	m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			if l.Source != entities.LeadSourceAIAgent || l.Name != "Ana" {
				t.Fatalf("unexpected lead: %+v", l)
			}
			return l, nil
		},
	)

	res, err := uc.HandleWebhook(context.Background(), AgentWebhookOrderInquiry, map[string]any{"name": "Ana", "email": "ana@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["status"] != "created" || res["lead_id"] == "" {
		t.Fatalf("unexpected result: %v", res)
	}
}

func TestAgentUseCase_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newAgentUseCase(ctrl)

	res, err := uc.HandleWebhook(context.Background(), "telegram_message", nil)
	if err != nil || res != nil {
		t.Fatalf("expected nil result, got %v (%v)", res, err)
	}
}

func TestAgentUseCase_ListLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAgentUseCase(ctrl)

	m.logs.EXPECT().List(gomock.Any(), entities.AgentLogTypeERP, DefaultAgentLogLimit).Return([]entities.AgentLog{{ID: "1"}}, nil)

	logs, err := uc.ListLogs(context.Background(), entities.AgentLogTypeERP, 0)
	if err != nil || len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d (%v)", len(logs), err)
	}
}

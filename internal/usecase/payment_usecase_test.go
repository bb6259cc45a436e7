package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	orders     *mock_interfaces.MockIOrderRepository
	gateway    *mock_interfaces.MockIPaymentGateway
	verifier   *mock_interfaces.MockIWebhookVerifier
	dispatcher *mock_interfaces.MockISideEffectDispatcher
}

func newPaymentUseCase(ctrl *gomock.Controller) (*PaymentUseCase, paymentMocks) {
	m := paymentMocks{
		orders:     mock_interfaces.NewMockIOrderRepository(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
		verifier:   mock_interfaces.NewMockIWebhookVerifier(ctrl),
		dispatcher: mock_interfaces.NewMockISideEffectDispatcher(ctrl),
	}
	uc := NewPaymentUseCase(m.orders, m.gateway, m.verifier, m.dispatcher)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func pendingOrder(id string) entities.Order {
	return entities.Order{OrderID: id, Status: entities.OrderStatusPending}
}

func pricedOrder(id string) entities.Order {
	return entities.Order{OrderID: id, Status: entities.OrderStatusPending, Amount: decimal.RequireFromString("449.50"), Currency: "CAD"}
}

func expectFulfillmentEffects(m paymentMocks, orderID string) {
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), entities.SideEffect{Kind: entities.SideEffectERPPushOrder, OrderID: orderID}).Return(nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), entities.SideEffect{Kind: entities.SideEffectAgentPaymentSuccess, OrderID: orderID}).Return(nil)
}

func TestPaymentUseCase_ConfirmPayment(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{}, nil)

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("already paid is returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusProcessing}, nil)

		order, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1")
		if err != nil || order.Status != entities.OrderStatusProcessing {
			t.Fatalf("expected processing order, got %+v (%v)", order, err)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", ""); !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("payment of another order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD2"}, nil)

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1"); !errors.Is(err, ErrPaymentOrderMismatch) {
			t.Fatalf("expected ErrPaymentOrderMismatch, got %v", err)
		}
	})

	t.Run("payment without external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved"}, nil)

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1"); !errors.Is(err, ErrPaymentOrderMismatch) {
			t.Fatalf("expected ErrPaymentOrderMismatch, got %v", err)
		}
	})

	t.Run("amount or currency differs from the order", func(t *testing.T) {
		tests := []struct {
			name     string
			amount   string
			currency string
		}{
			{"underpaid", "1.00", "CAD"},
			{"other currency", "449.50", "USD"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc, m := newPaymentUseCase(ctrl)
				m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pricedOrder("SD1"), nil)
				m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{
					ID: "pay-1", Status: "approved", OrderID: "SD1",
					Amount: decimal.RequireFromString(tt.amount), Currency: tt.currency,
				}, nil)

				order, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1")
				if !errors.Is(err, ErrPaymentAmountMismatch) || order.Status != entities.OrderStatusPending {
					t.Fatalf("expected pending order and ErrPaymentAmountMismatch, got %+v (%v)", order, err)
				}
			})
		}
	})

	t.Run("matching amount marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pricedOrder("SD1"), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{
			ID: "pay-1", Status: "approved", OrderID: "SD1", Amount: decimal.RequireFromString("449.5"), Currency: "cad",
		}, nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid}, nil)
		expectFulfillmentEffects(m, "SD1")

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pending payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "in_process", OrderID: "SD1"}, nil)

		order, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1")
		if !errors.Is(err, ErrPaymentNotApproved) || order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending order and ErrPaymentNotApproved, got %+v (%v)", order, err)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{}, errors.New("502"))

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1"); !errors.Is(err, ErrPaymentLookupFailed) {
			t.Fatalf("expected ErrPaymentLookupFailed, got %v", err)
		}
	})

	t.Run("approved marks paid and dispatches once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", uc.now()).Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid, PaymentID: "pay-1"}, nil)
		expectFulfillmentEffects(m, "SD1")

		order, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1")
		if err != nil || order.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid order, got %+v (%v)", order, err)
		}
	})

	t.Run("concurrent confirmation does not dispatch again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		gomock.InOrder(
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil),
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid}, nil),
		)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{}, nil)

		order, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1")
		if err != nil || order.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid order, got %+v (%v)", order, err)
		}
	})

	t.Run("cancelled order cannot be paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		gomock.InOrder(
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil),
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusCancelled}, nil),
		)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{}, nil)

		if _, err := uc.ConfirmPayment(context.Background(), "SD1", "pay-1"); !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})
}

func TestPaymentUseCase_HandleWebhook(t *testing.T) {
	sig := interfaces.WebhookSignature{Header: "ts=1,v1=abc", RequestID: "req", DataID: "pay-1"}

	t.Run("bad signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(sig).Return(errors.New("mismatch"))

		err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig})
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("other topics are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "merchant_order", DataID: "1", Signature: sig}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "rejected", OrderID: "SD1"}, nil)

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lookup failure asks for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{}, errors.New("timeout"))

		err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig})
		if !errors.Is(err, ErrPaymentLookupFailed) {
			t.Fatalf("expected ErrPaymentLookupFailed, got %v", err)
		}
	})

	t.Run("approved marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid}, nil)
		expectFulfillmentEffects(m, "SD1")

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown order is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD9"}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD9").Return(entities.Order{}, nil)

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("redelivery after the order was paid changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil).Times(2)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil).Times(2)
		gomock.InOrder(
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil),
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid, PaymentID: "pay-1"}, nil),
		)
		m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid}, nil).Times(1)
		expectFulfillmentEffects(m, "SD1")

		in := PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}
		for i := 0; i < 2; i++ {
			if err := uc.HandleWebhook(context.Background(), in); err != nil {
				t.Fatalf("delivery %d: unexpected error: %v", i+1, err)
			}
		}
	})

	t.Run("redelivery racing the first one does not dispatch again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{ID: "pay-1", Status: "approved", OrderID: "SD1"}, nil)
		gomock.InOrder(
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pendingOrder("SD1"), nil),
			m.orders.EXPECT().MarkPaid(gomock.Any(), "SD1", "pay-1", gomock.Any()).Return(entities.Order{}, nil),
			m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPaid}, nil),
		)

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong amount is acknowledged without paying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl)
		m.verifier.EXPECT().Verify(gomock.Any()).Return(nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(interfaces.PaymentInfo{
			ID: "pay-1", Status: "approved", OrderID: "SD1", Amount: decimal.RequireFromString("10"), Currency: "CAD",
		}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(pricedOrder("SD1"), nil)

		if err := uc.HandleWebhook(context.Background(), PaymentWebhookInput{Type: "payment", DataID: "pay-1", Signature: sig}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

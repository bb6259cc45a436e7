package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"socialdots/internal/adapter/http/handlers/mocks"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	content := mocks.NewMockIContentUseCase(ctrl)
	expectSite(content)

	h := NewPaymentHandler(payments, content)
	r := newPageRouter(t)
	r.GET("/payment/success", h.Success)
	r.GET("/payment/cancelled", h.Cancelled)
	r.POST("/webhooks/mercadopago", h.Webhook)
	return r, payments
}

func paidOrder() entities.Order {
	return entities.Order{
		OrderID:      "ORD-1A2B3C4D",
		CustomerName: "Ana",
		Lines: []entities.OrderLine{
			{Name: "Web Development - Basic", UnitPrice: decimal.NewFromInt(500), Quantity: 2},
		},
		Amount:   decimal.NewFromInt(1000),
		Currency: "CAD",
		Status:   entities.OrderStatusPaid,
	}
}

func TestPaymentHandler_Success(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		r, payments := newPaymentRouter(t)
		payments.EXPECT().ConfirmPayment(gomock.Any(), "ORD-1A2B3C4D", "pay-9").Return(paidOrder(), nil)

		w := serve(r, http.MethodGet, "/payment/success?order_id=ORD-1A2B3C4D&payment_id=pay-9", nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !strings.Contains(body, "was received") || !strings.Contains(body, "$1000.00") {
			t.Fatalf("unexpected page %s", body)
		}
	})

	t.Run("processor query names", func(t *testing.T) {
		r, payments := newPaymentRouter(t)
		payments.EXPECT().ConfirmPayment(gomock.Any(), "ORD-1A2B3C4D", "col-1").Return(paidOrder(), nil)

		w := serve(r, http.MethodGet, "/payment/success?external_reference=ORD-1A2B3C4D&collection_id=col-1", nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not approved yet", func(t *testing.T) {
		r, payments := newPaymentRouter(t)
		pending := paidOrder()
		pending.Status = entities.OrderStatusPending
		payments.EXPECT().ConfirmPayment(gomock.Any(), "ORD-1A2B3C4D", "pay-9").Return(pending, usecase.ErrPaymentNotApproved)

		w := serve(r, http.MethodGet, "/payment/success?order_id=ORD-1A2B3C4D&payment_id=pay-9", nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "is being confirmed") {
			t.Fatalf("expected pending notice, got %s", w.Body.String())
		}
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown order", usecase.ErrOrderNotFound, http.StatusNotFound},
		{"foreign payment", usecase.ErrPaymentOrderMismatch, http.StatusBadRequest},
		{"wrong amount", usecase.ErrPaymentAmountMismatch, http.StatusBadRequest},
		{"closed order", usecase.ErrOrderNotPayable, http.StatusConflict},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, payments := newPaymentRouter(t)
			payments.EXPECT().ConfirmPayment(gomock.Any(), "ORD-1", "pay-1").Return(entities.Order{}, tt.err)

			w := serve(r, http.MethodGet, "/payment/success?order_id=ORD-1&payment_id=pay-1", nil, "")

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestPaymentHandler_Cancelled(t *testing.T) {
	r, _ := newPaymentRouter(t)

	w := serve(r, http.MethodGet, "/payment/cancelled?order_id=ORD-1A2B3C4D", nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ORD-1A2B3C4D") {
		t.Fatalf("expected order id on the page, got %s", w.Body.String())
	}
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("query values and signature headers", func(t *testing.T) {
		r, payments := newPaymentRouter(t)
		payments.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.PaymentWebhookInput) error {
			if in.Type != "payment" || in.DataID != "123" {
				t.Fatalf("unexpected input %+v", in)
			}
			if in.Signature.Header != "ts=1700000000,v1=abc" || in.Signature.RequestID != "req-1" || in.Signature.DataID != "123" {
				t.Fatalf("unexpected signature %+v", in.Signature)
			}
			return nil
		})

		req := strings.NewReader(`{"type":"payment","data":{"id":"999"}}`)
		w := serveWithHeaders(r, http.MethodPost, "/webhooks/mercadopago?type=payment&data.id=123", req, map[string]string{
			"Content-Type": "application/json",
			"x-signature":  "ts=1700000000,v1=abc",
			"x-request-id": "req-1",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body only", func(t *testing.T) {
		r, payments := newPaymentRouter(t)
		payments.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.PaymentWebhookInput) error {
			if in.Type != "payment" || in.DataID != "999" {
				t.Fatalf("unexpected input %+v", in)
			}
			return nil
		})

		w := serveJSON(r, http.MethodPost, "/webhooks/mercadopago", `{"type":"payment","data":{"id":"999"}}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	tests := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidWebhookSignature, http.StatusUnauthorized},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrPaymentLookupFailed, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r, payments := newPaymentRouter(t)
			payments.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(tt.err)

			w := serveJSON(r, http.MethodPost, "/webhooks/mercadopago?type=payment&data.id=1", `{}`)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

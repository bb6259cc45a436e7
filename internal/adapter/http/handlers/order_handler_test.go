package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/adapter/http/handlers/mocks"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIOrderUseCase(gomock.NewController(t))
	h := NewOrderHandler(uc)
	r := gin.New()
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:order_id", h.GetOrder)
	r.PATCH("/orders/:order_id/status", h.UpdateOrderStatus)
	return r, uc
}

func TestOrderHandler_ListOrders(t *testing.T) {
	r, uc := newOrderRouter(t)
	uc.EXPECT().List(gomock.Any(), usecase.DefaultOrderListLimit).Return([]entities.Order{
		{
			OrderID: "ORD-AAAA1111",
			Lines: []entities.OrderLine{
				{Name: "SEO - Growth", UnitPrice: decimal.NewFromInt(300), MaintenanceFee: decimal.NewFromInt(50), Quantity: 2},
			},
			Amount:    decimal.NewFromInt(700),
			Currency:  "CAD",
			Status:    entities.OrderStatusPending,
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}, nil)

	w := serve(r, http.MethodGet, "/orders", nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var orders []response.OrderResponse
	_ = json.Unmarshal(w.Body.Bytes(), &orders)
	if len(orders) != 1 || orders[0].Amount != 700 || orders[0].Lines[0].Subtotal != 700 {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	r, uc := newOrderRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "ORD-NOPE").Return(entities.Order{}, usecase.ErrOrderNotFound)

	w := serve(r, http.MethodGet, "/orders/ORD-NOPE", nil, "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		call   bool
		status int
	}{
		{name: "completes", body: `{"status":"completed"}`, call: true, status: http.StatusOK},
		{name: "missing status", body: `{}`, status: http.StatusBadRequest},
		{name: "unknown status", body: `{"status":"shipped"}`, status: http.StatusBadRequest},
		{name: "not allowed", body: `{"status":"paid"}`, err: usecase.ErrOrderTransitionNotAllowed, call: true, status: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newOrderRouter(t)
			if tt.call {
				uc.EXPECT().UpdateStatus(gomock.Any(), "ORD-AAAA1111", gomock.Any()).
					Return(entities.Order{OrderID: "ORD-AAAA1111", Status: entities.OrderStatusCompleted}, tt.err)
			}

			w := serveJSON(r, http.MethodPatch, "/orders/ORD-AAAA1111/status", tt.body)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

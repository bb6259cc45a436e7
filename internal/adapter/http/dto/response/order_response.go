package response

import (
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
)

type OrderLineResponse struct {
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	MaintenanceFee float64 `json:"maintenance_fee,omitempty"`
	Subtotal       float64 `json:"subtotal"`
}

type OrderResponse struct {
	OrderID           string              `json:"order_id"`
	CustomerName      string              `json:"customer_name"`
	CustomerEmail     string              `json:"customer_email"`
	CustomerPhone     string              `json:"customer_phone,omitempty"`
	ServiceName       string              `json:"service_name,omitempty"`
	PricingPlanName   string              `json:"pricing_plan_name,omitempty"`
	Lines             []OrderLineResponse `json:"lines"`
	Amount            float64             `json:"amount"`
	Currency          string              `json:"currency"`
	Status            string              `json:"status"`
	CheckoutSessionID string              `json:"checkout_session_id,omitempty"`
	PaymentID         string              `json:"payment_id,omitempty"`
	ERPDocumentID     string              `json:"erp_document_id,omitempty"`
	ERPProjectID      string              `json:"erp_project_id,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	PaidAt            *time.Time          `json:"paid_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{
			Name:           l.Name,
			UnitPrice:      l.UnitPrice.InexactFloat64(),
			Quantity:       l.Quantity,
			MaintenanceFee: l.MaintenanceFee.InexactFloat64(),
			Subtotal:       l.Subtotal().InexactFloat64(),
		})
	}
	return OrderResponse{
		OrderID:           o.OrderID,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		ServiceName:       o.ServiceName,
		PricingPlanName:   o.PricingPlanName,
		Lines:             lines,
		Amount:            o.Amount.InexactFloat64(),
		Currency:          o.Currency,
		Status:            string(o.Status),
		CheckoutSessionID: o.CheckoutSessionID,
		PaymentID:         o.PaymentID,
		ERPDocumentID:     o.ERPDocumentID,
		ERPProjectID:      o.ERPProjectID,
		Notes:             o.Notes,
		PaidAt:            o.PaidAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type CheckoutResponse struct {
	CheckoutURL string  `json:"checkout_url"`
	SessionID   string  `json:"session_id"`
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		CheckoutURL: r.CheckoutURL,
		SessionID:   r.Order.CheckoutSessionID,
		OrderID:     r.Order.OrderID,
		Amount:      r.Order.Amount.InexactFloat64(),
		Currency:    r.Order.Currency,
	}
}

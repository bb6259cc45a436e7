package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of an order placed through the cart.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// DefaultCurrency is charged when a checkout does not name one.
const DefaultCurrency = "CAD"

// orderTransitions lists the statuses reachable from each status. Orders only move
// forward along pending, paid, processing, completed or sideways to cancelled/refunded.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusCompleted:  {OrderStatusRefunded},
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PredecessorsOf returns every status that may transition into next.
func PredecessorsOf(next OrderStatus) []OrderStatus {
	var out []OrderStatus
	for _, from := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusCompleted} {
		if from.CanTransitionTo(next) {
			out = append(out, from)
		}
	}
	return out
}

// IsPaidOrLater reports whether payment has been recorded for the order.
func (s OrderStatus) IsPaidOrLater() bool {
	switch s {
	case OrderStatusPaid, OrderStatusProcessing, OrderStatusCompleted, OrderStatusRefunded:
		return true
	}
	return false
}

// OrderLine is one priced cart entry frozen on the order.
type OrderLine struct {
	ServiceID       string          `json:"service_id,omitempty"`
	PricingOptionID string          `json:"pricing_option_id,omitempty"`
	PricingPlanID   string          `json:"pricing_plan_id,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	MaintenanceFee  decimal.Decimal `json:"maintenance_fee"`
}

// Subtotal is unit price plus maintenance fee, times quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	q := decimal.NewFromInt(int64(l.Quantity))
	return l.UnitPrice.Mul(q).Add(l.MaintenanceFee.Mul(q))
}

// CartTotal sums the subtotal of every line.
func CartTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Order is a purchase created at checkout and advanced by payment confirmation.
//
// Storage model (DynamoDB):
//   - PK: order_id
//
// Amount is always CartTotal(Lines) at creation time.
type Order struct {
	OrderID           string          `json:"order_id"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	CustomerPhone     string          `json:"customer_phone,omitempty"`
	ServiceID         string          `json:"service_id,omitempty"`
	ServiceName       string          `json:"service_name,omitempty"`
	PricingPlanID     string          `json:"pricing_plan_id,omitempty"`
	PricingPlanName   string          `json:"pricing_plan_name,omitempty"`
	Lines             []OrderLine     `json:"lines"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            OrderStatus     `json:"status"`
	CheckoutSessionID string          `json:"checkout_session_id,omitempty"`
	PaymentID         string          `json:"payment_id,omitempty"`
	ERPDocumentID     string          `json:"erp_document_id,omitempty"`
	ERPProjectID      string          `json:"erp_project_id,omitempty"`
	ERPTasks          []string        `json:"erp_tasks,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

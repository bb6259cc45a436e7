package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutLineItem is one line shown on the hosted checkout page.
type CheckoutLineItem struct {
	ID          string
	Title       string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type CheckoutSessionInput struct {
	OrderID         string
	Currency        string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Items           []CheckoutLineItem
	SuccessURL      string
	CancelURL       string
	PendingURL      string
	NotificationURL string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentInfo is the processor's view of a payment, fetched by id.
type PaymentInfo struct {
	ID           string
	Status       string
	StatusDetail string
	OrderID      string
	Amount       decimal.Decimal
	Currency     string
}

// IPaymentGateway abstracts the hosted-checkout payment processor (Mercado Pago).
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (PaymentInfo, error)
}

// WebhookSignature carries what the processor signs on each notification.
type WebhookSignature struct {
	Header    string
	RequestID string
	DataID    string
	Now       time.Time
}

// IWebhookVerifier authenticates payment notifications.
type IWebhookVerifier interface {
	Verify(sig WebhookSignature) error
}

package usecase

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrPaymentNotApproved      = errors.New("payment is not approved")
	ErrPaymentOrderMismatch    = errors.New("payment belongs to another order")
	ErrPaymentAmountMismatch   = errors.New("payment amount does not match the order")
	ErrOrderNotPayable         = errors.New("order can no longer be paid")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrPaymentLookupFailed     = errors.New("payment could not be retrieved")
)

const (
	paymentStatusApproved = "approved"
	webhookTypePayment    = "payment"
)

// PaymentWebhookInput is a payment processor notification.
type PaymentWebhookInput struct {
	Type      string
	DataID    string
	Signature interfaces.WebhookSignature
}

// IPaymentUseCase records payments against orders.
//
// Both entry points apply the same pending to paid transition, which is a conditional
// write: a second confirmation of the same order changes nothing and dispatches nothing.
type IPaymentUseCase interface {
	ConfirmPayment(ctx context.Context, orderID, paymentID string) (entities.Order, error)
	HandleWebhook(ctx context.Context, in PaymentWebhookInput) error
}

type PaymentUseCase struct {
	orders     interfaces.IOrderRepository
	gateway    interfaces.IPaymentGateway
	verifier   interfaces.IWebhookVerifier
	dispatcher interfaces.ISideEffectDispatcher
	now        func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, verifier interfaces.IWebhookVerifier, dispatcher interfaces.ISideEffectDispatcher) *PaymentUseCase {
	return &PaymentUseCase{
		orders:     orders,
		gateway:    gateway,
		verifier:   verifier,
		dispatcher: dispatcher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ConfirmPayment handles the browser coming back from the hosted checkout. The payment
// is fetched from the processor again; query parameters are never trusted on their own.
func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, orderID, paymentID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	paymentID = strings.TrimSpace(paymentID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.OrderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status.IsPaidOrLater() {
		return order, nil
	}
	if paymentID == "" {
		return order, ErrPaymentNotApproved
	}

	info, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"order_id": orderID, "payment_id": paymentID}).Error("[payment][usecase] payment lookup failed")
		return order, fmt.Errorf("%w: %v", ErrPaymentLookupFailed, err)
	}
	if info.OrderID != orderID {
		return order, ErrPaymentOrderMismatch
	}
	if info.Status != paymentStatusApproved {
		logrus.WithFields(logrus.Fields{"order_id": orderID, "payment_id": paymentID, "status": info.Status}).Info("[payment][usecase] payment not approved yet")
		return order, ErrPaymentNotApproved
	}
	if err := checkPayment(order, info); err != nil {
		logrus.WithFields(logrus.Fields{"order_id": orderID, "payment_id": paymentID, "amount": info.Amount.String(), "currency": info.Currency}).Error("[payment][usecase] payment does not settle the order")
		return order, err
	}

	paid, _, err := u.markPaid(ctx, orderID, info.ID)
	return paid, err
}

// HandleWebhook authenticates a notification and, for approved payments, marks the
// referenced order paid. Notifications about other topics are acknowledged and ignored.
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, in PaymentWebhookInput) error {
	if err := u.verifier.Verify(in.Signature); err != nil {
		logrus.WithError(err).WithField("data_id", in.DataID).Warn("[payment][webhook] rejected notification")
		return fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
	}
	if in.Type != webhookTypePayment || strings.TrimSpace(in.DataID) == "" {
		logrus.WithFields(logrus.Fields{"type": in.Type, "data_id": in.DataID}).Debug("[payment][webhook] ignored notification")
		return nil
	}

	info, err := u.gateway.GetPayment(ctx, in.DataID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentLookupFailed, err)
	}
	log := logrus.WithFields(logrus.Fields{"payment_id": info.ID, "order_id": info.OrderID, "status": info.Status})
	if info.Status != paymentStatusApproved {
		log.Info("[payment][webhook] payment not approved, nothing to do")
		return nil
	}
	if info.OrderID == "" {
		log.Warn("[payment][webhook] approved payment without external reference")
		return nil
	}

	order, err := u.orders.GetByID(ctx, info.OrderID)
	if err != nil {
		return err
	}
	if order.OrderID == "" {
		log.Warn("[payment][webhook] payment for unknown order")
		return nil
	}
	if order.Status.IsPaidOrLater() {
		log.Info("[payment][webhook] order already paid, nothing to do")
		return nil
	}
	if err := checkPayment(order, info); err != nil {
		// Acknowledged: the processor will keep reporting the same payment.
		log.WithFields(logrus.Fields{"amount": info.Amount.String(), "currency": info.Currency}).Error("[payment][webhook] payment does not settle the order")
		return nil
	}

	_, applied, err := u.markPaid(ctx, info.OrderID, info.ID)
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrOrderNotPayable) {
		// Acknowledged: redelivery cannot change the outcome.
		log.WithError(err).Warn("[payment][webhook] payment cannot be applied")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithField("applied", applied).Info("[payment][webhook] processed")
	return nil
}

// checkPayment rejects an approved payment that cannot settle order. Payments that
// report no amount at all (mock gateway) are matched on the order id only.
func checkPayment(order entities.Order, info interfaces.PaymentInfo) error {
	if info.OrderID == "" || info.OrderID != order.OrderID {
		return ErrPaymentOrderMismatch
	}
	if info.Amount.IsZero() && info.Currency == "" {
		return nil
	}
	if !info.Amount.Equal(order.Amount) || !strings.EqualFold(info.Currency, order.Currency) {
		return ErrPaymentAmountMismatch
	}
	return nil
}

// markPaid applies the pending to paid transition once. applied is false when another
// confirmation got there first.
func (u *PaymentUseCase) markPaid(ctx context.Context, orderID, paymentID string) (entities.Order, bool, error) {
	paid, err := u.orders.MarkPaid(ctx, orderID, paymentID, u.now())
	if err != nil {
		return entities.Order{}, false, err
	}
	if paid.OrderID != "" {
		logrus.WithFields(logrus.Fields{"order_id": orderID, "payment_id": paymentID}).Info("[payment][usecase] order paid")
		dispatchAll(ctx, u.dispatcher,
			entities.SideEffect{Kind: entities.SideEffectERPPushOrder, OrderID: orderID},
			entities.SideEffect{Kind: entities.SideEffectAgentPaymentSuccess, OrderID: orderID},
		)
		return paid, true, nil
	}

	current, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if current.OrderID == "" {
		return entities.Order{}, false, ErrOrderNotFound
	}
	if current.Status.IsPaidOrLater() {
		return current, false, nil
	}
	return current, false, ErrOrderNotPayable
}

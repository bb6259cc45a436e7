package payments

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"socialdots/internal/infrastructure/config"
	"socialdots/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidPaymentID                = errors.New("invalid payment id")
)

const mockPaymentPrefix = "mock-"

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway creates hosted checkout preferences and reads payments back.
// A missing access token is reported when a call is made, not at construction.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentGetter
	mockMode    bool
	missing     bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.PaymentConfig) (*MercadoPagoGateway, error) {
	if cfg.MockEnabled() {
		logrus.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(cfg.AccessToken) == "" {
		logrus.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return &MercadoPagoGateway{missing: true}, nil
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		logrus.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, errors.Wrap(err, "mercado pago config")
	}
	logrus.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
	}, nil
}

func (g *MercadoPagoGateway) ready() error {
	if g == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}
	if g.missing {
		return ErrMissingMercadoPagoAccessToken
	}
	if g.preferences == nil || g.payments == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}
	return nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CheckoutSessionInput) (interfaces.CheckoutSession, error) {
	log := logrus.WithFields(logrus.Fields{"order_id": in.OrderID, "items": len(in.Items)})

	if g != nil && g.mockMode {
		session := interfaces.CheckoutSession{
			ID:  "mock-pref-" + in.OrderID,
			URL: mockSuccessURL(in.SuccessURL, in.OrderID),
		}
		log.WithField("session_id", session.ID).Info("[payment][gateway] mock checkout created")
		return session, nil
	}
	if err := g.ready(); err != nil {
		log.WithError(err).Error("[payment][gateway] checkout not possible")
		return interfaces.CheckoutSession{}, err
	}

	resp, err := g.preferences.Create(ctx, toPreferenceRequest(in))
	if err != nil {
		log.WithError(err).Error("[payment][gateway] preference create failed")
		return interfaces.CheckoutSession{}, errors.Wrap(err, "create preference")
	}
	log.WithField("session_id", resp.ID).Info("[payment][gateway] preference created")

	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.PaymentInfo, error) {
	paymentID = strings.TrimSpace(paymentID)

	if g != nil && g.mockMode {
		if !strings.HasPrefix(paymentID, mockPaymentPrefix) {
			return interfaces.PaymentInfo{}, ErrInvalidPaymentID
		}
		return interfaces.PaymentInfo{
			ID:           paymentID,
			Status:       "approved",
			StatusDetail: "accredited",
			OrderID:      strings.TrimPrefix(paymentID, mockPaymentPrefix),
		}, nil
	}
	if err := g.ready(); err != nil {
		return interfaces.PaymentInfo{}, err
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return interfaces.PaymentInfo{}, ErrInvalidPaymentID
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("payment_id", paymentID).Error("[payment][gateway] payment get failed")
		return interfaces.PaymentInfo{}, errors.Wrap(err, "get payment")
	}

	return interfaces.PaymentInfo{
		ID:           strconv.Itoa(resp.ID),
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
		OrderID:      resp.ExternalReference,
		Amount:       decimal.NewFromFloat(resp.TransactionAmount),
		Currency:     resp.CurrencyID,
	}, nil
}

func toPreferenceRequest(in interfaces.CheckoutSessionInput) preference.Request {
	items := make([]preference.ItemRequest, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			CurrencyID:  in.Currency,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
		})
	}

	return preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:  in.CustomerName,
			Email: in.CustomerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: in.SuccessURL,
			Failure: in.CancelURL,
			Pending: in.PendingURL,
		},
		AutoReturn:        "approved",
		ExternalReference: in.OrderID,
		NotificationURL:   in.NotificationURL,
		Metadata: map[string]any{
			"order_id":       in.OrderID,
			"customer_name":  in.CustomerName,
			"customer_phone": in.CustomerPhone,
		},
	}
}

// mockSuccessURL mimics the processor's redirect after an approved payment.
func mockSuccessURL(successURL, orderID string) string {
	u, err := url.Parse(successURL)
	if err != nil {
		return successURL
	}
	q := u.Query()
	q.Set("collection_status", "approved")
	q.Set("payment_id", mockPaymentPrefix+orderID)
	q.Set("external_reference", orderID)
	u.RawQuery = q.Encode()
	return u.String()
}

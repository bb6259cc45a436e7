package usecase

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomer     = errors.New("customer name and email are required")
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrCartItemNotFound    = errors.New("cart item references an unknown service or plan")
	ErrCartItemNotPriced   = errors.New("cart item has no price")
	ErrOrderIDExhausted    = errors.New("could not allocate a unique order id")
	ErrCheckoutUnavailable = errors.New("checkout session could not be created")
)

const maxOrderIDAttempts = 3

// CartItem references a purchasable thing; prices are always read from the store.
type CartItem struct {
	ServiceID       string
	PricingOptionID string
	PricingPlanID   string
	Quantity        int
}

type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Items         []CartItem
}

type CheckoutResult struct {
	Order       entities.Order
	CheckoutURL string
}

// CheckoutSettings are the site-wide values a checkout needs.
type CheckoutSettings struct {
	Currency string
	BaseURL  string
}

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	services   interfaces.IContentRepository[entities.Service]
	plans      interfaces.IContentRepository[entities.PricingPlan]
	orders     interfaces.IOrderRepository
	gateway    interfaces.IPaymentGateway
	dispatcher interfaces.ISideEffectDispatcher
	settings   CheckoutSettings
	newOrderID func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	services interfaces.IContentRepository[entities.Service],
	plans interfaces.IContentRepository[entities.PricingPlan],
	orders interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	dispatcher interfaces.ISideEffectDispatcher,
	settings CheckoutSettings,
) *CheckoutUseCase {
	if settings.Currency == "" {
		settings.Currency = entities.DefaultCurrency
	}
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")
	return &CheckoutUseCase{
		services:   services,
		plans:      plans,
		orders:     orders,
		gateway:    gateway,
		dispatcher: dispatcher,
		settings:   settings,
		newOrderID: NewOrderID,
	}
}

// NewOrderID returns "SD" followed by eight upper-case hex digits.
func NewOrderID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SD" + strings.ToUpper(hex[:8])
}

// Checkout prices the cart, stores a pending order and opens a hosted checkout session
// for it. A failure after the order is stored leaves it pending.
func (u *CheckoutUseCase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if len(in.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}
	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.CustomerEmail)
	if name == "" || email == "" {
		return CheckoutResult{}, ErrMissingCustomer
	}

	lines := make([]entities.OrderLine, 0, len(in.Items))
	for _, item := range in.Items {
		line, err := u.priceItem(ctx, item)
		if err != nil {
			return CheckoutResult{}, err
		}
		lines = append(lines, line)
	}

	now := time.Now().UTC()
	order := entities.Order{
		CustomerName:  name,
		CustomerEmail: strings.ToLower(email),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Lines:         lines,
		Amount:        entities.CartTotal(lines),
		Currency:      u.settings.Currency,
		Status:        entities.OrderStatusPending,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, l := range lines {
		if order.ServiceID == "" && l.ServiceID != "" {
			order.ServiceID = l.ServiceID
			order.ServiceName = l.Name
		}
		if order.PricingPlanID == "" && l.PricingPlanID != "" {
			order.PricingPlanID = l.PricingPlanID
			order.PricingPlanName = l.Name
		}
	}

	created, err := u.createWithUniqueID(ctx, order)
	if err != nil {
		return CheckoutResult{}, err
	}
	log := logrus.WithFields(logrus.Fields{"order_id": created.OrderID, "amount": created.Amount.StringFixed(2)})
	log.Info("[checkout][usecase] order created")

	session, err := u.gateway.CreateCheckoutSession(ctx, u.sessionInput(created))
	if err != nil {
		log.WithError(err).Error("[checkout][usecase] checkout session failed")
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrCheckoutUnavailable, err)
	}

	updated, err := u.orders.SetCheckoutSession(ctx, created.OrderID, session.ID)
	if err != nil {
		log.WithError(err).Error("[checkout][usecase] storing checkout session failed")
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrCheckoutUnavailable, err)
	}
	if updated.OrderID == "" {
		updated = created
		updated.CheckoutSessionID = session.ID
	}

	dispatchAll(ctx, u.dispatcher, entities.SideEffect{Kind: entities.SideEffectChatOrderCreated, OrderID: updated.OrderID})
	return CheckoutResult{Order: updated, CheckoutURL: session.URL}, nil
}

func (u *CheckoutUseCase) priceItem(ctx context.Context, item CartItem) (entities.OrderLine, error) {
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return entities.OrderLine{}, ErrInvalidCartItem
	}

	serviceID := strings.TrimSpace(item.ServiceID)
	planID := strings.TrimSpace(item.PricingPlanID)
	switch {
	case serviceID != "":
		svc, err := u.services.GetByID(ctx, serviceID)
		if err != nil {
			return entities.OrderLine{}, err
		}
		if svc.ID == "" || !svc.IsActive {
			return entities.OrderLine{}, ErrCartItemNotFound
		}
		line := entities.OrderLine{
			ServiceID:      svc.ID,
			Name:           svc.Title,
			Description:    svc.ShortDescription,
			Quantity:       qty,
			MaintenanceFee: decimal.NewFromFloat(svc.MaintenanceFee),
		}
		if optID := strings.TrimSpace(item.PricingOptionID); optID != "" {
			opt, ok := svc.OptionByID(optID)
			if !ok {
				return entities.OrderLine{}, ErrCartItemNotFound
			}
			line.PricingOptionID = opt.ID
			line.Name = svc.Title + " - " + opt.Name
			line.Description = opt.Description
			line.UnitPrice = decimal.NewFromFloat(opt.Price)
		} else {
			if svc.Price == nil {
				return entities.OrderLine{}, ErrCartItemNotPriced
			}
			line.UnitPrice = decimal.NewFromFloat(*svc.Price)
		}
		if !line.UnitPrice.IsPositive() {
			return entities.OrderLine{}, ErrCartItemNotPriced
		}
		return line, nil

	case planID != "":
		plan, err := u.plans.GetByID(ctx, planID)
		if err != nil {
			return entities.OrderLine{}, err
		}
		if plan.ID == "" || !plan.IsActive {
			return entities.OrderLine{}, ErrCartItemNotFound
		}
		line := entities.OrderLine{
			PricingPlanID:  plan.ID,
			Name:           plan.Name,
			Description:    plan.Description,
			Quantity:       qty,
			UnitPrice:      decimal.NewFromFloat(plan.Price),
			MaintenanceFee: decimal.Zero,
		}
		if !line.UnitPrice.IsPositive() {
			return entities.OrderLine{}, ErrCartItemNotPriced
		}
		return line, nil
	}
	return entities.OrderLine{}, ErrInvalidCartItem
}

func (u *CheckoutUseCase) createWithUniqueID(ctx context.Context, order entities.Order) (entities.Order, error) {
	for attempt := 1; attempt <= maxOrderIDAttempts; attempt++ {
		order.OrderID = u.newOrderID()
		created, err := u.orders.Create(ctx, order)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Order{}, err
		}
		logrus.WithFields(logrus.Fields{"order_id": order.OrderID, "attempt": attempt}).Warn("[checkout][usecase] order id collision")
	}
	return entities.Order{}, ErrOrderIDExhausted
}

func (u *CheckoutUseCase) sessionInput(o entities.Order) interfaces.CheckoutSessionInput {
	items := make([]interfaces.CheckoutLineItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		id := l.ServiceID
		if id == "" {
			id = l.PricingPlanID
		}
		items = append(items, interfaces.CheckoutLineItem{
			ID:          id,
			Title:       l.Name,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
		if l.MaintenanceFee.IsPositive() {
			items = append(items, interfaces.CheckoutLineItem{
				ID:          id + "-maintenance",
				Title:       "Maintenance: " + l.Name,
				Description: "Monthly maintenance fee",
				Quantity:    l.Quantity,
				UnitPrice:   l.MaintenanceFee,
			})
		}
	}

	ref := url.QueryEscape(o.OrderID)
	return interfaces.CheckoutSessionInput{
		OrderID:         o.OrderID,
		Currency:        o.Currency,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		Items:           items,
		SuccessURL:      u.settings.BaseURL + "/payment/success?order_id=" + ref,
		CancelURL:       u.settings.BaseURL + "/payment/cancelled?order_id=" + ref,
		PendingURL:      u.settings.BaseURL + "/payment/success?order_id=" + ref,
		NotificationURL: u.settings.BaseURL + "/webhooks/mercadopago",
	}
}

package request

import (
	"encoding/json"
	"errors"
	"strings"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var ErrInvalidCartItems = errors.New("cart_items is not a valid json list")

type CartItemRequest struct {
	ServiceID       string `json:"service_id"`
	PricingOptionID string `json:"pricing_option_id"`
	PricingPlanID   string `json:"pricing_plan_id"`
	Quantity        int    `json:"quantity"`
}

// CheckoutRequest is posted by the cart page. Browsers without JavaScript send the
// cart as a JSON string in the cart_items form field.
type CheckoutRequest struct {
	CustomerName  string            `json:"customer_name" form:"customer_name"`
	CustomerEmail string            `json:"customer_email" form:"customer_email"`
	CustomerPhone string            `json:"customer_phone" form:"customer_phone"`
	Notes         string            `json:"notes" form:"notes"`
	Items         []CartItemRequest `json:"items" form:"-"`
	CartItems     string            `json:"-" form:"cart_items"`
}

// ResolveItems decodes the cart_items form field when no JSON items were sent.
func (r *CheckoutRequest) ResolveItems() error {
	raw := strings.TrimSpace(r.CartItems)
	if len(r.Items) > 0 || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &r.Items); err != nil {
		return ErrInvalidCartItems
	}
	return nil
}

// Validate checks the shape of the request only. Cart and customer rules belong to the
// checkout use case, which answers with its own errors.
func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerEmail, is.EmailFormat),
		validation.Field(&r.Items, validation.Each(validation.By(func(v any) error {
			item, _ := v.(CartItemRequest)
			if item.Quantity < 0 {
				return errors.New("quantity must not be negative")
			}
			return nil
		}))),
	)
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	items := make([]usecase.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.CartItem{
			ServiceID:       strings.TrimSpace(it.ServiceID),
			PricingOptionID: strings.TrimSpace(it.PricingOptionID),
			PricingPlanID:   strings.TrimSpace(it.PricingPlanID),
			Quantity:        it.Quantity,
		})
	}
	return usecase.CheckoutInput{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		Notes:         r.Notes,
		Items:         items,
	}
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(
			string(entities.OrderStatusPending), string(entities.OrderStatusPaid), string(entities.OrderStatusProcessing),
			string(entities.OrderStatusCompleted), string(entities.OrderStatusCancelled), string(entities.OrderStatusRefunded),
		)),
	)
}

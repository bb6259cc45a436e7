package handlers

import (
	"errors"
	"net/http"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout godoc
// @Summary Create an order and a hosted checkout session
// @Description Accepts JSON, or a form post carrying the cart as a JSON string in cart_items.
// @Tags checkout
// @Accept json
// @Produce json
// @Param checkout body request.CheckoutRequest true "Cart and customer"
// @Success 200 {object} response.CheckoutResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Info("[checkout][handler] invalid payload")
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	if err := req.ResolveItems(); err != nil {
		invalidRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	result, err := h.usecase.Checkout(c.Request.Context(), req.ToInput())
	if err != nil {
		logrus.WithError(err).Warn("[checkout][handler] checkout failed")
		respondError(c, mapCheckoutError(err))
		return
	}
	logrus.WithFields(logrus.Fields{"order_id": result.Order.OrderID, "amount": result.Order.Amount.String()}).Info("[checkout][handler] checkout session created")
	c.JSON(http.StatusOK, response.FromCheckout(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCustomer):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER", "Customer name and email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_CART_ITEM", "Invalid cart item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item references an unknown service or plan", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartItemNotPriced):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_PRICED", "Cart item requires a custom quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutUnavailable):
		return pkg.NewDomainError("CHECKOUT_UNAVAILABLE", "Payment checkout is unavailable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

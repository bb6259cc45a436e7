package handlers

import (
	"errors"
	"net/http"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary List recent orders
// @Tags admin
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {array} response.OrderResponse
// @Security AdminKey
// @Router /v1/admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), queryInt(c, "limit", usecase.DefaultOrderListLimit))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary Get an order
// @Tags admin
// @Produce json
// @Param order_id path string true "Order id"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Security AdminKey
// @Router /v1/admin/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrderStatus godoc
// @Summary Advance an order
// @Description paid is reserved for payment confirmation.
// @Tags admin
// @Accept json
// @Produce json
// @Param order_id path string true "Order id"
// @Param body body request.OrderStatusRequest true "New status"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Security AdminKey
// @Router /v1/admin/orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	var req request.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, entities.OrderStatus(req.Status))
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"order_id": orderID, "status": req.Status}).Warn("[order][handler] status update failed")
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Invalid order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("ORDER_TRANSITION_NOT_ALLOWED", "Order status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

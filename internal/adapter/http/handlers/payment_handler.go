package handlers

import (
	"errors"
	"net/http"
	"time"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentHandler handles the hosted checkout redirects and the processor notifications.
type PaymentHandler struct {
	pageRenderer
	payments usecase.IPaymentUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, content usecase.IContentUseCase) *PaymentHandler {
	return &PaymentHandler{pageRenderer: pageRenderer{content: content}, payments: payments}
}

// firstQuery returns the first non-empty query value among keys.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}

// Success is the back url of an approved checkout. The processor appends payment_id
// (or collection_id) and external_reference to the order_id we put in the url.
func (h *PaymentHandler) Success(c *gin.Context) {
	orderID := firstQuery(c, "order_id", "external_reference")
	paymentID := firstQuery(c, "payment_id", "collection_id")
	log := logrus.WithFields(logrus.Fields{"order_id": orderID, "payment_id": paymentID})

	order, err := h.payments.ConfirmPayment(c.Request.Context(), orderID, paymentID)
	switch {
	case err == nil:
		log.Info("[payment][handler] success page")
	case errors.Is(err, usecase.ErrOrderNotFound):
		h.errorPage(c, http.StatusNotFound, "Order not found", "We could not find this order.")
		return
	case errors.Is(err, usecase.ErrPaymentOrderMismatch), errors.Is(err, usecase.ErrPaymentAmountMismatch):
		log.Warn("[payment][handler] payment does not belong to order")
		h.errorPage(c, http.StatusBadRequest, "Payment mismatch", "This payment does not belong to the order.")
		return
	case errors.Is(err, usecase.ErrPaymentNotApproved), errors.Is(err, usecase.ErrPaymentLookupFailed):
		// The notification will settle the order once the processor approves it.
		log.WithError(err).Info("[payment][handler] payment not confirmed yet")
	case errors.Is(err, usecase.ErrOrderNotPayable):
		h.errorPage(c, http.StatusConflict, "Order closed", "This order can no longer be paid.")
		return
	default:
		h.serverError(c, err)
		return
	}
	if order.OrderID == "" {
		h.errorPage(c, http.StatusNotFound, "Order not found", "We could not find this order.")
		return
	}
	h.html(c, http.StatusOK, "payment_success.html", "Payment received", gin.H{"Page": order})
}

func (h *PaymentHandler) Cancelled(c *gin.Context) {
	h.html(c, http.StatusOK, "payment_cancelled.html", "Payment cancelled", gin.H{
		"OrderID": firstQuery(c, "order_id", "external_reference"),
	})
}

// Webhook godoc
// @Summary Mercado Pago payment notification
// @Tags webhooks
// @Accept json
// @Produce json
// @Param x-signature header string true "ts=<unix>,v1=<hex hmac>"
// @Param x-request-id header string true "Request id"
// @Param type query string false "Notification type"
// @Param data.id query string false "Resource id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} pkg.HTTPError
// @Router /webhooks/mercadopago [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var body request.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logrus.WithError(err).Debug("[payment][webhook] body not decoded, using query values")
	}
	in := body.ToInput(c.Query("type"), c.Query("data.id"), c.GetHeader("x-signature"), c.GetHeader("x-request-id"), time.Now())

	if err := h.payments.HandleWebhook(c.Request.Context(), in); err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentLookupFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment could not be retrieved", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

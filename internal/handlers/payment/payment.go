// Package payment implements the payment-intent endpoint. Its failure
// bodies use the bare {error} shape the Stripe checkout page expects,
// not the {success,...} envelope of the form endpoints.
package payment

import (
	"context"
	"errors"
	"net/http"

	"movers-service/internal/domain/payment"
	"movers-service/internal/pkg/validate"
	paymentservice "movers-service/internal/service/payment"

	"github.com/gin-gonic/gin"
)

type Service interface {
	CreateIntent(ctx context.Context, req *payment.CreateIntentRequest) (*payment.CreateIntentResponse, error)
}

type PaymentHandler struct {
	service Service
}

func NewPaymentHandler(service Service) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent handles POST /api/create-payment-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req payment.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payment data",
			"details": validate.Details(err),
		})
		return
	}

	result, err := h.service.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		var upstream *paymentservice.UpstreamError
		if errors.As(err, &upstream) {
			// Stripe messages are customer-safe; surface them verbatim.
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": upstream.Msg})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

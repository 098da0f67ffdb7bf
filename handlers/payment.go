package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Payments booking.PaymentHandler
}

func NewPaymentHandler(payments booking.PaymentHandler) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment request", err.Error())
		return
	}

	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidPrice) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid price", err.Error())
			return
		}
		getLogger(c).Error("Payment intent failed", zap.Float64("price", req.Price), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

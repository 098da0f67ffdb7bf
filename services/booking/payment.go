package booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ErrInvalidPrice is returned for non-positive or non-finite prices.
var ErrInvalidPrice = errors.New("invalid payment amount")

// --- Interfaces ---
type PaymentHandler interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

// --- PaymentHandler Implementation ---
type StripePaymentHandler struct {
	logger   *zap.Logger
	currency string
	// newIntent is paymentintent.New outside tests.
	newIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// --- NewPaymentHandler Constructor ---
func NewPaymentHandler(logger *zap.Logger, currency string) *StripePaymentHandler {
	return &StripePaymentHandler{
		logger:    logger,
		currency:  currency,
		newIntent: paymentintent.New,
	}
}

// CreatePaymentIntent opens a card payment intent for price (in major units) and returns its client secret.
func (h *StripePaymentHandler) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount, err := toMinorUnits(price)
	if err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(h.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := h.newIntent(params)
	if err != nil {
		h.logger.Error("payment intent creation failed", zap.Int64("amount", amount), zap.Error(err))
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	h.logger.Info("payment intent created", zap.String("intent", intent.ID), zap.Int64("amount", amount))
	return intent.ClientSecret, nil
}

// --- Validator ---
func toMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return int64(math.Round(price * 100)), nil
}

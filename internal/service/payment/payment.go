// Package payment creates Stripe payment intents for move deposits.
// Card collection and confirmation happen entirely in Stripe's hosted
// UI; webhooks and reconciliation are out of scope for this service.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"movers-service/internal/domain/payment"

	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"
)

// IntentsAPI is the slice of the Stripe client this service uses.
// *paymentintent.Client satisfies it.
type IntentsAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// UpstreamError wraps a failure reported by Stripe. Its message is safe
// to surface to the customer verbatim.
type UpstreamError struct {
	Msg string
}

func (e *UpstreamError) Error() string {
	return e.Msg
}

type PaymentService struct {
	intents IntentsAPI
	logger  *zap.Logger
}

func NewPaymentService(intents IntentsAPI, logger *zap.Logger) *PaymentService {
	return &PaymentService{intents: intents, logger: logger}
}

// CreateIntent creates a Stripe payment intent for a move deposit.
// The amount arrives in dollars and is converted to cents for Stripe.
func (s *PaymentService) CreateIntent(ctx context.Context, req *payment.CreateIntentRequest) (*payment.CreateIntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description:  stripe.String(fmt.Sprintf("Moving deposit for quote %s", req.QuoteID)),
		ReceiptEmail: stripe.String(req.CustomerEmail),
	}
	params.Context = ctx
	params.AddMetadata("quoteId", req.QuoteID)
	params.AddMetadata("customerEmail", req.CustomerEmail)
	params.AddMetadata("customerName", req.CustomerName)
	params.AddMetadata("paymentType", "moving_deposit")

	intent, err := s.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			s.logger.Warn("stripe rejected payment intent",
				zap.String("quoteId", req.QuoteID),
				zap.String("code", string(stripeErr.Code)),
				zap.Error(err),
			)
			return nil, &UpstreamError{Msg: stripeErr.Msg}
		}
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		zap.String("paymentIntentId", intent.ID),
		zap.String("quoteId", req.QuoteID),
		zap.Int64("amountCents", intent.Amount),
	)

	return &payment.CreateIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

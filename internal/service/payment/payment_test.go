package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"movers-service/internal/domain/payment"
)

type mockIntents struct {
	NewFn func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

	lastParams *stripe.PaymentIntentParams
}

func (m *mockIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	m.lastParams = params
	return m.NewFn(params)
}

func validIntentRequest() *payment.CreateIntentRequest {
	return &payment.CreateIntentRequest{
		Amount:        150.00,
		QuoteID:       "QT-1756700000000-abcdefghi",
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
	}
}

func TestCreateIntentConvertsDollarsToCents(t *testing.T) {
	intents := &mockIntents{
		NewFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return &stripe.PaymentIntent{
				ID:           "pi_123",
				ClientSecret: "pi_123_secret_456",
				Amount:       *params.Amount,
			}, nil
		},
	}
	svc := NewPaymentService(intents, zap.NewNop())

	req := validIntentRequest()
	req.Amount = 150.75
	result, err := svc.CreateIntent(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(15075), *intents.lastParams.Amount)
	assert.Equal(t, "usd", *intents.lastParams.Currency)
	assert.Equal(t, "pi_123_secret_456", result.ClientSecret)
	assert.Equal(t, "pi_123", result.PaymentIntentID)
}

func TestCreateIntentAttachesQuoteMetadata(t *testing.T) {
	intents := &mockIntents{
		NewFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "secret"}, nil
		},
	}
	svc := NewPaymentService(intents, zap.NewNop())

	req := validIntentRequest()
	_, err := svc.CreateIntent(context.Background(), req)
	require.NoError(t, err)

	params := intents.lastParams
	assert.Equal(t, req.QuoteID, params.Metadata["quoteId"])
	assert.Equal(t, req.CustomerEmail, params.Metadata["customerEmail"])
	assert.Equal(t, req.CustomerName, params.Metadata["customerName"])
	assert.Equal(t, "moving_deposit", params.Metadata["paymentType"])
	assert.Equal(t, "Moving deposit for quote "+req.QuoteID, *params.Description)
	assert.Equal(t, req.CustomerEmail, *params.ReceiptEmail)
	assert.True(t, *params.AutomaticPaymentMethods.Enabled)
}

func TestCreateIntentSurfacesStripeErrors(t *testing.T) {
	intents := &mockIntents{
		NewFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return nil, &stripe.Error{
				Code: stripe.ErrorCodeCardDeclined,
				Msg:  "Your card was declined.",
			}
		},
	}
	svc := NewPaymentService(intents, zap.NewNop())

	_, err := svc.CreateIntent(context.Background(), validIntentRequest())
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Your card was declined.", upstream.Msg)
}

func TestCreateIntentWrapsTransportErrors(t *testing.T) {
	intents := &mockIntents{
		NewFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return nil, errors.New("dial tcp: i/o timeout")
		},
	}
	svc := NewPaymentService(intents, zap.NewNop())

	_, err := svc.CreateIntent(context.Background(), validIntentRequest())
	require.Error(t, err)

	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream), "transport failures are not customer-safe")
}

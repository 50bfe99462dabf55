// Package payment holds the wire types for the deposit payment flow.
// The card collection itself happens in Stripe's hosted UI; this service
// only creates the payment intent the widget confirms against.
package payment

// CreateIntentRequest is the body of POST /api/create-payment-intent.
// Deposits below $50 are rejected before Stripe is ever called.
type CreateIntentRequest struct {
	Amount        float64 `json:"amount" binding:"required,min=50"`
	QuoteID       string  `json:"quoteId" binding:"required"`
	CustomerEmail string  `json:"customerEmail" binding:"required,email"`
	CustomerName  string  `json:"customerName" binding:"required,min=2"`
}

// CreateIntentResponse is the success body: the client secret the Stripe
// widget needs plus the intent id for the success page.
type CreateIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

package email

import (
	"context"
	"fmt"

	"movers-service/internal/domain/contact"
	"movers-service/internal/domain/quote"

	"go.uber.org/zap"
)

// Notifications implements the quote and contact notifier interfaces on
// top of an SMTP Sender. Each submission produces a customer
// confirmation and an internal alert to the office inbox.
type Notifications struct {
	sender     *Sender
	internalTo string
	brand      string
}

func NewNotifications(sender *Sender, internalTo, brand string) *Notifications {
	return &Notifications{sender: sender, internalTo: internalTo, brand: brand}
}

// QuoteSubmitted sends the quote confirmation and the internal alert.
func (n *Notifications) QuoteSubmitted(ctx context.Context, q *quote.QuoteRequest) error {
	low, high := quote.EstimateRange(q.EstimatedCost)

	customerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for requesting a quote from %s!</p>
		<p>Quote ID: <b>%s</b><br/>
		Estimated Cost Range: <b>$%d - $%d</b></p>
		<p>Our team will contact you within 24 hours to schedule an in-home estimate.</p>
		<p>Best regards,<br/>The %s Team</p>`,
		q.CustomerName(), n.brand, q.Reference, low, high, n.brand)

	if err := n.sender.Send(q.Email, "Your moving quote request", customerBody); err != nil {
		return fmt.Errorf("customer quote email: %w", err)
	}

	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}
	orNone := func(s string) string {
		if s == "" {
			return "None"
		}
		return s
	}

	internalBody := fmt.Sprintf(`
		<p><b>New Quote Request Received</b></p>
		<p>Customer: %s<br/>
		Email: %s<br/>
		Phone: %s<br/>
		Move Type: %s<br/>
		Move Date: %s<br/>
		From: %s, %s, %s %s<br/>
		To: %s, %s, %s %s<br/>
		Property Size: %s<br/>
		Estimated Cost: $%d</p>
		<p>Packing: %s<br/>
		Storage: %s</p>
		<p>Special Items: %s<br/>
		Additional Notes: %s</p>`,
		q.CustomerName(), q.Email, q.Phone, q.MoveType, q.MoveDate,
		q.FromAddress, q.FromCity, q.FromState, q.FromZip,
		q.ToAddress, q.ToCity, q.ToState, q.ToZip,
		q.HomeSize, q.EstimatedCost,
		yesNo(q.PackingService), yesNo(q.StorageService),
		orNone(q.SpecialItems), orNone(q.AdditionalNotes))

	if err := n.sender.Send(n.internalTo, "New quote request "+q.Reference, internalBody); err != nil {
		return fmt.Errorf("internal quote email: %w", err)
	}

	return nil
}

// ContactSubmitted sends the contact acknowledgement and internal alert.
func (n *Notifications) ContactSubmitted(ctx context.Context, m *contact.Message) error {
	customerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for contacting %s!</p>
		<p>Contact ID: <b>%s</b><br/>
		Subject: %s</p>
		<p>We have received your message and will respond within 24 hours.</p>
		<p>Best regards,<br/>The %s Team</p>`,
		m.Name, n.brand, m.Reference, m.Subject, n.brand)

	if err := n.sender.Send(m.Email, "We received your message", customerBody); err != nil {
		return fmt.Errorf("customer contact email: %w", err)
	}

	internalBody := fmt.Sprintf(`
		<p><b>New Contact Form Submission</b></p>
		<p>Contact ID: %s<br/>
		Name: %s<br/>
		Email: %s<br/>
		Phone: %s<br/>
		Subject: %s</p>
		<p>Message:<br/>%s</p>`,
		m.Reference, m.Name, m.Email, m.Phone, m.Subject, m.Message)

	if err := n.sender.Send(n.internalTo, "New contact message "+m.Reference, internalBody); err != nil {
		return fmt.Errorf("internal contact email: %w", err)
	}

	return nil
}

// LogNotifier is the notifier used when SMTP is not configured. It logs
// what would have been sent, which keeps local development quiet and
// mirrors the behavior of the original stub.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l *LogNotifier) QuoteSubmitted(ctx context.Context, q *quote.QuoteRequest) error {
	l.Logger.Info("sending quote notifications",
		zap.String("to", q.Email),
		zap.String("quoteId", q.Reference),
		zap.Int("estimatedCost", q.EstimatedCost),
		zap.String("customerName", q.CustomerName()),
	)
	return nil
}

func (l *LogNotifier) ContactSubmitted(ctx context.Context, m *contact.Message) error {
	l.Logger.Info("sending contact notifications",
		zap.String("to", m.Email),
		zap.String("contactId", m.Reference),
		zap.String("subject", m.Subject),
		zap.String("customerName", m.Name),
	)
	return nil
}

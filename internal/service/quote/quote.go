// Package quote implements the quote-submission pipeline: estimate,
// reference generation, persistence, notification, and the admin event
// broadcast.
package quote

import (
	"context"
	"time"

	"movers-service/internal/domain/quote"
	xerrors "movers-service/internal/pkg/errors"
	"movers-service/internal/pkg/reference"

	"go.uber.org/zap"
)

// Repository is the persistence the service depends on.
type Repository interface {
	Save(ctx context.Context, q *quote.QuoteRequest) error
	FindByReference(ctx context.Context, reference string) (*quote.QuoteRequest, error)
	List(ctx context.Context) ([]quote.QuoteRequest, error)
}

// Notifier dispatches the customer confirmation and internal alert for
// an accepted quote. Implementations must be safe to call concurrently.
type Notifier interface {
	QuoteSubmitted(ctx context.Context, q *quote.QuoteRequest) error
}

// Broadcaster pushes events to connected admin dashboards.
type Broadcaster interface {
	Publish(eventType string, payload map[string]any)
}

type QuoteService struct {
	repo     Repository
	notifier Notifier
	events   Broadcaster
	logger   *zap.Logger
}

// NewQuoteService constructs the service. events may be nil when no
// dashboard hub is running (tests, one-off tools).
func NewQuoteService(repo Repository, notifier Notifier, events Broadcaster, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		repo:     repo,
		notifier: notifier,
		events:   events,
		logger:   logger,
	}
}

// Submit accepts a validated quote request: computes the estimate,
// assigns a reference, persists the lead, then fires notifications.
// Notification and broadcast failures are logged but never fail a
// persisted submission.
func (s *QuoteService) Submit(ctx context.Context, q *quote.QuoteRequest) (*quote.Submission, error) {
	q.EstimatedCost = quote.EstimateCost(q.MoveType, q.HomeSize, q.PackingService, q.StorageService)
	q.Reference = reference.New(reference.QuotePrefix)
	q.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, q); err != nil {
		return nil, xerrors.Wrap(err, "failed to save quote request")
	}

	s.logger.Info("new quote request",
		zap.String("quoteId", q.Reference),
		zap.String("customer", q.CustomerName()),
		zap.String("email", q.Email),
		zap.String("phone", q.Phone),
		zap.String("moveType", q.MoveType),
		zap.String("moveDate", q.MoveDate),
		zap.String("homeSize", q.HomeSize),
		zap.Bool("packingService", q.PackingService),
		zap.Bool("storageService", q.StorageService),
		zap.Int("estimatedCost", q.EstimatedCost),
		zap.Time("timestamp", q.CreatedAt),
	)

	if err := s.notifier.QuoteSubmitted(ctx, q); err != nil {
		s.logger.Warn("quote notification failed",
			zap.String("quoteId", q.Reference), zap.Error(err))
	}

	if s.events != nil {
		s.events.Publish("quote.created", map[string]any{
			"quoteId":       q.Reference,
			"customer":      q.CustomerName(),
			"moveType":      q.MoveType,
			"estimatedCost": q.EstimatedCost,
		})
	}

	return &quote.Submission{Reference: q.Reference, EstimatedCost: q.EstimatedCost}, nil
}

// GetByReference returns a single stored quote request for the admin API.
func (s *QuoteService) GetByReference(ctx context.Context, ref string) (*quote.QuoteRequest, error) {
	return s.repo.FindByReference(ctx, ref)
}

// List returns all stored quote requests for the admin API.
func (s *QuoteService) List(ctx context.Context) ([]quote.QuoteRequest, error) {
	return s.repo.List(ctx)
}

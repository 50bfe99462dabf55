// Package contact implements the contact-form pipeline.
package contact

import (
	"context"
	"time"

	"movers-service/internal/domain/contact"
	xerrors "movers-service/internal/pkg/errors"
	"movers-service/internal/pkg/reference"

	"go.uber.org/zap"
)

type Repository interface {
	Save(ctx context.Context, m *contact.Message) error
	FindByReference(ctx context.Context, reference string) (*contact.Message, error)
	List(ctx context.Context) ([]contact.Message, error)
}

// Notifier dispatches the customer acknowledgement and internal alert.
type Notifier interface {
	ContactSubmitted(ctx context.Context, m *contact.Message) error
}

type Broadcaster interface {
	Publish(eventType string, payload map[string]any)
}

type ContactService struct {
	repo     Repository
	notifier Notifier
	events   Broadcaster
	logger   *zap.Logger
}

func NewContactService(repo Repository, notifier Notifier, events Broadcaster, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		events:   events,
		logger:   logger,
	}
}

// Submit persists a validated contact message and fires notifications.
// Downstream failures after the save are logged, not returned.
func (s *ContactService) Submit(ctx context.Context, m *contact.Message) (string, error) {
	m.Reference = reference.New(reference.ContactPrefix)
	m.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, m); err != nil {
		return "", xerrors.Wrap(err, "failed to save contact message")
	}

	s.logger.Info("new contact form submission",
		zap.String("contactId", m.Reference),
		zap.String("name", m.Name),
		zap.String("email", m.Email),
		zap.String("phone", m.Phone),
		zap.String("subject", m.Subject),
		zap.String("message", m.Message),
		zap.Time("timestamp", m.CreatedAt),
	)

	if err := s.notifier.ContactSubmitted(ctx, m); err != nil {
		s.logger.Warn("contact notification failed",
			zap.String("contactId", m.Reference), zap.Error(err))
	}

	if s.events != nil {
		s.events.Publish("contact.created", map[string]any{
			"contactId": m.Reference,
			"name":      m.Name,
			"subject":   m.Subject,
		})
	}

	return m.Reference, nil
}

// List returns all stored contact messages for the admin API.
func (s *ContactService) List(ctx context.Context) ([]contact.Message, error) {
	return s.repo.List(ctx)
}

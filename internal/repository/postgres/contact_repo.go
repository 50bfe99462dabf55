package postgres

import (
	"context"
	"errors"
	"fmt"

	"movers-service/internal/domain/contact"
	xerrors "movers-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Save persists a new contact message and fills in its row id and timestamp.
func (r *ContactRepository) Save(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (reference, name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		m.Reference, m.Name, m.Email, m.Phone, m.Subject, m.Message,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	return nil
}

// FindByReference retrieves a contact message by its reference.
func (r *ContactRepository) FindByReference(ctx context.Context, reference string) (*contact.Message, error) {
	query := `
		SELECT id, reference, name, email, phone, subject, message, created_at
		FROM contact_messages
		WHERE reference = $1
	`

	var m contact.Message
	err := r.db.QueryRow(ctx, query, reference).Scan(
		&m.ID, &m.Reference, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}

	return &m, nil
}

// List returns contact messages newest first.
func (r *ContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	query := `
		SELECT id, reference, name, email, phone, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []contact.Message
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(
			&m.ID, &m.Reference, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}

	return messages, nil
}

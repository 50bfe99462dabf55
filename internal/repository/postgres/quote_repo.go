package postgres

import (
	"context"
	"errors"
	"fmt"

	"movers-service/internal/domain/quote"
	xerrors "movers-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Save persists a new quote request and fills in its row id and timestamp.
func (r *QuoteRepository) Save(ctx context.Context, q *quote.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (
			reference, first_name, last_name, email, phone,
			move_type, move_date,
			from_address, from_city, from_state, from_zip,
			to_address, to_city, to_state, to_zip,
			home_size, packing_service, storage_service,
			special_items, additional_notes, hear_about_us,
			estimated_cost
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		          $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		q.Reference, q.FirstName, q.LastName, q.Email, q.Phone,
		q.MoveType, q.MoveDate,
		q.FromAddress, q.FromCity, q.FromState, q.FromZip,
		q.ToAddress, q.ToCity, q.ToState, q.ToZip,
		q.HomeSize, q.PackingService, q.StorageService,
		q.SpecialItems, q.AdditionalNotes, q.HearAboutUs,
		q.EstimatedCost,
	).Scan(&q.ID, &q.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save quote request: %w", err)
	}

	return nil
}

const quoteColumns = `
	id, reference, first_name, last_name, email, phone,
	move_type, move_date,
	from_address, from_city, from_state, from_zip,
	to_address, to_city, to_state, to_zip,
	home_size, packing_service, storage_service,
	special_items, additional_notes, hear_about_us,
	estimated_cost, created_at
`

// FindByReference retrieves a quote request by its customer-facing reference.
func (r *QuoteRepository) FindByReference(ctx context.Context, reference string) (*quote.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests WHERE reference = $1`

	var q quote.QuoteRequest
	err := r.db.QueryRow(ctx, query, reference).Scan(
		&q.ID, &q.Reference, &q.FirstName, &q.LastName, &q.Email, &q.Phone,
		&q.MoveType, &q.MoveDate,
		&q.FromAddress, &q.FromCity, &q.FromState, &q.FromZip,
		&q.ToAddress, &q.ToCity, &q.ToState, &q.ToZip,
		&q.HomeSize, &q.PackingService, &q.StorageService,
		&q.SpecialItems, &q.AdditionalNotes, &q.HearAboutUs,
		&q.EstimatedCost, &q.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find quote request: %w", err)
	}

	return &q, nil
}

// List returns quote requests newest first.
func (r *QuoteRepository) List(ctx context.Context) ([]quote.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	defer rows.Close()

	var quotes []quote.QuoteRequest
	for rows.Next() {
		var q quote.QuoteRequest
		if err := rows.Scan(
			&q.ID, &q.Reference, &q.FirstName, &q.LastName, &q.Email, &q.Phone,
			&q.MoveType, &q.MoveDate,
			&q.FromAddress, &q.FromCity, &q.FromState, &q.FromZip,
			&q.ToAddress, &q.ToCity, &q.ToState, &q.ToZip,
			&q.HomeSize, &q.PackingService, &q.StorageService,
			&q.SpecialItems, &q.AdditionalNotes, &q.HearAboutUs,
			&q.EstimatedCost, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote request: %w", err)
		}
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quote requests: %w", err)
	}

	return quotes, nil
}

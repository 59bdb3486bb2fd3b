package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Rate(ctx context.Context, customerID string) (decimal.Decimal, bool, error) {
	var raw string

	err := s.db.QueryRowContext(ctx,
		`SELECT rate FROM fee_rates WHERE customer_id = $1`, customerID,
	).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, false, nil
		}

		return decimal.Zero, false, fmt.Errorf("getting fee rate: %w", err)
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("decoding fee rate: %w", err)
	}

	return rate, true, nil
}

func (s *Store) SetRate(ctx context.Context, customerID string, rate decimal.Decimal) error {
	query := `
		INSERT INTO fee_rates (customer_id, rate, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (customer_id)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, customerID, rate.String()); err != nil {
		return fmt.Errorf("saving fee rate: %w", err)
	}

	return nil
}

func (s *Store) ClearRate(ctx context.Context, customerID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM fee_rates WHERE customer_id = $1`, customerID); err != nil {
		return fmt.Errorf("clearing fee rate: %w", err)
	}

	return nil
}

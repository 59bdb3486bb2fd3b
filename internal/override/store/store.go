package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfreire7/repasse/internal/override"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Overrides are keyed by the full five-part key; optional parts are stored
// as empty strings so the unique constraint holds for general overrides too.

func (s *Store) Get(ctx context.Context, key override.Key) (*override.Override, error) {
	query := `
		SELECT count, gross, fee, net, updated_at
		FROM overrides
		WHERE customer_id = $1 AND account_id = $2 AND cadence = $3 AND month = $4 AND date = $5
	`

	ov := override.Override{Key: key}

	var count sql.NullInt64

	var gross, fee, net sql.NullString

	err := s.db.QueryRowContext(ctx, query,
		key.CustomerID, key.AccountID, key.Cadence, key.Month, key.Date,
	).Scan(&count, &gross, &fee, &net, &ov.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, override.ErrNotFound
		}

		return nil, fmt.Errorf("getting override: %w", err)
	}

	if count.Valid {
		n := int(count.Int64)
		ov.Count = &n
	}

	if ov.Gross, err = nullDecimal(gross); err != nil {
		return nil, fmt.Errorf("decoding gross: %w", err)
	}

	if ov.Fee, err = nullDecimal(fee); err != nil {
		return nil, fmt.Errorf("decoding fee: %w", err)
	}

	if ov.Net, err = nullDecimal(net); err != nil {
		return nil, fmt.Errorf("decoding net: %w", err)
	}

	return &ov, nil
}

func (s *Store) Put(ctx context.Context, ov *override.Override) error {
	query := `
		INSERT INTO overrides (customer_id, account_id, cadence, month, date, count, gross, fee, net, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (customer_id, account_id, cadence, month, date)
		DO UPDATE SET count = EXCLUDED.count, gross = EXCLUDED.gross,
			fee = EXCLUDED.fee, net = EXCLUDED.net, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query,
		ov.Key.CustomerID, ov.Key.AccountID, ov.Key.Cadence, ov.Key.Month, ov.Key.Date,
		ov.Count, decimalString(ov.Gross), decimalString(ov.Fee), decimalString(ov.Net),
	)
	if err != nil {
		return fmt.Errorf("saving override: %w", err)
	}

	return nil
}

// Delete is a no-op when the key has no override.
func (s *Store) Delete(ctx context.Context, key override.Key) error {
	query := `
		DELETE FROM overrides
		WHERE customer_id = $1 AND account_id = $2 AND cadence = $3 AND month = $4 AND date = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		key.CustomerID, key.AccountID, key.Cadence, key.Month, key.Date)
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}

	return nil
}

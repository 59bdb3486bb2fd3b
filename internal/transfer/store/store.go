package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/transfer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectTransferColumns = `
	id, customer_id, period, period_key, gross, fee, net, status, sent_at, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanTransfer(s scanner) (*transfer.Transfer, error) {
	var t transfer.Transfer

	var periodKey []byte

	var gross, fee, net string

	if err := s.Scan(
		&t.ID, &t.CustomerID, &t.Period, &periodKey,
		&gross, &fee, &net, &t.Status, &t.SentAt, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if periodKey != nil {
		var key transfer.PeriodKey
		if err := json.Unmarshal(periodKey, &key); err != nil {
			return nil, fmt.Errorf("decoding period key: %w", err)
		}

		t.PeriodKey = &key
	}

	var err error

	if t.Gross, err = decimal.NewFromString(gross); err != nil {
		return nil, fmt.Errorf("decoding gross: %w", err)
	}

	if t.Fee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("decoding fee: %w", err)
	}

	if t.Net, err = decimal.NewFromString(net); err != nil {
		return nil, fmt.Errorf("decoding net: %w", err)
	}

	return &t, nil
}

func (s *Store) CreateTransfer(ctx context.Context, t *transfer.Transfer) error {
	periodKey, err := encodePeriodKey(t.PeriodKey)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transfers (customer_id, period, period_key, gross, fee, net, status, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		t.CustomerID, t.Period, periodKey,
		t.Gross.String(), t.Fee.String(), t.Net.String(), t.Status, t.SentAt,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transfer: %w", err)
	}

	return nil
}

func (s *Store) GetTransfer(ctx context.Context, id uuid.UUID) (*transfer.Transfer, error) {
	query := `SELECT ` + selectTransferColumns + ` FROM transfers WHERE id = $1`

	t, err := scanTransfer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transfer.ErrNotFound
		}

		return nil, fmt.Errorf("getting transfer: %w", err)
	}

	return t, nil
}

func (s *Store) ListTransfers(ctx context.Context) ([]*transfer.Transfer, error) {
	query := `SELECT ` + selectTransferColumns + `
		FROM transfers
		ORDER BY created_at DESC`

	return s.list(ctx, query)
}

func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]*transfer.Transfer, error) {
	query := `SELECT ` + selectTransferColumns + `
		FROM transfers
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	return s.list(ctx, query, customerID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*transfer.Transfer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*transfer.Transfer

	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}

		transfers = append(transfers, t)
	}

	return transfers, rows.Err()
}

// Update rewrites only the provided fields.
func (s *Store) Update(ctx context.Context, id uuid.UUID, params transfer.UpdateParams) error {
	query := `UPDATE transfers SET updated_at = NOW()`

	var args []any

	argIdx := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)

		args = append(args, value)
		argIdx++
	}

	if params.Period != nil {
		set("period", *params.Period)

		periodKey, err := encodePeriodKey(params.PeriodKey)
		if err != nil {
			return err
		}

		set("period_key", periodKey)
	}

	if params.Gross != nil {
		set("gross", params.Gross.String())
	}

	if params.Fee != nil {
		set("fee", params.Fee.String())
	}

	if params.Net != nil {
		set("net", params.Net.String())
	}

	if params.Status != nil {
		set("status", *params.Status)
	}

	if params.SentAt != nil {
		set("sent_at", *params.SentAt)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating transfer: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransfer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transfers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting transfer: %w", err)
	}

	return nil
}

func encodePeriodKey(key *transfer.PeriodKey) (any, error) {
	if key == nil {
		return nil, nil
	}

	payload, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("encoding period key: %w", err)
	}

	return payload, nil
}

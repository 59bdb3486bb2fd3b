package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dfreire7/repasse/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectDocumentColumns = `
	id, customer_id, account_id, cadence, month, date, headers, rows, sales, uploaded_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*report.Document, error) {
	var doc report.Document

	var month, date sql.NullString

	var headers, rows, sales []byte

	if err := s.Scan(
		&doc.ID, &doc.CustomerID, &doc.AccountID, &doc.Cadence,
		&month, &date, &headers, &rows, &sales, &doc.UploadedAt,
	); err != nil {
		return nil, err
	}

	doc.Month = month.String
	doc.Date = date.String

	if err := json.Unmarshal(headers, &doc.Headers); err != nil {
		return nil, fmt.Errorf("decoding headers: %w", err)
	}

	if err := json.Unmarshal(rows, &doc.Rows); err != nil {
		return nil, fmt.Errorf("decoding rows: %w", err)
	}

	if sales != nil {
		if err := json.Unmarshal(sales, &doc.Sales); err != nil {
			return nil, fmt.Errorf("decoding sales cache: %w", err)
		}
	}

	return &doc, nil
}

// PutDocument stores the document, replacing any prior one with the same
// (customer, account, cadence, period) key. Monthly periods are the month,
// daily periods the date, so daily uploads only displace their own date.
func (s *Store) PutDocument(ctx context.Context, doc *report.Document) error {
	headers, rows, sales, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (customer_id, account_id, cadence, period, month, date, headers, rows, sales, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (customer_id, account_id, cadence, period)
		DO UPDATE SET month = EXCLUDED.month, date = EXCLUDED.date,
			headers = EXCLUDED.headers, rows = EXCLUDED.rows,
			sales = EXCLUDED.sales, uploaded_at = EXCLUDED.uploaded_at
		RETURNING id
	`

	period := doc.Month
	if doc.Cadence == report.CadenceDaily {
		period = doc.Date
	}

	err = s.db.QueryRowContext(ctx, query,
		doc.CustomerID, doc.AccountID, doc.Cadence, period,
		doc.Month, nullString(doc.Date), headers, rows, sales, doc.UploadedAt,
	).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("storing document: %w", err)
	}

	return nil
}

func (s *Store) GetDocument(ctx context.Context, key report.Key) (*report.Document, error) {
	query := `SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE customer_id = $1 AND account_id = $2 AND cadence = $3 AND period = $4`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query,
		key.CustomerID, key.AccountID, key.Cadence, key.Period))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, report.ErrNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return doc, nil
}

func (s *Store) ListPeriods(ctx context.Context, customerID, accountID string, cadence report.Cadence) ([]string, error) {
	query := `
		SELECT period FROM documents
		WHERE customer_id = $1 AND account_id = $2 AND cadence = $3
		ORDER BY period DESC
	`

	rows, err := s.db.QueryContext(ctx, query, customerID, accountID, cadence)
	if err != nil {
		return nil, fmt.Errorf("listing periods: %w", err)
	}
	defer rows.Close()

	var periods []string

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning period: %w", err)
		}

		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (s *Store) ListDocuments(ctx context.Context, customerID string) ([]*report.Document, error) {
	query := `SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE customer_id = $1
		ORDER BY period DESC`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*report.Document

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (s *Store) UpdateSales(ctx context.Context, key report.Key, sales []report.ParsedSale) error {
	payload, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("encoding sales cache: %w", err)
	}

	query := `
		UPDATE documents SET sales = $1
		WHERE customer_id = $2 AND account_id = $3 AND cadence = $4 AND period = $5
	`

	if _, err := s.db.ExecContext(ctx, query,
		payload, key.CustomerID, key.AccountID, key.Cadence, key.Period); err != nil {
		return fmt.Errorf("updating sales cache: %w", err)
	}

	return nil
}

func (s *Store) DeleteDocuments(ctx context.Context, customerID, accountID string) error {
	query := `DELETE FROM documents WHERE customer_id = $1 AND account_id = $2`

	if _, err := s.db.ExecContext(ctx, query, customerID, accountID); err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}

	return nil
}

func encodeDocument(doc *report.Document) (headers, rows, sales []byte, err error) {
	headers, err = json.Marshal(doc.Headers)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encoding headers: %w", err)
	}

	rows, err = json.Marshal(doc.Rows)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encoding rows: %w", err)
	}

	sales, err = json.Marshal(doc.Sales)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encoding sales cache: %w", err)
	}

	return headers, rows, sales, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

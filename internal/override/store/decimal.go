package store

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// nullDecimal converts a nullable numeric column (scanned as text to keep
// exact digits) into an optional decimal.
func nullDecimal(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid {
		return nil, nil
	}

	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// decimalString renders an optional decimal for a nullable numeric column.
func decimalString(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.String()
}

package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cadence says whether a document covers a whole month or a single day.
// Monthly documents are singular per (customer, account, month); daily
// documents are additive, one per date.
type Cadence string

const (
	CadenceMonthly Cadence = "monthly"
	CadenceDaily   Cadence = "daily"
)

// Row is one raw spreadsheet row as delivered by the table decoder,
// keyed by the original header strings.
type Row map[string]any

// Document is one uploaded sales export. It is never mutated after creation;
// a new upload for the same key replaces the prior document wholesale. The
// Sales cache is the only part rewritten in place (lazily on first read,
// eagerly when the customer's fee rate changes).
type Document struct {
	ID         uuid.UUID
	CustomerID string
	AccountID  string // optional terminal/account id
	Cadence    Cadence
	Month      string // YYYY-MM
	Date       string // YYYY-MM-DD, daily cadence only
	Headers    []string
	Rows       []Row
	Sales      []ParsedSale // derived cache, may be nil
	UploadedAt time.Time
}

// Period returns the document's reference period string for its cadence.
func (d *Document) Period() string {
	if d.Cadence == CadenceDaily {
		return d.Date
	}

	return d.Month
}

// ParsedSale is one row translated into canonical fields.
type ParsedSale struct {
	Count          int             `json:"count"`
	Gross          decimal.Decimal `json:"gross"`
	Fee            decimal.Decimal `json:"fee"`
	Net            decimal.Decimal `json:"net"`
	SaleDate       string          `json:"sale_date"`
	SaleTime       string          `json:"sale_time"`
	MerchantName   string          `json:"merchant_name"`
	TaxID          string          `json:"tax_id"`
	PaymentMethod  string          `json:"payment_method"`
	Installments   int             `json:"installments"`
	CardBrand      string          `json:"card_brand"`
	Status         string          `json:"status"`
	SettlementType string          `json:"settlement_type"`
	SettlementDate string          `json:"settlement_date"`
	DeviceID       string          `json:"device_id"`
}

// Empty reports whether every cell of a raw row is blank.
func (r Row) Empty() bool {
	for _, v := range r {
		switch c := v.(type) {
		case nil:
		case string:
			if strings.TrimSpace(c) != "" {
				return false
			}
		default:
			return false
		}
	}

	return true
}

package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/report"
)

// Status is the payout lifecycle state, kept in the operators' own terms.
type Status string

const (
	StatusSent    Status = "enviado"
	StatusPending Status = "pendente"
	StatusNotSent Status = "nao_enviado"
)

// PeriodKey is the structured reporting period of a payout record. It
// replaces matching on the free-text label; legacy records without one are
// still matched through ParseLabel.
type PeriodKey struct {
	Cadence report.Cadence `json:"cadence"`
	Year    int            `json:"year"`
	Month   time.Month     `json:"month"`
	Day     int            `json:"day,omitempty"` // daily cadence only
}

// Transfer is one payout ledger row. Operators create and edit these freely;
// the propagator only rewrites the money fields of existing rows.
type Transfer struct {
	ID         uuid.UUID
	CustomerID string
	Period     string // free-text label, e.g. "15/01/2024" or "Janeiro/2024"
	PeriodKey  *PeriodKey
	Gross      decimal.Decimal
	Fee        decimal.Decimal
	Net        decimal.Decimal
	Status     Status
	SentAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// MatchesPeriod reports whether the record belongs to the given period.
// The structured key decides when both sides carry one; otherwise the
// comparison falls back to label equality.
func (t *Transfer) MatchesPeriod(key *PeriodKey, label string) bool {
	if t.PeriodKey != nil && key != nil {
		return *t.PeriodKey == *key
	}

	return label != "" && t.Period == label
}

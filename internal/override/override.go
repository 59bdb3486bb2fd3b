package override

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/report"
)

// Key identifies one override slice. Account, month, date and cadence are all
// optional: an override saved without period qualifiers acts as a general
// correction for the (customer, account, cadence), and one without a cadence
// applies across both cadences.
type Key struct {
	CustomerID string
	AccountID  string
	Cadence    report.Cadence
	Month      string // YYYY-MM
	Date       string // YYYY-MM-DD
}

// WithoutPeriod strips the period qualifiers, keeping the cadence scope.
func (k Key) WithoutPeriod() Key {
	k.Month = ""
	k.Date = ""

	return k
}

// WithoutCadence strips both the period qualifiers and the cadence.
func (k Key) WithoutCadence() Key {
	k = k.WithoutPeriod()
	k.Cadence = ""

	return k
}

// Override is an operator-entered correction. Any subset of the four value
// fields may be set; nil fields fall back to the computed snapshot value.
type Override struct {
	Key       Key
	Count     *int
	Gross     *decimal.Decimal
	Fee       *decimal.Decimal
	Net       *decimal.Decimal
	UpdatedAt time.Time
}

// Computed carries the snapshot values an override is merged over.
type Computed struct {
	Count int
	Gross decimal.Decimal
	Fee   decimal.Decimal
	Net   decimal.Decimal
}

// Resolved is the merged view handed back to callers. Overridden tells the
// caller an operator value was applied, which flips the fee display from a
// percentage to an absolute amount.
type Resolved struct {
	Count      int             `json:"count"`
	Gross      decimal.Decimal `json:"gross"`
	Fee        decimal.Decimal `json:"fee"`
	Net        decimal.Decimal `json:"net"`
	Overridden bool            `json:"overridden"`
}

package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/insight"
	"github.com/dfreire7/repasse/internal/override"
	"github.com/dfreire7/repasse/internal/report"
)

// defaultFeeRate is the fallback applied when an override fixes gross but
// carries no explicit fee: fee = gross × 0.051.
var defaultFeeRate = decimal.NewFromFloat(0.051)

// Documents is the slice of the reporting service the revert path needs.
type Documents interface {
	Select(ctx context.Context, customerID, accountID string, cadence report.Cadence, period string) (*report.Document, error)
}

// Rates exposes the customer's configured fee-rate percentage, if any.
type Rates interface {
	Rate(ctx context.Context, customerID string) (decimal.Decimal, bool, error)
}

// Propagator rewrites the money fields of payout records whose period
// matches an override: saved override values on Apply, freshly recomputed
// figures on Revert. It never creates records, only updates them, and one
// record's failure never blocks the rest.
type Propagator struct {
	store     Store
	documents Documents
	rates     Rates
}

func NewPropagator(store Store, documents Documents, rates Rates) *Propagator {
	return &Propagator{store: store, documents: documents, rates: rates}
}

// Apply implements override.Propagation. Matching is customer + period
// scoped; the account id is deliberately not part of the match key.
func (p *Propagator) Apply(ctx context.Context, ov *override.Override) error {
	key, ok := PeriodOf(ov.Key.Cadence, ov.Key.Month, ov.Key.Date)
	if !ok {
		// A general override without a period qualifier has no ledger rows
		// to match.
		return nil
	}

	return p.rewrite(ctx, ov.Key.CustomerID, key, func(rec *Transfer) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
		return resolveAmounts(rec, ov)
	})
}

// Revert pushes the slice's recomputed figures back into matching payout
// records after an override is removed, so the ledger reflects the period's
// own numbers again.
func (p *Propagator) Revert(ctx context.Context, ovKey override.Key) error {
	key, ok := PeriodOf(ovKey.Cadence, ovKey.Month, ovKey.Date)
	if !ok {
		return nil
	}

	period := ovKey.Month
	if ovKey.Cadence == report.CadenceDaily {
		period = ovKey.Date
	}

	doc, err := p.documents.Select(ctx, ovKey.CustomerID, ovKey.AccountID, ovKey.Cadence, period)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			// No document means no computed figures to restore.
			return nil
		}

		return fmt.Errorf("selecting document: %w", err)
	}

	rate, err := p.customerRate(ctx, ovKey.CustomerID)
	if err != nil {
		return err
	}

	snap := insight.Compute(doc, rate)

	return p.rewrite(ctx, ovKey.CustomerID, key, func(*Transfer) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
		return snap.Gross, snap.Fee, snap.Net
	})
}

// rewrite updates the money fields of every record matching the period,
// isolating per-record failures.
func (p *Propagator) rewrite(ctx context.Context, customerID string, key PeriodKey,
	amounts func(rec *Transfer) (gross, fee, net decimal.Decimal)) error {
	label := Label(key)

	records, err := p.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("listing transfers: %w", err)
	}

	var failed int

	for _, rec := range records {
		if !rec.MatchesPeriod(&key, label) {
			continue
		}

		gross, fee, net := amounts(rec)

		update := UpdateParams{Gross: &gross, Fee: &fee, Net: &net}
		if err := p.store.Update(ctx, rec.ID, update); err != nil {
			failed++

			slog.Error("transfer propagation failed",
				"transfer_id", rec.ID,
				"customer_id", customerID,
				"period", label,
				"error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d transfer update(s) failed for period %s", failed, label)
	}

	return nil
}

func (p *Propagator) customerRate(ctx context.Context, customerID string) (*decimal.Decimal, error) {
	if p.rates == nil {
		return nil, nil
	}

	rate, ok, err := p.rates.Rate(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetching fee rate: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return &rate, nil
}

// resolveAmounts merges the override over one record's money fields. Fee
// falls back to gross × 0.051 when only gross was overridden, and net to
// gross − fee when no explicit net exists.
func resolveAmounts(rec *Transfer, ov *override.Override) (gross, fee, net decimal.Decimal) {
	gross = rec.Gross
	if ov.Gross != nil {
		gross = *ov.Gross
	}

	switch {
	case ov.Fee != nil:
		fee = *ov.Fee
	case ov.Gross != nil:
		fee = gross.Mul(defaultFeeRate).Round(2)
	default:
		fee = rec.Fee
	}

	if ov.Net != nil {
		net = *ov.Net
	} else {
		net = gross.Sub(fee).Round(2)
	}

	return gross, fee, net
}

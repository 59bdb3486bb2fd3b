package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/override"
	"github.com/dfreire7/repasse/internal/report"
)

// Documents is the slice of the report service the query path needs.
type Documents interface {
	Select(ctx context.Context, customerID, accountID string, cadence report.Cadence, period string) (*report.Document, error)
	EnsureSales(ctx context.Context, doc *report.Document) ([]report.ParsedSale, error)
}

type Rates interface {
	Rate(ctx context.Context, customerID string) (decimal.Decimal, bool, error)
}

type Overrides interface {
	Resolve(ctx context.Context, key override.Key, computed override.Computed) (override.Resolved, error)
}

// Service answers "what are the metrics for this slice": it selects the
// document, computes a fresh snapshot and merges any operator override over
// it. Computation itself does no I/O and is safe to fan out across slices.
type Service struct {
	documents Documents
	rates     Rates
	overrides Overrides
}

func NewService(documents Documents, rates Rates, overrides Overrides) *Service {
	return &Service{documents: documents, rates: rates, overrides: overrides}
}

// Query identifies the requested slice. Month and Date are optional; without
// the cadence's period the most recent available one is used.
type Query struct {
	CustomerID string
	AccountID  string
	Cadence    report.Cadence
	Month      string // YYYY-MM
	Date       string // YYYY-MM-DD
}

// Result is the resolved view for one slice: the raw computed snapshot, the
// override-merged values and the period the selector landed on.
type Result struct {
	Period   string            `json:"period"`
	Snapshot Snapshot          `json:"snapshot"`
	Resolved override.Resolved `json:"resolved"`
}

func (s *Service) Metrics(ctx context.Context, q Query) (*Result, error) {
	period := q.Month
	if q.Cadence == report.CadenceDaily {
		period = q.Date
	}

	doc, err := s.documents.Select(ctx, q.CustomerID, q.AccountID, q.Cadence, period)
	if err != nil {
		return nil, err
	}

	// The secondary stats want cached sales; a failed cache write still
	// returns the freshly mapped sales, so only log it.
	if _, err := s.documents.EnsureSales(ctx, doc); err != nil {
		slog.Warn("parsed sale cache refresh failed",
			"customer_id", q.CustomerID,
			"period", doc.Period(),
			"error", err)
	}

	rate, err := s.customerRate(ctx, q.CustomerID)
	if err != nil {
		return nil, err
	}

	snap := Compute(doc, rate)

	resolved, err := s.overrides.Resolve(ctx, override.Key{
		CustomerID: q.CustomerID,
		AccountID:  q.AccountID,
		Cadence:    doc.Cadence,
		Month:      doc.Month,
		Date:       doc.Date,
	}, override.Computed{
		Count: snap.TotalCount,
		Gross: snap.Gross,
		Fee:   snap.Fee,
		Net:   snap.Net,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving override: %w", err)
	}

	return &Result{
		Period:   doc.Period(),
		Snapshot: snap,
		Resolved: resolved,
	}, nil
}

func (s *Service) customerRate(ctx context.Context, customerID string) (*decimal.Decimal, error) {
	rate, ok, err := s.rates.Rate(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetching fee rate: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return &rate, nil
}

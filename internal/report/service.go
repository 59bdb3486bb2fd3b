package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/notify"
)

// ErrNotFound is returned when no document exists for the requested slice.
var ErrNotFound = errors.New("document not found")

// Key identifies one stored document. Period is the month (YYYY-MM) for
// monthly cadence and the date (YYYY-MM-DD) for daily cadence.
type Key struct {
	CustomerID string
	AccountID  string
	Cadence    Cadence
	Period     string
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=report
type Store interface {
	GetDocument(ctx context.Context, key Key) (*Document, error)
	PutDocument(ctx context.Context, doc *Document) error
	DeleteDocuments(ctx context.Context, customerID, accountID string) error
	ListPeriods(ctx context.Context, customerID, accountID string, cadence Cadence) ([]string, error)
	ListDocuments(ctx context.Context, customerID string) ([]*Document, error)
	UpdateSales(ctx context.Context, key Key, sales []ParsedSale) error
}

// FeeRates exposes the customer's configured fee-rate percentage, if any.
type FeeRates interface {
	Rate(ctx context.Context, customerID string) (decimal.Decimal, bool, error)
}

type Service struct {
	store    Store
	rates    FeeRates
	notifier *notify.Hub
}

func NewService(store Store, rates FeeRates, notifier *notify.Hub) *Service {
	return &Service{store: store, rates: rates, notifier: notifier}
}

// UploadParams carries a decoded spreadsheet plus its slice identity.
type UploadParams struct {
	CustomerID string
	AccountID  string
	Cadence    Cadence
	Month      string // YYYY-MM
	Date       string // YYYY-MM-DD, required for daily cadence
	Headers    []string
	Rows       []Row
}

// Upload stores a decoded document, replacing any prior document with the
// same key, and eagerly caches its parsed sales. A "document updated" event
// is emitted on success.
func (s *Service) Upload(ctx context.Context, params UploadParams) (*Document, error) {
	if params.CustomerID == "" {
		return nil, errors.New("customer id is required")
	}

	if params.Cadence == CadenceDaily && params.Date == "" {
		return nil, errors.New("daily documents require a date")
	}

	if params.Month == "" {
		return nil, errors.New("reference month is required")
	}

	rate, err := s.customerRate(ctx, params.CustomerID)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		CustomerID: params.CustomerID,
		AccountID:  params.AccountID,
		Cadence:    params.Cadence,
		Month:      params.Month,
		Date:       params.Date,
		Headers:    params.Headers,
		Rows:       params.Rows,
		Sales:      MapRows(params.Headers, params.Rows, rate),
		UploadedAt: time.Now().UTC(),
	}

	if err := s.store.PutDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("storing document: %w", err)
	}

	s.notifier.Publish(notify.Event{
		Name:       notify.EventDocumentUpdated,
		CustomerID: doc.CustomerID,
		AccountID:  doc.AccountID,
		Cadence:    string(doc.Cadence),
		Month:      doc.Month,
		Date:       doc.Date,
	})

	return doc, nil
}

// Select picks the document for the requested slice. With an explicit period
// it fetches exactly that slice; without one it falls back to the most recent
// available period for the (customer, account, cadence). Monthly and daily
// selections never borrow each other's periods.
func (s *Service) Select(ctx context.Context, customerID, accountID string, cadence Cadence, period string) (*Document, error) {
	if period != "" {
		return s.store.GetDocument(ctx, Key{
			CustomerID: customerID,
			AccountID:  accountID,
			Cadence:    cadence,
			Period:     period,
		})
	}

	periods, err := s.store.ListPeriods(ctx, customerID, accountID, cadence)
	if err != nil {
		return nil, fmt.Errorf("listing periods: %w", err)
	}

	if len(periods) == 0 {
		return nil, ErrNotFound
	}

	// ListPeriods is sorted most-recent-first.
	return s.store.GetDocument(ctx, Key{
		CustomerID: customerID,
		AccountID:  accountID,
		Cadence:    cadence,
		Period:     periods[0],
	})
}

// Periods lists the available reference periods, most recent first.
func (s *Service) Periods(ctx context.Context, customerID, accountID string, cadence Cadence) ([]string, error) {
	return s.store.ListPeriods(ctx, customerID, accountID, cadence)
}

// EnsureSales returns the document's parsed sales, regenerating the cache
// when it is absent and persisting the regenerated copy. Cache writes are
// best-effort: a store failure is reported but the freshly mapped sales are
// still returned.
func (s *Service) EnsureSales(ctx context.Context, doc *Document) ([]ParsedSale, error) {
	if doc.Sales != nil {
		return doc.Sales, nil
	}

	rate, err := s.customerRate(ctx, doc.CustomerID)
	if err != nil {
		return nil, err
	}

	doc.Sales = MapRows(doc.Headers, doc.Rows, rate)

	key := Key{CustomerID: doc.CustomerID, AccountID: doc.AccountID, Cadence: doc.Cadence, Period: doc.Period()}
	if err := s.store.UpdateSales(ctx, key, doc.Sales); err != nil {
		return doc.Sales, fmt.Errorf("caching parsed sales: %w", err)
	}

	return doc.Sales, nil
}

// Reprice regenerates the cached sales of every document owned by the
// customer against a new fee rate. Called by the fee-rate service on change.
func (s *Service) Reprice(ctx context.Context, customerID string, rate decimal.Decimal) error {
	docs, err := s.store.ListDocuments(ctx, customerID)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	for _, doc := range docs {
		sales := doc.Sales
		if sales == nil {
			sales = MapRows(doc.Headers, doc.Rows, &rate)
		} else {
			sales = Reprice(sales, rate)
		}

		key := Key{CustomerID: doc.CustomerID, AccountID: doc.AccountID, Cadence: doc.Cadence, Period: doc.Period()}
		if err := s.store.UpdateSales(ctx, key, sales); err != nil {
			return fmt.Errorf("repricing document %s: %w", doc.ID, err)
		}
	}

	return nil
}

// Delete removes every document for the customer/account pair.
func (s *Service) Delete(ctx context.Context, customerID, accountID string) error {
	return s.store.DeleteDocuments(ctx, customerID, accountID)
}

func (s *Service) customerRate(ctx context.Context, customerID string) (*decimal.Decimal, error) {
	if s.rates == nil {
		return nil, nil
	}

	rate, ok, err := s.rates.Rate(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetching fee rate: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return &rate, nil
}

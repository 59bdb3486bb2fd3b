// Package feerate manages the per-customer fee percentage applied when a
// sheet carries no usable fee column.
package feerate

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/report"
)

var ErrNotFound = errors.New("fee rate not found")

//go:generate mockgen -source=service.go -destination=store_mock.go -package=feerate
type Store interface {
	// Rate returns the configured percentage and whether one is set.
	Rate(ctx context.Context, customerID string) (decimal.Decimal, bool, error)
	SetRate(ctx context.Context, customerID string, rate decimal.Decimal) error
	ClearRate(ctx context.Context, customerID string) error
}

type Service struct {
	store   Store
	reports *report.Service
}

func NewService(store Store, reports *report.Service) *Service {
	return &Service{store: store, reports: reports}
}

func (s *Service) Rate(ctx context.Context, customerID string) (decimal.Decimal, bool, error) {
	return s.store.Rate(ctx, customerID)
}

// Set saves the customer's rate and eagerly reprices every cached parsed
// sale, so derived fee/net stay consistent with the configured rate.
func (s *Service) Set(ctx context.Context, customerID string, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errors.New("fee rate cannot be negative")
	}

	if err := s.store.SetRate(ctx, customerID, rate); err != nil {
		return fmt.Errorf("saving fee rate: %w", err)
	}

	if err := s.reports.Reprice(ctx, customerID, rate); err != nil {
		return fmt.Errorf("repricing cached sales: %w", err)
	}

	return nil
}

func (s *Service) Clear(ctx context.Context, customerID string) error {
	return s.store.ClearRate(ctx, customerID)
}

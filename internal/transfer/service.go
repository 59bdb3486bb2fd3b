package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transfer not found")

//go:generate mockgen -source=service.go -destination=store_mock.go -package=transfer
type Store interface {
	CreateTransfer(ctx context.Context, t *Transfer) error
	GetTransfer(ctx context.Context, id uuid.UUID) (*Transfer, error)
	ListTransfers(ctx context.Context) ([]*Transfer, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Transfer, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) error
	DeleteTransfer(ctx context.Context, id uuid.UUID) error
}

// UpdateParams is a partial update; nil fields are left untouched. PeriodKey
// travels with Period: when the label changes, the stored structured period
// is rewritten too (cleared when the new label doesn't parse).
type UpdateParams struct {
	Period    *string
	PeriodKey *PeriodKey
	Gross     *decimal.Decimal
	Fee       *decimal.Decimal
	Net       *decimal.Decimal
	Status    *Status
	SentAt    *time.Time
}

// Service is the operator-facing CRUD surface of the payout ledger.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateParams struct {
	CustomerID string
	Period     string
	Gross      decimal.Decimal
	Fee        decimal.Decimal
	Net        decimal.Decimal
	Status     Status
	SentAt     *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transfer, error) {
	t := &Transfer{
		CustomerID: params.CustomerID,
		Period:     params.Period,
		Gross:      params.Gross,
		Fee:        params.Fee,
		Net:        params.Net,
		Status:     params.Status,
		SentAt:     params.SentAt,
	}

	if t.Status == "" {
		t.Status = StatusNotSent
	}

	// Backfill the structured period from the label so new records match
	// without string comparison.
	if key, ok := ParseLabel(t.Period); ok {
		t.PeriodKey = &key
	}

	if err := s.store.CreateTransfer(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transfer, error) {
	return s.store.GetTransfer(ctx, id)
}

// List returns the ledger for one customer, or every record when customerID
// is empty.
func (s *Service) List(ctx context.Context, customerID string) ([]*Transfer, error) {
	if customerID == "" {
		return s.store.ListTransfers(ctx)
	}

	return s.store.ListByCustomer(ctx, customerID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) error {
	if params.Period != nil {
		params.PeriodKey = nil

		if key, ok := ParseLabel(*params.Period); ok {
			params.PeriodKey = &key
		}
	}

	return s.store.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteTransfer(ctx, id)
}

package override

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dfreire7/repasse/internal/notify"
)

// ErrNotFound is returned by stores when no override exists for a key.
var ErrNotFound = errors.New("override not found")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=override
type Store interface {
	Get(ctx context.Context, key Key) (*Override, error)
	Put(ctx context.Context, ov *Override) error
	// Delete is idempotent: deleting a missing override is a no-op.
	Delete(ctx context.Context, key Key) error
}

// Propagation keeps payout records in step with the override state: Apply
// pushes a saved override into matching records, Revert restores the
// recomputed figures after one is removed.
type Propagation interface {
	Apply(ctx context.Context, ov *Override) error
	Revert(ctx context.Context, key Key) error
}

type Service struct {
	store      Store
	propagator Propagation
	notifier   *notify.Hub
}

func NewService(store Store, propagator Propagation, notifier *notify.Hub) *Service {
	return &Service{store: store, propagator: propagator, notifier: notifier}
}

// Resolve merges any saved override over the computed snapshot values.
// Each of count/gross/fee/net takes the override's value when set and the
// computed value otherwise; a partial override never blanks unset fields.
//
// Lookup falls back from the exact key to the cadence-scoped general
// override, then to the cadence-less one; with nothing found every value is
// the computed one.
func (s *Service) Resolve(ctx context.Context, key Key, computed Computed) (Resolved, error) {
	ov, err := s.lookup(ctx, key)
	if err != nil {
		return Resolved{}, err
	}

	resolved := Resolved{
		Count: computed.Count,
		Gross: computed.Gross,
		Fee:   computed.Fee,
		Net:   computed.Net,
	}

	if ov == nil {
		return resolved, nil
	}

	resolved.Overridden = true

	if ov.Count != nil {
		resolved.Count = *ov.Count
	}

	if ov.Gross != nil {
		resolved.Gross = *ov.Gross
	}

	if ov.Fee != nil {
		resolved.Fee = *ov.Fee
	}

	if ov.Net != nil {
		resolved.Net = *ov.Net
	}

	return resolved, nil
}

func (s *Service) lookup(ctx context.Context, key Key) (*Override, error) {
	for _, k := range []Key{key, key.WithoutPeriod(), key.WithoutCadence()} {
		ov, err := s.store.Get(ctx, k)
		if err == nil {
			return ov, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("fetching override: %w", err)
		}
	}

	return nil, nil
}

// Save upserts the override, notifies dependent views and propagates the
// values into matching payout records. Propagation failures are logged and
// never roll back the save.
func (s *Service) Save(ctx context.Context, ov *Override) error {
	if ov.Key.CustomerID == "" {
		return errors.New("customer id is required")
	}

	if err := s.store.Put(ctx, ov); err != nil {
		return fmt.Errorf("saving override: %w", err)
	}

	s.publish(ov.Key)

	if s.propagator != nil {
		if err := s.propagator.Apply(ctx, ov); err != nil {
			slog.Error("override propagation failed",
				"customer_id", ov.Key.CustomerID,
				"cadence", ov.Key.Cadence,
				"error", err)
		}
	}

	return nil
}

// Delete removes the override so computed values apply again, then pushes
// the recomputed figures back into matching payout records. Deleting a
// missing override is a no-op, and the underlying document is untouched.
// Like Save, propagation failures are logged and never undo the delete.
func (s *Service) Delete(ctx context.Context, key Key) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}

	s.publish(key)

	if s.propagator != nil {
		if err := s.propagator.Revert(ctx, key); err != nil {
			slog.Error("override revert propagation failed",
				"customer_id", key.CustomerID,
				"cadence", key.Cadence,
				"error", err)
		}
	}

	return nil
}

// Get fetches the override stored for the exact key, without fallback.
func (s *Service) Get(ctx context.Context, key Key) (*Override, error) {
	return s.store.Get(ctx, key)
}

func (s *Service) publish(key Key) {
	s.notifier.Publish(notify.Event{
		Name:       notify.EventOverrideUpdated,
		CustomerID: key.CustomerID,
		AccountID:  key.AccountID,
		Cadence:    string(key.Cadence),
		Month:      key.Month,
		Date:       key.Date,
	})
}

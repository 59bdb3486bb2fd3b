package override_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dfreire7/repasse/internal/notify"
	"github.com/dfreire7/repasse/internal/override"
	"github.com/dfreire7/repasse/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestService_Resolve(t *testing.T) {
	key := override.Key{
		CustomerID: "cust-1",
		Cadence:    report.CadenceMonthly,
		Month:      "2024-01",
	}

	computed := override.Computed{
		Count: 10,
		Gross: dec("1000"),
		Fee:   dec("50"),
		Net:   dec("950"),
	}

	type testCase struct {
		name      string
		setupMock func(store *override.MockStore)
		want      override.Resolved
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "no override anywhere keeps computed values",
			setupMock: func(store *override.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, override.ErrNotFound)
				store.EXPECT().Get(gomock.Any(), key.WithoutPeriod()).Return(nil, override.ErrNotFound)
				store.EXPECT().Get(gomock.Any(), key.WithoutCadence()).Return(nil, override.ErrNotFound)
			},
			want: override.Resolved{
				Count: 10,
				Gross: dec("1000"),
				Fee:   dec("50"),
				Net:   dec("950"),
			},
		},
		{
			name: "partial override keeps unset fields",
			setupMock: func(store *override.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(&override.Override{
					Key:   key,
					Gross: decPtr("500"),
				}, nil)
			},
			want: override.Resolved{
				Count:      10,
				Gross:      dec("500"),
				Fee:        dec("50"),
				Net:        dec("950"),
				Overridden: true,
			},
		},
		{
			name: "full override replaces everything",
			setupMock: func(store *override.MockStore) {
				count := 7
				store.EXPECT().Get(gomock.Any(), key).Return(&override.Override{
					Key:   key,
					Count: &count,
					Gross: decPtr("2000"),
					Fee:   decPtr("102"),
					Net:   decPtr("1898"),
				}, nil)
			},
			want: override.Resolved{
				Count:      7,
				Gross:      dec("2000"),
				Fee:        dec("102"),
				Net:        dec("1898"),
				Overridden: true,
			},
		},
		{
			name: "falls back to the cadence-scoped general override",
			setupMock: func(store *override.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, override.ErrNotFound)
				store.EXPECT().Get(gomock.Any(), key.WithoutPeriod()).Return(&override.Override{
					Key: key.WithoutPeriod(),
					Net: decPtr("900"),
				}, nil)
			},
			want: override.Resolved{
				Count:      10,
				Gross:      dec("1000"),
				Fee:        dec("50"),
				Net:        dec("900"),
				Overridden: true,
			},
		},
		{
			name: "falls back to the cadence-less override",
			setupMock: func(store *override.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, override.ErrNotFound)
				store.EXPECT().Get(gomock.Any(), key.WithoutPeriod()).Return(nil, override.ErrNotFound)
				store.EXPECT().Get(gomock.Any(), key.WithoutCadence()).Return(&override.Override{
					Key:   key.WithoutCadence(),
					Gross: decPtr("1234"),
				}, nil)
			},
			want: override.Resolved{
				Count:      10,
				Gross:      dec("1234"),
				Fee:        dec("50"),
				Net:        dec("950"),
				Overridden: true,
			},
		},
		{
			name: "store failure is surfaced",
			setupMock: func(store *override.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := override.NewMockStore(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(store)
			}

			svc := override.NewService(store, nil, nil)
			got, err := svc.Resolve(context.Background(), key, computed)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.Equal(t, tt.want.Overridden, got.Overridden)
			assert.True(t, got.Gross.Equal(tt.want.Gross), "gross was %s", got.Gross)
			assert.True(t, got.Fee.Equal(tt.want.Fee), "fee was %s", got.Fee)
			assert.True(t, got.Net.Equal(tt.want.Net), "net was %s", got.Net)
		})
	}
}

func TestService_Save(t *testing.T) {
	ov := &override.Override{
		Key: override.Key{
			CustomerID: "cust-1",
			Cadence:    report.CadenceMonthly,
			Month:      "2024-01",
		},
		Gross: decPtr("2000"),
	}

	t.Run("saves propagates and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Put(gomock.Any(), ov).Return(nil)

		prop := override.NewMockPropagation(ctrl)
		prop.EXPECT().Apply(gomock.Any(), ov).Return(nil)

		hub := notify.NewHub()
		events, cancel := hub.Subscribe(1)
		defer cancel()

		svc := override.NewService(store, prop, hub)

		err := svc.Save(context.Background(), ov)
		require.NoError(t, err)

		ev := <-events
		assert.Equal(t, notify.EventOverrideUpdated, ev.Name)
		assert.Equal(t, "cust-1", ev.CustomerID)
	})

	t.Run("propagation failure does not roll back the save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Put(gomock.Any(), ov).Return(nil)

		prop := override.NewMockPropagation(ctrl)
		prop.EXPECT().Apply(gomock.Any(), ov).Return(errors.New("ledger down"))

		svc := override.NewService(store, prop, nil)

		err := svc.Save(context.Background(), ov)
		assert.NoError(t, err)
	})

	t.Run("missing customer id", func(t *testing.T) {
		svc := override.NewService(nil, nil, nil)

		err := svc.Save(context.Background(), &override.Override{})
		assert.Error(t, err)
	})

	t.Run("store failure skips propagation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Put(gomock.Any(), ov).Return(errors.New("db error"))

		prop := override.NewMockPropagation(ctrl)

		svc := override.NewService(store, prop, nil)

		err := svc.Save(context.Background(), ov)
		assert.Error(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	key := override.Key{CustomerID: "cust-1", Cadence: report.CadenceDaily, Date: "2024-01-15"}

	t.Run("deletes, notifies and reverts the propagated values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Delete(gomock.Any(), key).Return(nil)

		prop := override.NewMockPropagation(ctrl)
		prop.EXPECT().Revert(gomock.Any(), key).Return(nil)

		hub := notify.NewHub()
		events, cancel := hub.Subscribe(1)
		defer cancel()

		svc := override.NewService(store, prop, hub)

		err := svc.Delete(context.Background(), key)
		require.NoError(t, err)

		ev := <-events
		assert.Equal(t, notify.EventOverrideUpdated, ev.Name)
	})

	t.Run("revert failure does not undo the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Delete(gomock.Any(), key).Return(nil)

		prop := override.NewMockPropagation(ctrl)
		prop.EXPECT().Revert(gomock.Any(), key).Return(errors.New("ledger down"))

		svc := override.NewService(store, prop, nil)

		assert.NoError(t, svc.Delete(context.Background(), key))
	})

	t.Run("store failure skips the revert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Delete(gomock.Any(), key).Return(errors.New("db error"))

		prop := override.NewMockPropagation(ctrl)

		svc := override.NewService(store, prop, nil)

		assert.Error(t, svc.Delete(context.Background(), key))
	})

	t.Run("idempotent when nothing is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := override.NewMockStore(ctrl)
		store.EXPECT().Delete(gomock.Any(), key).Return(nil)

		svc := override.NewService(store, nil, nil)

		assert.NoError(t, svc.Delete(context.Background(), key))
	})
}

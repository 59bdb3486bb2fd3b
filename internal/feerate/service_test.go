package feerate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dfreire7/repasse/internal/feerate"
	"github.com/dfreire7/repasse/internal/report"
)

func TestService_Set(t *testing.T) {
	rate := decimal.RequireFromString("5.10")

	t.Run("saves the rate and reprices cached sales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := feerate.NewMockStore(ctrl)
		store.EXPECT().
			SetRate(gomock.Any(), "cust-1", rate).
			Return(nil)

		reportStore := report.NewMockStore(ctrl)
		reportStore.EXPECT().
			ListDocuments(gomock.Any(), "cust-1").
			Return([]*report.Document{
				{
					CustomerID: "cust-1",
					Cadence:    report.CadenceMonthly,
					Month:      "2024-01",
					Sales:      []report.ParsedSale{{Gross: decimal.RequireFromString("1000")}},
				},
			}, nil)
		reportStore.EXPECT().
			UpdateSales(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ report.Key, sales []report.ParsedSale) error {
				assert.True(t, sales[0].Fee.Equal(rate))

				return nil
			})

		svc := feerate.NewService(store, report.NewService(reportStore, nil, nil))

		err := svc.Set(context.Background(), "cust-1", rate)
		assert.NoError(t, err)
	})

	t.Run("negative rate is rejected before any write", func(t *testing.T) {
		svc := feerate.NewService(nil, nil)

		err := svc.Set(context.Background(), "cust-1", decimal.RequireFromString("-1"))
		assert.Error(t, err)
	})

	t.Run("store failure skips the reprice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := feerate.NewMockStore(ctrl)
		store.EXPECT().
			SetRate(gomock.Any(), "cust-1", rate).
			Return(errors.New("db error"))

		svc := feerate.NewService(store, nil)

		err := svc.Set(context.Background(), "cust-1", rate)
		assert.Error(t, err)
	})
}

func TestService_Rate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rate := decimal.RequireFromString("2.5")

	store := feerate.NewMockStore(ctrl)
	store.EXPECT().
		Rate(gomock.Any(), "cust-1").
		Return(rate, true, nil)

	svc := feerate.NewService(store, nil)

	got, ok, err := svc.Rate(context.Background(), "cust-1")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(rate))
}

func TestService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := feerate.NewMockStore(ctrl)
	store.EXPECT().
		ClearRate(gomock.Any(), "cust-1").
		Return(nil)

	svc := feerate.NewService(store, nil)

	assert.NoError(t, svc.Clear(context.Background(), "cust-1"))
}

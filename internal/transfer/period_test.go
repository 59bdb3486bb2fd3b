package transfer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfreire7/repasse/internal/report"
	"github.com/dfreire7/repasse/internal/transfer"
)

func TestLabel(t *testing.T) {
	daily := transfer.PeriodKey{Cadence: report.CadenceDaily, Year: 2024, Month: time.January, Day: 5}
	assert.Equal(t, "05/01/2024", transfer.Label(daily))

	monthly := transfer.PeriodKey{Cadence: report.CadenceMonthly, Year: 2024, Month: time.March}
	assert.Equal(t, "Março/2024", transfer.Label(monthly))
}

func TestPeriodOf(t *testing.T) {
	type args struct {
		cadence report.Cadence
		month   string
		date    string
	}

	type testCase struct {
		name   string
		args   args
		want   transfer.PeriodKey
		wantOk bool
	}

	tests := []testCase{
		{
			name: "monthly",
			args: args{cadence: report.CadenceMonthly, month: "2024-01"},
			want: transfer.PeriodKey{
				Cadence: report.CadenceMonthly,
				Year:    2024,
				Month:   time.January,
			},
			wantOk: true,
		},
		{
			name: "daily",
			args: args{cadence: report.CadenceDaily, date: "2024-01-15"},
			want: transfer.PeriodKey{
				Cadence: report.CadenceDaily,
				Year:    2024,
				Month:   time.January,
				Day:     15,
			},
			wantOk: true,
		},
		{
			name:   "monthly without a month",
			args:   args{cadence: report.CadenceMonthly},
			wantOk: false,
		},
		{
			name:   "daily without a date",
			args:   args{cadence: report.CadenceDaily, month: "2024-01"},
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transfer.PeriodOf(tt.args.cadence, tt.args.month, tt.args.date)

			assert.Equal(t, tt.wantOk, ok)

			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	type testCase struct {
		name   string
		label  string
		want   transfer.PeriodKey
		wantOk bool
	}

	tests := []testCase{
		{
			name:  "daily label",
			label: "15/01/2024",
			want: transfer.PeriodKey{
				Cadence: report.CadenceDaily,
				Year:    2024,
				Month:   time.January,
				Day:     15,
			},
			wantOk: true,
		},
		{
			name:  "monthly label",
			label: "Janeiro/2024",
			want: transfer.PeriodKey{
				Cadence: report.CadenceMonthly,
				Year:    2024,
				Month:   time.January,
			},
			wantOk: true,
		},
		{
			name:  "month name matched without accents or case",
			label: "marco/2024",
			want: transfer.PeriodKey{
				Cadence: report.CadenceMonthly,
				Year:    2024,
				Month:   time.March,
			},
			wantOk: true,
		},
		{
			name:  "surrounding whitespace",
			label: "  05/12/2023  ",
			want: transfer.PeriodKey{
				Cadence: report.CadenceDaily,
				Year:    2023,
				Month:   time.December,
				Day:     5,
			},
			wantOk: true,
		},
		{name: "day out of range", label: "32/01/2024", wantOk: false},
		{name: "month out of range", label: "15/13/2024", wantOk: false},
		{name: "unknown month name", label: "Januarius/2024", wantOk: false},
		{name: "garbage", label: "whenever", wantOk: false},
		{name: "empty", label: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transfer.ParseLabel(tt.label)

			assert.Equal(t, tt.wantOk, ok)

			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Every label the ledger can render must parse back to the key it came from.
func TestLabel_RoundTrip(t *testing.T) {
	keys := []transfer.PeriodKey{
		{Cadence: report.CadenceDaily, Year: 2024, Month: time.February, Day: 29},
		{Cadence: report.CadenceMonthly, Year: 2024, Month: time.January},
		{Cadence: report.CadenceMonthly, Year: 2025, Month: time.December},
	}

	for _, key := range keys {
		got, ok := transfer.ParseLabel(transfer.Label(key))

		require.True(t, ok, "label %q did not parse", transfer.Label(key))
		assert.Equal(t, key, got)
	}
}

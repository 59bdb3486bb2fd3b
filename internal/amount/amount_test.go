package amount_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfreire7/repasse/internal/amount"
)

func TestParseString(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{name: "brazilian thousands and decimal", in: "1.234,56", want: "1234.56"},
		{name: "brazilian millions", in: "1.234.567,89", want: "1234567.89"},
		{name: "comma only decimal", in: "1234,56", want: "1234.56"},
		{name: "plain decimal point", in: "1234.56", want: "1234.56"},
		{name: "bare dot is a decimal point not thousands", in: "1.234", want: "1.234"},
		{name: "integer", in: "150", want: "150"},
		{name: "currency prefix stripped", in: "R$ 1.234,56", want: "1234.56"},
		{name: "negative", in: "-42,10", want: "-42.1"},
		{name: "whitespace", in: "  99,90  ", want: "99.9"},
		{name: "empty string", in: "", want: "0"},
		{name: "blank string", in: "   ", want: "0"},
		{name: "unparseable text", in: "n/d", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)

			got := amount.ParseString(tt.in)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestParse(t *testing.T) {
	type testCase struct {
		name string
		in   any
		want string
	}

	tests := []testCase{
		{name: "nil", in: nil, want: "0"},
		{name: "float64 kept verbatim", in: 1234.56, want: "1234.56"},
		{name: "int", in: 42, want: "42"},
		{name: "int64", in: int64(7), want: "7"},
		{name: "decimal passthrough", in: decimal.RequireFromString("10.5"), want: "10.5"},
		{name: "string routed through parser", in: "1.234,56", want: "1234.56"},
		{name: "unsupported type", in: struct{}{}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)

			got := amount.Parse(tt.in)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestParseWith_Diagnostics(t *testing.T) {
	var diag amount.Diagnostics

	amount.ParseWith("abc", &diag)
	amount.ParseWith("1.234,56", &diag)
	amount.ParseWith("", &diag)
	amount.ParseWith("x-y-z", &diag)

	// Only the genuinely unparseable non-blank inputs are recorded.
	assert.Len(t, diag.Unparseable, 2)
	assert.Contains(t, diag.Unparseable, "abc")
	assert.Contains(t, diag.Unparseable, "x-y-z")
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, amount.ParseCount("3"))
	assert.Equal(t, 3, amount.ParseCount(3.0))
	assert.Equal(t, 0, amount.ParseCount("abc"))
	assert.Equal(t, 0, amount.ParseCount(nil))
	assert.Equal(t, 1, amount.ParseCount("1,0"))
}

func TestParseText(t *testing.T) {
	assert.Equal(t, "Visa", amount.ParseText("  Visa  "))
	assert.Equal(t, "", amount.ParseText(nil))
	assert.Equal(t, "12", amount.ParseText(12))
}

func TestFormatBR(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{name: "thousands", in: "1234.56", want: "1.234,56"},
		{name: "millions", in: "1234567.89", want: "1.234.567,89"},
		{name: "small", in: "42.1", want: "42,10"},
		{name: "zero", in: "0", want: "0,00"},
		{name: "negative", in: "-1234.5", want: "-1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, amount.FormatBR(decimal.RequireFromString(tt.in)))
		})
	}
}

// Formatting an amount in Brazilian notation and parsing it back must return
// the original value exactly, for any amount with two decimal places.
func TestFormatBR_RoundTrip(t *testing.T) {
	values := []string{"0", "0.01", "1", "999.99", "1234.56", "1234567.89", "-1234.56", "100000"}

	for _, v := range values {
		d := decimal.RequireFromString(v)

		back := amount.ParseString(amount.FormatBR(d))
		assert.True(t, back.Equal(d.Round(2)), "round-trip of %s gave %s", v, back)
	}
}

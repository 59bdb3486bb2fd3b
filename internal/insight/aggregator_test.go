package insight_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dfreire7/repasse/internal/insight"
	"github.com/dfreire7/repasse/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	type args struct {
		doc     *report.Document
		feeRate *decimal.Decimal
	}

	type testCase struct {
		name   string
		args   args
		verify func(t *testing.T, snap insight.Snapshot)
	}

	rate510 := dec("5.10")

	tests := []testCase{
		{
			name: "count column plus gross without a rate",
			args: args{
				doc: &report.Document{
					Headers: []string{"Quantidade de Vendas", "Valor Bruto"},
					Rows: []report.Row{
						{"Quantidade de Vendas": "3", "Valor Bruto": "1.234,56"},
					},
				},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.Equal(t, 3, snap.TotalCount)
				assert.True(t, snap.Gross.Equal(dec("1234.56")), "gross was %s", snap.Gross)
				assert.True(t, snap.Fee.IsZero())
				// Without any fee, net defaults to the full gross.
				assert.True(t, snap.Net.Equal(dec("1234.56")), "net was %s", snap.Net)
			},
		},
		{
			name: "configured rate derives fee and net",
			args: args{
				doc: &report.Document{
					Headers: []string{"Valor Bruto"},
					Rows: []report.Row{
						{"Valor Bruto": "1.234,56"},
					},
				},
				feeRate: &rate510,
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.True(t, snap.Fee.Equal(dec("62.96")), "fee was %s", snap.Fee)
				assert.True(t, snap.Net.Equal(dec("1171.60")), "net was %s", snap.Net)
			},
		},
		{
			name: "sheet net wins over derivation",
			args: args{
				doc: &report.Document{
					Headers: []string{"Valor Bruto", "Valor Líquido", "Taxa"},
					Rows: []report.Row{
						{"Valor Bruto": "1.000,00", "Valor Líquido": "940,00", "Taxa": "10"},
					},
				},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				// The fee suggests 900, but the sheet reports 940 net.
				assert.True(t, snap.Net.Equal(dec("940")), "net was %s", snap.Net)
				assert.True(t, snap.Fee.Equal(dec("100")), "fee was %s", snap.Fee)
			},
		},
		{
			name: "no count column falls back to non-empty rows",
			args: args{
				doc: &report.Document{
					Headers: []string{"Valor Bruto", "Status"},
					Rows: []report.Row{
						{"Valor Bruto": "100,00", "Status": "Aprovada"},
						{"Valor Bruto": "", "Status": ""},
						{"Valor Bruto": "200,00", "Status": "Aprovada"},
					},
				},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.Equal(t, 2, snap.TotalCount)
				assert.True(t, snap.Gross.Equal(dec("300")), "gross was %s", snap.Gross)
			},
		},
		{
			name: "uniform sheet fee column is taken as the rate",
			args: args{
				doc: &report.Document{
					Headers: []string{"Valor Bruto", "Taxa"},
					Rows: []report.Row{
						{"Valor Bruto": "1.000,00", "Taxa": "2,5"},
						{"Valor Bruto": "1.000,00", "Taxa": "2,5"},
					},
				},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.True(t, snap.FeeRate.Equal(dec("2.5")), "rate was %s", snap.FeeRate)
				// 2000 × 2.5% = 50
				assert.True(t, snap.Fee.Equal(dec("50")), "fee was %s", snap.Fee)
			},
		},
		{
			name: "mixed sheet fees are averaged",
			args: args{
				doc: &report.Document{
					Headers: []string{"Valor Bruto", "Taxa"},
					Rows: []report.Row{
						{"Valor Bruto": "1.000,00", "Taxa": "2"},
						{"Valor Bruto": "1.000,00", "Taxa": "4"},
					},
				},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.True(t, snap.FeeRate.Equal(dec("3")), "rate was %s", snap.FeeRate)
			},
		},
		{
			name: "loosened gross column matching",
			args: args{
				doc: &report.Document{
					Headers: []string{"Valor da Operação", "Valor Líquido"},
					Rows: []report.Row{
						{"Valor da Operação": "500,00", "Valor Líquido": "480,00"},
					},
				},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.True(t, snap.Gross.Equal(dec("500")), "gross was %s", snap.Gross)
				assert.True(t, snap.Net.Equal(dec("480")), "net was %s", snap.Net)
			},
		},
		{
			name: "empty document",
			args: args{
				doc: &report.Document{Headers: []string{"Valor Bruto"}},
			},
			verify: func(t *testing.T, snap insight.Snapshot) {
				assert.Equal(t, 0, snap.TotalCount)
				assert.True(t, snap.Gross.IsZero())
				assert.True(t, snap.Net.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := insight.Compute(tt.args.doc, tt.args.feeRate)
			tt.verify(t, snap)
		})
	}
}

func TestCompute_SecondaryStats(t *testing.T) {
	doc := &report.Document{
		Headers: []string{"Valor Bruto"},
		Sales: []report.ParsedSale{
			{MerchantName: "Padaria Central", PaymentMethod: "Crédito", CardBrand: "Visa", Installments: 3, Status: "Aprovada"},
			{MerchantName: "PADARIA CENTRAL", PaymentMethod: "Débito", CardBrand: "Visa", Status: "Aprovada"},
			{MerchantName: "Mercado Sul", PaymentMethod: "Pix", Installments: 1, Status: "Pendente"},
			{MerchantName: "Mercado Sul", PaymentMethod: "Pix", Status: "Cancelada"},
			{MerchantName: "Banca Norte", PaymentMethod: "Crédito", CardBrand: "Mastercard", Status: "Negada"},
		},
	}

	snap := insight.Compute(doc, nil)

	// Merchant names are compared normalized, so case doesn't split them.
	assert.Equal(t, 3, snap.Merchants)
	assert.Equal(t, 3, snap.PaymentMethods)
	assert.Equal(t, 2, snap.CardBrands)

	assert.Equal(t, 2, snap.Approved)
	assert.Equal(t, 1, snap.Pending)
	assert.Equal(t, 2, snap.Cancelled)

	// Mean over the sales that actually carry installments: (3 + 1) / 2.
	assert.True(t, snap.MeanInstallments.Equal(dec("2")), "mean was %s", snap.MeanInstallments)
}

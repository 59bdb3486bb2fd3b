package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dfreire7/repasse/internal/report"
)

func TestMapRow(t *testing.T) {
	headers := []string{
		"Data da Venda", "Estabelecimento", "Forma de Pagamento", "Parcelas",
		"Bandeira", "Valor Bruto", "Taxa", "Valor Líquido", "Status",
	}

	type args struct {
		row     report.Row
		feeRate *decimal.Decimal
	}

	type testCase struct {
		name   string
		args   args
		verify func(t *testing.T, sale report.ParsedSale)
	}

	rate := decimal.RequireFromString("5.10")

	tests := []testCase{
		{
			name: "full row without configured rate",
			args: args{
				row: report.Row{
					"Data da Venda":      "15/01/2024",
					"Estabelecimento":    "Padaria Central",
					"Forma de Pagamento": "Crédito",
					"Parcelas":           "3",
					"Bandeira":           "Visa",
					"Valor Bruto":        "1.234,56",
					"Taxa":               "2,5",
					"Valor Líquido":      "1.203,70",
					"Status":             "Aprovada",
				},
			},
			verify: func(t *testing.T, sale report.ParsedSale) {
				assert.Equal(t, "15/01/2024", sale.SaleDate)
				assert.Equal(t, "Padaria Central", sale.MerchantName)
				assert.Equal(t, 3, sale.Installments)
				assert.Equal(t, "Visa", sale.CardBrand)
				assert.True(t, sale.Gross.Equal(decimal.RequireFromString("1234.56")))
				assert.True(t, sale.Fee.Equal(decimal.RequireFromString("2.5")))
				assert.True(t, sale.Net.Equal(decimal.RequireFromString("1203.70")))
				assert.Equal(t, "Aprovada", sale.Status)
			},
		},
		{
			name: "configured rate replaces the sheet fee",
			args: args{
				row: report.Row{
					"Valor Bruto":   "1.000,00",
					"Taxa":          "2,5",
					"Valor Líquido": "975,00",
				},
				feeRate: &rate,
			},
			verify: func(t *testing.T, sale report.ParsedSale) {
				assert.True(t, sale.Fee.Equal(rate))
				// The sheet's own net is kept when present.
				assert.True(t, sale.Net.Equal(decimal.RequireFromString("975")))
			},
		},
		{
			name: "net derived from gross when sheet has none",
			args: args{
				row: report.Row{
					"Valor Bruto": "1.234,56",
				},
				feeRate: &rate,
			},
			verify: func(t *testing.T, sale report.ParsedSale) {
				// 1234.56 − 1234.56 × 5.10 / 100 = 1171.59744
				assert.True(t, sale.Net.Round(2).Equal(decimal.RequireFromString("1171.60")),
					"net was %s", sale.Net)
			},
		},
		{
			name: "unparseable cells degrade to zero",
			args: args{
				row: report.Row{
					"Valor Bruto":   "n/d",
					"Parcelas":      "-",
					"Valor Líquido": "",
				},
			},
			verify: func(t *testing.T, sale report.ParsedSale) {
				assert.True(t, sale.Gross.IsZero())
				assert.Equal(t, 0, sale.Installments)
				assert.True(t, sale.Net.IsZero())
			},
		},
		{
			name: "empty row",
			args: args{row: report.Row{}},
			verify: func(t *testing.T, sale report.ParsedSale) {
				assert.True(t, sale.Gross.IsZero())
				assert.Empty(t, sale.MerchantName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := report.MapRow(headers, tt.args.row, tt.args.feeRate)
			tt.verify(t, sale)
		})
	}
}

func TestReprice(t *testing.T) {
	sales := []report.ParsedSale{
		{
			Gross: decimal.RequireFromString("2000"),
			Fee:   decimal.RequireFromString("2.5"),
			Net:   decimal.RequireFromString("1950"),
		},
		{
			Gross: decimal.Zero,
			Fee:   decimal.RequireFromString("2.5"),
			Net:   decimal.Zero,
		},
	}

	rate := decimal.RequireFromString("10")

	out := report.Reprice(sales, rate)

	assert.True(t, out[0].Fee.Equal(rate))
	assert.True(t, out[0].Net.Equal(decimal.RequireFromString("1800")), "net was %s", out[0].Net)

	// A sale without gross gets the new rate but keeps its net untouched.
	assert.True(t, out[1].Fee.Equal(rate))
	assert.True(t, out[1].Net.IsZero())

	// The input slice is not mutated.
	assert.True(t, sales[0].Fee.Equal(decimal.RequireFromString("2.5")))
}

package report

import (
	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/amount"
	"github.com/dfreire7/repasse/internal/schema"
)

var oneHundred = decimal.NewFromInt(100)

// MapRow turns one raw row into a ParsedSale. Each canonical field is
// resolved against the document's headers independently; a field that fails
// to resolve or parse degrades to its zero value and never aborts the rest
// of the row.
//
// feeRate, when non-nil, is the customer's configured percentage and
// overrides whatever fee the row itself carries. When the row has no usable
// net value and both gross and the rate are positive, net is derived as
// gross − gross·rate/100.
func MapRow(headers []string, row Row, feeRate *decimal.Decimal) ParsedSale {
	sale := ParsedSale{
		Count:          amount.ParseCount(cell(headers, row, schema.FieldSaleCount)),
		Gross:          amount.Parse(cell(headers, row, schema.FieldGrossAmount)),
		Fee:            amount.Parse(cell(headers, row, schema.FieldFeeAmount)),
		Net:            amount.Parse(cell(headers, row, schema.FieldNetAmount)),
		SaleDate:       amount.ParseText(cell(headers, row, schema.FieldSaleDate)),
		SaleTime:       amount.ParseText(cell(headers, row, schema.FieldSaleTime)),
		MerchantName:   amount.ParseText(cell(headers, row, schema.FieldMerchantName)),
		TaxID:          amount.ParseText(cell(headers, row, schema.FieldTaxID)),
		PaymentMethod:  amount.ParseText(cell(headers, row, schema.FieldPaymentMethod)),
		Installments:   amount.ParseCount(cell(headers, row, schema.FieldInstallmentCount)),
		CardBrand:      amount.ParseText(cell(headers, row, schema.FieldCardBrand)),
		Status:         amount.ParseText(cell(headers, row, schema.FieldSaleStatus)),
		SettlementType: amount.ParseText(cell(headers, row, schema.FieldSettlementType)),
		SettlementDate: amount.ParseText(cell(headers, row, schema.FieldSettlementDate)),
		DeviceID:       amount.ParseText(cell(headers, row, schema.FieldDeviceID)),
	}

	if feeRate != nil {
		sale.Fee = *feeRate
	}

	if sale.Net.IsZero() && feeRate != nil && feeRate.IsPositive() && sale.Gross.IsPositive() {
		sale.Net = sale.Gross.Sub(sale.Gross.Mul(*feeRate).Div(oneHundred))
	}

	return sale
}

// MapRows maps a whole document's rows.
func MapRows(headers []string, rows []Row, feeRate *decimal.Decimal) []ParsedSale {
	sales := make([]ParsedSale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, MapRow(headers, row, feeRate))
	}

	return sales
}

// Reprice rewrites the derived fee and net of cached sales after the
// customer's fee rate changed: fee is reset to the new rate and net is
// recomputed from gross.
func Reprice(sales []ParsedSale, feeRate decimal.Decimal) []ParsedSale {
	out := make([]ParsedSale, len(sales))

	for i, s := range sales {
		s.Fee = feeRate

		if s.Gross.IsPositive() && feeRate.IsPositive() {
			s.Net = s.Gross.Sub(s.Gross.Mul(feeRate).Div(oneHundred))
		}

		out[i] = s
	}

	return out
}

func cell(headers []string, row Row, field schema.Field) any {
	header, ok := schema.Resolve(headers, field)
	if !ok {
		return nil
	}

	return row[header]
}

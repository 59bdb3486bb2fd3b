// Package insight folds a document's rows into period-level metrics.
//
// Primary totals (count, gross, net) are always summed straight from the raw
// rows, never from the parsed-sale cache, so they reflect the sheet even when
// the cache is stale. Cached sales only feed the secondary statistics.
package insight

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/amount"
	"github.com/dfreire7/repasse/internal/report"
	"github.com/dfreire7/repasse/internal/schema"
)

var (
	oneHundred = decimal.NewFromInt(100)

	// rateTolerance decides whether the sheet's fee column is a single
	// uniform rate or needs averaging.
	rateTolerance = decimal.NewFromFloat(0.01)
)

// Compute derives a Snapshot from a document. feeRate, when non-nil, is the
// customer's configured percentage and takes precedence over any rate the
// sheet itself carries.
func Compute(doc *report.Document, feeRate *decimal.Decimal) Snapshot {
	var snap Snapshot

	snap.TotalCount = sumCount(doc)
	snap.Gross = sumColumn(doc, findGrossColumn(doc.Headers))

	rate := effectiveRate(doc, feeRate)
	snap.FeeRate = rate
	snap.Fee = snap.Gross.Mul(rate).Div(oneHundred).Round(2)

	// The sheet's own net wins; deriving net from gross and fee is only a
	// fallback for sheets that don't report it. Never reverse this order.
	netHeader, netResolved := findColumn(doc.Headers, schema.FieldNetAmount, "valor", "liquido")

	net := decimal.Zero
	if netResolved {
		net = sumColumn(doc, netHeader)
	}

	if !netResolved || net.IsZero() {
		net = snap.Gross.Sub(snap.Fee).Round(2)
	}

	snap.Net = net

	fillSecondary(&snap, doc.Sales)

	return snap
}

// sumCount totals the sale-count column, falling back to the number of
// non-empty rows when no count column resolves.
func sumCount(doc *report.Document) int {
	header, ok := findColumn(doc.Headers, schema.FieldSaleCount, "quantidade", "venda")
	if ok {
		total := 0
		for _, row := range doc.Rows {
			total += amount.ParseCount(row[header])
		}

		return total
	}

	total := 0

	for _, row := range doc.Rows {
		if !row.Empty() {
			total++
		}
	}

	return total
}

// effectiveRate picks the customer's configured rate when present, otherwise
// derives one from the sheet's fee column: the first value when all values
// agree within tolerance, else the arithmetic mean.
func effectiveRate(doc *report.Document, configured *decimal.Decimal) decimal.Decimal {
	if configured != nil {
		return *configured
	}

	header, ok := findColumn(doc.Headers, schema.FieldFeeAmount, "taxa", "")
	if !ok {
		return decimal.Zero
	}

	var values []decimal.Decimal

	for _, row := range doc.Rows {
		if v, present := row[header]; present && amount.ParseText(v) != "" {
			values = append(values, amount.Parse(v))
		}
	}

	if len(values) == 0 {
		return decimal.Zero
	}

	uniform := true

	for _, v := range values[1:] {
		if v.Sub(values[0]).Abs().GreaterThan(rateTolerance) {
			uniform = false
			break
		}
	}

	if uniform {
		return values[0]
	}

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}

	return sum.Div(decimal.NewFromInt(int64(len(values))))
}

func sumColumn(doc *report.Document, header string) decimal.Decimal {
	sum := decimal.Zero

	if header == "" {
		return sum
	}

	for _, row := range doc.Rows {
		sum = sum.Add(amount.Parse(row[header]))
	}

	return sum
}

// findGrossColumn resolves the gross column with one extra loosening stage:
// any header containing "valor" that is neither the net nor the fee column.
func findGrossColumn(headers []string) string {
	if h, ok := findColumn(headers, schema.FieldGrossAmount, "valor", "bruto"); ok {
		return h
	}

	for _, h := range headers {
		n := schema.Normalize(h)
		if strings.Contains(n, "valor") && !strings.Contains(n, "liquido") && !strings.Contains(n, "taxa") {
			return h
		}
	}

	return ""
}

// findColumn applies the aggregator's loosening order: exact alias match
// first, then a header containing both keywords. The first header in column
// order wins at each stage.
func findColumn(headers []string, field schema.Field, kw1, kw2 string) (string, bool) {
	if h, ok := schema.ResolveExact(headers, field); ok {
		return h, true
	}

	for _, h := range headers {
		n := schema.Normalize(h)
		if strings.Contains(n, kw1) && (kw2 == "" || strings.Contains(n, kw2)) {
			return h, true
		}
	}

	return "", false
}

// fillSecondary derives the distinct/bucket statistics from cached sales.
// Without a cache they stay zero; the primary totals above don't depend on it.
func fillSecondary(snap *Snapshot, sales []report.ParsedSale) {
	if len(sales) == 0 {
		return
	}

	merchants := make(map[string]struct{})
	methods := make(map[string]struct{})
	brands := make(map[string]struct{})

	installments := 0
	withInstallments := 0

	for _, s := range sales {
		if s.MerchantName != "" {
			merchants[schema.Normalize(s.MerchantName)] = struct{}{}
		}

		if s.PaymentMethod != "" {
			methods[schema.Normalize(s.PaymentMethod)] = struct{}{}
		}

		if s.CardBrand != "" {
			brands[schema.Normalize(s.CardBrand)] = struct{}{}
		}

		if s.Installments > 0 {
			installments += s.Installments
			withInstallments++
		}

		switch status := schema.Normalize(s.Status); {
		case strings.Contains(status, "aprov"):
			snap.Approved++
		case strings.Contains(status, "pend"):
			snap.Pending++
		case strings.Contains(status, "cancel"), strings.Contains(status, "negad"):
			snap.Cancelled++
		}
	}

	snap.Merchants = len(merchants)
	snap.PaymentMethods = len(methods)
	snap.CardBrands = len(brands)

	if withInstallments > 0 {
		snap.MeanInstallments = decimal.NewFromInt(int64(installments)).
			Div(decimal.NewFromInt(int64(withInstallments))).Round(2)
	}
}

package insight

import "github.com/shopspring/decimal"

// Snapshot is the computed metrics for one document. It is never persisted;
// every request derives a fresh one from the document and the customer's
// fee-rate setting.
type Snapshot struct {
	TotalCount int             `json:"total_count"`
	Gross      decimal.Decimal `json:"gross"`
	Fee        decimal.Decimal `json:"fee"`
	Net        decimal.Decimal `json:"net"`
	FeeRate    decimal.Decimal `json:"fee_rate"` // effective percentage, zero when unknown

	Merchants        int             `json:"merchants"`
	PaymentMethods   int             `json:"payment_methods"`
	CardBrands       int             `json:"card_brands"`
	MeanInstallments decimal.Decimal `json:"mean_installments"`
	Approved         int             `json:"approved"`
	Pending          int             `json:"pending"`
	Cancelled        int             `json:"cancelled"`
}

package schema

// Field identifies one of the canonical data points a sales row may carry.
// The set is closed: resolving a header can only ever land on one of these.
type Field string

const (
	FieldSaleDate         Field = "sale_date"
	FieldSaleTime         Field = "sale_time"
	FieldMerchantName     Field = "merchant_name"
	FieldTaxID            Field = "tax_id"
	FieldPaymentMethod    Field = "payment_method"
	FieldInstallmentCount Field = "installment_count"
	FieldCardBrand        Field = "card_brand"
	FieldGrossAmount      Field = "gross_amount"
	FieldSaleStatus       Field = "sale_status"
	FieldSettlementType   Field = "settlement_type"
	FieldSettlementDate   Field = "settlement_date"
	FieldDeviceID         Field = "device_id"
	FieldNetAmount        Field = "net_amount"
	FieldFeeAmount        Field = "fee_amount"
	FieldSaleCount        Field = "sale_count"
)

// labels maps each field to its canonical (already normalized) label, used
// for the containment fallback when no alias matches.
var labels = map[Field]string{
	FieldSaleDate:         "data da venda",
	FieldSaleTime:         "hora da venda",
	FieldMerchantName:     "nome do estabelecimento",
	FieldTaxID:            "cnpj",
	FieldPaymentMethod:    "forma de pagamento",
	FieldInstallmentCount: "parcelas",
	FieldCardBrand:        "bandeira",
	FieldGrossAmount:      "valor bruto",
	FieldSaleStatus:       "status da venda",
	FieldSettlementType:   "tipo de recebimento",
	FieldSettlementDate:   "data de recebimento",
	FieldDeviceID:         "maquininha",
	FieldNetAmount:        "valor liquido",
	FieldFeeAmount:        "taxa",
	FieldSaleCount:        "quantidade de vendas",
}

// Label returns the canonical normalized label for a field.
func (f Field) Label() string {
	return labels[f]
}

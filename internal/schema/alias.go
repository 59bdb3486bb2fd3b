package schema

// aliases is the static table of known header synonyms per canonical field.
// Every entry is stored normalized (lowercase, trimmed, no diacritics) so the
// resolver can hit it with a plain map lookup. Acquirer back-offices rename
// these columns freely between export versions; adding support for a new
// layout is adding rows here.
var aliases = map[Field][]string{
	FieldSaleDate: {
		"data da venda",
		"data venda",
		"data",
		"data da transacao",
		"data transacao",
		"dia da venda",
		"data do pagamento",
	},
	FieldSaleTime: {
		"hora da venda",
		"hora venda",
		"hora",
		"horario",
		"hora da transacao",
	},
	FieldMerchantName: {
		"nome do estabelecimento",
		"estabelecimento",
		"nome fantasia",
		"razao social",
		"cliente",
		"loja",
		"nome",
	},
	FieldTaxID: {
		"cnpj",
		"cpf",
		"cpf/cnpj",
		"cnpj do estabelecimento",
		"documento",
		"num documento",
	},
	FieldPaymentMethod: {
		"forma de pagamento",
		"forma pagamento",
		"tipo de pagamento",
		"modalidade",
		"produto",
		"tipo de transacao",
		"meio de pagamento",
	},
	FieldInstallmentCount: {
		"parcelas",
		"numero de parcelas",
		"qtd parcelas",
		"qtde parcelas",
		"quantidade de parcelas",
		"plano",
	},
	FieldCardBrand: {
		"bandeira",
		"bandeira do cartao",
		"cartao",
		"adquirente",
	},
	FieldGrossAmount: {
		"valor bruto",
		"valor bruto da venda",
		"valor da venda",
		"valor venda",
		"valor",
		"bruto",
		"total",
		"valor total",
		"vl bruto",
		"valor original",
	},
	FieldSaleStatus: {
		"status da venda",
		"status",
		"situacao",
		"status da transacao",
	},
	FieldSettlementType: {
		"tipo de recebimento",
		"tipo recebimento",
		"recebimento",
		"antecipacao",
		"tipo de liquidacao",
	},
	FieldSettlementDate: {
		"data de recebimento",
		"data recebimento",
		"data de vencimento",
		"data prevista de pagamento",
		"previsao de pagamento",
		"data de liquidacao",
	},
	FieldDeviceID: {
		"maquininha",
		"terminal",
		"numero de serie",
		"serial",
		"numero do terminal",
		"pos",
		"equipamento",
	},
	FieldNetAmount: {
		"valor liquido",
		"valor liquido da venda",
		"liquido",
		"vl liquido",
		"valor a receber",
		"valor recebido",
	},
	FieldFeeAmount: {
		"taxa",
		"taxas",
		"valor da taxa",
		"taxa mdr",
		"mdr",
		"desconto",
		"taxa de desconto",
		"valor descontado",
		"tarifa",
	},
	FieldSaleCount: {
		"quantidade de vendas",
		"qtd de vendas",
		"qtd vendas",
		"qtde de vendas",
		"quantidade",
		"numero de vendas",
		"vendas",
		"transacoes",
		"quantidade de transacoes",
	},
}

package catalog

import "github.com/CesarJOtizM/didactic-succotash/internal/model"

// Default returns the built-in per-country catalog. Amounts are in the
// smallest unit of each local currency.
func Default() *Catalog {
	return New(map[string][]model.PaymentMethod{
		"CO": {
			{
				ID:             "co_credit_card",
				Name:           "credit_card",
				Type:           model.TypeCreditCard,
				CountryIsoCode: "CO",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      50000000,
					Currency:       "COP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 3.5},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Tarjeta de Crédito",
					Description:         "Paga con tu tarjeta de crédito Visa, Mastercard o American Express",
					IconURL:             "/icons/credit-card.svg",
					SupportedCurrencies: []string{"COP"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "co_pse",
				Name:           "pse",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "CO",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      5000,
					MaxAmount:      100000000,
					Currency:       "COP",
					ProcessingTime: "1-2 minutes",
					Fees:           model.MethodFees{Fixed: 2900, Percentage: 1.2},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "PSE",
					Description:         "Pago Seguro en Línea - Transferencia bancaria inmediata",
					IconURL:             "/icons/pse.svg",
					SupportedCurrencies: []string{"COP"},
					RequiresDocument:    true,
					InstantPayment:      true,
				},
			},
			{
				ID:             "co_nequi",
				Name:           "nequi",
				Type:           model.TypeDigitalWallet,
				CountryIsoCode: "CO",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      20000000,
					Currency:       "COP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 2.0},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Nequi",
					Description:         "Billetera digital de Bancolombia",
					IconURL:             "/icons/nequi.svg",
					SupportedCurrencies: []string{"COP"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "co_daviplata",
				Name:           "daviplata",
				Type:           model.TypeDigitalWallet,
				CountryIsoCode: "CO",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      15000000,
					Currency:       "COP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 2.5},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "DaviPlata",
					Description:         "Billetera digital del Banco Davivienda",
					IconURL:             "/icons/daviplata.svg",
					SupportedCurrencies: []string{"COP"},
					InstantPayment:      true,
				},
			},
		},
		"MX": {
			{
				ID:             "mx_credit_card",
				Name:           "credit_card",
				Type:           model.TypeCreditCard,
				CountryIsoCode: "MX",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      20,
					MaxAmount:      500000,
					Currency:       "MXN",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 3.8},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Tarjeta de Crédito",
					Description:         "Paga con Visa, Mastercard, American Express o Carnet",
					IconURL:             "/icons/credit-card.svg",
					SupportedCurrencies: []string{"MXN"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "mx_spei",
				Name:           "spei",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "MX",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      100,
					MaxAmount:      1000000,
					Currency:       "MXN",
					ProcessingTime: "1-3 hours",
					Fees:           model.MethodFees{Fixed: 15, Percentage: 1.0},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "SPEI",
					Description:         "Sistema de Pagos Electrónicos Interbancarios",
					IconURL:             "/icons/spei.svg",
					SupportedCurrencies: []string{"MXN"},
					RequiresDocument:    true,
				},
			},
			{
				ID:             "mx_oxxo",
				Name:           "oxxo",
				Type:           model.TypeCash,
				CountryIsoCode: "MX",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      20,
					MaxAmount:      10000,
					Currency:       "MXN",
					ProcessingTime: "2-24 hours",
					Fees:           model.MethodFees{Fixed: 10},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "OXXO",
					Description:         "Pago en efectivo en tiendas OXXO",
					IconURL:             "/icons/oxxo.svg",
					SupportedCurrencies: []string{"MXN"},
				},
			},
		},
		"BR": {
			{
				ID:             "br_credit_card",
				Name:           "credit_card",
				Type:           model.TypeCreditCard,
				CountryIsoCode: "BR",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      500,
					MaxAmount:      1000000,
					Currency:       "BRL",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 4.2},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Cartão de Crédito",
					Description:         "Pague com Visa, Mastercard, Elo ou American Express",
					IconURL:             "/icons/credit-card.svg",
					SupportedCurrencies: []string{"BRL"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "br_pix",
				Name:           "pix",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "BR",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      100,
					MaxAmount:      2000000,
					Currency:       "BRL",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 0.5},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "PIX",
					Description:         "Pagamento instantâneo do Banco Central do Brasil",
					IconURL:             "/icons/pix.svg",
					SupportedCurrencies: []string{"BRL"},
					RequiresDocument:    true,
					InstantPayment:      true,
				},
			},
			{
				ID:             "br_boleto",
				Name:           "boleto",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "BR",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      100,
					MaxAmount:      500000,
					Currency:       "BRL",
					ProcessingTime: "1-3 business days",
					Fees:           model.MethodFees{Fixed: 350, Percentage: 0.8},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Boleto Bancário",
					Description:         "Boleto para pagamento em bancos e casas lotéricas",
					IconURL:             "/icons/boleto.svg",
					SupportedCurrencies: []string{"BRL"},
					RequiresDocument:    true,
				},
			},
		},
		"US": {
			{
				ID:             "us_credit_card",
				Name:           "credit_card",
				Type:           model.TypeCreditCard,
				CountryIsoCode: "US",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      100,
					MaxAmount:      2500000,
					Currency:       "USD",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 2.9},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Credit Card",
					Description:         "Pay with Visa, Mastercard, Discover or American Express",
					IconURL:             "/icons/credit-card.svg",
					SupportedCurrencies: []string{"USD"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "us_ach",
				Name:           "ach",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "US",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      100,
					MaxAmount:      10000000,
					Currency:       "USD",
					ProcessingTime: "3-5 business days",
					Fees:           model.MethodFees{Fixed: 25},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "ACH Transfer",
					Description:         "Automated Clearing House bank transfer",
					IconURL:             "/icons/ach.svg",
					SupportedCurrencies: []string{"USD"},
					RequiresDocument:    true,
				},
			},
			{
				ID:             "us_paypal",
				Name:           "paypal",
				Type:           model.TypeDigitalWallet,
				CountryIsoCode: "US",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      100,
					MaxAmount:      5000000,
					Currency:       "USD",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 3.2},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "PayPal",
					Description:         "Pay with your PayPal account or linked card",
					IconURL:             "/icons/paypal.svg",
					SupportedCurrencies: []string{"USD"},
					InstantPayment:      true,
				},
			},
		},
		"AR": {
			{
				ID:             "ar_credit_card",
				Name:           "credit_card",
				Type:           model.TypeCreditCard,
				CountryIsoCode: "AR",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      10000000,
					Currency:       "ARS",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 5.2},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Tarjeta de Crédito",
					Description:         "Paga con Visa, Mastercard o American Express",
					IconURL:             "/icons/credit-card.svg",
					SupportedCurrencies: []string{"ARS"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "ar_mercado_pago",
				Name:           "mercado_pago",
				Type:           model.TypeDigitalWallet,
				CountryIsoCode: "AR",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      500,
					MaxAmount:      5000000,
					Currency:       "ARS",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 4.8},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Mercado Pago",
					Description:         "Billetera digital de Mercado Libre",
					IconURL:             "/icons/mercado-pago.svg",
					SupportedCurrencies: []string{"ARS"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "ar_rapipago",
				Name:           "rapipago",
				Type:           model.TypeCash,
				CountryIsoCode: "AR",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      500,
					MaxAmount:      200000,
					Currency:       "ARS",
					ProcessingTime: "2-24 hours",
					Fees:           model.MethodFees{Fixed: 150, Percentage: 2.0},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Rapipago",
					Description:         "Pago en efectivo en sucursales Rapipago",
					IconURL:             "/icons/rapipago.svg",
					SupportedCurrencies: []string{"ARS"},
				},
			},
		},
		"CL": {
			{
				ID:             "cl_credit_card",
				Name:           "credit_card",
				Type:           model.TypeCreditCard,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      30000000,
					Currency:       "CLP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 2.9},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Tarjeta de Crédito",
					Description:         "Paga con Visa, Mastercard o American Express",
					IconURL:             "/icons/credit-card.svg",
					SupportedCurrencies: []string{"CLP"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "cl_redcompra",
				Name:           "redcompra",
				Type:           model.TypeDebitCard,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      500,
					MaxAmount:      10000000,
					Currency:       "CLP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 1.9},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "RedCompra",
					Description:         "Tarjeta de débito del sistema nacional chileno",
					IconURL:             "/icons/redcompra.svg",
					SupportedCurrencies: []string{"CLP"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "cl_webpay",
				Name:           "webpay",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      50000000,
					Currency:       "CLP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 1.49},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Webpay Plus",
					Description:         "Sistema de pago seguro de Transbank",
					IconURL:             "/icons/webpay.svg",
					SupportedCurrencies: []string{"CLP"},
					RequiresDocument:    true,
					InstantPayment:      true,
				},
			},
			{
				ID:             "cl_khipu",
				Name:           "khipu",
				Type:           model.TypeBankTransfer,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      500,
					MaxAmount:      20000000,
					Currency:       "CLP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 0.69},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Khipu",
					Description:         "Transferencias bancarias simplificadas",
					IconURL:             "/icons/khipu.svg",
					SupportedCurrencies: []string{"CLP"},
					RequiresDocument:    true,
					InstantPayment:      true,
				},
			},
			{
				ID:             "cl_mach",
				Name:           "mach",
				Type:           model.TypeDigitalWallet,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      500,
					MaxAmount:      15000000,
					Currency:       "CLP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 2.2},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "MACH",
					Description:         "Billetera digital de Banco BCI",
					IconURL:             "/icons/mach.svg",
					SupportedCurrencies: []string{"CLP"},
					InstantPayment:      true,
				},
			},
			{
				ID:             "cl_servipag",
				Name:           "servipag",
				Type:           model.TypeCash,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      1000,
					MaxAmount:      5000000,
					Currency:       "CLP",
					ProcessingTime: "2-24 hours",
					Fees:           model.MethodFees{Fixed: 1200, Percentage: 1.5},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Servipag",
					Description:         "Pago en efectivo en sucursales Servipag",
					IconURL:             "/icons/servipag.svg",
					SupportedCurrencies: []string{"CLP"},
				},
			},
			{
				ID:             "cl_cleo",
				Name:           "cleo",
				Type:           model.TypeCredit,
				CountryIsoCode: "CL",
				Enabled:        true,
				Configuration: model.MethodConfiguration{
					MinAmount:      10000,
					MaxAmount:      2000000,
					Currency:       "CLP",
					ProcessingTime: "instant",
					Fees:           model.MethodFees{Percentage: 3.5},
				},
				Metadata: model.MethodMetadata{
					DisplayName:         "Cleo",
					Description:         "Compra ahora, paga después en cuotas",
					IconURL:             "/icons/cleo.svg",
					SupportedCurrencies: []string{"CLP"},
					RequiresDocument:    true,
					InstantPayment:      true,
				},
			},
		},
	})
}

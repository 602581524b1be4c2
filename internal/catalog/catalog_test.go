package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

func testCatalog() *Catalog {
	return New(map[string][]model.PaymentMethod{
		"CO": {
			{
				ID:      "co_card",
				Name:    "credit_card",
				Type:    model.TypeCreditCard,
				Enabled: true,
				Configuration: model.MethodConfiguration{
					MinAmount: 1000,
					MaxAmount: 50000,
					Currency:  "COP",
				},
			},
			{
				ID:      "co_wallet",
				Name:    "nequi",
				Type:    model.TypeDigitalWallet,
				Enabled: true,
				Configuration: model.MethodConfiguration{
					MinAmount: 500,
					Currency:  "COP",
				},
			},
			{
				ID:      "co_disabled",
				Name:    "daviplata",
				Type:    model.TypeDigitalWallet,
				Enabled: false,
				Configuration: model.MethodConfiguration{
					Currency: "COP",
				},
			},
		},
	})
}

func TestCatalog_MethodsForCountry(t *testing.T) {
	cat := testCatalog()

	t.Run("happy: returns all methods in catalog order", func(t *testing.T) {
		methods := cat.MethodsForCountry("CO")
		require.Len(t, methods, 3)
		assert.Equal(t, "co_card", methods[0].ID)
		assert.Equal(t, "co_wallet", methods[1].ID)
		assert.Equal(t, "co_disabled", methods[2].ID)
	})

	t.Run("happy: unknown country yields empty list, not error", func(t *testing.T) {
		methods := cat.MethodsForCountry("XX")
		assert.Empty(t, methods)
	})
}

func TestCatalog_EnabledMethods(t *testing.T) {
	cat := testCatalog()

	methods := cat.EnabledMethods("CO")
	require.Len(t, methods, 2)
	for _, m := range methods {
		assert.True(t, m.Enabled)
	}
}

func TestCatalog_EligibleMethods(t *testing.T) {
	cat := testCatalog()

	t.Run("happy: amount within all bounds", func(t *testing.T) {
		methods := cat.EligibleMethods("CO", 10000)
		require.Len(t, methods, 2)
		assert.Equal(t, "co_card", methods[0].ID)
		assert.Equal(t, "co_wallet", methods[1].ID)
	})

	t.Run("happy: amount below min filters method out", func(t *testing.T) {
		methods := cat.EligibleMethods("CO", 600)
		require.Len(t, methods, 1)
		assert.Equal(t, "co_wallet", methods[0].ID)
	})

	t.Run("happy: amount above max filters method out", func(t *testing.T) {
		methods := cat.EligibleMethods("CO", 60000)
		require.Len(t, methods, 1)
		assert.Equal(t, "co_wallet", methods[0].ID, "unbounded max admits any amount")
	})

	t.Run("happy: boundary amounts are inclusive", func(t *testing.T) {
		assert.Len(t, cat.EligibleMethods("CO", 1000), 2)
		assert.Len(t, cat.EligibleMethods("CO", 50000), 2)
	})

	t.Run("happy: disabled method never eligible regardless of bounds", func(t *testing.T) {
		for _, m := range cat.EligibleMethods("CO", 10000) {
			assert.NotEqual(t, "co_disabled", m.ID)
		}
	})

	t.Run("happy: unknown country yields empty list", func(t *testing.T) {
		assert.Empty(t, cat.EligibleMethods("ZZ", 10000))
	})
}

func TestCatalog_MethodByID(t *testing.T) {
	cat := testCatalog()

	t.Run("happy: found", func(t *testing.T) {
		m, ok := cat.MethodByID("co_wallet")
		require.True(t, ok)
		assert.Equal(t, "nequi", m.Name)
	})

	t.Run("bad: unknown id", func(t *testing.T) {
		_, ok := cat.MethodByID("nope")
		assert.False(t, ok)
	})
}

func TestDefault(t *testing.T) {
	cat := Default()

	t.Run("happy: covers the launch countries", func(t *testing.T) {
		assert.Equal(t, []string{"AR", "BR", "CL", "CO", "MX", "US"}, cat.SupportedCountries())
	})

	t.Run("happy: every method satisfies min <= max", func(t *testing.T) {
		for _, country := range cat.SupportedCountries() {
			for _, m := range cat.MethodsForCountry(country) {
				cfg := m.Configuration
				if cfg.MinAmount > 0 && cfg.MaxAmount > 0 {
					assert.LessOrEqual(t, cfg.MinAmount, cfg.MaxAmount, m.ID)
				}
				assert.Equal(t, country, m.CountryIsoCode, m.ID)
			}
		}
	})

	t.Run("happy: CO catalog eligible for mid-range amount", func(t *testing.T) {
		methods := cat.EligibleMethods("CO", 75000)
		require.Len(t, methods, 4)
	})
}

func TestPaymentMethod_FeeForAmount(t *testing.T) {
	m := model.PaymentMethod{
		Configuration: model.MethodConfiguration{
			Fees: model.MethodFees{Fixed: 2900, Percentage: 1.2},
		},
	}

	// 2900 fixed + 1.2% of 100000
	assert.Equal(t, int64(4100), m.FeeForAmount(100000))
}

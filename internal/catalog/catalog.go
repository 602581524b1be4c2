package catalog

import (
	"sort"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

// Catalog is a read-only, country-keyed table of payment methods. It is
// injected wherever method lookups are needed so tests can swap the data.
type Catalog struct {
	byCountry map[string][]model.PaymentMethod
}

func New(byCountry map[string][]model.PaymentMethod) *Catalog {
	return &Catalog{byCountry: byCountry}
}

// MethodsForCountry returns every method configured for the country, in
// catalog order. An unknown country yields an empty slice, never an error.
func (c *Catalog) MethodsForCountry(countryIsoCode string) []model.PaymentMethod {
	methods := c.byCountry[countryIsoCode]
	out := make([]model.PaymentMethod, len(methods))
	copy(out, methods)
	return out
}

// EnabledMethods filters MethodsForCountry down to enabled methods.
func (c *Catalog) EnabledMethods(countryIsoCode string) []model.PaymentMethod {
	var out []model.PaymentMethod
	for _, m := range c.byCountry[countryIsoCode] {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}

// EligibleMethods filters enabled methods down to those whose amount bounds
// admit the given amount. Order is preserved; the router relies on that.
func (c *Catalog) EligibleMethods(countryIsoCode string, amount int64) []model.PaymentMethod {
	var out []model.PaymentMethod
	for _, m := range c.byCountry[countryIsoCode] {
		if m.EligibleForAmount(amount) {
			out = append(out, m)
		}
	}
	return out
}

// MethodByID looks a method up across all countries.
func (c *Catalog) MethodByID(id string) (model.PaymentMethod, bool) {
	for _, methods := range c.byCountry {
		for _, m := range methods {
			if m.ID == id {
				return m, true
			}
		}
	}
	return model.PaymentMethod{}, false
}

// SupportedCountries lists country codes with at least one configured
// method, sorted for stable output.
func (c *Catalog) SupportedCountries() []string {
	codes := make([]string, 0, len(c.byCountry))
	for code := range c.byCountry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

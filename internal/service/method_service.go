package service

import (
	"github.com/CesarJOtizM/didactic-succotash/internal/catalog"
	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

type MethodService struct {
	catalog *catalog.Catalog
}

func NewMethodService(cat *catalog.Catalog) *MethodService {
	return &MethodService{catalog: cat}
}

// MethodWithFee pairs a catalog method with the fee it would charge for a
// concrete amount.
type MethodWithFee struct {
	Method model.PaymentMethod
	Fee    int64
}

// ListByCountry returns the enabled methods for a country. When amount is
// positive the list is narrowed to eligible methods and fees are computed.
func (s *MethodService) ListByCountry(countryIsoCode string, amount int64) ([]MethodWithFee, error) {
	if !countryCodeRe.MatchString(countryIsoCode) {
		return nil, &ValidationError{Field: "country", Message: "must be a 2-letter uppercase ISO code"}
	}

	var methods []model.PaymentMethod
	if amount > 0 {
		methods = s.catalog.EligibleMethods(countryIsoCode, amount)
	} else {
		methods = s.catalog.EnabledMethods(countryIsoCode)
	}

	out := make([]MethodWithFee, 0, len(methods))
	for _, m := range methods {
		entry := MethodWithFee{Method: m}
		if amount > 0 {
			entry.Fee = m.FeeForAmount(amount)
		}
		out = append(out, entry)
	}
	return out, nil
}

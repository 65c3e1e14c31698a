package pricing

import "incorply/internal/catalog"

// Incomplete is the sentinel returned when the selection does not yet carry
// enough information to price. It is never billable.
const Incomplete float64 = -1

// IsIncomplete reports whether p is the not-priceable sentinel.
func IsIncomplete(p float64) bool {
	return p < 0
}

// Resolve maps a (jurisdiction, state, companyType) selection to its base
// incorporation price. Every selection path, AI-recommended or manual, must
// go through this lookup so the price never depends on how the triple was
// chosen.
//
// Rules:
//   - missing jurisdiction or companyType          -> Incomplete
//   - USA jurisdiction without a state             -> Incomplete
//   - exact featured (jurisdiction,state,type) row -> that price
//   - any other USA combination                    -> DefaultUSAPrice
//   - any other international combination          -> DefaultInternationalPrice
func Resolve(cat *catalog.Catalog, jurisdiction, state, companyType string) float64 {
	if jurisdiction == "" || companyType == "" {
		return Incomplete
	}
	if jurisdiction == catalog.JurisdictionUSA && state == "" {
		return Incomplete
	}

	for _, row := range cat.FeaturedPrices {
		if row.Jurisdiction == jurisdiction && row.State == state && row.CompanyType == companyType {
			return row.Price
		}
	}

	if jurisdiction == catalog.JurisdictionUSA {
		return cat.DefaultUSAPrice
	}
	return cat.DefaultInternationalPrice
}

// GovernmentFee returns the mandatory filing fee for the given context.
func GovernmentFee(cat *catalog.Catalog, usaContext bool) float64 {
	if usaContext {
		return cat.Fees.USAState
	}
	return cat.Fees.InternationalGovernment
}

package catalog

import "strings"

// Well-known values the wizard branches on.
const (
	JurisdictionUSA    = "United States of America"
	RegionUSAExclusive = "USA (Exclusive Focus)"
)

// AddonDefinition is the immutable catalog entry for an ancillary service.
// Session state only references it by id; name/description/price live here.
type AddonDefinition struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Description     string  `json:"description" yaml:"description"`
	Price           float64 `json:"price" yaml:"price"`
	RequiresDetails bool    `json:"requires_details" yaml:"requires_details"`
}

// Package is a priced tier layered on top of the base incorporation price.
type Package struct {
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Features []string `json:"features" yaml:"features"`
}

// FeaturedPrice is an exact (jurisdiction, state, companyType) price row.
// State is empty for international rows.
type FeaturedPrice struct {
	Jurisdiction string  `json:"jurisdiction" yaml:"jurisdiction"`
	State        string  `json:"state" yaml:"state"`
	CompanyType  string  `json:"company_type" yaml:"company_type"`
	Price        float64 `json:"price" yaml:"price"`
}

type Fees struct {
	USAState                float64 `json:"usa_state" yaml:"usa_state"`
	InternationalGovernment float64 `json:"international_government" yaml:"international_government"`
}

// Catalog is the static configuration the wizard core reads from.
// It is never mutated after startup.
type Catalog struct {
	Regions                   []string          `json:"regions" yaml:"regions"`
	Jurisdictions             []string          `json:"jurisdictions" yaml:"jurisdictions"`
	USStates                  []string          `json:"us_states" yaml:"us_states"` // "FullName-Abbreviation"
	USCompanyTypes            []string          `json:"us_company_types" yaml:"us_company_types"`
	InternationalCompanyTypes []string          `json:"international_company_types" yaml:"international_company_types"`
	USAPackages               []Package         `json:"usa_packages" yaml:"usa_packages"`
	InternationalPackages     []Package         `json:"international_packages" yaml:"international_packages"`
	AddOns                    []AddonDefinition `json:"add_ons" yaml:"add_ons"`
	FeaturedPrices            []FeaturedPrice   `json:"featured_prices" yaml:"featured_prices"`
	DefaultUSAPrice           float64           `json:"default_usa_price" yaml:"default_usa_price"`
	DefaultInternationalPrice float64           `json:"default_international_price" yaml:"default_international_price"`
	Fees                      Fees              `json:"fees" yaml:"fees"`
}

// Addon looks up a catalog definition by id.
func (c *Catalog) Addon(id string) (AddonDefinition, bool) {
	for _, def := range c.AddOns {
		if def.ID == id {
			return def, true
		}
	}
	return AddonDefinition{}, false
}

// FindPackage looks up a package by name in the given tier list.
func FindPackage(list []Package, name string) (Package, bool) {
	for _, pkg := range list {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return Package{}, false
}

// CompanyTypesFor returns the valid company-type list for the given context.
func (c *Catalog) CompanyTypesFor(usContext bool) []string {
	if usContext {
		return c.USCompanyTypes
	}
	return c.InternationalCompanyTypes
}

// ValidCompanyType reports whether companyType belongs to the list for the context.
func (c *Catalog) ValidCompanyType(companyType string, usContext bool) bool {
	for _, t := range c.CompanyTypesFor(usContext) {
		if t == companyType {
			return true
		}
	}
	return false
}

// ValidRegion reports whether region is one of the enumerated regions.
func (c *Catalog) ValidRegion(region string) bool {
	for _, r := range c.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// StateLabel extracts the display name from a "FullName-Abbreviation" value.
// "Delaware-DE" -> "Delaware". Values without an abbreviation pass through.
func StateLabel(value string) string {
	if value == "" {
		return ""
	}
	if i := strings.LastIndex(value, "-"); i > 0 {
		return value[:i]
	}
	return value
}

package order

import (
	"fmt"
	"strings"

	"incorply/internal/catalog"
	"incorply/internal/pricing"
)

// Item ids for the incorporation-derived lines. Add-on lines reuse the
// catalog add-on id.
const (
	ItemIncorporationService = "incorporation_service"
	ItemPackageTier          = "incorporation_package_tier"
	ItemGovernmentFees       = "government_fees"
)

// Item is one billable line of the order. Items are always recomputed from
// the current snapshot, never patched incrementally.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}

// DeriveItems recomputes the billable lines from the snapshot. It is a pure
// function of the incorporation selection, the add-on selections and the
// region: same snapshot in, structurally identical list out. Callers re-run
// it after every state transition.
func DeriveItems(s State, cat *catalog.Catalog) []Item {
	items := make([]Item, 0, 3+len(s.AddOns))

	usaExclusive := s.UsaExclusive()
	inc := s.Incorporation

	incorporationReady := inc.Jurisdiction != "" && inc.CompanyType != "" &&
		(usaExclusive || inc.Jurisdiction != catalog.JurisdictionUSA || inc.State != "")

	if incorporationReady {
		items = append(items, incorporationItem(inc))
	}

	if inc.PackageName != "" {
		list := cat.InternationalPackages
		if usaExclusive {
			list = cat.USAPackages
		}
		if pkg, ok := catalog.FindPackage(list, inc.PackageName); ok {
			items = append(items, Item{
				ID:          ItemPackageTier,
				Name:        pkg.Name + " Package",
				UnitPrice:   pkg.Price,
				Quantity:    1,
				Description: strings.Join(pkg.Features, "; "),
			})
		}
	}

	if incorporationReady {
		items = append(items, governmentFeeItem(s, cat))
	}

	for _, sel := range s.AddOns {
		if !sel.Selected {
			continue
		}
		def, ok := cat.Addon(sel.ID)
		if !ok {
			continue
		}
		items = append(items, Item{
			ID:          def.ID,
			Name:        def.Name,
			UnitPrice:   def.Price,
			Quantity:    1,
			Description: def.Description,
		})
	}

	return items
}

func incorporationItem(inc Incorporation) Item {
	name := "Company Incorporation: " + inc.Jurisdiction
	if label := catalog.StateLabel(inc.State); label != "" {
		name = fmt.Sprintf("Company Incorporation: %s (%s)", inc.Jurisdiction, label)
	}

	return Item{
		ID:          ItemIncorporationService,
		Name:        name,
		UnitPrice:   inc.BasePrice,
		Quantity:    1,
		Description: inc.CompanyType,
	}
}

func governmentFeeItem(s State, cat *catalog.Catalog) Item {
	usaFee := s.UsaExclusive() || s.Incorporation.Jurisdiction == catalog.JurisdictionUSA

	where := s.Incorporation.Jurisdiction
	if label := catalog.StateLabel(s.Incorporation.State); label != "" {
		where = fmt.Sprintf("%s (%s)", where, label)
	}

	return Item{
		ID:          ItemGovernmentFees,
		Name:        "Government Fees",
		UnitPrice:   pricing.GovernmentFee(cat, usaFee),
		Quantity:    1,
		Description: "Mandatory government filing fees for " + where,
	}
}

// Total sums the derived lines.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

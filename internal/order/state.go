package order

import "incorply/internal/catalog"

// NewState builds the session-start snapshot. All composite sub-objects exist
// from the beginning so no code path ever sees a structurally incomplete
// order; add-on selections are seeded one-per-catalog-entry, unselected.
func NewState(cat *catalog.Catalog) State {
	addOns := make([]AddonSelection, 0, len(cat.AddOns))
	for _, def := range cat.AddOns {
		addOns = append(addOns, AddonSelection{ID: def.ID})
	}

	return State{
		AddOns:      addOns,
		OrderStatus: StatusPending,
	}
}

// UsaExclusive reports whether the user picked the USA-only region.
func (s State) UsaExclusive() bool {
	return s.NeedsAssessment.Region == catalog.RegionUSAExclusive
}

// UsaContext reports whether the session is in the US company-type context:
// the USA jurisdiction is selected, or no jurisdiction is selected yet and
// the region is USA-exclusive.
func (s State) UsaContext() bool {
	if s.Incorporation.Jurisdiction != "" {
		return s.Incorporation.Jurisdiction == catalog.JurisdictionUSA
	}
	return s.UsaExclusive()
}

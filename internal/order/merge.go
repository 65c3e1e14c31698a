package order

import (
	"time"

	"github.com/google/uuid"

	"incorply/internal/catalog"
	"incorply/internal/pricing"
)

// Patch is a partial update to the order state. Composite sub-objects
// (incorporation, needs assessment, company names, contact, addresses) merge
// field-by-field; sequences (add-ons, directors, shareholders) replace
// wholesale; everything else replaces wholesale. Nil means "leave unchanged".
type Patch struct {
	Identity        *Identity             `json:"identity,omitempty"`
	NeedsAssessment *NeedsAssessmentPatch `json:"needs_assessment,omitempty"`
	Incorporation   *IncorporationPatch   `json:"incorporation,omitempty"`
	AddOns          *[]AddonSelection     `json:"add_ons,omitempty"`
	AddonIntro      *string               `json:"addon_intro,omitempty"`
	CompanyNames    *CompanyNamesPatch    `json:"company_names,omitempty"`
	Directors       *[]Director           `json:"directors,omitempty"`
	Shareholders    *[]Shareholder        `json:"shareholders,omitempty"`
	PrimaryContact  *ContactPatch         `json:"primary_contact,omitempty"`
	DeliveryAddress *AddressPatch         `json:"delivery_address,omitempty"`
	BillingAddress  *BillingAddressPatch  `json:"billing_address,omitempty"`
	ExtraRequests   *string               `json:"extra_requests,omitempty"`
	PaymentMethod   *string               `json:"payment_method,omitempty"`
	OrderID         *string               `json:"order_id,omitempty"`
	OrderStatus     *Status               `json:"order_status,omitempty"`
	PaymentDate     *time.Time            `json:"payment_date,omitempty"`
}

type NeedsAssessmentPatch struct {
	Region              *string   `json:"region,omitempty"`
	BusinessActivities  *[]string `json:"business_activities,omitempty"`
	StrategicObjectives *[]string `json:"strategic_objectives,omitempty"`
	BusinessDescription *string   `json:"business_description,omitempty"`
}

// IncorporationPatch deliberately has no base-price field: the price is
// derived through the pricing resolver on every merge.
type IncorporationPatch struct {
	Jurisdiction *string `json:"jurisdiction,omitempty"`
	State        *string `json:"state,omitempty"`
	CompanyType  *string `json:"company_type,omitempty"`
	PackageName  *string `json:"package_name,omitempty"`

	BestRecommendation         *Recommendation   `json:"best_recommendation,omitempty"`
	AlternativeRecommendations *[]Recommendation `json:"alternative_recommendations,omitempty"`
	RecommendationIntro        *string           `json:"recommendation_intro,omitempty"`
}

type CompanyNamesPatch struct {
	FirstChoice  *string `json:"first_choice,omitempty"`
	SecondChoice *string `json:"second_choice,omitempty"`
	ThirdChoice  *string `json:"third_choice,omitempty"`
}

type AddressPatch struct {
	Line1      *string `json:"line1,omitempty"`
	Line2      *string `json:"line2,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

type ContactPatch struct {
	FullName *string       `json:"full_name,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Phone    *string       `json:"phone,omitempty"`
	Address  *AddressPatch `json:"address,omitempty"`
}

type BillingAddressPatch struct {
	AddressPatch
	UseDeliveryAddress       *bool `json:"use_delivery_address,omitempty"`
	UsePrimaryContactAddress *bool `json:"use_primary_contact_address,omitempty"`
}

// UpdateFn is the functional form of an update: it receives the current
// snapshot and returns the patch to apply.
type UpdateFn func(State) Patch

// Apply merges a patch into a snapshot and returns a new, normalized
// snapshot. The input snapshot is never mutated.
func Apply(s State, p Patch, cat *catalog.Catalog) State {
	next := s // value copy; patched sections get fresh slices below

	if p.Identity != nil {
		next.Identity = *p.Identity
	}
	if p.NeedsAssessment != nil {
		mergeNeedsAssessment(&next.NeedsAssessment, p.NeedsAssessment)
	}
	if p.Incorporation != nil {
		mergeIncorporation(&next.Incorporation, p.Incorporation)
	}
	if p.AddOns != nil {
		next.AddOns = cloneAddOns(*p.AddOns)
	}
	if p.AddonIntro != nil {
		next.AddonIntro = *p.AddonIntro
	}
	if p.CompanyNames != nil {
		mergeCompanyNames(&next.CompanyNames, p.CompanyNames)
	}
	if p.Directors != nil {
		next.Directors = normalizeDirectors(s.Directors, *p.Directors)
	}
	if p.Shareholders != nil {
		next.Shareholders = normalizeShareholders(s.Shareholders, *p.Shareholders)
	}
	if p.PrimaryContact != nil {
		mergeContact(&next.PrimaryContact, p.PrimaryContact)
	}
	if p.DeliveryAddress != nil {
		mergeAddress(&next.DeliveryAddress, p.DeliveryAddress)
	}
	if p.BillingAddress != nil {
		mergeBillingAddress(&next.BillingAddress, p.BillingAddress)
	}
	if p.ExtraRequests != nil {
		next.ExtraRequests = *p.ExtraRequests
	}
	if p.PaymentMethod != nil {
		next.PaymentMethod = *p.PaymentMethod
	}
	if p.OrderID != nil {
		next.OrderID = *p.OrderID
	}
	if p.OrderStatus != nil {
		next.OrderStatus = *p.OrderStatus
	}
	if p.PaymentDate != nil {
		d := *p.PaymentDate
		next.PaymentDate = &d
	}

	normalize(&next, cat)
	return next
}

// ApplyFunc resolves the functional update form against the current snapshot
// and applies the resulting patch.
func ApplyFunc(s State, fn UpdateFn, cat *catalog.Catalog) State {
	return Apply(s, fn(s), cat)
}

func mergeNeedsAssessment(dst *NeedsAssessment, p *NeedsAssessmentPatch) {
	if p.Region != nil {
		dst.Region = *p.Region
	}
	if p.BusinessActivities != nil {
		dst.BusinessActivities = cloneStrings(*p.BusinessActivities)
	}
	if p.StrategicObjectives != nil {
		dst.StrategicObjectives = cloneStrings(*p.StrategicObjectives)
	}
	if p.BusinessDescription != nil {
		dst.BusinessDescription = *p.BusinessDescription
	}
}

func mergeIncorporation(dst *Incorporation, p *IncorporationPatch) {
	if p.Jurisdiction != nil {
		dst.Jurisdiction = *p.Jurisdiction
	}
	if p.State != nil {
		dst.State = *p.State
	}
	if p.CompanyType != nil {
		dst.CompanyType = *p.CompanyType
	}
	if p.PackageName != nil {
		dst.PackageName = *p.PackageName
	}
	if p.BestRecommendation != nil {
		rec := *p.BestRecommendation
		dst.BestRecommendation = &rec
	}
	if p.AlternativeRecommendations != nil {
		dst.AlternativeRecommendations = append([]Recommendation(nil), (*p.AlternativeRecommendations)...)
	}
	if p.RecommendationIntro != nil {
		dst.RecommendationIntro = *p.RecommendationIntro
	}
}

func mergeCompanyNames(dst *CompanyNames, p *CompanyNamesPatch) {
	if p.FirstChoice != nil {
		dst.FirstChoice = *p.FirstChoice
	}
	if p.SecondChoice != nil {
		dst.SecondChoice = *p.SecondChoice
	}
	if p.ThirdChoice != nil {
		dst.ThirdChoice = *p.ThirdChoice
	}
}

func mergeAddress(dst *Address, p *AddressPatch) {
	if p.Line1 != nil {
		dst.Line1 = *p.Line1
	}
	if p.Line2 != nil {
		dst.Line2 = *p.Line2
	}
	if p.City != nil {
		dst.City = *p.City
	}
	if p.State != nil {
		dst.State = *p.State
	}
	if p.PostalCode != nil {
		dst.PostalCode = *p.PostalCode
	}
	if p.Country != nil {
		dst.Country = *p.Country
	}
}

func mergeContact(dst *Contact, p *ContactPatch) {
	if p.FullName != nil {
		dst.FullName = *p.FullName
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Address != nil {
		mergeAddress(&dst.Address, p.Address)
	}
}

func mergeBillingAddress(dst *BillingAddress, p *BillingAddressPatch) {
	mergeAddress(&dst.Address, &p.AddressPatch)

	// The two convenience flags are mutually exclusive; the flag set by this
	// patch wins over the one already stored.
	if p.UseDeliveryAddress != nil {
		dst.UseDeliveryAddress = *p.UseDeliveryAddress
		if dst.UseDeliveryAddress {
			dst.UsePrimaryContactAddress = false
		}
	}
	if p.UsePrimaryContactAddress != nil {
		dst.UsePrimaryContactAddress = *p.UsePrimaryContactAddress
		if dst.UsePrimaryContactAddress {
			dst.UseDeliveryAddress = false
		}
	}
}

// normalize enforces the structural invariants after every merge, so an
// invalid shape can never be observed downstream.
func normalize(s *State, cat *catalog.Catalog) {
	syncAddOns(s, cat)

	// State only makes sense in the USA context.
	usaState := s.Incorporation.Jurisdiction == catalog.JurisdictionUSA || s.UsaExclusive()
	if !usaState {
		s.Incorporation.State = ""
	}

	// Switching between the US and international context invalidates a
	// company type from the other list.
	if s.Incorporation.CompanyType != "" && !cat.ValidCompanyType(s.Incorporation.CompanyType, s.UsaContext()) {
		s.Incorporation.CompanyType = ""
	}

	// Both selection paths funnel through the same resolver.
	price := pricing.Resolve(cat, s.Incorporation.Jurisdiction, s.Incorporation.State, s.Incorporation.CompanyType)
	if pricing.IsIncomplete(price) {
		s.Incorporation.BasePrice = 0
	} else {
		s.Incorporation.BasePrice = price
	}

	if s.BillingAddress.UseDeliveryAddress && s.BillingAddress.UsePrimaryContactAddress {
		s.BillingAddress.UsePrimaryContactAddress = false
	}
}

// syncAddOns rebuilds the selection list against the catalog: exactly one
// entry per catalog id, in catalog order. Session data contributes only the
// selected flag, reasoning and detail fields; unknown ids are dropped.
func syncAddOns(s *State, cat *catalog.Catalog) {
	byID := make(map[string]AddonSelection, len(s.AddOns))
	for _, sel := range s.AddOns {
		byID[sel.ID] = sel
	}

	synced := make([]AddonSelection, 0, len(cat.AddOns))
	for _, def := range cat.AddOns {
		sel, ok := byID[def.ID]
		if !ok {
			sel = AddonSelection{ID: def.ID}
		}
		if !def.RequiresDetails {
			sel.Details = nil
		}
		synced = append(synced, sel)
	}
	s.AddOns = synced
}

// normalizeDirectors applies the wholesale replacement while protecting the
// index-0 anchor: once directors exist, the list cannot become empty and the
// anchor entry cannot be removed.
func normalizeDirectors(prev, next []Director) []Director {
	out := append([]Director(nil), next...)

	if len(prev) > 0 {
		if len(out) == 0 {
			out = append(out, prev[0])
		} else if !containsDirector(out, prev[0].ID) {
			out = append([]Director{prev[0]}, out...)
		}
	}

	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.New().String()
		}
	}
	return out
}

func containsDirector(list []Director, id string) bool {
	for _, d := range list {
		if d.ID == id {
			return true
		}
	}
	return false
}

func normalizeShareholders(prev, next []Shareholder) []Shareholder {
	out := append([]Shareholder(nil), next...)

	if len(prev) > 0 {
		if len(out) == 0 {
			out = append(out, prev[0])
		} else if !containsShareholder(out, prev[0].ID) {
			out = append([]Shareholder{prev[0]}, out...)
		}
	}

	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.New().String()
		}
		if out[i].Type == "" {
			out[i].Type = PartyIndividual
		}
	}
	return out
}

func containsShareholder(list []Shareholder, id string) bool {
	for _, sh := range list {
		if sh.ID == id {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	return append([]string(nil), in...)
}

func cloneAddOns(in []AddonSelection) []AddonSelection {
	out := append([]AddonSelection(nil), in...)
	for i := range out {
		if out[i].Details != nil {
			details := make(map[string]string, len(out[i].Details))
			for k, v := range out[i].Details {
				details[k] = v
			}
			out[i].Details = details
		}
	}
	return out
}

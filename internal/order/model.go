package order

import "time"

// Status is the payment outcome of the session order.
type Status string

const (
	StatusPending       Status = "pending"
	StatusSuccess       Status = "success"
	StatusFailed        Status = "failed"
	StatusCompletedFree Status = "completed_free"
)

// PartyType distinguishes natural-person and corporate shareholders.
type PartyType string

const (
	PartyIndividual      PartyType = "INDIVIDUAL"
	PartyCorporateEntity PartyType = "CORPORATE_ENTITY"
)

type Identity struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type NeedsAssessment struct {
	Region              string   `json:"region"`
	BusinessActivities  []string `json:"business_activities"`
	StrategicObjectives []string `json:"strategic_objectives"`
	BusinessDescription string   `json:"business_description"`
}

// Recommendation holds the literal AI-produced suggestion. It is retained
// separately from the user's current (possibly overridden) selection.
type Recommendation struct {
	Jurisdiction     string `json:"jurisdiction"`
	State            string `json:"state,omitempty"`
	CompanyType      string `json:"company_type"`
	ShortDescription string `json:"short_description"`
	Reasoning        string `json:"reasoning"`
}

type Incorporation struct {
	Jurisdiction string `json:"jurisdiction"`
	// State is only meaningful when Jurisdiction is the USA entry; the merge
	// step clears it otherwise.
	State       string `json:"state,omitempty"`
	CompanyType string `json:"company_type"`
	// BasePrice is derived through the pricing resolver, never user-entered.
	// Zero means "no price yet".
	BasePrice   float64 `json:"base_price"`
	PackageName string  `json:"package_name"`

	BestRecommendation         *Recommendation  `json:"best_recommendation,omitempty"`
	AlternativeRecommendations []Recommendation `json:"alternative_recommendations,omitempty"`
	RecommendationIntro        string           `json:"recommendation_intro,omitempty"`
}

// AddonSelection is the mutable per-session half of an add-on. The catalog
// definition owns name/description/price; the session only owns selection,
// reasoning and detail fields.
type AddonSelection struct {
	ID                      string            `json:"id"`
	Selected                bool              `json:"selected"`
	RecommendationReasoning *string           `json:"recommendation_reasoning,omitempty"`
	Details                 map[string]string `json:"details,omitempty"`
}

type CompanyNames struct {
	FirstChoice  string `json:"first_choice"`
	SecondChoice string `json:"second_choice"`
	ThirdChoice  string `json:"third_choice"`
}

type Director struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

type Shareholder struct {
	ID           string    `json:"id"`
	Type         PartyType `json:"type"`
	Name         string    `json:"name"`
	SharePercent float64   `json:"share_percent"`
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Contact struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
}

// BillingAddress carries two convenience flags; at most one is ever true.
type BillingAddress struct {
	Address
	UseDeliveryAddress       bool `json:"use_delivery_address"`
	UsePrimaryContactAddress bool `json:"use_primary_contact_address"`
}

// State is the root aggregate for one wizard session. It is only ever
// replaced as a whole snapshot, never mutated in place.
type State struct {
	Identity        Identity         `json:"identity"`
	NeedsAssessment NeedsAssessment  `json:"needs_assessment"`
	Incorporation   Incorporation    `json:"incorporation"`
	AddOns          []AddonSelection `json:"add_ons"`
	AddonIntro      string           `json:"addon_intro,omitempty"`
	CompanyNames    CompanyNames     `json:"company_names"`
	Directors       []Director       `json:"directors"`
	Shareholders    []Shareholder    `json:"shareholders"`
	PrimaryContact  Contact          `json:"primary_contact"`
	DeliveryAddress Address          `json:"delivery_address"`
	BillingAddress  BillingAddress   `json:"billing_address"`
	ExtraRequests   string           `json:"extra_requests"`
	PaymentMethod   string           `json:"payment_method"`
	OrderID         string           `json:"order_id,omitempty"`
	OrderStatus     Status           `json:"order_status"`
	PaymentDate     *time.Time       `json:"payment_date,omitempty"`
}


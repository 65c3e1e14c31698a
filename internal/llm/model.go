package llm

// RecommendationPayload is one jurisdiction/company-type suggestion as
// produced by the provider.
type RecommendationPayload struct {
	Jurisdiction     string `json:"jurisdiction"`
	State            string `json:"state,omitempty"`
	CompanyType      string `json:"company_type"`
	ShortDescription string `json:"short_description"`
	Reasoning        string `json:"reasoning"`
}

type IncorporationRequest struct {
	BusinessActivities  []string `json:"business_activities"`
	StrategicObjectives []string `json:"strategic_objectives"`
	Region              string   `json:"region"`
	BusinessDescription string   `json:"business_description"`
}

type IncorporationAdvice struct {
	BestRecommendation         RecommendationPayload   `json:"best_recommendation"`
	AlternativeRecommendations []RecommendationPayload `json:"alternative_recommendations"`
}

// AddonSummary is the catalog slice shown to the provider. Returned ids must
// come from this list; anything else is discarded during sanitization.
type AddonSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type AddonRequest struct {
	MainServiceDetails string         `json:"main_service_details"`
	UserNeeds          []string       `json:"user_needs"`
	AvailableAddons    []AddonSummary `json:"available_addons"`
}

type AddonAdvice struct {
	RecommendedAddonIDs []string          `json:"recommended_addon_ids"`
	ReasoningByAddonID  map[string]string `json:"reasoning_by_addon_id"`
	IntroText           string            `json:"intro_text"`
}

type IntroRequest struct {
	Region              string   `json:"region"`
	BusinessActivities  []string `json:"business_activities"`
	StrategicObjectives []string `json:"strategic_objectives"`
}

type Intro struct {
	IntroText string `json:"intro_text"`
}

type PrefillRequest struct {
	UserEmail            string `json:"user_email"`
	UserPhone            string `json:"user_phone"`
	BusinessPurpose      string `json:"business_purpose"`
	BusinessDescription  string `json:"business_description"`
	SelectedJurisdiction string `json:"selected_jurisdiction"`
	SelectedState        string `json:"selected_state"`
	SelectedCompanyType  string `json:"selected_company_type"`
}

type DirectorSuggestion struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

type ContactSuggestion struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type CompanyPrefill struct {
	SuggestedCompanyNames   []string           `json:"suggested_company_names"`
	SuggestedDirector       DirectorSuggestion `json:"suggested_director"`
	SuggestedPrimaryContact ContactSuggestion  `json:"suggested_primary_contact"`
}

package llm

import (
	"encoding/json"
	"errors"
)

// ErrInvalidOutput marks provider output that failed schema validation. The
// caller treats it exactly like a transport failure: the recommendation is
// unavailable.
var ErrInvalidOutput = errors.New("invalid LLM output")

// ParseIncorporationAdvice validates and decodes an incorporation response.
// The best recommendation must be complete; malformed alternatives are
// dropped rather than failing the whole response.
func ParseIncorporationAdvice(raw string) (*IncorporationAdvice, error) {
	var advice IncorporationAdvice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		return nil, ErrInvalidOutput
	}

	if !validRecommendation(advice.BestRecommendation) {
		return nil, ErrInvalidOutput
	}

	valid := advice.AlternativeRecommendations[:0]
	for _, rec := range advice.AlternativeRecommendations {
		if validRecommendation(rec) {
			valid = append(valid, rec)
		}
	}
	advice.AlternativeRecommendations = valid

	return &advice, nil
}

func validRecommendation(rec RecommendationPayload) bool {
	return rec.Jurisdiction != "" && rec.CompanyType != "" && rec.Reasoning != ""
}

// ParseAddonAdvice validates and decodes an add-on response. Catalog
// membership of the returned ids is the caller's concern; only the shape is
// checked here.
func ParseAddonAdvice(raw string) (*AddonAdvice, error) {
	var advice AddonAdvice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		return nil, ErrInvalidOutput
	}

	if advice.RecommendedAddonIDs == nil {
		advice.RecommendedAddonIDs = []string{}
	}
	if advice.ReasoningByAddonID == nil {
		advice.ReasoningByAddonID = map[string]string{}
	}

	return &advice, nil
}

func ParseIntro(raw string) (*Intro, error) {
	var intro Intro
	if err := json.Unmarshal([]byte(raw), &intro); err != nil {
		return nil, ErrInvalidOutput
	}
	return &intro, nil
}

// ParseCompanyPrefill validates and decodes a prefill response. At least one
// usable suggestion must be present.
func ParseCompanyPrefill(raw string) (*CompanyPrefill, error) {
	var prefill CompanyPrefill
	if err := json.Unmarshal([]byte(raw), &prefill); err != nil {
		return nil, ErrInvalidOutput
	}

	names := prefill.SuggestedCompanyNames[:0]
	for _, n := range prefill.SuggestedCompanyNames {
		if n != "" {
			names = append(names, n)
		}
	}
	prefill.SuggestedCompanyNames = names

	if len(prefill.SuggestedCompanyNames) == 0 &&
		prefill.SuggestedDirector.FullName == "" &&
		prefill.SuggestedPrimaryContact.FullName == "" {
		return nil, ErrInvalidOutput
	}

	return &prefill, nil
}

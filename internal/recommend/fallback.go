package recommend

import (
	"incorply/internal/catalog"
	"incorply/internal/llm"
)

// Static fallback copy used when the provider is unavailable.
const (
	FallbackIntro      = "Based on your business profile, here are the incorporation options we recommend for you"
	FallbackAddonIntro = "These optional services are popular with businesses like yours"
)

// FallbackIncorporation is the deterministic stand-in for an unavailable
// provider: a region-keyed default recommendation, so the wizard always has
// something sensible to show.
func FallbackIncorporation(region string) *llm.IncorporationAdvice {
	usa := llm.RecommendationPayload{
		Jurisdiction:     catalog.JurisdictionUSA,
		State:            "Delaware-DE",
		CompanyType:      "Limited Liability Company",
		ShortDescription: "The most common choice for US-focused businesses.",
		Reasoning:        "Delaware offers a well-established legal framework and fast, predictable filings.",
	}
	uk := llm.RecommendationPayload{
		Jurisdiction:     "United Kingdom",
		CompanyType:      "Private Limited Company",
		ShortDescription: "A straightforward vehicle for European operations.",
		Reasoning:        "UK limited companies are quick to form and widely recognized across Europe.",
	}
	sg := llm.RecommendationPayload{
		Jurisdiction:     "Singapore",
		CompanyType:      "Private Limited Company",
		ShortDescription: "A stable base for Asia-Pacific trade.",
		Reasoning:        "Singapore combines low corporate tax with strong banking access in the region.",
	}
	uae := llm.RecommendationPayload{
		Jurisdiction:     "United Arab Emirates",
		CompanyType:      "Free Zone Establishment",
		ShortDescription: "Tax-efficient access to Middle East markets.",
		Reasoning:        "Free zone entities allow full foreign ownership with no corporate income tax.",
	}

	var best llm.RecommendationPayload
	var alts []llm.RecommendationPayload

	switch region {
	case catalog.RegionUSAExclusive, "North America":
		best, alts = usa, []llm.RecommendationPayload{uk, sg}
	case "Europe":
		best, alts = uk, []llm.RecommendationPayload{usa, sg}
	case "Middle East":
		best, alts = uae, []llm.RecommendationPayload{sg, uk}
	default:
		best, alts = sg, []llm.RecommendationPayload{usa, uk}
	}

	return &llm.IncorporationAdvice{
		BestRecommendation:         best,
		AlternativeRecommendations: alts,
	}
}

// FallbackAddonAdvice recommends nothing but keeps the flow moving with the
// static intro.
func FallbackAddonAdvice() *llm.AddonAdvice {
	return &llm.AddonAdvice{
		RecommendedAddonIDs: []string{},
		ReasoningByAddonID:  map[string]string{},
		IntroText:           FallbackAddonIntro,
	}
}

package recommend

import (
	"strings"

	"incorply/internal/llm"
)

// SanitizeAddonAdvice filters provider output down to a consistent set:
// every surviving id exists in the available catalog and has exactly one
// reasoning entry, and the reasoning map holds nothing else. Inconsistent
// ids are dropped silently; the safe outcome is simply fewer recommendations.
func SanitizeAddonAdvice(advice *llm.AddonAdvice, availableIDs []string) *llm.AddonAdvice {
	available := make(map[string]bool, len(availableIDs))
	for _, id := range availableIDs {
		available[id] = true
	}

	ids := make([]string, 0, len(advice.RecommendedAddonIDs))
	reasoning := make(map[string]string, len(advice.RecommendedAddonIDs))
	seen := make(map[string]bool, len(advice.RecommendedAddonIDs))

	for _, id := range advice.RecommendedAddonIDs {
		if !available[id] || seen[id] {
			continue
		}
		reason, ok := advice.ReasoningByAddonID[id]
		if !ok || reason == "" {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		reasoning[id] = reason
	}

	return &llm.AddonAdvice{
		RecommendedAddonIDs: ids,
		ReasoningByAddonID:  reasoning,
		IntroText:           advice.IntroText,
	}
}

// SanitizeIntro trims a single trailing colon and substitutes the fallback
// for empty provider output.
func SanitizeIntro(text, fallback string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ":")
	if text == "" {
		return fallback
	}
	return text
}

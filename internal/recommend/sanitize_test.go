package recommend

import (
	"testing"

	"incorply/internal/llm"
)

func TestSanitizeAddonAdviceDropsUnknownIDs(t *testing.T) {
	advice := &llm.AddonAdvice{
		RecommendedAddonIDs: []string{"bank-account", "made-up-service", "accounting"},
		ReasoningByAddonID: map[string]string{
			"bank-account":    "You will need a business account.",
			"made-up-service": "Sounds useful.",
			"accounting":      "Bookkeeping from day one.",
		},
	}

	clean := SanitizeAddonAdvice(advice, []string{"bank-account", "accounting"})

	if len(clean.RecommendedAddonIDs) != 2 {
		t.Fatalf("unexpected ids: %v", clean.RecommendedAddonIDs)
	}
	for _, id := range clean.RecommendedAddonIDs {
		if id == "made-up-service" {
			t.Fatalf("unknown id survived sanitization")
		}
	}
	if _, ok := clean.ReasoningByAddonID["made-up-service"]; ok {
		t.Fatalf("unknown id survived in reasoning map")
	}
}

func TestSanitizeAddonAdviceDropsIDsWithoutReasoning(t *testing.T) {
	advice := &llm.AddonAdvice{
		RecommendedAddonIDs: []string{"bank-account", "accounting"},
		ReasoningByAddonID: map[string]string{
			"bank-account": "You will need a business account.",
		},
	}

	clean := SanitizeAddonAdvice(advice, []string{"bank-account", "accounting"})

	if len(clean.RecommendedAddonIDs) != 1 || clean.RecommendedAddonIDs[0] != "bank-account" {
		t.Fatalf("id without reasoning survived: %v", clean.RecommendedAddonIDs)
	}
}

// Every surviving id has exactly one reasoning entry and vice versa.
func TestSanitizeAddonAdviceIsMutuallyConsistent(t *testing.T) {
	advice := &llm.AddonAdvice{
		RecommendedAddonIDs: []string{"bank-account", "bank-account", "trademark"},
		ReasoningByAddonID: map[string]string{
			"bank-account": "Account access.",
			"trademark":    "Protect the brand.",
			"accounting":   "Orphaned reasoning entry.",
		},
	}

	clean := SanitizeAddonAdvice(advice, []string{"bank-account", "trademark", "accounting"})

	if len(clean.RecommendedAddonIDs) != len(clean.ReasoningByAddonID) {
		t.Fatalf("ids and reasoning diverged: %v vs %v", clean.RecommendedAddonIDs, clean.ReasoningByAddonID)
	}
	for _, id := range clean.RecommendedAddonIDs {
		if _, ok := clean.ReasoningByAddonID[id]; !ok {
			t.Fatalf("id %q has no reasoning", id)
		}
	}
}

func TestSanitizeIntro(t *testing.T) {
	if got := SanitizeIntro("Here is what we suggest:", "fallback"); got != "Here is what we suggest" {
		t.Fatalf("trailing colon not trimmed: %q", got)
	}
	if got := SanitizeIntro("  ", "fallback"); got != "fallback" {
		t.Fatalf("fallback not applied: %q", got)
	}
	if got := SanitizeIntro("No colon here", "fallback"); got != "No colon here" {
		t.Fatalf("text mangled: %q", got)
	}
}

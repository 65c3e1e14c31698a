package recommend

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"incorply/internal/catalog"
	"incorply/internal/llm"
	"incorply/internal/order"
)

// fakeClient counts calls and serves canned responses. It stands in for the
// remote provider in every test.
type fakeClient struct {
	incCalls    int
	incAdvice   *llm.IncorporationAdvice
	incErr      error
	addonCalls  int
	addonAdvice *llm.AddonAdvice
	addonErr    error
	introCalls  int
	intro       *llm.Intro
	introErr    error
	prefill     *llm.CompanyPrefill
	prefillErr  error
}

func (f *fakeClient) RecommendIncorporation(_ context.Context, _ llm.IncorporationRequest) (*llm.IncorporationAdvice, error) {
	f.incCalls++
	return f.incAdvice, f.incErr
}

func (f *fakeClient) RecommendAddons(_ context.Context, _ llm.AddonRequest) (*llm.AddonAdvice, error) {
	f.addonCalls++
	return f.addonAdvice, f.addonErr
}

func (f *fakeClient) GenerateIntro(_ context.Context, _ llm.IntroRequest) (*llm.Intro, error) {
	f.introCalls++
	return f.intro, f.introErr
}

func (f *fakeClient) PrefillCompanyDetails(_ context.Context, _ llm.PrefillRequest) (*llm.CompanyPrefill, error) {
	return f.prefill, f.prefillErr
}

func assessedState(t *testing.T, cat *catalog.Catalog, region string) order.State {
	t.Helper()

	st := order.NewState(cat)
	return order.Apply(st, order.Patch{
		NeedsAssessment: &order.NeedsAssessmentPatch{
			Region:              &region,
			BusinessActivities:  &[]string{"Software"},
			StrategicObjectives: &[]string{"Global expansion"},
		},
	}, cat)
}

func TestIncorporationAdviceUsesCacheUntilInputsChange(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{
		incAdvice: &llm.IncorporationAdvice{
			BestRecommendation: llm.RecommendationPayload{
				Jurisdiction: "Singapore",
				CompanyType:  "Private Limited Company",
				Reasoning:    "Regional hub.",
			},
		},
	}
	svc := NewService(fake, cat, zap.NewNop(), nil)

	st := assessedState(t, cat, "Asia-Pacific")

	if _, err := svc.IncorporationAdvice(context.Background(), "sess-1", st); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.IncorporationAdvice(context.Background(), "sess-1", st); err != nil {
		t.Fatal(err)
	}
	if fake.incCalls != 1 {
		t.Fatalf("provider called %d times for unchanged inputs, want 1", fake.incCalls)
	}

	// A changed needs assessment invalidates the fingerprint.
	desc := "B2B marketplace"
	st = order.Apply(st, order.Patch{
		NeedsAssessment: &order.NeedsAssessmentPatch{BusinessDescription: &desc},
	}, cat)

	if _, err := svc.IncorporationAdvice(context.Background(), "sess-1", st); err != nil {
		t.Fatal(err)
	}
	if fake.incCalls != 2 {
		t.Fatalf("provider called %d times after input change, want 2", fake.incCalls)
	}
}

// Two concurrently active sessions must not evict each other's entries: each
// session hits the provider once and is served from cache afterwards.
func TestCacheIsScopedPerSession(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{
		incAdvice: &llm.IncorporationAdvice{
			BestRecommendation: llm.RecommendationPayload{
				Jurisdiction: "Singapore",
				CompanyType:  "Private Limited Company",
				Reasoning:    "Regional hub.",
			},
		},
	}
	svc := NewService(fake, cat, zap.NewNop(), nil)

	stA := assessedState(t, cat, "Asia-Pacific")
	stB := assessedState(t, cat, "Europe")

	for i := 0; i < 3; i++ {
		if _, err := svc.IncorporationAdvice(context.Background(), "sess-a", stA); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.IncorporationAdvice(context.Background(), "sess-b", stB); err != nil {
			t.Fatal(err)
		}
	}

	if fake.incCalls != 2 {
		t.Fatalf("provider called %d times for two sessions with unchanged inputs, want 2", fake.incCalls)
	}
}

func TestIncorporationAdviceFallsBackOnProviderError(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{incErr: errors.New("provider down")}
	svc := NewService(fake, cat, zap.NewNop(), nil)

	st := assessedState(t, cat, "Europe")

	advice, err := svc.IncorporationAdvice(context.Background(), "sess-1", st)
	if err != nil {
		t.Fatalf("fallback policy should swallow the error, got %v", err)
	}
	if advice.BestRecommendation.Jurisdiction != "United Kingdom" {
		t.Fatalf("unexpected fallback for Europe: %+v", advice.BestRecommendation)
	}

	// The failure was not cached: once the provider recovers, the same
	// inputs reach it again.
	fake.incErr = nil
	fake.incAdvice = &llm.IncorporationAdvice{
		BestRecommendation: llm.RecommendationPayload{
			Jurisdiction: "Singapore",
			CompanyType:  "Private Limited Company",
			Reasoning:    "Recovered.",
		},
	}

	advice, err = svc.IncorporationAdvice(context.Background(), "sess-1", st)
	if err != nil {
		t.Fatal(err)
	}
	if advice.BestRecommendation.Jurisdiction != "Singapore" {
		t.Fatalf("recovered provider output not used: %+v", advice.BestRecommendation)
	}
	if fake.incCalls != 2 {
		t.Fatalf("provider called %d times, want 2", fake.incCalls)
	}
}

func TestIncorporationAdviceErrorPropagatesWithoutFallbackPolicy(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{incErr: errors.New("provider down")}
	policies := DefaultPolicies()
	policies[CallIncorporation] = Policy{FallbackOnError: false}
	svc := NewService(fake, cat, zap.NewNop(), policies)

	st := assessedState(t, cat, "Europe")

	if _, err := svc.IncorporationAdvice(context.Background(), "sess-1", st); err == nil {
		t.Fatalf("expected error with fallback disabled")
	}
}

func TestAddonAdviceIsSanitizedBeforeCaching(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{
		addonAdvice: &llm.AddonAdvice{
			RecommendedAddonIDs: []string{"bank-account", "fictional-addon"},
			ReasoningByAddonID: map[string]string{
				"bank-account":    "Banking access.",
				"fictional-addon": "Not in the catalog.",
			},
			IntroText: "Our suggestions:",
		},
	}
	svc := NewService(fake, cat, zap.NewNop(), nil)

	st := assessedState(t, cat, "Asia-Pacific")

	advice, err := svc.AddonAdvice(context.Background(), "sess-1", st)
	if err != nil {
		t.Fatal(err)
	}

	if len(advice.RecommendedAddonIDs) != 1 || advice.RecommendedAddonIDs[0] != "bank-account" {
		t.Fatalf("sanitization not applied: %v", advice.RecommendedAddonIDs)
	}
	if advice.IntroText != "Our suggestions" {
		t.Fatalf("intro not sanitized: %q", advice.IntroText)
	}

	// The cached copy is the sanitized one.
	advice, err = svc.AddonAdvice(context.Background(), "sess-1", st)
	if err != nil {
		t.Fatal(err)
	}
	if fake.addonCalls != 1 {
		t.Fatalf("provider called %d times, want 1", fake.addonCalls)
	}
	if len(advice.RecommendedAddonIDs) != 1 {
		t.Fatalf("cached copy not sanitized: %v", advice.RecommendedAddonIDs)
	}
}

func TestAddonAdviceFallsBackOnProviderError(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{addonErr: errors.New("provider down")}
	svc := NewService(fake, cat, zap.NewNop(), nil)

	st := assessedState(t, cat, "Europe")

	advice, err := svc.AddonAdvice(context.Background(), "sess-1", st)
	if err != nil {
		t.Fatal(err)
	}
	if len(advice.RecommendedAddonIDs) != 0 || advice.IntroText != FallbackAddonIntro {
		t.Fatalf("unexpected fallback advice: %+v", advice)
	}
}

func TestIntroFallsBackOnProviderError(t *testing.T) {
	cat := catalog.Default()
	fake := &fakeClient{introErr: errors.New("provider down")}
	svc := NewService(fake, cat, zap.NewNop(), nil)

	st := assessedState(t, cat, "Europe")

	intro, err := svc.Intro(context.Background(), "sess-1", st)
	if err != nil {
		t.Fatal(err)
	}
	if intro != FallbackIntro {
		t.Fatalf("unexpected intro fallback: %q", intro)
	}
}

func TestFallbackIncorporationByRegion(t *testing.T) {
	cases := map[string]string{
		catalog.RegionUSAExclusive: catalog.JurisdictionUSA,
		"North America":            catalog.JurisdictionUSA,
		"Europe":                   "United Kingdom",
		"Middle East":              "United Arab Emirates",
		"Asia-Pacific":             "Singapore",
		"Global / Not Sure":        "Singapore",
	}

	for region, want := range cases {
		advice := FallbackIncorporation(region)
		if advice.BestRecommendation.Jurisdiction != want {
			t.Fatalf("fallback for %q = %q, want %q", region, advice.BestRecommendation.Jurisdiction, want)
		}
		if advice.BestRecommendation.Reasoning == "" {
			t.Fatalf("fallback for %q has no reasoning", region)
		}
	}
}

package llm

import "context"

// Client is the recommendation-provider boundary. Every call is a pure
// remote request: it may fail or return output that fails validation, and
// the caller treats both the same way.
type Client interface {
	RecommendIncorporation(ctx context.Context, req IncorporationRequest) (*IncorporationAdvice, error)
	RecommendAddons(ctx context.Context, req AddonRequest) (*AddonAdvice, error)
	GenerateIntro(ctx context.Context, req IntroRequest) (*Intro, error)
	PrefillCompanyDetails(ctx context.Context, req PrefillRequest) (*CompanyPrefill, error)
}

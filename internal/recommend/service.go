package recommend

import (
	"context"

	"go.uber.org/zap"

	"incorply/internal/catalog"
	"incorply/internal/llm"
	"incorply/internal/order"
)

// Logical cache keys, one per provider call.
const (
	CallIncorporation = "incorporation"
	CallAddons        = "addons"
	CallIntro         = "intro"
	CallPrefill       = "prefill"
)

// Policy decides what a failed provider call does. With FallbackOnError the
// call degrades to a deterministic local default and the flow continues;
// without it the error propagates to the caller.
type Policy struct {
	FallbackOnError bool
}

// DefaultPolicies: silent degradation for all four calls. Whether some calls
// should instead be must-succeed is a product decision; the per-call map
// keeps it configurable.
func DefaultPolicies() map[string]Policy {
	return map[string]Policy{
		CallIncorporation: {FallbackOnError: true},
		CallAddons:        {FallbackOnError: true},
		CallIntro:         {FallbackOnError: true},
		CallPrefill:       {FallbackOnError: true},
	}
}

type Service struct {
	client   llm.Client
	cache    *Cache
	catalog  *catalog.Catalog
	logger   *zap.Logger
	policies map[string]Policy
}

// NewService wires the provider behind the fingerprint cache. A nil policies
// map selects DefaultPolicies.
func NewService(client llm.Client, cat *catalog.Catalog, logger *zap.Logger, policies map[string]Policy) *Service {
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &Service{
		client:   client,
		cache:    NewCache(),
		catalog:  cat,
		logger:   logger,
		policies: policies,
	}
}

func (s *Service) policy(call string) Policy {
	if p, ok := s.policies[call]; ok {
		return p
	}
	return Policy{FallbackOnError: true}
}

// cacheKey scopes an entry to one session and one call, so concurrent
// sessions never evict each other.
func cacheKey(sessionID, call string) string {
	return sessionID + ":" + call
}

// IncorporationAdvice returns the cached recommendation when the needs
// assessment has not changed, otherwise asks the provider. Provider failure
// degrades to the region-keyed fallback under the default policy.
func (s *Service) IncorporationAdvice(ctx context.Context, sessionID string, st order.State) (*llm.IncorporationAdvice, error) {
	req := IncorporationInputs(st)

	advice, cached, err := getOrRefresh(ctx, s.cache, cacheKey(sessionID, CallIncorporation), Fingerprint(req),
		func(ctx context.Context) (*llm.IncorporationAdvice, error) {
			return s.client.RecommendIncorporation(ctx, req)
		})
	if err != nil {
		s.logger.Warn("incorporation recommendation unavailable", zap.Error(err))
		if s.policy(CallIncorporation).FallbackOnError {
			return FallbackIncorporation(st.NeedsAssessment.Region), nil
		}
		return nil, err
	}

	if cached {
		s.logger.Debug("incorporation recommendation served from cache")
	}
	return advice, nil
}

// AddonAdvice returns sanitized add-on recommendations. Sanitization runs
// inside the fetch, so the cache only ever holds consistent output.
func (s *Service) AddonAdvice(ctx context.Context, sessionID string, st order.State) (*llm.AddonAdvice, error) {
	req := AddonInputs(st, s.catalog)

	ids := make([]string, 0, len(req.AvailableAddons))
	for _, a := range req.AvailableAddons {
		ids = append(ids, a.ID)
	}

	advice, cached, err := getOrRefresh(ctx, s.cache, cacheKey(sessionID, CallAddons), Fingerprint(req),
		func(ctx context.Context) (*llm.AddonAdvice, error) {
			raw, err := s.client.RecommendAddons(ctx, req)
			if err != nil {
				return nil, err
			}
			clean := SanitizeAddonAdvice(raw, ids)
			clean.IntroText = SanitizeIntro(clean.IntroText, FallbackAddonIntro)
			return clean, nil
		})
	if err != nil {
		s.logger.Warn("add-on recommendation unavailable", zap.Error(err))
		if s.policy(CallAddons).FallbackOnError {
			return FallbackAddonAdvice(), nil
		}
		return nil, err
	}

	if cached {
		s.logger.Debug("add-on recommendation served from cache")
	}
	return advice, nil
}

// Intro returns the one-sentence recommendation intro.
func (s *Service) Intro(ctx context.Context, sessionID string, st order.State) (string, error) {
	req := IntroInputs(st)

	intro, _, err := getOrRefresh(ctx, s.cache, cacheKey(sessionID, CallIntro), Fingerprint(req),
		func(ctx context.Context) (*llm.Intro, error) {
			out, err := s.client.GenerateIntro(ctx, req)
			if err != nil {
				return nil, err
			}
			out.IntroText = SanitizeIntro(out.IntroText, FallbackIntro)
			return out, nil
		})
	if err != nil {
		s.logger.Warn("recommendation intro unavailable", zap.Error(err))
		if s.policy(CallIntro).FallbackOnError {
			return FallbackIntro, nil
		}
		return "", err
	}

	return intro.IntroText, nil
}

// Prefill suggests company names, a director and a primary contact. There is
// no useful local heuristic here, so the fallback is simply "no suggestions".
func (s *Service) Prefill(ctx context.Context, sessionID string, st order.State) (*llm.CompanyPrefill, error) {
	req := PrefillInputs(st)

	prefill, _, err := getOrRefresh(ctx, s.cache, cacheKey(sessionID, CallPrefill), Fingerprint(req),
		func(ctx context.Context) (*llm.CompanyPrefill, error) {
			return s.client.PrefillCompanyDetails(ctx, req)
		})
	if err != nil {
		s.logger.Warn("company prefill unavailable", zap.Error(err))
		if s.policy(CallPrefill).FallbackOnError {
			return &llm.CompanyPrefill{}, nil
		}
		return nil, err
	}

	return prefill, nil
}

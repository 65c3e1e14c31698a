package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// GeminiClient talks to the Gemini generateContent endpoint and guarantees
// JSON-only output to the parsers.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   os.Getenv("GEMINI_MODEL"),
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *GeminiClient) RecommendIncorporation(ctx context.Context, req IncorporationRequest) (*IncorporationAdvice, error) {
	raw, err := g.generate(ctx, BuildIncorporationPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseIncorporationAdvice(raw)
}

func (g *GeminiClient) RecommendAddons(ctx context.Context, req AddonRequest) (*AddonAdvice, error) {
	raw, err := g.generate(ctx, BuildAddonPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseAddonAdvice(raw)
}

func (g *GeminiClient) GenerateIntro(ctx context.Context, req IntroRequest) (*Intro, error) {
	raw, err := g.generate(ctx, BuildIntroPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseIntro(raw)
}

func (g *GeminiClient) PrefillCompanyDetails(ctx context.Context, req PrefillRequest) (*CompanyPrefill, error) {
	raw, err := g.generate(ctx, BuildPrefillPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseCompanyPrefill(raw)
}

// generate sends one prompt and returns the raw model text, which is
// guaranteed to be valid JSON.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		g.baseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	output := result.Candidates[0].Content.Parts[0].Text

	if !json.Valid([]byte(output)) {
		return "", errors.New("gemini returned non-json output")
	}

	return output, nil
}

package llm

import (
	"encoding/json"
	"strings"
)

const strictJSONHeader = `You are a business-incorporation advisor engine.

Your task:
- Answer with STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.
`

func BuildIncorporationPrompt(req IncorporationRequest) string {
	var b strings.Builder
	b.WriteString(strictJSONHeader)
	b.WriteString(`
Recommend the best incorporation jurisdiction and company type for the
business described below, plus up to three alternatives ordered best-first.
Only use "state" for United States of America recommendations, encoded as
"FullName-Abbreviation" (for example "Delaware-DE").

Required JSON schema:
{
  "best_recommendation": {
    "jurisdiction": "string",
    "state": "string (optional, USA only)",
    "company_type": "string",
    "short_description": "string",
    "reasoning": "string"
  },
  "alternative_recommendations": [ same shape as best_recommendation ]
}

BUSINESS PROFILE:
`)
	writeJSON(&b, req)
	return b.String()
}

func BuildAddonPrompt(req AddonRequest) string {
	var b strings.Builder
	b.WriteString(strictJSONHeader)
	b.WriteString(`
Recommend which of the available add-on services fit this customer. Every id
in "recommended_addon_ids" MUST be one of the ids listed under
"available_addons", and every recommended id MUST have a matching entry in
"reasoning_by_addon_id". Recommend at most four.

Required JSON schema:
{
  "recommended_addon_ids": ["string"],
  "reasoning_by_addon_id": {"addon_id": "string"},
  "intro_text": "string (one sentence introducing the recommendations)"
}

CUSTOMER CONTEXT:
`)
	writeJSON(&b, req)
	return b.String()
}

func BuildIntroPrompt(req IntroRequest) string {
	var b strings.Builder
	b.WriteString(strictJSONHeader)
	b.WriteString(`
Write one short, warm sentence introducing incorporation recommendations to
this customer. Do not end the sentence with a colon.

Required JSON schema:
{
  "intro_text": "string"
}

CUSTOMER CONTEXT:
`)
	writeJSON(&b, req)
	return b.String()
}

func BuildPrefillPrompt(req PrefillRequest) string {
	var b strings.Builder
	b.WriteString(strictJSONHeader)
	b.WriteString(`
Suggest plausible company details for this incorporation order: three company
name candidates valid in the selected jurisdiction, one director and one
primary contact derived from the user's own contact data.

Required JSON schema:
{
  "suggested_company_names": ["string", "string", "string"],
  "suggested_director": {
    "full_name": "string",
    "email": "string",
    "phone": "string",
    "nationality": "string"
  },
  "suggested_primary_contact": {
    "full_name": "string",
    "email": "string",
    "phone": "string"
  }
}

ORDER CONTEXT:
`)
	writeJSON(&b, req)
	return b.String()
}

func writeJSON(b *strings.Builder, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		b.WriteString("{}")
		return
	}
	b.Write(raw)
}

package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// classifyResponse mirrors the JSON shape requested by the classify prompt.
type classifyResponse struct {
	PrimaryIntent    string              `json:"primary_intent"`
	SecondaryIntents []string            `json:"secondary_intents"`
	Confidence       int                 `json:"confidence"`
	MatchedKeywords  []string            `json:"matched_keywords"`
	Complexity       *complexityResponse `json:"complexity"`
}

type complexityResponse struct {
	OverallScore       int      `json:"overall_score"`
	IntegrationBreadth int      `json:"integration_breadth"`
	DataSensitivity    int      `json:"data_sensitivity"`
	TransactionVolume  int      `json:"transaction_volume"`
	RegulatoryBurden   int      `json:"regulatory_burden"`
	PatternNovelty     int      `json:"pattern_novelty"`
	RiskFactors        []string `json:"risk_factors"`
	Mitigations        []string `json:"mitigations"`
}

// parseClassifyResponse extracts intent and complexity from a provider
// response. A response that cannot be parsed into the expected shape is an
// error, which the ladder treats the same as a provider failure.
func parseClassifyResponse(content string) (BusinessIntent, TechnicalComplexity, error) {
	var resp classifyResponse
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &resp); err != nil {
		return BusinessIntent{}, TechnicalComplexity{}, fmt.Errorf("parse classify response: %w", err)
	}

	if resp.PrimaryIntent == "" {
		return BusinessIntent{}, TechnicalComplexity{}, fmt.Errorf("classify response missing primary_intent")
	}

	intent := BusinessIntent{
		Primary:         Intent(resp.PrimaryIntent),
		Confidence:      clamp(resp.Confidence),
		MatchedKeywords: resp.MatchedKeywords,
	}
	for _, s := range resp.SecondaryIntents {
		intent.Secondary = append(intent.Secondary, Intent(s))
	}
	if intent.Confidence == 0 {
		intent.Confidence = 60
	}

	var complexity TechnicalComplexity
	if resp.Complexity != nil {
		complexity = TechnicalComplexity{
			OverallScore: clamp(resp.Complexity.OverallScore),
			Factors: ComplexityFactors{
				IntegrationBreadth: clamp(resp.Complexity.IntegrationBreadth),
				DataSensitivity:    clamp(resp.Complexity.DataSensitivity),
				TransactionVolume:  clamp(resp.Complexity.TransactionVolume),
				RegulatoryBurden:   clamp(resp.Complexity.RegulatoryBurden),
				PatternNovelty:     clamp(resp.Complexity.PatternNovelty),
			},
			RiskFactors: resp.Complexity.RiskFactors,
			Mitigations: resp.Complexity.Mitigations,
		}
	} else {
		return BusinessIntent{}, TechnicalComplexity{}, fmt.Errorf("classify response missing complexity")
	}

	return intent, complexity, nil
}

// stripCodeFence removes a surrounding markdown code fence, if present.
// Providers occasionally wrap JSON answers despite JSON mode.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

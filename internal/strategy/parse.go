package strategy

import (
	"encoding/json"
	"strings"
)

// strategyResponse mirrors the JSON shape requested by the strategy prompt.
type strategyResponse struct {
	Approach             string   `json:"approach"`
	Components           []string `json:"components"`
	NovelPatterns        []string `json:"novel_patterns"`
	TemplateCombinations []string `json:"template_combinations"`
	CustomLogic          []string `json:"custom_logic"`
	IntegrationPatterns  []string `json:"integration_patterns"`
}

// parseStrategyResponse extracts a CompositionStrategy from a provider
// response. It first tries the structured JSON shape; when that fails it
// falls back to scanning the raw text for approach-indicating phrases, so a
// readable but unstructured answer still yields a usable strategy.
func parseStrategyResponse(content string) CompositionStrategy {
	trimmed := stripCodeFence(content)

	var resp strategyResponse
	if err := json.Unmarshal([]byte(trimmed), &resp); err == nil && Approach(resp.Approach).Valid() {
		return CompositionStrategy{
			Approach:                Approach(resp.Approach),
			ComponentsUsed:          resp.Components,
			NovelPatterns:           resp.NovelPatterns,
			TemplateCombinations:    resp.TemplateCombinations,
			CustomLogicRequirements: resp.CustomLogic,
			IntegrationPatterns:     resp.IntegrationPatterns,
		}
	}

	return CompositionStrategy{Approach: scanApproach(content)}
}

// scanApproach maps approach-indicating phrases in free text onto an
// approach, defaulting to template combination.
func scanApproach(text string) Approach {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "novel") || strings.Contains(lower, "unprecedented"):
		return ApproachNovelPattern
	case strings.Contains(lower, "combine") || strings.Contains(lower, "merge"):
		return ApproachHybrid
	case strings.Contains(lower, "custom") || strings.Contains(lower, "generate"):
		return ApproachCustomLogic
	default:
		return ApproachTemplateCombination
	}
}

// stripCodeFence removes a surrounding markdown code fence, if present.
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

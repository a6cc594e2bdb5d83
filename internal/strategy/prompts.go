package strategy

import (
	"fmt"
	"strings"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/requirement"
)

const strategySystemPrompt = `You are an enterprise integration architect planning how to compose integration code. Choose the most appropriate composition approach and return a structured JSON response.`

const strategyPromptTemplate = `Decide the composition approach for this requirement and return a JSON object with exactly these fields:

{
  "approach": "one of: template-combination, custom-logic-generation, novel-pattern-creation, hybrid-composition",
  "components": ["named components to build or reuse"],
  "novel_patterns": ["only for novel-pattern-creation"],
  "template_combinations": ["template names to combine, from the inventory below"],
  "custom_logic": ["custom logic requirements to generate"],
  "integration_patterns": ["cross-service integration patterns needed"]
}

Requirement:
%s
%s
Classification summary:
- business intent: %s (confidence %d)
- industry: %s
- complexity: %d/100
- compliance level: %s

Template inventory:
%s

Service capabilities:
%s

Industry patterns: %s`

// buildStrategyPrompt renders the strategy-analysis prompt from the
// requirement, its classification, and the static inventories.
func buildStrategyPrompt(kb *knowledge.Base, req requirement.Requirement, cls classifier.Classification) string {
	contextSection := ""
	if section := req.Context.ToPromptSection(); section != "" {
		contextSection = "\nEnterprise context:\n" + section
	}

	profile := kb.Industry(cls.Industry.Industry)

	return fmt.Sprintf(strategyPromptTemplate,
		req.Description,
		contextSection,
		cls.BusinessIntent.Primary,
		cls.BusinessIntent.Confidence,
		cls.Industry.Industry,
		cls.TechnicalComplexity.OverallScore,
		cls.Compliance.Level,
		templateInventory(kb),
		serviceInventory(kb, cls.RecommendedServices),
		strings.Join(profile.TypicalPatterns, ", "))
}

func templateInventory(kb *knowledge.Base) string {
	var b strings.Builder
	for _, t := range kb.Templates {
		fmt.Fprintf(&b, "- %s (%s): %s\n", t.Name, t.Intent, t.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func serviceInventory(kb *knowledge.Base, recommended []string) string {
	if len(recommended) == 0 {
		return "none detected"
	}
	var b strings.Builder
	for _, key := range recommended {
		s := kb.Service(key)
		fmt.Fprintf(&b, "- %s: %s\n", s.DisplayName, s.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

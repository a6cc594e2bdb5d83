// Package strategy decides how code will be produced for a classified
// requirement: by combining inventory templates, generating custom logic,
// inventing a novel pattern, or a hybrid of those. The chosen strategy is
// immutable for the duration of a composition run: a failed strategy
// triggers a new run, never an in-place edit.
package strategy

// Approach enumerates the composition approaches the generator supports.
type Approach string

const (
	ApproachTemplateCombination Approach = "template-combination"
	ApproachCustomLogic         Approach = "custom-logic-generation"
	ApproachNovelPattern        Approach = "novel-pattern-creation"
	ApproachHybrid              Approach = "hybrid-composition"
)

// Valid reports whether a is one of the supported approaches.
func (a Approach) Valid() bool {
	switch a {
	case ApproachTemplateCombination, ApproachCustomLogic, ApproachNovelPattern, ApproachHybrid:
		return true
	}
	return false
}

// CompositionStrategy captures the full plan for one composition run.
type CompositionStrategy struct {
	Approach                Approach `json:"approach"`
	ComponentsUsed          []string `json:"components_used,omitempty"`
	NovelPatterns           []string `json:"novel_patterns,omitempty"`
	TemplateCombinations    []string `json:"template_combinations,omitempty"`
	CustomLogicRequirements []string `json:"custom_logic_requirements,omitempty"`
	IntegrationPatterns     []string `json:"integration_patterns,omitempty"`
	// Source tags whether reasoning or static rules produced the plan.
	Source string `json:"source,omitempty"`
}

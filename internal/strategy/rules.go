package strategy

import (
	"fmt"
	"strings"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// synthesizeFromRules builds a strategy purely from static rules over the
// industry profile, matched templates, and requirement description. It is
// the ladder fallback when no provider is present or all fail: nothing here
// depends on prompt text.
func synthesizeFromRules(req requirement.Requirement, cls classifier.Classification, templates []knowledge.Template) CompositionStrategy {
	lower := strings.ToLower(req.Description)
	customLogic := customLogicRequirements(cls)

	var approach Approach
	switch {
	case strings.Contains(lower, "novel") || strings.Contains(lower, "unprecedented"):
		approach = ApproachNovelPattern
	case len(templates) > 0 && len(customLogic) > 0:
		approach = ApproachHybrid
	case len(templates) > 0:
		approach = ApproachTemplateCombination
	default:
		approach = ApproachCustomLogic
	}

	s := CompositionStrategy{Approach: approach}

	switch approach {
	case ApproachNovelPattern:
		s.NovelPatterns = []string{novelPatternName(cls)}
	case ApproachTemplateCombination:
		s.TemplateCombinations = templateNames(templates)
		s.ComponentsUsed = templateComponents(templates)
	case ApproachCustomLogic:
		s.CustomLogicRequirements = customLogic
	case ApproachHybrid:
		s.TemplateCombinations = templateNames(templates)
		s.ComponentsUsed = templateComponents(templates)
		s.CustomLogicRequirements = customLogic
	}

	s.IntegrationPatterns = integrationPatterns(cls.RecommendedServices)
	return s
}

// customLogicRequirements derives generation units from the classifier's
// custom-development needs, falling back to one unit for the intent itself.
func customLogicRequirements(cls classifier.Classification) []string {
	if len(cls.RecommendedApproach.CustomDevelopmentNeeds) > 0 {
		return cls.RecommendedApproach.CustomDevelopmentNeeds
	}
	if cls.RecommendedApproach.Strategy == classifier.StrategyTemplateBased {
		return nil
	}
	return []string{fmt.Sprintf("%s workflow implementation", cls.BusinessIntent.Primary)}
}

func novelPatternName(cls classifier.Classification) string {
	return fmt.Sprintf("%s-%s-pattern", cls.Industry.Industry, cls.BusinessIntent.Primary)
}

func templateNames(templates []knowledge.Template) []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

func templateComponents(templates []knowledge.Template) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range templates {
		for _, c := range t.Components {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// integrationPatterns names the cross-service glue needed when more than
// one platform service participates.
func integrationPatterns(services []string) []string {
	if len(services) < 2 {
		return nil
	}
	var patterns []string
	for i := 1; i < len(services); i++ {
		patterns = append(patterns, fmt.Sprintf("%s-%s-coordination", services[0], services[i]))
	}
	return patterns
}

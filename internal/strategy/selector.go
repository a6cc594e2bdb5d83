package strategy

import (
	"context"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// SearchFunc returns inventory templates semantically related to the
// query, best first. templateindex.Index's Templates method satisfies it.
type SearchFunc func(ctx context.Context, query string, limit int) ([]knowledge.Template, error)

// semanticMatchLimit caps how many templates a semantic lookup feeds into
// strategy synthesis, matching the keyword matcher's practical yield.
const semanticMatchLimit = 5

// Selector chooses the composition strategy for a classified requirement
// through the provider ladder.
type Selector struct {
	kb        *knowledge.Base
	providers []llm.Provider
	lad       ladder.Ladder
	model     string
	search    SearchFunc
}

// New creates a Selector. A nil search restricts template matching to the
// knowledge base's keyword scan.
func New(kb *knowledge.Base, providers []llm.Provider, lad ladder.Ladder, model string, search SearchFunc) *Selector {
	return &Selector{
		kb:        kb,
		providers: providers,
		lad:       lad,
		model:     model,
		search:    search,
	}
}

// Select decides the composition strategy. Reasoning providers are asked
// first; an unstructured answer degrades to phrase scanning, and total
// provider absence degrades to static rule synthesis. The result is
// immutable for the run.
func (s *Selector) Select(ctx context.Context, req requirement.Requirement, cls classifier.Classification) CompositionStrategy {
	prompt := buildStrategyPrompt(s.kb, req, cls)
	templates := s.matchTemplates(ctx, req.Description)

	result := ladder.Execute(ctx, s.lad, s.providers,
		func(ctx context.Context, p llm.Provider) (CompositionStrategy, error) {
			resp, err := p.Complete(ctx, llm.Request{
				Model:       s.model,
				Messages:    llm.SystemUser(strategySystemPrompt, prompt),
				MaxTokens:   2048,
				Temperature: 0.2,
				JSONMode:    true,
			})
			if err != nil {
				return CompositionStrategy{}, err
			}
			// Parse failure does not advance the ladder here: phrase
			// scanning always yields a usable approach from any text.
			return enrich(parseStrategyResponse(resp.Content), templates, cls), nil
		},
		func() CompositionStrategy {
			return synthesizeFromRules(req, cls, templates)
		})

	chosen := result.Value
	chosen.Source = string(result.Method)
	return chosen
}

// matchTemplates prefers the semantic index when one is configured and
// degrades to keyword matching when it is absent, errors, or finds
// nothing. The degraded path keeps selection deterministic.
func (s *Selector) matchTemplates(ctx context.Context, description string) []knowledge.Template {
	if s.search != nil {
		found, err := s.search(ctx, description, semanticMatchLimit)
		if err == nil && len(found) > 0 {
			return found
		}
	}
	return s.kb.MatchTemplates(description)
}

// enrich fills in list fields the provider answer left empty, using the
// same static derivations the rule fallback uses. The approach itself is
// never overridden.
func enrich(chosen CompositionStrategy, templates []knowledge.Template, cls classifier.Classification) CompositionStrategy {
	needsTemplates := chosen.Approach == ApproachTemplateCombination || chosen.Approach == ApproachHybrid
	if needsTemplates && len(chosen.TemplateCombinations) == 0 {
		chosen.TemplateCombinations = templateNames(templates)
		chosen.ComponentsUsed = templateComponents(templates)
	}

	needsCustom := chosen.Approach == ApproachCustomLogic || chosen.Approach == ApproachHybrid
	if needsCustom && len(chosen.CustomLogicRequirements) == 0 {
		chosen.CustomLogicRequirements = customLogicRequirements(cls)
	}

	if chosen.Approach == ApproachNovelPattern && len(chosen.NovelPatterns) == 0 {
		chosen.NovelPatterns = []string{novelPatternName(cls)}
	}

	if len(chosen.IntegrationPatterns) == 0 {
		chosen.IntegrationPatterns = integrationPatterns(cls.RecommendedServices)
	}

	return chosen
}

package generator

import (
	"context"
	"fmt"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/requirement"
	"github.com/hashcompose/reqforge/internal/strategy"
)

// Generator turns a composition strategy into source artifacts.
type Generator struct {
	kb        *knowledge.Base
	providers []llm.Provider
	lad       ladder.Ladder
	model     string
}

// New creates a Generator.
func New(kb *knowledge.Base, providers []llm.Provider, lad ladder.Ladder, model string) *Generator {
	return &Generator{
		kb:        kb,
		providers: providers,
		lad:       lad,
		model:     model,
	}
}

// Generate produces the artifact set for a strategy. Each generation unit
// runs its own provider ladder, so one unit falling back to a scaffold
// does not degrade the others. The only error condition is an approach
// value the dispatcher does not know; every supported approach always
// yields at least one artifact.
func (g *Generator) Generate(ctx context.Context, req requirement.Requirement, strat strategy.CompositionStrategy, services []string) ([]Artifact, error) {
	var artifacts []Artifact

	switch strat.Approach {
	case strategy.ApproachTemplateCombination:
		artifacts = g.generateTemplates(ctx, req, strat)
	case strategy.ApproachCustomLogic:
		artifacts = g.generateCustomLogic(ctx, req, strat, services)
	case strategy.ApproachNovelPattern:
		artifacts = g.generateNovelPatterns(ctx, req, strat, services)
	case strategy.ApproachHybrid:
		artifacts = append(artifacts, g.generateTemplates(ctx, req, strat)...)
		artifacts = append(artifacts, g.generateCustomLogic(ctx, req, strat, services)...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedApproach, strat.Approach)
	}

	if len(artifacts) == 0 {
		artifacts = scaffoldStrategy(g.kb, strat, services)
	}

	if bridge, ok := g.integrationBridge(ctx, req, artifacts, strat); ok {
		artifacts = append(artifacts, bridge)
	}
	return artifacts, nil
}

// generateCustomLogic produces one artifact per custom-logic unit,
// deriving a single unit from the requirement when the strategy lists
// none.
func (g *Generator) generateCustomLogic(ctx context.Context, req requirement.Requirement, strat strategy.CompositionStrategy, services []string) []Artifact {
	units := strat.CustomLogicRequirements
	if len(units) == 0 && strat.Approach == strategy.ApproachCustomLogic {
		units = []string{"requirement integration service"}
	}

	var artifacts []Artifact
	for _, unit := range units {
		purpose := "custom logic: " + unit
		artifacts = append(artifacts, g.generateUnit(ctx,
			buildUnitPrompt(req, unit, services),
			synthesizePath(unit), purpose,
			func() Artifact { return scaffoldArtifact(unit, purpose, services) })...)
	}
	return artifacts
}

// generateTemplates adapts each named inventory template to the
// requirement. Unknown template names are skipped rather than failed: the
// strategy may name templates a provider invented.
func (g *Generator) generateTemplates(ctx context.Context, req requirement.Requirement, strat strategy.CompositionStrategy) []Artifact {
	var artifacts []Artifact
	for _, name := range strat.TemplateCombinations {
		tpl, ok := g.kb.TemplateByName(name)
		if !ok {
			continue
		}
		artifacts = append(artifacts, g.generateUnit(ctx,
			buildTemplatePrompt(req, tpl),
			"src/templates/"+tpl.Name+".ts", tpl.Description,
			func() Artifact { return scaffoldTemplateArtifact(tpl) })...)
	}
	return artifacts
}

// generateNovelPatterns produces one artifact per named novel pattern.
func (g *Generator) generateNovelPatterns(ctx context.Context, req requirement.Requirement, strat strategy.CompositionStrategy, services []string) []Artifact {
	patterns := strat.NovelPatterns
	if len(patterns) == 0 {
		patterns = []string{"requirement-specific-pattern"}
	}

	var artifacts []Artifact
	for _, pattern := range patterns {
		purpose := "novel pattern: " + pattern
		artifacts = append(artifacts, g.generateUnit(ctx,
			buildNovelPrompt(req, pattern, services),
			synthesizePath(pattern), purpose,
			func() Artifact { return scaffoldArtifact(pattern, purpose, services) })...)
	}
	return artifacts
}

// generateUnit runs the provider ladder for one generation unit. A
// response that yields no extractable code counts as a rung failure, so
// the ladder advances the same way it does on a transport error.
func (g *Generator) generateUnit(ctx context.Context, prompt, defaultPath, purpose string, fallback func() Artifact) []Artifact {
	result := ladder.Execute(ctx, g.lad, g.providers,
		func(ctx context.Context, p llm.Provider) ([]Artifact, error) {
			resp, err := p.Complete(ctx, llm.Request{
				Model:       g.model,
				Messages:    llm.SystemUser(generateSystemPrompt, prompt),
				MaxTokens:   4096,
				Temperature: 0.3,
			})
			if err != nil {
				return nil, err
			}
			return extractArtifacts(resp.Content, defaultPath, purpose)
		},
		func() []Artifact {
			return []Artifact{fallback()}
		})
	return result.Value
}

// integrationBridge produces the glue artifact that composes multiple
// fragments. It applies when the strategy declares integration patterns,
// or when two or more template fragments were combined and therefore need
// an entry point regardless.
func (g *Generator) integrationBridge(ctx context.Context, req requirement.Requirement, artifacts []Artifact, strat strategy.CompositionStrategy) (Artifact, bool) {
	patterns := strat.IntegrationPatterns
	if len(artifacts) < 2 {
		return Artifact{}, false
	}
	if len(patterns) == 0 && len(strat.TemplateCombinations) < 2 {
		return Artifact{}, false
	}

	const bridgePath = "src/integration/bridge.ts"
	const bridgePurpose = "integration bridge composing generated fragments"

	bridged := g.generateUnit(ctx,
		buildBridgePrompt(req, artifacts, patterns),
		bridgePath, bridgePurpose,
		func() Artifact {
			a := scaffoldArtifact("integration bridge", bridgePurpose, nil)
			a.FilePath = bridgePath
			return a
		})
	return bridged[0], true
}

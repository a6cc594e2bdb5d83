package generator

import (
	"context"
	"fmt"

	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
)

// defaultQualityThreshold is the overall score at which refinement becomes
// a no-op when the caller does not configure its own gate. Refining code
// that already passes the gate risks regressions for no benefit.
const defaultQualityThreshold = 80

// Refine improves a generated artifact set guided by assessment issues.
// An overall score at or above the threshold returns the input slice
// untouched, so repeated calls are idempotent; a threshold of zero or
// below selects the default gate. issuesFor yields the prompt lines for
// one artifact's file path (nil means no issue detail). Each artifact is
// refined through its own ladder; a failed attempt leaves that artifact's
// content byte-identical. Confidence rises by a bounded increment only
// when the content actually changed.
func (g *Generator) Refine(ctx context.Context, artifacts []Artifact, overall, threshold int, issuesFor func(file string) []string) []Artifact {
	if threshold <= 0 {
		threshold = defaultQualityThreshold
	}
	if overall >= threshold {
		return artifacts
	}

	refined := make([]Artifact, len(artifacts))
	for i, a := range artifacts {
		var issues []string
		if issuesFor != nil {
			issues = issuesFor(a.FilePath)
		}
		refined[i] = g.refineArtifact(ctx, a, issues)
	}
	return refined
}

// refineArtifact runs the provider ladder for one artifact. The fallback
// is the artifact itself: with no provider available there is nothing
// safe to change.
func (g *Generator) refineArtifact(ctx context.Context, a Artifact, issues []string) Artifact {
	result := ladder.Execute(ctx, g.lad, g.providers,
		func(ctx context.Context, p llm.Provider) (Artifact, error) {
			resp, err := p.Complete(ctx, llm.Request{
				Model:       g.model,
				Messages:    llm.SystemUser(refineSystemPrompt, buildRefinePrompt(a, issues)),
				MaxTokens:   4096,
				Temperature: 0.2,
			})
			if err != nil {
				return Artifact{}, err
			}
			return applyRefinement(a, resp.Content)
		},
		func() Artifact { return a })
	return result.Value
}

// applyRefinement merges a refinement response into the artifact.
// Identity fields stay fixed; only content and confidence move. A
// response with no extractable code is a rung failure.
func applyRefinement(a Artifact, response string) (Artifact, error) {
	extracted, err := extractArtifacts(response, a.FilePath, a.Purpose)
	if err != nil {
		return Artifact{}, err
	}

	content := extracted[0].Content
	if content == a.Content {
		return a, nil
	}
	if len(content) < len(a.Content)/2 {
		// A drastically shorter answer is a truncation, not a refinement.
		return Artifact{}, fmt.Errorf("refined content suspiciously short: %d of %d bytes", len(content), len(a.Content))
	}

	refined := a
	refined.Content = content
	refined.Dependencies = extractDependencies(content)
	refined.Confidence = a.Confidence + refinementIncrement
	if refined.Confidence > maxConfidence {
		refined.Confidence = maxConfidence
	}
	if a.Method == MethodFallback {
		refined.Method = MethodHybrid
	}
	return refined, nil
}

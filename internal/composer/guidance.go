package composer

import (
	"fmt"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/generator"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/quality"
)

// validate runs the pipeline-level checks recorded alongside the result.
// Checks describe the run; a failed check never aborts it.
func validate(r *Result) []ValidationResult {
	checks := []ValidationResult{
		{
			Check:  "non-empty-artifacts",
			Passed: len(r.Artifacts) > 0,
		},
		{
			Check:   "quality-threshold",
			Passed:  r.Quality.OverallScore >= defaultQualityThreshold,
			Details: fmt.Sprintf("overall score %d", r.Quality.OverallScore),
		},
	}

	allNamed := true
	for _, a := range r.Artifacts {
		if a.FilePath == "" {
			allNamed = false
		}
	}
	checks = append(checks, ValidationResult{
		Check:  "artifacts-named",
		Passed: allNamed,
	})

	critical := 0
	for _, issue := range r.Quality.Issues {
		if issue.Severity == quality.SeverityCritical {
			critical++
		}
	}
	checks = append(checks, ValidationResult{
		Check:   "no-critical-issues",
		Passed:  critical == 0,
		Details: fmt.Sprintf("%d critical issues", critical),
	})
	return checks
}

// deploymentGuidance derives deployment notes from the classification and
// the generated set. Static derivation, no provider calls.
func deploymentGuidance(kb *knowledge.Base, cls classifier.Classification, artifacts []generator.Artifact) []string {
	guidance := []string{
		"Review all generated files before deploying to any shared environment.",
		"Provision platform credentials through environment configuration, never in source.",
	}

	deps := map[string]bool{}
	for _, a := range artifacts {
		for _, d := range a.Dependencies {
			deps[d] = true
		}
	}
	if len(deps) > 0 {
		guidance = append(guidance, fmt.Sprintf("Install the %d external dependencies declared across generated files.", len(deps)))
	}

	if len(cls.Compliance.ApplicableFrameworks) > 0 {
		guidance = append(guidance, fmt.Sprintf(
			"Validate against applicable compliance frameworks before production use: %d identified.",
			len(cls.Compliance.ApplicableFrameworks)))
	}
	if profile := kb.Industry(cls.Industry.Industry); profile.DataRetentionYears > 0 {
		guidance = append(guidance, fmt.Sprintf(
			"Configure record retention for at least %d years per %s industry norms.",
			profile.DataRetentionYears, profile.DisplayName))
	}
	return guidance
}

// limitations enumerates what the run could not guarantee, so a human
// reviewer knows where to look first.
func limitations(r *Result, threshold int) []string {
	acknowledged := []string{
		"Generated code has not been executed or integration-tested against live platform services.",
	}

	if r.Quality.OverallScore < threshold {
		acknowledged = append(acknowledged, fmt.Sprintf(
			"Quality score %d remains below the %d threshold after %d refinement rounds; manual review is required.",
			r.Quality.OverallScore, threshold, r.RefinementRounds))
	}

	fallbacks := 0
	for _, a := range r.Artifacts {
		if a.Method == generator.MethodFallback {
			fallbacks++
		}
	}
	if fallbacks > 0 {
		acknowledged = append(acknowledged, fmt.Sprintf(
			"%d artifacts are deterministic scaffolds with unimplemented integration points.", fallbacks))
	}

	if r.Classification.Source == classifier.SourceRules {
		acknowledged = append(acknowledged,
			"Classification used keyword rules because no reasoning provider was reachable; verify intent and industry manually.")
	}
	if r.Classification.RecommendedApproach.Strategy == classifier.StrategyExpertConsultation {
		acknowledged = append(acknowledged,
			"The classifier recommends expert consultation for this requirement; treat generated code as a starting point only.")
	}
	return acknowledged
}

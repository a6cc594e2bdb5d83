package composer

import (
	"context"
	"strings"
	"testing"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/generator"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/requirement"
	"github.com/hashcompose/reqforge/internal/strategy"
)

func newOfflineComposer(t *testing.T) *Composer {
	t.Helper()
	// No providers: every stage runs on its deterministic fallback.
	return New(knowledge.Default(), nil, ladder.New(nil, 0), nil, Options{})
}

func TestComposeOfflineProducesCompleteResult(t *testing.T) {
	c := newOfflineComposer(t)
	req := requirement.Requirement{Description: "We need supply chain tracking for pharmaceutical batch compliance"}

	result, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if result.ID == "" {
		t.Error("result missing run ID")
	}
	if len(result.Artifacts) == 0 {
		t.Error("result has no artifacts")
	}
	if len(result.ValidationResults) == 0 {
		t.Error("result has no validation results")
	}
	if len(result.DeploymentGuidance) == 0 {
		t.Error("result has no deployment guidance")
	}
	if len(result.LimitationAcknowledgment) == 0 {
		t.Error("result has no limitation acknowledgment")
	}
	if result.FinishedAt.Before(result.StartedAt) {
		t.Error("finished before started")
	}
}

func TestComposePharmaceuticalScenario(t *testing.T) {
	c := newOfflineComposer(t)
	req := requirement.Requirement{Description: "We need supply chain tracking for pharmaceutical batch compliance"}

	result, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	cls := result.Classification
	if cls.BusinessIntent.Primary != classifier.IntentSupplyChainCompliance {
		t.Errorf("intent = %q, want supply-chain-compliance", cls.BusinessIntent.Primary)
	}
	if cls.Industry.Industry != "pharmaceutical" {
		t.Errorf("industry = %q, want pharmaceutical", cls.Industry.Industry)
	}
	if cls.Compliance.Level != classifier.ComplianceAdvanced {
		t.Errorf("compliance level = %q, want advanced", cls.Compliance.Level)
	}
	if s := cls.RecommendedApproach.Strategy; s != classifier.StrategyHybrid && s != classifier.StrategyExpertConsultation {
		t.Errorf("strategy = %q, want hybrid or expert-consultation", s)
	}
	if cls.Source != classifier.SourceRules {
		t.Errorf("source = %q, want deterministic fallback with no providers", cls.Source)
	}
}

func TestComposeSimpleTokenTransferScenario(t *testing.T) {
	c := newOfflineComposer(t)
	req := requirement.Requirement{Description: "simple basic token transfer"}

	result, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if s := result.Classification.RecommendedApproach.Strategy; s != classifier.StrategyTemplateBased {
		t.Errorf("strategy = %q, want template-based", s)
	}
}

func TestComposeDeterministicOffline(t *testing.T) {
	req := requirement.Requirement{Description: "audit trail for financial settlement records"}

	first, err := newOfflineComposer(t).Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	second, err := newOfflineComposer(t).Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if first.Classification.BusinessIntent.Primary != second.Classification.BusinessIntent.Primary {
		t.Error("intent differs between identical offline runs")
	}
	if first.Classification.ConfidenceScore.Overall != second.Classification.ConfidenceScore.Overall {
		t.Error("confidence differs between identical offline runs")
	}
	if len(first.Artifacts) != len(second.Artifacts) {
		t.Fatal("artifact counts differ between identical offline runs")
	}
	for i := range first.Artifacts {
		if first.Artifacts[i].Content != second.Artifacts[i].Content {
			t.Errorf("artifact %d content differs between identical offline runs", i)
		}
	}
	if first.Quality.OverallScore != second.Quality.OverallScore {
		t.Error("quality score differs between identical offline runs")
	}
}

func TestComposeRefinementBounded(t *testing.T) {
	c := New(knowledge.Default(), nil, ladder.New(nil, 0), nil, Options{MaxRefinementRounds: 1})
	req := requirement.Requirement{Description: "complex regulated payment settlement"}

	result, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if result.RefinementRounds > 1 {
		t.Errorf("RefinementRounds = %d, want at most 1", result.RefinementRounds)
	}
}

func TestComposeFallbackArtifactsAcknowledged(t *testing.T) {
	c := newOfflineComposer(t)
	result, err := c.Compose(context.Background(), requirement.Requirement{Description: "notarize legal documents"})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	hasFallback := false
	for _, a := range result.Artifacts {
		if a.Method == generator.MethodFallback {
			hasFallback = true
		}
	}
	if !hasFallback {
		t.Skip("no fallback artifacts in this run")
	}
	found := false
	for _, l := range result.LimitationAcknowledgment {
		if strings.Contains(l, "scaffold") {
			found = true
		}
	}
	if !found {
		t.Error("fallback scaffolds not mentioned in limitation acknowledgment")
	}
}

func TestValidationCatchesEmptyPaths(t *testing.T) {
	r := &Result{
		Artifacts: []generator.Artifact{{FilePath: ""}},
		Strategy:  strategy.CompositionStrategy{Approach: strategy.ApproachCustomLogic},
	}
	checks := validate(r)

	for _, check := range checks {
		if check.Check == "artifacts-named" && check.Passed {
			t.Error("artifacts-named check passed despite empty path")
		}
	}
}

package classifier

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// fakeProvider returns a canned response, or an error when content is empty.
type fakeProvider struct {
	name    string
	content string
	err     error
}

func (f fakeProvider) Name() string { return f.name }

func (f fakeProvider) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content}, nil
}

func newRuleClassifier() *Classifier {
	return New(knowledge.Default(), nil, ladder.New(nil, 0), "")
}

func classify(t *testing.T, c *Classifier, description string, ec *requirement.EnterpriseContext) Classification {
	t.Helper()
	return c.Classify(context.Background(), requirement.Requirement{
		Description: description,
		Context:     ec,
	})
}

func TestClassifyDeterministicWithoutProviders(t *testing.T) {
	c := newRuleClassifier()
	description := "Track pharmaceutical shipments across our supply chain with FDA compliance"

	first := classify(t, c, description, nil)
	second := classify(t, c, description, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.Source != SourceRules {
		t.Errorf("Source = %q, want %q with no providers", first.Source, SourceRules)
	}
}

func TestClassifyPharmaceuticalSupplyChain(t *testing.T) {
	c := newRuleClassifier()
	cls := classify(t, c,
		"We need to track pharmaceutical shipments across our supply chain, "+
			"prove chain of custody for each batch, and stay compliant with FDA regulations", nil)

	if cls.BusinessIntent.Primary != IntentSupplyChainCompliance {
		t.Errorf("intent = %q, want %q", cls.BusinessIntent.Primary, IntentSupplyChainCompliance)
	}
	if cls.Industry.Industry != "pharmaceutical" {
		t.Errorf("industry = %q, want pharmaceutical", cls.Industry.Industry)
	}
	if cls.Compliance.Level != ComplianceAdvanced && cls.Compliance.Level != ComplianceCritical {
		t.Errorf("compliance level = %q, want advanced or critical", cls.Compliance.Level)
	}
	got := cls.RecommendedApproach.Strategy
	if got != StrategyHybrid && got != StrategyExpertConsultation {
		t.Errorf("strategy = %q, want hybrid or expert-consultation", got)
	}
}

func TestClassifySimpleTokenTransfer(t *testing.T) {
	c := newRuleClassifier()
	cls := classify(t, c, "Simple token transfer between two accounts", nil)

	if cls.BusinessIntent.Primary != IntentAssetTokenization {
		t.Errorf("intent = %q, want %q", cls.BusinessIntent.Primary, IntentAssetTokenization)
	}
	if cls.RecommendedApproach.Strategy != StrategyTemplateBased {
		t.Errorf("strategy = %q, want %q", cls.RecommendedApproach.Strategy, StrategyTemplateBased)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	c := newRuleClassifier()
	descriptions := []string{
		"Track pharmaceutical shipments with temperature excursion alerts under FDA and GDPR and HIPAA and SOX rules",
		"Simple token transfer",
		"Something entirely unrelated to any known domain",
		"",
	}

	for _, d := range descriptions {
		cls := classify(t, c, d, nil)
		scores := []int{
			cls.ConfidenceScore.Overall,
			cls.ConfidenceScore.Breakdown.BusinessIntentMatch,
			cls.ConfidenceScore.Breakdown.TechnicalFeasibility,
			cls.ConfidenceScore.Breakdown.RegulatoryCompliance,
			cls.ConfidenceScore.Breakdown.TemplateAvailability,
			cls.ConfidenceScore.Breakdown.AICapability,
		}
		for i, s := range scores {
			if s < 0 || s > 100 {
				t.Errorf("description %q: score %d = %d out of [0,100]", d, i, s)
			}
		}
	}
}

func TestClassifyOverallIsWeightedSum(t *testing.T) {
	c := newRuleClassifier()
	for _, d := range []string{
		"Track pharmaceutical shipments with chain of custody under FDA rules",
		"Simple token transfer between accounts",
		"Automate an approval workflow for invoices",
	} {
		cls := classify(t, c, d, nil)
		b := cls.ConfidenceScore.Breakdown
		want := math.Round(
			0.25*float64(b.BusinessIntentMatch) +
				0.25*float64(b.TechnicalFeasibility) +
				0.20*float64(b.RegulatoryCompliance) +
				0.20*float64(b.TemplateAvailability) +
				0.10*float64(b.AICapability))
		if diff := float64(cls.ConfidenceScore.Overall) - want; diff > 1 || diff < -1 {
			t.Errorf("description %q: overall %d differs from weighted sum %v by more than 1",
				d, cls.ConfidenceScore.Overall, want)
		}
	}
}

func TestClassifyContextIndustryOverridesDetection(t *testing.T) {
	c := newRuleClassifier()
	cls := classify(t, c, "Track shipments for our products", &requirement.EnterpriseContext{
		Industry: "pharmaceutical",
	})

	if cls.Industry.Industry != "pharmaceutical" {
		t.Errorf("industry = %q, want pharmaceutical from context", cls.Industry.Industry)
	}
	if cls.Industry.Confidence != 95 {
		t.Errorf("industry confidence = %d, want 95 for caller-supplied industry", cls.Industry.Confidence)
	}
}

func TestClassifyContextRegulatoryListExtendsCompliance(t *testing.T) {
	c := newRuleClassifier()
	cls := classify(t, c, "Store records immutably", &requirement.EnterpriseContext{
		RegulatoryList: []string{"GDPR", "SOX"},
	})

	found := map[string]bool{}
	for _, f := range cls.Compliance.ApplicableFrameworks {
		found[f] = true
	}
	if !found["gdpr"] || !found["sox"] {
		t.Errorf("applicable frameworks %v missing declared gdpr/sox", cls.Compliance.ApplicableFrameworks)
	}
}

func TestClassifyReasoningPath(t *testing.T) {
	response := `{
		"primary_intent": "payment-processing",
		"secondary_intents": ["audit-trail"],
		"confidence": 88,
		"matched_keywords": ["settlement"],
		"complexity": {
			"overall_score": 62,
			"integration_breadth": 55,
			"data_sensitivity": 70,
			"transaction_volume": 65,
			"regulatory_burden": 60,
			"pattern_novelty": 40,
			"risk_factors": ["cross-border settlement"],
			"mitigations": ["sandbox trial"]
		}
	}`
	c := New(knowledge.Default(), []llm.Provider{fakeProvider{name: "fake", content: response}}, ladder.New(nil, 0), "m")

	cls := classify(t, c, "Settle cross-border payments daily", nil)

	if cls.Source != SourceReasoning {
		t.Errorf("Source = %q, want %q", cls.Source, SourceReasoning)
	}
	if cls.BusinessIntent.Primary != IntentPaymentProcessing {
		t.Errorf("intent = %q, want payment-processing", cls.BusinessIntent.Primary)
	}
	if len(cls.BusinessIntent.Secondary) != 1 || cls.BusinessIntent.Secondary[0] != IntentAuditTrail {
		t.Errorf("secondary = %v", cls.BusinessIntent.Secondary)
	}
	if cls.TechnicalComplexity.OverallScore != 62 {
		t.Errorf("complexity = %d, want 62", cls.TechnicalComplexity.OverallScore)
	}
	if len(cls.TechnicalComplexity.RiskFactors) == 0 {
		t.Error("risk factors from the response were dropped")
	}
}

func TestClassifyBadResponseFallsBack(t *testing.T) {
	providers := []llm.Provider{
		fakeProvider{name: "broken", content: "not json at all"},
		fakeProvider{name: "empty", content: `{"primary_intent": ""}`},
	}
	c := New(knowledge.Default(), providers, ladder.New(nil, 0), "m")

	cls := classify(t, c, "Transfer tokens between accounts", nil)

	if cls.Source != SourceRules {
		t.Errorf("Source = %q, want %q after all providers fail to parse", cls.Source, SourceRules)
	}
	if cls.BusinessIntent.Primary != IntentAssetTokenization {
		t.Errorf("rule fallback intent = %q", cls.BusinessIntent.Primary)
	}
	if cls.BusinessIntent.Confidence != ruleFallbackConfidence {
		t.Errorf("rule fallback confidence = %d, want %d", cls.BusinessIntent.Confidence, ruleFallbackConfidence)
	}
}

func TestFallbackShape(t *testing.T) {
	cls := Fallback()

	if cls.BusinessIntent.Primary != IntentGeneralIntegration {
		t.Errorf("fallback intent = %q", cls.BusinessIntent.Primary)
	}
	if cls.ConfidenceScore.Overall != internalFallbackConfidence {
		t.Errorf("fallback overall = %d, want %d", cls.ConfidenceScore.Overall, internalFallbackConfidence)
	}
	if cls.RecommendedApproach.Strategy != StrategyExpertConsultation {
		t.Errorf("fallback strategy = %q", cls.RecommendedApproach.Strategy)
	}
	if cls.Source != SourceRules {
		t.Errorf("fallback source = %q", cls.Source)
	}
}

func TestClassifyIntentByRules(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"track shipments through the supply chain", IntentSupplyChainCompliance},
		{"mint and transfer loyalty points", IntentAssetTokenization},
		{"keep an immutable audit trail of changes", IntentAuditTrail},
		{"notarize legal documents", IntentDocumentVerification},
		{"verify customer identity during onboarding", IntentIdentityManagement},
		{"nothing matches here", IntentGeneralIntegration},
	}

	for _, tc := range tests {
		got := classifyIntentByRules(tc.text)
		if got.Primary != tc.want {
			t.Errorf("classifyIntentByRules(%q) = %q, want %q", tc.text, got.Primary, tc.want)
		}
		if got.Confidence != ruleFallbackConfidence {
			t.Errorf("rule confidence = %d, want %d", got.Confidence, ruleFallbackConfidence)
		}
	}
}

func TestSelectStrategyThresholds(t *testing.T) {
	tests := []struct {
		name      string
		breakdown ConfidenceBreakdown
		want      Strategy
	}{
		{
			name:      "high template availability wins",
			breakdown: ConfidenceBreakdown{TemplateAvailability: 85, AICapability: 90, BusinessIntentMatch: 90, TechnicalFeasibility: 90, RegulatoryCompliance: 90},
			want:      StrategyTemplateBased,
		},
		{
			name:      "capable reasoning with confident overall",
			breakdown: ConfidenceBreakdown{TemplateAvailability: 40, AICapability: 75, BusinessIntentMatch: 80, TechnicalFeasibility: 80, RegulatoryCompliance: 70},
			want:      StrategyAIComposition,
		},
		{
			name:      "middling overall falls to hybrid",
			breakdown: ConfidenceBreakdown{TemplateAvailability: 40, AICapability: 50, BusinessIntentMatch: 60, TechnicalFeasibility: 60, RegulatoryCompliance: 60},
			want:      StrategyHybrid,
		},
		{
			name:      "low everything means consultation",
			breakdown: ConfidenceBreakdown{TemplateAvailability: 20, AICapability: 30, BusinessIntentMatch: 40, TechnicalFeasibility: 40, RegulatoryCompliance: 40},
			want:      StrategyExpertConsultation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := combineConfidence(tc.breakdown)
			if got := selectStrategy(score); got != tc.want {
				t.Errorf("selectStrategy = %q, want %q (overall %d)", got, tc.want, score.Overall)
			}
		})
	}
}

func TestCombineConfidenceClampsInputs(t *testing.T) {
	score := combineConfidence(ConfidenceBreakdown{
		BusinessIntentMatch:  150,
		TechnicalFeasibility: -40,
		RegulatoryCompliance: 100,
		TemplateAvailability: 100,
		AICapability:         100,
	})

	if score.Breakdown.BusinessIntentMatch != 100 {
		t.Errorf("intent not clamped: %d", score.Breakdown.BusinessIntentMatch)
	}
	if score.Breakdown.TechnicalFeasibility != 0 {
		t.Errorf("feasibility not clamped: %d", score.Breakdown.TechnicalFeasibility)
	}
	if score.Overall < 0 || score.Overall > 100 {
		t.Errorf("overall %d out of range", score.Overall)
	}
}

func TestComplianceLevelGrading(t *testing.T) {
	tests := []struct {
		frameworks []string
		want       ComplianceLevel
	}{
		{nil, ComplianceBasic},
		{[]string{"gdpr"}, ComplianceStandard},
		{[]string{"gdpr", "sox"}, ComplianceAdvanced},
		{[]string{"gdpr", "sox", "hipaa"}, ComplianceAdvanced},
		{[]string{"gdpr", "sox", "hipaa", "fda-cfr-11"}, ComplianceCritical},
	}

	for _, tc := range tests {
		if got := complianceLevel(tc.frameworks); got != tc.want {
			t.Errorf("complianceLevel(%v) = %q, want %q", tc.frameworks, got, tc.want)
		}
	}
}

func TestParseClassifyResponse(t *testing.T) {
	t.Run("fenced JSON accepted", func(t *testing.T) {
		content := "```json\n{\"primary_intent\": \"audit-trail\", \"confidence\": 70, \"complexity\": {\"overall_score\": 50}}\n```"
		intent, complexity, err := parseClassifyResponse(content)
		if err != nil {
			t.Fatalf("parseClassifyResponse: %v", err)
		}
		if intent.Primary != IntentAuditTrail {
			t.Errorf("intent = %q", intent.Primary)
		}
		if complexity.OverallScore != 50 {
			t.Errorf("complexity = %d", complexity.OverallScore)
		}
	})

	t.Run("missing intent rejected", func(t *testing.T) {
		if _, _, err := parseClassifyResponse(`{"complexity": {"overall_score": 50}}`); err == nil {
			t.Error("expected error for missing primary_intent")
		}
	})

	t.Run("missing complexity rejected", func(t *testing.T) {
		if _, _, err := parseClassifyResponse(`{"primary_intent": "audit-trail"}`); err == nil {
			t.Error("expected error for missing complexity")
		}
	})

	t.Run("junk rejected", func(t *testing.T) {
		if _, _, err := parseClassifyResponse("certainly! here is your classification"); err == nil {
			t.Error("expected error for non-JSON content")
		}
	})
}

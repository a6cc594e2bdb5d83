// Package classifier turns a free-text business requirement into a
// structured multi-dimensional classification: business intent, industry
// context, technical complexity, compliance needs, and a weighted
// confidence score. Classification never fails: when reasoning providers
// are unavailable it degrades to keyword rules, and on internal failure it
// returns a fixed low-confidence fallback.
package classifier

// Intent identifies the primary business intent of a requirement. The
// enumeration is open: unknown values flow through untouched.
type Intent string

const (
	IntentSupplyChainCompliance Intent = "supply-chain-compliance"
	IntentAssetTokenization     Intent = "asset-tokenization"
	IntentPaymentProcessing     Intent = "payment-processing"
	IntentAuditTrail            Intent = "audit-trail"
	IntentDocumentVerification  Intent = "document-verification"
	IntentIdentityManagement    Intent = "identity-management"
	IntentProcessAutomation     Intent = "process-automation"
	IntentDataIntegrity         Intent = "data-integrity"
	IntentGeneralIntegration    Intent = "general-integration"
)

// Strategy is the recommended high-level approach for producing code.
type Strategy string

const (
	StrategyTemplateBased      Strategy = "template-based"
	StrategyAIComposition      Strategy = "ai-composition"
	StrategyHybrid             Strategy = "hybrid"
	StrategyExpertConsultation Strategy = "expert-consultation"
)

// ComplianceLevel grades how demanding the compliance posture is.
type ComplianceLevel string

const (
	ComplianceBasic    ComplianceLevel = "basic"
	ComplianceStandard ComplianceLevel = "standard"
	ComplianceAdvanced ComplianceLevel = "advanced"
	ComplianceCritical ComplianceLevel = "critical"
)

// Source tags how a classification was produced.
type Source string

const (
	SourceReasoning Source = "ai-generated"
	SourceRules     Source = "deterministic-fallback"
)

// BusinessIntent is the intent dimension of a classification.
type BusinessIntent struct {
	Primary         Intent   `json:"primary"`
	Secondary       []Intent `json:"secondary,omitempty"`
	Confidence      int      `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
}

// IndustryClassification is the resolved industry context.
type IndustryClassification struct {
	Industry             string   `json:"industry"`
	SubCategory          string   `json:"sub_category,omitempty"`
	RegulatoryFrameworks []string `json:"regulatory_frameworks,omitempty"`
	Standards            []string `json:"standards,omitempty"`
	CommonIntegrations   []string `json:"common_integrations,omitempty"`
	Confidence           int      `json:"confidence"`
}

// ComplexityFactors are the five named factor scores behind the overall
// technical-complexity score. Each is in [0,100].
type ComplexityFactors struct {
	IntegrationBreadth int `json:"integration_breadth"`
	DataSensitivity    int `json:"data_sensitivity"`
	TransactionVolume  int `json:"transaction_volume"`
	RegulatoryBurden   int `json:"regulatory_burden"`
	PatternNovelty     int `json:"pattern_novelty"`
}

// TechnicalComplexity is the complexity dimension of a classification.
type TechnicalComplexity struct {
	OverallScore int               `json:"overall_score"`
	Factors      ComplexityFactors `json:"factors"`
	RiskFactors  []string          `json:"risk_factors,omitempty"`
	Mitigations  []string          `json:"mitigations,omitempty"`
}

// ComplianceClassification is the compliance dimension of a classification.
type ComplianceClassification struct {
	ApplicableFrameworks       []string        `json:"applicable_frameworks,omitempty"`
	Level                      ComplianceLevel `json:"level"`
	AuditRequirements          []string        `json:"audit_requirements,omitempty"`
	ReportingRequirements      []string        `json:"reporting_requirements,omitempty"`
	DataProtectionRequirements []string        `json:"data_protection_requirements,omitempty"`
}

// ConfidenceBreakdown holds the five independent sub-scores feeding the
// overall confidence. Each is clamped to [0,100] before weighting.
type ConfidenceBreakdown struct {
	BusinessIntentMatch  int `json:"business_intent_match"`
	TechnicalFeasibility int `json:"technical_feasibility"`
	RegulatoryCompliance int `json:"regulatory_compliance"`
	TemplateAvailability int `json:"template_availability"`
	AICapability         int `json:"ai_capability"`
}

// ConfidenceScore is the weighted overall confidence plus its breakdown.
// Overall always equals the rounded weighted sum of the breakdown:
// 0.25·intent + 0.25·feasibility + 0.20·regulatory + 0.20·templates +
// 0.10·capability.
type ConfidenceScore struct {
	Overall   int                 `json:"overall"`
	Breakdown ConfidenceBreakdown `json:"breakdown"`
}

// EffortEstimate is a coarse sizing of the recommended approach.
type EffortEstimate struct {
	PersonWeeks float64 `json:"person_weeks"`
	Basis       string  `json:"basis"`
}

// RiskAssessment summarizes delivery risk for the recommended approach.
type RiskAssessment struct {
	Level   string   `json:"level"`
	Factors []string `json:"factors,omitempty"`
}

// RecommendedApproach is the classifier's delivery recommendation.
type RecommendedApproach struct {
	Strategy               Strategy       `json:"strategy"`
	TemplateSuggestions    []string       `json:"template_suggestions,omitempty"`
	CustomDevelopmentNeeds []string       `json:"custom_development_needs,omitempty"`
	ConsultationAreas      []string       `json:"consultation_areas,omitempty"`
	EffortEstimate         EffortEstimate `json:"effort_estimate"`
	RiskAssessment         RiskAssessment `json:"risk_assessment"`
}

// Classification is the full multi-dimensional assessment of a requirement.
// It is created once per requirement and read-only downstream; later stages
// receive it by value.
type Classification struct {
	BusinessIntent      BusinessIntent           `json:"business_intent"`
	Industry            IndustryClassification   `json:"industry"`
	TechnicalComplexity TechnicalComplexity      `json:"technical_complexity"`
	Compliance          ComplianceClassification `json:"compliance"`
	ConfidenceScore     ConfidenceScore          `json:"confidence_score"`
	RecommendedApproach RecommendedApproach      `json:"recommended_approach"`
	RecommendedServices []string                 `json:"recommended_services,omitempty"`
	Source              Source                   `json:"source"`
}

// clamp bounds a score to [0,100].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

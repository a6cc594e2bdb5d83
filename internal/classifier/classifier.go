package classifier

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// Classifier produces Classifications through the provider ladder, with
// keyword rules as the deterministic fallback.
type Classifier struct {
	kb        *knowledge.Base
	providers []llm.Provider
	lad       ladder.Ladder
	model     string
}

// New creates a Classifier. The knowledge base is shared by reference and
// must not be mutated after construction.
func New(kb *knowledge.Base, providers []llm.Provider, lad ladder.Ladder, model string) *Classifier {
	return &Classifier{
		kb:        kb,
		providers: providers,
		lad:       lad,
		model:     model,
	}
}

// intentComplexity is the ladder work product: the two dimensions that
// benefit from reasoning. Everything else is derived deterministically.
type intentComplexity struct {
	intent     BusinessIntent
	complexity TechnicalComplexity
}

// Classify produces a fully-populated Classification for the requirement.
// It never returns an error: provider trouble degrades to keyword rules,
// and any internal failure yields the fixed low-confidence fallback so
// downstream stages always receive a well-formed object.
func (c *Classifier) Classify(ctx context.Context, req requirement.Requirement) (out Classification) {
	defer func() {
		if r := recover(); r != nil {
			c.lad.Log.Error("classification failed internally, returning fallback",
				zap.Any("panic", r))
			out = Fallback()
		}
	}()

	detectedFrameworks := len(c.kb.DetectFrameworks(req.Description))
	detectedServices := c.kb.DetectServices(req.Description)

	prompt := buildClassifyPrompt(c.kb, req)
	result := ladder.Execute(ctx, c.lad, c.providers,
		func(ctx context.Context, p llm.Provider) (intentComplexity, error) {
			resp, err := p.Complete(ctx, llm.Request{
				Model:       c.model,
				Messages:    llm.SystemUser(classifySystemPrompt, prompt),
				MaxTokens:   2048,
				Temperature: 0.1,
				JSONMode:    true,
			})
			if err != nil {
				return intentComplexity{}, err
			}
			intent, complexity, err := parseClassifyResponse(resp.Content)
			if err != nil {
				return intentComplexity{}, err
			}
			return intentComplexity{intent: intent, complexity: complexity}, nil
		},
		func() intentComplexity {
			return intentComplexity{
				intent:     classifyIntentByRules(req.Description),
				complexity: heuristicComplexity(req.Description, detectedFrameworks, len(detectedServices)),
			}
		})

	intent := result.Value.intent
	complexity := result.Value.complexity

	industry, profile := resolveIndustry(c.kb, req)
	compliance := classifyCompliance(c.kb, req, profile)

	if len(complexity.RiskFactors) == 0 {
		complexity.RiskFactors = profile.RiskFactors
	}
	if len(complexity.Mitigations) == 0 {
		complexity.Mitigations = defaultMitigations(compliance.Level)
	}

	templates := c.kb.MatchTemplates(req.Description)
	templateHits := bestTemplateHits(templates, req.Description)

	breakdown := ConfidenceBreakdown{
		BusinessIntentMatch:  intentMatchScore(intent),
		TechnicalFeasibility: feasibilityScore(len(detectedServices), complexity),
		RegulatoryCompliance: regulatoryScore(compliance, knownFrameworkCount(c.kb, compliance.ApplicableFrameworks)),
		TemplateAvailability: templateScore(templateHits, len(compliance.ApplicableFrameworks), complexity),
		AICapability:         capabilityScore(complexity, profile.Key != knowledge.GenericIndustryKey, templateHits, len(compliance.ApplicableFrameworks)),
	}
	score := combineConfidence(breakdown)
	strategy := selectStrategy(score)

	approach := RecommendedApproach{
		Strategy:               strategy,
		TemplateSuggestions:    templateNames(templates, 3),
		CustomDevelopmentNeeds: customNeeds(detectedServices, templates),
		ConsultationAreas:      consultationAreas(c.kb, compliance),
		EffortEstimate:         estimateEffort(strategy, complexity),
		RiskAssessment:         assessRisk(complexity, compliance),
	}

	source := SourceReasoning
	if result.Method == ladder.MethodFallback {
		source = SourceRules
	}

	return Classification{
		BusinessIntent:      intent,
		Industry:            industry,
		TechnicalComplexity: complexity,
		Compliance:          compliance,
		ConfidenceScore:     score,
		RecommendedApproach: approach,
		RecommendedServices: recommendedServices(detectedServices, templates),
		Source:              source,
	}
}

// Fallback is the fully-populated low-confidence classification returned on
// internal failure: every downstream consumer can rely on its shape.
func Fallback() Classification {
	breakdown := ConfidenceBreakdown{
		BusinessIntentMatch:  internalFallbackConfidence,
		TechnicalFeasibility: internalFallbackConfidence,
		RegulatoryCompliance: internalFallbackConfidence,
		TemplateAvailability: internalFallbackConfidence,
		AICapability:         internalFallbackConfidence,
	}
	score := combineConfidence(breakdown)

	complexity := TechnicalComplexity{
		OverallScore: 50,
		Factors: ComplexityFactors{
			IntegrationBreadth: 50,
			DataSensitivity:    50,
			TransactionVolume:  50,
			RegulatoryBurden:   50,
			PatternNovelty:     50,
		},
	}

	return Classification{
		BusinessIntent: BusinessIntent{
			Primary:    IntentGeneralIntegration,
			Confidence: internalFallbackConfidence,
		},
		Industry: IndustryClassification{
			Industry:   knowledge.GenericIndustryKey,
			Confidence: internalFallbackConfidence,
		},
		TechnicalComplexity: complexity,
		Compliance: ComplianceClassification{
			Level: ComplianceBasic,
		},
		ConfidenceScore: score,
		RecommendedApproach: RecommendedApproach{
			Strategy:       StrategyExpertConsultation,
			EffortEstimate: estimateEffort(StrategyExpertConsultation, complexity),
			RiskAssessment: RiskAssessment{Level: "medium", Factors: []string{"classification degraded"}},
		},
		Source: SourceRules,
	}
}

// bestTemplateHits counts how many of the best-matching template's keywords
// appear in the requirement text.
func bestTemplateHits(templates []knowledge.Template, text string) int {
	if len(templates) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range templates[0].Keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}

func templateNames(templates []knowledge.Template, limit int) []string {
	var names []string
	for _, t := range templates {
		names = append(names, t.Name)
		if len(names) == limit {
			break
		}
	}
	return names
}

// customNeeds lists detected services not covered by any matched template.
func customNeeds(services []string, templates []knowledge.Template) []string {
	covered := make(map[string]bool)
	for _, t := range templates {
		for _, s := range t.Services {
			covered[s] = true
		}
	}

	var needs []string
	for _, s := range services {
		if !covered[s] {
			needs = append(needs, "custom integration for "+s+" service")
		}
	}
	return needs
}

// consultationAreas names the frameworks that warrant expert review when
// the compliance posture is advanced or critical.
func consultationAreas(kb *knowledge.Base, compliance ComplianceClassification) []string {
	if compliance.Level != ComplianceAdvanced && compliance.Level != ComplianceCritical {
		return nil
	}
	var areas []string
	for _, key := range compliance.ApplicableFrameworks {
		areas = append(areas, kb.Framework(key).DisplayName+" compliance review")
	}
	return areas
}

// recommendedServices unions the services detected in the text with the
// services used by matched templates, preserving detection order.
func recommendedServices(detected []string, templates []knowledge.Template) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, s := range detected {
		add(s)
	}
	for _, t := range templates {
		for _, s := range t.Services {
			add(s)
		}
	}
	return out
}

// defaultMitigations supplies stock mitigations when the reasoning response
// offered none.
func defaultMitigations(level ComplianceLevel) []string {
	mitigations := []string{"incremental rollout with integration tests"}
	if level == ComplianceAdvanced || level == ComplianceCritical {
		mitigations = append(mitigations, "compliance officer sign-off before deployment")
	}
	return mitigations
}

package classifier

import (
	"sort"
	"strings"
)

// intentRule maps an intent to the vocabulary that indicates it. Keywords
// are matched as lowercase substrings; patterns are multi-word phrases
// recorded separately when hit.
type intentRule struct {
	intent   Intent
	keywords []string
	patterns []string
}

// intentRules is evaluated in order; order breaks ties between intents with
// equal keyword hits.
var intentRules = []intentRule{
	{
		intent:   IntentSupplyChainCompliance,
		keywords: []string{"supply", "track", "trace", "shipment", "provenance", "custody", "logistics"},
		patterns: []string{"supply chain", "chain of custody", "batch compliance"},
	},
	{
		intent:   IntentAssetTokenization,
		keywords: []string{"token", "tokenize", "mint", "transfer", "loyalty", "points", "carbon"},
		patterns: []string{"token transfer", "loyalty program", "carbon credit"},
	},
	{
		intent:   IntentPaymentProcessing,
		keywords: []string{"payment", "settle", "settlement", "payout", "invoice", "remittance"},
		patterns: []string{"payment processing", "cross-border payment"},
	},
	{
		intent:   IntentAuditTrail,
		keywords: []string{"audit", "evidence", "immutable log", "retention"},
		patterns: []string{"audit trail", "audit log"},
	},
	{
		intent:   IntentDocumentVerification,
		keywords: []string{"document", "notarize", "notarization", "certificate", "anchor"},
		patterns: []string{"document verification"},
	},
	{
		intent:   IntentIdentityManagement,
		keywords: []string{"identity", "credential", "kyc", "onboarding"},
		patterns: []string{"identity verification", "verifiable credential"},
	},
	{
		intent:   IntentProcessAutomation,
		keywords: []string{"automate", "automation", "workflow", "scheduled", "approval"},
		patterns: []string{"business process"},
	},
	{
		intent:   IntentDataIntegrity,
		keywords: []string{"integrity", "immutable", "tamper", "verify"},
		patterns: []string{"data integrity"},
	},
}

// classifyIntentByRules is the deterministic fallback intent classifier:
// keyword rule matching over lowercase requirement text at a fixed
// confidence of 75.
func classifyIntentByRules(text string) BusinessIntent {
	lower := strings.ToLower(text)

	type match struct {
		rule     intentRule
		keywords []string
		patterns []string
	}

	var matches []match
	for _, rule := range intentRules {
		var kws, pats []string
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				kws = append(kws, kw)
			}
		}
		for _, pat := range rule.patterns {
			if strings.Contains(lower, pat) {
				pats = append(pats, pat)
			}
		}
		if len(kws)+len(pats) > 0 {
			matches = append(matches, match{rule: rule, keywords: kws, patterns: pats})
		}
	}

	if len(matches) == 0 {
		return BusinessIntent{
			Primary:    IntentGeneralIntegration,
			Confidence: ruleFallbackConfidence,
		}
	}

	// Patterns weigh double: a phrase hit is a stronger signal than a
	// single keyword.
	sort.SliceStable(matches, func(i, j int) bool {
		si := len(matches[i].keywords) + 2*len(matches[i].patterns)
		sj := len(matches[j].keywords) + 2*len(matches[j].patterns)
		return si > sj
	})

	primary := matches[0]
	intent := BusinessIntent{
		Primary:         primary.rule.intent,
		Confidence:      ruleFallbackConfidence,
		MatchedKeywords: primary.keywords,
		MatchedPatterns: primary.patterns,
	}
	for _, m := range matches[1:] {
		intent.Secondary = append(intent.Secondary, m.rule.intent)
	}
	return intent
}

// heuristicComplexity derives a complexity assessment from trigger words.
// It is the deterministic counterpart of the reasoning-based complexity
// estimate.
func heuristicComplexity(text string, frameworks int, services int) TechnicalComplexity {
	lower := strings.ToLower(text)

	score := 50
	if strings.Contains(lower, "complex") {
		score += 15
	}
	if strings.Contains(lower, "integrat") {
		score += 10
	}
	if strings.Contains(lower, "compliance") || strings.Contains(lower, "regulat") {
		score += 10
	}
	if strings.Contains(lower, "real-time") || strings.Contains(lower, "realtime") {
		score += 5
	}
	if strings.Contains(lower, "simple") {
		score -= 20
	}
	if strings.Contains(lower, "basic") {
		score -= 10
	}
	if services > 2 {
		score += 10
	}
	score = clamp(score)

	factors := ComplexityFactors{
		IntegrationBreadth: clamp(30 + 15*services),
		DataSensitivity:    clamp(30 + 20*frameworks),
		TransactionVolume:  volumeFactor(lower),
		RegulatoryBurden:   clamp(20 + 25*frameworks),
		PatternNovelty:     noveltyFactor(lower),
	}

	return TechnicalComplexity{
		OverallScore: score,
		Factors:      factors,
	}
}

func volumeFactor(lower string) int {
	switch {
	case strings.Contains(lower, "high volume") || strings.Contains(lower, "high-volume") || strings.Contains(lower, "millions"):
		return 85
	case strings.Contains(lower, "batch"):
		return 60
	default:
		return 40
	}
}

func noveltyFactor(lower string) int {
	switch {
	case strings.Contains(lower, "novel") || strings.Contains(lower, "unprecedented"):
		return 85
	case strings.Contains(lower, "custom"):
		return 65
	default:
		return 35
	}
}

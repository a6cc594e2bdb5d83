package classifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/requirement"
)

const classifySystemPrompt = `You are an enterprise integration architect. Classify the given business requirement and return a structured JSON response. Be precise and factual. Do not invent details that are not present in the requirement.`

const classifyPromptTemplate = `Classify this business requirement and return a JSON object with exactly these fields:

{
  "primary_intent": "one of: %s",
  "secondary_intents": ["zero or more of the same values"],
  "confidence": 0,
  "matched_keywords": ["words from the requirement that drove the classification"],
  "complexity": {
    "overall_score": 0,
    "integration_breadth": 0,
    "data_sensitivity": 0,
    "transaction_volume": 0,
    "regulatory_burden": 0,
    "pattern_novelty": 0,
    "risk_factors": ["technical or delivery risks"],
    "mitigations": ["suggested mitigations"]
  }
}

All scores are integers from 0 to 100.

Requirement:
%s
%s
Reference material:
%s`

// knownIntents lists the intent enumeration for the prompt.
func knownIntents() string {
	intents := []Intent{
		IntentSupplyChainCompliance,
		IntentAssetTokenization,
		IntentPaymentProcessing,
		IntentAuditTrail,
		IntentDocumentVerification,
		IntentIdentityManagement,
		IntentProcessAutomation,
		IntentDataIntegrity,
		IntentGeneralIntegration,
	}
	parts := make([]string, len(intents))
	for i, in := range intents {
		parts[i] = string(in)
	}
	return strings.Join(parts, ", ")
}

// buildClassifyPrompt renders the user prompt: the requirement, any
// supplied enterprise context, and static reference material (industry
// exemplars, compliance glossary, service capabilities).
func buildClassifyPrompt(kb *knowledge.Base, req requirement.Requirement) string {
	contextSection := ""
	if section := req.Context.ToPromptSection(); section != "" {
		contextSection = "\nEnterprise context:\n" + section
	}

	return fmt.Sprintf(classifyPromptTemplate,
		knownIntents(),
		req.Description,
		contextSection,
		referenceMaterial(kb))
}

// referenceMaterial summarizes the static knowledge base for the prompt:
// industry exemplars, the compliance-framework glossary, and the platform
// service glossary.
func referenceMaterial(kb *knowledge.Base) string {
	var b strings.Builder

	b.WriteString("Industries: ")
	var industries []string
	for _, key := range sortedIndustryKeys(kb) {
		p := kb.Industries[key]
		industries = append(industries, fmt.Sprintf("%s (patterns: %s)", p.Key, strings.Join(p.TypicalPatterns, ", ")))
	}
	b.WriteString(strings.Join(industries, "; "))
	b.WriteString("\n")

	b.WriteString("Compliance frameworks: ")
	var frameworks []string
	for _, f := range sortedFrameworks(kb) {
		frameworks = append(frameworks, f.DisplayName)
	}
	b.WriteString(strings.Join(frameworks, ", "))
	b.WriteString("\n")

	b.WriteString("Platform services: ")
	var services []string
	for _, s := range sortedServices(kb) {
		services = append(services, fmt.Sprintf("%s — %s", s.DisplayName, s.Description))
	}
	b.WriteString(strings.Join(services, "; "))

	return b.String()
}

func sortedIndustryKeys(kb *knowledge.Base) []string {
	keys := make([]string, 0, len(kb.Industries))
	for k := range kb.Industries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFrameworks(kb *knowledge.Base) []knowledge.Framework {
	keys := make([]string, 0, len(kb.Frameworks))
	for k := range kb.Frameworks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]knowledge.Framework, len(keys))
	for i, k := range keys {
		out[i] = kb.Frameworks[k]
	}
	return out
}

func sortedServices(kb *knowledge.Base) []knowledge.ServiceCapability {
	keys := make([]string, 0, len(kb.Services))
	for k := range kb.Services {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]knowledge.ServiceCapability, len(keys))
	for i, k := range keys {
		out[i] = kb.Services[k]
	}
	return out
}

package classifier

import (
	"strings"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// resolveIndustry maps the requirement onto a static industry profile. An
// explicitly supplied industry wins over text detection; unknown industries
// get the generic profile at reduced confidence.
func resolveIndustry(kb *knowledge.Base, req requirement.Requirement) (IndustryClassification, knowledge.IndustryProfile) {
	var profile knowledge.IndustryProfile
	confidence := unknownIndustryConfidence

	if req.Context != nil && req.Context.Industry != "" {
		profile = kb.Industry(req.Context.Industry)
		if kb.HasIndustry(req.Context.Industry) {
			// Caller-supplied industry with a known profile is the
			// strongest signal available.
			confidence = 95
		}
	} else {
		profile = kb.DetectIndustry(req.Description)
		if profile.Key != knowledge.GenericIndustryKey {
			confidence = knownIndustryConfidence
		}
	}

	ic := IndustryClassification{
		Industry:             profile.Key,
		RegulatoryFrameworks: profile.RegulatoryFrameworks,
		Standards:            profile.Standards,
		CommonIntegrations:   profile.CommonIntegrations,
		Confidence:           confidence,
	}
	if sub := detectSubCategory(profile, req.Description); sub != "" {
		ic.SubCategory = sub
	}
	return ic, profile
}

// detectSubCategory picks the first profile sub-category mentioned in the
// requirement text, if any.
func detectSubCategory(profile knowledge.IndustryProfile, text string) string {
	lower := strings.ToLower(text)
	for _, sub := range profile.SubCategories {
		probe := strings.ReplaceAll(sub, "-", " ")
		if strings.Contains(lower, probe) || strings.Contains(lower, sub) {
			return sub
		}
	}
	return ""
}

// classifyCompliance unions the frameworks implied by the industry profile,
// detected in the requirement text, and declared in the enterprise context,
// then grades the compliance level from the result.
func classifyCompliance(kb *knowledge.Base, req requirement.Requirement, profile knowledge.IndustryProfile) ComplianceClassification {
	seen := make(map[string]bool)
	var applicable []string
	add := func(key string) {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		applicable = append(applicable, key)
	}

	for _, f := range kb.DetectFrameworks(req.Description) {
		add(f.Key)
	}
	for _, key := range profile.RegulatoryFrameworks {
		add(key)
	}
	if req.Context != nil {
		for _, key := range req.Context.RegulatoryList {
			add(key)
		}
	}

	cc := ComplianceClassification{
		ApplicableFrameworks: applicable,
		Level:                complianceLevel(applicable),
	}

	for _, key := range applicable {
		f := kb.Framework(key)
		cc.AuditRequirements = append(cc.AuditRequirements, f.AuditRequirements...)
		if f.ReportingCadence != "" {
			cc.ReportingRequirements = append(cc.ReportingRequirements, f.DisplayName+": "+f.ReportingCadence)
		}
		cc.DataProtectionRequirements = append(cc.DataProtectionRequirements, f.DataProtectionRules...)
	}

	return cc
}

// complianceLevel grades the posture by framework count.
func complianceLevel(frameworks []string) ComplianceLevel {
	switch n := len(frameworks); {
	case n == 0:
		return ComplianceBasic
	case n == 1:
		return ComplianceStandard
	case n <= 3:
		return ComplianceAdvanced
	default:
		return ComplianceCritical
	}
}

// knownFrameworkCount counts applicable frameworks present in the glossary.
func knownFrameworkCount(kb *knowledge.Base, applicable []string) int {
	n := 0
	for _, key := range applicable {
		if f := kb.Framework(key); len(f.AuditRequirements) > 0 || len(f.Keywords) > 0 {
			n++
		}
	}
	return n
}

// Package knowledge holds the static reference tables the classifier and
// strategy selector consult: industry profiles, compliance-framework
// glossary, platform service capabilities, and the template inventory.
// Tables are built once at startup and injected by reference; they are
// never mutated afterwards. Unknown keys resolve to a generic entry
// instead of failing.
package knowledge

// IndustryProfile describes what is known about one industry vertical.
type IndustryProfile struct {
	Key                  string   `json:"key"`
	DisplayName          string   `json:"display_name"`
	SubCategories        []string `json:"sub_categories,omitempty"`
	Standards            []string `json:"standards,omitempty"`
	RegulatoryFrameworks []string `json:"regulatory_frameworks,omitempty"`
	CommonIntegrations   []string `json:"common_integrations,omitempty"`
	TypicalPatterns      []string `json:"typical_patterns,omitempty"`
	RiskFactors          []string `json:"risk_factors,omitempty"`
	DataRetentionYears   int      `json:"data_retention_years,omitempty"`
	// Keywords trigger industry detection from free text.
	Keywords []string `json:"keywords,omitempty"`
}

// Framework is one compliance-framework glossary entry.
type Framework struct {
	Key                 string   `json:"key"`
	DisplayName         string   `json:"display_name"`
	Region              string   `json:"region,omitempty"`
	AuditRequirements   []string `json:"audit_requirements,omitempty"`
	ReportingCadence    string   `json:"reporting_cadence,omitempty"`
	DataProtectionRules []string `json:"data_protection_rules,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`
}

// ServiceCapability describes one platform service the generated code can
// target, plus the vocabulary that indicates a requirement needs it.
type ServiceCapability struct {
	Key          string   `json:"key"`
	DisplayName  string   `json:"display_name"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

// Template is one entry of the reusable template inventory.
type Template struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Intent      string   `json:"intent"`
	Services    []string `json:"services,omitempty"`
	Components  []string `json:"components,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

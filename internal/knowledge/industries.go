package knowledge

// GenericIndustryKey is returned for industries the base has no profile for.
const GenericIndustryKey = "general"

// defaultIndustries is the built-in industry metadata table.
func defaultIndustries() map[string]IndustryProfile {
	profiles := []IndustryProfile{
		{
			Key:                  "pharmaceutical",
			DisplayName:          "Pharmaceutical",
			SubCategories:        []string{"clinical-trials", "manufacturing", "distribution"},
			Standards:            []string{"GxP", "GAMP 5", "ICH Q10"},
			RegulatoryFrameworks: []string{"fda-21-cfr-11", "eu-annex-11", "dscsa"},
			CommonIntegrations:   []string{"ERP", "LIMS", "serialization systems", "cold-chain sensors"},
			TypicalPatterns:      []string{"batch-genealogy", "chain-of-custody", "temperature-audit"},
			RiskFactors:          []string{"patient safety", "product recalls", "regulatory sanctions"},
			DataRetentionYears:   10,
			Keywords:             []string{"pharmaceutical", "pharma", "drug", "batch", "clinical", "fda"},
		},
		{
			Key:                  "healthcare",
			DisplayName:          "Healthcare",
			SubCategories:        []string{"providers", "payers", "health-tech"},
			Standards:            []string{"HL7 FHIR", "DICOM"},
			RegulatoryFrameworks: []string{"hipaa", "gdpr"},
			CommonIntegrations:   []string{"EHR", "claims systems", "patient portals"},
			TypicalPatterns:      []string{"consent-management", "record-integrity", "access-audit"},
			RiskFactors:          []string{"PHI exposure", "consent violations"},
			DataRetentionYears:   7,
			Keywords:             []string{"healthcare", "patient", "medical", "hospital", "clinic", "phi"},
		},
		{
			Key:                  "financial-services",
			DisplayName:          "Financial Services",
			SubCategories:        []string{"banking", "payments", "asset-management"},
			Standards:            []string{"ISO 20022", "SWIFT MT"},
			RegulatoryFrameworks: []string{"sox", "pci-dss", "aml-kyc", "mifid-ii"},
			CommonIntegrations:   []string{"core banking", "payment rails", "KYC providers"},
			TypicalPatterns:      []string{"settlement-finality", "transaction-audit", "asset-tokenization"},
			RiskFactors:          []string{"fraud", "money laundering", "settlement failure"},
			DataRetentionYears:   7,
			Keywords:             []string{"bank", "payment", "finance", "financial", "settlement", "loan", "trading"},
		},
		{
			Key:                  "supply-chain",
			DisplayName:          "Supply Chain & Logistics",
			SubCategories:        []string{"freight", "warehousing", "last-mile"},
			Standards:            []string{"GS1", "EPCIS"},
			RegulatoryFrameworks: []string{"fsma", "customs-trade"},
			CommonIntegrations:   []string{"WMS", "TMS", "IoT trackers", "customs brokers"},
			TypicalPatterns:      []string{"provenance-tracking", "milestone-attestation", "handoff-verification"},
			RiskFactors:          []string{"counterfeiting", "shipment loss", "documentation fraud"},
			DataRetentionYears:   5,
			Keywords:             []string{"supply", "logistics", "shipment", "warehouse", "provenance", "track", "trace"},
		},
		{
			Key:                  "manufacturing",
			DisplayName:          "Manufacturing",
			SubCategories:        []string{"discrete", "process", "automotive"},
			Standards:            []string{"ISO 9001", "IATF 16949"},
			RegulatoryFrameworks: []string{"iso-27001"},
			CommonIntegrations:   []string{"MES", "SCADA", "quality systems"},
			TypicalPatterns:      []string{"production-genealogy", "supplier-certification", "defect-tracking"},
			RiskFactors:          []string{"recall exposure", "supplier fraud"},
			DataRetentionYears:   5,
			Keywords:             []string{"manufacturing", "factory", "production", "assembly", "oem"},
		},
		{
			Key:                  "energy",
			DisplayName:          "Energy & Utilities",
			SubCategories:        []string{"generation", "distribution", "renewables"},
			Standards:            []string{"IEC 61850"},
			RegulatoryFrameworks: []string{"nerc-cip", "iso-27001"},
			CommonIntegrations:   []string{"grid management", "meter data", "carbon registries"},
			TypicalPatterns:      []string{"renewable-certificates", "carbon-credit-issuance", "meter-attestation"},
			RiskFactors:          []string{"double counting", "grid data tampering"},
			DataRetentionYears:   7,
			Keywords:             []string{"energy", "utility", "grid", "carbon", "renewable", "emissions"},
		},
		{
			Key:                  "government",
			DisplayName:          "Government & Public Sector",
			Standards:            []string{"NIST 800-53"},
			RegulatoryFrameworks: []string{"fedramp", "gdpr"},
			CommonIntegrations:   []string{"identity providers", "registries", "records systems"},
			TypicalPatterns:      []string{"public-record-notarization", "credential-issuance"},
			RiskFactors:          []string{"records tampering", "identity fraud"},
			DataRetentionYears:   10,
			Keywords:             []string{"government", "public sector", "agency", "municipal", "citizen"},
		},
		{
			Key:                "retail",
			DisplayName:        "Retail & Consumer",
			SubCategories:      []string{"e-commerce", "brick-and-mortar"},
			Standards:          []string{"GS1"},
			CommonIntegrations: []string{"POS", "loyalty platforms", "inventory systems"},
			TypicalPatterns:    []string{"loyalty-points", "authenticity-verification"},
			RiskFactors:        []string{"counterfeit goods", "loyalty fraud"},
			DataRetentionYears: 3,
			Keywords:           []string{"retail", "consumer", "loyalty", "e-commerce", "store"},
		},
	}

	m := make(map[string]IndustryProfile, len(profiles)+1)
	for _, p := range profiles {
		m[p.Key] = p
	}
	m[GenericIndustryKey] = genericIndustry()
	return m
}

// genericIndustry is the minimal profile used for unknown industries.
func genericIndustry() IndustryProfile {
	return IndustryProfile{
		Key:                GenericIndustryKey,
		DisplayName:        "General",
		CommonIntegrations: []string{"REST APIs", "message queues"},
		TypicalPatterns:    []string{"event-logging"},
		DataRetentionYears: 3,
	}
}

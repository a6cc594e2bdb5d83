package knowledge

// defaultFrameworks is the built-in compliance-framework glossary.
func defaultFrameworks() map[string]Framework {
	frameworks := []Framework{
		{
			Key:                 "fda-21-cfr-11",
			DisplayName:         "FDA 21 CFR Part 11",
			Region:              "US",
			AuditRequirements:   []string{"electronic signature trail", "system validation records", "change control history"},
			ReportingCadence:    "on-inspection",
			DataProtectionRules: []string{"tamper-evident records", "record retention"},
			Keywords:            []string{"fda", "21 cfr", "part 11", "pharmaceutical", "batch"},
		},
		{
			Key:                 "hipaa",
			DisplayName:         "HIPAA",
			Region:              "US",
			AuditRequirements:   []string{"access logs for PHI", "breach notification records"},
			ReportingCadence:    "on-breach",
			DataProtectionRules: []string{"PHI encryption at rest and in transit", "minimum necessary access"},
			Keywords:            []string{"hipaa", "phi", "patient", "health record"},
		},
		{
			Key:                 "gdpr",
			DisplayName:         "GDPR",
			Region:              "EU",
			AuditRequirements:   []string{"processing activity records", "consent evidence"},
			ReportingCadence:    "on-breach-72h",
			DataProtectionRules: []string{"right to erasure", "data minimization", "purpose limitation"},
			Keywords:            []string{"gdpr", "personal data", "consent", "erasure", "privacy"},
		},
		{
			Key:                 "sox",
			DisplayName:         "Sarbanes-Oxley",
			Region:              "US",
			AuditRequirements:   []string{"financial control evidence", "change management trail"},
			ReportingCadence:    "annual",
			DataProtectionRules: []string{"immutable financial records"},
			Keywords:            []string{"sox", "sarbanes", "financial reporting", "internal controls"},
		},
		{
			Key:                 "pci-dss",
			DisplayName:         "PCI DSS",
			Region:              "global",
			AuditRequirements:   []string{"cardholder data access logs", "quarterly scans"},
			ReportingCadence:    "quarterly",
			DataProtectionRules: []string{"no raw PAN storage", "network segmentation"},
			Keywords:            []string{"pci", "cardholder", "card payment"},
		},
		{
			Key:                 "aml-kyc",
			DisplayName:         "AML / KYC",
			Region:              "global",
			AuditRequirements:   []string{"customer due diligence records", "suspicious activity reports"},
			ReportingCadence:    "on-event",
			DataProtectionRules: []string{"identity document retention"},
			Keywords:            []string{"aml", "kyc", "money laundering", "sanctions", "due diligence"},
		},
		{
			Key:                 "iso-27001",
			DisplayName:         "ISO 27001",
			Region:              "global",
			AuditRequirements:   []string{"ISMS audit trail", "risk treatment records"},
			ReportingCadence:    "annual",
			DataProtectionRules: []string{"access control policy", "cryptographic controls"},
			Keywords:            []string{"iso 27001", "isms", "information security"},
		},
		{
			Key:                 "fsma",
			DisplayName:         "FSMA",
			Region:              "US",
			AuditRequirements:   []string{"traceability records", "supplier verification"},
			ReportingCadence:    "on-inspection",
			DataProtectionRules: []string{"lot-level traceability"},
			Keywords:            []string{"fsma", "food safety", "traceability", "lot"},
		},
		{
			Key:                 "fedramp",
			DisplayName:         "FedRAMP",
			Region:              "US",
			AuditRequirements:   []string{"continuous monitoring evidence", "POA&M tracking"},
			ReportingCadence:    "monthly",
			DataProtectionRules: []string{"FIPS-validated cryptography"},
			Keywords:            []string{"fedramp", "federal", "government cloud"},
		},
	}

	m := make(map[string]Framework, len(frameworks))
	for _, f := range frameworks {
		m[f.Key] = f
	}
	return m
}

package knowledge

// defaultTemplates is the built-in template inventory, keyed by the business
// intent each template serves.
func defaultTemplates() []Template {
	return []Template{
		{
			Name:        "supply-chain-tracker",
			Description: "Batch-level provenance tracking with consensus-anchored custody events.",
			Intent:      "supply-chain-compliance",
			Services:    []string{"consensus", "mirror"},
			Components:  []string{"BatchRegistry", "CustodyEventPublisher", "ProvenanceQueryService"},
			Keywords:    []string{"supply", "track", "trace", "batch", "custody", "provenance", "shipment"},
		},
		{
			Name:        "compliance-audit-log",
			Description: "Tamper-evident audit trail with framework-tagged entries and retention policy.",
			Intent:      "audit-trail",
			Services:    []string{"consensus", "file"},
			Components:  []string{"AuditLogWriter", "RetentionPolicyEnforcer"},
			Keywords:    []string{"audit", "compliance", "log", "evidence", "retention"},
		},
		{
			Name:        "token-transfer",
			Description: "Fungible token issuance and transfer flows with balance reconciliation.",
			Intent:      "asset-tokenization",
			Services:    []string{"token", "mirror"},
			Components:  []string{"TokenIssuer", "TransferService", "BalanceReconciler"},
			Keywords:    []string{"token", "transfer", "mint", "balance", "fungible"},
		},
		{
			Name:        "payment-settlement",
			Description: "Multi-party payment settlement with scheduled release and finality checks.",
			Intent:      "payment-processing",
			Services:    []string{"token", "schedule", "smart-contract"},
			Components:  []string{"SettlementCoordinator", "FinalityChecker"},
			Keywords:    []string{"payment", "settle", "settlement", "invoice", "payout"},
		},
		{
			Name:        "document-notarization",
			Description: "Document hash anchoring with verification endpoints.",
			Intent:      "document-verification",
			Services:    []string{"file", "consensus"},
			Components:  []string{"DocumentAnchorer", "VerificationService"},
			Keywords:    []string{"document", "notariz", "certificate", "verify", "hash"},
		},
		{
			Name:        "identity-credentials",
			Description: "Verifiable credential issuance and revocation registry.",
			Intent:      "identity-management",
			Services:    []string{"consensus", "file"},
			Components:  []string{"CredentialIssuer", "RevocationRegistry"},
			Keywords:    []string{"identity", "credential", "kyc", "verify", "revocation"},
		},
		{
			Name:        "loyalty-points",
			Description: "Loyalty point issuance, redemption, and expiry handling.",
			Intent:      "asset-tokenization",
			Services:    []string{"token"},
			Components:  []string{"PointsIssuer", "RedemptionService", "ExpirySweeper"},
			Keywords:    []string{"loyalty", "points", "reward", "redeem"},
		},
		{
			Name:        "carbon-credit-registry",
			Description: "Carbon credit issuance with double-counting protection and retirement flow.",
			Intent:      "asset-tokenization",
			Services:    []string{"token", "consensus"},
			Components:  []string{"CreditIssuer", "RetirementService"},
			Keywords:    []string{"carbon", "credit", "offset", "emission", "retire"},
		},
	}
}

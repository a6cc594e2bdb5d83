package knowledge

// defaultServices is the built-in platform service-capability glossary.
// Keys follow the ledger platform's service naming.
func defaultServices() map[string]ServiceCapability {
	services := []ServiceCapability{
		{
			Key:          "consensus",
			DisplayName:  "Consensus Service",
			Description:  "Ordered, timestamped event log suitable for audit trails and attestations.",
			Capabilities: []string{"topic creation", "ordered message submission", "verifiable timestamps"},
			Keywords:     []string{"audit", "trail", "log", "track", "trace", "attest", "timestamp", "provenance", "event"},
		},
		{
			Key:          "token",
			DisplayName:  "Token Service",
			Description:  "Native fungible and non-fungible token issuance, transfers, and custody controls.",
			Capabilities: []string{"token creation", "transfers", "KYC flags", "freeze and wipe controls"},
			Keywords:     []string{"token", "transfer", "asset", "mint", "loyalty", "points", "credit", "payment"},
		},
		{
			Key:          "smart-contract",
			DisplayName:  "Smart Contract Service",
			Description:  "EVM-compatible contract deployment and execution for custom on-ledger logic.",
			Capabilities: []string{"contract deployment", "contract calls", "event emission"},
			Keywords:     []string{"contract", "escrow", "automat", "rule", "condition", "settlement"},
		},
		{
			Key:          "file",
			DisplayName:  "File Service",
			Description:  "Content-addressed file storage for documents referenced by on-ledger records.",
			Capabilities: []string{"file creation", "append", "hash anchoring"},
			Keywords:     []string{"document", "file", "certificate", "notariz", "anchor"},
		},
		{
			Key:          "schedule",
			DisplayName:  "Scheduled Transactions",
			Description:  "Deferred and multi-party-signed transaction execution.",
			Capabilities: []string{"scheduled execution", "multi-signature collection"},
			Keywords:     []string{"schedule", "recurring", "deferred", "multi-sig", "approval"},
		},
		{
			Key:          "mirror",
			DisplayName:  "Mirror Node Queries",
			Description:  "Read-side queries over historical transactions and state.",
			Capabilities: []string{"transaction history", "balance queries", "topic message replay"},
			Keywords:     []string{"query", "history", "report", "dashboard", "analytics"},
		},
	}

	m := make(map[string]ServiceCapability, len(services))
	for _, s := range services {
		m[s.Key] = s
	}
	return m
}

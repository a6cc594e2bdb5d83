package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .reqforge.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to reqforge! Let's configure your project.")
	fmt.Println()

	// 1. Primary provider selection. The ladder falls back through the
	// remaining providers in a fixed order.
	providerPrompt := promptui.Select{
		Label: "Select primary reasoning provider",
		Items: []string{"anthropic", "openai", "google", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Quality tier.
	qualityPrompt := promptui.Select{
		Label: "Select quality tier",
		Items: []string{
			"lite   — fast & cheap (haiku / gpt-4o-mini)",
			"normal — balanced (sonnet / gpt-4o)",
			"max    — highest quality (opus / gpt-4)",
		},
	}
	qualityIdx, _, err := qualityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("quality selection: %w", err)
	}
	tiers := []QualityTier{QualityLite, QualityNormal, QualityMax}
	quality := tiers[qualityIdx]

	preset := GetPreset(provider, quality)

	// 3. Output directory for generated artifacts.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated code",
		Default: "generated",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Conflict policy for existing files.
	conflictPrompt := promptui.Select{
		Label: "When a generated file already exists",
		Items: []string{
			"backup    — keep a .bak copy, then overwrite",
			"skip      — leave the existing file untouched",
			"overwrite — replace without backup",
		},
	}
	conflictIdx, _, err := conflictPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("conflict policy: %w", err)
	}
	policies := []ConflictPolicy{ConflictBackup, ConflictSkip, ConflictOverwrite}
	policy := policies[conflictIdx]

	// 5. Quality threshold.
	thresholdPrompt := promptui.Prompt{
		Label:   "Quality threshold that stops refinement (0-100)",
		Default: "80",
	}
	thresholdStr, err := thresholdPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("quality threshold: %w", err)
	}
	threshold := parseThreshold(thresholdStr)

	// Build the config: the chosen provider leads the ladder, the
	// remaining recognized providers follow in a fixed order.
	cfg := DefaultConfig()
	cfg.Providers = providerChain(provider)
	cfg.Model = preset.Model
	cfg.EmbeddingProvider = embeddingProviderFor(provider)
	cfg.EmbeddingModel = preset.EmbeddingModel
	cfg.Quality = quality
	cfg.OutputDir = outputDir
	cfg.ConflictPolicy = policy
	cfg.QualityThreshold = threshold

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running reqforge compose.\n", envVar)
		}
	}

	// Save to .reqforge.yml.
	configPath := ".reqforge.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// providerChain puts the chosen provider first, then the remaining
// recognized providers in the documented fallback order.
func providerChain(first ProviderType) []string {
	order := []ProviderType{ProviderAnthropic, ProviderOpenAI, ProviderGoogle, ProviderOllama}
	chain := []string{string(first)}
	for _, p := range order {
		if p != first {
			chain = append(chain, string(p))
		}
	}
	return chain
}

// embeddingProviderFor returns the default embedding provider for a given
// reasoning provider. OpenAI embeddings are used for all cloud providers.
func embeddingProviderFor(p ProviderType) ProviderType {
	if p == ProviderOllama {
		return ProviderOllama
	}
	return ProviderOpenAI
}

// parseThreshold parses a wizard threshold answer, clamping to [0,100]
// and falling back to the default on junk input.
func parseThreshold(s string) int {
	n := 0
	valid := false
	for _, r := range s {
		if r < '0' || r > '9' {
			valid = false
			break
		}
		n = n*10 + int(r-'0')
		valid = true
	}
	if !valid || n > 100 {
		return 80
	}
	return n
}

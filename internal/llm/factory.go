package llm

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ErrNotConfigured reports that a provider's required credential or host is
// missing from the environment. The ladder treats this as provider absence,
// not failure.
var ErrNotConfigured = errors.New("provider not configured")

// New creates a provider adapter by kind. Supported kinds: "anthropic",
// "openai", "google", "ollama". A missing credential returns an error
// wrapping ErrNotConfigured.
func New(kind string, model string) (Provider, error) {
	switch kind {
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic: ANTHROPIC_API_KEY is not set: %w", ErrNotConfigured)
		}
		return NewAnthropic(apiKey, model), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("openai: OPENAI_API_KEY is not set: %w", ErrNotConfigured)
		}
		return NewOpenAI(apiKey, model), nil

	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("google: GOOGLE_API_KEY is not set: %w", ErrNotConfigured)
		}
		return NewGoogle(apiKey, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllama(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", kind)
	}
}

// Chain instantiates the configured provider kinds in order, skipping the
// ones whose credentials are absent. Each skip is logged at info so a
// partially degraded chain is visible to operators. The returned slice
// preserves the configured order; it may be empty, in which case the
// pipeline runs on deterministic fallbacks only.
func Chain(log *zap.Logger, kinds []string, model string) []Provider {
	if log == nil {
		log = zap.NewNop()
	}

	var providers []Provider
	for _, kind := range kinds {
		p, err := New(kind, model)
		if err != nil {
			log.Info("skipping absent provider",
				zap.String("provider", kind),
				zap.Error(err))
			continue
		}
		providers = append(providers, p)
	}
	return providers
}

package embeddings

import (
	"fmt"
	"os"

	"github.com/hashcompose/reqforge/internal/config"
)

// ErrNotConfigured reports a provider whose credentials are absent.
var ErrNotConfigured = fmt.Errorf("embedding provider not configured")

// New builds the Embedder for the configured provider, reading
// credentials from the environment. An absent credential returns
// ErrNotConfigured so callers can degrade to keyword matching. Only
// openai and ollama embed; the reasoning-only provider kinds are not
// valid here.
func New(provider config.ProviderType, model string) (Embedder, error) {
	switch provider {
	case config.ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY unset", ErrNotConfigured)
		}
		return NewOpenAIEmbedder(key, OpenAIModel(model)), nil
	case config.ProviderOllama:
		// nomic-embed-text dimensionality; Ollama does not report it.
		return NewOllamaEmbedder(model, 768, os.Getenv("OLLAMA_HOST")), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", provider)
	}
}

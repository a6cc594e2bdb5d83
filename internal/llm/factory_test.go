package llm

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewUnsupportedKind(t *testing.T) {
	if _, err := New("watson", "m"); err == nil {
		t.Error("unsupported kind should return an error")
	}
}

func TestNewMissingCredential(t *testing.T) {
	for _, kind := range []string{"anthropic", "openai", "google"} {
		t.Run(kind, func(t *testing.T) {
			t.Setenv("ANTHROPIC_API_KEY", "")
			t.Setenv("OPENAI_API_KEY", "")
			t.Setenv("GOOGLE_API_KEY", "")

			_, err := New(kind, "m")
			if !errors.Is(err, ErrNotConfigured) {
				t.Errorf("err = %v, want ErrNotConfigured", err)
			}
		})
	}
}

func TestNewConfiguredProviders(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "test-key")

	for _, kind := range []string{"anthropic", "openai", "google"} {
		p, err := New(kind, "m")
		if err != nil {
			t.Fatalf("New(%q) = %v", kind, err)
		}
		if p.Name() != kind {
			t.Errorf("Name() = %q, want %q", p.Name(), kind)
		}
	}
}

func TestNewOllamaNeedsNoCredential(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	p, err := New("ollama", "m")
	if err != nil {
		t.Fatalf("New(ollama) = %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestChainSkipsUnconfigured(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "")

	providers := Chain(nil, []string{"anthropic", "openai", "google"}, "m")
	if len(providers) != 1 {
		t.Fatalf("len(providers) = %d, want 1", len(providers))
	}
	if providers[0].Name() != "openai" {
		t.Errorf("provider = %q, want openai", providers[0].Name())
	}
}

func TestChainPreservesConfiguredOrder(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "test-key")

	providers := Chain(nil, []string{"openai", "anthropic"}, "m")
	if len(providers) != 2 {
		t.Fatalf("len(providers) = %d, want 2", len(providers))
	}
	if providers[0].Name() != "openai" || providers[1].Name() != "anthropic" {
		t.Errorf("order = [%s %s], want configured order", providers[0].Name(), providers[1].Name())
	}
}

func TestChainEmptyWhenNothingConfigured(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	if providers := Chain(nil, []string{"anthropic", "openai"}, "m"); len(providers) != 0 {
		t.Errorf("len(providers) = %d, want 0", len(providers))
	}
}

func TestChainLogsEachSkippedProvider(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "")

	core, logs := observer.New(zap.InfoLevel)
	Chain(zap.New(core), []string{"anthropic", "openai", "google"}, "m")

	skipped := logs.FilterMessage("skipping absent provider").All()
	if len(skipped) != 2 {
		t.Fatalf("skip log entries = %d, want one per absent provider", len(skipped))
	}
	kinds := map[string]bool{}
	for _, entry := range skipped {
		kinds[entry.ContextMap()["provider"].(string)] = true
	}
	if !kinds["anthropic"] || !kinds["google"] {
		t.Errorf("skipped kinds = %v, want anthropic and google", kinds)
	}
}

func TestSystemUser(t *testing.T) {
	msgs := SystemUser("be terse", "classify this")
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	if msgs[0].Role != RoleSystem || msgs[0].Content != "be terse" {
		t.Errorf("system message = %+v", msgs[0])
	}
	if msgs[1].Role != RoleUser || msgs[1].Content != "classify this" {
		t.Errorf("user message = %+v", msgs[1])
	}
}

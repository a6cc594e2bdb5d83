package ladder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashcompose/reqforge/internal/llm"
)

type scriptedProvider struct {
	name    string
	content string
	err     error
	delay   time.Duration
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Complete(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Response{Content: p.content}, nil
}

func completeWork(ctx context.Context, p llm.Provider) (string, error) {
	resp, err := p.Complete(ctx, llm.Request{})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func TestExecuteFirstProviderWins(t *testing.T) {
	providers := []llm.Provider{
		&scriptedProvider{name: "primary", content: "from primary"},
		&scriptedProvider{name: "secondary", content: "from secondary"},
	}

	result := Execute(context.Background(), New(nil, 0), providers, completeWork, func() string {
		return "fallback"
	})

	if result.Value != "from primary" {
		t.Errorf("value = %q, want answer from the first rung", result.Value)
	}
	if result.Method != MethodReasoning {
		t.Errorf("method = %q, want %q", result.Method, MethodReasoning)
	}
	if result.Provider != "primary" {
		t.Errorf("provider = %q, want primary", result.Provider)
	}
}

func TestExecuteAdvancesPastFailedRung(t *testing.T) {
	providers := []llm.Provider{
		&scriptedProvider{name: "primary", err: errors.New("rate limited")},
		&scriptedProvider{name: "secondary", content: "from secondary"},
	}

	result := Execute(context.Background(), New(nil, 0), providers, completeWork, func() string {
		return "fallback"
	})

	if result.Value != "from secondary" {
		t.Errorf("value = %q, want answer from the second rung", result.Value)
	}
	if result.Provider != "secondary" {
		t.Errorf("provider = %q", result.Provider)
	}
}

func TestExecuteExhaustionUsesFallback(t *testing.T) {
	providers := []llm.Provider{
		&scriptedProvider{name: "primary", err: errors.New("down")},
		&scriptedProvider{name: "secondary", err: errors.New("also down")},
	}

	result := Execute(context.Background(), New(nil, 0), providers, completeWork, func() string {
		return "fallback"
	})

	if result.Value != "fallback" {
		t.Errorf("value = %q, want fallback", result.Value)
	}
	if result.Method != MethodFallback {
		t.Errorf("method = %q, want %q", result.Method, MethodFallback)
	}
	if result.Provider != "" {
		t.Errorf("provider = %q, want empty for fallback", result.Provider)
	}
}

func TestExecuteNoProvidersUsesFallback(t *testing.T) {
	result := Execute(context.Background(), New(nil, 0), nil, completeWork, func() string {
		return "fallback"
	})

	if result.Value != "fallback" || result.Method != MethodFallback {
		t.Errorf("result = %+v, want deterministic fallback", result)
	}
}

func TestExecuteWorkErrorAdvancesLadder(t *testing.T) {
	// A provider that answers but whose answer the work func rejects counts
	// as a failed rung the same as a transport error.
	providers := []llm.Provider{
		&scriptedProvider{name: "garbled", content: "not parseable"},
		&scriptedProvider{name: "clean", content: "ok"},
	}

	result := Execute(context.Background(), New(nil, 0), providers,
		func(ctx context.Context, p llm.Provider) (string, error) {
			resp, err := p.Complete(ctx, llm.Request{})
			if err != nil {
				return "", err
			}
			if resp.Content != "ok" {
				return "", errors.New("unparseable response")
			}
			return resp.Content, nil
		},
		func() string { return "fallback" })

	if result.Value != "ok" {
		t.Errorf("value = %q, want answer from the rung after the garbled one", result.Value)
	}
	if result.Provider != "clean" {
		t.Errorf("provider = %q", result.Provider)
	}
}

func TestExecuteTimeoutAdvancesLadder(t *testing.T) {
	providers := []llm.Provider{
		&scriptedProvider{name: "slow", content: "late answer", delay: time.Second},
		&scriptedProvider{name: "fast", content: "quick answer"},
	}

	result := Execute(context.Background(), New(nil, 10*time.Millisecond), providers, completeWork, func() string {
		return "fallback"
	})

	if result.Value != "quick answer" {
		t.Errorf("value = %q, want answer from the fast rung", result.Value)
	}
	if result.Method != MethodReasoning {
		t.Errorf("method = %q", result.Method)
	}
}

func TestNewNilLoggerIsSafe(t *testing.T) {
	l := New(nil, 0)
	if l.Log == nil {
		t.Fatal("New must substitute a no-op logger for nil")
	}
	// The zero value must also not panic inside Execute.
	Execute(context.Background(), Ladder{}, nil, completeWork, func() string { return "" })
}

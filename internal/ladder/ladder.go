// Package ladder implements the ordered provider-fallback primitive every
// pipeline stage runs on: try each reasoning provider in turn, and when all
// of them fail (or none are configured) invoke a deterministic fallback.
//
// One attempt per provider. A timeout or an unparseable response counts the
// same as a transport error: providers are stateless, so a second call to
// the same rung rarely changes a malformed answer. Retry-with-backoff is a
// caller concern, not the ladder's.
package ladder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hashcompose/reqforge/internal/llm"
)

// Method tags how a result was produced.
type Method string

const (
	// MethodReasoning marks output derived from a reasoning-service response.
	MethodReasoning Method = "ai-generated"
	// MethodFallback marks output from the deterministic rule fallback.
	MethodFallback Method = "deterministic-fallback"
)

// Result carries the work product plus provenance: which rung produced it
// and whether it came from reasoning or the fallback.
type Result[T any] struct {
	Value    T
	Method   Method
	Provider string
}

// Work runs one unit of work against a single provider. It must include
// response parsing: returning an error for an unparseable response is what
// advances the ladder to the next rung.
type Work[T any] func(ctx context.Context, p llm.Provider) (T, error)

// Ladder holds the cross-cutting attempt policy shared by all stages.
type Ladder struct {
	Log     *zap.Logger
	Timeout time.Duration // per-attempt deadline; 0 means no deadline
}

// New creates a Ladder. A nil logger is replaced with a no-op logger so
// call sites never need to nil-check.
func New(log *zap.Logger, timeout time.Duration) Ladder {
	if log == nil {
		log = zap.NewNop()
	}
	return Ladder{Log: log, Timeout: timeout}
}

// Execute tries each provider strictly in order and returns the first
// successful result. On exhaustion it invokes fallback and tags the result
// as deterministic. Absent providers never appear in the slice (the chain
// builder drops them), so every entry here is a real attempt.
func Execute[T any](ctx context.Context, l Ladder, providers []llm.Provider, work Work[T], fallback func() T) Result[T] {
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	for i, p := range providers {
		attemptCtx := ctx
		cancel := func() {}
		if l.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, l.Timeout)
		}

		value, err := work(attemptCtx, p)
		cancel()

		if err == nil {
			log.Info("provider attempt succeeded",
				zap.String("provider", p.Name()),
				zap.Int("rung", i))
			return Result[T]{Value: value, Method: MethodReasoning, Provider: p.Name()}
		}

		log.Warn("provider attempt failed, advancing ladder",
			zap.String("provider", p.Name()),
			zap.Int("rung", i),
			zap.Error(err))
	}

	log.Warn("all providers exhausted, using deterministic fallback",
		zap.Int("providers_tried", len(providers)))
	return Result[T]{Value: fallback(), Method: MethodFallback}
}

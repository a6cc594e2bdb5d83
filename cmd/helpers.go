package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/config"
	"github.com/hashcompose/reqforge/internal/db"
	"github.com/hashcompose/reqforge/internal/embeddings"
	"github.com/hashcompose/reqforge/internal/history"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/logging"
	"github.com/hashcompose/reqforge/internal/strategy"
	"github.com/hashcompose/reqforge/internal/templateindex"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `reqforge init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildLogger creates the process logger honoring the --verbose flag.
func buildLogger() (*zap.Logger, error) {
	return logging.New(verbose)
}

// buildComposer wires the full pipeline from config. Providers whose
// credentials are absent are skipped; with none configured every stage
// runs on its deterministic fallback.
func buildComposer(cfg *config.Config, log *zap.Logger) *composer.Composer {
	providers := llm.Chain(log, cfg.Providers, cfg.Model)
	if len(providers) == 0 {
		log.Warn("no reasoning providers configured, running deterministic fallbacks only")
	}

	kb := knowledge.Default()
	lad := ladder.New(log, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	return composer.New(kb, providers, lad, log, composer.Options{
		QualityThreshold:    cfg.QualityThreshold,
		MaxRefinementRounds: cfg.MaxRefinementRounds,
		Model:               cfg.Model,
		TemplateSearch:      buildTemplateSearch(cfg, kb, log),
	})
}

// buildTemplateSearch wires the semantic template index when an embedding
// provider is configured. Any failure degrades to keyword matching.
func buildTemplateSearch(cfg *config.Config, kb *knowledge.Base, log *zap.Logger) strategy.SearchFunc {
	embedder, err := embeddings.New(cfg.EmbeddingProvider, cfg.EmbeddingModel)
	if err != nil {
		if !errors.Is(err, embeddings.ErrNotConfigured) {
			log.Warn("embedding provider unavailable, template matching falls back to keywords", zap.Error(err))
		}
		return nil
	}

	ix, err := templateindex.New(context.Background(), kb, embedder)
	if err != nil {
		log.Warn("template index unavailable, template matching falls back to keywords", zap.Error(err))
		return nil
	}
	return ix.Templates
}

// openHistory opens the run-history store at the configured DB path.
// The caller owns the returned database handle.
func openHistory(cfg *config.Config) (*db.DB, *history.Store, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return database, history.NewStore(database), nil
}

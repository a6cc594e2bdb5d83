// Package composer orchestrates the full requirement-to-code pipeline:
// classify, select a strategy, generate artifacts, assess quality, and
// refine under a bounded retry budget. The composer always returns a
// structurally valid result for any accepted requirement; total provider
// unavailability only degrades confidence and method tags.
package composer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/generator"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/quality"
	"github.com/hashcompose/reqforge/internal/requirement"
	"github.com/hashcompose/reqforge/internal/strategy"
)

// Options tune a composer. Zero values select the documented defaults.
type Options struct {
	// QualityThreshold is the overall score that stops refinement.
	QualityThreshold int
	// MaxRefinementRounds bounds the generate-assess-refine cycle.
	MaxRefinementRounds int
	// Model names the reasoning model requested from every provider.
	Model string
	// TemplateSearch is the semantic template lookup the strategy selector
	// prefers over keyword matching. Nil means keyword matching only.
	TemplateSearch strategy.SearchFunc
}

const (
	defaultQualityThreshold = 80
	defaultMaxRounds        = 2
)

// Composer wires the pipeline stages together.
type Composer struct {
	kb        *knowledge.Base
	classify  *classifier.Classifier
	selector  *strategy.Selector
	generate  *generator.Generator
	assess    *quality.Assessor
	log       *zap.Logger
	threshold int
	maxRounds int
}

// New creates a Composer over a provider chain. An empty chain is valid:
// every stage then runs on its deterministic fallback.
func New(kb *knowledge.Base, providers []llm.Provider, lad ladder.Ladder, log *zap.Logger, opts Options) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	threshold := opts.QualityThreshold
	if threshold == 0 {
		threshold = defaultQualityThreshold
	}
	maxRounds := opts.MaxRefinementRounds
	if maxRounds == 0 {
		maxRounds = defaultMaxRounds
	}
	return &Composer{
		kb:        kb,
		classify:  classifier.New(kb, providers, lad, opts.Model),
		selector:  strategy.New(kb, providers, lad, opts.Model, opts.TemplateSearch),
		generate:  generator.New(kb, providers, lad, opts.Model),
		assess:    quality.New(kb),
		log:       log,
		threshold: threshold,
		maxRounds: maxRounds,
	}
}

// Result is the full outcome of one composition run.
type Result struct {
	ID                       string                       `json:"id"`
	Requirement              requirement.Requirement      `json:"requirement"`
	Classification           classifier.Classification    `json:"classification"`
	Strategy                 strategy.CompositionStrategy `json:"strategy"`
	Artifacts                []generator.Artifact         `json:"artifacts"`
	Quality                  quality.Assessment           `json:"quality"`
	ValidationResults        []ValidationResult           `json:"validation_results,omitempty"`
	DeploymentGuidance       []string                     `json:"deployment_guidance,omitempty"`
	LimitationAcknowledgment []string                     `json:"limitation_acknowledgment,omitempty"`
	RefinementRounds         int                          `json:"refinement_rounds"`
	StartedAt                time.Time                    `json:"started_at"`
	FinishedAt               time.Time                    `json:"finished_at"`
}

// ValidationResult is one named pipeline-level check on the final set.
type ValidationResult struct {
	Check   string `json:"check"`
	Passed  bool   `json:"passed"`
	Details string `json:"details,omitempty"`
}

// Compose runs the full pipeline for one requirement. The only error
// condition is an internal contract violation (an unsupported approach
// value); every external failure degrades instead.
func (c *Composer) Compose(ctx context.Context, req requirement.Requirement) (*Result, error) {
	started := time.Now().UTC()

	cls := c.classify.Classify(ctx, req)
	c.log.Info("requirement classified",
		zap.String("intent", string(cls.BusinessIntent.Primary)),
		zap.String("industry", cls.Industry.Industry),
		zap.Int("confidence", cls.ConfidenceScore.Overall),
		zap.String("source", string(cls.Source)))

	strat := c.selector.Select(ctx, req, cls)
	c.log.Info("composition strategy selected",
		zap.String("approach", string(strat.Approach)),
		zap.Int("templates", len(strat.TemplateCombinations)),
		zap.Int("custom_units", len(strat.CustomLogicRequirements)))

	artifacts, err := c.generate.Generate(ctx, req, strat, cls.RecommendedServices)
	if err != nil {
		return nil, fmt.Errorf("generating artifacts: %w", err)
	}

	assessment := c.assess.Assess(artifacts, req, cls.Industry.Industry)
	best, bestAssessment := artifacts, assessment

	rounds := 0
	for rounds < c.maxRounds && assessment.OverallScore < c.threshold {
		rounds++
		c.log.Info("refining artifacts",
			zap.Int("round", rounds),
			zap.Int("overall_score", assessment.OverallScore),
			zap.Int("issues", len(assessment.Issues)))

		artifacts = c.generate.Refine(ctx, artifacts, assessment.OverallScore, c.threshold, assessment.IssueMessagesFor)
		assessment = c.assess.Assess(artifacts, req, cls.Industry.Industry)

		if assessment.OverallScore > bestAssessment.OverallScore {
			best, bestAssessment = artifacts, assessment
		}
	}

	result := &Result{
		ID:               uuid.NewString(),
		Requirement:      req,
		Classification:   cls,
		Strategy:         strat,
		Artifacts:        best,
		Quality:          bestAssessment,
		RefinementRounds: rounds,
		StartedAt:        started,
		FinishedAt:       time.Now().UTC(),
	}
	result.ValidationResults = validate(result)
	result.DeploymentGuidance = deploymentGuidance(c.kb, cls, best)
	result.LimitationAcknowledgment = limitations(result, c.threshold)

	c.log.Info("composition finished",
		zap.String("run_id", result.ID),
		zap.Int("artifacts", len(best)),
		zap.Int("overall_score", bestAssessment.OverallScore),
		zap.Int("refinement_rounds", rounds))
	return result, nil
}

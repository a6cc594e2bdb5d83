// Package generator produces source artifacts for a composition strategy,
// through the provider ladder with a deterministic scaffold fallback, and
// refines low-scoring artifacts on request. It never returns an empty
// artifact list for a supported approach; the one fatal condition is an
// unsupported approach value, which indicates a configuration defect.
package generator

import "errors"

// ErrUnsupportedApproach reports a composition approach value the
// generator does not implement. This is a configuration error and
// propagates to the caller instead of degrading to a fallback.
var ErrUnsupportedApproach = errors.New("unsupported composition approach")

// Method tags how an artifact's content was produced.
type Method string

const (
	// MethodReasoning marks content extracted from a reasoning-service
	// response.
	MethodReasoning Method = "reasoning-service-output"
	// MethodFallback marks content from the deterministic scaffold
	// generator.
	MethodFallback Method = "deterministic-fallback"
	// MethodHybrid marks fallback content later improved by a reasoning
	// service during refinement.
	MethodHybrid Method = "hybrid"
)

// Artifact is one generated source file plus metadata. FilePath and
// Purpose are stable identifiers across refinement iterations; Content and
// Confidence may change when a refinement succeeds.
type Artifact struct {
	FilePath     string   `json:"file_path"`
	Content      string   `json:"content"`
	Language     string   `json:"language"`
	Purpose      string   `json:"purpose"`
	Dependencies []string `json:"dependencies,omitempty"`
	Method       Method   `json:"method"`
	Confidence   int      `json:"confidence"`
}

// defaultLanguage is the language tag of generated integration code.
const defaultLanguage = "typescript"

// fallbackConfidence is the fixed confidence of deterministic scaffolds.
const fallbackConfidence = 35

// refinementIncrement is the bounded confidence bump applied when a
// refinement attempt succeeds.
const refinementIncrement = 10

// maxConfidence caps per-artifact confidence.
const maxConfidence = 95

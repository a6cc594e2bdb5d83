package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashcompose/reqforge/internal/generator"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/requirement"
)

// Assessor computes quality assessments against the knowledge base's
// industry vocabulary.
type Assessor struct {
	kb *knowledge.Base
}

// New creates an Assessor.
func New(kb *knowledge.Base) *Assessor {
	return &Assessor{kb: kb}
}

// Assess scores an artifact set against the requirement it was generated
// for. Deterministic: identical inputs always produce identical reports.
func (q *Assessor) Assess(artifacts []generator.Artifact, req requirement.Requirement, industryKey string) Assessment {
	var a Assessment

	a.Scores.Structural = q.structuralScore(artifacts, &a)
	a.Scores.BusinessLogic = q.businessLogicScore(artifacts, req, industryKey, &a)
	a.Scores.Security = q.securityScore(artifacts, &a)
	a.Scores.Performance = q.performanceScore(artifacts, &a)
	a.Scores.Maintainability = q.maintainabilityScore(artifacts, &a)
	a.Scores.Testability = q.testabilityScore(artifacts, &a)

	sum := a.Scores.Structural + a.Scores.BusinessLogic + a.Scores.Security +
		a.Scores.Performance + a.Scores.Maintainability + a.Scores.Testability
	a.OverallScore = int(math.Round(float64(sum) / 6.0))
	return a
}

// structuralScore averages per-artifact structure scores. Fixed deltas for
// the shapes a production file should have, penalties for unresolved work
// and untyped escape hatches.
func (q *Assessor) structuralScore(artifacts []generator.Artifact, a *Assessment) int {
	if len(artifacts) == 0 {
		return 0
	}

	total := 0
	for _, art := range artifacts {
		score := 50
		code := art.Content

		if strings.Contains(code, "export ") || strings.Contains(code, "module.exports") {
			score += 10
		}
		if strings.Contains(code, "interface ") || strings.Contains(code, ": string") ||
			strings.Contains(code, ": number") || strings.Contains(code, "Promise<") {
			score += 10
		}
		if strings.Contains(code, "try {") && strings.Contains(code, "catch") {
			score += 10
		} else if strings.Contains(code, "await ") {
			score -= 10
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "structural",
				Severity: SeverityMedium,
				Message:  "asynchronous operations lack error handling",
			})
		}
		if strings.Contains(code, "//") || strings.Contains(code, "/*") {
			score += 5
		}
		if strings.Contains(code, "@platform/") || strings.Contains(code, "Client") {
			score += 5
		}
		if strings.Contains(code, "TODO") || strings.Contains(code, "FIXME") {
			score -= 15
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "structural",
				Severity: SeverityHigh,
				Message:  "unresolved work markers remain in generated code",
			})
		}
		if strings.Contains(code, ": any") {
			score -= 10
			a.Recommendations = append(a.Recommendations,
				fmt.Sprintf("%s: replace untyped 'any' declarations with concrete types", art.FilePath))
		}
		if len(code) < 200 {
			score -= 10
		}

		total += clamp(score)
	}
	return total / len(artifacts)
}

// businessLogicScore measures how much of the requirement's vocabulary the
// generated code actually touches, with fixed bonuses for domain terms in
// regulated industries.
func (q *Assessor) businessLogicScore(artifacts []generator.Artifact, req requirement.Requirement, industryKey string, a *Assessment) int {
	combined := strings.ToLower(joinContent(artifacts))
	keywords := requirementKeywords(req.Description)

	score := 50
	if len(keywords) > 0 {
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				hits++
			}
		}
		score += int(math.Round(30 * float64(hits) / float64(len(keywords))))
		if hits == 0 {
			a.Issues = append(a.Issues, Issue{
				File:     "",
				Category: "business-logic",
				Severity: SeverityHigh,
				Message:  "generated code does not reference any requirement vocabulary",
			})
		}
	}

	profile := q.kb.Industry(industryKey)
	if len(profile.RegulatoryFrameworks) > 0 {
		if strings.Contains(combined, "audit") || strings.Contains(combined, "compliance") {
			score += 10
		} else {
			a.Recommendations = append(a.Recommendations,
				"add audit and compliance handling expected in the "+profile.DisplayName+" industry")
		}
	}
	return clamp(score)
}

// securityScore rewards validation and key-handling idioms, and penalizes
// credential-like literals and unsafe logging hard.
func (q *Assessor) securityScore(artifacts []generator.Artifact, a *Assessment) int {
	if len(artifacts) == 0 {
		return 0
	}

	total := 0
	for _, art := range artifacts {
		score := 60
		code := art.Content
		lower := strings.ToLower(code)

		if strings.Contains(lower, "validate") || strings.Contains(lower, "sanitize") ||
			strings.Contains(code, "isFinite") || strings.Contains(code, "instanceof") {
			score += 10
		} else {
			a.Recommendations = append(a.Recommendations,
				art.FilePath+": add input validation before processing external data")
		}
		if strings.Contains(code, "process.env") || strings.Contains(lower, "keymanager") ||
			strings.Contains(lower, "secretsmanager") {
			score += 10
		}
		if strings.Contains(code, "try {") && strings.Contains(code, "catch") {
			score += 5
		}
		if strings.Contains(lower, "logger.error") || strings.Contains(lower, "log.error") {
			score += 5
		}

		if secret, ok := hardcodedSecret(code); ok {
			score -= 30
			severity := SeverityHigh
			message := "credential-like literal hard-coded in source"
			if strings.Contains(code, "console.log") {
				// A secret next to console-style logging is the worst shape:
				// the value is one careless statement away from a log sink.
				score -= 10
				severity = SeverityCritical
				message = "hard-coded secret alongside console logging"
			}
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "security",
				Severity: severity,
				Message:  message + " (" + secret + ")",
			})
		}
		if strings.Contains(code, "eval(") || strings.Contains(code, "new Function(") {
			score -= 30
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "security",
				Severity: SeverityCritical,
				Message:  "dynamic code execution construct",
			})
		}

		total += clamp(score)
	}
	return total / len(artifacts)
}

// performanceScore rewards caching and batched asynchronous work, and
// penalizes unbounded sequential awaits inside loops.
func (q *Assessor) performanceScore(artifacts []generator.Artifact, a *Assessment) int {
	if len(artifacts) == 0 {
		return 0
	}

	total := 0
	for _, art := range artifacts {
		score := 65
		code := art.Content

		if strings.Contains(code, "Promise.all") || strings.Contains(code, "Promise.allSettled") {
			score += 10
		}
		if strings.Contains(strings.ToLower(code), "cache") {
			score += 10
		}
		if awaitInLoop(code) {
			score -= 15
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "performance",
				Severity: SeverityMedium,
				Message:  "sequential awaits inside a loop; batch with Promise.all",
			})
		}
		if strings.Count(code, "JSON.parse(JSON.stringify") > 0 {
			score -= 10
			a.Recommendations = append(a.Recommendations,
				art.FilePath+": replace stringify-based deep copies with structured clones")
		}

		total += clamp(score)
	}
	return total / len(artifacts)
}

// maintainabilityScore applies size thresholds and documentation checks.
func (q *Assessor) maintainabilityScore(artifacts []generator.Artifact, a *Assessment) int {
	if len(artifacts) == 0 {
		return 0
	}

	total := 0
	for _, art := range artifacts {
		score := 65
		code := art.Content
		lines := strings.Count(code, "\n") + 1

		if strings.Contains(code, "//") || strings.Contains(code, "/**") {
			score += 10
		} else {
			a.Recommendations = append(a.Recommendations,
				art.FilePath+": document the exported surface")
		}
		if lines > 400 {
			score -= 15
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "maintainability",
				Severity: SeverityMedium,
				Message:  "file exceeds 400 lines; split by responsibility",
			})
		}
		if strings.Contains(code, "const ") || strings.Contains(code, "readonly ") {
			score += 5
		}
		if strings.Count(code, "export ") > 0 {
			score += 5
		}

		total += clamp(score)
	}
	return total / len(artifacts)
}

// testabilityScore rewards dependency-injection-friendly shapes and
// penalizes hard-coded statics that resist substitution.
func (q *Assessor) testabilityScore(artifacts []generator.Artifact, a *Assessment) int {
	if len(artifacts) == 0 {
		return 0
	}

	total := 0
	for _, art := range artifacts {
		score := 60
		code := art.Content

		if strings.Contains(code, "constructor(") {
			score += 15
		} else {
			a.Recommendations = append(a.Recommendations,
				art.FilePath+": inject collaborators through the constructor for testability")
		}
		if strings.Contains(code, "interface ") {
			score += 10
		}
		if strings.Contains(code, "new Date()") || strings.Contains(code, "Date.now()") {
			score -= 5
			a.Recommendations = append(a.Recommendations,
				art.FilePath+": inject a clock instead of reading wall time directly")
		}
		if strings.Contains(code, "static ") && strings.Contains(code, "getInstance") {
			score -= 10
			a.Issues = append(a.Issues, Issue{
				File:     art.FilePath,
				Category: "testability",
				Severity: SeverityLow,
				Message:  "singleton access pattern blocks test substitution",
			})
		}

		total += clamp(score)
	}
	return total / len(artifacts)
}

// secretMarkers are identifier fragments that suggest a literal holds a
// credential.
var secretMarkers = []string{"apikey", "api_key", "secret", "password", "privatekey", "private_key", "token"}

// hardcodedSecret reports a credential-like assignment with a literal
// value, returning the offending identifier fragment.
func hardcodedSecret(code string) (string, bool) {
	lower := strings.ToLower(code)
	for _, marker := range secretMarkers {
		idx := strings.Index(lower, marker)
		for idx >= 0 {
			rest := lower[idx+len(marker):]
			trimmed := strings.TrimLeft(rest, " \t")
			if strings.HasPrefix(trimmed, "=") || strings.HasPrefix(trimmed, ":") {
				value := strings.TrimLeft(trimmed[1:], " \t")
				if (strings.HasPrefix(value, "'") || strings.HasPrefix(value, "\"") || strings.HasPrefix(value, "`")) &&
					!strings.HasPrefix(value, "''") && !strings.HasPrefix(value, "\"\"") {
					return marker, true
				}
			}
			next := strings.Index(lower[idx+1:], marker)
			if next < 0 {
				break
			}
			idx = idx + 1 + next
		}
	}
	return "", false
}

// awaitInLoop detects an await statement lexically inside a for/while
// block. Line-based heuristic: an await between a loop header and its
// closing brace at the same nesting depth.
func awaitInLoop(code string) bool {
	depth := 0
	loopDepth := -1
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if loopDepth < 0 && (strings.HasPrefix(trimmed, "for ") || strings.HasPrefix(trimmed, "for(") ||
			strings.HasPrefix(trimmed, "while ") || strings.HasPrefix(trimmed, "while(")) {
			loopDepth = depth
		}
		if loopDepth >= 0 && strings.Contains(trimmed, "await ") {
			return true
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if loopDepth >= 0 && depth <= loopDepth {
			loopDepth = -1
		}
	}
	return false
}

// requirementKeywords extracts lowercase content words longer than three
// characters from the requirement text.
func requirementKeywords(description string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.FieldsFunc(strings.ToLower(description), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		if len(word) > 3 && !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func joinContent(artifacts []generator.Artifact) string {
	var b strings.Builder
	for _, a := range artifacts {
		b.WriteString(a.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

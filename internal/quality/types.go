// Package quality scores generated artifact sets along six independent
// axes. Assessment is a pure function over the artifacts and the original
// requirement: it issues no provider calls, so the refinement loop can
// trust it as a stopping criterion.
package quality

// Severity ranks how strongly an issue gates refinement.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Issue is one detected defect. Issues gate refinement.
type Issue struct {
	File     string   `json:"file"`
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Scores holds the six sub-scores, each in [0, 100].
type Scores struct {
	Structural      int `json:"structural"`
	BusinessLogic   int `json:"business_logic"`
	Security        int `json:"security"`
	Performance     int `json:"performance"`
	Maintainability int `json:"maintainability"`
	Testability     int `json:"testability"`
}

// Assessment is the full quality report for one artifact set. It is
// recomputed from scratch on every refinement iteration, never patched,
// so issues can not go stale.
type Assessment struct {
	OverallScore int    `json:"overall_score"`
	Scores       Scores `json:"scores"`
	// Issues are defects that gate refinement.
	Issues []Issue `json:"issues,omitempty"`
	// Recommendations are missing best practices. They inform refinement
	// prompts but never gate it.
	Recommendations []string `json:"recommendations,omitempty"`
}

// IssueMessages flattens issues into refinement-prompt lines.
func (a Assessment) IssueMessages() []string {
	var msgs []string
	for _, issue := range a.Issues {
		msgs = append(msgs, issue.File+": "+issue.Message)
	}
	return append(msgs, a.Recommendations...)
}

// IssueMessagesFor returns the refinement-prompt lines for one file: the
// issues raised against that file plus the set-wide recommendations.
func (a Assessment) IssueMessagesFor(file string) []string {
	var msgs []string
	for _, issue := range a.Issues {
		if issue.File == file {
			msgs = append(msgs, issue.Message)
		}
	}
	return append(msgs, a.Recommendations...)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

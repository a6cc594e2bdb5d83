package server

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/hashcompose/reqforge/internal/composer"
)

const reportPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Composition Report {{.ID}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; color: #1f2328; }
pre { background: #f6f8fa; padding: 12px; border-radius: 6px; overflow-x: auto; }
code { font-family: ui-monospace, monospace; font-size: 0.9em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d7de; padding: 4px 10px; text-align: left; }
h1, h2 { border-bottom: 1px solid #d0d7de; padding-bottom: .3em; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// renderReport converts one stored run into a standalone HTML page.
func renderReport(result *composer.Result) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(reportMarkdown(result)), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("report").Parse(reportPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	var page bytes.Buffer
	err = tmpl.Execute(&page, struct {
		ID   string
		Body template.HTML
	}{
		ID:   result.ID,
		Body: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("executing report template: %w", err)
	}
	return page.Bytes(), nil
}

// reportMarkdown flattens a run into the markdown source of its report.
func reportMarkdown(r *composer.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Composition Report\n\n")
	fmt.Fprintf(&b, "**Run** `%s` finished %s\n\n", r.ID, r.FinishedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "> %s\n\n", r.Requirement.Description)

	cls := r.Classification
	fmt.Fprintf(&b, "## Classification\n\n")
	fmt.Fprintf(&b, "| Dimension | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Business intent | %s |\n", cls.BusinessIntent.Primary)
	fmt.Fprintf(&b, "| Industry | %s |\n", cls.Industry.Industry)
	fmt.Fprintf(&b, "| Compliance level | %s |\n", cls.Compliance.Level)
	fmt.Fprintf(&b, "| Technical complexity | %d |\n", cls.TechnicalComplexity.OverallScore)
	fmt.Fprintf(&b, "| Overall confidence | %d |\n", cls.ConfidenceScore.Overall)
	fmt.Fprintf(&b, "| Classification source | %s |\n", cls.Source)
	fmt.Fprintf(&b, "| Strategy | %s |\n\n", r.Strategy.Approach)

	fmt.Fprintf(&b, "## Quality\n\n")
	fmt.Fprintf(&b, "Overall score **%d** after %d refinement round(s).\n\n", r.Quality.OverallScore, r.RefinementRounds)
	fmt.Fprintf(&b, "| Axis | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Structural | %d |\n", r.Quality.Scores.Structural)
	fmt.Fprintf(&b, "| Business logic | %d |\n", r.Quality.Scores.BusinessLogic)
	fmt.Fprintf(&b, "| Security | %d |\n", r.Quality.Scores.Security)
	fmt.Fprintf(&b, "| Performance | %d |\n", r.Quality.Scores.Performance)
	fmt.Fprintf(&b, "| Maintainability | %d |\n", r.Quality.Scores.Maintainability)
	fmt.Fprintf(&b, "| Testability | %d |\n\n", r.Quality.Scores.Testability)

	if len(r.Quality.Issues) > 0 {
		fmt.Fprintf(&b, "### Issues\n\n")
		for _, issue := range r.Quality.Issues {
			fmt.Fprintf(&b, "- **%s** [%s/%s] %s\n", issue.File, issue.Category, issue.Severity, issue.Message)
		}
		b.WriteString("\n")
	}
	if len(r.Quality.Recommendations) > 0 {
		fmt.Fprintf(&b, "### Recommendations\n\n")
		for _, rec := range r.Quality.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(r.ValidationResults) > 0 {
		fmt.Fprintf(&b, "## Validation\n\n")
		for _, v := range r.ValidationResults {
			mark := "PASS"
			if !v.Passed {
				mark = "FAIL"
			}
			fmt.Fprintf(&b, "- `%s` %s", v.Check, mark)
			if v.Details != "" {
				fmt.Fprintf(&b, ": %s", v.Details)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Artifacts\n\n")
	for _, a := range r.Artifacts {
		fmt.Fprintf(&b, "### `%s`\n\n", a.FilePath)
		fmt.Fprintf(&b, "%s (method %s, confidence %d)\n\n", a.Purpose, a.Method, a.Confidence)
		if len(a.Dependencies) > 0 {
			fmt.Fprintf(&b, "Dependencies: %s\n\n", strings.Join(a.Dependencies, ", "))
		}
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", a.Language, strings.TrimRight(a.Content, "\n"))
	}

	if len(r.DeploymentGuidance) > 0 {
		fmt.Fprintf(&b, "## Deployment Guidance\n\n")
		for _, g := range r.DeploymentGuidance {
			fmt.Fprintf(&b, "- %s\n", g)
		}
		b.WriteString("\n")
	}
	if len(r.LimitationAcknowledgment) > 0 {
		fmt.Fprintf(&b, "## Limitations\n\n")
		for _, l := range r.LimitationAcknowledgment {
			fmt.Fprintf(&b, "- %s\n", l)
		}
	}

	return b.String()
}

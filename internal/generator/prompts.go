package generator

import (
	"fmt"
	"strings"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/requirement"
)

const generateSystemPrompt = `You are a senior integration engineer producing production TypeScript
for distributed-ledger platform services. Output complete, runnable files
inside fenced code blocks tagged with the language. Begin each file with
a "// filePath:" comment and a "// purpose:" comment. Include error
handling and input validation. Do not include explanations outside the
code blocks.`

const refineSystemPrompt = `You are a senior integration engineer improving an existing TypeScript
file. Return the complete improved file in a single fenced code block.
Keep the file's public surface and its filePath comment unchanged. Fix
the listed issues without rewriting unrelated code.`

// buildUnitPrompt asks for one generation unit of custom logic.
func buildUnitPrompt(req requirement.Requirement, unit string, services []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Requirement:\n%s\n\n", req.Description)
	b.WriteString(req.Context.ToPromptSection())
	fmt.Fprintf(&b, "Implement this generation unit as one TypeScript file:\n%s\n\n", unit)
	if len(services) > 0 {
		fmt.Fprintf(&b, "Platform services available: %s\n", strings.Join(services, ", "))
	}
	b.WriteString("Produce a single exported class with typed methods for the unit's operations.\n")
	return b.String()
}

// buildTemplatePrompt asks the provider to adapt one inventory template to
// the requirement.
func buildTemplatePrompt(req requirement.Requirement, tpl knowledge.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Requirement:\n%s\n\n", req.Description)
	b.WriteString(req.Context.ToPromptSection())
	fmt.Fprintf(&b, "Adapt the %q template to this requirement.\n", tpl.Name)
	fmt.Fprintf(&b, "Template purpose: %s\n", tpl.Description)
	if len(tpl.Components) > 0 {
		fmt.Fprintf(&b, "Template components: %s\n", strings.Join(tpl.Components, ", "))
	}
	if len(tpl.Services) > 0 {
		fmt.Fprintf(&b, "Platform services used: %s\n", strings.Join(tpl.Services, ", "))
	}
	b.WriteString("Produce one TypeScript file implementing the adapted template.\n")
	return b.String()
}

// buildNovelPrompt asks for an implementation of a pattern the template
// inventory does not cover.
func buildNovelPrompt(req requirement.Requirement, pattern string, services []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Requirement:\n%s\n\n", req.Description)
	b.WriteString(req.Context.ToPromptSection())
	fmt.Fprintf(&b, "No existing template covers this requirement. Design and implement\nthe %q pattern from first principles.\n", pattern)
	if len(services) > 0 {
		fmt.Fprintf(&b, "Platform services available: %s\n", strings.Join(services, ", "))
	}
	b.WriteString("Produce one TypeScript file. Document the pattern's key decisions in\nleading comments.\n")
	return b.String()
}

// buildBridgePrompt asks for the integration bridge that wires the
// fragments produced so far into one flow.
func buildBridgePrompt(req requirement.Requirement, artifacts []Artifact, patterns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Requirement:\n%s\n\n", req.Description)
	b.WriteString("These files already exist:\n")
	for _, a := range artifacts {
		fmt.Fprintf(&b, "- %s: %s\n", a.FilePath, a.Purpose)
	}
	b.WriteString("\n")
	if len(patterns) > 0 {
		fmt.Fprintf(&b, "Integration patterns to realize: %s\n", strings.Join(patterns, ", "))
	}
	b.WriteString("Produce one TypeScript file that imports the exported classes above\nand composes them into a single entry-point workflow.\n")
	return b.String()
}

// buildRefinePrompt asks for an improved version of one artifact.
func buildRefinePrompt(a Artifact, issues []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File %s (purpose: %s):\n\n```%s\n%s\n```\n\n", a.FilePath, a.Purpose, a.Language, a.Content)
	if len(issues) > 0 {
		b.WriteString("Issues to fix:\n")
		for _, issue := range issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	} else {
		b.WriteString("Improve error handling, input validation, and documentation.\n")
	}
	return b.String()
}

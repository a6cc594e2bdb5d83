package generator

import (
	"fmt"
	"strings"

	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/strategy"
)

// scaffoldArtifact produces the deterministic placeholder for one
// generation unit. The scaffold compiles as a TypeScript skeleton, names
// every integration point it cannot fill in, and carries a fixed low
// confidence so the quality gate and refinement loop treat it as a
// candidate for improvement, never as finished work.
func scaffoldArtifact(unit, purpose string, services []string) Artifact {
	className := pascalCase(unit)
	if className == "" {
		className = "GeneratedService"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Scaffold for: %s\n", unit)
	b.WriteString("// Generated as a deterministic placeholder. Each TODO marks an\n")
	b.WriteString("// integration point that needs a real implementation before use.\n\n")

	for _, svc := range services {
		fmt.Fprintf(&b, "import { %sClient } from '@platform/%s';\n", pascalCase(svc), svc)
	}
	if len(services) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "export class %s {\n", className)
	for _, svc := range services {
		fmt.Fprintf(&b, "  private readonly %s: %sClient;\n", camelCase(svc), pascalCase(svc))
	}
	if len(services) > 0 {
		b.WriteString("\n  constructor(")
		for i, svc := range services {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %sClient", camelCase(svc), pascalCase(svc))
		}
		b.WriteString(") {\n")
		for _, svc := range services {
			fmt.Fprintf(&b, "    this.%s = %s;\n", camelCase(svc), camelCase(svc))
		}
		b.WriteString("  }\n")
	}

	b.WriteString("\n  async execute(input: Record<string, unknown>): Promise<Record<string, unknown>> {\n")
	fmt.Fprintf(&b, "    // TODO: implement %s\n", unit)
	b.WriteString("    throw new Error('not implemented: ")
	b.WriteString(strings.ReplaceAll(unit, "'", ""))
	b.WriteString("');\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	var deps []string
	for _, svc := range services {
		deps = append(deps, "@platform/"+svc)
	}

	return Artifact{
		FilePath:     synthesizePath(unit),
		Content:      b.String(),
		Language:     defaultLanguage,
		Purpose:      purpose,
		Dependencies: deps,
		Method:       MethodFallback,
		Confidence:   fallbackConfidence,
	}
}

// scaffoldTemplateArtifact renders a template inventory entry as a
// deterministic fragment when no provider can adapt it.
func scaffoldTemplateArtifact(tpl knowledge.Template) Artifact {
	unit := tpl.Name + " template"
	a := scaffoldArtifact(unit, tpl.Description, tpl.Services)
	a.FilePath = "src/templates/" + tpl.Name + ".ts"
	return a
}

// scaffoldStrategy produces placeholders for every generation unit a
// strategy calls for. Used when the entire ladder is exhausted.
func scaffoldStrategy(kb *knowledge.Base, strat strategy.CompositionStrategy, services []string) []Artifact {
	var artifacts []Artifact

	for _, name := range strat.TemplateCombinations {
		if tpl, ok := kb.TemplateByName(name); ok {
			artifacts = append(artifacts, scaffoldTemplateArtifact(tpl))
		}
	}
	for _, unit := range strat.CustomLogicRequirements {
		artifacts = append(artifacts, scaffoldArtifact(unit, "custom logic: "+unit, services))
	}
	for _, pattern := range strat.NovelPatterns {
		artifacts = append(artifacts, scaffoldArtifact(pattern, "novel pattern: "+pattern, services))
	}

	if len(artifacts) == 0 {
		artifacts = append(artifacts, scaffoldArtifact("integration service", "requirement integration", services))
	}
	return artifacts
}

// pascalCase converts free text into a PascalCase identifier.
func pascalCase(text string) string {
	var b strings.Builder
	upper := true
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			if upper {
				b.WriteRune(r - 32)
			} else {
				b.WriteRune(r)
			}
			upper = false
		case r >= 'A' && r <= 'Z':
			if upper {
				b.WriteRune(r)
			} else {
				b.WriteRune(r + 32)
			}
			upper = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	return b.String()
}

// camelCase converts free text into a camelCase identifier.
func camelCase(text string) string {
	p := pascalCase(text)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

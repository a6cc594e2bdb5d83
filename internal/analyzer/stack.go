package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashcompose/reqforge/internal/requirement"
)

// manifestFrameworks maps dependency-manifest package names to the
// framework names recorded in the detected tech stack.
var manifestFrameworks = map[string]string{
	"react":          "React",
	"next":           "Next.js",
	"express":        "Express",
	"fastify":        "Fastify",
	"nestjs":         "NestJS",
	"@nestjs/core":   "NestJS",
	"vue":            "Vue",
	"@hashgraph/sdk": "Hedera SDK",
	"ethers":         "Ethers",
	"web3":           "Web3",
	"typeorm":        "TypeORM",
	"prisma":         "Prisma",
	"@prisma/client": "Prisma",
	"jest":           "Jest",
	"mocha":          "Mocha",
}

// DetectContext walks a project directory and derives the tech-stack
// portion of an enterprise context. Returns nil when the directory holds
// nothing recognizable, so callers can fall back to manual context entry.
func DetectContext(root string) (*requirement.EnterpriseContext, error) {
	files, err := Walk(WalkConfig{RootDir: root})
	if err != nil {
		return nil, err
	}

	stack := detectStack(root, files)
	if len(stack) == 0 {
		return nil, nil
	}
	return &requirement.EnterpriseContext{TechStack: stack}, nil
}

// detectStack combines dominant source languages with manifest-declared
// frameworks into one deduplicated, deterministic list.
func detectStack(root string, files []FileInfo) []string {
	counts := make(map[string]int)
	for _, f := range files {
		switch f.Language {
		case "unknown", "Markdown", "YAML", "JSON", "TOML", "Git":
			continue
		}
		counts[f.Language]++
	}

	type langCount struct {
		lang string
		n    int
	}
	langs := make([]langCount, 0, len(counts))
	for lang, n := range counts {
		langs = append(langs, langCount{lang, n})
	}
	sort.SliceStable(langs, func(i, j int) bool {
		if langs[i].n != langs[j].n {
			return langs[i].n > langs[j].n
		}
		return langs[i].lang < langs[j].lang
	})

	seen := make(map[string]bool)
	var stack []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}

	const maxLanguages = 4
	for i, lc := range langs {
		if i == maxLanguages {
			break
		}
		add(lc.lang)
	}

	for _, fw := range packageJSONFrameworks(filepath.Join(root, "package.json")) {
		add(fw)
	}
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
		add("Go modules")
	}
	if _, err := os.Stat(filepath.Join(root, "Dockerfile")); err == nil {
		add("Docker")
	}

	return stack
}

// packageJSONFrameworks reads the dependency names out of a package.json
// and maps the recognized ones to framework names, in stable order.
func packageJSONFrameworks(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil
	}

	names := make([]string, 0, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		names = append(names, name)
	}
	for name := range manifest.DevDependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]bool)
	var frameworks []string
	for _, name := range names {
		fw, ok := manifestFrameworks[strings.ToLower(name)]
		if !ok {
			fw, ok = manifestFrameworks[name]
		}
		if ok && !seen[fw] {
			seen[fw] = true
			frameworks = append(frameworks, fw)
		}
	}
	return frameworks
}

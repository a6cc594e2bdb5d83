package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// codeFenceRe matches a fenced code block with an optional language tag.
var codeFenceRe = regexp.MustCompile("(?s)```([a-zA-Z0-9+#-]*)\n(.*?)```")

// sourceLanguages are the fence tags treated as source code. Untagged and
// prose fences are ignored by the primary extractor.
var sourceLanguages = map[string]string{
	"typescript": "typescript",
	"ts":         "typescript",
	"javascript": "javascript",
	"js":         "javascript",
	"tsx":        "typescript",
	"solidity":   "solidity",
	"go":         "go",
	"python":     "python",
	"java":       "java",
}

// extractArtifacts parses a free-form provider response into artifacts.
// It is a chain of extractors tried in fixed order: fenced code blocks
// first, then an embedded JSON file list, then failure (which the caller
// treats like any other provider failure).
func extractArtifacts(content, defaultPath, purpose string) ([]Artifact, error) {
	if artifacts := extractFencedBlocks(content, defaultPath, purpose); len(artifacts) > 0 {
		return artifacts, nil
	}
	if artifacts := extractFileList(content, purpose); len(artifacts) > 0 {
		return artifacts, nil
	}
	return nil, fmt.Errorf("no code blocks or file list found in response")
}

// extractFencedBlocks pulls every source-tagged fenced block out of the
// response. Path and purpose hints come from leading structured comments
// when present; otherwise the path is synthesized deterministically.
func extractFencedBlocks(content, defaultPath, purpose string) []Artifact {
	matches := codeFenceRe.FindAllStringSubmatch(content, -1)

	var artifacts []Artifact
	for _, m := range matches {
		lang, ok := sourceLanguages[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		code := strings.TrimSpace(m[2])
		if code == "" {
			continue
		}

		path, blockPurpose := headerHints(code)
		if path == "" {
			path = defaultPath
			if len(artifacts) > 0 {
				path = numberedPath(defaultPath, len(artifacts))
			}
		}
		if blockPurpose == "" {
			blockPurpose = purpose
		}

		artifacts = append(artifacts, Artifact{
			FilePath:     path,
			Content:      code,
			Language:     lang,
			Purpose:      blockPurpose,
			Dependencies: extractDependencies(code),
			Method:       MethodReasoning,
			Confidence:   scoreArtifact(code),
		})
	}
	return artifacts
}

// headerHints reads file-path and purpose hints from leading structured
// comments like "// filePath: src/foo.ts" or "// purpose: ...".
func headerHints(code string) (path, purpose string) {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "#") {
			break
		}
		comment := strings.TrimSpace(strings.TrimLeft(trimmed, "/# "))
		lower := strings.ToLower(comment)
		switch {
		case strings.HasPrefix(lower, "filepath:"):
			path = strings.TrimSpace(comment[len("filepath:"):])
		case strings.HasPrefix(lower, "file:"):
			path = strings.TrimSpace(comment[len("file:"):])
		case strings.HasPrefix(lower, "purpose:"):
			purpose = strings.TrimSpace(comment[len("purpose:"):])
		}
	}
	return path, purpose
}

// fileListResponse is the secondary extraction shape: an embedded JSON
// block describing a file list.
type fileListResponse struct {
	Files []struct {
		Path         string   `json:"path"`
		Content      string   `json:"content"`
		Language     string   `json:"language"`
		Purpose      string   `json:"purpose"`
		Dependencies []string `json:"dependencies"`
	} `json:"files"`
}

// extractFileList looks for an embedded JSON object with a "files" array.
func extractFileList(content, purpose string) []Artifact {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil
	}

	var resp fileListResponse
	if err := json.Unmarshal([]byte(content[start:end+1]), &resp); err != nil {
		return nil
	}

	var artifacts []Artifact
	for _, f := range resp.Files {
		if f.Path == "" || f.Content == "" {
			continue
		}
		lang := f.Language
		if lang == "" {
			lang = defaultLanguage
		}
		filePurpose := f.Purpose
		if filePurpose == "" {
			filePurpose = purpose
		}
		deps := f.Dependencies
		if len(deps) == 0 {
			deps = extractDependencies(f.Content)
		}
		artifacts = append(artifacts, Artifact{
			FilePath:     f.Path,
			Content:      f.Content,
			Language:     lang,
			Purpose:      filePurpose,
			Dependencies: deps,
			Method:       MethodReasoning,
			Confidence:   scoreArtifact(f.Content),
		})
	}
	return artifacts
}

// importRe matches ES-style and CommonJS-style module references.
var importRe = regexp.MustCompile(`(?m)(?:import\s+(?:[^'"]*\s+from\s+)?|require\()\s*['"]([^'"]+)['"]`)

// extractDependencies scans import-style statements and keeps only
// non-relative module references.
func extractDependencies(code string) []string {
	seen := make(map[string]bool)
	var deps []string
	for _, m := range importRe.FindAllStringSubmatch(code, -1) {
		ref := m[1]
		if strings.HasPrefix(ref, ".") || strings.HasPrefix(ref, "/") {
			continue
		}
		if !seen[ref] {
			seen[ref] = true
			deps = append(deps, ref)
		}
	}
	return deps
}

// slug converts free text into a deterministic kebab-case identifier.
func slug(text string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// synthesizePath builds a deterministic artifact path from free text.
func synthesizePath(text string) string {
	s := slug(text)
	if s == "" {
		s = "generated-service"
	}
	const maxSlug = 48
	if len(s) > maxSlug {
		s = strings.Trim(s[:maxSlug], "-")
	}
	return "src/services/" + s + ".ts"
}

// numberedPath disambiguates additional blocks sharing one default path.
func numberedPath(path string, n int) string {
	if idx := strings.LastIndex(path, "."); idx > 0 {
		return fmt.Sprintf("%s-%d%s", path[:idx], n+1, path[idx:])
	}
	return fmt.Sprintf("%s-%d", path, n+1)
}

package generator

import "strings"

// scoreArtifact assigns a structural confidence score to generated code.
// The scoring is deterministic: it inspects the text for the structural
// features a production integration file should have and never consults a
// provider. Scores land in [20, 90]; refinement is what pushes past that.
func scoreArtifact(code string) int {
	score := 40

	if strings.Contains(code, "class ") || strings.Contains(code, "function ") ||
		strings.Contains(code, "=> {") {
		score += 10
	}
	if strings.Contains(code, "export ") || strings.Contains(code, "module.exports") {
		score += 10
	}
	if strings.Contains(code, "try {") || strings.Contains(code, "catch") {
		score += 10
	}
	if strings.Contains(code, "import ") || strings.Contains(code, "require(") {
		score += 10
	}
	if strings.Contains(code, "async ") || strings.Contains(code, "await ") {
		score += 5
	}
	if strings.Contains(code, "//") || strings.Contains(code, "/*") {
		score += 5
	}
	if len(code) < 200 {
		score -= 20
	}

	if score < 20 {
		score = 20
	}
	if score > 90 {
		score = 90
	}
	return score
}

// Package metrics provides the pure metric primitives used by the analysis
// engine: line counting, a heuristic complexity score and the derived
// maintainability index.
package metrics

import (
	"regexp"
	"strings"

	"github.com/code-mentor/analysis/pkg/source"
)

// MaxComplexity is the upper bound on the complexity score. The cap keeps
// pathological input from producing runaway values.
const MaxComplexity = 20

// complexityKeywords are counted as whole words. The operators && and ||
// are counted as exact tokens separately because \b does not apply to them.
var complexityKeywordPattern = regexp.MustCompile(`\b(if|else|for|while|switch|case|catch)\b`)

// CountLines returns the number of lines whose trimmed content is non-empty.
func CountLines(text string) int {
	count := 0
	for _, line := range source.Lines(text) {
		if !source.IsBlank(line) {
			count++
		}
	}
	return count
}

// Complexity computes a token-frequency heuristic for cyclomatic complexity:
// base 1 plus one per branching keyword or short-circuit operator occurrence,
// clamped to [1, MaxComplexity]. Nested and duplicate constructs are
// deliberately over-counted as a proxy for structural complexity; this is
// not a control-flow-graph analysis.
func Complexity(text string) int {
	c := 1
	c += len(complexityKeywordPattern.FindAllStringIndex(text, -1))
	c += strings.Count(text, "&&")
	c += strings.Count(text, "||")

	if c > MaxComplexity {
		return MaxComplexity
	}
	if c < 1 {
		return 1
	}
	return c
}

// MaintainabilityIndex derives a 0-100 score from complexity and size:
// 100 - 2*complexity - 0.1*linesOfCode, clamped to [0,100]. Larger programs
// and higher complexity both reduce maintainability. The constants are
// fixed policy.
func MaintainabilityIndex(text string) float64 {
	mi := 100 - 2*float64(Complexity(text)) - 0.1*float64(CountLines(text))

	if mi < 0 {
		return 0
	}
	if mi > 100 {
		return 100
	}
	return mi
}

// TechnicalDebt is the amount by which complexity exceeds the comfortable
// threshold of 10, zero for simple snippets.
func TechnicalDebt(complexity int) int {
	if complexity > 10 {
		return complexity - 10
	}
	return 0
}

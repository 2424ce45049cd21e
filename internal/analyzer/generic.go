package analyzer

import (
	"fmt"
	"strings"

	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/pkg/source"
)

// maxGenericLineLength is the line length limit for languages without a
// dedicated analyzer.
const maxGenericLineLength = 120

// Generic is the language-agnostic fallback analyzer. It only applies
// checks that hold for any text: overlong lines and trailing whitespace.
type Generic struct{}

// NewGeneric creates the fallback analyzer.
func NewGeneric() *Generic {
	return &Generic{}
}

// Name implements Analyzer.
func (g *Generic) Name() string { return Fallback }

// Analyze implements Analyzer.
func (g *Generic) Analyze(src string) []domain.Issue {
	var issues []domain.Issue

	for i, line := range source.Lines(src) {
		lineNo := i + 1

		if len(line) > maxGenericLineLength {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       maxGenericLineLength + 1,
				Severity:     domain.SeverityInfo,
				Category:     domain.CategoryStyle,
				Title:        "Line too long",
				Description:  fmt.Sprintf("Line is %d characters long; lines over %d characters are hard to read", len(line), maxGenericLineLength),
				SuggestedFix: "Break the line into shorter ones",
				CodeSnippet:  domain.CodeSnippet{Original: line},
				Impact:       domain.ImpactLow,
			})
		}

		if line != "" && strings.TrimRight(line, " \t") != line {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       len(strings.TrimRight(line, " \t")) + 1,
				Severity:     domain.SeverityInfo,
				Category:     domain.CategoryStyle,
				Title:        "Trailing whitespace",
				Description:  "Line ends with whitespace characters",
				SuggestedFix: "Remove the trailing whitespace",
				CodeSnippet: domain.CodeSnippet{
					Original:  line,
					Suggested: strings.TrimRight(line, " \t"),
				},
				Impact: domain.ImpactLow,
			})
		}
	}

	return issues
}

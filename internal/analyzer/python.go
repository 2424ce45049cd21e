package analyzer

import (
	"fmt"
	"strings"

	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/pkg/source"
)

// maxPythonLineLength is the PEP 8 line length limit.
const maxPythonLineLength = 79

// Python is a line-oriented analyzer for Python source. It does not parse;
// every check is a per-line textual heuristic.
type Python struct{}

// NewPython creates the Python analyzer.
func NewPython() *Python {
	return &Python{}
}

// Name implements Analyzer.
func (p *Python) Name() string { return "python" }

// Analyze implements Analyzer.
func (p *Python) Analyze(src string) []domain.Issue {
	var issues []domain.Issue

	for i, line := range source.Lines(src) {
		lineNo := i + 1

		if lead := leadingSpaces(line); lead%4 != 0 {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       1,
				Severity:     domain.SeverityWarning,
				Category:     domain.CategoryStyle,
				Title:        "Inconsistent indentation",
				Description:  fmt.Sprintf("Line is indented by %d spaces; indentation should be a multiple of 4", lead),
				SuggestedFix: "Indent with multiples of 4 spaces",
				CodeSnippet:  domain.CodeSnippet{Original: line},
				Impact:       domain.ImpactLow,
			})
		}

		if len(line) > maxPythonLineLength {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       maxPythonLineLength + 1,
				Severity:     domain.SeverityInfo,
				Category:     domain.CategoryStyle,
				Title:        "Line too long",
				Description:  fmt.Sprintf("Line is %d characters long; PEP 8 recommends at most %d", len(line), maxPythonLineLength),
				SuggestedFix: "Break the line into shorter ones",
				CodeSnippet:  domain.CodeSnippet{Original: line},
				Impact:       domain.ImpactLow,
			})
		}

		if idx := strings.Index(line, "print("); idx != -1 {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       idx + 1,
				Severity:     domain.SeveritySuggestion,
				Category:     domain.CategoryBestPractice,
				Title:        "Use logging instead of print",
				Description:  "The logging module gives control over output levels and destinations that print() lacks",
				SuggestedFix: "Replace print() with logging.info() or a more specific level",
				CodeSnippet: domain.CodeSnippet{
					Original:  line,
					Suggested: strings.Replace(line, "print(", "logging.info(", 1),
				},
				Impact: domain.ImpactLow,
			})
		}
	}

	return issues
}

// leadingSpaces counts the spaces at the start of a line.
func leadingSpaces(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

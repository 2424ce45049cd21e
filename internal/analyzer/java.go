package analyzer

import (
	"regexp"
	"strings"

	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/pkg/source"
)

// ctrlHeaderPattern matches a control-statement header that ends its line
// without an opening brace, e.g. "if (x > 0)" followed by the body on the
// next line.
var ctrlHeaderPattern = regexp.MustCompile(`\b(if|for|while|else if)\s*\(.*\)\s*$`)

// Java is a line-oriented analyzer for Java source.
type Java struct{}

// NewJava creates the Java analyzer.
func NewJava() *Java {
	return &Java{}
}

// Name implements Analyzer.
func (j *Java) Name() string { return "java" }

// Analyze implements Analyzer.
func (j *Java) Analyze(src string) []domain.Issue {
	var issues []domain.Issue

	for i, line := range source.Lines(src) {
		lineNo := i + 1

		if idx := strings.Index(line, "System.out.println"); idx != -1 {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       idx + 1,
				Severity:     domain.SeveritySuggestion,
				Category:     domain.CategoryBestPractice,
				Title:        "Use a logging framework instead of System.out",
				Description:  "Console printing bypasses log levels, formatting and output routing",
				SuggestedFix: "Replace System.out.println with a logger call",
				CodeSnippet: domain.CodeSnippet{
					Original:  line,
					Suggested: strings.Replace(line, "System.out.println", "logger.info", 1),
				},
				Impact: domain.ImpactLow,
			})
		}

		if ctrlHeaderPattern.MatchString(line) {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       1,
				Severity:     domain.SeverityWarning,
				Category:     domain.CategoryStyle,
				Title:        "Control statement without braces",
				Description:  "A control statement whose body is not wrapped in braces invites bugs when lines are added later",
				SuggestedFix: "Open a brace on the control statement line",
				CodeSnippet: domain.CodeSnippet{
					Original:  line,
					Suggested: strings.TrimRight(line, " \t") + " {",
				},
				Impact: domain.ImpactMedium,
			})
		}
	}

	return issues
}

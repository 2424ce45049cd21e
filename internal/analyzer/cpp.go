package analyzer

import (
	"strings"

	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/pkg/source"
)

// CPP is a line-oriented analyzer for C++ source.
type CPP struct{}

// NewCPP creates the C++ analyzer.
func NewCPP() *CPP {
	return &CPP{}
}

// Name implements Analyzer.
func (c *CPP) Name() string { return "cpp" }

// Analyze implements Analyzer.
//
// The leak check is a coarse global heuristic: any `new ` allocation is
// flagged when the whole source contains no `delete` at all. It is not a
// pairing or escape analysis and will false-positive on code that releases
// memory by other means.
func (c *CPP) Analyze(src string) []domain.Issue {
	var issues []domain.Issue

	hasDelete := strings.Contains(src, "delete")

	for i, line := range source.Lines(src) {
		lineNo := i + 1

		if idx := strings.Index(line, "using namespace std"); idx != -1 {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       idx + 1,
				Severity:     domain.SeverityWarning,
				Category:     domain.CategoryBestPractice,
				Title:        "Avoid 'using namespace std'",
				Description:  "Importing the whole std namespace pollutes the global namespace and can cause name collisions",
				SuggestedFix: "Qualify names with std:: or import only what is needed",
				CodeSnippet:  domain.CodeSnippet{Original: line},
				Impact:       domain.ImpactMedium,
			})
		}

		if idx := strings.Index(line, "new "); idx != -1 && !hasDelete {
			issues = append(issues, domain.Issue{
				Line:         lineNo,
				Column:       idx + 1,
				Severity:     domain.SeverityError,
				Category:     domain.CategorySecurity,
				Title:        "Potential memory leak",
				Description:  "Raw allocation with 'new' but no 'delete' anywhere in the source",
				SuggestedFix: "Use std::unique_ptr or std::shared_ptr instead of raw new",
				CodeSnippet:  domain.CodeSnippet{Original: line},
				Impact:       domain.ImpactCritical,
			})
		}
	}

	return issues
}

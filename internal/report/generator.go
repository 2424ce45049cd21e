package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/code-mentor/analysis/internal/domain"
)

// severityOrder is the display order for summary tables, most urgent first.
var severityOrder = []domain.Severity{
	domain.SeverityError,
	domain.SeverityWarning,
	domain.SeverityInfo,
	domain.SeveritySuggestion,
}

// categoryOrder is the display order for summary tables.
var categoryOrder = []domain.Category{
	domain.CategorySyntax,
	domain.CategorySecurity,
	domain.CategoryPerformance,
	domain.CategoryMaintainability,
	domain.CategoryBestPractice,
	domain.CategoryStyle,
}

// Generator renders reports in the supported output formats.
type Generator struct{}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a report in the given format (json, markdown or text).
func (g *Generator) Generate(r *Report, format string) (string, error) {
	switch format {
	case "json":
		return g.generateJSON(r)
	case "markdown", "md":
		return g.generateMarkdown(r), nil
	case "text", "":
		return g.generateText(r), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Code Review Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Files analyzed:** %d\n", r.Summary.FileCount))
	sb.WriteString(fmt.Sprintf("- **Total issues:** %d\n", r.Summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("- **Average score:** %.1f/100\n\n", r.Summary.AverageScore))

	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range severityOrder {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, r.Summary.BySeverity[sev]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Issues by Category\n\n")
	sb.WriteString("| Category | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, cat := range categoryOrder {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", cat, r.Summary.ByCategory[cat]))
	}
	sb.WriteString("\n")

	sb.WriteString("## Files\n\n")
	for _, f := range r.Files {
		m := f.Result.Metrics
		sb.WriteString(fmt.Sprintf("### `%s` (%s)\n\n", f.Path, f.Language))
		sb.WriteString(fmt.Sprintf("- **Score:** %d/100\n", m.OverallScore))
		sb.WriteString(fmt.Sprintf("- **Lines of code:** %d\n", m.LinesOfCode))
		sb.WriteString(fmt.Sprintf("- **Complexity:** %d\n", m.Complexity))
		sb.WriteString(fmt.Sprintf("- **Maintainability:** %.1f\n\n", m.MaintainabilityIndex))

		if len(f.Result.Issues) == 0 {
			sb.WriteString("No issues found.\n\n")
			continue
		}

		for _, issue := range f.Result.Issues {
			sb.WriteString(fmt.Sprintf("#### %s (line %d)\n\n", issue.Title, issue.Line))
			sb.WriteString(fmt.Sprintf("- **Severity:** %s\n", issue.Severity))
			sb.WriteString(fmt.Sprintf("- **Category:** %s\n", issue.Category))
			sb.WriteString(fmt.Sprintf("- **Impact:** %s\n", issue.Impact))
			sb.WriteString(fmt.Sprintf("- **Description:** %s\n", issue.Description))
			sb.WriteString(fmt.Sprintf("- **Suggested fix:** %s\n", issue.SuggestedFix))
			if issue.CodeSnippet.Original != "" {
				sb.WriteString("\n```\n")
				sb.WriteString(issue.CodeSnippet.Original)
				if issue.CodeSnippet.Suggested != "" {
					sb.WriteString("\n// suggested:\n")
					sb.WriteString(issue.CodeSnippet.Suggested)
				}
				sb.WriteString("\n```\n")
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (g *Generator) generateText(r *Report) string {
	var sb strings.Builder

	for _, f := range r.Files {
		m := f.Result.Metrics
		sb.WriteString(fmt.Sprintf("%s (%s): score %d/100, %d issues\n",
			f.Path, f.Language, m.OverallScore, len(f.Result.Issues)))

		for _, issue := range f.Result.Issues {
			sb.WriteString(fmt.Sprintf("  %s:%d:%d [%s/%s] %s: %s\n",
				f.Path, issue.Line, issue.Column,
				issue.Severity, issue.Category,
				issue.Title, issue.SuggestedFix))
		}
	}

	sb.WriteString(fmt.Sprintf("\n%d files, %d issues, average score %.1f/100\n",
		r.Summary.FileCount, r.Summary.TotalIssues, r.Summary.AverageScore))

	return sb.String()
}

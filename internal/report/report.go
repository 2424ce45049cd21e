// Package report aggregates analysis results over a set of files and
// renders them in the CLI output formats.
package report

import (
	"time"

	"github.com/code-mentor/analysis/internal/domain"
)

// FileResult pairs one analyzed file with its result.
type FileResult struct {
	Path     string                 `json:"path"`
	Language string                 `json:"language"`
	Result   *domain.AnalysisResult `json:"result"`
}

// Report is the complete CLI analysis output.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Files       []FileResult `json:"files"`
	Summary     Summary      `json:"summary"`
}

// Summary contains statistics aggregated across all analyzed files.
type Summary struct {
	FileCount    int                     `json:"file_count"`
	TotalIssues  int                     `json:"total_issues"`
	BySeverity   map[domain.Severity]int `json:"by_severity"`
	ByCategory   map[domain.Category]int `json:"by_category"`
	AverageScore float64                 `json:"average_score"`
}

// Build assembles a report with aggregated summary statistics.
func Build(files []FileResult) *Report {
	summary := Summary{
		FileCount:  len(files),
		BySeverity: make(map[domain.Severity]int),
		ByCategory: make(map[domain.Category]int),
	}

	scoreSum := 0
	for _, f := range files {
		summary.TotalIssues += len(f.Result.Issues)
		scoreSum += f.Result.Metrics.OverallScore
		for _, issue := range f.Result.Issues {
			summary.BySeverity[issue.Severity]++
			summary.ByCategory[issue.Category]++
		}
	}

	if len(files) > 0 {
		summary.AverageScore = float64(scoreSum) / float64(len(files))
	}

	return &Report{
		GeneratedAt: time.Now().UTC(),
		Files:       files,
		Summary:     summary,
	}
}

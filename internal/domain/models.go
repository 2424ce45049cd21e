// Package domain contains the core domain models and types.
// These models represent the analysis contracts and are independent
// of any infrastructure concerns.
package domain

import "time"

// Severity classifies how urgent an issue is, ordered by decreasing
// urgency: error > warning > info > suggestion.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeverityInfo       Severity = "info"
	SeveritySuggestion Severity = "suggestion"
)

// IsValid checks if the severity value is one of the allowed values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo, SeveritySuggestion:
		return true
	default:
		return false
	}
}

// Category groups issues by topic. Downstream consumers use the category
// distribution to derive learning recommendations.
type Category string

const (
	CategorySyntax          Category = "syntax"
	CategoryStyle           Category = "style"
	CategoryPerformance     Category = "performance"
	CategorySecurity        Category = "security"
	CategoryMaintainability Category = "maintainability"
	CategoryBestPractice    Category = "best-practice"
)

// IsValid checks if the category value is one of the allowed values.
func (c Category) IsValid() bool {
	switch c {
	case CategorySyntax, CategoryStyle, CategoryPerformance,
		CategorySecurity, CategoryMaintainability, CategoryBestPractice:
		return true
	default:
		return false
	}
}

// Impact describes the consequence magnitude of an issue. It is independent
// of Severity: severity is about the kind of problem found, impact is about
// how much it matters if left unfixed.
type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

// IsValid checks if the impact value is one of the allowed values.
func (i Impact) IsValid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return true
	default:
		return false
	}
}

// CodeSnippet holds a best-effort original/suggested pair of code fragments.
// Suggested may be empty when no safe rewrite is derivable.
type CodeSnippet struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
}

// Issue represents one detected code problem.
type Issue struct {
	// Line and Column are the 1-based source position. Both default to 1
	// when the exact position is unknown.
	Line   int `json:"line"`
	Column int `json:"column"`

	Severity Severity `json:"severity"`
	Category Category `json:"category"`

	// Title is a short identification of the problem.
	Title string `json:"title"`

	// Description is the long form, possibly carrying runtime-computed
	// values such as a measured complexity number.
	Description string `json:"description"`

	// SuggestedFix is a short remediation instruction.
	SuggestedFix string `json:"suggestedFix"`

	CodeSnippet CodeSnippet `json:"codeSnippet"`

	Impact Impact `json:"impact"`
}

// Metrics holds aggregate scalar measures for one analyzed snippet.
type Metrics struct {
	// LinesOfCode counts non-blank lines.
	LinesOfCode int `json:"linesOfCode"`

	// Complexity is a keyword-frequency heuristic, always in [1,20].
	Complexity int `json:"complexity"`

	// MaintainabilityIndex is in [0,100], higher is better.
	MaintainabilityIndex float64 `json:"maintainabilityIndex"`

	// TechnicalDebt is the amount by which complexity exceeds the
	// comfortable threshold, zero for simple snippets.
	TechnicalDebt int `json:"technicalDebt"`

	// OverallScore is in [0,100], derived from the issue list by
	// severity-weighted penalties.
	OverallScore int `json:"overallScore"`
}

// AnalysisResult is the complete output of one analysis run. It is created
// fresh per invocation and owned by the caller; no analyzer-internal state
// escapes through it.
type AnalysisResult struct {
	Issues  []Issue `json:"issues"`
	Metrics Metrics `json:"metrics"`
}

// AnalyzeRequest represents an incoming code analysis request.
type AnalyzeRequest struct {
	// Code is the source text to analyze. May be empty or not valid code.
	Code string `json:"code"`

	// Language is a free-form, case-insensitive language tag. Tags without
	// a dedicated analyzer fall back to the generic analyzer.
	Language string `json:"language"`
}

// AnalyzeResponse wraps the analysis result with request metadata.
type AnalyzeResponse struct {
	// Success indicates whether the request was processed.
	Success bool `json:"success"`

	// Result contains the analysis result if successful.
	Result *AnalysisResult `json:"result,omitempty"`

	// Error contains error details if the request could not be processed.
	Error string `json:"error,omitempty"`

	// Language is the language tag the analysis actually ran with.
	Language string `json:"language,omitempty"`

	// Truncated is set when the submission exceeded the size limit and
	// only a prefix was analyzed.
	Truncated bool `json:"truncated,omitempty"`

	// ProcessedAt is the timestamp when the analysis was completed.
	ProcessedAt time.Time `json:"processed_at"`
}

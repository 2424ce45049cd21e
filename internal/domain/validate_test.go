package domain

import (
	"errors"
	"testing"
)

func validIssue() Issue {
	return Issue{
		Line:         1,
		Column:       1,
		Severity:     SeverityWarning,
		Category:     CategoryStyle,
		Title:        "Some issue",
		Description:  "Something is off",
		SuggestedFix: "Fix it",
		Impact:       ImpactLow,
	}
}

func TestIssue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Issue)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Issue) {}},
		{name: "missing title", mutate: func(i *Issue) { i.Title = "" }, wantErr: true},
		{name: "missing description", mutate: func(i *Issue) { i.Description = "" }, wantErr: true},
		{name: "missing fix", mutate: func(i *Issue) { i.SuggestedFix = "" }, wantErr: true},
		{name: "unknown severity", mutate: func(i *Issue) { i.Severity = "fatal" }, wantErr: true},
		{name: "unknown category", mutate: func(i *Issue) { i.Category = "cosmic" }, wantErr: true},
		{name: "unknown impact", mutate: func(i *Issue) { i.Impact = "extreme" }, wantErr: true},
		{name: "zero line", mutate: func(i *Issue) { i.Line = 0 }, wantErr: true},
		{name: "zero column", mutate: func(i *Issue) { i.Column = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := validIssue()
			tt.mutate(&issue)

			err := issue.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidIssue) {
				t.Errorf("error = %v, want ErrInvalidIssue in chain", err)
			}
		})
	}
}

func TestAnalysisResult_Validate(t *testing.T) {
	valid := AnalysisResult{
		Issues: []Issue{validIssue()},
		Metrics: Metrics{
			LinesOfCode:          10,
			Complexity:           3,
			MaintainabilityIndex: 93.0,
			OverallScore:         90,
		},
	}

	tests := []struct {
		name    string
		mutate  func(*AnalysisResult)
		wantErr bool
	}{
		{name: "valid", mutate: func(*AnalysisResult) {}},
		{name: "bad issue", mutate: func(r *AnalysisResult) { r.Issues[0].Title = "" }, wantErr: true},
		{name: "complexity below range", mutate: func(r *AnalysisResult) { r.Metrics.Complexity = 0 }, wantErr: true},
		{name: "complexity above range", mutate: func(r *AnalysisResult) { r.Metrics.Complexity = 21 }, wantErr: true},
		{name: "negative maintainability", mutate: func(r *AnalysisResult) { r.Metrics.MaintainabilityIndex = -1 }, wantErr: true},
		{name: "score above range", mutate: func(r *AnalysisResult) { r.Metrics.OverallScore = 101 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valid
			result.Issues = append([]Issue(nil), valid.Issues...)
			tt.mutate(&result)

			err := result.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnums_IsValid(t *testing.T) {
	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityInfo, SeveritySuggestion} {
		if !s.IsValid() {
			t.Errorf("Severity %q should be valid", s)
		}
	}
	if Severity("critical").IsValid() {
		t.Error("unknown severity should be invalid")
	}

	for _, c := range []Category{CategorySyntax, CategoryStyle, CategoryPerformance, CategorySecurity, CategoryMaintainability, CategoryBestPractice} {
		if !c.IsValid() {
			t.Errorf("Category %q should be valid", c)
		}
	}
	if Category("misc").IsValid() {
		t.Error("unknown category should be invalid")
	}

	for _, i := range []Impact{ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical} {
		if !i.IsValid() {
			t.Errorf("Impact %q should be valid", i)
		}
	}
	if Impact("none").IsValid() {
		t.Error("unknown impact should be invalid")
	}
}

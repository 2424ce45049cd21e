package domain

import "fmt"

// Validate checks the structural invariant every emitted issue must hold:
// non-empty title, description and suggested fix, and exactly one value from
// each of the severity, category and impact enumerations.
func (i *Issue) Validate() error {
	if i.Title == "" {
		return WrapError("validate_title",
			fmt.Errorf("%w: title is required", ErrInvalidIssue))
	}

	if i.Description == "" {
		return WrapError("validate_description",
			fmt.Errorf("%w: description is required", ErrInvalidIssue))
	}

	if i.SuggestedFix == "" {
		return WrapError("validate_suggested_fix",
			fmt.Errorf("%w: suggestedFix is required", ErrInvalidIssue))
	}

	if !i.Severity.IsValid() {
		return WrapError("validate_severity",
			fmt.Errorf("%w: unknown severity %q", ErrInvalidIssue, i.Severity))
	}

	if !i.Category.IsValid() {
		return WrapError("validate_category",
			fmt.Errorf("%w: unknown category %q", ErrInvalidIssue, i.Category))
	}

	if !i.Impact.IsValid() {
		return WrapError("validate_impact",
			fmt.Errorf("%w: unknown impact %q", ErrInvalidIssue, i.Impact))
	}

	if i.Line < 1 || i.Column < 1 {
		return WrapError("validate_position",
			fmt.Errorf("%w: position must be 1-based, got %d:%d", ErrInvalidIssue, i.Line, i.Column))
	}

	return nil
}

// Validate checks that an analysis result is structurally sound: every issue
// passes its own validation and every metric is inside its documented range.
func (r *AnalysisResult) Validate() error {
	for idx := range r.Issues {
		if err := r.Issues[idx].Validate(); err != nil {
			return WrapError(fmt.Sprintf("issue[%d]", idx), err)
		}
	}

	m := r.Metrics
	if m.Complexity < 1 || m.Complexity > 20 {
		return WrapError("validate_metrics",
			fmt.Errorf("complexity %d outside [1,20]", m.Complexity))
	}
	if m.MaintainabilityIndex < 0 || m.MaintainabilityIndex > 100 {
		return WrapError("validate_metrics",
			fmt.Errorf("maintainability index %.2f outside [0,100]", m.MaintainabilityIndex))
	}
	if m.OverallScore < 0 || m.OverallScore > 100 {
		return WrapError("validate_metrics",
			fmt.Errorf("overall score %d outside [0,100]", m.OverallScore))
	}

	return nil
}

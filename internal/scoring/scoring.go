// Package scoring maps issue lists to 0-100 quality scores by
// severity-weighted penalties.
package scoring

import "github.com/code-mentor/analysis/internal/domain"

// penalties is the authoritative scale for AnalysisResult metrics. It is
// intentionally distinct from storedPenalties below; do not unify the two.
var penalties = map[domain.Severity]int{
	domain.SeverityError:      20,
	domain.SeverityWarning:    10,
	domain.SeverityInfo:       5,
	domain.SeveritySuggestion: 2,
}

// storedPenalties is the scale persisted review records use when they
// recompute their own score. Both scales are fixed policy for their
// respective consumers.
var storedPenalties = map[domain.Severity]int{
	domain.SeverityError:      15,
	domain.SeverityWarning:    10,
	domain.SeverityInfo:       5,
	domain.SeveritySuggestion: 2,
}

// Score computes the overall quality score for an issue list: start at 100,
// subtract a fixed penalty per issue by severity, floor at 0. The result is
// a plain sum, so issue order never affects it.
func Score(issues []domain.Issue) int {
	return apply(issues, penalties)
}

// RecomputeStored computes the secondary score used by the persistence
// collaborator's self-check. It is never used for
// AnalysisResult.Metrics.OverallScore, which Score owns.
func RecomputeStored(issues []domain.Issue) int {
	return apply(issues, storedPenalties)
}

func apply(issues []domain.Issue, scale map[domain.Severity]int) int {
	score := 100
	for i := range issues {
		score -= scale[issues[i].Severity]
	}
	if score < 0 {
		return 0
	}
	return score
}

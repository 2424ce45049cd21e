// Package scoring provides unit tests for the scoring tables.
package scoring

import (
	"math/rand"
	"testing"

	"github.com/code-mentor/analysis/internal/domain"
)

func issueWith(sev domain.Severity) domain.Issue {
	return domain.Issue{Severity: sev}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		issues []domain.Issue
		want   int
	}{
		{name: "no issues", issues: nil, want: 100},
		{name: "one error", issues: []domain.Issue{issueWith(domain.SeverityError)}, want: 80},
		{name: "one warning", issues: []domain.Issue{issueWith(domain.SeverityWarning)}, want: 90},
		{name: "one info", issues: []domain.Issue{issueWith(domain.SeverityInfo)}, want: 95},
		{name: "one suggestion", issues: []domain.Issue{issueWith(domain.SeveritySuggestion)}, want: 98},
		{
			name: "mixed",
			issues: []domain.Issue{
				issueWith(domain.SeverityError),
				issueWith(domain.SeverityWarning),
				issueWith(domain.SeverityInfo),
				issueWith(domain.SeveritySuggestion),
			},
			want: 63,
		},
		{
			name: "floors at zero",
			issues: []domain.Issue{
				issueWith(domain.SeverityError), issueWith(domain.SeverityError),
				issueWith(domain.SeverityError), issueWith(domain.SeverityError),
				issueWith(domain.SeverityError), issueWith(domain.SeverityError),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.issues); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecomputeStored(t *testing.T) {
	// The stored-record table penalizes errors 15, not 20. The two tables
	// must stay distinct.
	issues := []domain.Issue{issueWith(domain.SeverityError)}
	if got := RecomputeStored(issues); got != 85 {
		t.Errorf("RecomputeStored() = %d, want 85", got)
	}
	if Score(issues) == RecomputeStored(issues) {
		t.Error("primary and stored tables must differ for error-severity issues")
	}
}

// Shuffling the issue list must never change the score.
func TestScoreOrderIndependence(t *testing.T) {
	severities := []domain.Severity{
		domain.SeverityError, domain.SeverityWarning,
		domain.SeverityInfo, domain.SeveritySuggestion,
	}

	rng := rand.New(rand.NewSource(1))
	issues := make([]domain.Issue, 12)
	for i := range issues {
		issues[i] = issueWith(severities[rng.Intn(len(severities))])
	}

	want := Score(issues)
	for trial := 0; trial < 20; trial++ {
		rng.Shuffle(len(issues), func(i, j int) {
			issues[i], issues[j] = issues[j], issues[i]
		})
		if got := Score(issues); got != want {
			t.Fatalf("Score() = %d after shuffle, want %d", got, want)
		}
	}
}

// Adding an error-severity issue never increases the score, and the score
// never drops below zero however many issues pile up.
func TestScoreMonotonicity(t *testing.T) {
	var issues []domain.Issue
	prev := Score(issues)

	for i := 0; i < 30; i++ {
		issues = append(issues, issueWith(domain.SeverityError))
		got := Score(issues)
		if got > prev {
			t.Fatalf("score increased from %d to %d after adding an error", prev, got)
		}
		if got < 0 {
			t.Fatalf("score went negative: %d", got)
		}
		prev = got
	}
}

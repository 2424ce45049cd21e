// Package source provides unit tests for submission preprocessing.
package source

import "testing"

func TestPrepare(t *testing.T) {
	tests := []struct {
		name          string
		maxSize       int
		input         string
		want          string
		wantTruncated bool
	}{
		{name: "passthrough", maxSize: 100, input: "abc", want: "abc"},
		{name: "crlf normalized", maxSize: 100, input: "a\r\nb", want: "a\nb"},
		{name: "lone cr normalized", maxSize: 100, input: "a\rb", want: "a\nb"},
		{name: "truncated", maxSize: 3, input: "abcdef", want: "abc", wantTruncated: true},
		{name: "no limit", maxSize: 0, input: "abcdef", want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := New(tt.maxSize).Prepare(tt.input)
			if got != tt.want {
				t.Errorf("Prepare() = %q, want %q", got, tt.want)
			}
			if stats.Truncated != tt.wantTruncated {
				t.Errorf("Truncated = %v, want %v", stats.Truncated, tt.wantTruncated)
			}
			if stats.OriginalSize != len(tt.input) {
				t.Errorf("OriginalSize = %d, want %d", stats.OriginalSize, len(tt.input))
			}
			if stats.AnalyzedSize != len(got) {
				t.Errorf("AnalyzedSize = %d, want %d", stats.AnalyzedSize, len(got))
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	p := New(100)

	if !p.IsEmpty("") || !p.IsEmpty("  \n\t") {
		t.Error("whitespace-only text should be empty")
	}
	if p.IsEmpty("x") {
		t.Error("non-blank text should not be empty")
	}
}

func TestLines(t *testing.T) {
	if got := len(Lines("a\nb\nc")); got != 3 {
		t.Errorf("Lines() returned %d lines, want 3", got)
	}
	if got := len(Lines("")); got != 1 {
		t.Errorf("Lines(\"\") returned %d lines, want 1", got)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.line); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// Package source provides submission preprocessing for code analysis:
// newline normalization, line splitting and size capping.
package source

import "strings"

// Prep handles preprocessing of submitted source text.
type Prep struct {
	maxSize int
}

// New creates a new Prep with the given size limit in bytes.
// A limit of zero or less disables truncation.
func New(maxSize int) *Prep {
	return &Prep{maxSize: maxSize}
}

// PrepStats returns statistics about the preprocessing.
type PrepStats struct {
	OriginalSize int
	AnalyzedSize int
	Truncated    bool
}

// Prepare normalizes line endings and enforces the size limit. Analysis
// always runs on the returned text so that reported line numbers match
// what was actually scanned.
func (p *Prep) Prepare(text string) (string, PrepStats) {
	stats := PrepStats{OriginalSize: len(text)}

	text = Normalize(text)

	if p.maxSize > 0 && len(text) > p.maxSize {
		text = text[:p.maxSize]
		stats.Truncated = true
	}

	stats.AnalyzedSize = len(text)
	return text, stats
}

// IsEmpty checks if the text is empty or whitespace only.
func (p *Prep) IsEmpty(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsTooLarge checks if the text exceeds the maximum size.
func (p *Prep) IsTooLarge(text string) bool {
	return p.maxSize > 0 && len(text) > p.maxSize
}

// Normalize converts CRLF and lone CR line endings to LF so that
// line-oriented checks see one line per editor line.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Lines splits text into lines without the trailing newline. The empty
// string yields a single empty line, matching strings.Split semantics;
// callers that only care about content should pair this with IsBlank.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// IsBlank reports whether a line has no content after trimming whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

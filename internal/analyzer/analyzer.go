// Package analyzer provides the per-language static analyzers and the
// registry that dispatches a language tag to one of them.
//
// Two strategies live behind the same interface: the JavaScript analyzer
// walks a parsed syntax tree, everything else scans raw lines. Analyzers are
// pure functions of their input and never fail outward; malformed input
// degrades to the issues found so far, or to a single syntax issue for a
// failed parse.
package analyzer

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/code-mentor/analysis/internal/domain"
)

// Analyzer is the single capability every language analyzer implements.
type Analyzer interface {
	// Name returns the language tag this analyzer is registered under.
	Name() string

	// Analyze scans source text and returns the detected issues.
	Analyze(src string) []domain.Issue
}

// Fallback is the tag of the analyzer used for unknown languages.
const Fallback = "generic"

// Registry maps lowercase language tags to analyzers. Unknown tags resolve
// to the generic fallback, so lookups never fail.
type Registry struct {
	analyzers map[string]Analyzer
	logger    *zap.Logger
}

// NewRegistry creates a registry with the fixed default set of analyzers:
// javascript, python, java, cpp and generic.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{
		analyzers: make(map[string]Analyzer),
		logger:    logger.Named("analyzer_registry"),
	}

	r.Register(NewJavaScript())
	r.Register(NewPython())
	r.Register(NewJava())
	r.Register(NewCPP())
	r.Register(NewGeneric())

	return r
}

// Register adds an analyzer under its own name. Registering a second
// analyzer with the same name replaces the first.
func (r *Registry) Register(a Analyzer) {
	key := strings.ToLower(a.Name())
	r.analyzers[key] = a
	r.logger.Debug("analyzer registered", zap.String("language", key))
}

// Lookup resolves a language tag to an analyzer, case-insensitively.
// Tags without a dedicated analyzer resolve to the generic fallback.
func (r *Registry) Lookup(tag string) Analyzer {
	key := strings.ToLower(strings.TrimSpace(tag))
	if a, ok := r.analyzers[key]; ok {
		return a
	}

	r.logger.Debug("no analyzer for language, using fallback",
		zap.String("language", key),
	)
	return r.analyzers[Fallback]
}

// Languages returns the sorted tags of all registered analyzers.
func (r *Registry) Languages() []string {
	tags := make([]string, 0, len(r.analyzers))
	for tag := range r.analyzers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

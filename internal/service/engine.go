// Package service contains the analysis orchestrator.
package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/code-mentor/analysis/internal/analyzer"
	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/internal/metrics"
	"github.com/code-mentor/analysis/internal/scoring"
)

// Degraded defaults returned when analysis fails unexpectedly. Fixed policy:
// they are not recomputed from the synthetic issue through the normal
// scoring path.
const (
	degradedComplexity      = 1
	degradedMaintainability = 50.0
	degradedScore           = 30
)

// Engine orchestrates one analysis run: metric computation, analyzer
// dispatch and scoring. Every call is independent and side-effect-free
// apart from best-effort logging, so a single Engine may be shared across
// goroutines without coordination.
type Engine struct {
	registry *analyzer.Registry
	logger   *zap.Logger
}

// NewEngine creates an Engine on top of an analyzer registry.
func NewEngine(registry *analyzer.Registry, logger *zap.Logger) *Engine {
	return &Engine{
		registry: registry,
		logger:   logger.Named("engine"),
	}
}

// Analyze runs the full pipeline for one submission and never fails
// outward: any panic inside metric computation or an analyzer degrades to
// a structurally valid result with one synthetic syntax issue and fixed
// fallback metrics. The language tag is free-form and case-insensitive;
// unknown tags use the generic analyzer.
func (e *Engine) Analyze(src, language string) (result *domain.AnalysisResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("analysis panicked, returning degraded result",
				zap.Any("panic", r),
				zap.String("language", language),
				zap.Int("source_size", len(src)),
			)
			result = e.degraded(src)
		}
	}()

	a := e.registry.Lookup(language)

	issues := a.Analyze(src)
	if issues == nil {
		issues = []domain.Issue{}
	}

	complexity := metrics.Complexity(src)
	m := domain.Metrics{
		LinesOfCode:          metrics.CountLines(src),
		Complexity:           complexity,
		MaintainabilityIndex: metrics.MaintainabilityIndex(src),
		TechnicalDebt:        metrics.TechnicalDebt(complexity),
		OverallScore:         scoring.Score(issues),
	}

	e.logger.Debug("analysis completed",
		zap.String("analyzer", a.Name()),
		zap.Int("issues", len(issues)),
		zap.Int("score", m.OverallScore),
		zap.Duration("duration", time.Since(start)),
	)

	return &domain.AnalysisResult{Issues: issues, Metrics: m}
}

// degraded builds the fallback result. Line count cannot fail and is
// computed normally; everything else takes the fixed defaults.
func (e *Engine) degraded(src string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Issues: []domain.Issue{{
			Line:         1,
			Column:       1,
			Severity:     domain.SeverityError,
			Category:     domain.CategorySyntax,
			Title:        "Analysis failed",
			Description:  "The submission could not be analyzed; it may contain constructs the analyzer does not handle",
			SuggestedFix: "Check the source for syntax errors and resubmit",
			Impact:       domain.ImpactCritical,
		}},
		Metrics: domain.Metrics{
			LinesOfCode:          metrics.CountLines(src),
			Complexity:           degradedComplexity,
			MaintainabilityIndex: degradedMaintainability,
			TechnicalDebt:        0,
			OverallScore:         degradedScore,
		},
	}
}

// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/code-mentor/analysis/internal/config"
	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/internal/service"
	"github.com/code-mentor/analysis/pkg/source"
)

// AnalyzeHandler handles code analysis requests.
type AnalyzeHandler struct {
	engine *service.Engine
	prep   *source.Prep
	cfg    config.AnalysisConfig
	logger *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(engine *service.Engine, cfg config.AnalysisConfig, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		engine: engine,
		prep:   source.New(cfg.MaxCodeSize),
		cfg:    cfg,
		logger: logger.Named("analyze_handler"),
	}
}

// Handle processes POST /api/v1/analyze requests. Empty code is a valid
// submission and analyzes to a perfect score; oversize submissions are
// truncated with a warning rather than rejected.
func (h *AnalyzeHandler) Handle(c *gin.Context) {
	startTime := time.Now()
	logger := h.logger.With(zap.String("request_id", c.GetString(requestIDKey)))

	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, domain.AnalyzeResponse{
			Success:     false,
			Error:       "Invalid request body: " + err.Error(),
			ProcessedAt: time.Now(),
		})
		return
	}

	language := req.Language
	if language == "" {
		language = h.cfg.DefaultLanguage
	}

	code, stats := h.prep.Prepare(req.Code)
	if stats.Truncated {
		logger.Warn("submission truncated",
			zap.Int("original_size", stats.OriginalSize),
			zap.Int("analyzed_size", stats.AnalyzedSize),
		)
	}

	result := h.engine.Analyze(code, language)

	logger.Info("analysis completed",
		zap.String("language", language),
		zap.Int("issues", len(result.Issues)),
		zap.Int("score", result.Metrics.OverallScore),
		zap.Duration("duration", time.Since(startTime)),
	)

	c.JSON(http.StatusOK, domain.AnalyzeResponse{
		Success:     true,
		Result:      result,
		Language:    language,
		Truncated:   stats.Truncated,
		ProcessedAt: time.Now(),
	})
}

// LanguagesHandler lists the registered analyzer languages.
type LanguagesHandler struct {
	languages []string
}

// NewLanguagesHandler creates a new LanguagesHandler.
func NewLanguagesHandler(languages []string) *LanguagesHandler {
	return &LanguagesHandler{languages: languages}
}

// Handle processes GET /api/v1/languages requests.
func (h *LanguagesHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.languages})
}

// HealthHandler handles health check requests.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Handle processes GET /health requests.
func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadyHandler handles readiness check requests. The analysis engine has no
// external dependencies, so readiness follows liveness.
type ReadyHandler struct{}

// NewReadyHandler creates a new ReadyHandler.
func NewReadyHandler() *ReadyHandler {
	return &ReadyHandler{}
}

// Handle processes GET /ready requests.
func (h *ReadyHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Code review analysis service - server entry point.
//
// Initializes the analyzer registry, the analysis engine and the HTTP
// server, then serves until interrupted.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/code-mentor/analysis/internal/analyzer"
	"github.com/code-mentor/analysis/internal/config"
	"github.com/code-mentor/analysis/internal/handler"
	"github.com/code-mentor/analysis/internal/logger"
	"github.com/code-mentor/analysis/internal/service"
)

func main() {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	isDev := os.Getenv("GIN_MODE") != "release"

	zapLogger, err := logger.New(isDev)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting code review analysis service",
		zap.Bool("development", isDev),
	)

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	zapLogger.Info("configuration loaded",
		zap.String("port", cfg.Server.Port),
		zap.String("default_language", cfg.Analysis.DefaultLanguage),
		zap.Int("max_code_size", cfg.Analysis.MaxCodeSize),
	)

	// Wire the analysis pipeline
	registry := analyzer.NewRegistry(zapLogger)
	engine := service.NewEngine(registry, zapLogger)

	analyzeHandler := handler.NewAnalyzeHandler(engine, cfg.Analysis, zapLogger)
	languagesHandler := handler.NewLanguagesHandler(registry.Languages())
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadyHandler()

	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(handler.RecoveryMiddleware(zapLogger))
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.LoggingMiddleware(zapLogger))
	router.Use(handler.CORSMiddleware())

	router.GET("/health", healthHandler.Handle)
	router.GET("/ready", readyHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", analyzeHandler.Handle)
		v1.GET("/languages", languagesHandler.Handle)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}

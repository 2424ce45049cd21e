package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/code-mentor/analysis/internal/analyzer"
	"github.com/code-mentor/analysis/internal/service"
)

// Handler handles CLI commands.
type Handler struct {
	cfg        *Config
	configPath string
	rootCmd    *cobra.Command
	logger     *zap.Logger
	registry   *analyzer.Registry
	engine     *service.Engine
}

// New creates a new CLI handler.
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:   "codereview",
		Short: "Static code review and scoring",
		Long:  "Analyzes source files for common issues and computes quality metrics",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.initialize()
		},
	}

	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")

	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.languagesCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) initialize() error {
	cfg, err := LoadConfig(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	h.cfg = cfg

	logger, err := newCLILogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	h.logger = logger

	h.registry = analyzer.NewRegistry(logger)
	h.engine = service.NewEngine(h.registry, logger)

	return nil
}

// newCLILogger builds a console logger at the configured level. CLI output
// goes to stdout; logs stay on stderr.
func newCLILogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}

// Execute runs the CLI.
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point.
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/code-mentor/analysis/internal/report"
	"github.com/code-mentor/analysis/pkg/langdetect"
	"github.com/code-mentor/analysis/pkg/source"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		language   string
		format     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze source files",
		Long:  "Runs the static analyzers against the given files, or stdin when no files are given, and prints a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := h.analyzeInputs(args, language)
			if err != nil {
				return err
			}

			rep := report.Build(files)

			outputFormat := format
			if outputFormat == "" {
				outputFormat = h.cfg.DefaultFormat
			}

			output, err := report.NewGenerator().Generate(rep, outputFormat)
			if err != nil {
				return fmt.Errorf("generating report: %w", err)
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Report written to %s\n", outputFile)
				return nil
			}

			fmt.Println(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language tag override for all inputs")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, text)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

// analyzeInputs analyzes each named file, or stdin when no files (or "-")
// are given. The language is resolved per file: explicit flag, then file
// extension, then the configured default.
func (h *Handler) analyzeInputs(args []string, language string) ([]report.FileResult, error) {
	detector := langdetect.New().WithOverrides(h.cfg.Extensions)
	prep := source.New(h.cfg.MaxCodeSize)

	if len(args) == 0 {
		args = []string{"-"}
	}

	var files []report.FileResult
	for _, path := range args {
		var (
			code []byte
			err  error
			name = path
		)

		if path == "-" {
			code, err = io.ReadAll(os.Stdin)
			name = "(stdin)"
		} else {
			code, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		lang := language
		if lang == "" {
			lang = detector.Detect(path)
		}
		if lang == "" {
			lang = h.cfg.DefaultLanguage
		}

		text, stats := prep.Prepare(string(code))
		if stats.Truncated {
			h.logger.Warn("input truncated",
				zap.String("file", name),
				zap.Int("original_size", stats.OriginalSize),
			)
		}

		files = append(files, report.FileResult{
			Path:     name,
			Language: lang,
			Result:   h.engine.Analyze(text, lang),
		})
	}

	return files, nil
}

func (h *Handler) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported language tags",
		Run: func(cmd *cobra.Command, args []string) {
			for _, lang := range h.registry.Languages() {
				fmt.Println(lang)
			}
		},
	}
}

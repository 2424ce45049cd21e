package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridable at build time with
// -ldflags "-X github.com/code-mentor/analysis/internal/cli.Version=...".
var Version = "dev"

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codereview %s\n", Version)
		},
	}
}

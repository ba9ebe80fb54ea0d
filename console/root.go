package console

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the curp command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curp",
		Short: "Lexical and syntactic analyzer for Mexican CURP codes",
		Long: `curp splits a CURP into its 13 fields and checks each one against the
format rules: names, birth date, sex, state of birth and consonants.

Examples:
  curp analyze GOMC800101HDFLRS09
  curp analyze GOMC800101HDFLRS09 gomc800230hdflrs09 -o yaml
  curp states
  curp serve --env-file .env`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newStatesCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

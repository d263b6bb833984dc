package cli

import (
	"github.com/spf13/cobra"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/output"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List the full program catalog",
	Long: `Programs lists every program in the catalog without any filtering.

Examples:
  loket programs           # List all programs
  loket programs -o json   # Output as JSON`,
	RunE: runPrograms,
}

func init() {
	rootCmd.AddCommand(programsCmd)
}

func runPrograms(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	programs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, programs)
}

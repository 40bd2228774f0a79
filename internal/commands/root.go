// Package commands wires the contavel CLI: branch initialization, account
// opening, deposits, transfers, statements and the settlement daemon.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contavel-dev/contavel/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "contavel",
		Short:   "Single-branch banking ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "branch data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newOpenCommand())
	rootCmd.AddCommand(newDepositCommand())
	rootCmd.AddCommand(newTransferCommand())
	rootCmd.AddCommand(newStatementCommand())
	rootCmd.AddCommand(newSchedulerCommand())

	return rootCmd
}

func dataDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}

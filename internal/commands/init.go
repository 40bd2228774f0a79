package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contavel-dev/contavel/internal/config"
	"github.com/contavel-dev/contavel/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var branch string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a branch data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}
			return runInit(cmd.OutOrStdout(), dir, name, branch)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bank name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&branch, "branch", "0001", "branch code")

	return cmd
}

func runInit(out io.Writer, dir, name, branch string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	cfg := config.Default(name, branch)
	if err := config.Save(filepath.Join(dir, config.Filename), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty books so the first open/deposit finds a valid data dir.
	if err := store.New().Save(dir); err != nil {
		return fmt.Errorf("writing books: %w", err)
	}

	fmt.Fprintf(out, "Initialized %s branch %s at %s\n", name, branch, dir)
	return nil
}

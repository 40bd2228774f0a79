package commands

import (
	"github.com/spf13/cobra"

	"github.com/contavel-dev/contavel/internal/statement"
	"github.com/contavel-dev/contavel/internal/store"
)

func newStatementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statement <account>",
		Short: "Print an account's statement, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}

			s, err := store.Load(dir)
			if err != nil {
				return err
			}
			a, err := s.Get(args[0])
			if err != nil {
				return err
			}
			return statement.Write(cmd.OutOrStdout(), a.History().Transactions())
		},
	}
	return cmd
}

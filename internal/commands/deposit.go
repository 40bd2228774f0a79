package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contavel-dev/contavel/internal/store"
	"github.com/contavel-dev/contavel/internal/validate"
)

func newDepositCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit into an account, subject to the tier ceiling",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}
			return runDeposit(cmd.OutOrStdout(), dir, args[0], args[1])
		},
	}
	return cmd
}

func runDeposit(out io.Writer, dir, number, raw string) error {
	s, err := store.Load(dir)
	if err != nil {
		return err
	}
	a, err := s.Get(number)
	if err != nil {
		return err
	}

	ok, err := validate.TransactionInput(raw, validate.Deposit, a.Tier(), a)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("deposit rejected: amount must be a positive whole value")
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	a.Deposit(decimal.NewFromInt(int64(value)))

	if err := s.Save(dir); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deposited %d into %s (balance: %s)\n", value, number, a.Balance().String())
	return nil
}

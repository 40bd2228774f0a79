package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contavel-dev/contavel/internal/account"
	"github.com/contavel-dev/contavel/internal/dates"
	"github.com/contavel-dev/contavel/internal/store"
	"github.com/contavel-dev/contavel/internal/validate"
)

func newTransferCommand() *cobra.Command {
	var onDate string

	cmd := &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Transfer between accounts, immediately or on a scheduled date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}
			return runTransfer(cmd.OutOrStdout(), dir, args[0], args[1], args[2], onDate)
		},
	}

	cmd.Flags().StringVar(&onDate, "on", "", "settle on this date (DD/MM/YYYY) instead of now")

	return cmd
}

func runTransfer(out io.Writer, dir, from, to, raw, onDate string) error {
	s, err := store.Load(dir)
	if err != nil {
		return err
	}
	origin, err := s.Get(from)
	if err != nil {
		return err
	}
	dest, err := s.Get(to)
	if err != nil {
		return err
	}

	if onDate == "" {
		ok, err := validate.TransactionInput(raw, validate.Transfer, origin.Tier(), origin)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("transfer rejected")
		}
	} else {
		ok, err := validate.ScheduledTransaction(raw, onDate, origin.Tier(), origin)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("scheduled transfer rejected: check the amount and date %q", onDate)
		}
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	intent := account.TransferIntent{
		Amount:      decimal.NewFromInt(int64(value)),
		Destination: dest,
	}

	today := dates.Today()
	if onDate == "" {
		txn, err := origin.Transfer(intent, today)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Transferred %s from %s to %s (%s)\n", txn.Amount.String(), from, to, txn.ID)
	} else {
		when, err := dates.Parse(onDate)
		if err != nil {
			return err
		}
		intent.ScheduledDate = &when
		txn, err := origin.ScheduleTransaction(intent, today)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Scheduled %s from %s to %s on %s (%s)\n", txn.Amount.String(), from, to, when, txn.ID)
	}

	return s.Save(dir)
}

package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contavel-dev/contavel/internal/clients"
	"github.com/contavel-dev/contavel/internal/config"
	"github.com/contavel-dev/contavel/internal/store"
	"github.com/contavel-dev/contavel/internal/tier"
)

func newOpenCommand() *cobra.Command {
	var name, email, cpf, phone, tierName string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open an account for a new client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}
			return runOpen(cmd.OutOrStdout(), dir, name, email, cpf, phone, tierName)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "client name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&email, "email", "", "client email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&cpf, "cpf", "", "client CPF, 000.000.000-00 (required)")
	_ = cmd.MarkFlagRequired("cpf")
	cmd.Flags().StringVar(&phone, "phone", "", "client phone, (11) 91234-5678 (required)")
	_ = cmd.MarkFlagRequired("phone")
	cmd.Flags().StringVar(&tierName, "tier", "", "account tier (defaults to the branch default)")

	return cmd
}

func runOpen(out io.Writer, dir, name, email, cpf, phone, tierName string) error {
	cfg, err := config.Load(filepath.Join(dir, config.Filename))
	if err != nil {
		return err
	}
	if tierName == "" {
		tierName = cfg.Bank.DefaultTier
	}
	t, ok := tier.Parse(tierName)
	if !ok {
		return fmt.Errorf("unknown tier %q", tierName)
	}

	owner, err := clients.New(name, email, cpf, phone)
	if err != nil {
		return fmt.Errorf("registering client: %w", err)
	}

	s, err := store.Load(dir)
	if err != nil {
		return err
	}
	a := s.Open(owner, t)
	if err := s.Save(dir); err != nil {
		return err
	}

	fmt.Fprintf(out, "Opened %s account %s for %s\n", t, a.Number(), owner.Name)
	return nil
}

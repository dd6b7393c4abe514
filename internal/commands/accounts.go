package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Create and list accounts",
	}

	cmd.AddCommand(newAccountsCreateCommand(opts), newAccountsListCommand(opts))
	return cmd
}

func newAccountsCreateCommand(opts *rootOptions) *cobra.Command {
	var name, kind, openingBalance string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := decimal.NewFromString(openingBalance)
			if err != nil {
				return fmt.Errorf("invalid --opening-balance %q: %w", openingBalance, err)
			}

			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			account, err := a.accounts.CreateAccount(cmd.Context(), name, kind, balance)
			if err != nil {
				return fmt.Errorf("creating account: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", account.ID, account.Name, account.Kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&kind, "kind", "checking", "checking, credit_card or investment")
	cmd.Flags().StringVar(&openingBalance, "opening-balance", "0", "opening balance")

	return cmd
}

func newAccountsListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts with their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			accounts, err := a.accounts.ListAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing accounts: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKIND\tBALANCE")
			for _, account := range accounts {
				balance, err := a.accounts.GetBalance(cmd.Context(), account.ID)
				if err != nil {
					return fmt.Errorf("balance for %s: %w", account.ID, err)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", account.ID, account.Name, account.Kind, balance.StringFixed(2))
			}
			return tw.Flush()
		},
	}
}

// openApp loads the config and wires the services for a one-shot command
func (o *rootOptions) openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(cfg, o.newLogger(cmd.ErrOrStderr(), cfg), prometheus.NewRegistry())
}

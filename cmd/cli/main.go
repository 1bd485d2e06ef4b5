// ledgerctl is the admin companion of the ledger server: it creates the
// schema, provisions the seed accounts, and prints statements for inspection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/amirasaad/ledger/infra"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	ledgersvc "github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "ledgerctl — schema, seed data, and statement inspection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newStatementCmd(),
	)

	return cmd
}

func openDB() (*gorm.DB, *config.App, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, nil, err
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the accounts and operations tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDB()
			if err != nil {
				return err
			}
			if err := infra.Migrate(db); err != nil {
				return err
			}
			color.Green("schema up to date")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Provision the seed accounts (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDB()
			if err != nil {
				return err
			}
			if err := infra.Seed(cmd.Context(), infrarepo.NewUoW(db)); err != nil {
				return err
			}
			for _, a := range infra.SeedAccounts {
				color.Green("account %d limit %d", a.ID, a.Limit)
			}
			return nil
		},
	}
}

func newStatementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statement <account_id>",
		Short: "Print the statement of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("account id must be an integer: %w", err)
			}

			db, cfg, err := openDB()
			if err != nil {
				return err
			}
			svc := ledgersvc.New(
				infrarepo.NewUoW(db),
				slog.Default(),
				ledgersvc.WithStatementSize(cfg.StatementSize),
			)

			st, err := svc.Statement(context.Background(), accountID)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Printf("account %d  balance %d  limit %d  (as of %s)\n",
				accountID, st.Balance, st.Limit, st.QueriedAt.Format("2006-01-02 15:04:05"))
			for _, op := range st.Operations {
				fmt.Printf("  %s  %s %6d  %s\n",
					op.OccurredAt.Format("2006-01-02 15:04:05"), op.Kind, op.Amount, op.Description)
			}
			return nil
		},
	}
}

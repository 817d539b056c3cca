// Command accrue is the maintenance CLI for the Accrue ledger store:
// schema bootstrap, dashboard snapshot, CSV export, backup/restore, and
// data reset. The desktop UI talks to the same service layer directly.
package main

import (
	"fmt"
	"os"

	"accrue/internal/config"
	"accrue/internal/database"
	"accrue/internal/logger"
	"accrue/internal/services"
)

const usage = `usage: accrue <command> [args]

commands:
  init              create the database, apply migrations, seed defaults
  dashboard         print the dashboard snapshot
  export <file>     export all transactions as CSV
  backup <file>     copy the database file to <file>
  restore <file>    replace the database file with <file>
  reset             delete all data and reseed default categories
`

func main() {
	logger.Init(os.Getenv("ACCRUE_ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	mgr, err := database.NewManager(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer mgr.Close()

	if err := mgr.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := mgr.Seed(); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	db := mgr.DB()
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)
	reportService := services.NewReportService(db, accountService, transactionService)
	exportService := services.NewExportService(db)

	switch args[0] {
	case "init":
		logger.Get().Infof("Store ready at %s", mgr.Path())
		return nil

	case "dashboard":
		dashboard, err := reportService.Dashboard()
		if err != nil {
			return err
		}
		fmt.Printf("Net worth: %s\n", formatCents(dashboard.NetWorth))
		fmt.Printf("This month: +%s / -%s\n",
			formatCents(dashboard.MonthlyIncome), formatCents(dashboard.MonthlyExpenses))
		for i := range dashboard.Accounts {
			a := &dashboard.Accounts[i]
			fmt.Printf("  %-24s %-10s %s %s\n", a.Name, a.Type, a.Currency, formatCents(a.Balance))
		}
		return nil

	case "export":
		if len(args) < 2 {
			return fmt.Errorf("export requires a destination file")
		}
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := exportService.ExportTransactionsCSV(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Get().Infof("Exported transactions to %s", args[1])
		return nil

	case "backup":
		if len(args) < 2 {
			return fmt.Errorf("backup requires a destination file")
		}
		return mgr.Backup(args[1])

	case "restore":
		if len(args) < 2 {
			return fmt.Errorf("restore requires a source file")
		}
		return mgr.Restore(args[1])

	case "reset":
		return mgr.Reset()

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

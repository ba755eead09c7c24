package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvolkova/finsight/internal/config"
	"github.com/mvolkova/finsight/internal/ledger"
	"github.com/mvolkova/finsight/internal/reportlog"
	"github.com/mvolkova/finsight/internal/timeutil"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build spending reports",
		Long:  `Reports over the ledger. Every report result is appended to the report log.`,
	}

	cmd.AddCommand(reportCategoryCmd())
	return cmd
}

func reportCategoryCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Spending in a category over the trailing three months",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if date != "" {
				if _, err := timeutil.ParseInputTime(date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			led, err := loadLedger(cfg)
			if err != nil {
				return err
			}

			report := reportlog.Logged(cfg.ReportLogPath, ledger.SpendingByCategory)
			fmt.Println(report(led, args[0], date, time.Now))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "",
		`reference date, "YYYY-MM-DD HH:MM:SS" (default: now)`)
	return cmd
}

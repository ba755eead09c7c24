package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvolkova/finsight/internal/config"
	"github.com/mvolkova/finsight/internal/timeutil"
)

func dashboardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the main page for a reference date",
		Long: `Compose the main-page response for a reference date: a greeting,
per-card spend and cashback since the start of that date's month, the
top-5 expenses, and the user's currency and stock quotes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := timeutil.ParseInputTime(date); err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			d := newBuilder(cfg).Build(cmd.Context(), date)
			out, err := renderJSON(d)
			if err != nil {
				return fmt.Errorf("failed to render dashboard: %w", err)
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date",
		time.Now().Format(timeutil.InputLayout),
		`reference date, "YYYY-MM-DD HH:MM:SS"`)
	return cmd
}

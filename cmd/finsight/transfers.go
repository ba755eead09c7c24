package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvolkova/finsight/internal/config"
	"github.com/mvolkova/finsight/internal/ledger"
)

func transfersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfers",
		Short: "Find transfers to people",
		Long: `Search the full ledger for money transfers whose description names
a person, e.g. "Иван И.".`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			led, err := loadLedger(cfg)
			if err != nil {
				return err
			}

			fmt.Println(ledger.SearchTransfersToPeople(led))
			return nil
		},
	}
}

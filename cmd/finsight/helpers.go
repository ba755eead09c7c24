package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvolkova/finsight/internal/config"
	"github.com/mvolkova/finsight/internal/dashboard"
	"github.com/mvolkova/finsight/internal/excel"
	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/quotes"
)

// loadLedger reads the configured xlsx export, showing row-conversion
// progress on larger files.
func loadLedger(cfg *config.Config) (*model.Ledger, error) {
	var bar *progressbar.ProgressBar
	return excel.LoadLedgerProgress(cfg.LedgerPath, func(done, total int) {
		if total < 1000 {
			return
		}
		if bar == nil {
			bar = progressbar.Default(int64(total), "Загрузка операций")
		}
		_ = bar.Set(done)
	})
}

// newBuilder wires the dashboard assembler from the process config.
func newBuilder(cfg *config.Config) *dashboard.Builder {
	return &dashboard.Builder{
		LoadLedger: func() (*model.Ledger, error) { return loadLedger(cfg) },
		Currency:   quotes.NewCurrencyClient(cfg.CurrencyBaseURL, cfg.CurrencyAPIKey, cfg.QuoteTimeout),
		Stocks:     quotes.NewStockClient(cfg.StockBaseURL, cfg.StockAPIKey, cfg.QuoteTimeout),
		LoadSettings: func() quotes.Settings {
			return quotes.LoadSettings(cfg.SettingsPath)
		},
		Clock: time.Now,
	}
}

// renderJSON pretty-prints v without HTML escaping, keeping Cyrillic
// payloads readable.
func renderJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

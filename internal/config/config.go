// Package config resolves the process-wide configuration: file paths
// and quote-provider credentials. The struct is built once at startup
// and threaded through calls; nothing else reads viper directly.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Defaults mirror the project's conventional layout.
const (
	DefaultLedgerPath    = "data/operations.xlsx"
	DefaultSettingsPath  = "user_settings.json"
	DefaultReportLogPath = "data/reports_data.txt"

	DefaultCurrencyBaseURL = "https://api.apilayer.com/exchangerates_data"
	DefaultStockBaseURL    = "https://www.alphavantage.co"

	// DefaultQuoteTimeout bounds each outbound quote request.
	DefaultQuoteTimeout = 10 * time.Second
)

// Config carries every externally-configurable value.
type Config struct {
	LedgerPath    string
	SettingsPath  string
	ReportLogPath string

	CurrencyBaseURL string
	StockBaseURL    string
	CurrencyAPIKey  string
	StockAPIKey     string
	QuoteTimeout    time.Duration
}

// Load resolves the configuration from viper (config file or FINSIGHT_
// env vars), falling back to the legacy MY_API_* environment variables
// for the quote credentials, then to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		LedgerPath:      DefaultLedgerPath,
		SettingsPath:    DefaultSettingsPath,
		ReportLogPath:   DefaultReportLogPath,
		CurrencyBaseURL: DefaultCurrencyBaseURL,
		StockBaseURL:    DefaultStockBaseURL,
		QuoteTimeout:    DefaultQuoteTimeout,
	}

	if v := viper.GetString("ledger.path"); v != "" {
		cfg.LedgerPath = v
	}
	if v := viper.GetString("settings.path"); v != "" {
		cfg.SettingsPath = v
	}
	if v := viper.GetString("reports.path"); v != "" {
		cfg.ReportLogPath = v
	}
	if v := viper.GetString("quotes.currency_url"); v != "" {
		cfg.CurrencyBaseURL = v
	}
	if v := viper.GetString("quotes.stock_url"); v != "" {
		cfg.StockBaseURL = v
	}
	if v := viper.GetDuration("quotes.timeout"); v > 0 {
		cfg.QuoteTimeout = v
	}

	cfg.CurrencyAPIKey = viper.GetString("quotes.currency_key")
	if cfg.CurrencyAPIKey == "" {
		cfg.CurrencyAPIKey = os.Getenv("MY_API_CURRENCY")
	}
	cfg.StockAPIKey = viper.GetString("quotes.stock_key")
	if cfg.StockAPIKey == "" {
		cfg.StockAPIKey = os.Getenv("MY_API_STOCK")
	}

	// Missing API keys are not an error: the quote providers degrade
	// to empty results.
	return cfg, nil
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("MY_API_CURRENCY", "")
	t.Setenv("MY_API_STOCK", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLedgerPath, cfg.LedgerPath)
	assert.Equal(t, DefaultSettingsPath, cfg.SettingsPath)
	assert.Equal(t, DefaultReportLogPath, cfg.ReportLogPath)
	assert.Equal(t, DefaultCurrencyBaseURL, cfg.CurrencyBaseURL)
	assert.Equal(t, DefaultStockBaseURL, cfg.StockBaseURL)
	assert.Equal(t, DefaultQuoteTimeout, cfg.QuoteTimeout)
	// Missing API keys are not an error.
	assert.Empty(t, cfg.CurrencyAPIKey)
	assert.Empty(t, cfg.StockAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("ledger.path", "/tmp/operations.xlsx")
	viper.Set("reports.path", "/tmp/reports.txt")
	viper.Set("quotes.currency_url", "http://localhost:9000")
	viper.Set("quotes.timeout", "3s")
	viper.Set("quotes.currency_key", "from-config")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/operations.xlsx", cfg.LedgerPath)
	assert.Equal(t, "/tmp/reports.txt", cfg.ReportLogPath)
	assert.Equal(t, "http://localhost:9000", cfg.CurrencyBaseURL)
	assert.Equal(t, 3*time.Second, cfg.QuoteTimeout)
	assert.Equal(t, "from-config", cfg.CurrencyAPIKey)
}

func TestLoadLegacyEnvKeys(t *testing.T) {
	viper.Reset()
	t.Setenv("MY_API_CURRENCY", "currency-key")
	t.Setenv("MY_API_STOCK", "stock-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "currency-key", cfg.CurrencyAPIKey)
	assert.Equal(t, "stock-key", cfg.StockAPIKey)
}

// Package quotes fetches the currency rates and stock prices the user
// follows. Providers are deliberately forgiving: a failing symbol is
// logged and skipped, never fatal to the dashboard.
package quotes

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Settings lists the currencies and tickers the user wants on the
// dashboard.
type Settings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// LoadSettings reads the user settings file. A missing file, malformed
// JSON or an absent key degrades to empty lists: the dashboard then
// simply shows no quotes.
func LoadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("user settings unavailable", "path", path, "error", err)
		return Settings{}
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Error("user settings malformed", "path", path, "error", err)
		return Settings{}
	}
	return s
}

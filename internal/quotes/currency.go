package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

// CurrencyClient fetches RUB conversion rates, one request per
// currency, from an exchangerates-style API.
type CurrencyClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewCurrencyClient builds a client with a bounded request timeout.
func NewCurrencyClient(baseURL, apiKey string, timeout time.Duration) *CurrencyClient {
	return &CurrencyClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Rates fetches one quote per currency. A failing currency is logged
// and skipped; quotes fetched before a failure are kept.
func (c *CurrencyClient) Rates(ctx context.Context, currencies []string) []model.CurrencyRate {
	result := make([]model.CurrencyRate, 0, len(currencies))
	if len(currencies) == 0 {
		return result
	}
	if c.apiKey == "" {
		slog.Error("currency API key is not set, skipping rates")
		return result
	}

	for _, currency := range currencies {
		rate, err := c.rate(ctx, currency)
		if err != nil {
			slog.Error("failed to fetch currency rate",
				"currency", currency, "error", err)
			continue
		}
		result = append(result, model.CurrencyRate{Currency: currency, Rate: rate})
	}
	return result
}

func (c *CurrencyClient) rate(ctx context.Context, currency string) (float64, error) {
	u := fmt.Sprintf("%s/convert?to=RUB&from=%s&amount=1",
		c.baseURL, url.QueryEscape(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("currency API error: %d - %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Info *struct {
			Rate *float64 `json:"rate"`
		} `json:"info"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Info == nil || payload.Info.Rate == nil {
		return 0, fmt.Errorf("malformed response: missing info.rate")
	}
	return common.Round2(*payload.Info.Rate), nil
}

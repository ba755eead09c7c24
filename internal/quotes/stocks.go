package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

// priceField is the Alpha Vantage global-quote key carrying the price.
const priceField = "05. price"

// StockClient fetches stock prices, one request per symbol, from an
// Alpha Vantage-style API. The key travels as a query parameter, not a
// header.
type StockClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewStockClient builds a client with a bounded request timeout.
func NewStockClient(baseURL, apiKey string, timeout time.Duration) *StockClient {
	return &StockClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Prices fetches one quote per symbol, skipping and logging failures;
// already-fetched prices are kept.
func (c *StockClient) Prices(ctx context.Context, symbols []string) []model.StockPrice {
	result := make([]model.StockPrice, 0, len(symbols))
	if len(symbols) == 0 {
		return result
	}
	if c.apiKey == "" {
		slog.Error("stock API key is not set, skipping prices")
		return result
	}

	for _, symbol := range symbols {
		price, err := c.price(ctx, symbol)
		if err != nil {
			slog.Error("failed to fetch stock price",
				"stock", symbol, "error", err)
			continue
		}
		result = append(result, model.StockPrice{Stock: symbol, Price: price})
	}
	return result
}

func (c *StockClient) price(ctx context.Context, symbol string) (float64, error) {
	u := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("stock API error: %d - %s", resp.StatusCode, string(body))
	}

	var payload struct {
		GlobalQuote map[string]string `json:"Global Quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	raw, ok := payload.GlobalQuote[priceField]
	if !ok {
		return 0, fmt.Errorf("malformed response: missing %q", priceField)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", raw, err)
	}
	return common.Round2(price), nil
}

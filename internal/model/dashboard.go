package model

import "encoding/json"

// CardSummary is one per-card rollup entry: the unmasked trailing
// digits, total spend over the slice and accrued cashback (one ruble
// per hundred spent).
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   int     `json:"cashback"`
}

// TopTransaction describes one of the largest expenses in a slice.
// Amount is reported as a positive magnitude.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CurrencyRate is one currency quote against RUB.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is one stock quote.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// Field is a per-section dashboard result: either a payload or the
// message of the failure that produced it. One section failing never
// hides the payloads of the others.
type Field[T any] struct {
	Value T
	Err   string
}

// Ok wraps a successful payload.
func Ok[T any](v T) Field[T] {
	return Field[T]{Value: v}
}

// Fail wraps a failure message.
func Fail[T any](msg string) Field[T] {
	return Field[T]{Err: msg}
}

// Failed reports whether the field carries an error.
func (f Field[T]) Failed() bool {
	return f.Err != ""
}

// MarshalJSON renders the payload on success and the bare error string
// on failure, matching the dashboard's wire shape.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Err != "" {
		return json.Marshal(f.Err)
	}
	return json.Marshal(f.Value)
}

// Dashboard is the main-page response. Every field is always present;
// each is independently a payload or an error string.
type Dashboard struct {
	Greeting        string                  `json:"greeting"`
	Cards           Field[[]CardSummary]    `json:"cards"`
	TopTransactions Field[[]TopTransaction] `json:"top_transactions"`
	CurrencyRates   Field[[]CurrencyRate]   `json:"currency_rates"`
	StockPrices     Field[[]StockPrice]     `json:"stock_prices"`
}

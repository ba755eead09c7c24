// Package dashboard assembles the main-page response from the
// greeting, the monthly ledger aggregations and the quote providers.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/mvolkova/finsight/internal/ledger"
	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/quotes"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// CurrencyProvider fetches rates for the user's currencies.
type CurrencyProvider interface {
	Rates(ctx context.Context, currencies []string) []model.CurrencyRate
}

// StockProvider fetches prices for the user's stocks.
type StockProvider interface {
	Prices(ctx context.Context, symbols []string) []model.StockPrice
}

// Builder wires the dashboard's collaborators. Any of them may fail
// independently; Build keeps the failures inside their own fields.
type Builder struct {
	LoadLedger   func() (*model.Ledger, error)
	Currency     CurrencyProvider
	Stocks       StockProvider
	LoadSettings func() quotes.Settings
	Clock        func() time.Time
}

// Build computes every dashboard section for the given reference date.
// A failure in one section populates only that section's field with an
// error message and never blocks the others. When loading or
// monthly-filtering the ledger fails, both cards and top_transactions
// carry that same cause while greeting and quotes proceed normally.
func (b *Builder) Build(ctx context.Context, dateStr string) model.Dashboard {
	var d model.Dashboard

	d.Greeting = timeutil.Greeting(b.Clock)

	slice, err := b.monthSlice(dateStr)
	if err != nil {
		msg := fmt.Sprintf("Ошибка при обработке данных операций: %v", err)
		d.Cards = model.Fail[[]model.CardSummary](msg)
		d.TopTransactions = model.Fail[[]model.TopTransaction](msg)
	} else {
		if cards, err := ledger.CardsInfo(slice); err != nil {
			d.Cards = model.Fail[[]model.CardSummary](
				fmt.Sprintf("Ошибка при получении отчёта по картам: %v", err))
		} else {
			d.Cards = model.Ok(cards)
		}

		if top, err := ledger.TopTransactions(slice, ledger.DefaultTopN); err != nil {
			d.TopTransactions = model.Fail[[]model.TopTransaction](
				fmt.Sprintf("Ошибка при получении топ транзакций: %v", err))
		} else {
			d.TopTransactions = model.Ok(top)
		}
	}

	settings := b.LoadSettings()
	d.CurrencyRates = model.Ok(b.Currency.Rates(ctx, settings.Currencies))
	d.StockPrices = model.Ok(b.Stocks.Prices(ctx, settings.Stocks))

	return d
}

func (b *Builder) monthSlice(dateStr string) (*model.Ledger, error) {
	l, err := b.LoadLedger()
	if err != nil {
		return nil, err
	}
	return ledger.SinceMonthStart(l, dateStr)
}

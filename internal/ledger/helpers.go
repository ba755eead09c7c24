package ledger

import (
	"errors"
	"time"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// ErrNoPaymentDates is returned when no payment-date cell could be
// parsed.
var ErrNoPaymentDates = errors.New("в таблице нет распознаваемых дат платежа")

// Categories returns the distinct category labels in first-seen order.
// The interactive menu shows this list before asking for a report.
func Categories(l *model.Ledger) ([]string, error) {
	if l == nil {
		return nil, common.ErrInvalidInput
	}
	if err := l.RequireColumns(model.ColCategory); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for i := range l.Rows {
		c := l.Rows[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories, nil
}

// PaymentDateRange returns the earliest and latest parseable payment
// dates, so the menu can tell the user which period the data covers.
func PaymentDateRange(l *model.Ledger) (time.Time, time.Time, error) {
	if l == nil {
		return time.Time{}, time.Time{}, common.ErrInvalidInput
	}
	if err := l.RequireColumns(model.ColPaymentDate); err != nil {
		return time.Time{}, time.Time{}, err
	}

	var minT, maxT time.Time
	for i := range l.Rows {
		ts, err := parsePaymentDate(l.Rows[i].PaymentDate)
		if err != nil {
			continue
		}
		if minT.IsZero() || ts.Before(minT) {
			minT = ts
		}
		if maxT.IsZero() || ts.After(maxT) {
			maxT = ts
		}
	}
	if minT.IsZero() {
		return time.Time{}, time.Time{}, ErrNoPaymentDates
	}
	return minT, maxT, nil
}

// parsePaymentDate accepts both the date-only payment format and the
// full operation timestamp format, which some exports use.
func parsePaymentDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(timeutil.PaymentLayout, raw); err == nil {
		return ts, nil
	}
	return timeutil.ParseOperationTime(raw)
}

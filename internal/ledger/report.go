package ledger

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// ErrDateColumnCoercion is returned by the category report when any
// operation-date cell fails to coerce.
var ErrDateColumnCoercion = errors.New(
	"не удалось преобразовать столбец 'Дата операции': проверьте формат даты")

// SpendingByCategory reports every transaction of the given category
// over the three calendar months ending at dateStr (or now, when
// dateStr is empty). The result is always a JSON string: an array of
// row mappings on success, {"error": message} on failure.
//
// Date coercion here is strict: a single unparsable operation date
// fails the whole call. SinceMonthStart deliberately stays lenient;
// both behaviors are contractual and covered by tests.
func SpendingByCategory(l *model.Ledger, category, dateStr string, now func() time.Time) string {
	records, err := spendingByCategory(l, category, dateStr, now)
	if err != nil {
		slog.Error("spending report failed", "category", category, "error", err)
		return errorJSON(err)
	}

	out, err := marshalJSON(records, "")
	if err != nil {
		return errorJSON(err)
	}
	slog.Info("spending report built", "category", category, "rows", len(records))
	return out
}

func spendingByCategory(l *model.Ledger, category, dateStr string, now func() time.Time) ([]map[string]any, error) {
	if l == nil {
		return nil, common.ErrInvalidInput
	}
	if err := l.RequireColumns(model.ColOperationDate, model.ColCategory); err != nil {
		return nil, err
	}

	var target time.Time
	switch {
	case dateStr == "":
		if now == nil {
			now = time.Now
		}
		target = now()
	default:
		var err error
		target, err = timeutil.ParseInputTime(dateStr)
		if err != nil {
			return nil, err
		}
	}
	windowStart := timeutil.MonthsBefore(target, 3)

	records := make([]map[string]any, 0)
	for i := range l.Rows {
		row := l.Rows[i]
		ts := row.OperationTime()
		if ts == nil {
			return nil, ErrDateColumnCoercion
		}
		if ts.Before(windowStart) || ts.After(target) {
			continue
		}
		if row.Category != category {
			continue
		}
		row.OperationDate = ts
		records = append(records, row.Record())
	}
	return records, nil
}

// Package ledger implements the aggregation engine: stateless
// functions that turn the in-memory transaction table into derived
// views: monthly slices, per-card rollups, top-N rankings, category
// reports and transfer searches.
package ledger

import (
	"log/slog"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// SinceMonthStart returns the rows whose operation date falls inside
// [start of dateStr's month, dateStr], both ends inclusive. Rows whose
// operation date cannot be coerced are excluded, not fatal; this is
// deliberately more lenient than SpendingByCategory, whose strictness
// is part of its contract. The input ledger is never mutated.
func SinceMonthStart(l *model.Ledger, dateStr string) (*model.Ledger, error) {
	if l == nil {
		return nil, common.ErrInvalidInput
	}
	if err := l.RequireColumns(model.ColOperationDate); err != nil {
		return nil, err
	}

	target, err := timeutil.ParseInputTime(dateStr)
	if err != nil {
		return nil, err
	}
	floor := timeutil.MonthFloor(target)

	rows := make([]model.Transaction, 0, len(l.Rows))
	for i := range l.Rows {
		ts := l.Rows[i].OperationTime()
		if ts == nil {
			continue
		}
		if ts.Before(floor) || ts.After(target) {
			continue
		}
		row := l.Rows[i]
		row.OperationDate = ts
		rows = append(rows, row)
	}

	slog.Debug("filtered transactions since month start",
		"date", dateStr, "rows", len(rows))
	return l.WithRows(rows), nil
}

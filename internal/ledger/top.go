package ledger

import (
	"math"
	"sort"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

// DefaultTopN is how many transactions the dashboard ranks.
const DefaultTopN = 5

// TopTransactions returns the n largest expenses of the slice by
// payment amount, sign-flipped to positive magnitudes. Ties keep the
// original row order. A slice with no expenses yields an empty result,
// not an error; a non-numeric, non-blank amount cell aborts the whole
// call, the first offending row wins.
func TopTransactions(l *model.Ledger, n int) ([]model.TopTransaction, error) {
	if l == nil {
		return nil, common.ErrInvalidInput
	}
	if err := l.RequireColumns(
		model.ColAmount, model.ColPaymentDate, model.ColCategory, model.ColDescription,
	); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	var expenses []model.Transaction
	for i := range l.Rows {
		row := &l.Rows[i]
		if !row.AmountValid && row.RawAmount != "" {
			return nil, &common.InvalidRowError{Row: i, Value: row.RawAmount}
		}
		if row.IsExpense() {
			expenses = append(expenses, l.Rows[i])
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return math.Abs(expenses[i].Amount) > math.Abs(expenses[j].Amount)
	})
	if len(expenses) > n {
		expenses = expenses[:n]
	}

	result := make([]model.TopTransaction, 0, len(expenses))
	for i := range expenses {
		result = append(result, model.TopTransaction{
			Date:        expenses[i].PaymentDate,
			Amount:      -expenses[i].Amount,
			Category:    expenses[i].Category,
			Description: expenses[i].Description,
		})
	}
	return result, nil
}

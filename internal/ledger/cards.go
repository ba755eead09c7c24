package ledger

import (
	"math"
	"strings"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

// UnknownCard labels spend that is not assigned to any card.
const UnknownCard = "Unknown"

// CardsInfo rolls the slice up per card: trailing digits, total moved
// through the card and cashback accrued as one ruble per hundred.
//
// The total accumulates |amount| of every row with a numeric amount,
// income included. Every named card gets an entry, zero-total when its
// amount cells are all blank. Rows without a card number feed a
// separate "Unknown" bucket, emitted last and only when positive. A
// non-numeric, non-blank amount cell aborts the whole call; the first
// offending row wins.
func CardsInfo(l *model.Ledger) ([]model.CardSummary, error) {
	if l == nil {
		return nil, common.ErrInvalidInput
	}
	if err := l.RequireColumns(model.ColCardNumber, model.ColAmount); err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	var order []string
	var unknown float64

	for i := range l.Rows {
		row := &l.Rows[i]
		if !row.AmountValid && row.RawAmount != "" {
			return nil, &common.InvalidRowError{Row: i, Value: row.RawAmount}
		}

		if row.CardNumber == "" {
			if row.AmountValid {
				unknown += math.Abs(row.Amount)
			}
			continue
		}

		// The bucket registers before the amount check: a card seen
		// only with blank cells still gets a zero-total entry.
		digits := strings.ReplaceAll(row.CardNumber, "*", "")
		if _, seen := totals[digits]; !seen {
			order = append(order, digits)
			totals[digits] = 0
		}
		if row.AmountValid {
			totals[digits] += math.Abs(row.Amount)
		}
	}

	result := make([]model.CardSummary, 0, len(order)+1)
	for _, digits := range order {
		result = append(result, model.CardSummary{
			LastDigits: digits,
			TotalSpent: common.Round2(totals[digits]),
			Cashback:   int(totals[digits] / 100),
		})
	}
	if unknown > 0 {
		result = append(result, model.CardSummary{
			LastDigits: UnknownCard,
			TotalSpent: common.Round2(unknown),
			Cashback:   int(unknown / 100),
		})
	}
	return result, nil
}

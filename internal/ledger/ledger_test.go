package ledger

import (
	"strconv"

	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// row builds a fully-populated transaction the way the loader would.
func row(operationDate string, amount float64, card, category, description string) model.Transaction {
	tx := model.Transaction{
		RawOperationDate: operationDate,
		PaymentDate:      "15.05.2025",
		Amount:           amount,
		AmountValid:      true,
		RawAmount:        strconv.FormatFloat(amount, 'f', -1, 64),
		CardNumber:       card,
		Category:         category,
		Description:      description,
	}
	if ts, err := timeutil.ParseOperationTime(operationDate); err == nil {
		tx.OperationDate = &ts
	}
	return tx
}

// sampleRows mirrors the canonical analysis scenario: two May rows,
// one April row.
func sampleRows() []model.Transaction {
	return []model.Transaction{
		row("01.05.2025 12:00:00", -150, "*1234", "Супермаркеты", "Магнит"),
		row("10.05.2025 09:30:00", -200, "", "Переводы", "Иван И."),
		row("01.04.2025 18:00:00", -300, "*5678", "Каршеринг", "Делимобиль"),
	}
}

func sampleLedger() *model.Ledger {
	return model.FullLedger(sampleRows())
}

// ledgerWithout builds a ledger whose schema is missing the named
// columns.
func ledgerWithout(rows []model.Transaction, missing ...string) *model.Ledger {
	skip := make(map[string]bool, len(missing))
	for _, m := range missing {
		skip[m] = true
	}
	var columns []string
	for _, c := range model.Columns {
		if !skip[c] {
			columns = append(columns, c)
		}
	}
	return model.NewLedger(columns, rows)
}

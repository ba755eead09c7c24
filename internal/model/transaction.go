// Package model holds the core data types shared across the
// application: ledger rows, the ledger table and the dashboard DTOs.
package model

import (
	"time"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// Canonical ledger column headers as written by the bank's xlsx
// export. The data is exported by a Russian bank, so the headers stay
// localized.
const (
	ColOperationDate = "Дата операции"
	ColPaymentDate   = "Дата платежа"
	ColAmount        = "Сумма платежа"
	ColCardNumber    = "Номер карты"
	ColCategory      = "Категория"
	ColDescription   = "Описание"
)

// Columns lists every canonical header in source order.
var Columns = []string{
	ColOperationDate,
	ColPaymentDate,
	ColAmount,
	ColCardNumber,
	ColCategory,
	ColDescription,
}

// Transaction is a single ledger row. Raw cell values are preserved
// next to their coerced forms so that aggregations can distinguish a
// blank cell from one that failed coercion.
type Transaction struct {
	// OperationDate is the coerced posting timestamp; nil when the
	// source cell was blank or unparsable.
	OperationDate    *time.Time
	RawOperationDate string

	// PaymentDate is kept as the source string; it is used for
	// display and ranking, never for windowing.
	PaymentDate string

	Amount      float64
	AmountValid bool
	RawAmount   string

	// CardNumber is the masked identifier, e.g. "*1234"; empty when
	// the spend is not assigned to a card.
	CardNumber  string
	Category    string
	Description string
}

// IsExpense reports whether the row is an expense (negative amount).
func (t *Transaction) IsExpense() bool {
	return t.AmountValid && t.Amount < 0
}

// OperationTime returns the coerced operation timestamp, parsing the
// raw cell on demand for rows built without the loader. Returns nil
// when the cell cannot be parsed; comparisons against nil are false by
// convention in the aggregation engine.
func (t *Transaction) OperationTime() *time.Time {
	if t.OperationDate != nil {
		return t.OperationDate
	}
	if t.RawOperationDate == "" {
		return nil
	}
	ts, err := timeutil.ParseOperationTime(t.RawOperationDate)
	if err != nil {
		return nil
	}
	return &ts
}

// Record renders the row as a plain mapping keyed by the canonical
// headers, with timestamps stringified, ready for JSON serialization.
func (t *Transaction) Record() map[string]any {
	rec := map[string]any{
		ColPaymentDate: t.PaymentDate,
		ColCategory:    t.Category,
		ColDescription: t.Description,
	}

	if ts := t.OperationTime(); ts != nil {
		rec[ColOperationDate] = ts.Format(timeutil.InputLayout)
	} else {
		rec[ColOperationDate] = t.RawOperationDate
	}

	if t.AmountValid {
		rec[ColAmount] = t.Amount
	} else {
		rec[ColAmount] = t.RawAmount
	}

	if t.CardNumber != "" {
		rec[ColCardNumber] = t.CardNumber
	} else {
		rec[ColCardNumber] = nil
	}
	return rec
}

// Ledger is an ordered collection of transactions sharing one column
// schema. The schema is tracked separately from the rows so that an
// aggregation over a table with a missing column reports the column by
// name instead of silently producing zero rows.
type Ledger struct {
	Rows    []Transaction
	columns map[string]struct{}
}

// NewLedger builds a ledger over the given schema and rows.
func NewLedger(columns []string, rows []Transaction) *Ledger {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return &Ledger{Rows: rows, columns: set}
}

// FullLedger builds a ledger carrying the complete canonical schema.
func FullLedger(rows []Transaction) *Ledger {
	return NewLedger(Columns, rows)
}

// WithRows returns a new ledger sharing l's schema but holding rows.
func (l *Ledger) WithRows(rows []Transaction) *Ledger {
	return &Ledger{Rows: rows, columns: l.columns}
}

// HasColumn reports whether the schema contains the named column.
func (l *Ledger) HasColumn(name string) bool {
	_, ok := l.columns[name]
	return ok
}

// RequireColumns returns a MissingColumnError naming the first absent
// column, or nil when all are present.
func (l *Ledger) RequireColumns(names ...string) error {
	for _, name := range names {
		if !l.HasColumn(name) {
			return &common.MissingColumnError{Column: name}
		}
	}
	return nil
}

// Len returns the number of rows.
func (l *Ledger) Len() int {
	return len(l.Rows)
}

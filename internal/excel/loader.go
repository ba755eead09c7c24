// Package excel loads the transaction ledger from an xlsx workbook.
package excel

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mvolkova/finsight/internal/model"
	"github.com/mvolkova/finsight/internal/timeutil"
)

// RowProgress is invoked after each converted row. The CLI uses it to
// drive a progress bar over large exports; a nil callback is fine.
type RowProgress func(done, total int)

// LoadLedger reads the first sheet of the workbook at path into a
// ledger. The first row is the header; only the canonical columns are
// mapped, everything else is ignored. Rows are never mutated after
// load except the date coercion recorded on each Transaction.
func LoadLedger(path string) (*model.Ledger, error) {
	return LoadLedgerProgress(path, nil)
}

// LoadLedgerProgress is LoadLedger with a per-row progress callback.
func LoadLedgerProgress(path string, progress RowProgress) (*model.Ledger, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("файл не найден: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении Excel-файла %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close workbook", "path", path, "error", cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении листа %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return model.NewLedger(nil, nil), nil
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	columns := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			continue
		}
		index[name] = i
		columns = append(columns, name)
	}

	data := rows[1:]
	transactions := make([]model.Transaction, 0, len(data))
	for n, cells := range data {
		transactions = append(transactions, buildTransaction(cells, index))
		if progress != nil {
			progress(n+1, len(data))
		}
	}

	slog.Info("ledger loaded", "path", path, "rows", len(transactions))
	return model.NewLedger(columns, transactions), nil
}

func buildTransaction(cells []string, index map[string]int) model.Transaction {
	cell := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	tx := model.Transaction{
		RawOperationDate: cell(model.ColOperationDate),
		PaymentDate:      cell(model.ColPaymentDate),
		RawAmount:        cell(model.ColAmount),
		CardNumber:       cell(model.ColCardNumber),
		Category:         cell(model.ColCategory),
		Description:      cell(model.ColDescription),
	}

	if tx.RawOperationDate != "" {
		if ts, err := timeutil.ParseOperationTime(tx.RawOperationDate); err == nil {
			tx.OperationDate = &ts
		}
		// An unparsable date stays raw; the lenient aggregations
		// exclude it, the strict report rejects the whole table.
	}

	if tx.RawAmount != "" {
		if v, err := parseAmount(tx.RawAmount); err == nil {
			tx.Amount = v
			tx.AmountValid = true
		}
	}
	return tx
}

// parseAmount accepts the export's number formats: a plain decimal,
// comma as the decimal separator, and space or NBSP group separators.
func parseAmount(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

package ledger

import (
	"log/slog"
	"regexp"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

// TransfersCategory is the ledger label for person-to-person money
// transfers.
const TransfersCategory = "Переводы"

// personPattern matches a counterparty written as a capitalized first
// name plus an initial, e.g. "Иван И.", anchored at the start of the
// description.
var personPattern = regexp.MustCompile(`^[А-ЯЁ][а-яё]+\s[А-ЯЁ]\.`)

// SearchTransfersToPeople returns, as a pretty-printed JSON array, the
// transfer rows whose description names a person. Failures come back
// as {"error": message}; the function never panics past its boundary.
func SearchTransfersToPeople(l *model.Ledger) string {
	if l == nil {
		return errorJSON(common.ErrInvalidInput)
	}
	if err := l.RequireColumns(model.ColCategory, model.ColDescription); err != nil {
		return errorJSON(err)
	}

	matches := make([]map[string]any, 0)
	for i := range l.Rows {
		row := &l.Rows[i]
		if row.Category != TransfersCategory {
			continue
		}
		if !personPattern.MatchString(row.Description) {
			continue
		}
		matches = append(matches, row.Record())
	}

	out, err := marshalJSON(matches, "    ")
	if err != nil {
		return errorJSON(err)
	}
	slog.Info("transfer search finished", "matches", len(matches))
	return out
}

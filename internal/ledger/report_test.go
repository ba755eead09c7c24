package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkova/finsight/internal/model"
)

func decodeRows(t *testing.T, out string) []map[string]any {
	t.Helper()
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	return rows
}

func decodeError(t *testing.T, out string) map[string]string {
	t.Helper()
	var obj map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &obj))
	return obj
}

func TestSpendingByCategory(t *testing.T) {
	rows := []model.Transaction{
		row("30.12.2021 14:42:26", -100, "*1", "Каршеринг", "Делимобиль"),
		row("01.11.2021 10:00:00", -250, "*1", "Каршеринг", "Делимобиль"),
		row("30.12.2021 12:00:00", -999, "*1", "Супермаркеты", "Магнит"),
		row("29.09.2021 10:00:00", -50, "*1", "Каршеринг", "слишком старая"),
	}

	out := SpendingByCategory(model.FullLedger(rows), "Каршеринг", "2021-12-30 14:42:26", nil)
	records := decodeRows(t, out)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "Каршеринг", rec[model.ColCategory])
	}
	// Timestamps are stringified in the serialized rows.
	assert.Equal(t, "2021-12-30 14:42:26", records[0][model.ColOperationDate])
}

func TestSpendingByCategory_WindowBoundaryIncluded(t *testing.T) {
	// Exactly three calendar months before the reference instant.
	rows := []model.Transaction{
		row("30.09.2021 14:42:26", -10, "*1", "Каршеринг", "на границе окна"),
		row("30.09.2021 14:42:25", -20, "*1", "Каршеринг", "секундой раньше"),
	}

	out := SpendingByCategory(model.FullLedger(rows), "Каршеринг", "2021-12-30 14:42:26", nil)
	records := decodeRows(t, out)
	require.Len(t, records, 1)
	assert.Equal(t, "на границе окна", records[0][model.ColDescription])
}

func TestSpendingByCategory_ExactCategoryMatch(t *testing.T) {
	rows := []model.Transaction{
		row("10.12.2021 10:00:00", -10, "*1", "Каршеринг", "точное имя"),
		row("10.12.2021 10:00:00", -20, "*1", "каршеринг", "нижний регистр"),
		row("10.12.2021 10:00:00", -30, "*1", "Каршеринг и такси", "префикс"),
	}

	out := SpendingByCategory(model.FullLedger(rows), "Каршеринг", "2021-12-30 14:42:26", nil)
	records := decodeRows(t, out)
	require.Len(t, records, 1)
	assert.Equal(t, "точное имя", records[0][model.ColDescription])
}

func TestSpendingByCategory_DefaultsToNow(t *testing.T) {
	now := func() time.Time {
		return time.Date(2021, time.December, 30, 14, 42, 26, 0, time.UTC)
	}
	rows := []model.Transaction{
		row("30.12.2021 12:00:00", -10, "*1", "Каршеринг", "сегодня"),
	}

	out := SpendingByCategory(model.FullLedger(rows), "Каршеринг", "", now)
	records := decodeRows(t, out)
	assert.Len(t, records, 1)
}

func TestSpendingByCategory_StrictDateCoercion(t *testing.T) {
	// A single bad operation date fails the whole call, unlike the
	// lenient monthly filter.
	rows := []model.Transaction{
		row("10.12.2021 10:00:00", -10, "*1", "Каршеринг", "нормальная"),
		row("мусор", -20, "*1", "Каршеринг", "битая дата"),
	}

	out := SpendingByCategory(model.FullLedger(rows), "Каршеринг", "2021-12-30 14:42:26", nil)
	obj := decodeError(t, out)
	require.Len(t, obj, 1)
	assert.Contains(t, obj["error"], "Дата операции")
}

func TestSpendingByCategory_BadReferenceDate(t *testing.T) {
	out := SpendingByCategory(sampleLedger(), "Каршеринг", "30.12.2021", nil)
	obj := decodeError(t, out)
	require.Len(t, obj, 1)
	assert.NotEmpty(t, obj["error"])
}

func TestSpendingByCategory_ErrorShapeRoundTrips(t *testing.T) {
	out := SpendingByCategory(nil, "Каршеринг", "2021-12-30 14:42:26", nil)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	require.Len(t, raw, 1)
	msg, ok := raw["error"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, msg)
}

func TestSpendingByCategory_MissingColumn(t *testing.T) {
	out := SpendingByCategory(ledgerWithout(sampleRows(), model.ColCategory), "Каршеринг", "2021-12-30 14:42:26", nil)
	obj := decodeError(t, out)
	assert.Contains(t, obj["error"], model.ColCategory)
}

func TestSpendingByCategory_EmptyResultIsArray(t *testing.T) {
	out := SpendingByCategory(sampleLedger(), "Фастфуд", "2025-05-20 00:00:00", nil)
	assert.Equal(t, "[]", out)
}

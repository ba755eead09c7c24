package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

func TestTopTransactions(t *testing.T) {
	rows := []model.Transaction{
		row("01.05.2025 12:00:00", -150, "*1234", "Супермаркеты", "Магнит"),
		row("02.05.2025 12:00:00", -700, "*1234", "Путешествия", "Аэрофлот"),
		row("03.05.2025 12:00:00", -50, "*1234", "Такси", "Яндекс"),
		row("04.05.2025 12:00:00", 900, "*1234", "Пополнения", "Зарплата"),
		row("05.05.2025 12:00:00", -300, "*1234", "Рестораны", "Кафе"),
	}

	top, err := TopTransactions(model.FullLedger(rows), 5)
	require.NoError(t, err)
	require.Len(t, top, 4) // income row never ranks

	assert.Equal(t, 700.0, top[0].Amount)
	assert.Equal(t, "Аэрофлот", top[0].Description)
	for i := 1; i < len(top); i++ {
		assert.LessOrEqual(t, top[i].Amount, top[i-1].Amount)
		assert.Greater(t, top[i].Amount, 0.0)
	}
}

func TestTopTransactions_LimitsToN(t *testing.T) {
	var rows []model.Transaction
	for i := 1; i <= 8; i++ {
		rows = append(rows, row("01.05.2025 12:00:00", float64(-10*i), "*1", "Такси", "Яндекс"))
	}

	top, err := TopTransactions(model.FullLedger(rows), DefaultTopN)
	require.NoError(t, err)
	require.Len(t, top, DefaultTopN)
	assert.Equal(t, 80.0, top[0].Amount)
	assert.Equal(t, 40.0, top[4].Amount)
}

func TestTopTransactions_TiesKeepRowOrder(t *testing.T) {
	rows := []model.Transaction{
		row("01.05.2025 12:00:00", -100, "*1", "Такси", "первая"),
		row("02.05.2025 12:00:00", -100, "*1", "Такси", "вторая"),
		row("03.05.2025 12:00:00", -200, "*1", "Такси", "крупная"),
	}

	top, err := TopTransactions(model.FullLedger(rows), 5)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "крупная", top[0].Description)
	assert.Equal(t, "первая", top[1].Description)
	assert.Equal(t, "вторая", top[2].Description)
}

func TestTopTransactions_AllIncome(t *testing.T) {
	rows := []model.Transaction{
		row("01.05.2025 12:00:00", 500, "*1", "Пополнения", "Зарплата"),
		row("02.05.2025 12:00:00", 30, "*1", "Пополнения", "Кешбек"),
	}

	top, err := TopTransactions(model.FullLedger(rows), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopTransactions_InvalidAmountAborts(t *testing.T) {
	rows := []model.Transaction{
		row("01.05.2025 12:00:00", -150, "*1234", "Супермаркеты", "Магнит"),
		{RawAmount: "not a number", CardNumber: "*2222", Category: "Такси"},
	}

	_, err := TopTransactions(model.FullLedger(rows), 5)
	var rowErr *common.InvalidRowError
	require.Error(t, err)
	require.True(t, errors.As(err, &rowErr))
	// The bad row surfaces as an error, never silently drops out.
	assert.Equal(t, 1, rowErr.Row)
	assert.Equal(t, "not a number", rowErr.Value)
}

func TestTopTransactions_MissingColumns(t *testing.T) {
	for _, column := range []string{
		model.ColAmount, model.ColPaymentDate, model.ColCategory, model.ColDescription,
	} {
		t.Run(column, func(t *testing.T) {
			_, err := TopTransactions(ledgerWithout(sampleRows(), column), 5)
			var colErr *common.MissingColumnError
			require.Error(t, err)
			require.True(t, errors.As(err, &colErr))
			assert.Equal(t, column, colErr.Column)
		})
	}
}

func TestTopTransactions_NilLedger(t *testing.T) {
	_, err := TopTransactions(nil, 5)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestTopTransactions_ZeroNUsesDefault(t *testing.T) {
	var rows []model.Transaction
	for i := 1; i <= 7; i++ {
		rows = append(rows, row("01.05.2025 12:00:00", float64(-i), "*1", "Такси", "Яндекс"))
	}

	top, err := TopTransactions(model.FullLedger(rows), 0)
	require.NoError(t, err)
	assert.Len(t, top, DefaultTopN)
}

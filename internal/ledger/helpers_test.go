package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkova/finsight/internal/common"
	"github.com/mvolkova/finsight/internal/model"
)

func TestCategories(t *testing.T) {
	rows := []model.Transaction{
		row("01.05.2025 12:00:00", -10, "*1", "Супермаркеты", "Магнит"),
		row("02.05.2025 12:00:00", -20, "*1", "Такси", "Яндекс"),
		row("03.05.2025 12:00:00", -30, "*1", "Супермаркеты", "Лента"),
	}

	categories, err := Categories(model.FullLedger(rows))
	require.NoError(t, err)
	assert.Equal(t, []string{"Супермаркеты", "Такси"}, categories)
}

func TestCategories_MissingColumn(t *testing.T) {
	_, err := Categories(ledgerWithout(sampleRows(), model.ColCategory))
	var colErr *common.MissingColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, model.ColCategory, colErr.Column)
}

func TestPaymentDateRange(t *testing.T) {
	rows := []model.Transaction{
		{PaymentDate: "15.05.2025", Category: "Такси"},
		{PaymentDate: "01.01.2025", Category: "Такси"},
		{PaymentDate: "31.12.2025", Category: "Такси"},
		{PaymentDate: "мусор", Category: "Такси"},
	}

	from, to, err := PaymentDateRange(model.FullLedger(rows))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestPaymentDateRange_NoParseableDates(t *testing.T) {
	rows := []model.Transaction{
		{PaymentDate: "мусор", Category: "Такси"},
	}
	_, _, err := PaymentDateRange(model.FullLedger(rows))
	assert.ErrorIs(t, err, ErrNoPaymentDates)
}

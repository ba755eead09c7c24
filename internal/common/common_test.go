package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesNameTheCulprit(t *testing.T) {
	colErr := &MissingColumnError{Column: "Сумма платежа"}
	assert.Contains(t, colErr.Error(), "Сумма платежа")

	dateErr := &InvalidDateError{Value: "2025/05/20"}
	assert.Contains(t, dateErr.Error(), "2025/05/20")

	rowErr := &InvalidRowError{Row: 7, Value: "abc"}
	assert.Contains(t, rowErr.Error(), "7")
	assert.Contains(t, rowErr.Error(), "abc")
}

func TestErrorsUnwrapThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("обработка не удалась: %w", &MissingColumnError{Column: "Категория"})

	var colErr *MissingColumnError
	assert.True(t, errors.As(wrapped, &colErr))
	assert.Equal(t, "Категория", colErr.Column)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 200.5, Round2(200.499999999))
	assert.Equal(t, 79.46, Round2(79.456))
	assert.Equal(t, -1234.56, Round2(-1234.558))
	assert.Equal(t, 0.0, Round2(0))
}

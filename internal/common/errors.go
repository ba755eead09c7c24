// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an aggregation is handed something
// that is not a ledger table.
var ErrInvalidInput = errors.New("входной параметр должен быть таблицей операций")

// MissingColumnError reports a required ledger column that is absent
// from the table's schema.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("отсутствует столбец %q", e.Column)
}

// InvalidDateError reports a reference date that does not match the
// YYYY-MM-DD HH:MM:SS input format.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("неверный формат входной даты: %q", e.Value)
}

// InvalidRowError reports a cell whose value cannot play the role its
// column requires, e.g. a non-numeric payment amount.
type InvalidRowError struct {
	Value string
	Row   int
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("некорректный тип данных в строке %d: %q", e.Row, e.Value)
}

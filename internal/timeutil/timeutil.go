// Package timeutil parses and classifies the timestamps the ledger
// works with. Everything here is pure: no clocks are read unless the
// caller supplies one.
package timeutil

import (
	"time"

	"github.com/mvolkova/finsight/internal/common"
)

const (
	// OperationLayout is the textual format the bank export writes
	// into the "Дата операции" column.
	OperationLayout = "02.01.2006 15:04:05"
	// InputLayout is the format reference dates are typed in.
	InputLayout = "2006-01-02 15:04:05"
	// PaymentLayout is the date-only format of the "Дата платежа"
	// column.
	PaymentLayout = "02.01.2006"
)

// Greeting phrases. The product speaks Russian, matching the ledger's
// locale.
const (
	GreetingNight    = "Доброй ночи"
	GreetingMorning  = "Доброе утро"
	GreetingDay      = "Добрый день"
	GreetingEvening  = "Добрый вечер"
	GreetingFallback = "Здравствуйте"
)

// ParseOperationTime parses a timestamp in the bank export's format.
func ParseOperationTime(raw string) (time.Time, error) {
	return time.Parse(OperationLayout, raw)
}

// ParseInputTime parses a user-entered reference date. A mismatched
// string yields a common.InvalidDateError.
func ParseInputTime(raw string) (time.Time, error) {
	t, err := time.Parse(InputLayout, raw)
	if err != nil {
		return time.Time{}, &common.InvalidDateError{Value: raw}
	}
	return t, nil
}

// MonthFloor returns the start-of-month boundary for t: day 1,
// midnight, same location.
func MonthFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthsBefore subtracts n calendar months from t. The day of month is
// clamped to the target month's length (May 31 minus 3 months is
// February 28 or 29), unlike AddDate, which would normalize the
// overflow into March.
func MonthsBefore(t time.Time, n int) time.Time {
	year, month := t.Year(), int(t.Month())-n
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}

	day := t.Day()
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GreetingForHour maps an hour of day to a greeting. Hours outside
// 0..23 fall back to the neutral greeting.
func GreetingForHour(hour int) string {
	switch {
	case hour == 23 || (hour >= 0 && hour <= 5):
		return GreetingNight
	case hour >= 6 && hour <= 11:
		return GreetingMorning
	case hour >= 12 && hour <= 16:
		return GreetingDay
	case hour >= 17 && hour <= 22:
		return GreetingEvening
	default:
		return GreetingFallback
	}
}

// Greeting returns the greeting for the clock's current hour. A nil
// clock (no time source available) yields the neutral greeting rather
// than an error.
func Greeting(clock func() time.Time) string {
	if clock == nil {
		return GreetingFallback
	}
	return GreetingForHour(clock().Hour())
}

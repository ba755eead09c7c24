// Package reportlog appends every report invocation's result to an
// append-only log file. The behavior is a decorator: callers wrap the
// report function once and every call is logged exactly once,
// regardless of outcome.
package reportlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mvolkova/finsight/internal/model"
)

// Reporter produces a serialized report from a ledger, a category and
// an optional reference date.
type Reporter func(l *model.Ledger, category, dateStr string, now func() time.Time) string

// Logged wraps fn so that every result, success payload and error
// object alike, is appended as one line to the file at path.
func Logged(path string, fn Reporter) Reporter {
	return func(l *model.Ledger, category, dateStr string, now func() time.Time) string {
		result := fn(l, category, dateStr, now)
		if err := Append(path, result); err != nil {
			slog.Error("failed to append report log", "path", path, "error", err)
		}
		return result
	}
}

// Append writes one newline-terminated line to the report log. The
// file is opened and closed per call so interleaved writers only race
// within normal file-append semantics.
func Append(path, line string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write report log: %w", err)
	}
	return nil
}

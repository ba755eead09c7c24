package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// marshalJSON serializes v without HTML escaping so that Cyrillic and
// URL-ish descriptions survive as-is. indent is the per-level indent
// string; empty means compact output.
func marshalJSON(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// errorJSON renders err as the report error object {"error": message}.
func errorJSON(err error) string {
	out, mErr := marshalJSON(map[string]string{"error": err.Error()}, "")
	if mErr != nil {
		// Marshaling a map of strings cannot realistically fail;
		// keep the shape anyway.
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return out
}

package cliutil

import (
	"bytes"
	"encoding/json"
)

// FormatValue renders a JSON payload for a one-line message: JSON strings
// are printed unquoted, everything else as compact JSON.
func FormatValue(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null"
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

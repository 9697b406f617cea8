// Package args coerces untyped MCP tool arguments into Go values.
//
// Required fields fail hard; optional fields with the wrong primitive type
// are treated as absent so the caller's default applies. That leniency is
// deliberate and load-bearing — callers rely on a malformed optional field
// being dropped, not rejected.
package args

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError describes a malformed or missing invocation argument.
// Handlers return it unconverted so the transport reports it as a
// protocol-level invalid-params failure rather than a tool result.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments: %s %s", e.Field, e.Reason)
}

// String returns the required string field or a *ValidationError when the
// field is missing, blank, or not a string.
func String(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", &ValidationError{Field: key, Reason: "is required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: key, Reason: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: key, Reason: "is required"}
	}
	return s, nil
}

// OptionalString returns the field when present as a string, or "" otherwise.
func OptionalString(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return strings.TrimSpace(s)
}

// OptionalInt returns the field as an int when present as any numeric type.
// JSON decoding delivers numbers as float64; json.Number also appears when
// a transport decodes with UseNumber.
func OptionalInt(raw map[string]any, key string) (int, bool) {
	switch v := raw[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

// OptionalStringMap returns the field as a string map when present as an
// object. Entries with non-string values are skipped.
func OptionalStringMap(raw map[string]any, key string) map[string]string {
	obj, ok := raw[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

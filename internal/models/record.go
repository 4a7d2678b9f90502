// internal/models/record.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Record is a parsed, format-specific generation result. It is either a
// record valid for its consumers or exactly {"error": "..."}.
type Record map[string]interface{}

// ErrorRecord builds the single-key failure record.
func ErrorRecord(msg string) Record {
	return Record{"error": msg}
}

// IsError reports whether r is a failure record.
func (r Record) IsError() bool {
	if r == nil {
		return false
	}
	_, ok := r["error"].(string)
	return ok && len(r) == 1
}

func (r Record) ErrorMessage() string {
	if !r.IsError() {
		return ""
	}
	return r["error"].(string)
}

// String returns the value at key when it is a non-empty string.
func (r Record) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// List returns the value at key when it is a JSON array.
func (r Record) List(key string) []interface{} {
	if l, ok := r[key].([]interface{}); ok {
		return l
	}
	return nil
}

// Decode converts r into a typed view by re-encoding it as JSON.
func (r Record) Decode(v interface{}) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// PromptJSON renders v as indented JSON for embedding in a prompt. Non-ASCII
// text is kept as is. When limit > 0 the text is cut to at most limit
// characters.
func PromptJSON(v interface{}, limit int) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "{}"
	}
	out := strings.TrimRight(buf.String(), "\n")
	if limit > 0 && utf8.RuneCountInString(out) > limit {
		runes := []rune(out)
		out = string(runes[:limit])
	}
	return out
}

package model

import (
	"fmt"
	"strings"
)

// Column describes one destination column: a sanitized name with an implicit
// TEXT type. All loaded values are stored as text.
type Column struct {
	Name string
}

// Schema is the ordered column layout derived from a header row. It is
// derived once per run and immutable thereafter.
type Schema []Column

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Equal compare Schema.
func (s Schema) Equal(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}
	for i, col := range s {
		if col != s2[i] {
			return false
		}
	}
	return true
}

// SanitizeName converts a raw header field into a storage-safe column name.
// Surrounding whitespace is stripped, then every rune that is not an ASCII
// letter or digit becomes an underscore. The transformation is idempotent.
func SanitizeName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if isASCIIAlphanumeric(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// isASCIIAlphanumeric reports whether r is an ASCII letter or digit.
func isASCIIAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// DeriveSchema sanitizes a header row into the ordered schema for a run.
// Header order is preserved as column order. Two header fields sanitizing to
// the same name fail with ErrDuplicateColumn rather than surfacing later as
// an opaque table-creation failure.
func DeriveSchema(header Header) (Schema, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}

	schema := make(Schema, 0, len(header))
	seen := make(map[string]struct{}, len(header))
	for _, raw := range header {
		name := SanitizeName(raw)
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		schema = append(schema, Column{Name: name})
	}
	return schema, nil
}

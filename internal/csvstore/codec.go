// internal/csvstore/codec.go
package csvstore

import "strings"

// The record format is one record per line, fields joined with commas.
// Backslash and comma inside a field are escaped with a leading backslash;
// every other character passes through unchanged.

// escapeField escapes backslashes and commas in a single field.
func escapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == ',' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// marshalRecord serializes fields into one line of escaped, comma-joined text.
func marshalRecord(fields ...string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, ",")
}

// splitRecord parses one line into exactly arity fields. A backslash takes the
// next character literally; an unescaped comma terminates the current field.
// Short records are padded with empty fields; the caller decides whether to
// treat padding as corruption. Excess fields are returned as-is so the caller
// can reject them.
func splitRecord(line string, arity int) []string {
	fields := make([]string, 0, arity)
	var cur strings.Builder
	pending := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case pending:
			cur.WriteByte(c)
			pending = false
		case c == '\\':
			pending = true
		case c == ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	for len(fields) < arity {
		fields = append(fields, "")
	}
	return fields
}

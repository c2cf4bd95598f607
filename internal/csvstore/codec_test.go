// internal/csvstore/codec_test.go
package csvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{name: "plain fields", fields: []string{"C001", "Nimal Perera", "Colombo 7", "0771234567"}},
		{name: "field with comma", fields: []string{"C002", "Perera, Nimal", "12, Galle Road"}},
		{name: "field with backslash", fields: []string{"C003", `path\to\thing`}},
		{name: "backslash before comma", fields: []string{"C004", `a\,b`, `trailing\`}},
		{name: "empty fields", fields: []string{"", "", "x"}},
		{name: "single field", fields: []string{"only"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := marshalRecord(tt.fields...)
			got := splitRecord(line, len(tt.fields))
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestSplitRecordPadsShortRows(t *testing.T) {
	got := splitRecord("C001,Nimal", 5)
	assert.Equal(t, []string{"C001", "Nimal", "", "", ""}, got)
}

func TestSplitRecordExcessFields(t *testing.T) {
	got := splitRecord("a,b,c", 2)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEscapeField(t *testing.T) {
	assert.Equal(t, `a\,b`, escapeField("a,b"))
	assert.Equal(t, `a\\b`, escapeField(`a\b`))
	assert.Equal(t, "plain", escapeField("plain"))
}

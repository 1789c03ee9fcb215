package text

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Hello world", expected: "Hello world"},
		{name: "newline kept", input: "a\nb", expected: "a\nb"},
		{name: "tab expands", input: "a\tb", expected: "a    b"},
		{name: "carriage return dropped", input: "a\r\nb", expected: "a\nb"},
		{name: "bell escaped", input: "a\x07b", expected: "a\\x07b"},
		{name: "escape escaped", input: "\x1b[31m", expected: "\\x1B[31m"},
		{name: "del escaped", input: "a\x7f", expected: "a\\x7F"},
		{name: "c1 escaped", input: "a\u0085b", expected: "aU+0085b"},
		{name: "unicode kept", input: "héllo 日本", expected: "héllo 日本"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

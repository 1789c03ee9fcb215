package text

import (
	"fmt"
	"strings"
)

const tabWidth = 4

// Sanitize prepares raw input for canvas rendering. Newlines are kept
// (they drive line layout), tabs expand to spaces, carriage returns
// drop, and remaining control characters are escaped so they cannot
// corrupt the terminal.
func Sanitize(content string) string {
	var result strings.Builder
	result.Grow(len(content))

	for _, r := range content {
		switch {
		case r == '\n':
			result.WriteRune(r)
		case r == '\t':
			result.WriteString(strings.Repeat(" ", tabWidth))
		case r == '\r':
			// dropped: the canvas has no cursor to return
		case r < 32 || r == 127:
			result.WriteString(fmt.Sprintf("\\x%02X", r))
		case r >= 0x80 && r <= 0x9F:
			// C1 control codes
			result.WriteString(fmt.Sprintf("U+%04X", r))
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

package domain

import (
	"strings"
	"unicode"
)

// CleanText prepares user-supplied text for storage and matching: surrounding
// whitespace is trimmed, inner whitespace runs collapse to one space, and
// other control characters are dropped (PostgreSQL text rejects NUL).
// Case and diacritics are preserved.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsControl(r):
		default:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

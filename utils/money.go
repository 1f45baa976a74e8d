package utils

import (
	"strconv"
	"strings"
)

// FormatFCFA formats an integer amount as a string like "15 000 FCFA".
// Uses a space as thousands separator (French convention, as used in Dakar).
func FormatFCFA(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.Itoa(amount)
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 7)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}

	b.WriteString(" FCFA")
	return b.String()
}

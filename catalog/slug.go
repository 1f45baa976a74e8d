package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "Foncé" -> "Fonce"
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Slugify converts a display name into a URL-safe identifier: lowercase,
// diacritics stripped, runs of non [a-z0-9] collapsed to a single hyphen,
// leading/trailing hyphens trimmed. Slugs are public URLs and storage keys,
// so the output must be stable across releases.
func Slugify(text string) string {
	lowered := strings.ToLower(text)
	ascii, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		ascii = lowered
	}

	var b strings.Builder
	b.Grow(len(ascii))
	pendingHyphen := false
	for _, r := range ascii {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// VariantSlug builds the public identifier for a (product type, color) pair.
func VariantSlug(productName, colorName string) string {
	return Slugify(productName) + "-" + Slugify(colorName)
}

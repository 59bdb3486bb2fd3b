package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops combining marks, so that
// "Líquido" and "Liquido" normalize to the same key.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims and removes diacritics from a header string.
func Normalize(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))

	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}

	return out
}

// ResolveExact returns the first header (in column order) whose normalized
// form is an exact alias of the field. No containment fallback is applied.
func ResolveExact(headers []string, field Field) (string, bool) {
	names := aliases[field]

	for _, h := range headers {
		n := Normalize(h)
		if n == "" {
			continue
		}

		for _, alias := range names {
			if n == alias {
				return h, true
			}
		}
	}

	return "", false
}

// Resolve maps a canonical field to the original header string that carries
// it. It tries the alias table first and then falls back to substring
// containment in either direction against the field's canonical label.
// Ties break by column order: the first matching header wins on every call.
// An unresolved field is reported as absent, never as an error.
func Resolve(headers []string, field Field) (string, bool) {
	if h, ok := ResolveExact(headers, field); ok {
		return h, true
	}

	label := field.Label()

	for _, h := range headers {
		n := Normalize(h)
		if n == "" {
			continue
		}

		if strings.Contains(n, label) || strings.Contains(label, n) {
			return h, true
		}
	}

	return "", false
}

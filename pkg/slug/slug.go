// Package slug turns arbitrary display names into URL-safe identifiers.
// The mapping is deterministic: the same name always yields the same
// slug, which is what makes slugs usable as stable external identity.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks after canonical decomposition,
// so "Café" folds to "Cafe" before the ASCII pass.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a name into a lowercase, hyphen-delimited, URL-safe
// slug. Any run of characters outside [a-z0-9] collapses into a single
// hyphen; leading and trailing hyphens are trimmed.
func Make(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		// Malformed input falls through untransliterated; the ASCII
		// pass below still guarantees a URL-safe result.
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dashReplacer folds the long dash characters used by the
// knowledge-base header grammar into a tokenizable " - "
var dashReplacer = strings.NewReplacer("—", " - ", "–", " - ")

// Normalize converts raw input text into its canonical lowercase,
// accent-stripped, whitespace-collapsed form plus the token list.
// Pure and deterministic; idempotent on its own output.
func Normalize(raw string) (string, []string) {
	s := strings.TrimSpace(raw)

	// Compatibility decomposition, diacritic removal, recomposition.
	// The chain carries internal buffers, so it is built per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	// On transform failure the input passes through untouched;
	// malformed byte sequences are opaque, never an error.

	s = strings.ToLower(s)
	s = dashReplacer.Replace(s)

	tokens := strings.Fields(s)

	return strings.Join(tokens, " "), tokens
}

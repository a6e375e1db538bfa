package pipeline

import (
	"regexp"
	"strings"
)

// markerPattern matches the first category marker as a whole word.
// "moves" is listed before "move" so the longer spelling wins at the
// same position.
var markerPattern = regexp.MustCompile(`(?i)\b(item|pokemon|pokémon|moves|move)\b`)

// leadInTokens are stripped from the front of the text following a
// category marker until a fixed point is reached. ":" and "-" are
// additionally stripped as attached leading punctuation.
var leadInTokens = map[string]bool{
	":":           true,
	"-":           true,
	"about":       true,
	"information": true,
	"info":        true,
	"on":          true,
	"of":          true,
	"the":         true,
	"named":       true,
	"called":      true,
}

// ExtractProbableID isolates the probable entity name following the
// first category marker in the normalized query. Returns empty strings
// when no marker is present or nothing usable follows it.
func ExtractProbableID(normalized string) (string, string) {
	loc := markerPattern.FindStringIndex(normalized)
	if loc == nil {
		return "", ""
	}

	marker := strings.ToLower(normalized[loc[0]:loc[1]])
	probableID := stripLeadIns(normalized[loc[1]:])

	return probableID, marker
}

// stripLeadIns removes leading lead-in tokens and attached ":"/"-"
// punctuation until no further stripping changes the string.
func stripLeadIns(tail string) string {
	for {
		trimmed := strings.TrimSpace(tail)
		trimmed = strings.TrimSpace(strings.TrimLeft(trimmed, ":-"))

		word := trimmed
		if i := strings.IndexByte(trimmed, ' '); i >= 0 {
			word = trimmed[:i]
		}
		if word != "" && leadInTokens[strings.ToLower(word)] {
			trimmed = strings.TrimSpace(trimmed[len(word):])
		}

		if trimmed == tail {
			return tail
		}
		tail = trimmed
	}
}

package model

import "strings"

// HeaderSep is the literal field delimiter of a knowledge-base line:
// an em dash surrounded by single spaces.
const HeaderSep = " — "

// Categories a knowledge-base line may carry in its header. The intent
// layer only ever selects item, pokemon or move; type records exist in
// the file but are reached through similarity search alone.
const (
	CategoryItem    = "item"
	CategoryPokemon = "pokemon"
	CategoryMove    = "move"
	CategoryType    = "type"
)

// SplitHeader parses a knowledge-base line "<Category> — <Id> — <body>".
// It is the single place the line grammar is interpreted so that the
// scorer, the fallback scanner and the uploader cannot drift apart.
// Category and id are returned trimmed but with original casing; ok is
// false when the line has fewer than two header fields.
func SplitHeader(line string) (category string, id string, body string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(line), HeaderSep, 3)
	if len(parts) < 2 {
		return "", "", "", false
	}

	category = strings.TrimSpace(parts[0])
	id = strings.TrimSpace(parts[1])
	if len(parts) == 3 {
		body = strings.TrimSpace(parts[2])
	}

	return category, id, body, true
}

// HeaderLabel builds the compact "<Category> — <Id>" label used for
// diagnostics. Empty for lines without an identifiable header.
func HeaderLabel(line string) string {
	category, id, _, ok := SplitHeader(line)
	if !ok {
		return ""
	}
	return category + HeaderSep + id
}

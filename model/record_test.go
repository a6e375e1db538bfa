package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHeader(t *testing.T) {
	t.Run("Full three-field line", func(t *testing.T) {
		category, id, body, ok := SplitHeader("Item — Pep-Up Plant — Locations: X: here")

		assert.True(t, ok)
		assert.Equal(t, "Item", category)
		assert.Equal(t, "Pep-Up Plant", id)
		assert.Equal(t, "Locations: X: here", body)
	})

	t.Run("Header without body", func(t *testing.T) {
		category, id, body, ok := SplitHeader("Move — Tackle")

		assert.True(t, ok)
		assert.Equal(t, "Move", category)
		assert.Equal(t, "Tackle", id)
		assert.Equal(t, "", body)
	})

	t.Run("Extra delimiters stay in the body", func(t *testing.T) {
		_, id, body, ok := SplitHeader("Pokemon — Piplup — Types: Water — Abilities: Torrent")

		assert.True(t, ok)
		assert.Equal(t, "Piplup", id)
		assert.Equal(t, "Types: Water — Abilities: Torrent", body)
	})

	t.Run("Line without the delimiter", func(t *testing.T) {
		_, _, _, ok := SplitHeader("just some free text")

		assert.False(t, ok)
	})

	t.Run("Plain hyphens are not the delimiter", func(t *testing.T) {
		_, _, _, ok := SplitHeader("Item - Pep-Up Plant - Locations: here")

		assert.False(t, ok)
	})

	t.Run("Surrounding whitespace is trimmed", func(t *testing.T) {
		category, id, _, ok := SplitHeader("  Item — Pep-Up Plant — body  ")

		assert.True(t, ok)
		assert.Equal(t, "Item", category)
		assert.Equal(t, "Pep-Up Plant", id)
	})

	t.Run("Empty line", func(t *testing.T) {
		_, _, _, ok := SplitHeader("")

		assert.False(t, ok)
	})
}

func TestHeaderLabel(t *testing.T) {
	t.Run("Label keeps original casing", func(t *testing.T) {
		label := HeaderLabel("Move — Ice Beam — Type=Water; Power=90")

		assert.Equal(t, "Move — Ice Beam", label)
	})

	t.Run("Unparseable line yields empty label", func(t *testing.T) {
		label := HeaderLabel("no header here")

		assert.Equal(t, "", label)
	})
}

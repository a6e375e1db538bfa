package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProbableID(t *testing.T) {
	t.Run("Lead-in words between marker and identifier", func(t *testing.T) {
		probableID, marker := ExtractProbableID("information about the item pep-up plant")

		assert.Equal(t, "pep-up plant", probableID)
		assert.Equal(t, "item", marker)
	})

	t.Run("Marker with attached colon", func(t *testing.T) {
		probableID, marker := ExtractProbableID("pokemon: piplup")

		assert.Equal(t, "piplup", probableID)
		assert.Equal(t, "pokemon", marker)
	})

	t.Run("Chained lead-ins are stripped to a fixed point", func(t *testing.T) {
		probableID, marker := ExtractProbableID("item info on the pep-up plant")

		assert.Equal(t, "pep-up plant", probableID)
		assert.Equal(t, "item", marker)
	})

	t.Run("Plural marker wins over singular at the same position", func(t *testing.T) {
		probableID, marker := ExtractProbableID("moves of ice beam")

		assert.Equal(t, "moves", marker)
		assert.Equal(t, "ice beam", probableID)
	})

	t.Run("First marker positionally wins", func(t *testing.T) {
		probableID, marker := ExtractProbableID("move tackle of the pokemon piplup")

		assert.Equal(t, "move", marker)
		assert.Equal(t, "tackle of the pokemon piplup", probableID)
	})

	t.Run("No marker present", func(t *testing.T) {
		probableID, marker := ExtractProbableID("tell me a story")

		assert.Equal(t, "", probableID)
		assert.Equal(t, "", marker)
	})

	t.Run("Marker at end of query", func(t *testing.T) {
		probableID, marker := ExtractProbableID("tell me about the item")

		assert.Equal(t, "", probableID, "Expected no identifier when nothing follows the marker")
		assert.Equal(t, "item", marker)
	})

	t.Run("Only lead-ins follow the marker", func(t *testing.T) {
		probableID, marker := ExtractProbableID("item info about the")

		assert.Equal(t, "", probableID)
		assert.Equal(t, "item", marker)
	})

	t.Run("Marker inside a larger word does not match", func(t *testing.T) {
		probableID, marker := ExtractProbableID("itemized movements")

		assert.Equal(t, "", probableID)
		assert.Equal(t, "", marker)
	})
}

func TestStripLeadIns(t *testing.T) {
	t.Run("Leading punctuation and words", func(t *testing.T) {
		assert.Equal(t, "piplup", stripLeadIns(": - about the piplup"))
	})

	t.Run("Identifier containing a lead-in word is kept intact", func(t *testing.T) {
		assert.Equal(t, "king of the hill", stripLeadIns(" named king of the hill"))
	})

	t.Run("Empty tail", func(t *testing.T) {
		assert.Equal(t, "", stripLeadIns("   "))
	})
}

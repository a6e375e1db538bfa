package retrieval

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKBPath(t *testing.T) {
	t.Run("Document name is joined to the data dir", func(t *testing.T) {
		path := ResolveKBPath("data/processed", "custom_kb.txt")

		assert.Equal(t, filepath.Join("data/processed", "custom_kb.txt"), path)
	})

	t.Run("Empty document name uses the default", func(t *testing.T) {
		path := ResolveKBPath("data/processed", "")

		assert.Equal(t, filepath.Join("data/processed", DefaultKBName), path)
	})
}

func TestFindExactLine(t *testing.T) {
	kbPath := filepath.Join("testdata", "pokemon_kb.txt")

	t.Run("Exact prefix hit returns the line with original casing", func(t *testing.T) {
		line := FindExactLine(kbPath, "item", "pep-up plant")

		assert.Equal(t, "Item — Pep-Up Plant — Locations: X: here", line)
	})

	t.Run("Identifier is matched case insensitively", func(t *testing.T) {
		line := FindExactLine(kbPath, "move", "Ice Beam")

		assert.Equal(t, "Move — Ice Beam — Type=Water; Power=90; Accuracy=100", line)
	})

	t.Run("Empty identifier skips the scan", func(t *testing.T) {
		line := FindExactLine(kbPath, "item", "")

		assert.Equal(t, "", line)
	})

	t.Run("Missing file is not an error", func(t *testing.T) {
		line := FindExactLine(filepath.Join("testdata", "does_not_exist.txt"), "item", "pep-up plant")

		assert.Equal(t, "", line)
	})

	t.Run("No matching line", func(t *testing.T) {
		line := FindExactLine(kbPath, "item", "master ball")

		assert.Equal(t, "", line)
	})

	t.Run("Category must match the header", func(t *testing.T) {
		line := FindExactLine(kbPath, "move", "pep-up plant")

		assert.Equal(t, "", line)
	})

	t.Run("Identifier prefix alone does not match", func(t *testing.T) {
		line := FindExactLine(kbPath, "move", "ice")

		assert.Equal(t, "", line, "Expected the trailing delimiter to prevent prefix-only hits")
	})
}

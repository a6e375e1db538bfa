package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntent(t *testing.T) {
	t.Run("Any", func(t *testing.T) {
		assert.False(t, Intent{}.Any())
		assert.True(t, Intent{WantsMove: true}.Any())
		assert.True(t, Intent{WantsItem: true, WantsPokemon: true}.Any())
	})

	t.Run("Allowed set mirrors the flags", func(t *testing.T) {
		allowed := Intent{WantsItem: true, WantsMove: true}.Allowed()

		assert.Equal(t, map[string]bool{CategoryItem: true, CategoryMove: true}, allowed)
	})

	t.Run("Allowed is empty without flags", func(t *testing.T) {
		assert.Empty(t, Intent{}.Allowed())
	})

	t.Run("PrimaryCategory priority is item over pokemon over move", func(t *testing.T) {
		assert.Equal(t, CategoryItem, Intent{WantsItem: true, WantsPokemon: true, WantsMove: true}.PrimaryCategory())
		assert.Equal(t, CategoryPokemon, Intent{WantsPokemon: true, WantsMove: true}.PrimaryCategory())
		assert.Equal(t, CategoryMove, Intent{WantsMove: true}.PrimaryCategory())
	})
}

func TestDefaultQueryConfig(t *testing.T) {
	config := DefaultQueryConfig()

	assert.Equal(t, 10, config.TopK)
	assert.Equal(t, 0.98, config.ScoreThreshold)
	assert.Equal(t, "", config.DocName)
	assert.False(t, config.Debug)
}

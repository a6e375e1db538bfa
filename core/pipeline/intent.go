package pipeline

import (
	"strings"

	"github.com/wrenfield/kbresolve/model"
)

// punctCutset is stripped from both ends of a token before marker
// matching, so "pokemon:" or "item," still count as markers.
const punctCutset = ".,:;!?()[]{}'\"“”‘’`"

// Classify inspects tokens for category markers and returns the
// resulting intent flags. Tokens are expected lowercase; the accented
// pokemon spelling is accepted for callers that tokenize without
// normalizing first.
func Classify(tokens []string) model.Intent {
	var intent model.Intent

	for _, token := range tokens {
		switch strings.Trim(token, punctCutset) {
		case "item":
			intent.WantsItem = true
		case "pokemon", "pokémon":
			intent.WantsPokemon = true
		case "move", "moves":
			intent.WantsMove = true
		}
	}

	return intent
}

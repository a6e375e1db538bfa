package model

// Intent holds the category flags detected in a query. Multiple flags
// may be true at once when a query names several category markers.
type Intent struct {
	WantsItem    bool `json:"wants_item"`
	WantsPokemon bool `json:"wants_pokemon"`
	WantsMove    bool `json:"wants_move"`
}

// Any reports whether at least one category marker was detected
func (i Intent) Any() bool {
	return i.WantsItem || i.WantsPokemon || i.WantsMove
}

// Allowed returns the set of category names the query may refer to,
// empty when no marker was found.
func (i Intent) Allowed() map[string]bool {
	allowed := make(map[string]bool, 3)
	if i.WantsItem {
		allowed[CategoryItem] = true
	}
	if i.WantsPokemon {
		allowed[CategoryPokemon] = true
	}
	if i.WantsMove {
		allowed[CategoryMove] = true
	}
	return allowed
}

// PrimaryCategory maps the flags to a single knowledge-base header
// category. When several flags are set, item wins over pokemon wins
// over move. The order is a preserved product decision, not an
// accident of evaluation.
func (i Intent) PrimaryCategory() string {
	switch {
	case i.WantsItem:
		return CategoryItem
	case i.WantsPokemon:
		return CategoryPokemon
	default:
		return CategoryMove
	}
}

// Query is the per-request analysis of one user utterance. It is
// produced once by the pipeline and discarded after the resolve call.
type Query struct {
	Raw        string   `json:"raw"`
	Normalized string   `json:"normalized"`
	Tokens     []string `json:"tokens"`
	Intent     Intent   `json:"intent"`
	// ProbableID is the heuristically extracted entity name following
	// the first category marker; empty when no marker was found or
	// nothing follows it. Marker is the matched marker spelling.
	ProbableID string `json:"probable_id,omitempty"`
	Marker     string `json:"marker,omitempty"`
}

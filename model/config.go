package model

// QueryConfig represents configuration for a resolution query
type QueryConfig struct {
	// Vector search parameters
	TopK int `json:"top_k"`
	// DocName restricts the search and the fallback scan to one
	// uploaded knowledge-base document; empty means the default file.
	DocName string `json:"doc_name,omitempty"`
	// ScoreThreshold is the similarity score below which the exact
	// lookup fallback is attempted for queries with a category marker.
	ScoreThreshold float64 `json:"score_threshold"`
	// Debug attaches the full labeled candidate list to the resolution
	Debug bool `json:"debug"`
}

// SearchFilter restricts a semantic search to one uploaded document
type SearchFilter struct {
	DocName string `json:"doc_name,omitempty"`
}

// DefaultQueryConfig returns a sensible default configuration
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		TopK:           10,
		ScoreThreshold: 0.98,
		Debug:          false,
	}
}

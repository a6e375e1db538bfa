package pipeline

import "github.com/wrenfield/kbresolve/model"

// NormalizeFunc converts raw text into normalized form plus tokens
type NormalizeFunc func(raw string) (normalized string, tokens []string)

// ClassifyFunc derives intent flags from the token list
type ClassifyFunc func(tokens []string) model.Intent

// ExtractFunc isolates the probable entity identifier and the matched
// category marker from the normalized query
type ExtractFunc func(normalized string) (probableID string, marker string)

// Pipeline combines the query analysis stages
type Pipeline struct {
	Normalizer NormalizeFunc
	Classifier ClassifyFunc
	Extractor  ExtractFunc
}

// DefaultPipeline wires the standard normalize, classify and extract stages
func DefaultPipeline() *Pipeline {
	return &Pipeline{
		Normalizer: Normalize,
		Classifier: Classify,
		Extractor:  ExtractProbableID,
	}
}

// Process runs one raw utterance through all stages, producing the
// fully annotated per-request query
func (p *Pipeline) Process(raw string) *model.Query {
	normalized, tokens := p.Normalizer(raw)

	q := &model.Query{
		Raw:        raw,
		Normalized: normalized,
		Tokens:     tokens,
	}
	q.Intent = p.Classifier(tokens)
	q.ProbableID, q.Marker = p.Extractor(normalized)

	return q
}

package retrieval

import (
	"context"
	"log/slog"

	"github.com/wrenfield/kbresolve/core/pipeline"
	"github.com/wrenfield/kbresolve/helper"
	"github.com/wrenfield/kbresolve/model"
)

// Searcher is the semantic search collaborator. The returned sequence
// is treated as an unordered candidate pool; the engine rescores it.
type Searcher interface {
	Query(ctx context.Context, text string, topK int, where *model.SearchFilter) ([]model.Candidate, error)
}

// Engine runs the resolution pipeline: query analysis, semantic
// search, identifier rescoring and the exact-lookup fallback.
type Engine struct {
	search   Searcher
	pipeline *pipeline.Pipeline
	// dataDir holds the knowledge-base files scanned by the fallback
	dataDir string
	log     *slog.Logger
}

// NewEngine creates a new resolution engine
func NewEngine(search Searcher, pipe *pipeline.Pipeline, dataDir string, logger *slog.Logger) *Engine {
	if pipe == nil {
		pipe = pipeline.DefaultPipeline()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		search:   search,
		pipeline: pipe,
		dataDir:  dataDir,
		log:      logger,
	}
}

// Resolve chooses at most one knowledge-base line for the given raw
// utterance. Search transport failure is the only error; every
// data-dependent condition degrades to an unresolved result.
func (e *Engine) Resolve(ctx context.Context, raw string, config *model.QueryConfig) (*model.Resolution, error) {
	if config == nil {
		defaults := model.DefaultQueryConfig()
		config = &defaults
	}

	q := e.pipeline.Process(raw)

	var where *model.SearchFilter
	if config.DocName != "" {
		where = &model.SearchFilter{DocName: config.DocName}
	}

	candidates, err := e.search.Query(ctx, raw, config.TopK, where)
	if err != nil {
		return nil, helper.NewError("semantic search", err)
	}

	// Category-inconsistent candidates are dropped before rescoring,
	// unless that would empty the pool.
	pool := FilterByCategory(candidates, q.Intent.Allowed())

	best, score := SelectBest(pool, q)

	resolution := &model.Resolution{
		Score:  score,
		Method: model.RetrievalMethodNone,
		Query:  q,
	}
	if best != nil {
		resolution.Text = best.Text
		resolution.Method = model.RetrievalMethodSimilarity
	}
	if config.Debug {
		resolution.Candidates = ScoreCandidates(pool, q)
	}

	if q.Intent.Any() && (best == nil || score < config.ScoreThreshold) {
		category := q.Intent.PrimaryCategory()
		kbPath := ResolveKBPath(e.dataDir, config.DocName)

		if line := FindExactLine(kbPath, category, q.ProbableID); line != "" {
			e.log.Debug("Exact lookup fallback hit",
				slog.String("category", category),
				slog.String("probable_id", q.ProbableID),
				slog.Float64("similarity_score", score))

			resolution.Text = line
			resolution.Score = 1.0
			resolution.Method = model.RetrievalMethodExact
		}
	}

	if !resolution.Resolved() {
		resolution.Method = model.RetrievalMethodNone
		e.log.Debug("No context resolved", slog.String("query", q.Normalized))
	}

	return resolution, nil
}

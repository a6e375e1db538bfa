package kbresolve

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/wrenfield/kbresolve/core/pipeline"
	"github.com/wrenfield/kbresolve/core/retrieval"
	"github.com/wrenfield/kbresolve/database"
	"github.com/wrenfield/kbresolve/helper"
	"github.com/wrenfield/kbresolve/model"
	"github.com/wrenfield/kbresolve/search"
	loadSql "github.com/wrenfield/kbresolve/sql"
)

var errNoStore = errors.New("no knowledge-base store configured, use New instead of NewWithSearcher")

// Resolver provides a unified interface to the knowledge-base store,
// the semantic searcher and the resolution engine
type Resolver struct {
	DB        *helper.Database
	Documents *database.DocumentsDBHandler
	Lines     *database.LinesDBHandler
	Search    *search.PGVector
	Engine    *retrieval.Engine
	// Logging
	log *slog.Logger
}

// New creates a new Resolver with all handlers initialized. The data
// directory holds the knowledge-base files scanned by the exact-lookup
// fallback; an empty embeddingDim is not allowed by the lines handler.
func New(config *helper.DatabaseConfiguration, embeddingDim int, dataDir string) (*Resolver, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db := helper.NewDatabase("kbresolve", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// Create handlers in the correct order (documents first, then lines)
	// force=false to not reload if functions already exist
	documents, err := database.NewDocumentsDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create documents handler", err)
	}

	lines, err := database.NewLinesDBHandler(db, embeddingDim, false)
	if err != nil {
		return nil, helper.NewError("create lines handler", err)
	}

	embedder, err := search.DefaultEmbedder()
	if err != nil {
		return nil, helper.NewError("create default embedder", err)
	}

	searcher, err := search.NewPGVector(lines, documents, embedder, logger)
	if err != nil {
		return nil, helper.NewError("create pgvector searcher", err)
	}

	engine := retrieval.NewEngine(searcher, pipeline.DefaultPipeline(), dataDir, logger)

	return &Resolver{
		DB:        db,
		Documents: documents,
		Lines:     lines,
		Search:    searcher,
		Engine:    engine,
		log:       logger,
	}, nil
}

// NewWithSearcher creates a Resolver around an existing search
// collaborator, without any database wiring. Useful for tests and for
// callers bringing their own vector store.
func NewWithSearcher(searcher retrieval.Searcher, dataDir string, logger *slog.Logger) *Resolver {
	if logger == nil {
		opts := helper.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{
				Level: slog.LevelInfo,
			},
		}
		logger = slog.New(helper.NewPrettyHandler(os.Stdout, opts))
	}

	return &Resolver{
		Engine: retrieval.NewEngine(searcher, pipeline.DefaultPipeline(), dataDir, logger),
		log:    logger,
	}
}

// Resolve chooses at most one knowledge-base line for the raw utterance
func (r *Resolver) Resolve(ctx context.Context, raw string, config *model.QueryConfig) (*model.Resolution, error) {
	return r.Engine.Resolve(ctx, raw, config)
}

// UploadKB embeds and stores a knowledge-base file line by line under
// docName (the file's base name when empty)
func (r *Resolver) UploadKB(ctx context.Context, path string, docName string) (*model.Document, error) {
	if r.Search == nil {
		return nil, helper.NewError("upload knowledge base", errNoStore)
	}
	return r.Search.UploadKB(ctx, path, docName)
}

// Close closes the database connection
func (r *Resolver) Close() error {
	if r.DB != nil && r.DB.Instance != nil {
		return r.DB.Instance.Close()
	}
	return nil
}

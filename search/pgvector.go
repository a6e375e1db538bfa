package search

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrenfield/kbresolve/database"
	"github.com/wrenfield/kbresolve/helper"
	"github.com/wrenfield/kbresolve/model"
)

// PGVector is a semantic search collaborator backed by PostgreSQL with
// the pgvector extension. Knowledge-base lines are stored whole, one
// row per record, and searched by cosine distance against the query
// embedding. It satisfies the resolution engine's Searcher interface.
type PGVector struct {
	lines     *database.LinesDBHandler
	documents *database.DocumentsDBHandler
	embed     EmbedFunc
	log       *slog.Logger
}

// NewPGVector creates a pgvector-backed searcher from the two database
// handlers and an embedding function
func NewPGVector(lines *database.LinesDBHandler, documents *database.DocumentsDBHandler, embed EmbedFunc, logger *slog.Logger) (*PGVector, error) {
	if lines == nil || documents == nil {
		return nil, helper.NewError("pgvector searcher validation", fmt.Errorf("database handlers must not be nil"))
	}
	if embed == nil {
		return nil, helper.NewError("pgvector searcher validation", fmt.Errorf("embedder must not be nil"))
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PGVector{
		lines:     lines,
		documents: documents,
		embed:     embed,
		log:       logger,
	}, nil
}

// Query embeds the text and returns the topK closest knowledge-base
// lines as candidates, optionally restricted to one document name.
func (s *PGVector) Query(ctx context.Context, text string, topK int, where *model.SearchFilter) ([]model.Candidate, error) {
	embedding, err := s.embed(text)
	if err != nil {
		return nil, helper.NewError("generate query embedding", err)
	}

	docName := ""
	if where != nil {
		docName = where.DocName
	}

	lines, err := s.lines.SelectLinesBySimilarity(embedding, topK, docName)
	if err != nil {
		return nil, helper.NewError("similarity search", err)
	}

	candidates := make([]model.Candidate, 0, len(lines))
	for _, line := range lines {
		metadata := model.Metadata{
			"doc_name": line.Metadata["doc_name"],
			"index":    line.LineIndex,
		}
		candidates = append(candidates, model.Candidate{
			Text:     line.Content,
			Distance: line.Distance,
			Metadata: metadata,
		})
	}

	return candidates, nil
}

// UploadKB reads a knowledge-base file, splits it by lines so every
// record stays intact, embeds each line and stores it under docName.
// Blank lines are skipped; lines without a parseable header are stored
// with empty header fields and remain searchable.
func (s *PGVector) UploadKB(ctx context.Context, path string, docName string) (*model.Document, error) {
	if docName == "" {
		docName = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, helper.NewError("open knowledge base", err)
	}
	defer f.Close()

	doc := &model.Document{
		Name:     docName,
		Source:   path,
		Metadata: model.Metadata{},
	}
	if err := s.documents.InsertDocument(doc); err != nil {
		return nil, helper.NewError("insert document", err)
	}

	// Re-uploads replace the previous content wholesale
	if err := s.lines.DeleteLinesByDocument(doc.RID); err != nil {
		return nil, helper.NewError("clear previous lines", err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	index := 0
	inserted := 0
	for scanner.Scan() {
		content := strings.TrimSpace(scanner.Text())
		index++
		if content == "" {
			continue
		}

		category, recordID, _, _ := model.SplitHeader(content)

		embedding, err := s.embed(content)
		if err != nil {
			return nil, helper.NewError(fmt.Sprintf("embed line %d", index), err)
		}

		line := &model.Line{
			DocumentID: doc.ID,
			LineIndex:  index,
			Content:    content,
			Category:   strings.ToLower(category),
			RecordID:   strings.ToLower(recordID),
			Embedding:  embedding,
			Metadata:   model.Metadata{"doc_name": docName},
		}
		if err := s.lines.InsertLine(line); err != nil {
			return nil, helper.NewError(fmt.Sprintf("insert line %d", index), err)
		}
		inserted++
	}
	if err := scanner.Err(); err != nil {
		return nil, helper.NewError("read knowledge base", err)
	}

	doc.LineCount = inserted
	if err := s.documents.InsertDocument(doc); err != nil {
		return nil, helper.NewError("update document line count", err)
	}

	s.log.Info("Uploaded knowledge base",
		slog.String("doc_name", docName),
		slog.Int("lines", inserted))

	return doc, nil
}

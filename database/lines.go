package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/wrenfield/kbresolve/helper"
	"github.com/wrenfield/kbresolve/model"
	loadSql "github.com/wrenfield/kbresolve/sql"
)

// LinesDBHandlerFunctions defines the interface for kb-line database operations.
type LinesDBHandlerFunctions interface {
	InsertLine(line *model.Line) error
	SelectLinesBySimilarity(embedding []float32, limit int, docName string) ([]*model.Line, error)
	DeleteLinesByDocument(documentRID uuid.UUID) error
	CountLines(docName string) (int64, error)
}

// LinesDBHandler handles knowledge-base line storage and similarity search
type LinesDBHandler struct {
	db *helper.Database
}

// NewLinesDBHandler creates a new kb-lines database handler.
// It loads the line-related SQL functions and creates the table with
// the given embedding dimension. If force is true, the SQL functions
// are reloaded even if they already exist.
func NewLinesDBHandler(db *helper.Database, embeddingDim int, force bool) (*LinesDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	linesDbHandler := &LinesDBHandler{
		db: db,
	}

	err := loadSql.LoadLinesSql(linesDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load lines sql", err)
	}

	err = linesDbHandler.CreateTable(embeddingDim)
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized LinesDBHandler")

	return linesDbHandler, nil
}

// CreateTable creates the 'kb_lines' table in the database.
// If the table already exists, it does not create it again.
func (h *LinesDBHandler) CreateTable(embeddingDim int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_lines($1);`, embeddingDim)
	if err != nil {
		log.Panicf("error initializing kb_lines table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table kb_lines")

	return nil
}

// InsertLine inserts a new knowledge-base line
func (h *LinesDBHandler) InsertLine(line *model.Line) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_kb_line($1, $2, $3, $4, $5, $6, $7)`,
		line.DocumentID,
		line.LineIndex,
		line.Content,
		line.Category,
		line.RecordID,
		pq.Array(line.Embedding),
		line.Metadata,
	)

	err := row.Scan(
		&line.ID,
		&line.DocumentID,
		&line.DocumentRID,
		&line.LineIndex,
		&line.Content,
		&line.Category,
		&line.RecordID,
		&line.Metadata,
		&line.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectLinesBySimilarity retrieves the closest lines by cosine
// distance, optionally restricted to one document name
func (h *LinesDBHandler) SelectLinesBySimilarity(embedding []float32, limit int, docName string) ([]*model.Line, error) {
	embeddingVector := pgvector.NewVector(embedding)
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_lines_by_similarity($1, $2, $3)`,
		embeddingVector,
		limit,
		docName,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var lines []*model.Line
	for rows.Next() {
		line := &model.Line{}
		var name string
		var distance float64

		err := rows.Scan(
			&line.ID,
			&line.DocumentID,
			&line.DocumentRID,
			&name,
			&line.LineIndex,
			&line.Content,
			&line.Category,
			&line.RecordID,
			&line.Metadata,
			&line.CreatedAt,
			&distance,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		if line.Metadata == nil {
			line.Metadata = model.Metadata{}
		}
		line.Metadata["doc_name"] = name
		line.Distance = &distance

		lines = append(lines, line)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return lines, nil
}

// DeleteLinesByDocument deletes all lines belonging to a document
func (h *LinesDBHandler) DeleteLinesByDocument(documentRID uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_lines_by_document($1)`,
		documentRID,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

// CountLines counts stored lines, optionally for one document name
func (h *LinesDBHandler) CountLines(docName string) (int64, error) {
	var total int64
	err := h.db.Instance.QueryRow(
		`SELECT count_lines($1)`,
		docName,
	).Scan(&total)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}

	return total, nil
}

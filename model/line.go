package model

import (
	"time"

	"github.com/google/uuid"
)

// Line is one stored knowledge-base record together with its embedding.
// Category and RecordID mirror the parsed line header so searches can
// filter without re-parsing content.
type Line struct {
	ID          int64     `json:"id"`
	DocumentID  int64     `json:"document_id"`
	DocumentRID uuid.UUID `json:"document_rid"`
	LineIndex   int       `json:"line_index"`
	Content     string    `json:"content"`
	Category    string    `json:"category,omitempty"`
	RecordID    string    `json:"record_id,omitempty"`
	Embedding   []float32 `json:"embedding,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	// Results
	Distance *float64 `json:"distance,omitempty"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one uploaded knowledge-base file. Name is the
// logical document name callers filter searches by (e.g.
// "pokemon_kb.txt"), Source the path it was read from.
type Document struct {
	ID        int64     `json:"id"`
	RID       uuid.UUID `json:"rid"`
	Name      string    `json:"name"`
	Source    string    `json:"source,omitempty"`
	LineCount int       `json:"line_count"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

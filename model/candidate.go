package model

import "strings"

// RetrievalMethod describes how a resolution was produced
type RetrievalMethod string

const (
	RetrievalMethodSimilarity RetrievalMethod = "similarity"
	RetrievalMethodExact      RetrievalMethod = "exact"
	RetrievalMethodNone       RetrievalMethod = "none"
)

// Candidate is one result returned by the semantic search collaborator.
// Text is expected to be a knowledge-base line, Distance the reported
// semantic distance (smaller is closer, nil when the engine reported
// none) and Metadata carries at least the source document name.
type Candidate struct {
	Text     string   `json:"text"`
	Distance *float64 `json:"distance,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// ID returns the lowercased header identifier of the candidate line,
// empty when the line has no parseable header.
func (c *Candidate) ID() string {
	_, id, _, ok := SplitHeader(c.Text)
	if !ok {
		return ""
	}
	return strings.ToLower(id)
}

// Category returns the lowercased header category of the candidate line
func (c *Candidate) Category() string {
	category, _, _, ok := SplitHeader(c.Text)
	if !ok {
		return ""
	}
	return strings.ToLower(category)
}

// Label returns the "<Category> — <Id>" diagnostic label
func (c *Candidate) Label() string {
	return HeaderLabel(c.Text)
}

// DocName returns the source document name from the candidate metadata
func (c *Candidate) DocName() string {
	if c.Metadata == nil {
		return ""
	}
	if name, ok := c.Metadata["doc_name"].(string); ok {
		return name
	}
	return ""
}

// ScoredCandidate annotates a candidate with its identifier similarity
// against the query. Only materialized for debug output.
type ScoredCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
	Label     string    `json:"label,omitempty"`
}

// Resolution is the outcome of one resolve call: the chosen
// knowledge-base line (empty when nothing resolved), its confidence
// score and the method that produced it. Candidates is only populated
// in debug mode.
type Resolution struct {
	Text       string            `json:"text,omitempty"`
	Score      float64           `json:"score"`
	Method     RetrievalMethod   `json:"method"`
	Query      *Query            `json:"query,omitempty"`
	Candidates []ScoredCandidate `json:"candidates,omitempty"`
}

// Resolved reports whether a context line was chosen
func (r *Resolution) Resolved() bool {
	return r != nil && r.Text != ""
}

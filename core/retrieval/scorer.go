package retrieval

import (
	"math"
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/wrenfield/kbresolve/model"
)

// NoCandidateScore is the sentinel score returned when no candidate
// was available to select from.
const NoCandidateScore = -1.0

// IDSimilarity scores how well a candidate identifier matches the
// normalized query, in [0.0, 1.0]. An exact match scores 1.0 and an
// identifier contained verbatim in the query scores 0.99; everything
// else takes the maximum of a token-set ratio (word order and
// duplication insensitive) and a partial ratio (rewards the identifier
// appearing as a near-contiguous span).
func IDSimilarity(normalized string, id string) float64 {
	if id == "" {
		return 0.0
	}
	if id == normalized {
		return 1.0
	}
	if strings.Contains(normalized, id) {
		return 0.99
	}

	tokenSet := fuzzywuzzy.TokenSetRatio(normalized, id)
	partial := fuzzywuzzy.PartialRatio(normalized, id)

	return float64(max(tokenSet, partial)) / 100.0
}

// SelectBest picks the single best candidate by identifier similarity
// against the normalized query. Exact score ties are broken by the
// smaller reported search distance (a missing distance never wins over
// a present one). When no candidate improves on the sentinel and the
// list is non-empty, the first candidate is returned. Malformed
// candidate lines score 0.0 and are never an error.
func SelectBest(candidates []model.Candidate, q *model.Query) (*model.Candidate, float64) {
	best := -1
	bestScore := NoCandidateScore

	for i := range candidates {
		score := 0.0
		if id := candidates[i].ID(); id != "" {
			score = IDSimilarity(q.Normalized, id)
		}

		if score > bestScore {
			best = i
			bestScore = score
		} else if score == bestScore && best >= 0 {
			if candidateDistance(&candidates[i]) < candidateDistance(&candidates[best]) {
				best = i
			}
		}
	}

	if best < 0 {
		if len(candidates) == 0 {
			return nil, NoCandidateScore
		}
		best = 0
	}

	return &candidates[best], bestScore
}

// candidateDistance returns the reported search distance, +Inf when absent
func candidateDistance(c *model.Candidate) float64 {
	if c.Distance == nil {
		return math.Inf(1)
	}
	return *c.Distance
}

// FilterByCategory keeps only candidates whose header category is in
// the allowed set. When no candidate survives, or the set is empty,
// the pool is returned unfiltered so the rescoring stage always has
// the full pool to fall back on.
func FilterByCategory(candidates []model.Candidate, allowed map[string]bool) []model.Candidate {
	if len(candidates) == 0 || len(allowed) == 0 {
		return candidates
	}

	var filtered []model.Candidate
	for _, candidate := range candidates {
		if allowed[candidate.Category()] {
			filtered = append(filtered, candidate)
		}
	}

	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

// ScoreCandidates annotates every candidate with its similarity score
// and diagnostic label, for debug output.
func ScoreCandidates(candidates []model.Candidate, q *model.Query) []model.ScoredCandidate {
	scored := make([]model.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		score := 0.0
		if id := candidate.ID(); id != "" {
			score = IDSimilarity(q.Normalized, id)
		}
		scored = append(scored, model.ScoredCandidate{
			Candidate: candidate,
			Score:     score,
			Label:     candidate.Label(),
		})
	}
	return scored
}

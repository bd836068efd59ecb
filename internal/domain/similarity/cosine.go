// Package similarity implements cosine scoring over embedding vectors.
package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/lookbook-io/lookbook/internal/domain"
)

// Cosine returns the cosine similarity of two vectors. Returns 0 when either
// vector has zero norm (including empty vectors), so it never divides by zero.
// Precondition: len(a) == len(b); callers going through RankAll get that
// checked for them.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Candidate is one (id, vector) pair offered for ranking.
type Candidate struct {
	ID     string
	Vector []float32
}

// Match is one ranked (id, score) result.
type Match struct {
	ID    string
	Score float64
}

// RankAll scores every candidate against target and returns matches sorted
// descending by score, stable on ties (input order preserved). When n is
// smaller than the candidate count the top n+1 are returned: the extra slot
// lets the caller drop a self-match by id, which this engine knows nothing
// about. An empty candidate list yields an empty result. A candidate of a
// different dimension than target fails loudly with ErrVectorDimMismatch and
// no partial results.
func RankAll(target []float32, candidates []Candidate, n int) ([]Match, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Vector) != len(target) {
			return nil, fmt.Errorf(
				"candidate %s: dim %d vs target %d: %w",
				c.ID, len(c.Vector), len(target), domain.ErrVectorDimMismatch,
			)
		}
		matches = append(matches, Match{ID: c.ID, Score: Cosine(target, c.Vector)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if n > 0 && n+1 < len(matches) {
		matches = matches[:n+1]
	}
	return matches, nil
}

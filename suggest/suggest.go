// Package suggest finds close matches for a mistyped token among a set of
// known candidates. It backs the "did you mean" hints offered after an
// unrecognized argument.
package suggest

import (
	"cmp"
	"slices"

	"github.com/agext/levenshtein"
)

// minSimilarity is the Levenshtein similarity score (0..1) a candidate must
// reach to be suggested at all. Below this, suggestions are more confusing
// than helpful.
const minSimilarity = 0.5

// FindSimilar returns up to max candidates similar to target, best match
// first. Candidates scoring below the similarity threshold are excluded, so
// the result may be empty. The input order breaks ties.
func FindSimilar(target string, candidates []string, max int) []string {
	type scored struct {
		name  string
		score float64
	}
	var matches []scored
	for _, c := range candidates {
		if score := levenshtein.Similarity(target, c, nil); score >= minSimilarity {
			matches = append(matches, scored{name: c, score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	if len(matches) > max {
		matches = matches[:max]
	}
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.name)
	}
	return result
}

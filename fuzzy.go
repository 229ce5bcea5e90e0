package dialog

import (
	"slices"
	"unicode"
)

// fuzzyMatch is one entry of the filtered view: an item that matched the
// current query, its score, and the rune positions that matched (for
// highlight rendering). Index always refers to the original item list; items
// are never reordered in place, only in this derived view.
type fuzzyMatch struct {
	Index     int
	Text      string
	Score     int
	Positions []int
}

// Scoring weights. Every matched query rune earns the base; runs of
// adjacent matches and matches on word starts earn extra, and longer
// candidates lose a little so tighter matches rank first.
const (
	fuzzyMatchBase        = 10
	fuzzyConsecutiveBonus = 5
	fuzzyWordStartBonus   = 8
)

// fuzzyScore matches query against candidate as a case-insensitive
// subsequence: every query rune must appear in the candidate in order, not
// necessarily adjacent. ok is false when the candidate does not match at
// all. The empty query matches everything with a neutral score.
func fuzzyScore(query, candidate string) (score int, positions []int, ok bool) {
	if query == "" {
		return 0, nil, true
	}

	qr := []rune(query)
	cr := []rune(candidate)

	qi := 0
	prevMatched := -2
	for ci := 0; ci < len(cr) && qi < len(qr); ci++ {
		if unicode.ToLower(cr[ci]) != unicode.ToLower(qr[qi]) {
			continue
		}
		score += fuzzyMatchBase
		if ci == prevMatched+1 {
			score += fuzzyConsecutiveBonus
		}
		if ci == 0 || isWordSeparator(cr[ci-1]) {
			score += fuzzyWordStartBonus
		}
		positions = append(positions, ci)
		prevMatched = ci
		qi++
	}
	if qi < len(qr) {
		return 0, nil, false
	}

	// Prefer tighter candidates when the matched runes score the same.
	score -= len(cr)
	return score, positions, true
}

// filterItems builds the filtered, scored view of the item list for the
// current query. Non-matching items are excluded; the rest are ordered by
// descending score, ties broken by ascending original index (stable), so an
// empty query yields all items in their original order.
func filterItems(items []string, query string) []fuzzyMatch {
	matches := make([]fuzzyMatch, 0, len(items))
	for i, item := range items {
		score, positions, ok := fuzzyScore(query, item)
		if !ok {
			continue
		}
		matches = append(matches, fuzzyMatch{
			Index:     i,
			Text:      item,
			Score:     score,
			Positions: positions,
		})
	}
	slices.SortStableFunc(matches, func(a, b fuzzyMatch) int {
		return b.Score - a.Score
	})
	return matches
}

func isWordSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '-', '_', '/', '\\', '.', ',', ':':
		return true
	}
	return false
}

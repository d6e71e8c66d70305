package similar

import (
	"sort"
	"strings"
	"unicode"
)

// Normalize strips punctuation from a name and folds it to lower case, so
// that "--foo-bar" and "fooBar" compare on their letters alone.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Similarity returns the Gestalt similarity of a and b: twice the
// recursive longest-common-substring match count over the combined
// length. It is symmetric and ranges over [0,1]; two equal non-empty
// strings score 1. Callers compare normalized strings.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 0
	}
	return 2 * float64(matches(ra, rb)) / float64(len(ra)+len(rb))
}

// matches counts the matching characters between a and b: the length of
// their longest common substring plus, recursively, the matches of the
// remainders on either side. When the longest substring occurs at several
// positions, every occurrence is tried and the best total wins.
func matches(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Dynamic-programming pass for the longest common substring. row[j]
	// holds the length of the common suffix of a[:i+1] and b[:j+1].
	best := 0
	type occurrence struct{ ai, bi int } // end positions (exclusive)
	var occ []occurrence
	prev := make([]int, len(b))
	row := make([]int, len(b))
	for i := range a {
		for j := range b {
			if a[i] != b[j] {
				row[j] = 0
				continue
			}
			if j == 0 {
				row[j] = 1
			} else {
				row[j] = prev[j-1] + 1
			}
			switch {
			case row[j] > best:
				best = row[j]
				occ = occ[:0]
				occ = append(occ, occurrence{i + 1, j + 1})
			case row[j] == best:
				occ = append(occ, occurrence{i + 1, j + 1})
			}
		}
		prev, row = row, prev
	}
	if best == 0 {
		return 0
	}

	total := 0
	for _, o := range occ {
		count := best +
			matches(a[:o.ai-best], b[:o.bi-best]) +
			matches(a[o.ai:], b[o.bi:])
		if count > total {
			total = count
		}
	}
	return total
}

// Closest returns the candidates whose normalized similarity to target is
// at least threshold, sorted by descending similarity. Ties keep the
// candidates' original order.
func Closest(target string, candidates []string, threshold float64) []string {
	norm := Normalize(target)
	type scored struct {
		name string
		sim  float64
	}
	var hits []scored
	for _, c := range candidates {
		if sim := Similarity(norm, Normalize(c)); sim >= threshold {
			hits = append(hits, scored{c, sim})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].sim > hits[j].sim })
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.name
	}
	return names
}

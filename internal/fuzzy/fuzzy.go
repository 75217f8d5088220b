// Package fuzzy suggests the registered option name closest to a mistyped
// token, for "did you mean" hints on unknown-option errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by edit distance, ignoring option prefixes.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting at most maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Normalize drops leading non-alphanumeric characters ("--", "-", "/")
// and lower-cases the rest.
func Normalize(name string) string {
	i := 0
	for i < len(name) && !isAlnum(name[i]) {
		i++
	}
	return strings.ToLower(name[i:])
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// FindMatches returns candidates within the distance limit, best first.
// Candidates equal to the input after normalization are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := Normalize(input)
	if len(in) < m.minLength {
		return nil
	}
	var matches []Match
	for _, c := range candidates {
		cn := Normalize(c)
		if cn == "" || cn == in {
			continue
		}
		d := m.distance(in, cn)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Score: score(in, cn, d)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// FindBest returns the best candidate or "".
func (m *Matcher) FindBest(input string, candidates []string) string {
	if ms := m.FindMatches(input, candidates); len(ms) > 0 {
		return ms[0].Value
	}
	return ""
}

// score weighs edit distance with a shared-prefix bonus.
func score(a, b string, d int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	s := 1 - float64(d)/float64(longest)
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	s += float64(p) / float64(min(len(a), len(b))) * 0.3
	return min(s, 1)
}

// distance is Levenshtein over two rows, bailing out once every cell in a
// row exceeds the limit.
func (m *Matcher) distance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > m.maxDistance {
		return m.maxDistance + 1
	}
	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

// FindBestOption is the one-shot form used by the parser.
func FindBestOption(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}

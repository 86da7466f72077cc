// Package fuzzy provides edit-distance matching for go-match diagnostics.
// Used by match.ClosestName to suggest a bound argument name when a consumer
// looked up one that was never bound.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidate names against a queried name.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best-matching candidate, or "" when nothing is within
// the distance bound.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the distance bound, best first.
// Exact matches are skipped; the caller already knows the name is absent.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	input = strings.ToLower(input)

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if input == lower {
			continue
		}
		distance := m.levenshteinDistance(input, lower)
		if distance <= m.maxDistance {
			matches = append(matches, Match{
				Value:    candidate,
				Distance: distance,
				Score:    m.score(input, lower, distance),
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score blends edit distance with prefix overlap and length similarity, so
// "outpt" prefers "output" over an equally distant but unrelated name.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(maxLen)

	prefixBonus := 0.0
	if prefixLen := commonPrefixLength(input, candidate); prefixLen > 0 {
		prefixBonus = float64(prefixLen) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := abs(len(input) - len(candidate))
	lengthBonus := (1.0 - float64(lengthDiff)/float64(maxLen)) * 0.2

	score := editScore + prefixBonus + lengthBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// levenshteinDistance computes edit distance with two rolling rows and early
// termination once the bound is exceeded.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previousRow := make([]int, len(a)+1)
	currentRow := make([]int, len(a)+1)
	for i := range previousRow {
		previousRow[i] = i
	}

	for i := 1; i <= len(b); i++ {
		currentRow[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			currentRow[j] = minThree(
				currentRow[j-1]+1,     // insertion
				previousRow[j]+1,      // deletion
				previousRow[j-1]+cost, // substitution
			)
			if currentRow[j] < minInRow {
				minInRow = currentRow[j]
			}
		}

		// Once the best cell in a row exceeds the bound, the final
		// distance will too.
		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(a)]
}

func commonPrefixLength(a, b string) int {
	maxLen := min(len(a), len(b))
	for i := 0; i < maxLen; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return maxLen
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// FindClosest returns the candidate closest to input, or "" when nothing is
// within maxDistance.
func FindClosest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}

// FindSuggestions returns up to maxSuggestions ranked candidates for
// diagnostics that list several alternatives.
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for i, match := range matches {
		if i >= maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}

//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import (
	"testing"
)

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "output",
			candidates: []string{"output", "input", "verbose"},
			expected:   "", // caller already knows the name is absent
		},
		{
			name:       "simple typo",
			input:      "outpt",
			candidates: []string{"output", "input", "verbose"},
			expected:   "output",
		},
		{
			name:       "no good match",
			input:      "xyz",
			candidates: []string{"output", "input", "verbose"},
			expected:   "",
		},
		{
			name:       "too short to suggest",
			input:      "o",
			candidates: []string{"output", "input"},
			expected:   "",
		},
		{
			name:       "case insensitive",
			input:      "OUTPT",
			candidates: []string{"output", "input"},
			expected:   "output",
		},
		{
			name:       "no candidates",
			input:      "debug",
			candidates: nil,
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.FindBest(tt.input, tt.candidates)
			if result != tt.expected {
				t.Errorf("FindBest(%q, %v) = %q, want %q", tt.input, tt.candidates, result, tt.expected)
			}
		})
	}
}

func TestMatcher_FindMatchesOrdering(t *testing.T) {
	matcher := NewMatcher(2)

	matches := matcher.FindMatches("verbos", []string{"verbose", "version", "quiet"})
	if len(matches) == 0 {
		t.Fatal("Expected at least one match")
	}
	if matches[0].Value != "verbose" {
		t.Errorf("Expected 'verbose' ranked first, got %q", matches[0].Value)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("Expected scores in descending order, got %v then %v",
				matches[i-1], matches[i])
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	matcher := NewMatcher(10)

	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"debug", "debgu", 2},
		{"output", "outpt", 1},
	}

	for _, tt := range tests {
		if got := matcher.levenshteinDistance(tt.a, tt.b); got != tt.expected {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestLevenshteinEarlyTermination(t *testing.T) {
	matcher := NewMatcher(1)

	// Distance is well over the bound; the bound+1 sentinel is enough.
	if got := matcher.levenshteinDistance("short", "completely-different"); got != 2 {
		t.Errorf("Expected bound+1 sentinel 2, got %d", got)
	}
}

func TestFindClosest(t *testing.T) {
	if got := FindClosest("outpt", []string{"output", "input"}, 2); got != "output" {
		t.Errorf("FindClosest = %q, want 'output'", got)
	}
	if got := FindClosest("zzz", []string{"output", "input"}, 2); got != "" {
		t.Errorf("FindClosest = %q, want ''", got)
	}
}

func TestFindSuggestions(t *testing.T) {
	got := FindSuggestions("verbos", []string{"verbose", "version", "verbosity", "quiet"}, 3, 2)
	if len(got) > 2 {
		t.Errorf("Expected at most 2 suggestions, got %v", got)
	}
	if len(got) == 0 || got[0] != "verbose" {
		t.Errorf("Expected 'verbose' first, got %v", got)
	}
}

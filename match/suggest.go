package match

import (
	"github.com/dzonerzy/go-match/internal/fuzzy"
)

// ClosestName returns the bound argument name most similar to name, within
// the given edit distance, or "" when nothing is close enough. Consumers use
// it to build "did you mean" diagnostics for lookups that came back absent;
// the store itself never treats an absent name as an error.
func (m *Matches) ClosestName(name string, maxDistance int) string {
	candidates := make([]string, 0, len(m.args))
	for n := range m.args {
		candidates = append(candidates, n)
	}
	if sc, ok := m.SubcommandName(); ok {
		candidates = append(candidates, sc)
	}
	return fuzzy.FindClosest(name, candidates, maxDistance)
}

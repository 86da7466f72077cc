package match

import (
	"github.com/dzonerzy/go-match/internal/slotmap"
)

// MatchedArg records how one named argument was bound during parsing: the
// number of times it occurred and, in binding order, the raw values it
// received. Occurrences count uses of the argument (repeated short flags,
// say), so an argument that takes no value can have occurrences without any
// values at all.
//
// Records are created and filled by a Builder; once the owning Matches is
// sealed they are read-only.
type MatchedArg struct {
	occurs int
	vals   *slotmap.Map
}

func newMatchedArg() *MatchedArg {
	return &MatchedArg{vals: slotmap.New()}
}

// Occurrences returns how many times the argument was used.
func (a *MatchedArg) Occurrences() int {
	return a.occurs
}

// NumValues returns how many values were bound to the argument. This is
// independent of Occurrences: `-o a b -o c` is 2 occurrences and 3 values.
func (a *MatchedArg) NumValues() int {
	return a.vals.Len()
}

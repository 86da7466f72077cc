package match

import (
	"github.com/dzonerzy/go-match/internal/intern"
)

// ExternalArgName is the argument name under which an external subcommand's
// trailing tokens are recorded inside that subcommand's store.
const ExternalArgName = ""

// Builder assembles a Matches on behalf of the parser. The parser records
// occurrences and values as it binds tokens, links at most one subcommand
// store, and seals the result with Matches. Builders are single-use: sealing
// hands ownership to the consumer and any further mutation panics.
//
// Stores compose either bottom-up (seal the innermost subcommand first, then
// link it) or top-down with deferred linkage (link the child store last,
// before sealing the parent). Argument names must be unique per store and
// binding indices ascending per argument; both are the parser's contract and
// are not re-validated here.
type Builder struct {
	m      *Matches
	sealed bool
}

// NewBuilder creates a builder for an empty store.
func NewBuilder() *Builder {
	return &Builder{m: newMatches()}
}

// Occur increments the occurrence count of the named argument, creating its
// record on first use. Occurrences count uses of the argument, independent of
// how many values it receives.
func (b *Builder) Occur(name string) *Builder {
	b.record(name).occurs++
	return b
}

// Bind appends a raw value to the named argument at its binding index,
// creating the record on first use. Bind does not count as an occurrence;
// the parser calls Occur separately when the argument itself is used. The
// store takes ownership of value: the parser must not mutate the slice after
// handing it over.
func (b *Builder) Bind(name string, index int, value []byte) *Builder {
	b.record(name).vals.Insert(index, value)
	return b
}

// BindString is Bind for values already held as strings.
func (b *Builder) BindString(name string, index int, value string) *Builder {
	return b.Bind(name, index, []byte(value))
}

// Subcommand records sub as the active subcommand of this store under the
// given name. At most one subcommand is active per level; a second call
// replaces the first (the parser resolves sibling exclusivity before linking).
func (b *Builder) Subcommand(name string, sub *Matches) *Builder {
	b.mutable()
	b.m.subcommand = &subcommand{name: intern.Intern(name), matches: sub}
	return b
}

// External records an accepted-but-unrecognized subcommand: name is the
// external token as given, and the trailing tokens become the values of the
// empty-name argument inside the subcommand's own store, in order, one
// occurrence per token.
func (b *Builder) External(name string, trailing ...[]byte) *Builder {
	sub := NewBuilder()
	for i, tok := range trailing {
		sub.Occur(ExternalArgName)
		sub.Bind(ExternalArgName, i, tok)
	}
	return b.Subcommand(name, sub.Matches())
}

// Usage records the usage string for this store.
func (b *Builder) Usage(text string) *Builder {
	b.mutable()
	b.m.usage = text
	return b
}

// Matches seals the builder and returns the finished store. From this point
// the store is immutable and safe for concurrent readers; the builder must
// not be reused.
func (b *Builder) Matches() *Matches {
	b.mutable()
	b.sealed = true
	return b.m
}

func (b *Builder) record(name string) *MatchedArg {
	b.mutable()
	name = intern.Intern(name)
	arg, ok := b.m.args[name]
	if !ok {
		arg = newMatchedArg()
		b.m.args[name] = arg
	}
	return arg
}

func (b *Builder) mutable() {
	if b.sealed {
		panic("match: Builder used after Matches() sealed the store")
	}
}

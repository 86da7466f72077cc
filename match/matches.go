// Package match holds the result of a parsed command line: which arguments
// were matched, how often each occurred, the raw values bound to them, and
// which subcommand (if any) was selected. A parser populates one Matches per
// invocation level through a Builder; application code only ever reads.
//
// Raw values are opaque byte sequences: command-line arguments are not
// guaranteed to be valid UTF-8 on every platform. Every value accessor
// therefore comes in three flavors. The strict flavor (Value, Values) panics
// on invalid UTF-8, the lossy flavor (ValueLossy, ValuesLossy) substitutes the
// Unicode replacement character, and the raw flavor (ValueRaw, ValuesRaw)
// hands back the bytes untouched.
package match

// subcommand links a store to the one subcommand selected at its nesting
// level. Siblings are mutually exclusive, so a direct link suffices; resolving
// the active subcommand is a single hop, never a search.
type subcommand struct {
	name    string
	matches *Matches
}

// Matches is the match-result store for one invocation level. It maps
// argument names to their records and optionally links the store of the
// selected subcommand, forming a tree the root store owns.
//
// A Matches is immutable once its Builder seals it, so concurrent read-only
// use from multiple goroutines needs no synchronization.
type Matches struct {
	args       map[string]*MatchedArg
	subcommand *subcommand
	usage      string
}

func newMatches() *Matches {
	return &Matches{args: make(map[string]*MatchedArg)}
}

// Value returns the first value bound to the named argument, decoded as
// UTF-8. The second return is false when the argument was never bound or was
// bound without values.
//
// Value panics with *InvalidUTF8Error when the raw bytes are not valid UTF-8;
// use ValueLossy or ValueRaw for data that may not be text.
//
// For arguments that repeat, Value returns only the earliest-bound value;
// prefer Values in that case.
func (m *Matches) Value(name string) (string, bool) {
	if arg, ok := m.args[name]; ok {
		if v, ok := arg.vals.First(); ok {
			return decodeStrict(name, v), true
		}
	}
	return "", false
}

// ValueLossy is Value with invalid UTF-8 sequences replaced by the Unicode
// replacement character instead of panicking.
func (m *Matches) ValueLossy(name string) (string, bool) {
	if arg, ok := m.args[name]; ok {
		if v, ok := arg.vals.First(); ok {
			return decodeLossy(v), true
		}
	}
	return "", false
}

// ValueRaw returns the first value bound to the named argument as raw bytes.
func (m *Matches) ValueRaw(name string) ([]byte, bool) {
	if arg, ok := m.args[name]; ok {
		if v, ok := arg.vals.First(); ok {
			return v, true
		}
	}
	return nil, false
}

// Values returns a lazy, double-ended iterator over all values bound to the
// named argument in binding order, or nil when the argument was never bound.
// An argument bound without values yields a non-nil, empty iterator.
//
// Pulling a value that is not valid UTF-8 panics with *InvalidUTF8Error; use
// ValuesLossy or ValuesRaw for data that may not be text.
func (m *Matches) Values(name string) *Values {
	if arg, ok := m.args[name]; ok {
		return &Values{name: name, iter: arg.vals.Values()}
	}
	return nil
}

// ValuesLossy returns all values bound to the named argument, lossy-decoded
// and materialized in binding order. It never fails on invalid UTF-8.
func (m *Matches) ValuesLossy(name string) ([]string, bool) {
	arg, ok := m.args[name]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, arg.vals.Len())
	for it := arg.vals.Values(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, decodeLossy(v))
	}
	return out, true
}

// ValuesRaw returns a lazy, double-ended iterator over the raw byte values
// bound to the named argument, or nil when the argument was never bound.
func (m *Matches) ValuesRaw(name string) *RawValues {
	if arg, ok := m.args[name]; ok {
		return &RawValues{iter: arg.vals.Values()}
	}
	return nil
}

// IsPresent reports whether the named argument was bound, or whether name is
// the active subcommand at this level.
func (m *Matches) IsPresent(name string) bool {
	if m.subcommand != nil && m.subcommand.name == name {
		return true
	}
	_, ok := m.args[name]
	return ok
}

// Occurrences returns how many times the named argument was used, or 0 when
// it was never bound. This counts uses, not values: `-o a b -o c` is 2.
func (m *Matches) Occurrences(name string) int {
	if arg, ok := m.args[name]; ok {
		return arg.occurs
	}
	return 0
}

// Arg returns the record for the named argument, or nil when it was never
// bound.
func (m *Matches) Arg(name string) *MatchedArg {
	return m.args[name]
}

// SubcommandMatches returns the nested store for the named subcommand, or nil
// when that subcommand is not the active one. Only a single subcommand from
// any group of siblings can be active, so every other name returns nil.
func (m *Matches) SubcommandMatches(name string) *Matches {
	if m.subcommand != nil && m.subcommand.name == name {
		return m.subcommand.matches
	}
	return nil
}

// SubcommandName returns the name of the active subcommand, if one was
// selected at this level.
func (m *Matches) SubcommandName() (string, bool) {
	if m.subcommand != nil {
		return m.subcommand.name, true
	}
	return "", false
}

// Subcommand returns the active subcommand's name together with its store,
// or ("", nil) when no subcommand was selected. Useful for external
// subcommands, where the name is not known ahead of time:
//
//	if name, sub := m.Subcommand(); sub != nil {
//		ext := sub.Values(match.ExternalArgName).Collect()
//		// name is the external token, ext its trailing arguments
//	}
func (m *Matches) Subcommand() (string, *Matches) {
	if m.subcommand != nil {
		return m.subcommand.name, m.subcommand.matches
	}
	return "", nil
}

// Usage returns the usage string recorded for this store, or "" when none
// was recorded.
func (m *Matches) Usage() string {
	return m.usage
}

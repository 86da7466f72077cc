package match

import (
	"github.com/dzonerzy/go-match/internal/slotmap"
)

// Values iterates over the strict-text values of one argument. It is lazy and
// double-ended: Next walks binding order, NextBack walks it in reverse, and
// the two ends share one sequence, converging without overlap when
// interleaved. A Values is single-pass; call Matches.Values again for a fresh
// one.
type Values struct {
	name string
	iter *slotmap.Iter
}

// Next returns the next value in binding order. It panics with
// *InvalidUTF8Error when the value is not valid UTF-8.
func (v *Values) Next() (string, bool) {
	b, ok := v.iter.Next()
	if !ok {
		return "", false
	}
	return decodeStrict(v.name, b), true
}

// NextBack returns the next value from the back, in reverse binding order.
// It panics with *InvalidUTF8Error when the value is not valid UTF-8.
func (v *Values) NextBack() (string, bool) {
	b, ok := v.iter.NextBack()
	if !ok {
		return "", false
	}
	return decodeStrict(v.name, b), true
}

// Collect drains the remaining sequence front-to-back into a slice.
func (v *Values) Collect() []string {
	var out []string
	for {
		s, ok := v.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// RawValues iterates over the raw byte values of one argument. Same cursor
// semantics as Values, but it never fails: the bytes are handed back as
// bound, whether or not they are valid text.
type RawValues struct {
	iter *slotmap.Iter
}

// Next returns the next raw value in binding order.
func (v *RawValues) Next() ([]byte, bool) {
	return v.iter.Next()
}

// NextBack returns the next raw value from the back, in reverse binding
// order.
func (v *RawValues) NextBack() ([]byte, bool) {
	return v.iter.NextBack()
}

// Collect drains the remaining sequence front-to-back into a slice.
func (v *RawValues) Collect() [][]byte {
	var out [][]byte
	for {
		b, ok := v.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

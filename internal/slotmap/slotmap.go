// Package slotmap provides the sparse, index-ordered value container backing
// go-match argument records. Values are keyed by their binding index on the
// command line, which the parser hands over in ascending order but not
// necessarily contiguously.
package slotmap

import (
	"github.com/tidwall/btree"
)

// Map is a sparse mapping from occurrence index to a raw value. Iteration in
// ascending index order yields values in the order they were bound during
// parsing. The builder inserts; after the owning store is sealed the map is
// read-only, so any number of iterators may be created concurrently.
type Map struct {
	tree *btree.Map[int, []byte]
}

// New creates an empty slot map.
func New() *Map {
	return &Map{tree: btree.NewMap[int, []byte](0)} // degree 0 = auto-optimize
}

// Insert stores value at the given binding index. Indices arrive in ascending
// order per record; that ordering is the parser's responsibility and is not
// re-validated here.
func (m *Map) Insert(index int, value []byte) {
	m.tree.Set(index, value)
}

// Get returns the value at index, if occupied.
func (m *Map) Get(index int) ([]byte, bool) {
	return m.tree.Get(index)
}

// First returns the value with the lowest binding index, if any.
func (m *Map) First() ([]byte, bool) {
	_, v, ok := m.tree.Min()
	return v, ok
}

// Len returns the number of occupied slots.
func (m *Map) Len() int {
	return m.tree.Len()
}

// Values returns a fresh iterator over the occupied slots. Every call makes an
// independent iterator; each is single-pass once created.
func (m *Map) Values() *Iter {
	it := &Iter{front: m.tree.Iter(), back: m.tree.Iter()}
	if !it.front.First() || !it.back.Last() {
		it.done = true
	}
	return it
}

// Iter is a double-ended cursor over a Map. Next consumes from the low-index
// end, NextBack from the high-index end; the two cursors converge and the
// sequence is exhausted once they meet, so interleaved calls never yield the
// same slot twice.
type Iter struct {
	front btree.MapIter[int, []byte]
	back  btree.MapIter[int, []byte]
	done  bool
}

// Next returns the next value in ascending index order.
func (it *Iter) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}
	v := it.front.Value()
	if it.front.Key() == it.back.Key() {
		it.done = true
	} else if !it.front.Next() {
		it.done = true
	}
	return v, true
}

// NextBack returns the next value in descending index order.
func (it *Iter) NextBack() ([]byte, bool) {
	if it.done {
		return nil, false
	}
	v := it.back.Value()
	if it.front.Key() == it.back.Key() {
		it.done = true
	} else if !it.back.Prev() {
		it.done = true
	}
	return v, true
}

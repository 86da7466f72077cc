// Package intern provides string interning for go-match. Argument names
// repeat heavily across the stores of a subcommand tree (the same "output" or
// "verbose" shows up at every level), so builders funnel every name through a
// shared interner and the stores key their maps by one canonical string per
// name.
package intern

import (
	"sync"
)

// StringInterner is a thread-safe canonical-string table.
type StringInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewStringInterner creates an interner with optional pre-allocated capacity.
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 64
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (si *StringInterner) Intern(s string) string {
	// Fast path: read lock for the common repeated-name case.
	si.mutex.RLock()
	if interned, exists := si.strings[s]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring the write lock.
	if interned, exists := si.strings[s]; exists {
		return interned
	}
	si.strings[s] = s
	return s
}

// PreIntern seeds the table so the hot path never takes the write lock for
// these names.
func (si *StringInterner) PreIntern(names []string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	for _, s := range names {
		si.strings[s] = s
	}
}

// Stats returns the number of interned strings, for monitoring.
func (si *StringInterner) Stats() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Clear removes all interned strings (useful for testing).
func (si *StringInterner) Clear() {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	for k := range si.strings {
		delete(si.strings, k)
	}
}

// CommonArgNames are argument names frequent enough across CLIs to be worth
// seeding at startup. The empty name is the external-subcommand capture key.
var CommonArgNames = []string{
	"", "help", "version", "verbose", "quiet", "debug",
	"config", "output", "input", "force", "file", "dir",
	"host", "port", "timeout", "format", "color",
}

// Global is the process-wide interner used by go-match builders.
var Global *StringInterner

//nolint:gochecknoinits // global interner requires init for pre-interning
func init() {
	Global = NewStringInterner(128)
	Global.PreIntern(CommonArgNames)
}

// Intern interns a string using the global interner.
func Intern(s string) string {
	return Global.Intern(s)
}

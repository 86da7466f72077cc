package match

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// InvalidUTF8Error describes a raw value that a strict accessor could not
// decode as UTF-8. It is delivered by panic, never by return value: choosing a
// strict accessor for data that may not be valid text is a contract violation
// on the caller's side. Callers that need to survive arbitrary bytes must use
// the lossy or raw accessors instead.
type InvalidUTF8Error struct {
	Name  string // argument name the value was bound to
	Value []byte // the offending raw value
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("argument %q: value %q contains invalid UTF-8", e.Name, e.Value)
}

// decodeStrict converts a raw value to a string, panicking when the bytes are
// not valid UTF-8. The conversion is zero-copy: raw values are immutable once
// the store is sealed.
func decodeStrict(name string, b []byte) string {
	if !utf8.Valid(b) {
		panic(&InvalidUTF8Error{Name: name, Value: b})
	}
	return bytesToString(b)
}

// bytesToString converts a byte slice to a string without allocation. Only
// safe because sealed stores never mutate their values.
func bytesToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

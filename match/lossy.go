package match

import (
	"bytes"
	"unicode/utf8"

	"github.com/dzonerzy/go-match/internal/pool"
)

// Scratch buffers for lossy decoding; only the invalid-input path allocates a
// rewrite buffer, and it is pooled to keep repeated lossy queries cheap.
var lossyBuffers = pool.NewPoolWithReset(
	func() *bytes.Buffer { return new(bytes.Buffer) },
	func(b *bytes.Buffer) { b.Reset() },
)

// decodeLossy converts a raw value to a string, replacing every invalid byte
// with the Unicode replacement character. Already-valid input is returned
// byte-identical to the strict path (zero-copy), which makes lossy decoding
// idempotent over valid text.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return bytesToString(b)
	}
	buf := lossyBuffers.Get()
	defer lossyBuffers.Put(buf)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune(utf8.RuneError)
		} else {
			buf.Write(b[:size])
		}
		b = b[size:]
	}
	return buf.String()
}

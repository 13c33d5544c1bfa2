// Package bytekit reads characters out of encoded byte slices.
package bytekit

import (
	"iter"
	"unicode/utf8"
)

// IterUTF8 yields the characters of UTF-8 encoded data.
// An invalid byte is yielded as utf8.RuneError.
func IterUTF8[Data ~[]byte](d Data) iter.Seq[rune] {
	return IterChar(d, utf8.DecodeRune)
}

// IterChar walks d with a decode function that reports the next character and its width in bytes.
// A non positive width is treated as one byte, so a misbehaving decode function still makes progress.
func IterChar[Data ~[]byte, Char any](d Data, next func([]byte) (char Char, length int)) iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for i := 0; i < len(d); {
			char, length := next(d[i:])
			if !yield(char) {
				return
			}
			if length <= 0 {
				length = 1
			}
			i += length
		}
	}
}

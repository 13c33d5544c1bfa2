package charkit

import (
	"iter"

	"go.llib.dev/decodedchar/pkg/bytekit"
	"go.llib.dev/decodedchar/pkg/iterkit"
)

// Decoded annotates every character of chars with its length in enc.
//
// Each value pulled from the returned sequence pulls exactly one character from chars.
// Nothing is buffered, so the result can be iterated again only if chars can.
func Decoded(enc Encoding, chars iter.Seq[rune]) iter.Seq[Char] {
	return iterkit.Map(chars, enc.Char)
}

// DecodedErr annotates the successfully decoded characters of chars with their length in enc.
// Failed elements pass through with their error untouched,
// and the iteration goes on with the element after them.
func DecodedErr(enc Encoding, chars iterkit.ErrSeq[rune]) iterkit.ErrSeq[Char] {
	return iterkit.MapErr(chars, enc.Char)
}

// Pull returns a pull iterator over the annotated characters of chars.
// Each Next call pulls exactly one element from chars.
// A failed element ends the iteration and is reported by Err;
// to keep going past failures, range over DecodedErr instead.
// Close releases chars when the caller stops early.
func Pull(enc Encoding, chars iterkit.ErrSeq[rune]) iterkit.PullIter[Char] {
	return iterkit.ToPullIter(DecodedErr(enc, chars))
}

// UTF8Decoded wraps the characters of a UTF-8 source.
func UTF8Decoded(chars iter.Seq[rune]) iter.Seq[Char] {
	return Decoded(UTF8, chars)
}

// FallibleUTF8Decoded wraps the results of a fallible UTF-8 decoder.
func FallibleUTF8Decoded(chars iterkit.ErrSeq[rune]) iterkit.ErrSeq[Char] {
	return DecodedErr(UTF8, chars)
}

// UTF16Decoded wraps the characters of a UTF-16 source.
func UTF16Decoded(chars iter.Seq[rune]) iter.Seq[Char] {
	return Decoded(UTF16, chars)
}

// FallibleUTF16Decoded wraps the results of a fallible UTF-16 decoder.
func FallibleUTF16Decoded(chars iterkit.ErrSeq[rune]) iterkit.ErrSeq[Char] {
	return DecodedErr(UTF16, chars)
}

// Chars returns the characters of s, annotated with their UTF-8 byte length.
// An invalid byte of s comes through as utf8.RuneError, annotated with 3.
func Chars(s string) iter.Seq[Char] {
	return UTF8Decoded(iterkit.Runes(s))
}

// Bytes returns the characters of UTF-8 encoded data, annotated with their byte length.
// An invalid byte comes through as utf8.RuneError,
// and like any other U+FFFD it is annotated with 3.
func Bytes[Data ~[]byte](d Data) iter.Seq[Char] {
	return UTF8Decoded(bytekit.IterUTF8(d))
}

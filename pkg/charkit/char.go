// Package charkit annotates decoded characters with the number of encoding units
// they occupied in their source encoding.
//
// A Char is a rune plus its unit length: bytes for UTF-8, 16-bit code units for UTF-16.
// The adapters in this package wrap an existing character sequence
// and annotate every character as it is pulled,
// so a consumer can track source offsets without re-deriving the lengths itself.
//
// Decoding is not done here.
// The characters come from whatever decoder produced the wrapped sequence.
package charkit

import (
	"cmp"
	"unicode/utf16"
	"unicode/utf8"
)

// Char is a decoded character and its length in encoding units in the source it was decoded from.
//
// For read purposes a Char stands in for its rune:
// Equal, Compare and Rune all ignore the length,
// and Rune is the key to use when a Char is looked up in a rune keyed map.
type Char struct {
	r   rune
	len int
}

// New creates a Char from a character and its length in the source encoding.
// The length is trusted as is, it is not checked against the character.
func New(r rune, n int) Char {
	return Char{r: r, len: n}
}

// FromUTF8 creates a Char decoded from a UTF-8 source.
// Its length is the number of bytes r takes in UTF-8, from 1 to 4.
func FromUTF8(r rune) Char {
	return Char{r: r, len: utf8Len(r)}
}

// FromUTF16 creates a Char decoded from a UTF-16 source.
// Its length is the number of 16-bit code units r takes in UTF-16, 1 or 2.
func FromUTF16(r rune) Char {
	return Char{r: r, len: utf16Len(r)}
}

// Rune returns the character.
func (c Char) Rune() rune { return c.r }

// Len returns the length of the character in encoding units.
func (c Char) Len() int { return c.len }

// IntoRune unwraps the character.
func (c Char) IntoRune() rune { return c.r }

// IntoLen unwraps the length in encoding units.
func (c Char) IntoLen() int { return c.len }

// Uint32 returns the scalar value of the character.
func (c Char) Uint32() uint32 { return uint32(c.r) }

// Equal reports whether the character is r, regardless of the length.
func (c Char) Equal(r rune) bool { return c.r == r }

// Compare orders the character against r the way cmp.Compare orders runes.
func (c Char) Compare(r rune) int { return cmp.Compare(c.r, r) }

func (c Char) String() string { return string(c.r) }

// Compare orders two Char values by their characters.
// It can be used with slices.SortFunc and friends.
func Compare(a, b Char) int { return cmp.Compare(a.r, b.r) }

// Lookup finds the entry of a rune keyed map for a Char.
func Lookup[V any](m map[rune]V, c Char) (V, bool) {
	v, ok := m[c.r]
	return v, ok
}

// utf8Len falls back to the length of utf8.RuneError for invalid runes,
// since that is what utf8.EncodeRune writes for them.
func utf8Len(r rune) int {
	if n := utf8.RuneLen(r); 0 < n {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// utf16Len falls back to a single unit for invalid runes,
// since utf16.Encode replaces them with U+FFFD.
func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); 0 < n {
		return n
	}
	return 1
}

package charkit

import "fmt"

// Encoding is the source encoding a character was decoded from.
// It decides the unit a Char length is counted in.
// The zero value is UTF8.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16
)

// Len returns the number of units r occupies in the encoding.
func (e Encoding) Len(r rune) int {
	switch e {
	case UTF8:
		return utf8Len(r)
	case UTF16:
		return utf16Len(r)
	default:
		panic(fmt.Sprintf("charkit: unknown encoding: %d", int(e)))
	}
}

// Char annotates r with its length in the encoding.
func (e Encoding) Char(r rune) Char {
	return Char{r: r, len: e.Len(r)}
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

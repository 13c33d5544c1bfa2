package iterkit

import (
	"errors"
	"io"
)

// RuneReader returns the characters read from r as a single use sequence.
// A read error other than io.EOF is yielded as a failed element and ends the sequence.
// The optional closer is closed once, when the sequence is done or the consumer stops early.
//
// Invalid input is reported the way r reports it;
// for a bufio.Reader that is utf8.RuneError per invalid byte.
func RuneReader(r io.RuneReader, closer io.Closer) SingleUseErrSeq[rune] {
	return FromPullIter[rune](&runeReaderIter{
		Reader: r,
		Closer: closer,
	})
}

type runeReaderIter struct {
	Reader io.RuneReader
	Closer io.Closer

	value  rune
	err    error
	closed bool
}

func (i *runeReaderIter) Next() bool {
	if i.err != nil || i.closed {
		return false
	}
	r, _, err := i.Reader.ReadRune()
	if errors.Is(err, io.EOF) {
		return false
	}
	if err != nil {
		i.err = err
		return false
	}
	i.value = r
	return true
}

func (i *runeReaderIter) Value() rune {
	return i.value
}

func (i *runeReaderIter) Err() error {
	return i.err
}

func (i *runeReaderIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.Closer == nil {
		return nil
	}
	return i.Closer.Close()
}

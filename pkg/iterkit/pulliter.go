package iterkit

import (
	"io"
	"iter"

	"go.llib.dev/decodedchar/pkg/errorkit"
)

// PullIter is the pull based counterpart of ErrSeq.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer releases whatever the iterator holds.
	// Iterators without resources should simply return nil.
	io.Closer
	// Err return the error cause.
	Err() error
}

// ToPullIter turns an ErrSeq into a PullIter.
// Every Next call advances the sequence by exactly one element.
// A failed element stops the iteration, and its error is reported by Err.
func ToPullIter[T any](itr ErrSeq[T]) PullIter[T] {
	next, stop := iter.Pull2(itr)
	return &seqPullIter[T]{next: next, stop: stop}
}

// FromPullIter turns a PullIter into a single use ErrSeq.
// When the PullIter runs out, its error and the error of closing it
// are merged and yielded as one last failed element.
func FromPullIter[T any](itr PullIter[T]) SingleUseErrSeq[T] {
	return Once2(func(yield func(T, error) bool) {
		var closed bool
		defer func() {
			if !closed {
				_ = itr.Close()
			}
		}()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		closed = true
		if err := errorkit.Merge(itr.Err(), itr.Close()); err != nil {
			var zero T
			yield(zero, err)
		}
	})
}

type seqPullIter[T any] struct {
	next    func() (T, error, bool)
	stop    func()
	current T
	err     error
	closed  bool
}

func (i *seqPullIter[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	v, err, ok := i.next()
	switch {
	case !ok:
		return false
	case err != nil:
		i.err = err
		return false
	default:
		i.current = v
		return true
	}
}

func (i *seqPullIter[T]) Value() T { return i.current }

func (i *seqPullIter[T]) Err() error { return i.err }

func (i *seqPullIter[T]) Close() error {
	if !i.closed {
		i.closed = true
		i.stop()
	}
	return nil
}

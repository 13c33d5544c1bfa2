// Package iterkit provides the iterator building blocks for character streams.
//
// Sequences follow the standard iter.Seq protocol.
// A sequence whose elements may individually fail is an ErrSeq,
// where each yielded pair carries either a value or an error.
// Failures are per element, a consumer may keep ranging after one.
package iterkit

import (
	"iter"
	"sync/atomic"

	"go.llib.dev/decodedchar/pkg/errorkit"
)

// ErrSeq is an iterator that can tell if a currently returned value has an issue or not.
type ErrSeq[T any] = iter.Seq2[T, error]

// SingleUseErrSeq is an ErrSeq[T] that can only be iterated once.
// Sources that read from a stream which cannot be rewound, like an io.Reader, are single use.
type SingleUseErrSeq[T any] = ErrSeq[T]

// Runes returns the characters of a string, in order.
// Invalid UTF-8 bytes are reported as utf8.RuneError, one per byte,
// the same way a range loop over the string reports them.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Map applies transform on every value of the iterator.
// One value is pulled from i for every value yielded.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// MapErr applies transform on the successful values of an ErrSeq.
// Failed elements are forwarded with their error value untouched,
// and the iteration continues with the next element.
func MapErr[To any, From any](i ErrSeq[From], transform func(From) To) ErrSeq[To] {
	return func(yield func(To, error) bool) {
		for v, err := range i {
			if err != nil {
				var zero To
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !yield(transform(v), nil) {
				return
			}
		}
	}
}

// CollectErr collects the successful values,
// and merges every encountered error into the returned error.
func CollectErr[T any](i ErrSeq[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var (
		vs   []T
		errs []error
	)
	for v, err := range i {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vs = append(vs, v)
	}
	return vs, errorkit.Merge(errs...)
}

// Once2 makes i single use: only its first iteration yields values.
func Once2[K, V any](i iter.Seq2[K, V]) SingleUseSeq2[K, V] {
	var used atomic.Bool
	return func(yield func(K, V) bool) {
		if used.Swap(true) {
			return
		}
		for k, v := range i {
			if !yield(k, v) {
				return
			}
		}
	}
}

// SingleUseSeq2 is an iter.Seq2[K, V] that can only be iterated once.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

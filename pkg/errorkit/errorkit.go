// Package errorkit holds the error helpers shared by the iterator toolkit.
package errorkit

import "errors"

// Merge combines the non nil error values into a single error value.
// It returns nil when there is nothing to merge,
// and the error itself when only one is given,
// so a lone source error keeps its identity.
func Merge(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}

package optional

import (
	"errors"
	"fmt"
)

// Failure modes of the container itself. Panics raised by caller-supplied
// functions (predicates, transforms, comparators, suppliers) are not part of
// this taxonomy: they cross the package boundary untouched.
var (
	// ErrNoSuchElement reports extraction from an empty option, including
	// iterator advancement past the end.
	ErrNoSuchElement = errors.New("optional: no such element")

	// ErrIndexOutOfRange reports element access at an index other than 0 on
	// a present option. Errors returned by At wrap it and carry the index.
	ErrIndexOutOfRange = errors.New("optional: index out of range")

	// ErrInvalidArgument reports an argument outside an operation's domain,
	// such as a negative element count for Take or Drop. Panic values raised
	// for it wrap it and carry the offending argument.
	ErrInvalidArgument = errors.New("optional: invalid argument")
)

// indexError builds the At failure for index i.
func indexError(i int) error {
	return fmt.Errorf("index %d on a container of at most one element: %w", i, ErrIndexOutOfRange)
}

// invalidCount builds the Take/Drop panic value for a negative count n.
func invalidCount(n int) error {
	return fmt.Errorf("requested element count %d is negative: %w", n, ErrInvalidArgument)
}

package fenwick

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid element index or prefix length.
	ErrIndexOutOfBounds = errors.New("fenwick: index out of bounds")
	// ErrNoInverse signals an operation which needs a group, used on a tree
	// whose monoid provides no inverse operation.
	ErrNoInverse = errors.New("fenwick: monoid has no inverse operation")
)

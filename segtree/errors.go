package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid element index or range.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvariant signals a violated structural invariant, found by Check.
	ErrInvariant = errors.New("segtree: invariant violated")
)

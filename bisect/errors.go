package bisect

import "errors"

var (
	// ErrInvalidRange signals an interval whose start lies after its end.
	ErrInvalidRange = errors.New("bisect: invalid range")
	// ErrBoundOverflow signals a bound which cannot be converted to a half-open
	// interval without leaving the range of its integer type.
	ErrBoundOverflow = errors.New("bisect: bound overflows integer type")
)

package bisect

import (
	"fmt"

	"github.com/npillmayer/sumtrees/internal/limits"
	"golang.org/x/exp/constraints"
)

// BoundKind tells how an interval end is delimited.
type BoundKind int8

const (
	Unbounded BoundKind = iota // no limit, i.e. the limit of the integer type
	Included                   // the value belongs to the interval
	Excluded                   // the value does not belong to the interval
)

func (k BoundKind) String() string {
	switch k {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	}
	return "unbounded"
}

// Bound is one end of an integer interval.
type Bound[T constraints.Integer] struct {
	Kind  BoundKind
	Value T
}

// Incl returns an inclusive bound at v.
func Incl[T constraints.Integer](v T) Bound[T] {
	return Bound[T]{Kind: Included, Value: v}
}

// Excl returns an exclusive bound at v.
func Excl[T constraints.Integer](v T) Bound[T] {
	return Bound[T]{Kind: Excluded, Value: v}
}

// Interval is a set of consecutive integers of type T.
//
// The zero value is the interval of all values of T, excluding the maximum
// value of T.
type Interval[T constraints.Integer] struct {
	Start, End Bound[T]
}

// Span returns the half-open interval [start, end).
func Span[T constraints.Integer](start, end T) Interval[T] {
	return Interval[T]{Start: Incl(start), End: Excl(end)}
}

// Closed returns the closed interval [start, end].
func Closed[T constraints.Integer](start, end T) Interval[T] {
	return Interval[T]{Start: Incl(start), End: Incl(end)}
}

// From returns the interval [start, max(T)).
func From[T constraints.Integer](start T) Interval[T] {
	return Interval[T]{Start: Incl(start)}
}

// UpTo returns the interval [min(T), end).
func UpTo[T constraints.Integer](end T) Interval[T] {
	return Interval[T]{End: Excl(end)}
}

// Full returns the interval [min(T), max(T)).
func Full[T constraints.Integer]() Interval[T] {
	return Interval[T]{}
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("{%s %d, %s %d}", iv.Start.Kind, iv.Start.Value, iv.End.Kind, iv.End.Value)
}

// HalfOpen resolves the interval to [start, end). Unbounded ends resolve to the
// minimum and maximum value of T.
//
// HalfOpen panics with ErrBoundOverflow for an exclusive start or an inclusive
// end at the maximum value of T, and with ErrInvalidRange if start > end.
func (iv Interval[T]) HalfOpen() (start, end T) {
	top := limits.Highest[T]()
	switch iv.Start.Kind {
	case Included:
		start = iv.Start.Value
	case Excluded:
		if iv.Start.Value == top {
			panic(fmt.Errorf("%w: excluded start %d", ErrBoundOverflow, iv.Start.Value))
		}
		start = iv.Start.Value + 1
	default:
		start = limits.Lowest[T]()
	}
	switch iv.End.Kind {
	case Included:
		if iv.End.Value == top {
			panic(fmt.Errorf("%w: included end %d", ErrBoundOverflow, iv.End.Value))
		}
		end = iv.End.Value + 1
	case Excluded:
		end = iv.End.Value
	default:
		end = top
	}
	if start > end {
		panic(fmt.Errorf("%w: %d > %d", ErrInvalidRange, start, end))
	}
	return start, end
}

// FindRangeBy returns the range [lo, hi) of values of the interval for which f
// returns 0. f is called for values of the interval only.
//
//	Span[uint](7, 13).FindRangeBy(func(i uint) int { return cmp.Compare(i/10, 1) })  // 10, 13
func (iv Interval[T]) FindRangeBy(f func(T) int) (lo, hi T) {
	start, end := iv.HalfOpen()
	// plain bisection until some value compares equal
	var c int
	mid := start
	for start < end {
		mid = limits.Midpoint(start, end)
		if c = f(mid); c == 0 {
			break
		}
		if c < 0 {
			start = mid + 1
		} else {
			end = mid
		}
	}
	if start >= end {
		return start, start
	}
	// leftmost equal value in [start, mid]
	lo, upper := start, mid
	for lo < upper {
		m := limits.Midpoint(lo, upper)
		if f(m) < 0 {
			lo = m + 1
		} else {
			upper = m
		}
	}
	// first greater value in (mid, end]
	hi, upper = mid+1, end
	for hi < upper {
		m := limits.Midpoint(hi, upper)
		if f(m) <= 0 {
			hi = m + 1
		} else {
			upper = m
		}
	}
	return lo, hi
}

// LowerBoundBy returns the first value of the interval for which f does not
// return a negative value, or the end of the interval.
func (iv Interval[T]) LowerBoundBy(f func(T) int) T {
	lo, _ := iv.FindRangeBy(f)
	return lo
}

// UpperBoundBy returns the first value of the interval for which f returns a
// positive value, or the end of the interval.
func (iv Interval[T]) UpperBoundBy(f func(T) int) T {
	_, hi := iv.FindRangeBy(f)
	return hi
}

// PartitionPoint returns the first value of the interval not satisfying pred.
// pred has to hold for a leading run of the interval and fail for the rest.
//
//	// smallest x with x*(x+1)/2 >= 1700
//	Span(0, 10_000_000).PartitionPoint(func(x int) bool { return x*(x+1)/2 < 1700 })  // 58
func (iv Interval[T]) PartitionPoint(pred func(T) bool) T {
	return iv.LowerBoundBy(predicate(pred))
}

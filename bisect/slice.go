package bisect

import "cmp"

// FindRangeBy returns the range [lo, hi) of elements of s for which f returns 0.
//
//	v := []int{1, 2, 3, 4, 4, 4, 6, 7, 7, 8}
//	FindRangeBy(v, func(x int) int { return cmp.Compare(x, 4) })  // 3, 6
func FindRangeBy[S ~[]E, E any](s S, f func(E) int) (lo, hi int) {
	return Span(0, len(s)).FindRangeBy(func(i int) int {
		return f(s[i])
	})
}

// FindRange returns the range [lo, hi) of elements of the sorted slice s
// equal to x. If x is not present, lo == hi is its insertion point.
func FindRange[S ~[]E, E cmp.Ordered](s S, x E) (lo, hi int) {
	return FindRangeBy(s, byValue(x))
}

// FindRangeByKey returns the range [lo, hi) of elements of s whose key equals
// x. s has to be sorted by key.
func FindRangeByKey[S ~[]E, E any, K cmp.Ordered](s S, x K, key func(E) K) (lo, hi int) {
	return FindRangeBy(s, byKey(x, key))
}

// LowerBound returns the first index of the sorted slice s with s[i] >= x.
func LowerBound[S ~[]E, E cmp.Ordered](s S, x E) int {
	lo, _ := FindRange(s, x)
	return lo
}

// LowerBoundBy returns the first index of s for which f does not return a
// negative value.
func LowerBoundBy[S ~[]E, E any](s S, f func(E) int) int {
	lo, _ := FindRangeBy(s, f)
	return lo
}

// LowerBoundByKey is LowerBound for slices sorted by key.
func LowerBoundByKey[S ~[]E, E any, K cmp.Ordered](s S, x K, key func(E) K) int {
	lo, _ := FindRangeByKey(s, x, key)
	return lo
}

// UpperBound returns the first index of the sorted slice s with s[i] > x.
func UpperBound[S ~[]E, E cmp.Ordered](s S, x E) int {
	_, hi := FindRange(s, x)
	return hi
}

// UpperBoundBy returns the first index of s for which f returns a positive
// value.
func UpperBoundBy[S ~[]E, E any](s S, f func(E) int) int {
	_, hi := FindRangeBy(s, f)
	return hi
}

// UpperBoundByKey is UpperBound for slices sorted by key.
func UpperBoundByKey[S ~[]E, E any, K cmp.Ordered](s S, x K, key func(E) K) int {
	_, hi := FindRangeByKey(s, x, key)
	return hi
}

// PartitionPoint returns the length of the leading run of elements of s
// satisfying pred. All elements before the partition point satisfy pred, none
// after it does.
func PartitionPoint[S ~[]E, E any](s S, pred func(E) bool) int {
	return LowerBoundBy(s, predicate(pred))
}

func byValue[E cmp.Ordered](x E) func(E) int {
	return func(y E) int {
		return cmp.Compare(y, x)
	}
}

func byKey[E any, K cmp.Ordered](x K, key func(E) K) func(E) int {
	return func(y E) int {
		return cmp.Compare(key(y), x)
	}
}

package fenwick

import (
	"math/bits"

	"github.com/npillmayer/sumtrees/bisect"
)

var _ bisect.Searcher[int] = (*Tree[int])(nil)

// FindRangeBy returns the range [lo, hi) of indices i for which cmp applied to
// the prefix aggregate FoldInclusive(i) returns 0.
//
// cmp follows the sign convention of cmp.Compare and must be monotone over the
// prefix aggregates: negative for a (possibly empty) leading run, zero for the
// following run, positive for the rest. If no prefix compares equal, lo == hi
// is the insertion point.
func (t *Tree[S]) FindRangeBy(cmp func(S) int) (lo, hi int) {
	n := t.Len()
	if n == 0 {
		return 0, 0
	}
	// Anchor: extend the prefix while it compares less, until a probe hits an
	// equal prefix or the step width is exhausted.
	step := 1 << bits.Len(uint(n-1))
	i, acc := 0, t.m.Identity()
	for step > 0 {
		if i+step-1 < n {
			probe := t.m.Operate(acc, t.tree[i+step-1])
			c := cmp(probe)
			if c == 0 {
				break
			}
			if c < 0 {
				i += step
				acc = probe
			}
		}
		step >>= 1
	}
	// Refine leftmost and rightmost boundary independently, starting from the
	// anchor. The first refinement step re-probes the equal prefix.
	lo, loAcc := i, acc
	hi, hiAcc := i, acc
	for ; step > 0; step >>= 1 {
		if lo+step-1 < n {
			probe := t.m.Operate(loAcc, t.tree[lo+step-1])
			if cmp(probe) < 0 {
				lo += step
				loAcc = probe
			}
		}
		if hi+step-1 < n {
			probe := t.m.Operate(hiAcc, t.tree[hi+step-1])
			if cmp(probe) <= 0 {
				hi += step
				hiAcc = probe
			}
		}
	}
	return lo, hi
}

// LowerBoundBy returns the first index whose prefix aggregate does not compare
// less under cmp.
func (t *Tree[S]) LowerBoundBy(cmp func(S) int) int {
	lo, _ := t.FindRangeBy(cmp)
	return lo
}

// UpperBoundBy returns the first index whose prefix aggregate compares greater
// under cmp.
func (t *Tree[S]) UpperBoundBy(cmp func(S) int) int {
	_, hi := t.FindRangeBy(cmp)
	return hi
}

// PartitionPoint returns the number of leading prefix aggregates satisfying
// pred. pred must hold for a leading run of prefixes and fail for the rest.
func (t *Tree[S]) PartitionPoint(pred func(S) bool) int {
	return bisect.PartitionPointWith[S](t, pred)
}

/*
Package segtree implements array-backed segment trees over a monoid.

Tree supports point updates and range folds. Lazy extends it with range
actions: an action is applied to a whole range in O(log n), its application to
the nodes below being deferred until they are visited.

Both trees are flat slices. Tree of n elements stores 2n-1 nodes with the
leaves at positions [n-1, 2n-1) and the children of node i at 2i+1 and 2i+2.
Lazy rounds its leaf count up to a power of two and keeps a parallel slice of
pending actions.

	cfg := segtree.Config[int]{Monoid: monoid.Add[int]{}}
	t, _ := segtree.FromSlice(cfg, []int{1, 2, 3, 4})
	t.Query(1, 3) // 5

Range folds combine elements strictly left to right, so non-commutative
monoids are supported. Neither tree is safe for concurrent use.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'sumtrees'
func tracer() tracing.Trace {
	return tracing.Select("sumtrees")
}

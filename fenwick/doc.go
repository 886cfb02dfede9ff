/*
Package fenwick implements a Fenwick tree (binary indexed tree) over a monoid.

A Fenwick tree of size n is a flat array where slot i holds the aggregate of the
source elements (i - lsb(i+1), i], lsb(k) being the value of the lowest set bit
of k. Point updates and prefix folds both touch O(log n) slots.

Prefix folds are computed right to left, so the order of combination is preserved
for non-commutative monoids. Point updates combine the new value on the right of
every covering slot, which is order-correct only when updates arrive in index
order (as during construction) or when the monoid is commutative.

The tree also implements bisect.Searcher, finding boundaries of a monotone
comparator over the sequence of prefix aggregates in O(log n).

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package fenwick

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'sumtrees'
func tracer() tracing.Trace {
	return tracing.Select("sumtrees")
}

package fenwick

import (
	"fmt"

	"github.com/npillmayer/sumtrees/monoid"
)

// Tree is a Fenwick tree of fixed size over monoid aggregates S.
//
//	Operation      | Complexity
//	---------------+-----------
//	New, FromSlice | O(n), O(n log n)
//	Operate        | O(log n)
//	Fold           | O(log n)
//	FindRangeBy    | O(log n)
//
// A Tree is not safe for concurrent mutation.
type Tree[S any] struct {
	m    monoid.Monoid[S]
	tree []S
}

// New creates a tree of n elements, all set to the identity of m.
func New[S any](m monoid.Monoid[S], n int) *Tree[S] {
	assert(m != nil, "fenwick.New requires a monoid")
	assert(n >= 0, "fenwick.New requires a non-negative size")
	tree := make([]S, n)
	id := m.Identity()
	for i := range tree {
		tree[i] = id
	}
	tracer().Debugf("fenwick: new tree of size %d", n)
	return &Tree[S]{m: m, tree: tree}
}

// FromSlice creates a tree holding the elements of xs, in order.
func FromSlice[S any](m monoid.Monoid[S], xs []S) *Tree[S] {
	t := New(m, len(xs))
	for i, x := range xs {
		t.operate(i, x)
	}
	return t
}

// Len returns the number of elements.
func (t *Tree[S]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tree)
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[S]) IsEmpty() bool {
	return t.Len() == 0
}

// Monoid returns the monoid the tree aggregates with.
func (t *Tree[S]) Monoid() monoid.Monoid[S] {
	return t.m
}

// Operate combines v into element i, i.e. x[i] = Operate(x[i], v).
//
// Operate panics with ErrIndexOutOfBounds if i is not in [0, Len()).
func (t *Tree[S]) Operate(i int, v S) {
	if i < 0 || i >= t.Len() {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.Len()))
	}
	t.operate(i, v)
}

func (t *Tree[S]) operate(i int, v S) {
	for ; i < len(t.tree); i += lsb(i + 1) {
		t.tree[i] = t.m.Operate(t.tree[i], v)
	}
}

// Fold returns the aggregate of the prefix [0, k).
//
// Fold panics with ErrIndexOutOfBounds if k is not in [0, Len()].
func (t *Tree[S]) Fold(k int) S {
	if k < 0 || k > t.Len() {
		panic(fmt.Errorf("%w: prefix length %d, length %d", ErrIndexOutOfBounds, k, t.Len()))
	}
	return t.foldUnchecked(k)
}

// FoldInclusive returns the aggregate of the prefix [0, k].
func (t *Tree[S]) FoldInclusive(k int) S {
	return t.Fold(k + 1)
}

// FoldAll returns the aggregate of all elements.
func (t *Tree[S]) FoldAll() S {
	return t.foldUnchecked(t.Len())
}

// foldUnchecked walks k, k-lsb(k), … down to 0. Callers must guarantee
// 0 <= k <= Len(); the walk does not check.
func (t *Tree[S]) foldUnchecked(k int) S {
	acc := t.m.Identity()
	for ; k > 0; k -= lsb(k) {
		acc = t.m.Operate(t.tree[k-1], acc)
	}
	return acc
}

// lsb returns the value of the lowest set bit of i.
func lsb(i int) int {
	return i & -i
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

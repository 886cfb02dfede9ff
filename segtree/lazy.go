package segtree

import (
	"fmt"
	"math/bits"
)

// Lazy is a segment tree with deferred range actions.
//
// Nodes are numbered from 1 (the root) in heap order, node k having children
// 2k and 2k+1; node k is stored at position k-1. The leaves are the nodes
// [size, 2·size). A node's aggregate is up to date except for its own pending
// action and the pending actions of its ancestors.
//
//	Operation              | Complexity
//	-----------------------+-----------
//	NewLazy, LazyFromSlice | O(n)
//	Get, Set               | O(log n)
//	Query, Apply           | O(log n)
type Lazy[S, A any] struct {
	cfg   LazyConfig[S, A]
	n     int
	depth int
	size  int // 1 << depth
	tree  []S
	lazy  []A
}

// NewLazy creates a lazy tree of n elements, all set to the identity of the
// configured monoid.
func NewLazy[S, A any](cfg LazyConfig[S, A], n int) (*Lazy[S, A], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkSize(n); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	depth := 0
	if n > 1 {
		depth = bits.Len(uint(n - 1))
	}
	size := 1 << depth
	t := &Lazy[S, A]{
		cfg:   cfg,
		n:     n,
		depth: depth,
		size:  size,
		tree:  make([]S, 2*size-1),
		lazy:  make([]A, 2*size-1),
	}
	id, noact := cfg.Monoid.Identity(), cfg.Action.IdentityAct()
	for i := range t.tree {
		t.tree[i] = id
		t.lazy[i] = noact
	}
	tracer().Debugf("segtree: new lazy tree of size %d, depth %d", n, depth)
	return t, nil
}

// LazyFromSlice creates a lazy tree holding a copy of xs.
func LazyFromSlice[S, A any](cfg LazyConfig[S, A], xs []S) (*Lazy[S, A], error) {
	t, err := NewLazy(cfg, len(xs))
	if err != nil {
		return nil, err
	}
	copy(t.tree[t.size-1:], xs)
	for k := t.size - 1; k >= 1; k-- {
		t.tree[k-1] = t.cfg.Monoid.Operate(t.tree[2*k-1], t.tree[2*k])
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Lazy[S, A]) Config() LazyConfig[S, A] {
	return t.cfg
}

// Len returns the number of elements.
func (t *Lazy[S, A]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Depth returns the number of levels below the root. The tree has 2^Depth()
// leaves.
func (t *Lazy[S, A]) Depth() int {
	return t.depth
}

// Get returns element i with all pending actions applied.
func (t *Lazy[S, A]) Get(i int) S {
	t.checkIndex(i)
	k := t.size + i
	t.evaluatePath(k)
	t.evaluate(k)
	return t.tree[k-1]
}

// Set overwrites element i with v.
func (t *Lazy[S, A]) Set(i int, v S) {
	t.checkIndex(i)
	k := t.size + i
	t.evaluatePath(k)
	t.tree[k-1] = v
	t.lazy[k-1] = t.cfg.Action.IdentityAct()
	for h := 1; h <= t.depth; h++ {
		t.pull(k >> h)
	}
}

// Query returns the aggregate of the elements [l, r), combined left to right.
// An empty range yields the identity.
//
// Query panics with ErrIndexOutOfBounds unless 0 <= l <= r <= Len().
func (t *Lazy[S, A]) Query(l, r int) S {
	t.checkRange(l, r)
	m := t.cfg.Monoid
	if l == r {
		return m.Identity()
	}
	l, r = l+t.size, r+t.size
	t.evaluatePath(l)
	t.evaluatePath(r - 1)
	accL, accR := m.Identity(), m.Identity()
	for l < r {
		if l&1 == 1 {
			t.evaluate(l)
			accL = m.Operate(accL, t.tree[l-1])
			l++
		}
		if r&1 == 1 {
			r--
			t.evaluate(r)
			accR = m.Operate(t.tree[r-1], accR)
		}
		l >>= 1
		r >>= 1
	}
	return m.Operate(accL, accR)
}

// QueryAll returns the aggregate of all elements.
func (t *Lazy[S, A]) QueryAll() S {
	t.evaluate(1)
	return t.tree[0]
}

// Apply applies action a to every element of [l, r). Applying to an empty
// range does nothing.
//
// Apply panics with ErrIndexOutOfBounds unless 0 <= l <= r <= Len().
func (t *Lazy[S, A]) Apply(l, r int, a A) {
	t.checkRange(l, r)
	if l == r {
		return
	}
	l, r = l+t.size, r+t.size
	t.evaluatePath(l)
	t.evaluatePath(r - 1)
	act := t.cfg.Action
	for l2, r2 := l, r; l2 < r2; l2, r2 = l2>>1, r2>>1 {
		if l2&1 == 1 {
			t.lazy[l2-1] = act.MergeAct(t.lazy[l2-1], a)
			t.evaluate(l2)
			l2++
		}
		if r2&1 == 1 {
			r2--
			t.lazy[r2-1] = act.MergeAct(t.lazy[r2-1], a)
			t.evaluate(r2)
		}
	}
	// Recompute the ancestors of the boundary leaves, skipping nodes which
	// lie completely inside the range.
	for h := 1; h <= t.depth; h++ {
		if (l>>h)<<h != l {
			t.pull(l >> h)
		}
		if (r>>h)<<h != r {
			t.pull((r - 1) >> h)
		}
	}
}

// ApplyAt applies action a to element i.
func (t *Lazy[S, A]) ApplyAt(i int, a A) {
	t.checkIndex(i)
	t.Apply(i, i+1, a)
}

// evaluate applies the pending action of node k to its aggregate and hands it
// down to the children. Afterwards node k is clean.
func (t *Lazy[S, A]) evaluate(k int) {
	act := t.cfg.Action
	a := t.lazy[k-1]
	if act.IsIdentityAct(a) {
		return
	}
	t.tree[k-1] = act.Act(t.tree[k-1], a, t.width(k))
	if k < t.size {
		t.lazy[2*k-1] = act.MergeAct(t.lazy[2*k-1], a)
		t.lazy[2*k] = act.MergeAct(t.lazy[2*k], a)
	}
	t.lazy[k-1] = act.IdentityAct()
}

// evaluatePath evaluates the proper ancestors of node k, top-down.
func (t *Lazy[S, A]) evaluatePath(k int) {
	for h := bits.Len(uint(k)) - 1; h >= 1; h-- {
		t.evaluate(k >> h)
	}
}

// pull recomputes inner node k from its children. Node k must be clean.
func (t *Lazy[S, A]) pull(k int) {
	t.evaluate(2 * k)
	t.evaluate(2*k + 1)
	t.tree[k-1] = t.cfg.Monoid.Operate(t.tree[2*k-1], t.tree[2*k])
}

// width returns the number of leaves below node k.
func (t *Lazy[S, A]) width(k int) int {
	return t.size >> (bits.Len(uint(k)) - 1)
}

func (t *Lazy[S, A]) checkIndex(i int) {
	if i < 0 || i >= t.Len() {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.Len()))
	}
}

func (t *Lazy[S, A]) checkRange(l, r int) {
	if l < 0 || l > r || r > t.Len() {
		panic(fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfBounds, l, r, t.Len()))
	}
}

package segtree

import "fmt"

// Tree is a segment tree of fixed size over monoid aggregates S.
//
//	Operation      | Complexity
//	---------------+-----------
//	New, FromSlice | O(n)
//	Set, Operate   | O(log n)
//	Get            | O(1)
//	Query          | O(log n)
type Tree[S any] struct {
	cfg  Config[S]
	n    int
	tree []S // 2n-1 nodes, nil for n = 0
}

// New creates a tree of n elements, all set to the identity of the configured
// monoid.
func New[S any](cfg Config[S], n int) (*Tree[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkSize(n); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[S]{cfg: cfg, n: n}
	if n > 0 {
		t.tree = make([]S, 2*n-1)
		id := cfg.Monoid.Identity()
		for i := range t.tree {
			t.tree[i] = id
		}
	}
	tracer().Debugf("segtree: new tree of size %d", n)
	return t, nil
}

// FromSlice creates a tree holding a copy of xs.
func FromSlice[S any](cfg Config[S], xs []S) (*Tree[S], error) {
	t, err := New(cfg, len(xs))
	if err != nil {
		return nil, err
	}
	if t.n == 0 {
		return t, nil
	}
	copy(t.tree[t.n-1:], xs)
	for i := t.n - 2; i >= 0; i-- {
		t.pull(i)
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[S]) Config() Config[S] {
	return t.cfg
}

// Len returns the number of elements.
func (t *Tree[S]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Get returns element i.
func (t *Tree[S]) Get(i int) S {
	t.checkIndex(i)
	return t.tree[t.n-1+i]
}

// Set overwrites element i with v and recomputes its ancestors.
func (t *Tree[S]) Set(i int, v S) {
	t.checkIndex(i)
	k := t.n - 1 + i
	t.tree[k] = v
	for k > 0 {
		k = (k - 1) / 2
		t.pull(k)
	}
}

// Operate combines v into element i, i.e. x[i] = Operate(x[i], v).
func (t *Tree[S]) Operate(i int, v S) {
	t.Set(i, t.cfg.Monoid.Operate(t.Get(i), v))
}

// Slice returns the elements [l, r). The result shares storage with the tree
// and must not be modified; it is invalidated by the next update.
func (t *Tree[S]) Slice(l, r int) []S {
	t.checkRange(l, r)
	if t.n == 0 {
		return nil
	}
	return t.tree[t.n-1+l : t.n-1+r : t.n-1+r]
}

// Leaves returns all elements, see Slice.
func (t *Tree[S]) Leaves() []S {
	return t.Slice(0, t.Len())
}

// Query returns the aggregate of the elements [l, r), combined left to right.
// An empty range yields the identity.
//
// Query panics with ErrIndexOutOfBounds unless 0 <= l <= r <= Len().
func (t *Tree[S]) Query(l, r int) S {
	t.checkRange(l, r)
	m := t.cfg.Monoid
	accL, accR := m.Identity(), m.Identity()
	l, r = l+t.n-1, r+t.n-1
	for l < r {
		if l%2 == 0 { // right child, its parent reaches beyond l
			accL = m.Operate(accL, t.tree[l])
		}
		if r%2 == 0 { // r-1 is a left child
			r--
			accR = m.Operate(t.tree[r], accR)
		}
		l /= 2
		r /= 2
	}
	return m.Operate(accL, accR)
}

// QueryAll returns the aggregate of all elements.
//
// For sizes other than powers of two the root does not hold the ordered fold,
// so this is not a lookup of node 0.
func (t *Tree[S]) QueryAll() S {
	return t.Query(0, t.Len())
}

func (t *Tree[S]) pull(i int) {
	t.tree[i] = t.cfg.Monoid.Operate(t.tree[2*i+1], t.tree[2*i+2])
}

func (t *Tree[S]) checkIndex(i int) {
	if i < 0 || i >= t.Len() {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.Len()))
	}
}

func (t *Tree[S]) checkRange(l, r int) {
	if l < 0 || l > r || r > t.Len() {
		panic(fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfBounds, l, r, t.Len()))
	}
}

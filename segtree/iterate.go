package segtree

// ForEach walks the elements in order.
//
// Iteration stops early if fn returns false.
func (t *Tree[S]) ForEach(fn func(i int, x S) bool) {
	if t == nil || fn == nil {
		return
	}
	for i, x := range t.Leaves() {
		if !fn(i, x) {
			return
		}
	}
}

// ForEach walks the elements in order, with all pending actions applied.
//
// Iteration stops early if fn returns false.
func (t *Lazy[S, A]) ForEach(fn func(i int, x S) bool) {
	if t == nil || fn == nil {
		return
	}
	t.evaluateAll()
	for i := 0; i < t.n; i++ {
		if !fn(i, t.tree[t.size-1+i]) {
			return
		}
	}
}

// evaluateAll hands every pending action down to the leaves. Heap order visits
// parents before their children.
func (t *Lazy[S, A]) evaluateAll() {
	for k := 1; k < 2*t.size; k++ {
		t.evaluate(k)
	}
}

package segtree

import "fmt"

// Check validates structural tree invariants, comparing aggregates with eq.
// It is meant for tests.
func (t *Tree[S]) Check(eq func(a, b S) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.n == 0 {
		if t.tree != nil {
			return fmt.Errorf("%w: empty tree must not hold nodes", ErrInvariant)
		}
		return nil
	}
	if len(t.tree) != 2*t.n-1 {
		return fmt.Errorf("%w: %d nodes for %d elements", ErrInvariant, len(t.tree), t.n)
	}
	m := t.cfg.Monoid
	for i := t.n - 2; i >= 0; i-- {
		if !eq(t.tree[i], m.Operate(t.tree[2*i+1], t.tree[2*i+2])) {
			tracer().Errorf("segtree: node %d = %v is stale", i, t.tree[i])
			return fmt.Errorf("%w: node %d does not aggregate its children", ErrInvariant, i)
		}
	}
	return nil
}

// Check validates structural tree invariants, comparing aggregates with eq.
// Pending actions are taken into account but not evaluated; Check does not
// modify the tree.
func (t *Lazy[S, A]) Check(eq func(a, b S) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.size != 1<<t.depth || t.size < t.n || (t.n > 1 && t.size >= 2*t.n) {
		return fmt.Errorf("%w: %d leaves at depth %d for %d elements",
			ErrInvariant, t.size, t.depth, t.n)
	}
	if len(t.tree) != 2*t.size-1 || len(t.lazy) != len(t.tree) {
		return fmt.Errorf("%w: node count mismatch (%d, %d)", ErrInvariant, len(t.tree), len(t.lazy))
	}
	m, act := t.cfg.Monoid, t.cfg.Action
	for k := t.size + t.n; k < 2*t.size; k++ {
		if !eq(t.tree[k-1], m.Identity()) || !act.IsIdentityAct(t.lazy[k-1]) {
			return fmt.Errorf("%w: padding leaf %d is not the identity", ErrInvariant, k-t.size)
		}
	}
	effective := func(k int) S {
		return act.Act(t.tree[k-1], t.lazy[k-1], t.width(k))
	}
	for k := t.size - 1; k >= 1; k-- {
		if !eq(t.tree[k-1], m.Operate(effective(2*k), effective(2*k+1))) {
			tracer().Errorf("segtree: lazy node %d = %v is stale", k, t.tree[k-1])
			return fmt.Errorf("%w: node %d does not aggregate its children", ErrInvariant, k)
		}
	}
	return nil
}

package fenwick

import (
	"fmt"

	"github.com/npillmayer/sumtrees/monoid"
)

func (t *Tree[S]) partialGroup() (monoid.PartialGroup[S], error) {
	g, ok := t.m.(monoid.PartialGroup[S])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoInverse, t.m)
	}
	return g, nil
}

// FoldRange returns the aggregate of the elements [l, r), computed as
// InverseOperate(Fold(r), Fold(l)).
//
// The tree's monoid has to be a monoid.PartialGroup, otherwise ErrNoInverse is
// returned. Invalid ranges return ErrIndexOutOfBounds.
func (t *Tree[S]) FoldRange(l, r int) (S, error) {
	var zero S
	g, err := t.partialGroup()
	if err != nil {
		return zero, err
	}
	if l < 0 || l > r || r > t.Len() {
		return zero, fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfBounds, l, r, t.Len())
	}
	return g.InverseOperate(t.foldUnchecked(r), t.foldUnchecked(l)), nil
}

// Get returns element i. It needs a monoid.PartialGroup, see FoldRange.
func (t *Tree[S]) Get(i int) (S, error) {
	return t.FoldRange(i, i+1)
}

// Set overwrites element i with v. It needs a monoid.PartialGroup and a
// commutative operation.
func (t *Tree[S]) Set(i int, v S) error {
	old, err := t.Get(i)
	if err != nil {
		return err
	}
	g, _ := t.partialGroup()
	t.operate(i, g.InverseOperate(v, old))
	return nil
}

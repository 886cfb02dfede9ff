package segtree

import (
	"fmt"

	"github.com/npillmayer/sumtrees/monoid"
)

// Action describes how range actions of type A modify aggregates of type S.
//
// For every aggregate s, actions a, b and widths w, w1, w2:
//
//	Act(s, IdentityAct(), w) == s
//	Act(Act(s, a, w), b, w) == Act(s, MergeAct(a, b), w)
//	Act(Operate(x, y), a, w1+w2) == Operate(Act(x, a, w1), Act(y, a, w2))
//
// width is the number of elements s aggregates, which lets actions such as
// range assignment scale their effect.
type Action[S, A any] interface {
	IdentityAct() A
	IsIdentityAct(a A) bool
	Act(s S, a A, width int) S
	// MergeAct composes two actions; newer is applied after older.
	MergeAct(older, newer A) A
}

// Act is an optional action value. The zero Act is the identity action.
type Act[S any] struct {
	Value S
	Valid bool
}

// ActOf returns an action carrying v.
func ActOf[S any](v S) Act[S] {
	return Act[S]{Value: v, Valid: true}
}

// NoAct returns the identity action.
func NoAct[S any]() Act[S] {
	return Act[S]{}
}

func (a Act[S]) String() string {
	if !a.Valid {
		return "-"
	}
	return fmt.Sprintf("%v", a.Value)
}

// Replace is the range assignment action: every element of the range is set
// to the action's value.
type Replace[S any] struct {
	Monoid monoid.Monoid[S]
}

func (Replace[S]) IdentityAct() Act[S]         { return Act[S]{} }
func (Replace[S]) IsIdentityAct(a Act[S]) bool { return !a.Valid }
func (r Replace[S]) validate() error           { return monoidRequired(r.Monoid) }

func (Replace[S]) MergeAct(older, newer Act[S]) Act[S] {
	if newer.Valid {
		return newer
	}
	return older
}

func (r Replace[S]) Act(s S, a Act[S], width int) S {
	if !a.Valid {
		return s
	}
	return monoid.Pow(r.Monoid, a.Value, width)
}

// Accumulate is the range operate action: the action's value is combined into
// every element of the range, x = Operate(x, v).
//
// Accumulate is correct for commutative monoids only.
type Accumulate[S any] struct {
	Monoid monoid.Monoid[S]
}

func (Accumulate[S]) IdentityAct() Act[S]         { return Act[S]{} }
func (Accumulate[S]) IsIdentityAct(a Act[S]) bool { return !a.Valid }
func (c Accumulate[S]) validate() error           { return monoidRequired(c.Monoid) }

func (c Accumulate[S]) MergeAct(older, newer Act[S]) Act[S] {
	switch {
	case !older.Valid:
		return newer
	case !newer.Valid:
		return older
	}
	return ActOf(c.Monoid.Operate(older.Value, newer.Value))
}

func (c Accumulate[S]) Act(s S, a Act[S], width int) S {
	if !a.Valid {
		return s
	}
	return c.Monoid.Operate(s, monoid.Pow(c.Monoid, a.Value, width))
}

func monoidRequired[S any](m monoid.Monoid[S]) error {
	if m == nil {
		return fmt.Errorf("%w: action requires a monoid", ErrInvalidConfig)
	}
	return nil
}

var (
	_ Action[int, Act[int]] = Replace[int]{}
	_ Action[int, Act[int]] = Accumulate[int]{}
)

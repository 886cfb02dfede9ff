package monoid

import (
	"cmp"
	"math"

	"github.com/npillmayer/sumtrees/internal/limits"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types supporting + and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Add is the additive group of a number type.
type Add[T Number] struct{}

func (Add[T]) Operate(a, b T) T        { return a + b }
func (Add[T]) Identity() T             { return 0 }
func (Add[T]) InverseOperate(a, b T) T { return a - b }
func (Add[T]) Inverse(a T) T           { return -a }

// Mul is the multiplicative monoid of a number type.
type Mul[T Number] struct{}

func (Mul[T]) Operate(a, b T) T { return a * b }
func (Mul[T]) Identity() T      { return 1 }

// Max selects the larger of two values. Bottom must be a lower bound of every
// element which will be combined; it serves as identity.
type Max[T cmp.Ordered] struct {
	Bottom T
}

func (Max[T]) Operate(a, b T) T { return max(a, b) }
func (m Max[T]) Identity() T    { return m.Bottom }

// Min selects the smaller of two values. Top must be an upper bound of every
// element which will be combined; it serves as identity.
type Min[T cmp.Ordered] struct {
	Top T
}

func (Min[T]) Operate(a, b T) T { return min(a, b) }
func (m Min[T]) Identity() T    { return m.Top }

// MaxOf returns the max-monoid of an integer type, with the smallest
// representable value as identity.
func MaxOf[T constraints.Integer]() Max[T] {
	return Max[T]{Bottom: limits.Lowest[T]()}
}

// MinOf returns the min-monoid of an integer type, with the largest
// representable value as identity.
func MinOf[T constraints.Integer]() Min[T] {
	return Min[T]{Top: limits.Highest[T]()}
}

// MaxFloat returns the max-monoid of a float type, with -Inf as identity.
func MaxFloat[T constraints.Float]() Max[T] {
	return Max[T]{Bottom: T(math.Inf(-1))}
}

// MinFloat returns the min-monoid of a float type, with +Inf as identity.
func MinFloat[T constraints.Float]() Min[T] {
	return Min[T]{Top: T(math.Inf(1))}
}

// BitAnd is bitwise conjunction with all bits set as identity.
type BitAnd[T constraints.Integer] struct{}

func (BitAnd[T]) Operate(a, b T) T { return a & b }
func (BitAnd[T]) Identity() T {
	var zero T
	return ^zero
}

// BitOr is bitwise disjunction.
type BitOr[T constraints.Integer] struct{}

func (BitOr[T]) Operate(a, b T) T { return a | b }
func (BitOr[T]) Identity() T      { return 0 }

// BitXor is bitwise exclusive or. Every element is its own inverse.
type BitXor[T constraints.Integer] struct{}

func (BitXor[T]) Operate(a, b T) T        { return a ^ b }
func (BitXor[T]) Identity() T             { return 0 }
func (BitXor[T]) InverseOperate(a, b T) T { return a ^ b }
func (BitXor[T]) Inverse(a T) T           { return a }

var (
	_ Group[int]      = Add[int]{}
	_ Monoid[float64] = Mul[float64]{}
	_ Monoid[string]  = Max[string]{}
	_ Monoid[int]     = Min[int]{}
	_ Monoid[uint8]   = BitAnd[uint8]{}
	_ Monoid[uint8]   = BitOr[uint8]{}
	_ Group[uint32]   = BitXor[uint32]{}
)

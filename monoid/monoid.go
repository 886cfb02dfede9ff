package monoid

// Semigroup is a set S together with an associative binary operation.
type Semigroup[S any] interface {
	Operate(a, b S) S
}

// Monoid is a semigroup with an identity element.
type Monoid[S any] interface {
	Semigroup[S]
	Identity() S
}

// PartialGroup is a monoid with an inverse operation, though not necessarily
// with inverse elements in S.
//
// For all a, b:
//
//	Operate(InverseOperate(b, a), a) == b
type PartialGroup[S any] interface {
	Monoid[S]
	InverseOperate(a, b S) S
}

// Group is a partial group with an inverse element for every element of S.
type Group[S any] interface {
	PartialGroup[S]
	Inverse(a S) S
}

// Func is a monoid built from an operation and an identity function.
type Func[S any] struct {
	op func(a, b S) S
	id func() S
}

// New creates a monoid from a combining function and an identity function.
// Both must be non-nil.
func New[S any](op func(a, b S) S, id func() S) Func[S] {
	if op == nil || id == nil {
		tracer().Errorf("monoid.New called with nil operation or identity")
		panic("monoid.New: operation and identity are required")
	}
	return Func[S]{op: op, id: id}
}

func (m Func[S]) Operate(a, b S) S { return m.op(a, b) }
func (m Func[S]) Identity() S      { return m.id() }

// Tuple holds one component per monoid of a Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair is the product of two monoids, operating component-wise.
type Pair[A, B any] struct {
	M1 Monoid[A]
	M2 Monoid[B]
}

func (p Pair[A, B]) Operate(a, b Tuple[A, B]) Tuple[A, B] {
	return Tuple[A, B]{
		First:  p.M1.Operate(a.First, b.First),
		Second: p.M2.Operate(a.Second, b.Second),
	}
}

func (p Pair[A, B]) Identity() Tuple[A, B] {
	return Tuple[A, B]{First: p.M1.Identity(), Second: p.M2.Identity()}
}

// Fold combines xs from left to right, starting with the identity.
func Fold[S any](m Monoid[S], xs ...S) S {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Operate(acc, x)
	}
	return acc
}

// Pow combines n copies of x. Pow(m, x, 0) is the identity.
//
// Pow needs O(log n) operations.
func Pow[S any](m Monoid[S], x S, n int) S {
	if n < 0 {
		panic("monoid.Pow: negative exponent")
	}
	acc := m.Identity()
	for n > 0 {
		if n&1 == 1 {
			acc = m.Operate(acc, x)
		}
		n >>= 1
		if n > 0 {
			x = m.Operate(x, x)
		}
	}
	return acc
}

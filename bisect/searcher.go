package bisect

// Searcher is implemented by types which can locate the equal-range of a
// monotone comparator over their elements.
type Searcher[E any] interface {
	FindRangeBy(cmp func(E) int) (lo, hi int)
}

// Sequence is a random-access sequence of elements.
type Sequence[E any] interface {
	Len() int
	At(i int) E
}

// Over makes a Searcher from a random-access sequence.
func Over[E any](seq Sequence[E]) Searcher[E] {
	return sequence[E]{seq: seq}
}

type sequence[E any] struct {
	seq Sequence[E]
}

func (s sequence[E]) FindRangeBy(cmp func(E) int) (lo, hi int) {
	return Span(0, s.seq.Len()).FindRangeBy(func(i int) int {
		return cmp(s.seq.At(i))
	})
}

// LowerBoundWith returns the first position of s not comparing less.
func LowerBoundWith[E any](s Searcher[E], cmp func(E) int) int {
	lo, _ := s.FindRangeBy(cmp)
	return lo
}

// UpperBoundWith returns the first position of s comparing greater.
func UpperBoundWith[E any](s Searcher[E], cmp func(E) int) int {
	_, hi := s.FindRangeBy(cmp)
	return hi
}

// PartitionPointWith returns the length of the leading run of elements of s
// satisfying pred.
func PartitionPointWith[E any](s Searcher[E], pred func(E) bool) int {
	return LowerBoundWith(s, predicate(pred))
}

// predicate maps true to less and false to greater.
func predicate[E any](pred func(E) bool) func(E) int {
	return func(x E) int {
		if pred(x) {
			return -1
		}
		return 1
	}
}

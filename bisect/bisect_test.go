package bisect

import (
	"cmp"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ a, b int }

func TestFindRangeOnSortedSlice(t *testing.T) {
	v := []int{1, 2, 3, 4, 4, 4, 6, 7, 7, 8}
	expected := map[int][2]int{
		0: {0, 0}, 1: {0, 1}, 2: {1, 2}, 3: {2, 3}, 4: {3, 6},
		5: {6, 6}, 6: {6, 7}, 7: {7, 9}, 8: {9, 10}, 9: {10, 10},
	}
	for x, want := range expected {
		lo, hi := FindRange(v, x)
		assert.Equal(t, want, [2]int{lo, hi}, "FindRange(%d)", x)
	}
	assert.Equal(t, 3, LowerBound(v, 4))
	assert.Equal(t, 6, LowerBound(v, 5))
	assert.Equal(t, 6, LowerBound(v, 6))
	assert.Equal(t, 6, UpperBound(v, 4))
	assert.Equal(t, 6, UpperBound(v, 5))
	assert.Equal(t, 7, UpperBound(v, 6))
}

func TestFindRangeByComparator(t *testing.T) {
	v := []int{1, 2, 3, 4, 4, 4, 6, 7, 7, 8}
	by := func(x int) func(int) int {
		return func(y int) int { return cmp.Compare(y, x) }
	}
	lo, hi := FindRangeBy(v, by(4))
	assert.Equal(t, []int{3, 6}, []int{lo, hi})
	assert.Equal(t, 6, LowerBoundBy(v, by(5)))
	assert.Equal(t, 7, UpperBoundBy(v, by(6)))
}

func TestFindRangeByKey(t *testing.T) {
	v := []pair{{2, 0}, {1, 1}, {4, 1}, {7, 2}, {4, 3}, {8, 3}, {3, 8}, {6, 13}, {4, 20}, {7, 57}}
	key := func(p pair) int { return p.b }
	lo, hi := FindRangeByKey(v, 3, key)
	assert.Equal(t, []int{4, 6}, []int{lo, hi})
	assert.Equal(t, 8, LowerBoundByKey(v, 19, key))
	assert.Equal(t, 8, UpperBoundByKey(v, 19, key))
	assert.Equal(t, 9, LowerBoundByKey(v, 57, key))
	assert.Equal(t, 10, UpperBoundByKey(v, 57, key))
}

func TestEmptySlice(t *testing.T) {
	var v []string
	lo, hi := FindRange(v, "x")
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	assert.Zero(t, PartitionPoint(v, func(string) bool { return true }))
}

func TestPartitionPointSlice(t *testing.T) {
	v := []int{1, 2, 3, 3, 5, 6, 7}
	i := PartitionPoint(v, func(x int) bool { return x < 5 })
	require.Equal(t, 4, i)
	for _, x := range v[:i] {
		assert.Less(t, x, 5)
	}
	for _, x := range v[i:] {
		assert.GreaterOrEqual(t, x, 5)
	}
}

func TestPartitionPointProperty(t *testing.T) {
	const max = 300
	for threshold := 0; threshold <= max; threshold += 7 {
		f := func(x int) bool { return x*x < threshold*threshold }
		i := Span(0, max).PartitionPoint(f)
		for x := range max {
			require.Equal(t, x < i, f(x), "threshold %d, x %d, partition %d", threshold, x, i)
		}
	}
}

func TestIntervalFindRange(t *testing.T) {
	lo, hi := Span[uint](7, 13).FindRangeBy(func(i uint) int { return cmp.Compare(i/10, 1) })
	assert.Equal(t, []uint{10, 13}, []uint{lo, hi})
	assert.Equal(t, uint(10), Span[uint](7, 13).LowerBoundBy(func(i uint) int { return cmp.Compare(i/10, 1) }))
	assert.Equal(t, uint(13), Span[uint](7, 13).UpperBoundBy(func(i uint) int { return cmp.Compare(i/10, 1) }))
	f := func(x int) bool { return x*(x+1)/2 < 1700 }
	assert.Equal(t, 58, Span(0, 10_000_000).PartitionPoint(f))
	lo2, hi2 := Closed(-5, 5).FindRangeBy(func(i int) int { return cmp.Compare(i, 20) })
	assert.Equal(t, []int{6, 6}, []int{lo2, hi2})
}

func TestIntervalUnboundedEnds(t *testing.T) {
	i := Full[int8]().PartitionPoint(func(x int8) bool { return x < -100 })
	assert.Equal(t, int8(-100), i)
	lo, hi := Full[int8]().FindRangeBy(func(x int8) int { return cmp.Compare(x/16, 7) })
	// max(int8) is excluded from unbounded intervals
	assert.Equal(t, []int8{112, 127}, []int8{lo, hi})
	n := Full[int64]().PartitionPoint(func(x int64) bool { return x < math.MaxInt64-3 })
	assert.Equal(t, int64(math.MaxInt64-3), n)
	m := From[uint64](math.MaxUint64 - 10).PartitionPoint(func(x uint64) bool { return x < math.MaxUint64-1 })
	assert.Equal(t, uint64(math.MaxUint64-1), m)
	assert.Equal(t, int16(math.MinInt16), UpTo[int16](0).PartitionPoint(func(int16) bool { return false }))
	assert.Equal(t, int16(0), UpTo[int16](0).PartitionPoint(func(int16) bool { return true }))
}

func TestIntervalPanics(t *testing.T) {
	catch := func(f func()) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err, _ = r.(error)
			}
		}()
		f()
		return nil
	}
	err := catch(func() { Span(5, 3).HalfOpen() })
	assert.True(t, errors.Is(err, ErrInvalidRange), "got %v", err)
	err = catch(func() { Closed[uint8](0, math.MaxUint8).HalfOpen() })
	assert.True(t, errors.Is(err, ErrBoundOverflow), "got %v", err)
	err = catch(func() {
		Interval[int8]{Start: Excl[int8](math.MaxInt8)}.HalfOpen()
	})
	assert.True(t, errors.Is(err, ErrBoundOverflow), "got %v", err)
}

type squares int

func (s squares) Len() int     { return int(s) }
func (s squares) At(i int) int { return i * i }

func TestSequenceSearcher(t *testing.T) {
	s := Over[int](squares(100))
	assert.Equal(t, 8, LowerBoundWith(s, func(x int) int { return cmp.Compare(x, 50) }))
	assert.Equal(t, 7, UpperBoundWith(s, func(x int) int { return cmp.Compare(x, 49) })-1)
	assert.Equal(t, 32, PartitionPointWith(s, func(x int) bool { return x < 1000 }))
	lo, hi := s.FindRangeBy(func(x int) int { return cmp.Compare(x, 81) })
	assert.Equal(t, []int{9, 10}, []int{lo, hi})
}

func FuzzSliceFindRange(f *testing.F) {
	f.Add([]byte{1, 2, 2, 3, 9}, byte(2))
	f.Fuzz(func(t *testing.T, data []byte, x byte) {
		sorted := append([]byte(nil), data...)
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
				sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			}
		}
		lo, hi := FindRange(sorted, x)
		for i, y := range sorted {
			switch {
			case i < lo && y >= x:
				t.Fatalf("element %d at %d before lower bound %d", y, i, lo)
			case i >= lo && i < hi && y != x:
				t.Fatalf("element %d at %d inside range [%d,%d) for %d", y, i, lo, hi, x)
			case i >= hi && y <= x:
				t.Fatalf("element %d at %d after upper bound %d", y, i, hi)
			}
		}
	})
}

package segtree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sumtrees/monoid"
)

func TestLazyDepth(t *testing.T) {
	cfg := LazyConfig[int, Act[int]]{Monoid: monoid.Add[int]{}, Action: Accumulate[int]{Monoid: monoid.Add[int]{}}}
	for n, depth := range map[int]int{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 1000: 10} {
		tree, err := NewLazy(cfg, n)
		if err != nil {
			t.Fatal(err)
		}
		if tree.Len() != n || tree.Depth() != depth {
			t.Errorf("n=%d: Len()=%d, Depth()=%d, want depth %d", n, tree.Len(), tree.Depth(), depth)
		}
	}
}

func TestLazyConfig(t *testing.T) {
	if _, err := NewLazy(LazyConfig[int, Act[int]]{Monoid: monoid.Add[int]{}}, 3); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing action, got %v", err)
	}
	cfg := LazyConfig[int, Act[int]]{Monoid: monoid.Add[int]{}, Action: Replace[int]{}}
	if _, err := NewLazy(cfg, 3); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for action without monoid, got %v", err)
	}
	cfg.Action = Replace[int]{Monoid: monoid.Add[int]{}}
	if _, err := NewLazy(cfg, -3); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative size, got %v", err)
	}
}

func TestLazyRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sumtrees")
	defer teardown()
	//
	add := monoid.Add[int]{}
	tree, err := LazyFromSlice(LazyConfig[int, Act[int]]{Monoid: add, Action: Replace[int]{Monoid: add}},
		[]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	tree.Apply(1, 4, ActOf(10))
	if tree.QueryAll() != 36 || tree.Query(0, 2) != 11 || tree.Get(3) != 10 {
		t.Fatalf("unexpected folds after assignment: all=%d", tree.QueryAll())
	}
	tree.ApplyAt(4, ActOf(0))
	tree.Set(0, 7)
	if tree.QueryAll() != 37 {
		t.Fatalf("expected total 37, got %d", tree.QueryAll())
	}
	tree.Apply(2, 2, ActOf(1000))
	tree.Apply(0, 5, NoAct[int]())
	if tree.QueryAll() != 37 {
		t.Fatalf("empty range or identity action changed the tree: %d", tree.QueryAll())
	}
}

// lazyCase drives a lazy tree and a plain slice model with the same random
// operations and compares both after every step.
type lazyCase[S comparable, A any] struct {
	name   string
	cfg    LazyConfig[S, A]
	value  func(*rand.Rand) S
	action func(*rand.Rand) A
	apply  func(x S, a A) S // effect of an action on a single element
}

func (c lazyCase[S, A]) run(t *testing.T, seed int64, maxN int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	eq := func(a, b S) bool { return a == b }
	m := c.cfg.Monoid
	for n := 0; n <= maxN; n++ {
		model := make([]S, n)
		for i := range model {
			model[i] = c.value(r)
		}
		tree, err := LazyFromSlice(c.cfg, model)
		if err != nil {
			t.Fatal(err)
		}
		for step := range 4 * (n + 1) {
			l := r.Intn(n + 1)
			rr := l + r.Intn(n-l+1)
			switch op := r.Intn(4); {
			case op < 2:
				a := c.action(r)
				for i := l; i < rr; i++ {
					model[i] = c.apply(model[i], a)
				}
				tree.Apply(l, rr, a)
			case op == 2 && n > 0:
				i, v := r.Intn(n), c.value(r)
				model[i] = v
				tree.Set(i, v)
			default:
				if n > 0 {
					i := r.Intn(n)
					if got := tree.Get(i); got != model[i] {
						t.Fatalf("%s, n=%d, step %d: Get(%d) = %v, want %v", c.name, n, step, i, got, model[i])
					}
				}
			}
			if err := tree.Check(eq); err != nil {
				t.Fatalf("%s, n=%d, step %d: %v", c.name, n, step, err)
			}
			for l := 0; l <= n; l++ {
				for rr := l; rr <= n; rr++ {
					if got, want := tree.Query(l, rr), monoid.Fold(m, model[l:rr]...); got != want {
						t.Fatalf("%s, n=%d, step %d: Query(%d,%d) = %v, want %v",
							c.name, n, step, l, rr, got, want)
					}
				}
			}
			if got, want := tree.QueryAll(), monoid.Fold(m, model...); got != want {
				t.Fatalf("%s, n=%d, step %d: QueryAll() = %v, want %v", c.name, n, step, got, want)
			}
		}
	}
}

func smallInt(r *rand.Rand) int          { return r.Intn(41) - 20 }
func smallAct(r *rand.Rand) Act[int]     { return ActOf(smallInt(r)) }
func letter(r *rand.Rand) string         { return string(rune('a' + r.Intn(26))) }
func letterAct(r *rand.Rand) Act[string] { return ActOf(letter(r)) }

func TestLazyReplaceSum(t *testing.T) {
	add := monoid.Add[int]{}
	lazyCase[int, Act[int]]{
		name:   "replace/sum",
		cfg:    LazyConfig[int, Act[int]]{Monoid: add, Action: Replace[int]{Monoid: add}},
		value:  smallInt,
		action: smallAct,
		apply:  func(_ int, a Act[int]) int { return a.Value },
	}.run(t, 1, 16)
}

func TestLazyReplaceMax(t *testing.T) {
	mx := monoid.MaxOf[int]()
	lazyCase[int, Act[int]]{
		name:   "replace/max",
		cfg:    LazyConfig[int, Act[int]]{Monoid: mx, Action: Replace[int]{Monoid: mx}},
		value:  smallInt,
		action: smallAct,
		apply:  func(_ int, a Act[int]) int { return a.Value },
	}.run(t, 2, 16)
}

func TestLazyAccumulateSum(t *testing.T) {
	add := monoid.Add[int]{}
	lazyCase[int, Act[int]]{
		name:   "accumulate/sum",
		cfg:    LazyConfig[int, Act[int]]{Monoid: add, Action: Accumulate[int]{Monoid: add}},
		value:  smallInt,
		action: smallAct,
		apply:  func(x int, a Act[int]) int { return x + a.Value },
	}.run(t, 3, 16)
}

func TestLazyAccumulateMin(t *testing.T) {
	mn := monoid.MinOf[int]()
	lazyCase[int, Act[int]]{
		name:   "accumulate/min",
		cfg:    LazyConfig[int, Act[int]]{Monoid: mn, Action: Accumulate[int]{Monoid: mn}},
		value:  smallInt,
		action: smallAct,
		apply:  func(x int, a Act[int]) int { return min(x, a.Value) },
	}.run(t, 4, 16)
}

func TestLazyReplaceConcat(t *testing.T) {
	lazyCase[string, Act[string]]{
		name:   "replace/concat",
		cfg:    LazyConfig[string, Act[string]]{Monoid: concat(), Action: Replace[string]{Monoid: concat()}},
		value:  letter,
		action: letterAct,
		apply:  func(_ string, a Act[string]) string { return a.Value },
	}.run(t, 5, 11)
}

// affine maps x to Mul*x + Add.
type affine struct {
	Mul, Add int64
}

// affineSum applies affine maps to sums: every element of a range of width w
// is mapped, so the sum s becomes Mul*s + Add*w.
type affineSum struct{}

func (affineSum) IdentityAct() affine         { return affine{Mul: 1} }
func (affineSum) IsIdentityAct(a affine) bool { return a == affine{Mul: 1} }

func (affineSum) Act(s int64, a affine, width int) int64 {
	return a.Mul*s + a.Add*int64(width)
}

func (affineSum) MergeAct(older, newer affine) affine {
	return affine{Mul: newer.Mul * older.Mul, Add: newer.Mul*older.Add + newer.Add}
}

func randomAffine(r *rand.Rand) affine {
	return affine{Mul: r.Int63n(5) - 2, Add: r.Int63n(11) - 5}
}

func TestLazyAffineComposition(t *testing.T) {
	lazyCase[int64, affine]{
		name:   "affine/sum",
		cfg:    LazyConfig[int64, affine]{Monoid: monoid.Add[int64]{}, Action: affineSum{}},
		value:  func(r *rand.Rand) int64 { return r.Int63n(100) },
		action: randomAffine,
		apply:  func(x int64, a affine) int64 { return a.Mul*x + a.Add },
	}.run(t, 6, 16)
}

func TestLazyOutOfBoundsPanics(t *testing.T) {
	add := monoid.Add[int]{}
	tree, _ := NewLazy(LazyConfig[int, Act[int]]{Monoid: add, Action: Accumulate[int]{Monoid: add}}, 5)
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Get(5) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Set(-1, 0) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Query(4, 3) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Apply(0, 6, ActOf(1)) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.ApplyAt(5, ActOf(1)) })
}

func TestLazyCheckDetectsStaleNode(t *testing.T) {
	add := monoid.Add[int]{}
	tree, _ := LazyFromSlice(LazyConfig[int, Act[int]]{Monoid: add, Action: Accumulate[int]{Monoid: add}},
		[]int{1, 2, 3})
	tree.tree[0]++
	if err := tree.Check(func(a, b int) bool { return a == b }); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestLazyDumpShowsPendingActions(t *testing.T) {
	add := monoid.Add[int]{}
	tree, _ := LazyFromSlice(LazyConfig[int, Act[int]]{Monoid: add, Action: Accumulate[int]{Monoid: add}},
		[]int{1, 2, 3, 4, 5, 6, 7, 8})
	tree.Apply(0, 8, ActOf(1))
	var out strings.Builder
	tree.Dump(&out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 levels, got:\n%s", out.String())
	}
	if !strings.Contains(lines[0], " 44") || !strings.Contains(lines[1], "*(1)") {
		t.Fatalf("expected clean root and dirty children, got:\n%s", out.String())
	}
	var dot strings.Builder
	tree.Dot(&dot)
	if !strings.Contains(dot.String(), `\n(1)`) {
		t.Fatalf("expected pending action in DOT labels, got:\n%s", dot.String())
	}
	if tree.Get(7) != 9 {
		t.Fatalf("Get(7) = %d, want 9", tree.Get(7))
	}
}

func BenchmarkLazyApplyQuery(b *testing.B) {
	n := 1 << 16
	add := monoid.Add[int]{}
	tree, _ := NewLazy(LazyConfig[int, Act[int]]{Monoid: add, Action: Accumulate[int]{Monoid: add}}, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := i % n
		tree.Apply(l/2, l, ActOf(1))
		_ = tree.Query(l/3, l)
	}
}

func TestForEach(t *testing.T) {
	add := monoid.Add[int]{}
	tree, _ := FromSlice(Config[int]{Monoid: add}, []int{4, 5, 6})
	var seen []int
	tree.ForEach(func(i, x int) bool {
		seen = append(seen, x)
		return i < 1
	})
	if len(seen) != 2 || seen[0] != 4 || seen[1] != 5 {
		t.Fatalf("expected to stop after 2 elements, got %v", seen)
	}
	lazy, _ := LazyFromSlice(LazyConfig[int, Act[int]]{Monoid: add, Action: Accumulate[int]{Monoid: add}},
		[]int{1, 2, 3, 4, 5})
	lazy.Apply(1, 5, ActOf(10))
	lazy.Apply(0, 2, ActOf(100))
	seen = seen[:0]
	lazy.ForEach(func(_ int, x int) bool {
		seen = append(seen, x)
		return true
	})
	want := []int{101, 112, 13, 14, 15}
	if len(seen) != len(want) {
		t.Fatalf("ForEach = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("ForEach = %v, want %v", seen, want)
		}
	}
	if err := lazy.Check(func(a, b int) bool { return a == b }); err != nil {
		t.Fatal(err)
	}
}

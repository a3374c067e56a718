// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly_test

import (
	"math/rand/v2"
	"testing"

	"github.com/georgefst/streamly"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randIntSlice returns a random []int of length [0, 8].
func randIntSlice(rng *rand.Rand) []int {
	n := rng.IntN(9)
	xs := make([]int, n)
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

// --- Group 1: Cont Monad Laws ---

// TestPropertyContLeftIdentity: Bind(Return(a), f) ≡ f(a)
func TestPropertyContLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) streamly.Cont[int, int] { return streamly.Return[int](x * 3) }
		left := streamly.Run(streamly.Bind(streamly.Return[int](a), f))
		right := streamly.Run(f(a))
		if left != right {
			t.Fatalf("left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContRightIdentity: Bind(m, Return) ≡ m
func TestPropertyContRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := streamly.Return[int](a)
		left := streamly.Run(streamly.Bind(m, func(x int) streamly.Cont[int, int] {
			return streamly.Return[int](x)
		}))
		right := streamly.Run(m)
		if left != right {
			t.Fatalf("right identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContAssociativity: Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
func TestPropertyContAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := streamly.Return[int](a)
		f := func(x int) streamly.Cont[int, int] { return streamly.Return[int](x + 3) }
		g := func(x int) streamly.Cont[int, int] { return streamly.Return[int](x * 2) }
		left := streamly.Run(streamly.Bind(streamly.Bind(m, f), g))
		right := streamly.Run(streamly.Bind(m, func(x int) streamly.Cont[int, int] {
			return streamly.Bind(f(x), g)
		}))
		if left != right {
			t.Fatalf("associativity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// --- Group 2: Cont Functor Laws ---

// TestPropertyContFunctorIdentity: Map(m, id) ≡ m
func TestPropertyContFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := streamly.Return[int](a)
		left := streamly.Run(streamly.Map(m, func(x int) int { return x }))
		right := streamly.Run(m)
		if left != right {
			t.Fatalf("cont functor identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContFunctorComposition: Map(m, f∘g) ≡ Map(Map(m, g), f)
func TestPropertyContFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 3 }
	fg := func(x int) int { return f(g(x)) }
	for range propertyN {
		a := randInt(rng)
		m := streamly.Return[int](a)
		left := streamly.Run(streamly.Map(m, fg))
		right := streamly.Run(streamly.Map(streamly.Map(m, g), f))
		if left != right {
			t.Fatalf("cont functor composition: %d != %d (a=%d)", left, right, a)
		}
	}
}

// --- Group 3: Either Monad Laws ---

// TestPropertyEitherLeftIdentity: FlatMapEither(Right(a), f) ≡ f(a)
func TestPropertyEitherLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) streamly.Either[string, int] { return streamly.Right[string](x * 3) }
		left := streamly.FlatMapEither(streamly.Right[string](a), f)
		right := f(a)
		lv, _ := left.GetRight()
		rv, _ := right.GetRight()
		if lv != rv {
			t.Fatalf("either left identity: %d != %d (a=%d)", lv, rv, a)
		}
	}
}

// TestPropertyEitherLeftPropagation: FlatMapEither(Left(e), f) ≡ Left(e)
func TestPropertyEitherLeftPropagation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e := randInt(rng)
		m := streamly.Left[int, int](e)
		result := streamly.FlatMapEither(m, func(x int) streamly.Either[int, int] {
			return streamly.Right[int](x * 2)
		})
		if result.IsRight() {
			t.Fatalf("left should propagate (e=%d)", e)
		}
		got, _ := result.GetLeft()
		if got != e {
			t.Fatalf("left propagation: %d != %d", got, e)
		}
	}
}

// TestPropertyEitherFunctorComposition: MapEither(e, f∘g) ≡ MapEither(MapEither(e, g), f)
func TestPropertyEitherFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 3 }
	fg := func(x int) int { return f(g(x)) }
	for range propertyN {
		a := randInt(rng)
		e := streamly.Right[string](a)
		left := streamly.MapEither(e, fg)
		right := streamly.MapEither(streamly.MapEither(e, g), f)
		lv, _ := left.GetRight()
		rv, _ := right.GetRight()
		if lv != rv {
			t.Fatalf("either functor composition: %d != %d (a=%d)", lv, rv, a)
		}
	}
}

// --- Group 4: Stream Functor Laws ---

// TestPropertyStreamFunctorIdentity: ToList(Map(s, id)) ≡ ToList(s)
func TestPropertyStreamFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randIntSlice(rng)
		left := streamly.ToList(streamly.Map(streamly.FromList(xs), func(x int) int { return x }))
		right := streamly.ToList(streamly.FromList(xs))
		if !equalSlice(left, right) {
			t.Fatalf("stream functor identity: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyStreamFunctorComposition: ToList(Map(s, f∘g)) ≡ ToList(Map(Map(s, g), f))
func TestPropertyStreamFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 3 }
	fg := func(x int) int { return f(g(x)) }
	for range propertyN {
		xs := randIntSlice(rng)
		left := streamly.ToList(streamly.Map(streamly.FromList(xs), fg))
		right := streamly.ToList(streamly.Map(streamly.Map(streamly.FromList(xs), g), f))
		if !equalSlice(left, right) {
			t.Fatalf("stream functor composition: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// --- Group 5: Stream ConcatMap (bind) Laws ---

// TestPropertyStreamBindLeftIdentity: ToList(ConcatMap(Replicate(a,1), f)) ≡ ToList(f(a))
func TestPropertyStreamBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) streamly.Stream[int] { return streamly.Replicate(x, 3) }
	for range propertyN {
		a := randInt(rng)
		left := streamly.ToList(streamly.ConcatMap(streamly.Replicate(a, 1), f))
		right := streamly.ToList(f(a))
		if !equalSlice(left, right) {
			t.Fatalf("stream bind left identity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyStreamBindAssociativity:
// ToList(ConcatMap(ConcatMap(s, f), g)) ≡ ToList(ConcatMap(s, x => ConcatMap(f(x), g)))
func TestPropertyStreamBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) streamly.Stream[int] { return streamly.Replicate(x, 2) }
	g := func(x int) streamly.Stream[int] { return streamly.EnumerateFromTo(x, x+1) }
	for range propertyN {
		xs := randIntSlice(rng)
		s := streamly.FromList(xs)
		left := streamly.ToList(streamly.ConcatMap(streamly.ConcatMap(s, f), g))
		right := streamly.ToList(streamly.ConcatMap(s, func(x int) streamly.Stream[int] {
			return streamly.ConcatMap(f(x), g)
		}))
		if !equalSlice(left, right) {
			t.Fatalf("stream bind associativity: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// --- Group 6: Fold Laws ---

// TestPropertyFoldLmapIdentity: StreamFold(s, Lmap(f, id)) ≡ StreamFold(s, f)
func TestPropertyFoldLmapIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randIntSlice(rng)
		left := streamly.StreamFold(streamly.FromList(xs), streamly.Lmap(streamly.Sum[int](), func(x int) int { return x }))
		right := streamly.StreamFold(streamly.FromList(xs), streamly.Sum[int]())
		if left != right {
			t.Fatalf("fold lmap identity: %d != %d (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyFoldLmapComposition: Lmap(f, g∘h) ≡ Lmap(Lmap(f, g), h), run over the same input
func TestPropertyFoldLmapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	g := func(x int) int { return x * 2 }
	h := func(x string) int { return len(x) }
	gh := func(x string) int { return g(h(x)) }
	for range propertyN {
		n := rng.IntN(9)
		xs := make([]string, n)
		for i := range xs {
			xs[i] = string(rune('a' + rng.IntN(26)))
		}
		left := streamly.StreamFold(streamly.FromList(xs), streamly.Lmap(streamly.Sum[int](), gh))
		right := streamly.StreamFold(streamly.FromList(xs), streamly.Lmap(streamly.Lmap(streamly.Sum[int](), g), h))
		if left != right {
			t.Fatalf("fold lmap composition: %d != %d (xs=%v)", left, right, xs)
		}
	}
}

// --- Group 7: Parser Round-Trip ---

// TestPropertyListEqRoundTrip: Parse(FromList(xs), ListEq(xs)) ≡ (xs, nil)
func TestPropertyListEqRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randIntSlice(rng)
		got, err := streamly.Parse(streamly.FromList(xs), streamly.ListEq(xs))
		if err != nil {
			t.Fatalf("unexpected error for xs=%v: %v", xs, err)
		}
		if !equalSlice(got, xs) {
			t.Fatalf("round trip: got %v, want %v", got, xs)
		}
	}
}

// TestPropertyManyOneEqRoundTrip: Many(OneEq(v)) over a run of n copies of v
// followed by a different terminator always reports exactly n matches.
func TestPropertyManyOneEqRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		n := rng.IntN(9)
		xs := make([]int, n+1)
		for i := range n {
			xs[i] = v
		}
		xs[n] = v + 1 // guaranteed terminator distinct from v
		got, err := streamly.Parse(streamly.FromList(xs), streamly.Many(streamly.OneEq(v)))
		if err != nil {
			t.Fatalf("unexpected error for xs=%v: %v", xs, err)
		}
		if len(got) != n {
			t.Fatalf("got %d matches, want %d (xs=%v)", len(got), n, xs)
		}
	}
}

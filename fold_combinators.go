// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// FoldDrain discards every element, extracting struct{}{}.
func FoldDrain[A any]() Fold[A, struct{}] {
	return MkFold(IPure[struct{}](struct{}{}),
		func(s struct{}, _ A) FoldStep[struct{}, struct{}] {
			return Partial[struct{}, struct{}](s)
		},
		func(s struct{}) struct{} { return s })
}

// ToListFold accumulates every element into a slice, in order.
func ToListFold[A any]() Fold[A, []A] {
	return MkFold(IPure[[]A](nil),
		func(s []A, a A) FoldStep[[]A, []A] {
			return Partial[[]A, []A](append(s, a))
		},
		func(s []A) []A { return s })
}

// Length counts the elements consumed.
func Length[A any]() Fold[A, int] {
	return MkFold(IPure(0),
		func(s int, _ A) FoldStep[int, int] {
			return Partial[int, int](s + 1)
		},
		func(s int) int { return s })
}

// Sum accumulates elements with the + operator.
func Sum[N Number]() Fold[N, N] {
	return MkFold(IPure(N(0)),
		func(s N, a N) FoldStep[N, N] {
			return Partial[N, N](s + a)
		},
		func(s N) N { return s })
}

// Number constrains the types [Sum] accepts.
type Number interface {
	Integer | ~float32 | ~float64
}

// LastFold keeps the most recently seen element. The extracted value
// is the zero A if no elements were consumed.
func LastFold[A any]() Fold[A, A] {
	var zero A
	return MkFold(IPure(zero),
		func(_ A, a A) FoldStep[A, A] {
			return Partial[A, A](a)
		},
		func(s A) A { return s })
}

// oneState tracks whether the single element has been captured yet.
type oneState[A any] struct {
	value A
	have  bool
}

// OneFold captures the first element only; after that it is inert
// (later elements are consumed and ignored, not an error). Extract
// returns (value, false) if no elements arrived.
func OneFold[A any]() Fold[A, Maybe[A]] {
	return MkFold(IPure(oneState[A]{}),
		func(s oneState[A], a A) FoldStep[oneState[A], Maybe[A]] {
			if s.have {
				return Partial[oneState[A], Maybe[A]](s)
			}
			return Partial[oneState[A], Maybe[A]](oneState[A]{value: a, have: true})
		},
		func(s oneState[A]) Maybe[A] {
			if !s.have {
				return Nothing[A]()
			}
			return Just(s.value)
		})
}

// Any terminates as soon as p holds for some element, with true; if
// the input runs out first, extract yields false.
func Any[A any](p func(A) bool) Fold[A, bool] {
	return MkFold(IPure(false),
		func(s bool, a A) FoldStep[bool, bool] {
			if p(a) {
				return Done[bool, bool](true)
			}
			return Partial[bool, bool](s)
		},
		func(s bool) bool { return s })
}

// All terminates as soon as p fails for some element, with false; if
// the input runs out first, extract yields true.
func All[A any](p func(A) bool) Fold[A, bool] {
	return MkFold(IPure(true),
		func(s bool, a A) FoldStep[bool, bool] {
			if !p(a) {
				return Done[bool, bool](false)
			}
			return Partial[bool, bool](s)
		},
		func(s bool) bool { return s })
}

// Lmap adapts a Fold to consume C instead of A, by mapping each input
// through g first (contravariant map on the input side).
func Lmap[A, B, C any](f Fold[A, B], g func(C) A) Fold[C, B] {
	return Fold[C, B]{
		init: f.init,
		step: func(s any, c C) FoldStep[any, B] {
			return f.step(s, g(c))
		},
		extract: f.extract,
	}
}

// LmapEffect is [Lmap] with an effectful input transformation.
func LmapEffect[A, B, C any](f Fold[A, B], g func(C) Effect[A]) Fold[C, B] {
	return Fold[C, B]{
		init: f.init,
		step: func(s any, c C) FoldStep[any, B] {
			return f.step(s, RunEffect(g(c)))
		},
		extract: f.extract,
	}
}

// FoldFilter only feeds elements satisfying p to the underlying fold,
// skipping the rest (the skipped elements do not affect state).
func FoldFilter[A, B any](f Fold[A, B], p func(A) bool) Fold[A, B] {
	return Fold[A, B]{
		init: f.init,
		step: func(s any, a A) FoldStep[any, B] {
			if !p(a) {
				return Partial[any, B](s)
			}
			return f.step(s, a)
		},
		extract: f.extract,
	}
}

// postscanFoldState pairs the underlying fold's state with the most
// recently computed output value (the zero C before any element).
type postscanFoldState struct {
	inner any
	out   any
}

// FoldPostscan runs f alongside the fold, re-extracting an output on
// every step via extract — a running view of the fold's progress.
func FoldPostscan[A, B, C any](f Fold[A, B], extract func(B) C) Fold[A, C] {
	return Fold[A, C]{
		init: Init[any]{
			isPure: f.init.isPure,
			pure:   postscanFoldState{inner: f.init.pure},
			effect: postscanInitEffect(f.init),
		},
		step: func(s any, a A) FoldStep[any, C] {
			ps := s.(postscanFoldState)
			st := f.step(ps.inner, a)
			inner, partial := st.IsPartial()
			if partial {
				out := extract(f.extract(inner))
				return Partial[any, C](postscanFoldState{inner: inner, out: out})
			}
			b, _ := st.IsDone()
			return Done[any, C](extract(b))
		},
		extract: func(s any) C {
			ps := s.(postscanFoldState)
			if ps.out == nil {
				var zero C
				return zero
			}
			return ps.out.(C)
		},
	}
}

// postscanInitEffect wraps f's init effect (if any) to also seed the
// postscanFoldState wrapper.
func postscanInitEffect(init Init[any]) Effect[any] {
	if init.isPure {
		return nil
	}
	e := init.effect
	return func(k func(any) Resumed) Resumed {
		return e(func(inner any) Resumed { return k(postscanFoldState{inner: inner}) })
	}
}

// teeState holds both folds' states.
type teeState struct {
	left  any
	right any
}

// Tee combines two folds over the same input, producing both results
// once the input is exhausted or as soon as either fold reaches Done.
// In the second case the other fold is finalized with its extract at
// that point; it does not see the remaining input.
func Tee[A, B, C any](left Fold[A, B], right Fold[A, C]) Fold[A, Pair[B, C]] {
	return Fold[A, Pair[B, C]]{
		init: Init[any]{
			isPure: left.init.isPure && right.init.isPure,
			pure: teeState{
				left:  left.init.pure,
				right: right.init.pure,
			},
			effect: teeInitEffect(left.init, right.init),
		},
		step: func(s any, a A) FoldStep[any, Pair[B, C]] {
			ts := s.(teeState)
			lstep := left.step(ts.left, a)
			rstep := right.step(ts.right, a)
			lIn, lPartial := lstep.IsPartial()
			rIn, rPartial := rstep.IsPartial()
			if lPartial && rPartial {
				return Partial[any, Pair[B, C]](teeState{left: lIn, right: rIn})
			}
			var lb B
			if lPartial {
				lb = left.extract(lIn)
			} else {
				lb, _ = lstep.IsDone()
			}
			var rc C
			if rPartial {
				rc = right.extract(rIn)
			} else {
				rc, _ = rstep.IsDone()
			}
			return Done[any, Pair[B, C]](Pair[B, C]{First: lb, Second: rc})
		},
		extract: func(s any) Pair[B, C] {
			ts := s.(teeState)
			return Pair[B, C]{First: left.extract(ts.left), Second: right.extract(ts.right)}
		},
	}
}

// teeInitEffect wraps the initialization of both inner folds when at
// least one needs an effect to compute its initial state.
func teeInitEffect(leftInit, rightInit Init[any]) Effect[any] {
	if leftInit.isPure && rightInit.isPure {
		return nil
	}
	return func(k func(any) Resumed) Resumed {
		var l, r any
		if leftInit.isPure {
			l = leftInit.pure
		} else {
			l = RunEffect(leftInit.effect)
		}
		if rightInit.isPure {
			r = rightInit.pure
		} else {
			r = RunEffect(rightInit.effect)
		}
		return k(teeState{left: l, right: r})
	}
}

// Pair is a simple two-tuple, used by [Tee].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Rmap applies a pure function to the fold's extracted result.
func Rmap[A, B, C any](f Fold[A, B], g func(B) C) Fold[A, C] {
	return Fold[A, C]{
		init: f.init,
		step: func(s any, a A) FoldStep[any, C] {
			st := f.step(s, a)
			ns, partial := st.IsPartial()
			if partial {
				return Partial[any, C](ns)
			}
			b, _ := st.IsDone()
			return Done[any, C](g(b))
		},
		extract: func(s any) C {
			return g(f.extract(s))
		},
	}
}

// Snoc appends an element to a slice as the fold step; equivalent to
// ToListFold but exposed as a standalone reducer for use inside
// hand-written Folds that build up a slice alongside other state.
func Snoc[A any](xs []A, a A) []A {
	return append(xs, a)
}

// Reduce is [Fold] without a separate extract step: the state type
// equals the result type, and extract is the identity. init may be
// nil only if A's zero value is an acceptable starting accumulator.
func Reduce[A any](init A, f func(A, A) A) Fold[A, A] {
	return MkFold(IPure(init),
		func(s A, a A) FoldStep[A, A] {
			return Partial[A, A](f(s, a))
		},
		func(s A) A { return s })
}

// foldTakeState pairs the inner fold's state with a remaining count.
type foldTakeState struct {
	inner any
	n     int
}

// FoldTake runs f over at most the first n elements, then reports
// Done with whatever f would extract at that point. Elements beyond
// n are never passed to f.
func FoldTake[A, B any](f Fold[A, B], n int) Fold[A, B] {
	return Fold[A, B]{
		init: Init[any]{
			isPure: f.init.isPure,
			pure:   foldTakeState{inner: f.init.pure, n: n},
			effect: foldTakeInitEffect(f.init, n),
		},
		step: func(s any, a A) FoldStep[any, B] {
			fs := s.(foldTakeState)
			if fs.n <= 0 {
				return Done[any, B](f.extract(fs.inner))
			}
			st := f.step(fs.inner, a)
			inner, partial := st.IsPartial()
			if !partial {
				b, _ := st.IsDone()
				return Done[any, B](b)
			}
			if fs.n-1 <= 0 {
				return Done[any, B](f.extract(inner))
			}
			return Partial[any, B](foldTakeState{inner: inner, n: fs.n - 1})
		},
		extract: func(s any) B {
			fs := s.(foldTakeState)
			return f.extract(fs.inner)
		},
	}
}

func foldTakeInitEffect(init Init[any], n int) Effect[any] {
	if init.isPure {
		return nil
	}
	e := init.effect
	return func(k func(any) Resumed) Resumed {
		return e(func(inner any) Resumed { return k(foldTakeState{inner: inner, n: n}) })
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// FromList builds a Stream that yields the elements of xs in order.
func FromList[A any](xs []A) Stream[A] {
	return newStream(func(i int) StreamStep[int, A] {
		if i >= len(xs) {
			return Stop[int, A]()
		}
		return Yield(xs[i], i+1)
	}, 0)
}

// FromFunc builds a Stream by repeatedly calling f on the current
// state (the classic unfoldr): f returns the next value and state, or
// false to stop.
func FromFunc[S, A any](f func(S) (A, S, bool), seed S) Stream[A] {
	return newStream(func(s S) StreamStep[S, A] {
		a, ns, ok := f(s)
		if !ok {
			return Stop[S, A]()
		}
		return Yield(a, ns)
	}, seed)
}

// FromFuncEffect is the effectful unfoldr: f's decision about the
// next value and state is itself an [Effect], run once per step.
func FromFuncEffect[S, A any](f func(S) Effect[FuncEffectResult[S, A]], seed S) Stream[A] {
	return newStream(func(s S) StreamStep[S, A] {
		r := RunEffect(f(s))
		if !r.ok {
			return Stop[S, A]()
		}
		return Yield(r.value, r.state)
	}, seed)
}

// FuncEffectResult is the payload an [FromFuncEffect] generator
// effect resolves to: either the next (value, state) pair, or a
// signal to stop.
type FuncEffectResult[S, A any] struct {
	value A
	state S
	ok    bool
}

// FuncNext builds a FuncEffectResult that continues the stream.
func FuncNext[S, A any](a A, s S) FuncEffectResult[S, A] {
	return FuncEffectResult[S, A]{value: a, state: s, ok: true}
}

// FuncStop builds a FuncEffectResult that ends the stream.
func FuncStop[S, A any]() FuncEffectResult[S, A] {
	return FuncEffectResult[S, A]{}
}

// EnumerateFromTo yields the inclusive integer range [from, to]. If
// from > to the Stream is empty.
func EnumerateFromTo[N Integer](from, to N) Stream[N] {
	return newStream(func(i N) StreamStep[N, N] {
		if i > to {
			return Stop[N, N]()
		}
		return Yield(i, i+1)
	}, from)
}

// Integer constrains the numeric types EnumerateFromTo accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Replicate yields n copies of a.
func Replicate[A any](a A, n int) Stream[A] {
	return newStream(func(i int) StreamStep[int, A] {
		if i >= n {
			return Stop[int, A]()
		}
		return Yield(a, i+1)
	}, 0)
}

// RepeatEffect yields the result of running e, once per element,
// forever. Combine with [Take] to bound it.
func RepeatEffect[A any](e Effect[A]) Stream[A] {
	return newStream(func(s struct{}) StreamStep[struct{}, A] {
		return Yield(RunEffect(e), s)
	}, struct{}{})
}

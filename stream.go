// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// Stream is a pull-based producer of A values. It is a pair of a step
// function and a seed state; state is existentially hidden behind the
// Stream value itself (stored as `any` internally) so two Streams of
// the same element type but different internal state shapes can share
// a type parameter list of one.
//
// Stepping a Stream never blocks and never allocates on its own: each
// call to step returns a [StreamStep] by value. Composing Streams
// (Map, Filter, Take, ...) composes step functions, so a pipeline of
// combinators fuses into one function that a driver (Drain, Foldl,
// Parse, ...) calls in a loop.
type Stream[A any] struct {
	step func(any) StreamStep[any, A]
	seed any
}

// newStream hides a concretely-typed step/seed pair behind the
// existential Stream[A] state representation.
func newStream[S, A any](step func(S) StreamStep[S, A], seed S) Stream[A] {
	return Stream[A]{
		step: func(s any) StreamStep[any, A] {
			st := step(s.(S))
			v, ns, ok := st.IsYield()
			if ok {
				return Yield[any, A](v, ns)
			}
			ns, ok = st.IsSkip()
			if ok {
				return Skip[any, A](ns)
			}
			return Stop[any, A]()
		},
		seed: seed,
	}
}

// Generate builds a Stream directly from a step function and seed,
// for callers that need the raw protocol rather than one of the
// named generators below.
func Generate[S, A any](step func(S) StreamStep[S, A], seed S) Stream[A] {
	return newStream(step, seed)
}

// drive runs the Stream's step function, skipping Skip steps, calling
// onYield for every produced value, and returning when the stream
// stops or onYield asks to halt early by returning false.
func (s Stream[A]) drive(onYield func(A) bool) {
	state := s.seed
	for {
		step := s.step(state)
		v, ns, ok := step.IsYield()
		if ok {
			state = ns
			if !onYield(v) {
				return
			}
			continue
		}
		ns, ok = step.IsSkip()
		if ok {
			state = ns
			continue
		}
		return
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// Fold is a left-to-right, incremental reducer: an initial state, a
// step function that consumes one A and returns a [FoldStep], and an
// extract function that converts whatever state remains (because the
// input ran out before the fold reached Done on its own) into a
// final B.
//
// Like [Stream], Fold's state type is hidden behind `any`, so Folds
// of different internal shapes but the same (A, B) share one type.
type Fold[A, B any] struct {
	init    Init[any]
	step    func(any, A) FoldStep[any, B]
	extract func(any) B
}

// MkFold is the primitive Fold constructor.
func MkFold[S, A, B any](init Init[S], step func(S, A) FoldStep[S, B], extract func(S) B) Fold[A, B] {
	return Fold[A, B]{
		init: Init[any]{
			isPure: init.isPure,
			pure:   any(init.pure),
			effect: effectToAny(init),
		},
		step: func(s any, a A) FoldStep[any, B] {
			st := step(s.(S), a)
			ns, ok := st.IsPartial()
			if ok {
				return Partial[any, B](ns)
			}
			b, _ := st.IsDone()
			return Done[any, B](b)
		},
		extract: func(s any) B {
			return extract(s.(S))
		},
	}
}

// effectToAny adapts an Init[S]'s effect (if any) to Effect[any],
// so MkFold can store a single Init[any] regardless of S.
func effectToAny[S any](init Init[S]) Effect[any] {
	if init.isPure {
		return nil
	}
	e := init.effect
	return func(k func(any) Resumed) Resumed {
		return e(func(s S) Resumed { return k(s) })
	}
}

// newState resolves the Fold's initial state, running its effect
// (if any) exactly once.
func (f Fold[A, B]) newState() any {
	if f.init.isPure {
		return f.init.pure
	}
	return RunEffect(f.init.effect)
}

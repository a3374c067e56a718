// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

import (
	"fmt"
	"math"
)

// takeBetweenTagged is the shared implementation behind [TakeBetween],
// [TakeEQ], and [TakeGE]: feed every element to f, force f to extract
// once hi elements have been fed, and fail — tagged with the
// combinator name that actually failed — if f commits to Done, or the
// input ends, before lo elements have been fed.
func takeBetweenTagged[A, B any](tag string, lo, hi int, f Fold[A, B]) Parser[A, B] {
	type tbState struct {
		count int
		fold  any
	}
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: tbState{fold: f.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			st := s.(tbState)
			count := st.count + 1
			fstep := f.step(st.fold, a)
			ns, partial := fstep.IsPartial()
			if partial {
				if count >= hi {
					return PDone[any, B](0, f.extract(ns))
				}
				return PPartial[any, B](0, tbState{count: count, fold: ns})
			}
			b, _ := fstep.IsDone()
			if count < lo {
				return PError[any, B](fmt.Sprintf("streamly: %s: fold completed after %d elements, fewer than the %d required", tag, count, lo))
			}
			return PDone[any, B](0, b)
		},
		extract: func(s any) ParserStep[any, B] {
			st := s.(tbState)
			if st.count < lo {
				if hi == math.MaxInt {
					return PError[any, B](fmt.Sprintf("streamly: %s: Expecting at least %d elements, input terminated on %d", tag, lo, st.count))
				}
				if lo == hi {
					return PError[any, B](fmt.Sprintf("streamly: %s: Expecting exactly %d elements, input terminated on %d", tag, lo, st.count))
				}
				return PError[any, B](fmt.Sprintf("streamly: %s: Expecting between %d and %d elements, input terminated on %d", tag, lo, hi, st.count))
			}
			return PDone[any, B](0, f.extract(st.fold))
		},
	}
}

// TakeBetween collects between lo and hi (inclusive) elements into
// fold f, failing if fewer than lo are available before the input
// ends, and forcing f to extract once hi is reached.
func TakeBetween[A, B any](lo, hi int, f Fold[A, B]) Parser[A, B] {
	return takeBetweenTagged("takeBetween", lo, hi, f)
}

// TakeEQ collects exactly n elements into fold f.
func TakeEQ[A, B any](n int, f Fold[A, B]) Parser[A, B] {
	return takeBetweenTagged("takeEQ", n, n, f)
}

// TakeGE collects at least n elements into fold f, and keeps
// collecting until the input ends (it never stops early).
func TakeGE[A, B any](n int, f Fold[A, B]) Parser[A, B] {
	return takeBetweenTagged("takeGE", n, math.MaxInt, f)
}

// forceExtract resolves inner's extract into a ParserStep, used by
// [TakeP] once its element cap is reached.
func forceExtract[A, B any](inner Parser[A, B], state any) ParserStep[any, B] {
	istep := inner.extract(state)
	n, b, ok := istep.IsDone()
	if ok {
		return PDone[any, B](n, b)
	}
	msg, _ := istep.IsError()
	return PError[any, B](msg)
}

// TakeP caps inner to at most n elements: once n elements have been
// fed to it, inner is forced to extract regardless of what it would
// otherwise report, and any backtrack count inner reports is clamped
// to the number of elements fed so far, so that an outer Continue(k,
// _) never asks to rewind more than TakeP itself has consumed.
func TakeP[A, B any](n int, inner Parser[A, B]) Parser[A, B] {
	type tpState struct {
		count int
		inner any
	}
	clamp := func(k, count int) int {
		if k > count {
			return count
		}
		return k
	}
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: tpState{inner: inner.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			st := s.(tpState)
			count := st.count + 1
			istep := inner.step(st.inner, a)
			_, ns, partialOK := istep.IsPartial()
			if partialOK {
				if count >= n {
					return forceExtract(inner, ns)
				}
				return PPartial[any, B](0, tpState{count: count, inner: ns})
			}
			k, ns, contOK := istep.IsContinue()
			if contOK {
				if count >= n {
					return forceExtract(inner, ns)
				}
				return PContinue[any, B](clamp(k, count), tpState{count: count, inner: ns})
			}
			k, b, doneOK := istep.IsDone()
			if doneOK {
				return PDone[any, B](clamp(k, count), b)
			}
			msg, _ := istep.IsError()
			return PError[any, B](msg)
		},
		extract: func(s any) ParserStep[any, B] {
			st := s.(tpState)
			return inner.extract(st.inner)
		},
	}
}

// ParserTakeWhile collects elements satisfying p until one fails (not
// consumed) or the input ends; zero matches is success with an empty
// slice.
func ParserTakeWhile[A any](p func(A) bool) Parser[A, []A] {
	type twState struct {
		acc []A
	}
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: twState{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(twState)
			if !p(a) {
				return PDone[any, []A](1, st.acc)
			}
			return PPartial[any, []A](0, twState{acc: append(append([]A{}, st.acc...), a)})
		},
		extract: func(s any) ParserStep[any, []A] {
			st := s.(twState)
			return PDone[any, []A](0, st.acc)
		},
	}
}

// TakeWhile1 is [ParserTakeWhile] requiring at least one match.
func TakeWhile1[A any](p func(A) bool) Parser[A, []A] {
	return ParserFilter(ParserTakeWhile(p), func(xs []A) bool { return len(xs) >= 1 })
}

// TakeWhileP runs inner but only over the prefix of the input
// satisfying test; the first element failing test is left unconsumed
// for whatever follows. At that element (or at true EOF) inner is
// finalized with its extract, and the whole thing fails only if that
// extract fails.
func TakeWhileP[A, B any](test func(A) bool, inner Parser[A, B]) Parser[A, B] {
	type twpState struct {
		inner any
	}
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: twpState{inner: inner.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			st := s.(twpState)
			if !test(a) {
				istep := inner.extract(st.inner)
				n, b, ok := istep.IsDone()
				_ = n
				if ok {
					return PDone[any, B](1, b)
				}
				msg, _ := istep.IsError()
				return PError[any, B](msg)
			}
			istep := inner.step(st.inner, a)
			_, ns, partialOK := istep.IsPartial()
			if partialOK {
				return PPartial[any, B](0, twpState{inner: ns})
			}
			n, ns, contOK := istep.IsContinue()
			if contOK {
				return PContinue[any, B](n, twpState{inner: ns})
			}
			n, b, doneOK := istep.IsDone()
			if doneOK {
				return PDone[any, B](n, b)
			}
			msg, _ := istep.IsError()
			return PError[any, B](msg)
		},
		extract: func(s any) ParserStep[any, B] {
			st := s.(twpState)
			return inner.extract(st.inner)
		},
	}
}

// ParserDropWhile discards elements satisfying p, leaving the first
// element that fails p (or EOF) for whatever follows.
func ParserDropWhile[A any](p func(A) bool) Parser[A, struct{}] {
	return Parser[A, struct{}]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, a A) ParserStep[any, struct{}] {
			if p(a) {
				return PPartial[any, struct{}](0, struct{}{})
			}
			return PDone[any, struct{}](1, struct{}{})
		},
		extract: func(s any) ParserStep[any, struct{}] {
			return PDone[any, struct{}](0, struct{}{})
		},
	}
}

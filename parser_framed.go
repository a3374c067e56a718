// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// TakeFramedByGeneric is the general framed-content parser: it
// requires the first element to satisfy isBegin (discarded from the
// output), then collects elements until the isEnd element that
// balances it (discarded), unless isEsc is non-nil and matches the
// element immediately before it — an escaped end marker is taken into
// the output literally and does not end the frame. Frames nest: an
// unescaped isBegin element inside the frame, and the isEnd element
// that closes it, are kept in the output as content.
//
// isBegin and isEnd are required; per spec, calling this with either
// nil is a programmer bug caught at construction time, not a parse
// failure, so it panics immediately rather than failing lazily on
// the first element.
func TakeFramedByGeneric[A any](isEsc, isBegin, isEnd func(A) bool) Parser[A, []A] {
	if isBegin == nil || isEnd == nil {
		panic("streamly: take_framed_by_generic: isBegin and isEnd must not be nil")
	}
	type frState struct {
		started bool
		escaped bool
		depth   int
		acc     []A
	}
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: frState{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(frState)
			if !st.started {
				if !isBegin(a) {
					return PError[any, []A]("streamly: take_framed_by: expected begin marker")
				}
				return PPartial[any, []A](0, frState{started: true, depth: 1})
			}
			if st.escaped {
				return PPartial[any, []A](0, frState{started: true, depth: st.depth, acc: append(append([]A{}, st.acc...), a)})
			}
			if isEsc != nil && isEsc(a) {
				return PPartial[any, []A](0, frState{started: true, depth: st.depth, escaped: true, acc: st.acc})
			}
			if isEnd(a) {
				if st.depth > 1 {
					return PPartial[any, []A](0, frState{started: true, depth: st.depth - 1, acc: append(append([]A{}, st.acc...), a)})
				}
				return PDone[any, []A](0, st.acc)
			}
			if isBegin(a) {
				return PPartial[any, []A](0, frState{started: true, depth: st.depth + 1, acc: append(append([]A{}, st.acc...), a)})
			}
			return PPartial[any, []A](0, frState{started: true, depth: st.depth, acc: append(append([]A{}, st.acc...), a)})
		},
		extract: func(s any) ParserStep[any, []A] {
			return PError[any, []A]("streamly: take_framed_by: frame not closed before end of input")
		},
	}
}

// TakeFramedByDrop is [TakeFramedByGeneric] without escaping.
func TakeFramedByDrop[A any](isBegin, isEnd func(A) bool) Parser[A, []A] {
	return TakeFramedByGeneric[A](nil, isBegin, isEnd)
}

// TakeFramedByEscDrop is [TakeFramedByGeneric] with escaping enabled.
func TakeFramedByEscDrop[A any](isEsc, isBegin, isEnd func(A) bool) Parser[A, []A] {
	return TakeFramedByGeneric(isEsc, isBegin, isEnd)
}

// TakeEndBy collects elements, including the terminating element
// itself, stopping as soon as isEnd matches. Fails if isEnd never
// matches before the input ends.
func TakeEndBy[A any](isEnd func(A) bool) Parser[A, []A] {
	type teState struct {
		acc []A
	}
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: teState{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(teState)
			acc := append(append([]A{}, st.acc...), a)
			if isEnd(a) {
				return PDone[any, []A](0, acc)
			}
			return PPartial[any, []A](0, teState{acc: acc})
		},
		extract: func(s any) ParserStep[any, []A] {
			return PError[any, []A]("streamly: take_end_by: end marker never found")
		},
	}
}

// TakeEndByDrop is [TakeEndBy] with the terminating element omitted
// from the result.
func TakeEndByDrop[A any](isEnd func(A) bool) Parser[A, []A] {
	type teState struct {
		acc []A
	}
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: teState{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(teState)
			if isEnd(a) {
				return PDone[any, []A](0, st.acc)
			}
			return PPartial[any, []A](0, teState{acc: append(append([]A{}, st.acc...), a)})
		},
		extract: func(s any) ParserStep[any, []A] {
			return PError[any, []A]("streamly: take_end_by: end marker never found")
		},
	}
}

// TakeEndByEsc is [TakeEndByDrop] where an element matching isEsc
// causes the element immediately following it to be taken literally,
// even if it would otherwise match isEnd.
func TakeEndByEsc[A any](isEsc, isEnd func(A) bool) Parser[A, []A] {
	type teeState struct {
		acc     []A
		escaped bool
	}
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: teeState{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(teeState)
			if st.escaped {
				return PPartial[any, []A](0, teeState{acc: append(append([]A{}, st.acc...), a)})
			}
			if isEsc(a) {
				return PPartial[any, []A](0, teeState{acc: st.acc, escaped: true})
			}
			if isEnd(a) {
				return PDone[any, []A](0, st.acc)
			}
			return PPartial[any, []A](0, teeState{acc: append(append([]A{}, st.acc...), a)})
		},
		extract: func(s any) ParserStep[any, []A] {
			return PError[any, []A]("streamly: take_end_by_esc: end marker never found")
		},
	}
}

// TakeStartBy requires the first element to satisfy isStart
// (included in the result), then collects every element after it
// unconditionally until the input ends.
func TakeStartBy[A any](isStart func(A) bool) Parser[A, []A] {
	type tsState struct {
		started bool
		acc     []A
	}
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: tsState{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(tsState)
			if !st.started {
				if !isStart(a) {
					return PError[any, []A]("streamly: take_start_by: expected start marker")
				}
				return PPartial[any, []A](0, tsState{started: true, acc: []A{a}})
			}
			return PPartial[any, []A](0, tsState{started: true, acc: append(append([]A{}, st.acc...), a)})
		},
		extract: func(s any) ParserStep[any, []A] {
			st := s.(tsState)
			if !st.started {
				return PError[any, []A]("streamly: take_start_by: expected start marker")
			}
			return PDone[any, []A](0, st.acc)
		},
	}
}

// TakeStartByDrop is [TakeStartBy] with the start marker omitted from
// the result.
func TakeStartByDrop[A any](isStart func(A) bool) Parser[A, []A] {
	return ParserRmap(TakeStartBy(isStart), func(xs []A) []A {
		if len(xs) == 0 {
			return xs
		}
		return xs[1:]
	})
}

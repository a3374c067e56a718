// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// ParserRmap applies a pure function to a Parser's successful result.
// Named distinctly from [Fold]'s Rmap since Go does not allow two
// package-level functions to share a name regardless of their type
// parameters.
func ParserRmap[A, B, C any](p Parser[A, B], f func(B) C) Parser[A, C] {
	return Parser[A, C]{
		init: p.init,
		step: func(s any, a A) ParserStep[any, C] {
			st := p.step(s, a)
			n, ns, ok := st.IsPartial()
			if ok {
				return PPartial[any, C](n, ns)
			}
			n, ns, ok = st.IsContinue()
			if ok {
				return PContinue[any, C](n, ns)
			}
			n, b, ok := st.IsDone()
			if ok {
				return PDone[any, C](n, f(b))
			}
			msg, _ := st.IsError()
			return PError[any, C](msg)
		},
		extract: func(s any) ParserStep[any, C] {
			st := p.extract(s)
			n, b, ok := st.IsDone()
			if ok {
				return PDone[any, C](n, f(b))
			}
			msg, _ := st.IsError()
			return PError[any, C](msg)
		},
	}
}

// RmapEffect is [ParserRmap] with an effectful result transformation.
func RmapEffect[A, B, C any](p Parser[A, B], f func(B) Effect[C]) Parser[A, C] {
	return ParserRmap(p, func(b B) C { return RunEffect(f(b)) })
}

// ParserLmap adapts a Parser to consume C instead of A, mapping every
// input element through g first.
func ParserLmap[A, B, C any](p Parser[A, B], g func(C) A) Parser[C, B] {
	return Parser[C, B]{
		init: p.init,
		step: func(s any, c C) ParserStep[any, B] {
			return p.step(s, g(c))
		},
		extract: p.extract,
	}
}

// ParserLmapEffect is [ParserLmap] with an effectful input
// transformation.
func ParserLmapEffect[A, B, C any](p Parser[A, B], g func(C) Effect[A]) Parser[C, B] {
	return Parser[C, B]{
		init: p.init,
		step: func(s any, c C) ParserStep[any, B] {
			return p.step(s, RunEffect(g(c)))
		},
		extract: p.extract,
	}
}

// ParserFilter only accepts a Parser's successful result if it
// satisfies pred, failing otherwise. Consumption already performed by
// the wrapped parser is not undone — only its own backtrack count
// governs what the driver rewinds.
func ParserFilter[A, B any](parser Parser[A, B], pred func(B) bool) Parser[A, B] {
	return Parser[A, B]{
		init: parser.init,
		step: func(s any, a A) ParserStep[any, B] {
			st := parser.step(s, a)
			n, ns, ok := st.IsPartial()
			if ok {
				return PPartial[any, B](n, ns)
			}
			n, ns, ok = st.IsContinue()
			if ok {
				return PContinue[any, B](n, ns)
			}
			n, b, ok := st.IsDone()
			if ok {
				if !pred(b) {
					return PError[any, B]("streamly: filter: predicate rejected result")
				}
				return PDone[any, B](n, b)
			}
			msg, _ := st.IsError()
			return PError[any, B](msg)
		},
		extract: func(s any) ParserStep[any, B] {
			st := parser.extract(s)
			n, b, ok := st.IsDone()
			if ok {
				if !pred(b) {
					return PError[any, B]("streamly: filter: predicate rejected result")
				}
				return PDone[any, B](n, b)
			}
			msg, _ := st.IsError()
			return PError[any, B](msg)
		},
	}
}

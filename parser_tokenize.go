// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// WordBy skips leading elements satisfying isSpace, then collects
// elements up to (but not including) the next one satisfying isSpace,
// or end of input. Fails if no non-space element is found.
func WordBy[A any](isSpace func(A) bool) Parser[A, []A] {
	skip := ParserDropWhile(isSpace)
	word := TakeWhile1(func(a A) bool { return !isSpace(a) })
	return SplitWith(skip, word, func(_ struct{}, w []A) []A { return w })
}

// WordFramedBy is [WordBy], except a word may instead be a single
// framed token (see [TakeFramedByEscDrop]) — useful for tokenizing
// input where some words are delimited, e.g. by brackets, and may
// contain spaces themselves.
func WordFramedBy[A any](isEsc, isBegin, isEnd, isSpace func(A) bool) Parser[A, []A] {
	skip := ParserDropWhile(isSpace)
	token := Alt(
		TakeFramedByEscDrop(isEsc, isBegin, isEnd),
		TakeWhile1(func(a A) bool { return !isSpace(a) }),
	)
	return SplitWith(skip, token, func(_ struct{}, w []A) []A { return w })
}

// WordQuotedBy tokenizes shell-style quoted words: a bare run of
// elements not satisfying isSep is literal content, and an element
// satisfying isBegin opens an active quote, captured at entry, whose
// closing character is computed as toRight(that element) — not just
// any element satisfying isEnd — so a different quote character seen
// while already inside one is ordinary content rather than a nested
// frame, unlike [TakeFramedByGeneric]'s balanced-depth nesting. If
// keepQuotes is false the opening and closing quote characters are
// dropped rather than fed to f.
func WordQuotedBy[A comparable, B any](keepQuotes bool, isEsc, isBegin, isEnd func(A) bool, toRight func(A) A, isSep func(A) bool, f Fold[A, B]) Parser[A, B] {
	type wqState struct {
		fold    any
		inQuote bool
		right   A
		escaped bool
	}
	resolve := func(fstep FoldStep[any, B], inQuote bool, right A) ParserStep[any, B] {
		ns, partial := fstep.IsPartial()
		if partial {
			return PPartial[any, B](0, wqState{fold: ns, inQuote: inQuote, right: right})
		}
		b, _ := fstep.IsDone()
		return PDone[any, B](0, b)
	}
	skip := ParserDropWhile(isSep)
	token := Parser[A, B]{
		init: Init[any]{isPure: true, pure: wqState{fold: f.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			st := s.(wqState)
			if st.escaped {
				return resolve(f.step(st.fold, a), st.inQuote, st.right)
			}
			if isEsc(a) {
				return PPartial[any, B](0, wqState{fold: st.fold, inQuote: st.inQuote, right: st.right, escaped: true})
			}
			if st.inQuote {
				if isEnd(a) && a == st.right {
					var zero A
					if keepQuotes {
						return resolve(f.step(st.fold, a), false, zero)
					}
					return PPartial[any, B](0, wqState{fold: st.fold})
				}
				return resolve(f.step(st.fold, a), true, st.right)
			}
			if isSep(a) {
				return PDone[any, B](1, f.extract(st.fold))
			}
			if isBegin(a) {
				right := toRight(a)
				if keepQuotes {
					return resolve(f.step(st.fold, a), true, right)
				}
				return PPartial[any, B](0, wqState{fold: st.fold, inQuote: true, right: right})
			}
			return resolve(f.step(st.fold, a), false, st.right)
		},
		extract: func(s any) ParserStep[any, B] {
			st := s.(wqState)
			if st.inQuote {
				return PError[any, B]("streamly: word_quoted_by: unterminated quote")
			}
			return PDone[any, B](0, f.extract(st.fold))
		},
	}
	return SplitWith(skip, token, func(_ struct{}, w B) B { return w })
}

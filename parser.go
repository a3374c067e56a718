// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// Parser is a backtracking, incremental consumer of A, producing a B
// or failing with an error message. Shaped like [Fold] but its step
// additionally reports a backtrack count on every variant (see
// [ParserStep]) and may fail outright.
//
// extract is consulted only when the driving [Stream] is exhausted:
// it must turn whatever state remains into a final Done or Error —
// Partial or Continue at true end-of-input means the parser wanted
// more than the input could give, which is itself a parse error.
type Parser[A, B any] struct {
	init    Init[any]
	step    func(any, A) ParserStep[any, B]
	extract func(any) ParserStep[any, B]
}

// newState resolves the Parser's initial state.
func (p Parser[A, B]) newState() any {
	if p.init.isPure {
		return p.init.pure
	}
	return RunEffect(p.init.effect)
}

// atEOF finalizes a Partial/Continue state at end-of-input per the
// Continue-at-EOF policy: Partial/Continue left outstanding when
// there is no more input is an incomplete-input error, not silently
// accepted as Done. Parsers whose extract can legitimately succeed
// with leftover state (e.g. FromFold) override this default.
func atEOF[S, B any](_ S) ParserStep[S, B] {
	return PError[S, B]("streamly: incomplete input at end of stream")
}

// FromFold adapts a [Fold] into a [Parser] that always succeeds: a
// Fold never rejects input, so the only ParserStep variants it can
// produce are Partial(0, s) and Done(0, b). At EOF its own extract
// supplies the result, since a Fold is always willing to finalize.
func FromFold[A, B any](f Fold[A, B]) Parser[A, B] {
	return Parser[A, B]{
		init: f.init,
		step: func(s any, a A) ParserStep[any, B] {
			st := f.step(s, a)
			ns, partial := st.IsPartial()
			if partial {
				return PPartial[any, B](0, ns)
			}
			b, _ := st.IsDone()
			return PDone[any, B](0, b)
		},
		extract: func(s any) ParserStep[any, B] {
			return PDone[any, B](0, f.extract(s))
		},
	}
}

// FromPure builds a Parser that consumes nothing and immediately
// succeeds with b.
func FromPure[A, B any](b B) Parser[A, B] {
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, _ A) ParserStep[any, B] {
			return PDone[any, B](1, b)
		},
		extract: func(s any) ParserStep[any, B] {
			return PDone[any, B](0, b)
		},
	}
}

// FromEffect builds a Parser that consumes nothing and succeeds with
// the result of running e once.
func FromEffect[A, B any](e Effect[B]) Parser[A, B] {
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, _ A) ParserStep[any, B] {
			return PDone[any, B](1, RunEffect(e))
		},
		extract: func(s any) ParserStep[any, B] {
			return PDone[any, B](0, RunEffect(e))
		},
	}
}

// Die builds a Parser that fails immediately with msg, without
// consuming any input.
func Die[A, B any](msg string) Parser[A, B] {
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, _ A) ParserStep[any, B] {
			return PError[any, B](msg)
		},
		extract: func(s any) ParserStep[any, B] {
			return PError[any, B](msg)
		},
	}
}

// DieEffect is [Die] with the message computed by an effect.
func DieEffect[A, B any](e Effect[string]) Parser[A, B] {
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, _ A) ParserStep[any, B] {
			return PError[any, B](RunEffect(e))
		},
		extract: func(s any) ParserStep[any, B] {
			return PError[any, B](RunEffect(e))
		},
	}
}

// Peek returns the next element without consuming it.
func Peek[A any]() Parser[A, A] {
	return Parser[A, A]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, a A) ParserStep[any, A] {
			return PDone[any, A](1, a)
		},
		extract: func(s any) ParserStep[any, A] {
			return PError[any, A]("streamly: peek at end of input")
		},
	}
}

// EOF succeeds with struct{}{} only if there is no more input; it
// fails (without consuming) if an element is available.
func EOF[A any]() Parser[A, struct{}] {
	return Parser[A, struct{}]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, _ A) ParserStep[any, struct{}] {
			return PError[any, struct{}]("streamly: expected end of input")
		},
		extract: func(s any) ParserStep[any, struct{}] {
			return PDone[any, struct{}](0, struct{}{})
		},
	}
}

// One consumes and returns the next element unconditionally.
func One[A any]() Parser[A, A] {
	return Parser[A, A]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, a A) ParserStep[any, A] {
			return PDone[any, A](0, a)
		},
		extract: atEOF[any, A],
	}
}

// Satisfy consumes the next element if p holds for it, failing
// (without consuming) otherwise.
func Satisfy[A any](p func(A) bool) Parser[A, A] {
	return Parser[A, A]{
		init: Init[any]{isPure: true, pure: struct{}{}},
		step: func(s any, a A) ParserStep[any, A] {
			if !p(a) {
				return PError[any, A]("streamly: satisfy: predicate failed")
			}
			return PDone[any, A](0, a)
		},
		extract: atEOF[any, A],
	}
}

// OneEq consumes the next element if it equals want.
func OneEq[A comparable](want A) Parser[A, A] {
	return Satisfy(func(a A) bool { return a == want })
}

// OneNotEq consumes the next element if it does not equal avoid.
func OneNotEq[A comparable](avoid A) Parser[A, A] {
	return Satisfy(func(a A) bool { return a != avoid })
}

// OneOf consumes the next element if it is a member of set.
func OneOf[A comparable](set []A) Parser[A, A] {
	return Satisfy(func(a A) bool {
		for _, m := range set {
			if m == a {
				return true
			}
		}
		return false
	})
}

// NoneOf consumes the next element if it is not a member of set.
func NoneOf[A comparable](set []A) Parser[A, A] {
	return Satisfy(func(a A) bool {
		for _, m := range set {
			if m == a {
				return false
			}
		}
		return true
	})
}

// MaybeP turns failure of p into a successful Nothing, without
// consuming the input p would have failed on (p's own backtrack
// count still applies to whatever it did consume before failing).
func MaybeP[A, B any](p Parser[A, B]) Parser[A, Maybe[B]] {
	return Alt(ParserRmap(p, Just[B]), FromPure[A, Maybe[B]](Nothing[B]()))
}

// EitherP runs left; on failure it runs right over the same input
// (via [Alt]'s rewind), tagging whichever succeeded.
func EitherP[A, L, R any](left Parser[A, L], right Parser[A, R]) Parser[A, Either[R, L]] {
	return Alt(
		ParserRmap(left, func(l L) Either[R, L] { return Right[R, L](l) }),
		ParserRmap(right, func(r R) Either[R, L] { return Left[R, L](r) }),
	)
}

// ListEqBy consumes len(want) elements and succeeds with want if each
// is eq to the corresponding input element, failing (and backtracking
// everything consumed) otherwise.
func ListEqBy[A any](want []A, eq func(A, A) bool) Parser[A, []A] {
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: 0},
		step: func(s any, a A) ParserStep[any, []A] {
			i := s.(int)
			if i == len(want) {
				return PDone[any, []A](1, want)
			}
			if !eq(want[i], a) {
				return PError[any, []A]("streamly: list_eq: mismatch")
			}
			i++
			if i == len(want) {
				return PDone[any, []A](0, want)
			}
			return PContinue[any, []A](i, i)
		},
		extract: func(s any) ParserStep[any, []A] {
			if s.(int) == len(want) {
				return PDone[any, []A](0, want)
			}
			return atEOF[any, []A](s)
		},
	}
}

// ListEq is [ListEqBy] with ordinary equality.
func ListEq[A comparable](want []A) Parser[A, []A] {
	return ListEqBy(want, func(a, b A) bool { return a == b })
}

// StreamEqBy matches want against the input the same way [ListEqBy]
// does, but reads want from a [Stream] first (collecting it into a
// slice up front — want is assumed finite).
func StreamEqBy[A any](want Stream[A], eq func(A, A) bool) Parser[A, []A] {
	return ListEqBy(ToList(want), eq)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// altPhase tracks which branch Alt is feeding elements to.
type altPhase uint8

const (
	altTryLeft altPhase = iota
	altCommittedLeft
	altTryRight
)

// altState is Alt's hidden state. While altTryLeft, buffer retains
// every element fed so far in the current attempt, so that a failure
// can replay them to the right branch from scratch. Once committed
// (to either side), replay is no longer possible and buffer is
// dropped — per spec, once a branch emits Partial, the other branch
// is permanently abandoned.
type altState struct {
	phase  altPhase
	state  any
	buffer []any
}

// Alt tries left first. If left fails before committing (emitting
// Partial or Done), Alt replays every element consumed so far to
// right, starting from right's own initial state. Once left commits,
// right is never tried, no matter what left does afterward.
func Alt[A, B any](left, right Parser[A, B]) Parser[A, B] {
	// replayToRight feeds buf to right from a fresh state, reporting
	// the combined backtrack count: whatever right itself reports,
	// plus every buffered element right never got to see because it
	// resolved early.
	replayToRight := func(buf []any) ParserStep[any, B] {
		state := right.newState()
		for i, x := range buf {
			a := x.(A)
			rstep := right.step(state, a)
			n, ns, ok := rstep.IsPartial()
			_ = n
			if ok {
				state = ns
				continue
			}
			_, ns, ok = rstep.IsContinue()
			if ok {
				state = ns
				continue
			}
			n, b, ok := rstep.IsDone()
			if ok {
				return PDone[any, B](len(buf)-i-1+n, b)
			}
			msg, _ := rstep.IsError()
			return PError[any, B](msg)
		}
		return PContinue[any, B](0, altState{phase: altTryRight, state: state})
	}

	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: altState{phase: altTryLeft, state: left.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			as := s.(altState)
			switch as.phase {
			case altTryLeft:
				lstep := left.step(as.state, a)
				_, ns, partialOK := lstep.IsPartial()
				if partialOK {
					return PPartial[any, B](0, altState{phase: altCommittedLeft, state: ns})
				}
				n, b, doneOK := lstep.IsDone()
				if doneOK {
					return PDone[any, B](n, b)
				}
				_, ns, contOK := lstep.IsContinue()
				if contOK {
					buf := append(append([]any{}, as.buffer...), a)
					return PContinue[any, B](len(buf), altState{phase: altTryLeft, state: ns, buffer: buf})
				}
				buf := append(append([]any{}, as.buffer...), a)
				return replayToRight(buf)
			case altCommittedLeft:
				lstep := left.step(as.state, a)
				_, ns, partialOK := lstep.IsPartial()
				if partialOK {
					return PPartial[any, B](0, altState{phase: altCommittedLeft, state: ns})
				}
				n, b, doneOK := lstep.IsDone()
				if doneOK {
					return PDone[any, B](n, b)
				}
				msg, _ := lstep.IsError()
				return PError[any, B](msg)
			default: // altTryRight
				rstep := right.step(as.state, a)
				_, ns, partialOK := rstep.IsPartial()
				if partialOK {
					return PPartial[any, B](0, altState{phase: altTryRight, state: ns})
				}
				n, b, doneOK := rstep.IsDone()
				if doneOK {
					return PDone[any, B](n, b)
				}
				n, ns, contOK := rstep.IsContinue()
				if contOK {
					return PContinue[any, B](n, altState{phase: altTryRight, state: ns})
				}
				msg, _ := rstep.IsError()
				return PError[any, B](msg)
			}
		},
		extract: func(s any) ParserStep[any, B] {
			as := s.(altState)
			switch as.phase {
			case altTryLeft, altCommittedLeft:
				lstep := left.extract(as.state)
				n, b, doneOK := lstep.IsDone()
				if doneOK {
					return PDone[any, B](n, b)
				}
				if as.phase == altCommittedLeft {
					msg, _ := lstep.IsError()
					return PError[any, B](msg)
				}
				// left never committed: try right over the buffered replay,
				// then finalize right at EOF too.
				state := right.newState()
				for _, x := range as.buffer {
					a := x.(A)
					rstep := right.step(state, a)
					_, ns, partialOK := rstep.IsPartial()
					if partialOK {
						state = ns
						continue
					}
					_, ns, contOK := rstep.IsContinue()
					if contOK {
						state = ns
						continue
					}
					n, b, doneOK2 := rstep.IsDone()
					if doneOK2 {
						return PDone[any, B](n, b)
					}
					msg, _ := rstep.IsError()
					return PError[any, B](msg)
				}
				return right.extract(state)
			default:
				return right.extract(as.state)
			}
		},
	}
}

// LookAhead runs p but always rewinds everything p consumed,
// regardless of success or failure — the input position afterward is
// exactly where it was before LookAhead started. Per spec, LookAhead
// cannot be meaningfully combined with further extract-time
// finalization: if the input ends exactly while p is mid-parse,
// LookAhead reports an error rather than guessing at p's outcome.
func LookAhead[A, B any](p Parser[A, B]) Parser[A, B] {
	type laState struct {
		inner any
		n     int
	}
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: laState{inner: p.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			ls := s.(laState)
			pstep := p.step(ls.inner, a)
			_, ns, partialOK := pstep.IsPartial()
			if partialOK {
				return PContinue[any, B](ls.n+1, laState{inner: ns, n: ls.n + 1})
			}
			_, ns, contOK := pstep.IsContinue()
			if contOK {
				return PContinue[any, B](ls.n+1, laState{inner: ns, n: ls.n + 1})
			}
			_, b, doneOK := pstep.IsDone()
			if doneOK {
				return PDone[any, B](ls.n+1, b)
			}
			msg, _ := pstep.IsError()
			return PError[any, B](msg)
		},
		extract: func(s any) ParserStep[any, B] {
			return PError[any, B]("streamly: look_ahead: input ended before the lookahead parser finished")
		},
	}
}

// SplitWith runs left, then right, combining their results with f.
// right starts from its own initial state as soon as left commits to
// Done; the whole composite fails if either side fails.
//
// left's Done(n, _) may rewind elements already fed to left (e.g.
// [TakeWhileP]'s boundary element) — those n elements belong to right,
// not to whatever follows the whole SplitWith, so they are replayed
// into right's fresh state before this step call returns, the same
// discipline [Alt] and [Many]/[Some] use at their own commit points.
func SplitWith[A, L, R, B any](left Parser[A, L], right Parser[A, R], f func(L, R) B) Parser[A, B] {
	type swState struct {
		onLeft bool
		l      any
		r      any
		lval   L
		retain []any // elements fed to left since left's state was last fresh
	}
	// feedRight replays buf into right from a fresh state, returning as
	// soon as right resolves, or a mid-replay Partial/Continue state if
	// buf is exhausted first.
	feedRight := func(buf []any) ParserStep[any, R] {
		state := right.newState()
		for i, x := range buf {
			a := x.(A)
			rstep := right.step(state, a)
			_, ns, partialOK := rstep.IsPartial()
			if partialOK {
				state = ns
				continue
			}
			_, ns, contOK := rstep.IsContinue()
			if contOK {
				state = ns
				continue
			}
			n, rval, doneOK := rstep.IsDone()
			if doneOK {
				return PDone[any, R](len(buf)-i-1+n, rval)
			}
			msg, _ := rstep.IsError()
			return PError[any, R](msg)
		}
		return PPartial[any, R](0, state)
	}
	return Parser[A, B]{
		init: Init[any]{isPure: true, pure: swState{onLeft: true, l: left.newState()}},
		step: func(s any, a A) ParserStep[any, B] {
			ss := s.(swState)
			if ss.onLeft {
				retain := append(append([]any{}, ss.retain...), a)
				lstep := left.step(ss.l, a)
				n, ls, partialOK := lstep.IsPartial()
				if partialOK {
					return PPartial[any, B](0, swState{onLeft: true, l: ls, retain: trimAny(retain, n)})
				}
				n, ls, contOK := lstep.IsContinue()
				if contOK {
					return PContinue[any, B](n, swState{onLeft: true, l: ls, retain: trimAny(retain, n)})
				}
				n, lval, doneOK := lstep.IsDone()
				if doneOK {
					if n > len(retain) {
						n = len(retain)
					}
					replay := retain[len(retain)-n:]
					rstep := feedRight(replay)
					rn, rstate, partialOK2 := rstep.IsPartial()
					if partialOK2 {
						return PPartial[any, B](0, swState{onLeft: false, r: rstate, lval: lval})
					}
					_ = rn
					rn, rval, doneOK2 := rstep.IsDone()
					if doneOK2 {
						return PDone[any, B](rn, f(lval, rval))
					}
					msg, _ := rstep.IsError()
					return PError[any, B](msg)
				}
				msg, _ := lstep.IsError()
				return PError[any, B](msg)
			}
			rstep := right.step(ss.r, a)
			_, rs, partialOK := rstep.IsPartial()
			if partialOK {
				return PPartial[any, B](0, swState{onLeft: false, r: rs, lval: ss.lval})
			}
			n, rval, doneOK := rstep.IsDone()
			if doneOK {
				return PDone[any, B](n, f(ss.lval, rval))
			}
			n, rs, contOK := rstep.IsContinue()
			if contOK {
				return PContinue[any, B](n, swState{onLeft: false, r: rs, lval: ss.lval})
			}
			msg, _ := rstep.IsError()
			return PError[any, B](msg)
		},
		extract: func(s any) ParserStep[any, B] {
			ss := s.(swState)
			if ss.onLeft {
				lstep := left.extract(ss.l)
				_, lval, doneOK := lstep.IsDone()
				if !doneOK {
					msg, _ := lstep.IsError()
					return PError[any, B](msg)
				}
				rstep := right.extract(right.newState())
				_, rval, rok := rstep.IsDone()
				if !rok {
					msg, _ := rstep.IsError()
					return PError[any, B](msg)
				}
				return PDone[any, B](0, f(lval, rval))
			}
			rstep := right.extract(ss.r)
			_, rval, rok := rstep.IsDone()
			if !rok {
				msg, _ := rstep.IsError()
				return PError[any, B](msg)
			}
			return PDone[any, B](0, f(ss.lval, rval))
		},
	}
}

// Sequence runs every parser in ps in order, collecting their results.
func Sequence[A, B any](ps []Parser[A, B]) Parser[A, []B] {
	result := ParserRmap(FromPure[A, struct{}](struct{}{}), func(struct{}) []B { return nil })
	for _, p := range ps {
		pp := p
		prev := result
		result = SplitWith(prev, pp, func(xs []B, x B) []B { return append(append([]B{}, xs...), x) })
	}
	return result
}

// Many runs p zero or more times, collecting every result, until p
// fails (the failing attempt is discarded and its input rewound).
// Per spec, an iteration that succeeds while consuming zero elements
// is a programmer bug (it would loop forever) and panics rather than
// silently terminating or looping.
func Many[A, B any](p Parser[A, B]) Parser[A, []B] {
	return manyImpl(p, 0)
}

// Some runs p one or more times; it fails if p never succeeds even
// once.
func Some[A, B any](p Parser[A, B]) Parser[A, []B] {
	return manyImpl(p, 1)
}

// iterState is manyImpl's hidden state: the results collected by
// completed iterations, the in-progress iteration's inner state, and
// retain, the elements fed to that in-progress iteration since its
// own state was last fresh, trimmed to whatever backtrack count the
// iteration's own steps have reported. retain is what lets a Done(n)
// with n spanning several earlier step calls replay correctly into
// the next iteration instead of silently dropping those elements.
// dropped records that such a trim has already let go of at least one
// element, i.e. the iteration has consumed something.
type iterState struct {
	results []any
	cur     any
	retain  []any
	dropped bool
}

// trimAny keeps only the last n elements of xs.
func trimAny(xs []any, n int) []any {
	if n < 0 {
		n = 0
	}
	if len(xs) > n {
		return append([]any{}, xs[len(xs)-n:]...)
	}
	return xs
}

// feedOne advances one in-progress iteration of p by a single element,
// folding a completed iteration into results and restarting p with
// whatever it rewound replayed first — so a Done(n) that spans several
// earlier calls to manyImpl's own step is absorbed correctly within
// this one call rather than losing elements.
func feedOne[A, B any](p Parser[A, B], results []any, cur any, retain []any, dropped bool, a A) (newResults []any, newCur any, newRetain []any, newDropped bool, msg string, failed bool) {
	retain = append(append([]any{}, retain...), a)
	pstep := p.step(cur, a)
	n, ns, partialOK := pstep.IsPartial()
	if partialOK {
		return results, ns, trimAny(retain, n), dropped || n < len(retain), "", false
	}
	n, ns, contOK := pstep.IsContinue()
	if contOK {
		return results, ns, trimAny(retain, n), dropped || n < len(retain), "", false
	}
	n, b, doneOK := pstep.IsDone()
	if doneOK {
		if n > len(retain) {
			n = len(retain)
		}
		if len(retain)-n == 0 && !dropped {
			panic("streamly: many/some: iteration consumed zero elements")
		}
		replay := append([]any{}, retain[len(retain)-n:]...)
		results = append(append([]any{}, results...), b)
		cur2 := p.newState()
		var retain2 []any
		var dropped2 bool
		for _, x := range replay {
			var f bool
			var m string
			results, cur2, retain2, dropped2, m, f = feedOne(p, results, cur2, retain2, dropped2, x.(A))
			if f {
				return results, cur2, retain2, dropped2, m, true
			}
		}
		return results, cur2, retain2, dropped2, "", false
	}
	errMsg, _ := pstep.IsError()
	return results, cur, retain, dropped, errMsg, true
}

// manyImpl backs both [Many] (min=0) and [Some] (min=1).
func manyImpl[A, B any](p Parser[A, B], min int) Parser[A, []B] {
	return Parser[A, []B]{
		init: Init[any]{isPure: true, pure: iterState{cur: p.newState()}},
		step: func(s any, a A) ParserStep[any, []B] {
			st := s.(iterState)
			results, cur, retain, dropped, msg, failed := feedOne(p, st.results, st.cur, st.retain, st.dropped, a)
			if failed {
				if len(results) >= min {
					return PDone[any, []B](len(retain), toBSlice[B](results))
				}
				return PError[any, []B](msg)
			}
			if len(results) >= min {
				return PPartial[any, []B](0, iterState{results: results, cur: cur, retain: retain, dropped: dropped})
			}
			return PContinue[any, []B](len(retain), iterState{results: results, cur: cur, retain: retain, dropped: dropped})
		},
		extract: func(s any) ParserStep[any, []B] {
			st := s.(iterState)
			pstep := p.extract(st.cur)
			_, b, doneOK := pstep.IsDone()
			if doneOK {
				results := append(append([]any{}, st.results...), b)
				if len(results) < min {
					return PError[any, []B]("streamly: some: no successful iteration")
				}
				return PDone[any, []B](0, toBSlice[B](results))
			}
			if len(st.results) < min {
				return PError[any, []B]("streamly: some: no successful iteration")
			}
			return PDone[any, []B](0, toBSlice[B](st.results))
		},
	}
}

// toBSlice recovers a typed []B from an []any accumulated by
// manyImpl's hidden state.
func toBSlice[B any](xs []any) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = x.(B)
	}
	return out
}

// manyTillSignal tags ManyTill's inner alternation result.
type manyTillSignal[B any] struct {
	value B
	stop  bool
}

// ManyTill runs p repeatedly until end succeeds, collecting p's
// results; end's own result is discarded. Each iteration tries end
// first (as [Alt] does, with full replay-on-failure), falling back to
// p only if end does not match.
func ManyTill[A, B, E any](p Parser[A, B], end Parser[A, E]) Parser[A, []B] {
	alt := Alt(
		ParserRmap(end, func(E) manyTillSignal[B] { return manyTillSignal[B]{stop: true} }),
		ParserRmap(p, func(b B) manyTillSignal[B] { return manyTillSignal[B]{value: b} }),
	)
	type mtState struct {
		results []B
		cur     any
	}
	return Parser[A, []B]{
		init: Init[any]{isPure: true, pure: mtState{cur: alt.newState()}},
		step: func(s any, a A) ParserStep[any, []B] {
			st := s.(mtState)
			astep := alt.step(st.cur, a)
			_, ns, partialOK := astep.IsPartial()
			if partialOK {
				return PPartial[any, []B](0, mtState{results: st.results, cur: ns})
			}
			n, ns, contOK := astep.IsContinue()
			if contOK {
				return PContinue[any, []B](n, mtState{results: st.results, cur: ns})
			}
			n, sig, doneOK := astep.IsDone()
			if doneOK {
				if sig.stop {
					return PDone[any, []B](n, append([]B{}, st.results...))
				}
				results := append(append([]B{}, st.results...), sig.value)
				return PContinue[any, []B](n, mtState{results: results, cur: alt.newState()})
			}
			msg, _ := astep.IsError()
			return PError[any, []B](msg)
		},
		extract: func(s any) ParserStep[any, []B] {
			st := s.(mtState)
			astep := alt.extract(st.cur)
			_, sig, doneOK := astep.IsDone()
			if !doneOK {
				msg, _ := astep.IsError()
				return PError[any, []B](msg)
			}
			if sig.stop {
				return PDone[any, []B](0, append([]B{}, st.results...))
			}
			return PDone[any, []B](0, append(append([]B{}, st.results...), sig.value))
		},
	}
}

// Span splits the input at the first element for which test fails:
// everything up to (but not including) that element is parsed by
// before; test's failing element and everything after is left for
// after.
func Span[A, B, C any](test func(A) bool, before Parser[A, B], after Parser[A, C]) Parser[A, Pair[B, C]] {
	return SplitWith(TakeWhileP(test, before), after, func(b B, c C) Pair[B, C] {
		return Pair[B, C]{First: b, Second: c}
	})
}

// Deintercalate repeatedly parses either a content match or a
// separator match, collecting content results and discarding
// separator results. At each position content is tried first and sep
// only if content fails; the two are not forced to alternate, so
// consecutive contents or consecutive separators are accepted as
// well as content, sep, content, ... Requires at least one content
// match. A match that consumes zero elements would never progress;
// this is a programmer bug and panics rather than looping.
func Deintercalate[A, B, C any](content Parser[A, B], sep Parser[A, C]) Parser[A, []B] {
	type signal struct {
		isContent bool
		content   B
	}
	step := Alt(
		ParserRmap(content, func(b B) signal { return signal{isContent: true, content: b} }),
		ParserRmap(sep, func(C) signal { return signal{} }),
	)
	someContent := ParserFilter(Some(step), func(sigs []signal) bool {
		for _, sg := range sigs {
			if sg.isContent {
				return true
			}
		}
		return false
	})
	return ParserRmap(someContent, func(sigs []signal) []B {
		out := make([]B, 0, len(sigs))
		for _, sg := range sigs {
			if sg.isContent {
				out = append(out, sg.content)
			}
		}
		return out
	})
}

// SepBy is [Deintercalate] with zero content matches permitted.
func SepBy[A, B, C any](content Parser[A, B], sep Parser[A, C]) Parser[A, []B] {
	return ParserRmap(MaybeP(Deintercalate(content, sep)), func(m Maybe[[]B]) []B {
		if bs, ok := m.Get(); ok {
			return bs
		}
		return nil
	})
}

// SepBy1 requires at least one content match; equivalent to
// [Deintercalate] directly, named to match the separated-list family.
func SepBy1[A, B, C any](content Parser[A, B], sep Parser[A, C]) Parser[A, []B] {
	return Deintercalate(content, sep)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// appendState selects which of two streams is currently driving, and
// holds both inner states.
type appendState struct {
	first      bool
	firstInner any
	secondInner any
}

// Append yields every element of a, then every element of b.
func Append[A any](a, b Stream[A]) Stream[A] {
	return newStream(func(st appendState) StreamStep[appendState, A] {
		if st.first {
			step := a.step(st.firstInner)
			v, ns, ok := step.IsYield()
			if ok {
				return Yield(v, appendState{first: true, firstInner: ns, secondInner: st.secondInner})
			}
			ns, ok = step.IsSkip()
			if ok {
				return Skip[appendState, A](appendState{first: true, firstInner: ns, secondInner: st.secondInner})
			}
			return Skip[appendState, A](appendState{first: false, firstInner: st.firstInner, secondInner: st.secondInner})
		}
		step := b.step(st.secondInner)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield(v, appendState{first: false, firstInner: st.firstInner, secondInner: ns})
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[appendState, A](appendState{first: false, firstInner: st.firstInner, secondInner: ns})
		}
		return Stop[appendState, A]()
	}, appendState{first: true, firstInner: a.seed, secondInner: b.seed})
}

// concatMapState tracks the outer stream's state plus, once an inner
// stream has been produced from an outer element, that inner
// stream's own state.
type concatMapState struct {
	outer      any
	inner      any
	haveInner  bool
}

// ConcatMap maps each element of s to a sub-stream via f, and
// concatenates the sub-streams in order.
func ConcatMap[A, B any](s Stream[A], f func(A) Stream[B]) Stream[B] {
	var curInner Stream[B]
	return newStream(func(st concatMapState) StreamStep[concatMapState, B] {
		outer := st.outer
		inner := st.inner
		haveInner := st.haveInner
		for {
			if haveInner {
				step := curInner.step(inner)
				v, ns, ok := step.IsYield()
				if ok {
					return Yield(v, concatMapState{outer: outer, inner: ns, haveInner: true})
				}
				ns, ok = step.IsSkip()
				if ok {
					inner = ns
					continue
				}
				haveInner = false
				continue
			}
			ostep := s.step(outer)
			v, ons, ok := ostep.IsYield()
			if ok {
				curInner = f(v)
				outer = ons
				inner = curInner.seed
				haveInner = true
				continue
			}
			ons, ok = ostep.IsSkip()
			if ok {
				outer = ons
				continue
			}
			return Stop[concatMapState, B]()
		}
	}, concatMapState{outer: s.seed})
}

// zipState holds both input streams' states.
type zipState struct {
	left  any
	right any
}

// ZipWith combines corresponding elements of a and b with f, stopping
// as soon as either input stops.
func ZipWith[A, B, C any](a Stream[A], b Stream[B], f func(A, B) C) Stream[C] {
	return newStream(func(st zipState) StreamStep[zipState, C] {
		left := st.left
		for {
			lstep := a.step(left)
			lv, lns, ok := lstep.IsYield()
			if ok {
				right := st.right
				for {
					rstep := b.step(right)
					rv, rns, ok := rstep.IsYield()
					if ok {
						return Yield(f(lv, rv), zipState{left: lns, right: rns})
					}
					rns, ok = rstep.IsSkip()
					if ok {
						right = rns
						continue
					}
					return Stop[zipState, C]()
				}
			}
			lns, ok = lstep.IsSkip()
			if ok {
				left = lns
				continue
			}
			return Stop[zipState, C]()
		}
	}, zipState{left: a.seed, right: b.seed})
}

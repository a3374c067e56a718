// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// Map transforms every element of s with f.
func Map[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return newStream(func(state any) StreamStep[any, B] {
		step := s.step(state)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield[any, B](f(v), ns)
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[any, B](ns)
		}
		return Stop[any, B]()
	}, s.seed)
}

// MapEffect is [Map] with an effectful transformation, run once per
// element on the driver thread.
func MapEffect[A, B any](s Stream[A], f func(A) Effect[B]) Stream[B] {
	return newStream(func(state any) StreamStep[any, B] {
		step := s.step(state)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield[any, B](RunEffect(f(v)), ns)
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[any, B](ns)
		}
		return Stop[any, B]()
	}, s.seed)
}

// Filter keeps only the elements for which p reports true.
func Filter[A any](s Stream[A], p func(A) bool) Stream[A] {
	return newStream(func(state any) StreamStep[any, A] {
		step := s.step(state)
		v, ns, ok := step.IsYield()
		if ok {
			if p(v) {
				return Yield[any, A](v, ns)
			}
			return Skip[any, A](ns)
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[any, A](ns)
		}
		return Stop[any, A]()
	}, s.seed)
}

// FilterEffect is [Filter] with an effectful predicate.
func FilterEffect[A any](s Stream[A], p func(A) Effect[bool]) Stream[A] {
	return newStream(func(state any) StreamStep[any, A] {
		step := s.step(state)
		v, ns, ok := step.IsYield()
		if ok {
			if RunEffect(p(v)) {
				return Yield[any, A](v, ns)
			}
			return Skip[any, A](ns)
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[any, A](ns)
		}
		return Stop[any, A]()
	}, s.seed)
}

// takeState pairs the inner stream state with a remaining-count.
type takeState struct {
	inner any
	n     int
}

// Take yields at most n elements, then stops regardless of what the
// underlying stream would have produced next.
func Take[A any](s Stream[A], n int) Stream[A] {
	return newStream(func(st takeState) StreamStep[takeState, A] {
		if st.n <= 0 {
			return Stop[takeState, A]()
		}
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield(v, takeState{inner: ns, n: st.n - 1})
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[takeState, A](takeState{inner: ns, n: st.n})
		}
		return Stop[takeState, A]()
	}, takeState{inner: s.seed, n: n})
}

// TakeWhileStream yields elements while p holds, then stops at the
// first element for which it fails (that element is discarded).
func TakeWhileStream[A any](s Stream[A], p func(A) bool) Stream[A] {
	return newStream(func(state any) StreamStep[any, A] {
		step := s.step(state)
		v, ns, ok := step.IsYield()
		if ok {
			if !p(v) {
				return Stop[any, A]()
			}
			return Yield[any, A](v, ns)
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[any, A](ns)
		}
		return Stop[any, A]()
	}, s.seed)
}

// dropState tracks how many elements remain to be discarded.
type dropState struct {
	inner any
	n     int
}

// Drop discards the first n elements, then yields the rest.
func Drop[A any](s Stream[A], n int) Stream[A] {
	return newStream(func(st dropState) StreamStep[dropState, A] {
		state := st.inner
		remaining := st.n
		for {
			step := s.step(state)
			v, ns, ok := step.IsYield()
			if ok {
				if remaining > 0 {
					state = ns
					remaining--
					continue
				}
				return Yield(v, dropState{inner: ns, n: 0})
			}
			ns, ok = step.IsSkip()
			if ok {
				state = ns
				continue
			}
			return Stop[dropState, A]()
		}
	}, dropState{inner: s.seed, n: n})
}

// dropWhileState tracks whether the leading run is still being
// discarded.
type dropWhileState struct {
	inner   any
	dropped bool
}

// DropWhileStream discards a leading run of elements satisfying p,
// then yields everything from the first element that fails p onward
// (that element, and all after it, are yielded unconditionally — p is
// never consulted again once it has failed once).
func DropWhileStream[A any](s Stream[A], p func(A) bool) Stream[A] {
	return newStream(func(st dropWhileState) StreamStep[dropWhileState, A] {
		state := st.inner
		dropped := st.dropped
		for {
			step := s.step(state)
			v, ns, ok := step.IsYield()
			if ok {
				if !dropped && p(v) {
					state = ns
					continue
				}
				dropped = true
				return Yield(v, dropWhileState{inner: ns, dropped: true})
			}
			ns, ok = step.IsSkip()
			if ok {
				state = ns
				continue
			}
			return Stop[dropWhileState, A]()
		}
	}, dropWhileState{inner: s.seed})
}

// scanState pairs the inner stream state with the scan accumulator.
type scanState[B any] struct {
	inner any
	acc   B
}

// Scan yields the running accumulation: init, then f(init, x1),
// f(f(init, x1), x2), and so on — one output per input, plus the
// initial value up front.
func Scan[A, B any](s Stream[A], init B, f func(B, A) B) Stream[B] {
	first := true
	return newStream(func(st scanState[B]) StreamStep[scanState[B], B] {
		if first {
			first = false
			return Yield(st.acc, st)
		}
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			nacc := f(st.acc, v)
			return Yield(nacc, scanState[B]{inner: ns, acc: nacc})
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[scanState[B], B](scanState[B]{inner: ns, acc: st.acc})
		}
		return Stop[scanState[B], B]()
	}, scanState[B]{inner: s.seed, acc: init})
}

// Postscan is [Scan] without the leading initial value: one output
// per input element, starting from f(init, x1).
func Postscan[A, B any](s Stream[A], init B, f func(B, A) B) Stream[B] {
	return newStream(func(st scanState[B]) StreamStep[scanState[B], B] {
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			nacc := f(st.acc, v)
			return Yield(nacc, scanState[B]{inner: ns, acc: nacc})
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[scanState[B], B](scanState[B]{inner: ns, acc: st.acc})
		}
		return Stop[scanState[B], B]()
	}, scanState[B]{inner: s.seed, acc: init})
}

// rollingState pairs the inner stream state with the previous element
// and whether one has been seen yet.
type rollingState[A any] struct {
	inner any
	prev  A
	have  bool
}

// RollingMap applies f to each adjacent pair of elements. The first
// element of the underlying stream is dropped (there is no
// predecessor for it).
func RollingMap[A, B any](s Stream[A], f func(prev, cur A) B) Stream[B] {
	return newStream(func(st rollingState[A]) StreamStep[rollingState[A], B] {
		state := st.inner
		prev := st.prev
		have := st.have
		for {
			step := s.step(state)
			v, ns, ok := step.IsYield()
			if ok {
				if !have {
					state = ns
					prev = v
					have = true
					continue
				}
				out := f(prev, v)
				return Yield(out, rollingState[A]{inner: ns, prev: v, have: true})
			}
			ns, ok = step.IsSkip()
			if ok {
				state = ns
				continue
			}
			return Stop[rollingState[A], B]()
		}
	}, rollingState[A]{inner: s.seed})
}

// Indexed pairs each element with its zero-based position.
func Indexed[A any](s Stream[A]) Stream[IndexedValue[A]] {
	type idxState struct {
		inner any
		i     int
	}
	return newStream(func(st idxState) StreamStep[idxState, IndexedValue[A]] {
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield(IndexedValue[A]{Index: st.i, Value: v}, idxState{inner: ns, i: st.i + 1})
		}
		ns, ok = step.IsSkip()
		if ok {
			return Skip[idxState, IndexedValue[A]](idxState{inner: ns, i: st.i})
		}
		return Stop[idxState, IndexedValue[A]]()
	}, idxState{inner: s.seed})
}

// IndexedValue is the payload [Indexed] yields.
type IndexedValue[A any] struct {
	Index int
	Value A
}

// intersperseState tracks whether a separator is due before the next
// element (started), and holds an element already pulled while its
// separator is being yielded.
type intersperseState[A any] struct {
	inner   any
	started bool
	held    A
	hasHeld bool
}

// Intersperse inserts sep between every pair of consecutive elements.
func Intersperse[A any](s Stream[A], sep A) Stream[A] {
	return newStream(func(st intersperseState[A]) StreamStep[intersperseState[A], A] {
		if st.hasHeld {
			return Yield(st.held, intersperseState[A]{inner: st.inner, started: true})
		}
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			if st.started {
				return Yield(sep, intersperseState[A]{inner: ns, started: true, held: v, hasHeld: true})
			}
			return Yield(v, intersperseState[A]{inner: ns, started: true})
		}
		nsi, ok := step.IsSkip()
		if ok {
			return Skip[intersperseState[A], A](intersperseState[A]{inner: nsi, started: st.started})
		}
		return Stop[intersperseState[A], A]()
	}, intersperseState[A]{inner: s.seed})
}

// IntersperseEffect is [Intersperse] with the separator computed by
// an effect, once per insertion.
func IntersperseEffect[A any](s Stream[A], sep Effect[A]) Stream[A] {
	return newStream(func(st intersperseState[A]) StreamStep[intersperseState[A], A] {
		if st.hasHeld {
			return Yield(st.held, intersperseState[A]{inner: st.inner, started: true})
		}
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			if st.started {
				return Yield(RunEffect(sep), intersperseState[A]{inner: ns, started: true, held: v, hasHeld: true})
			}
			return Yield(v, intersperseState[A]{inner: ns, started: true})
		}
		nsi, ok := step.IsSkip()
		if ok {
			return Skip[intersperseState[A], A](intersperseState[A]{inner: nsi, started: st.started})
		}
		return Stop[intersperseState[A], A]()
	}, intersperseState[A]{inner: s.seed})
}

// IntersperseSuffix inserts sep after every element, including the last.
func IntersperseSuffix[A any](s Stream[A], sep A) Stream[A] {
	type sufState struct {
		inner   any
		pending bool
	}
	return newStream(func(st sufState) StreamStep[sufState, A] {
		if st.pending {
			return Yield(sep, sufState{inner: st.inner, pending: false})
		}
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield(v, sufState{inner: ns, pending: true})
		}
		nsi, ok := step.IsSkip()
		if ok {
			return Skip[sufState, A](sufState{inner: nsi, pending: false})
		}
		return Stop[sufState, A]()
	}, sufState{inner: s.seed})
}

// IntersperseSuffixEffect is [IntersperseSuffix] with an effectful
// separator.
func IntersperseSuffixEffect[A any](s Stream[A], sep Effect[A]) Stream[A] {
	type sufState struct {
		inner   any
		pending bool
	}
	return newStream(func(st sufState) StreamStep[sufState, A] {
		if st.pending {
			return Yield(RunEffect(sep), sufState{inner: st.inner, pending: false})
		}
		step := s.step(st.inner)
		v, ns, ok := step.IsYield()
		if ok {
			return Yield(v, sufState{inner: ns, pending: true})
		}
		nsi, ok := step.IsSkip()
		if ok {
			return Skip[sufState, A](sufState{inner: nsi, pending: false})
		}
		return Stop[sufState, A]()
	}, sufState{inner: s.seed})
}

// uniqState tracks the last-seen element, for adjacent deduplication.
type uniqState[A any] struct {
	inner any
	prev  A
	have  bool
}

// Uniq drops any element equal (via eq) to the immediately preceding
// one. Non-adjacent duplicates are not removed.
func Uniq[A any](s Stream[A], eq func(A, A) bool) Stream[A] {
	return newStream(func(st uniqState[A]) StreamStep[uniqState[A], A] {
		state := st.inner
		prev := st.prev
		have := st.have
		for {
			step := s.step(state)
			v, ns, ok := step.IsYield()
			if ok {
				if have && eq(prev, v) {
					state = ns
					continue
				}
				return Yield(v, uniqState[A]{inner: ns, prev: v, have: true})
			}
			ns, ok = step.IsSkip()
			if ok {
				state = ns
				continue
			}
			return Stop[uniqState[A], A]()
		}
	}, uniqState[A]{inner: s.seed})
}

// CatMaybes drops Skip-equivalent "nothing" markers, keeping only
// the present values: the Maybe counterpart of [Filter].
func CatMaybes[A any](s Stream[Maybe[A]]) Stream[A] {
	return newStream(func(state any) StreamStep[any, A] {
		st := state
		for {
			step := s.step(st)
			v, ns, ok := step.IsYield()
			if ok {
				if a, present := v.Get(); present {
					return Yield[any, A](a, ns)
				}
				st = ns
				continue
			}
			ns, ok = step.IsSkip()
			if ok {
				st = ns
				continue
			}
			return Stop[any, A]()
		}
	}, s.seed)
}

// MapMaybe maps then drops elements for which f returns nothing,
// fusing [Map] and [CatMaybes] into one pass.
func MapMaybe[A, B any](s Stream[A], f func(A) Maybe[B]) Stream[B] {
	return newStream(func(state any) StreamStep[any, B] {
		st := state
		for {
			step := s.step(st)
			v, ns, ok := step.IsYield()
			if ok {
				if b, present := f(v).Get(); present {
					return Yield[any, B](b, ns)
				}
				st = ns
				continue
			}
			ns, ok = step.IsSkip()
			if ok {
				st = ns
				continue
			}
			return Stop[any, B]()
		}
	}, s.seed)
}

// Maybe is an optional value, used by [CatMaybes] and [MapMaybe].
type Maybe[A any] struct {
	value   A
	present bool
}

// Just wraps a present value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, present: true}
}

// Nothing is the absent value.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Get returns the value and true if present, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.present
}

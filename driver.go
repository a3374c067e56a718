// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// ParseError is returned by [Parse] and carried inside the Left of
// [ParseMany]'s element type when a Parser fails or the input ends
// with an incomplete parse outstanding. Position is the number of
// elements consumed from the input, net of any pending rewind, at the
// point of failure — the cursor the [rewindBuffer] was holding when
// the failing step or extract ran.
type ParseError struct {
	Msg      string
	Position uint64
}

func (e *ParseError) Error() string { return e.Msg }

// rewindBuffer sits between a [Stream] and a [Parser], buffering
// just enough recently-pulled elements to satisfy the parser's own
// backtrack requests. It is bounded: after every step, it retains
// only the elements the parser has just declared it might still need
// (its returned backtrack count), never the full consumption
// history.
type rewindBuffer[A any] struct {
	step    func(any) StreamStep[any, A]
	state   any
	pending []A // elements pushed back, replayed before pulling fresh ones
	retain  []A // most recently fed elements, trimmed to the live backtrack bound
	pos     uint64
}

func newRewindBuffer[A any](s Stream[A]) *rewindBuffer[A] {
	return &rewindBuffer[A]{step: s.step, state: s.seed}
}

// pull returns the next element, preferring anything pushed back
// over pulling fresh from the underlying Stream.
func (r *rewindBuffer[A]) pull() (A, bool) {
	if len(r.pending) > 0 {
		a := r.pending[0]
		r.pending = r.pending[1:]
		return a, true
	}
	for {
		step := r.step(r.state)
		v, ns, ok := step.IsYield()
		if ok {
			r.state = ns
			return v, true
		}
		ns, ok = step.IsSkip()
		if ok {
			r.state = ns
			continue
		}
		var zero A
		return zero, false
	}
}

// unpull pushes a not-yet-fed element straight back onto the pull
// queue, used only to implement a zero-cost peek for EOF detection.
func (r *rewindBuffer[A]) unpull(a A) {
	r.pending = append([]A{a}, r.pending...)
}

// feed records a just-consumed element for potential future rewind.
func (r *rewindBuffer[A]) feed(a A) {
	r.retain = append(r.retain, a)
	r.pos++
}

// trim keeps only the last n fed elements — the live bound a parser
// has just promised it might still need backtracked.
func (r *rewindBuffer[A]) trim(n int) {
	if n < 0 {
		n = 0
	}
	if len(r.retain) > n {
		r.retain = append([]A{}, r.retain[len(r.retain)-n:]...)
	}
}

// rewind pushes the last n retained elements back in front of the
// pull queue, in their original order, for whatever consumes next.
func (r *rewindBuffer[A]) rewind(n int) {
	if n <= 0 {
		return
	}
	if n > len(r.retain) {
		n = len(r.retain)
	}
	tail := r.retain[len(r.retain)-n:]
	r.pending = append(append([]A{}, tail...), r.pending...)
	r.retain = r.retain[:len(r.retain)-n]
	r.pos -= uint64(n)
}

// runOnce drives p to completion against r, consuming exactly as
// much input as p's own backtrack counts leave consumed, and
// rewinding the rest back onto r for whatever runs next.
func runOnce[A, B any](r *rewindBuffer[A], p Parser[A, B]) (B, error) {
	state := p.newState()
	for {
		a, ok := r.pull()
		if !ok {
			st := p.extract(state)
			n, b, doneOK := st.IsDone()
			if doneOK {
				r.rewind(n)
				return b, nil
			}
			msg, _ := st.IsError()
			var zero B
			return zero, &ParseError{Msg: msg, Position: r.pos}
		}
		r.feed(a)
		st := p.step(state, a)
		n, ns, partialOK := st.IsPartial()
		if partialOK {
			state = ns
			r.trim(n)
			continue
		}
		n, ns, contOK := st.IsContinue()
		if contOK {
			state = ns
			r.trim(n)
			continue
		}
		n, b, doneOK := st.IsDone()
		if doneOK {
			r.rewind(n)
			return b, nil
		}
		msg, _ := st.IsError()
		var zero B
		return zero, &ParseError{Msg: msg, Position: r.pos}
	}
}

// Parse runs p once against the full input of s, returning its
// result or a [ParseError] if p fails, or if the input ends with p
// still wanting more (per the Continue-at-EOF policy).
func Parse[A, B any](s Stream[A], p Parser[A, B]) (B, error) {
	r := newRewindBuffer(s)
	return runOnce(r, p)
}

// ParseMany runs p repeatedly against s, once per successive chunk of
// input, yielding each result as Right, or the first failure as Left
// and stopping there — the remaining input, if any, is not parsed.
func ParseMany[A, B any](s Stream[A], p Parser[A, B]) Stream[Either[error, B]] {
	r := newRewindBuffer(s)
	type pmState struct {
		done bool
	}
	return newStream(func(st pmState) StreamStep[pmState, Either[error, B]] {
		if st.done {
			return Stop[pmState, Either[error, B]]()
		}
		a, ok := r.pull()
		if !ok {
			return Stop[pmState, Either[error, B]]()
		}
		r.unpull(a)
		b, err := runOnce(r, p)
		if err != nil {
			return Yield(Left[error, B](err), pmState{done: true})
		}
		return Yield(Right[error, B](b), pmState{})
	}, pmState{})
}

// ParseResource runs body with a resource acquired via acquire and
// guaranteed to be released via release, even if body returns an
// error (which is raised through [ThrowError] inside a [Bracket] and
// then returned) — the resource-safety analogue of [Parse] for parsers
// that need to hold, e.g., an open file or socket for the duration of
// the parse.
func ParseResource[R, B any](
	acquire Effect[R],
	release func(R) Effect[struct{}],
	body func(R) (B, error),
) (B, error) {
	result := RunEffect(Bracket[error, R, B](
		acquire,
		release,
		func(r R) Cont[Resumed, B] {
			b, err := body(r)
			if err != nil {
				return ThrowError[error, B](err)
			}
			return Return[Resumed](b)
		},
	))
	if result.IsLeft() {
		err, _ := result.GetLeft()
		var zero B
		return zero, err
	}
	b, _ := result.GetRight()
	return b, nil
}

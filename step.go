// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// stepKind tags which variant a step struct carries. Using a tagged
// struct rather than a boxed interface keeps every step call
// allocation-free: the struct is returned by value and, once inlined,
// usually lives entirely in registers.
type stepKind uint8

const (
	kindYield stepKind = iota
	kindSkip
	kindStop
)

// StreamStep is the result of advancing a [Stream] by one element.
// Exactly one of the three variants holds:
//
//   - Yield(a, s): emits a, continue from state s.
//   - Skip(s): no element produced, continue from state s.
//   - Stop: the stream is exhausted.
type StreamStep[S, A any] struct {
	kind  stepKind
	value A
	state S
}

// Yield constructs the "produced a value, continue" step.
func Yield[S, A any](a A, s S) StreamStep[S, A] {
	return StreamStep[S, A]{kind: kindYield, value: a, state: s}
}

// Skip constructs the "no value yet, continue" step.
func Skip[S, A any](s S) StreamStep[S, A] {
	return StreamStep[S, A]{kind: kindSkip, state: s}
}

// Stop constructs the "exhausted" step.
func Stop[S, A any]() StreamStep[S, A] {
	return StreamStep[S, A]{kind: kindStop}
}

// IsYield reports whether the step is Yield, returning its payload.
func (s StreamStep[S, A]) IsYield() (A, S, bool) {
	return s.value, s.state, s.kind == kindYield
}

// IsSkip reports whether the step is Skip, returning its state.
func (s StreamStep[S, A]) IsSkip() (S, bool) {
	return s.state, s.kind == kindSkip
}

// IsStop reports whether the step is Stop.
func (s StreamStep[S, A]) IsStop() bool {
	return s.kind == kindStop
}

// foldStepKind tags FoldStep's two variants.
type foldStepKind uint8

const (
	kindPartial foldStepKind = iota
	kindDone
)

// FoldStep is the result of feeding one element to a [Fold]'s step
// function. Partial(s) means the fold wants more input and carries
// updated state s; Done(b) means the fold has committed to a final
// result and will not be stepped again.
type FoldStep[S, B any] struct {
	kind  foldStepKind
	state S
	value B
}

// Partial constructs the "wants more input" fold step.
func Partial[S, B any](s S) FoldStep[S, B] {
	return FoldStep[S, B]{kind: kindPartial, state: s}
}

// Done constructs the "final result" fold step.
func Done[S, B any](b B) FoldStep[S, B] {
	return FoldStep[S, B]{kind: kindDone, value: b}
}

// IsPartial reports whether the step is Partial, returning its state.
func (s FoldStep[S, B]) IsPartial() (S, bool) {
	return s.state, s.kind == kindPartial
}

// IsDone reports whether the step is Done, returning its value.
func (s FoldStep[S, B]) IsDone() (B, bool) {
	return s.value, s.kind == kindDone
}

// Init describes how to produce a [Fold]'s initial state: either
// immediately (IPure) or via an [Effect] run once before the first
// element is stepped (IEffect).
type Init[S any] struct {
	effect  Effect[S]
	isPure  bool
	pure    S
}

// IPure wraps an initial state that needs no effect to compute.
func IPure[S any](s S) Init[S] {
	return Init[S]{pure: s, isPure: true}
}

// IEffect wraps an initial state computed by running an effect once.
func IEffect[S any](e Effect[S]) Init[S] {
	return Init[S]{effect: e}
}

// run resolves the initial state, running the effect if present.
func (i Init[S]) run() S {
	if i.isPure {
		return i.pure
	}
	return RunEffect(i.effect)
}

// parserStepKind tags ParserStep's four variants.
type parserStepKind uint8

const (
	kindParserPartial parserStepKind = iota
	kindParserContinue
	kindParserDone
	kindParserError
)

// ParserStep is the result of feeding one element, or EOF, to a
// [Parser]'s step function. n is the backtrack count: the number of
// most recently consumed elements the driver must be ready to re-feed
// to some other continuation of the parse.
//
//   - Partial(n, s): committed, wants more input, carries state s.
//     Once emitted, the last n elements may still be re-fed (e.g. to an
//     alternative inside the same combinator) but the choice that
//     produced this Partial cannot be abandoned by an ancestor combinator.
//   - Continue(n, s): not yet committed, wants more input, carries
//     state s. An ancestor combinator (e.g. [Alt]) may still discard
//     this attempt and try a different one.
//   - Done(n, b): parse finished successfully with value b; the driver
//     rewinds n elements of input before resuming whatever follows.
//   - Error(msg): parse failed; the driver rewinds and/or propagates
//     according to the combinator in control.
type ParserStep[S, B any] struct {
	kind  parserStepKind
	n     int
	state S
	value B
	msg   string
}

// PPartial constructs a committed, more-input-wanted parser step.
func PPartial[S, B any](n int, s S) ParserStep[S, B] {
	return ParserStep[S, B]{kind: kindParserPartial, n: n, state: s}
}

// PContinue constructs an uncommitted, more-input-wanted parser step.
func PContinue[S, B any](n int, s S) ParserStep[S, B] {
	return ParserStep[S, B]{kind: kindParserContinue, n: n, state: s}
}

// PDone constructs a successful parser step, rewinding n elements.
func PDone[S, B any](n int, b B) ParserStep[S, B] {
	return ParserStep[S, B]{kind: kindParserDone, n: n, value: b}
}

// PError constructs a failed parser step carrying a message.
func PError[S, B any](msg string) ParserStep[S, B] {
	return ParserStep[S, B]{kind: kindParserError, msg: msg}
}

// IsPartial reports whether the step is Partial.
func (s ParserStep[S, B]) IsPartial() (n int, state S, ok bool) {
	return s.n, s.state, s.kind == kindParserPartial
}

// IsContinue reports whether the step is Continue.
func (s ParserStep[S, B]) IsContinue() (n int, state S, ok bool) {
	return s.n, s.state, s.kind == kindParserContinue
}

// IsDone reports whether the step is Done.
func (s ParserStep[S, B]) IsDone() (n int, value B, ok bool) {
	return s.n, s.value, s.kind == kindParserDone
}

// IsError reports whether the step is Error.
func (s ParserStep[S, B]) IsError() (msg string, ok bool) {
	return s.msg, s.kind == kindParserError
}

// committed reports whether this step represents an irrevocable choice
// (Partial or Done), as opposed to one an ancestor [Alt] may still
// abandon (Continue or Error).
func (s ParserStep[S, B]) committed() bool {
	return s.kind == kindParserPartial || s.kind == kindParserDone
}

// backtrack returns the step's backtrack count, valid for every
// variant except Error (which carries none).
func (s ParserStep[S, B]) backtrack() int {
	return s.n
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package streamly provides a fusion-friendly pull-based stream, an
// incremental fold, and a backtracking incremental parser, all sharing one
// small step protocol.
//
// # Design Philosophy
//
// Three layered abstractions, leaves first:
//
//   - [Stream]: a pair (step, seed) driven by repeated calls to step, which
//     returns [StreamStep]: Yield, Skip, or Stop.
//   - [Fold]: a triple (initial, step, extract), a left-to-right reducer
//     whose step returns [FoldStep]: Partial or Done.
//   - [Parser]: a triple shaped like Fold, plus failure and backtracking.
//     Its step returns [ParserStep]: Partial(n), Continue(n), Done(n), or
//     Error, where n is the backtrack count — the number of most recently
//     consumed elements the driver must re-feed.
//
// Each step call returns exactly one variant, carried in a tagged struct
// rather than a boxed interface, so a driver's dispatch on the result
// costs a handful of field reads rather than a type switch or an
// allocation for the variant itself; see allocs_test.go for the
// assertions this rests on.
//
// # Stream
//
// Generators build a [Stream] from nothing: [FromList], [FromFunc],
// [FromFuncEffect], [EnumerateFromTo], [Replicate], [RepeatEffect].
//
// Transformers rewrap a Stream's step function: [Map], [MapEffect],
// [Filter], [FilterEffect], [Take], [TakeWhileStream], [Drop],
// [DropWhileStream], [Scan], [Postscan], [RollingMap], [Indexed],
// [Intersperse], [IntersperseEffect], [IntersperseSuffix],
// [IntersperseSuffixEffect], [Uniq], [CatMaybes], [MapMaybe].
//
// Compositors combine two or more Streams: [Append], [ConcatMap],
// [ZipWith].
//
// Sinks drive a Stream to a result: [Drain], [Foldl], [ToList],
// [StreamFold], [Parse], [ParseMany].
//
// # Fold
//
// [MkFold] is the primitive constructor. Leaves: [FoldDrain], [ToListFold],
// [Length], [Sum], [LastFold], [OneFold], [Any], [All]. Combinators:
// [Lmap], [LmapEffect], [FoldFilter], [FoldPostscan], [Tee], [Rmap],
// [Snoc], [Reduce], [FoldTake].
//
// # Parser
//
// Primitives: [FromFold], [FromPure], [FromEffect], [Die], [DieEffect],
// [Peek], [EOF], [One], [OneEq], [OneNotEq], [OneOf], [NoneOf], [Satisfy],
// [MaybeP], [EitherP], [ListEqBy], [ListEq], [StreamEqBy].
//
// Length- and predicate-bounded: [TakeBetween], [TakeEQ], [TakeGE],
// [TakeP], [ParserTakeWhile], [TakeWhile1], [TakeWhileP], [ParserDropWhile].
//
// Separator-framed and tokenizing: [TakeEndBy], [TakeEndByDrop],
// [TakeEndByEsc], [TakeStartBy], [TakeStartByDrop], [TakeFramedByDrop],
// [TakeFramedByEscDrop], [TakeFramedByGeneric], [WordBy], [WordFramedBy],
// [WordQuotedBy].
//
// Grouping: [GroupBy], [GroupByRolling], [GroupByRollingEither].
//
// Composition: [LookAhead], [SplitWith], [Alt], [Deintercalate], [SepBy],
// [SepBy1], [Many], [Some], [ManyTill], [Sequence], [Span].
//
// # Driver
//
// [Parse] and [ParseMany] run a [Parser] over a [Stream] using an
// internal rewind buffer that keeps as many recent elements as the
// parser's most recent backtrack count asks for; older elements are
// dropped even if an earlier count was larger. [ParseResource] additionally guarantees a
// resource's release, built on [Bracket] from the effect subsystem below.
//
// # Effect Subsystem
//
// [Effect] is the host effect type: a continuation-passing computation
// (see [Cont], [Bind], [Map], [Then], [Run]) that every *_effect
// combinator runs synchronously via [RunEffect]. [Perform] and [Handle]
// let advanced callers intercept an Effect's operations — for example to
// stand in a test double for an out-of-scope I/O adapter.
//
// [Either], [ThrowError], [CatchError], and [RunError] back error
// propagation from user effects out through *_effect combinators.
package streamly

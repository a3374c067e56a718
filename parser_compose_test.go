// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly_test

import (
	"testing"

	"github.com/georgefst/streamly"
)

func TestAltLeftWins(t *testing.T) {
	p := streamly.Alt(streamly.OneEq(1), streamly.OneEq(2))
	got, err := streamly.Parse(streamly.FromList([]int{1}), p)
	if err != nil || got != 1 {
		t.Fatalf("got (%v, %v), want (1, nil)", got, err)
	}
}

func TestAltFallsBackToRight(t *testing.T) {
	p := streamly.Alt(streamly.OneEq(1), streamly.OneEq(2))
	got, err := streamly.Parse(streamly.FromList([]int{2}), p)
	if err != nil || got != 2 {
		t.Fatalf("got (%v, %v), want (2, nil)", got, err)
	}
}

func TestAltBothFail(t *testing.T) {
	p := streamly.Alt(streamly.OneEq(1), streamly.OneEq(2))
	_, err := streamly.Parse(streamly.FromList([]int{3}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure")
	}
}

func TestAltCommitsOnPartial(t *testing.T) {
	// left commits after its first element (TakeEQ(2) reports Partial,
	// not Continue, while it still wants more) so even though left then
	// fails, right is never tried.
	left := streamly.TakeEQ(2, streamly.ToListFold[int]())
	right := streamly.ParserRmap(streamly.OneEq(9), func(x int) []int { return []int{x} })
	p := streamly.Alt(left, right)
	_, err := streamly.Parse(streamly.FromList([]int{9}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure (left committed, right never tried)")
	}
}

func TestAltReplaysBufferedElementsToRight(t *testing.T) {
	// left fails outright on the very first element it sees (Satisfy never
	// commits via Partial), so Alt must replay that element to right.
	left := streamly.ParserRmap(streamly.Satisfy(func(x int) bool { return x > 100 }), func(x int) []int { return []int{x} })
	right := streamly.TakeEQ(3, streamly.ToListFold[int]())
	p := streamly.Alt(left, right)
	got, err := streamly.Parse(streamly.FromList([]int{1, 2, 3}), p)
	want := []int{1, 2, 3}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestLookAheadDoesNotConsume(t *testing.T) {
	p := streamly.LookAhead(streamly.TakeEQ(2, streamly.ToListFold[int]()))
	combined := streamly.SplitWith(p, streamly.TakeEQ(2, streamly.ToListFold[int]()), func(a, b []int) [][]int { return [][]int{a, b} })
	got, err := streamly.Parse(streamly.FromList([]int{1, 2}), combined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]int{{1, 2}, {1, 2}}
	if !equalSlice(got[0], want[0]) || !equalSlice(got[1], want[1]) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLookAheadErrorsAtEOFMidParse(t *testing.T) {
	p := streamly.LookAhead(streamly.TakeEQ(3, streamly.ToListFold[int]()))
	_, err := streamly.Parse(streamly.FromList([]int{1, 2}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure (input ended mid-lookahead)")
	}
}

func TestSplitWith(t *testing.T) {
	p := streamly.SplitWith(streamly.TakeEQ(2, streamly.ToListFold[int]()), streamly.TakeEQ(2, streamly.ToListFold[int]()), func(a, b []int) []int {
		return append(append([]int{}, a...), b...)
	})
	got, err := streamly.Parse(streamly.FromList([]int{1, 2, 3, 4}), p)
	want := []int{1, 2, 3, 4}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

// TestSplitWithReplaysRewoundBoundaryElement is a direct regression test
// for the left-to-right handoff bug: TakeWhileP's boundary element (the
// first one failing the predicate) must reach right, not be dropped.
func TestSplitWithReplaysRewoundBoundaryElement(t *testing.T) {
	before := streamly.TakeWhileP(func(x int) bool { return x < 10 }, streamly.FromFold(streamly.ToListFold[int]()))
	after := streamly.TakeEQ(1, streamly.ToListFold[int]())
	p := streamly.SplitWith(before, after, func(b []int, a []int) []int {
		return append(append([]int{}, b...), a...)
	})
	got, err := streamly.Parse(streamly.FromList([]int{1, 2, 10}), p)
	want := []int{1, 2, 10}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil) — boundary element 10 must reach after", got, err, want)
	}
}

func TestWordByDoesNotDropFirstCharacter(t *testing.T) {
	isSpace := func(r rune) bool { return r == ' ' }
	p := streamly.Many(streamly.WordBy(isSpace))
	got, err := streamly.Parse(streamly.FromList([]rune("  hello world")), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || string(got[0]) != "hello" || string(got[1]) != "world" {
		t.Fatalf("got %q, want [\"hello\" \"world\"]", got)
	}
}

func TestSequence(t *testing.T) {
	p := streamly.Sequence([]streamly.Parser[int, int]{
		streamly.OneEq(1), streamly.OneEq(2), streamly.OneEq(3),
	})
	got, err := streamly.Parse(streamly.FromList([]int{1, 2, 3}), p)
	want := []int{1, 2, 3}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestMany(t *testing.T) {
	p := streamly.Many(streamly.OneEq(7))
	got, err := streamly.Parse(streamly.FromList([]int{7, 7, 7, 9}), p)
	want := []int{7, 7, 7}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestManyZeroMatches(t *testing.T) {
	p := streamly.Many(streamly.OneEq(7))
	got, err := streamly.Parse(streamly.FromList([]int{9}), p)
	if err != nil || len(got) != 0 {
		t.Fatalf("got (%v, %v), want (empty, nil)", got, err)
	}
}

// TestManyOfWordByReplaysRewoundTailAcrossIterations is a direct
// regression test for the iteration-boundary element-loss bug: each
// successful WordBy ends by rewinding its terminating separator, which
// must be fed to the *next* iteration of Many (to be skipped as leading
// whitespace there), not dropped or handed nowhere.
func TestManyOfWordByReplaysRewoundTailAcrossIterations(t *testing.T) {
	isSpace := func(r rune) bool { return r == ' ' }
	p := streamly.Many(streamly.WordBy(isSpace))
	got, err := streamly.Parse(streamly.FromList([]rune("one two three")), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || string(got[0]) != "one" || string(got[1]) != "two" || string(got[2]) != "three" {
		t.Fatalf("got %q, want [\"one\" \"two\" \"three\"]", got)
	}
}

func TestSome(t *testing.T) {
	p := streamly.Some(streamly.OneEq(7))
	got, err := streamly.Parse(streamly.FromList([]int{7, 7, 9}), p)
	want := []int{7, 7}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestSomeRequiresOneMatch(t *testing.T) {
	p := streamly.Some(streamly.OneEq(7))
	_, err := streamly.Parse(streamly.FromList([]int{9}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure")
	}
}

func TestManyTill(t *testing.T) {
	p := streamly.ManyTill(streamly.One[int](), streamly.OneEq(0))
	got, err := streamly.Parse(streamly.FromList([]int{1, 2, 3, 0, 9}), p)
	want := []int{1, 2, 3}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestManyTillNeverEnds(t *testing.T) {
	p := streamly.ManyTill(streamly.One[int](), streamly.OneEq(0))
	_, err := streamly.Parse(streamly.FromList([]int{1, 2, 3}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure (end marker never seen)")
	}
}

func TestSpan(t *testing.T) {
	p := streamly.Span(func(x int) bool { return x < 10 }, streamly.FromFold(streamly.ToListFold[int]()), streamly.FromFold(streamly.ToListFold[int]()))
	got, err := streamly.Parse(streamly.FromList([]int{1, 2, 10, 11}), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalSlice(got.First, []int{1, 2}) || !equalSlice(got.Second, []int{10, 11}) {
		t.Fatalf("got %+v, want {[1 2] [10 11]}", got)
	}
}

func TestDeintercalate(t *testing.T) {
	content := streamly.Satisfy(func(x int) bool { return x != 0 })
	sep := streamly.OneEq(0)
	p := streamly.Deintercalate(content, sep)
	got, err := streamly.Parse(streamly.FromList([]int{1, 0, 2, 0, 3}), p)
	want := []int{1, 2, 3}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestDeintercalateRequiresOneContent(t *testing.T) {
	content := streamly.Satisfy(func(x int) bool { return x != 0 })
	sep := streamly.OneEq(0)
	p := streamly.Deintercalate(content, sep)
	_, err := streamly.Parse(streamly.FromList([]int{0}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure (no content matched)")
	}
}

func TestSepBy(t *testing.T) {
	content := streamly.Satisfy(func(x int) bool { return x != 0 })
	sep := streamly.OneEq(0)
	p := streamly.SepBy(content, sep)
	got, err := streamly.Parse(streamly.FromList([]int{}), p)
	if err != nil || len(got) != 0 {
		t.Fatalf("got (%v, %v), want (empty, nil)", got, err)
	}
	got, err = streamly.Parse(streamly.FromList([]int{1, 0, 2}), p)
	want := []int{1, 2}
	if err != nil || !equalSlice(got, want) {
		t.Fatalf("got (%v, %v), want (%v, nil)", got, err, want)
	}
}

func TestSepBy1(t *testing.T) {
	content := streamly.Satisfy(func(x int) bool { return x != 0 })
	sep := streamly.OneEq(0)
	p := streamly.SepBy1(content, sep)
	_, err := streamly.Parse(streamly.FromList([]int{}), p)
	if err == nil {
		t.Fatalf("got nil error, want failure (SepBy1 requires one content match)")
	}
}

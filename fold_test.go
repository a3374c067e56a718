// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly_test

import (
	"testing"

	"github.com/georgefst/streamly"
)

func TestFoldDrain(t *testing.T) {
	streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), streamly.FoldDrain[int]())
}

func TestToListFold(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), streamly.ToListFold[int]())
	want := []int{1, 2, 3}
	if !equalSlice(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLength(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3, 4}), streamly.Length[int]())
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestSum(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3, 4}), streamly.Sum[int]())
	if got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestLastFold(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), streamly.LastFold[int]())
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestLastFoldEmpty(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{}), streamly.LastFold[int]())
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestOneFold(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), streamly.OneFold[int]())
	v, ok := got.Get()
	if !ok || v != 1 {
		t.Fatalf("got (%v, %v), want (1, true)", v, ok)
	}
}

func TestOneFoldEmpty(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{}), streamly.OneFold[int]())
	_, ok := got.Get()
	if ok {
		t.Fatalf("got present, want absent")
	}
}

func TestAny(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), streamly.Any(func(x int) bool { return x == 2 }))
	if !got {
		t.Fatalf("got false, want true")
	}
	got = streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), streamly.Any(func(x int) bool { return x == 9 }))
	if got {
		t.Fatalf("got true, want false")
	}
}

func TestAll(t *testing.T) {
	got := streamly.StreamFold(streamly.FromList([]int{2, 4, 6}), streamly.All(func(x int) bool { return x%2 == 0 }))
	if !got {
		t.Fatalf("got false, want true")
	}
	got = streamly.StreamFold(streamly.FromList([]int{2, 3, 6}), streamly.All(func(x int) bool { return x%2 == 0 }))
	if got {
		t.Fatalf("got true, want false")
	}
}

func TestLmap(t *testing.T) {
	f := streamly.Lmap(streamly.Sum[int](), func(s string) int { return len(s) })
	got := streamly.StreamFold(streamly.FromList([]string{"a", "bb", "ccc"}), f)
	if got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestFoldFilter(t *testing.T) {
	f := streamly.FoldFilter(streamly.Sum[int](), func(x int) bool { return x%2 == 0 })
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3, 4, 5}), f)
	if got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestFoldPostscan(t *testing.T) {
	f := streamly.FoldPostscan(streamly.Sum[int](), func(x int) int { return x })
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), f)
	if got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestTee(t *testing.T) {
	f := streamly.Tee(streamly.Sum[int](), streamly.Length[int]())
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3, 4}), f)
	if got.First != 10 || got.Second != 4 {
		t.Fatalf("got %+v, want {10 4}", got)
	}
}

func TestFoldRmap(t *testing.T) {
	f := streamly.Rmap(streamly.Sum[int](), func(x int) string { return "sum" })
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), f)
	if got != "sum" {
		t.Fatalf("got %q, want %q", got, "sum")
	}
}

func TestReduce(t *testing.T) {
	f := streamly.Reduce(0, func(a, b int) int {
		if b > a {
			return b
		}
		return a
	})
	got := streamly.StreamFold(streamly.FromList([]int{3, 7, 2, 9, 4}), f)
	if got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestFoldTake(t *testing.T) {
	f := streamly.FoldTake(streamly.ToListFold[int](), 2)
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3, 4}), f)
	want := []int{1, 2}
	if !equalSlice(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFoldTakeZero(t *testing.T) {
	f := streamly.FoldTake(streamly.ToListFold[int](), 0)
	got := streamly.StreamFold(streamly.FromList([]int{1, 2, 3}), f)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// Drain runs the stream to exhaustion, discarding every element.
func Drain[A any](s Stream[A]) {
	s.drive(func(A) bool { return true })
}

// Foldl reduces the stream left-to-right with f, starting from init.
func Foldl[A, B any](s Stream[A], init B, f func(B, A) B) B {
	acc := init
	s.drive(func(a A) bool {
		acc = f(acc, a)
		return true
	})
	return acc
}

// ToList collects every element into a slice, in order.
func ToList[A any](s Stream[A]) []A {
	var out []A
	s.drive(func(a A) bool {
		out = append(out, a)
		return true
	})
	return out
}

// StreamFold drives s through f to completion, returning f's final
// result: f's extract is called once the stream stops, unless f
// reaches Done earlier, in which case the stream is abandoned at that
// point (remaining elements are never pulled).
func StreamFold[A, B any](s Stream[A], f Fold[A, B]) B {
	state := f.newState()
	var result B
	var done bool
	s.drive(func(a A) bool {
		step := f.step(state, a)
		ns, partial := step.IsPartial()
		if partial {
			state = ns
			return true
		}
		result, _ = step.IsDone()
		done = true
		return false
	})
	if done {
		return result
	}
	return f.extract(state)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// groupState is shared by the GroupBy family: an anchor element used
// for the grouping test, plus the accumulated group.
type groupState[A any] struct {
	acc    []A
	anchor A
	have   bool
}

// GroupBy collects a maximal run of elements for which rel(first, x)
// holds, where first is the group's own first element — every
// element in the group is compared against the same anchor, not
// against its immediate predecessor (contrast [GroupByRolling]).
func GroupBy[A any](rel func(first, x A) bool) Parser[A, []A] {
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: groupState[A]{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(groupState[A])
			if !st.have {
				return PPartial[any, []A](0, groupState[A]{acc: []A{a}, anchor: a, have: true})
			}
			if !rel(st.anchor, a) {
				return PDone[any, []A](1, st.acc)
			}
			return PPartial[any, []A](0, groupState[A]{acc: append(append([]A{}, st.acc...), a), anchor: st.anchor, have: true})
		},
		extract: func(s any) ParserStep[any, []A] {
			st := s.(groupState[A])
			if !st.have {
				return PError[any, []A]("streamly: group_by: no elements")
			}
			return PDone[any, []A](0, st.acc)
		},
	}
}

// GroupByRolling is [GroupBy], but rel is tested between each element
// and its immediate predecessor instead of a fixed anchor.
func GroupByRolling[A any](rel func(prev, cur A) bool) Parser[A, []A] {
	return Parser[A, []A]{
		init: Init[any]{isPure: true, pure: groupState[A]{}},
		step: func(s any, a A) ParserStep[any, []A] {
			st := s.(groupState[A])
			if !st.have {
				return PPartial[any, []A](0, groupState[A]{acc: []A{a}, anchor: a, have: true})
			}
			if !rel(st.anchor, a) {
				return PDone[any, []A](1, st.acc)
			}
			return PPartial[any, []A](0, groupState[A]{acc: append(append([]A{}, st.acc...), a), anchor: a, have: true})
		},
		extract: func(s any) ParserStep[any, []A] {
			st := s.(groupState[A])
			if !st.have {
				return PError[any, []A]("streamly: group_by_rolling: no elements")
			}
			return PDone[any, []A](0, st.acc)
		},
	}
}

// GroupByRollingEither is [GroupByRolling] tagging the resulting
// group Right if rel held between every adjacent pair in it (a
// uniformly related run of more than one element), or Left if the
// group is a single element that failed rel against whatever
// followed it (or was the last element).
func GroupByRollingEither[A any](rel func(prev, cur A) bool) Parser[A, Either[[]A, []A]] {
	return ParserRmap(GroupByRolling(rel), func(g []A) Either[[]A, []A] {
		if len(g) > 1 {
			return Right[[]A, []A](g)
		}
		return Left[[]A, []A](g)
	})
}

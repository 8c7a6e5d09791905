package wrapped

import "cmp"

// strictExtremum keeps a running extremum that is replaced only on strict
// improvement, so ties keep the first candidate encountered. The same
// reduction backs best-win, quickest-win, highest-rated-defeated, best
// opening and nemesis selection, giving them identical tie-break semantics.
type strictExtremum[T any, S cmp.Ordered] struct {
	item   *T
	score  S
	better func(candidate, current S) bool
}

func newStrictMax[T any, S cmp.Ordered]() *strictExtremum[T, S] {
	return &strictExtremum[T, S]{
		better: func(candidate, current S) bool { return candidate > current },
	}
}

func newStrictMin[T any, S cmp.Ordered]() *strictExtremum[T, S] {
	return &strictExtremum[T, S]{
		better: func(candidate, current S) bool { return candidate < current },
	}
}

// offer proposes a candidate, which is kept only when nothing is held yet
// or the score strictly improves on the current one.
func (e *strictExtremum[T, S]) offer(item T, score S) bool {
	if e.item != nil && !e.better(score, e.score) {
		return false
	}
	e.item = &item
	e.score = score
	return true
}

func (e *strictExtremum[T, S]) get() *T {
	return e.item
}

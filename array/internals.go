package array

import "fmt"

// grownCapacity computes the smallest capacity ≥ need reachable from c by
// repeated multiplication with factor. A multiplication that does not
// strictly increase c (integer overflow, or a degenerate factor) degrades to
// increments of one, so extreme sizes slow down instead of failing.
func grownCapacity(c, factor, need int) int {
	if need < 1 {
		need = 1
	}
	for c < need {
		next := c * factor
		if next <= c {
			next = c + 1
		}
		c = next
	}
	return c
}

// resize reallocates the backing store to capacity c, carrying the live
// elements over. The old store is dropped; no aliasing is retained.
func (a *Array[T]) resize(c int) {
	assertThat(c >= a.size, "new capacity %d below size %d", c, a.size)
	store := make([]T, c)
	copy(store, a.store[:a.size])
	a.store = store
	tracer().Debugf("resized backing store to capacity %d", c)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("array: "+msg, msgargs...)
		panic(msg)
	}
}

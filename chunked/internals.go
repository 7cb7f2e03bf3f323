package chunked

import "fmt"

// at reads logical index i, translating to (chunk, offset). Callers have to
// check bounds first.
func (a *Array[T]) at(i int) T {
	return a.chunks[i/a.chunkSize][i%a.chunkSize]
}

func (a *Array[T]) setAt(i int, v T) {
	a.chunks[i/a.chunkSize][i%a.chunkSize] = v
}

// grow appends chunks until the table holds at least need elements. The
// chunk count is multiplied by the growth factor per round; a multiplication
// that does not strictly increase the count (integer overflow) degrades to a
// single extra chunk. Live elements are never moved.
func (a *Array[T]) grow(need int) {
	for a.Cap() < need {
		n := len(a.chunks) * a.factor
		if n <= len(a.chunks) {
			n = len(a.chunks) + 1
		}
		for len(a.chunks) < n {
			a.chunks = append(a.chunks, make([]T, a.chunkSize))
		}
		tracer().Debugf("grew chunk table to %d chunks, capacity %d", len(a.chunks), a.Cap())
	}
	assertThat(a.Cap() >= need, "capacity %d still below %d after growing", a.Cap(), need)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("chunked: "+msg, msgargs...)
		panic(msg)
	}
}

package chunked

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/grow"
)

// Errors reported by constructors and index-based accessors.
var (
	ErrGrowthFactor = errors.New("growth factor must be greater than 1")
	ErrChunkSize    = errors.New("chunk size must be at least 1")
	ErrOutOfBounds  = errors.New("array index out of bounds")
)

const (
	defaultGrowthFactor = 2
	defaultChunkSize    = 4
)

// Array is a growable array of elements of type T, segmented into chunks of
// fixed length. The first Len() logical slots hold live elements.
//
// The zero value is not usable; create arrays with New or Empty.
type Array[T any] struct {
	chunks    [][]T // chunk table; every chunk has length chunkSize
	chunkSize int   // fixed at construction
	size      int   // number of live elements, size ≤ Cap()
	factor    int   // growth factor for the chunk table, fixed at construction
	eq        grow.EqFunc[T]
}

// Option is a type to help initializing arrays at creation time.
type Option[T any] func(*Array[T]) error

// GrowthFactor is an option to set the factor by which the chunk table grows
// whenever the array runs out of room. Factors less than 2 are rejected.
func GrowthFactor[T any](n int) Option[T] {
	return func(a *Array[T]) error {
		if n <= 1 {
			return fmt.Errorf("%w: %d", ErrGrowthFactor, n)
		}
		a.factor = n
		return nil
	}
}

// ChunkSize is an option to set the fixed length of each chunk.
func ChunkSize[T any](n int) Option[T] {
	return func(a *Array[T]) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrChunkSize, n)
		}
		a.chunkSize = n
		return nil
	}
}

// Equality is an option to replace the equality predicate used by Member,
// Remove and Equal. The default is grow.Eq, which treats floating-point NaN
// values as equal to each other.
func Equality[T any](eq grow.EqFunc[T]) Option[T] {
	return func(a *Array[T]) error {
		a.eq = eq
		return nil
	}
}

// New creates an empty array holding a single chunk. Defaults are a chunk
// size of 4 and a growth factor of 2, unless overridden by options.
func New[T any](opts ...Option[T]) (*Array[T], error) {
	a := &Array[T]{
		chunkSize: defaultChunkSize,
		factor:    defaultGrowthFactor,
		eq:        grow.Eq[T],
	}
	for _, option := range opts {
		if err := option(a); err != nil {
			return nil, err
		}
	}
	a.chunks = [][]T{make([]T, a.chunkSize)}
	return a, nil
}

// Empty returns a fresh empty array with default options. It is the identity
// element for Concat.
func Empty[T any]() *Array[T] {
	a, _ := New[T]()
	return a
}

// --- API -------------------------------------------------------------------

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the total capacity of the chunk table. Cap() never falls below
// Len() and never shrinks.
func (a *Array[T]) Cap() int {
	return len(a.chunks) * a.chunkSize
}

// Add appends value at the end of the array, in amortized O(1). A full chunk
// table is grown by the growth factor; unlike a contiguous array no live
// element is copied on growth.
func (a *Array[T]) Add(value T) {
	if a.size == a.Cap() {
		a.grow(a.size + 1)
	}
	a.setAt(a.size, value)
	a.size++
}

// Get returns the element at index. index must be in [0, Len()), otherwise
// ErrOutOfBounds is returned.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var none T
		return none, fmt.Errorf("%w: %d with length %d", ErrOutOfBounds, index, a.size)
	}
	return a.at(index), nil
}

// Set overwrites the element at index in place, with the same bounds contract
// as Get.
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("%w: %d with length %d", ErrOutOfBounds, index, a.size)
	}
	a.setAt(index, value)
	return nil
}

// Remove deletes the first element equal to value, shifting all subsequent
// elements one position to the left, across chunk boundaries, and clearing
// the vacated slot. If no element matches, the array stays unchanged.
func (a *Array[T]) Remove(value T) {
	for i := 0; i < a.size; i++ {
		if a.eq(a.at(i), value) {
			for j := i; j < a.size-1; j++ {
				a.setAt(j, a.at(j+1))
			}
			var none T
			a.setAt(a.size-1, none)
			a.size--
			tracer().Debugf("removed element at index %d, size now %d", i, a.size)
			return
		}
	}
}

// Member reports whether the array contains an element equal to value, using
// the same equality predicate as Remove.
func (a *Array[T]) Member(value T) bool {
	for i := 0; i < a.size; i++ {
		if a.eq(a.at(i), value) {
			return true
		}
	}
	return false
}

// Reverse reverses the live elements in place.
func (a *Array[T]) Reverse() {
	for i, j := 0, a.size-1; i < j; i, j = i+1, j-1 {
		x, y := a.at(i), a.at(j)
		a.setAt(i, y)
		a.setAt(j, x)
	}
}

// FromSlice replaces the array's contents with the elements of values. The
// chunk table is rebuilt from a single chunk and grown by the growth factor
// until all elements fit.
func (a *Array[T]) FromSlice(values []T) {
	a.chunks = [][]T{make([]T, a.chunkSize)}
	a.size = 0
	a.grow(len(values))
	for i, v := range values {
		a.setAt(i, v)
	}
	a.size = len(values)
	tracer().Debugf("replaced contents with %d elements, %d chunks", a.size, len(a.chunks))
}

// Slice returns the live elements as a freshly allocated slice, in index
// order. The result never aliases the chunk table.
func (a *Array[T]) Slice() []T {
	s := make([]T, a.size)
	for i := 0; i < a.size; i++ {
		s[i] = a.at(i)
	}
	return s
}

// Filter retains exactly the elements satisfying keep, compacted toward the
// front in their original relative order, and clears the vacated trailing
// slots. keep is evaluated once per element, in index order.
func (a *Array[T]) Filter(keep func(T) bool) {
	w := 0
	for r := 0; r < a.size; r++ {
		if v := a.at(r); keep(v) {
			a.setAt(w, v)
			w++
		}
	}
	var none T
	for i := w; i < a.size; i++ {
		a.setAt(i, none)
	}
	tracer().Debugf("filter retained %d of %d elements", w, a.size)
	a.size = w
}

// Map applies f to every live element in place, in index order.
func (a *Array[T]) Map(f func(T) T) {
	for i := 0; i < a.size; i++ {
		a.setAt(i, f(a.at(i)))
	}
}

// Concat appends all of other's live elements after a's own, in place,
// growing the chunk table as needed. other is not mutated and no storage is
// shared afterwards; a.Concat(a) is legal. Concat is associative with
// Empty() as identity.
func (a *Array[T]) Concat(other *Array[T]) {
	n := other.size
	if need := a.size + n; need > a.Cap() {
		a.grow(need)
	}
	for i := 0; i < n; i++ {
		a.setAt(a.size+i, other.at(i))
	}
	a.size += n
}

// Copy returns a new array with an independently owned chunk table holding
// the same live elements. Element values are copied shallowly.
func (a *Array[T]) Copy() *Array[T] {
	b := &Array[T]{
		chunks:    make([][]T, len(a.chunks)),
		chunkSize: a.chunkSize,
		size:      a.size,
		factor:    a.factor,
		eq:        a.eq,
	}
	for i, chunk := range a.chunks {
		b.chunks[i] = make([]T, a.chunkSize)
		copy(b.chunks[i], chunk)
	}
	return b
}

// Equal reports whether a and other hold equal element sequences, compared
// with the same NaN-aware predicate used by Member and Remove. Chunk size,
// capacity and growth factor do not participate: a chunked array with chunk
// size 2 equals one with chunk size 8 when the elements agree.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil || a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !a.eq(a.at(i), other.at(i)) {
			return false
		}
	}
	return true
}

// Iter returns a lazy sequence over the live elements in index order. The
// sequence is restartable; the element count is read once when iteration
// starts, and a shrinking array stops the sequence early.
func (a *Array[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := a.size
		for i := 0; i < n && i < a.size; i++ {
			if !yield(a.at(i)) {
				return
			}
		}
	}
}

// --- Free functions --------------------------------------------------------

// Reduce folds the live elements of a from the left: the accumulator starts
// as initial and is combined with every element in index order. An empty
// array returns initial unchanged.
func Reduce[T, A any](a *Array[T], combine func(A, T) A, initial A) A {
	acc := initial
	for i := 0; i < a.size; i++ {
		acc = combine(acc, a.at(i))
	}
	return acc
}

package array

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/grow"
	"github.com/npillmayer/grow/maybe"
)

// Errors reported by constructors and index-based accessors.
var (
	ErrGrowthFactor = errors.New("growth factor must be greater than 1")
	ErrOutOfBounds  = errors.New("array index out of bounds")
)

const defaultGrowthFactor = 2

// Array is a growable array of elements of type T. It wraps a backing store
// of some capacity, of which the first Len() slots hold live elements.
//
// The zero value is not usable; create arrays with New or Empty.
type Array[T any] struct {
	store  []T // backing store; len(store) is the capacity
	size   int // number of live elements, size ≤ len(store)
	factor int // growth factor, fixed at construction
	eq     grow.EqFunc[T]
}

// Option is a type to help initializing arrays at creation time.
type Option[T any] func(*Array[T]) error

// GrowthFactor is an option to set the factor by which the capacity of the
// backing store is multiplied whenever the array runs out of room. Factors
// less than 2 are rejected.
//
// Use it like this:
//
//	arr, err := array.New[int](array.GrowthFactor[int](4))
func GrowthFactor[T any](n int) Option[T] {
	return func(a *Array[T]) error {
		if n <= 1 {
			return fmt.Errorf("%w: %d", ErrGrowthFactor, n)
		}
		a.factor = n
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

// New creates an empty array with capacity 1 and a growth factor of 2,
// unless overridden by options.
func New[T any](opts ...Option[T]) (*Array[T], error) {
	a := &Array[T]{
		store:  make([]T, 1),
		factor: defaultGrowthFactor,
		eq:     grow.Eq[T],
	}
	for _, option := range opts {
		if err := option(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Empty returns a fresh empty array with default options. It is the identity
// element for Concat: concatenating Empty() to either side of an array leaves
// its element sequence unchanged.
func Empty[T any]() *Array[T] {
	a, _ := New[T]()
	return a
}

// --- API -------------------------------------------------------------------

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the capacity of the backing store. Cap() never falls below
// Len() and never shrinks.
func (a *Array[T]) Cap() int {
	return len(a.store)
}

// Add appends value at the end of the array, in amortized O(1). A full store
// is reallocated to growth-factor times its capacity; should the
// multiplication fail to strictly increase the capacity (integer overflow),
// growth degrades to a single extra slot instead of failing.
func (a *Array[T]) Add(value T) {
	if a.size == len(a.store) {
		a.resize(grownCapacity(len(a.store), a.factor, a.size+1))
	}
	a.store[a.size] = value
	a.size++
}

// Get returns the element at index. index must be in [0, Len()), otherwise
// ErrOutOfBounds is returned.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var none T
		return none, fmt.Errorf("%w: %d with length %d", ErrOutOfBounds, index, a.size)
	}
	return a.store[index], nil
}

// Set overwrites the element at index in place, with the same bounds contract
// as Get.
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("%w: %d with length %d", ErrOutOfBounds, index, a.size)
	}
	a.store[index] = value
	return nil
}

// Remove deletes the first element equal to value, shifting all subsequent
// elements one position to the left and clearing the vacated slot. If no
// element matches, the array stays unchanged; absence is not an error.
// Equality is NaN-aware (see grow.Eq), so a stored NaN can be removed again.
func (a *Array[T]) Remove(value T) {
	for i := 0; i < a.size; i++ {
		if a.eq(a.store[i], value) {
			copy(a.store[i:a.size-1], a.store[i+1:a.size])
			var none T
			a.store[a.size-1] = none
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
		if a.eq(a.store[i], value) {
			return true
		}
	}
	return false
}

// Reverse reverses the live elements in place.
func (a *Array[T]) Reverse() {
	for i, j := 0, a.size-1; i < j; i, j = i+1, j-1 {
		a.store[i], a.store[j] = a.store[j], a.store[i]
	}
}

// FromSlice replaces the array's contents with the elements of values. The
// backing store is reallocated to the smallest capacity holding all elements
// that is reachable from 1 by repeated multiplication with the growth factor.
func (a *Array[T]) FromSlice(values []T) {
	c := grownCapacity(1, a.factor, len(values))
	a.store = make([]T, c)
	a.size = copy(a.store, values)
	tracer().Debugf("replaced contents with %d elements, capacity is %d", a.size, c)
}

// Slice returns the live elements as a freshly allocated slice, in index
// order. The result never aliases the backing store.
func (a *Array[T]) Slice() []T {
	s := make([]T, a.size)
	copy(s, a.store[:a.size])
	return s
}

// Filter retains exactly the elements satisfying keep, compacted toward the
// front in their original relative order, and clears the vacated trailing
// slots. keep is evaluated once per element, in index order.
func (a *Array[T]) Filter(keep func(T) bool) {
	w := 0
	for r := 0; r < a.size; r++ {
		if keep(a.store[r]) {
			a.store[w] = a.store[r]
			w++
		}
	}
	var none T
	for i := w; i < a.size; i++ {
		a.store[i] = none
	}
	tracer().Debugf("filter retained %d of %d elements", w, a.size)
	a.size = w
}

// Map applies f to every live element in place, in index order. f has to
// preserve the element type; for a type-changing transform use MapTo, which
// produces a new container.
func (a *Array[T]) Map(f func(T) T) {
	for i := 0; i < a.size; i++ {
		a.store[i] = f(a.store[i])
	}
}

// Concat appends all of other's live elements after a's own, in place. The
// store grows by repeated multiplication with the growth factor until the
// combined size fits; it is never reallocated to an exact fit, preserving
// amortized growth for subsequent appends. other is not mutated and no
// storage is shared afterwards. a.Concat(a) is legal and doubles a.
//
// Concat is associative and has Empty() as identity on either side, making
// arrays under concatenation a monoid.
func (a *Array[T]) Concat(other *Array[T]) {
	n := other.size
	if need := a.size + n; need > len(a.store) {
		a.resize(grownCapacity(len(a.store), a.factor, need))
	}
	copy(a.store[a.size:a.size+n], other.store[:n])
	a.size += n
}

// Copy returns a new array with an independently owned backing store holding
// the same live elements. Element values are copied shallowly.
func (a *Array[T]) Copy() *Array[T] {
	b := &Array[T]{
		store:  make([]T, len(a.store)),
		size:   a.size,
		factor: a.factor,
		eq:     a.eq,
	}
	copy(b.store, a.store[:a.size])
	return b
}

// Equal reports whether a and other hold equal element sequences, compared
// with the same NaN-aware predicate used by Member and Remove. Capacity and
// growth factor do not participate.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil || a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !a.eq(a.store[i], other.store[i]) {
			return false
		}
	}
	return true
}

// Iter returns a lazy sequence over the live elements in index order. The
// sequence is restartable: every range over it starts again at index 0.
//
// The element count is read once when iteration starts. Mutating the array
// mid-iteration is best-effort: a shrinking array stops the sequence early,
// it never reads vacated slots or out of bounds.
func (a *Array[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := a.size
		for i := 0; i < n && i < a.size; i++ {
			if !yield(a.store[i]) {
				return
			}
		}
	}
}

// Last returns the final live element, or Nothing for an empty array.
func (a *Array[T]) Last() maybe.Maybe[T] {
	if a.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(a.store[a.size-1])
}

// Find returns the first live element satisfying pred, or Nothing.
func (a *Array[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for i := 0; i < a.size; i++ {
		if pred(a.store[i]) {
			return maybe.Just(a.store[i])
		}
	}
	return maybe.Nothing[T]()
}

// --- Free functions --------------------------------------------------------

// Reduce folds the live elements of a from the left: the accumulator starts
// as initial and is combined with every element in index order. An empty
// array returns initial unchanged.
//
// Reduce is a free function because Go methods cannot introduce a type
// parameter for the accumulator.
func Reduce[T, A any](a *Array[T], combine func(A, T) A, initial A) A {
	acc := initial
	for i := 0; i < a.size; i++ {
		acc = combine(acc, a.store[i])
	}
	return acc
}

// MapTo applies f to every live element of a and collects the results in a
// new array, leaving a untouched. The result inherits a's growth factor and
// capacity.
func MapTo[T, S any](a *Array[T], f func(T) S) *Array[S] {
	b := &Array[S]{
		store:  make([]S, len(a.store)),
		size:   a.size,
		factor: a.factor,
		eq:     grow.Eq[S],
	}
	for i := 0; i < a.size; i++ {
		b.store[i] = f(a.store[i])
	}
	return b
}

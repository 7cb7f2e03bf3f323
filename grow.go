/*
Package grow provides growable in-memory array containers with configurable
growth factors, together with the equality semantics shared by all container
variants in this module.

The containers live in sub-packages: package array holds the canonical
contiguous-store variant, package chunked a segmented variant with a
fixed-size chunk table. Both are mutable, single-threaded data structures;
clients requiring concurrent access have to guard every call with external
synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grow

import (
	"math"
	"reflect"
)

// EqFunc is an equality predicate over values of type T. The container
// packages of this module accept an EqFunc at construction time to control
// membership tests, removal and container equality.
type EqFunc[T any] func(a, b T) bool

// Eq compares two values for equality, treating floating-point NaN values as
// equal to each other. This deviates from the language's comparison operator,
// under which NaN != NaN, and makes NaN usable as a container member: an
// element stored once can be found and removed again.
//
// Values of kinds other than float32 and float64 are compared with
// reflect.DeepEqual.
func Eq[T any](a, b T) bool {
	switch x := any(a).(type) {
	case float64:
		y, ok := any(b).(float64)
		if !ok {
			return false
		}
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	case float32:
		y, ok := any(b).(float32)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
		return x == y
	}
	return reflect.DeepEqual(a, b)
}

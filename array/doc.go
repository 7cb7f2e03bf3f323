/*
Package array implements a mutable growable array with a contiguous backing
store, amortized O(1) append and O(1) indexed access.

The array is parameterized by an integer growth factor, fixed at construction.
Whenever the backing store runs out of room, a store of growth-factor times
the old capacity is allocated and the live elements are copied over. Capacity
never shrinks; removal and filtering only reduce the element count.

Concatenation of arrays forms a monoid: Concat is associative and Empty() is
its identity element.

All mutating operations work in place; only Copy, Slice and Empty allocate a
new container or sequence. The array is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package array

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grow.array'.
func tracer() tracing.Trace {
	return tracing.Select("grow.array")
}

/*
Package chunked implements a growable array backed by a table of fixed-size
chunks instead of one contiguous store.

Growing the array appends chunks to the table and never copies live elements,
trading the bulk-copy resize of package array for an extra index translation
on every access: element i lives in chunk i/chunkSize at offset i%chunkSize.
Appends stay amortized O(1) and indexed access stays O(1), with a larger
constant than the contiguous variant. Removal shifts elements across chunk
boundaries and is O(n), as in the contiguous variant.

The chunk size is fixed at construction; the growth factor multiplies the
number of chunks whenever the table is full. Capacity never shrinks.

Concatenation is associative with Empty() as identity, mirroring package
array. The array is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chunked

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grow.chunked'.
func tracer() tracing.Trace {
	return tracing.Select("grow.chunked")
}

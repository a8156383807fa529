/*
Package stackvec provides a fixed-capacity sequence container.

Vectors without growth

A Vec holds between 0 and Cap() elements in a backing store whose size is
fixed at construction and never changes afterwards. It offers the usual
vector ergonomics — push, pop, insert, remove, iteration, slicing — without
ever reallocating. Callers may even supply their own backing storage (a
stack array, a pooled buffer) via Wrap, making every subsequent operation
allocation-free.

The deliberate restriction to a fixed capacity buys predictability: an
operation either fits or it reports that it does not. Push returns
ErrCapacityOverflow when the container is full, bulk appends report the
unconsumed suffix, and range operations reject out-of-range requests
without touching the container. There is no hidden growth, no heap
fallback, and no silent loss of elements on the primary insertion paths.

	Operation     |   Vec            |  Go slice + append
	--------------+------------------+-------------------
	Push          |   O(1), no alloc |   amortized O(1), may realloc
	Insert        |   O(n)           |   O(n), may realloc
	Remove        |   O(n)           |   O(n)
	SwapRemove    |   O(1)           |   O(1)

Guarded mutation

Drain removes a sub-range and yields its elements one by one; Splice
additionally refills the vacated gap from a replacement sequence. Both are
guards: they hold an exclusive back-reference into their parent Vec, hide
the affected range from all other access for their lifetime, and restore
the container in a Close method that is safe to run on every exit path,
including early abandonment. Callers are expected to write

	d, err := v.Drain(1, 3)
	if err != nil { … }
	defer d.Close()

and may then consume as much or as little of the guard as they like.

A Vec is a plain value with no internal locking. It may be shared between
goroutines exactly as far as its element type may; concurrent mutation
requires external synchronization.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stackvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

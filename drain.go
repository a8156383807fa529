package stackvec

import (
	"iter"

	"github.com/npillmayer/schuko/gtrace"
)

// Drain is a guard that removes the range [start, end) from its parent Vec
// and yields the removed elements by value, front to back or back to
// front.
//
// While a Drain is alive the parent's length is shortened to the range
// start, so no other access can observe the hole or the preserved tail.
// The guard holds an exclusive back-reference into the parent; the parent
// must not be used through any other path until Close has run.
//
// Close finalizes the guard on every exit path: remaining un-yielded
// elements are cleared, the tail is relocated down to close the gap, and
// the parent's length is restored. Callers are expected to defer it.
type Drain[T any] struct {
	vec       *Vec[T]
	front     int // next index to yield, absolute into the backing store
	back      int // one past the last un-yielded index
	tailStart int // where the preserved tail originally begins
	tailLen   int
}

// Drain removes the elements [start, end) from the Vec and returns a guard
// that yields them. An out-of-range request returns ErrIndexOutOfBounds
// and leaves the Vec unmodified.
//
// The Vec must not be accessed, except through the guard, before Close.
func (v *Vec[T]) Drain(start, end int) (*Drain[T], error) {
	if start < 0 || start > end || end > v.n {
		return nil, ErrIndexOutOfBounds
	}
	d := &Drain[T]{
		vec:       v,
		front:     start,
		back:      end,
		tailStart: end,
		tailLen:   v.n - end,
	}
	// Hide the removed range and the tail from all other access paths.
	v.n = start
	gtrace.CoreTracer.Debugf("drain of [%d,%d), preserving tail of %d", start, end, d.tailLen)
	return d, nil
}

// Next yields the frontmost remaining element. It returns false once the
// range is exhausted or the guard has been closed, and stays false
// afterwards.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.vec == nil || d.front == d.back {
		return zero, false
	}
	item := d.vec.storage[d.front]
	d.vec.storage[d.front] = zero
	d.front++
	return item, true
}

// NextBack yields the backmost remaining element.
func (d *Drain[T]) NextBack() (T, bool) {
	var zero T
	if d.vec == nil || d.front == d.back {
		return zero, false
	}
	d.back--
	item := d.vec.storage[d.back]
	d.vec.storage[d.back] = zero
	return item, true
}

// Len returns the exact count of not-yet-yielded elements.
func (d *Drain[T]) Len() int {
	return d.back - d.front
}

// AsSlice returns a read-only view of the not-yet-yielded elements.
// The view is invalidated by Next, NextBack and Close.
func (d *Drain[T]) AsSlice() []T {
	if d.vec == nil {
		return nil
	}
	return d.vec.storage[d.front:d.back]
}

// Values returns an iterator consuming the remaining elements front to
// back. Consuming the sequence does not finalize the guard; Close still
// has to run.
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Close finalizes the guard: it clears every remaining un-yielded slot,
// relocates the preserved tail down to directly follow the range start,
// clears the stale region left behind, and restores the parent's length.
//
// Close is idempotent. It must run exactly its restoration once no matter
// how iteration ended — fully consumed, partially consumed, or abandoned
// right after creation — and repeated calls are no-ops.
func (d *Drain[T]) Close() {
	if d.vec == nil {
		return
	}
	v := d.vec
	d.vec = nil
	clearSlots(v.storage[d.front:d.back])
	start := v.n // gap start; Splice may have advanced it while filling
	if d.tailLen > 0 && d.tailStart != start {
		copy(v.storage[start:start+d.tailLen], v.storage[d.tailStart:d.tailStart+d.tailLen])
	}
	n := start + d.tailLen
	// A no-tail splice may have appended past the old range end, so the
	// stale region can be empty.
	if upper := d.tailStart + d.tailLen; upper > n {
		clearSlots(v.storage[n:upper])
	}
	v.n = n
	d.front, d.back = 0, 0
	gtrace.CoreTracer.Debugf("drain closed, vector restored to length %d", n)
}

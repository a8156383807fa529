package stackvec

import "iter"

// Splice composes a Drain with a replacement sequence: it removes the
// range [start, end), yields the removed elements to the caller, and on
// Close fills the vacated gap from the replacement.
//
// Replacement elements are inserted lazily during Close, not while the
// removed elements are being iterated. Replacement elements that would
// exceed the fixed capacity are silently dropped; with a fixed-size
// backing store this truncation is documented behavior, not an error.
type Splice[T any] struct {
	drain *Drain[T]
	next  func() (T, bool)
	stop  func()
}

// Splice removes the elements [start, end) and schedules the replacement
// sequence to be inserted in their place when the guard is closed. An
// out-of-range request returns ErrIndexOutOfBounds and leaves the Vec
// unmodified.
//
// The Vec must not be accessed, except through the guard, before Close.
func (v *Vec[T]) Splice(start, end int, replacement iter.Seq[T]) (*Splice[T], error) {
	d, err := v.Drain(start, end)
	if err != nil {
		return nil, err
	}
	next, stop := iter.Pull(replacement)
	return &Splice[T]{drain: d, next: next, stop: stop}, nil
}

// Next yields the frontmost remaining removed element.
func (s *Splice[T]) Next() (T, bool) {
	var zero T
	if s.drain == nil {
		return zero, false
	}
	return s.drain.Next()
}

// NextBack yields the backmost remaining removed element.
func (s *Splice[T]) NextBack() (T, bool) {
	var zero T
	if s.drain == nil {
		return zero, false
	}
	return s.drain.NextBack()
}

// Len returns the exact count of not-yet-yielded removed elements.
func (s *Splice[T]) Len() int {
	if s.drain == nil {
		return 0
	}
	return s.drain.Len()
}

// AsSlice returns a read-only view of the not-yet-yielded removed
// elements.
func (s *Splice[T]) AsSlice() []T {
	if s.drain == nil {
		return nil
	}
	return s.drain.AsSlice()
}

// Values returns an iterator consuming the remaining removed elements.
// Close still has to run afterwards.
func (s *Splice[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := s.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Close finalizes the guard in a single gap-fill pass:
//
//  1. drop any removed elements the caller never consumed,
//  2. with no preserved tail, append the remaining replacement directly,
//     bounded by capacity,
//  3. otherwise fill the gap slot by slot from the replacement, advancing
//     the length as each slot is written,
//  4. if the gap was filled and replacement elements remain, collect them
//     — bounded by the free capacity — to learn their exact count, open
//     that much extra room by moving the tail up, and fill the new slots,
//  5. hand off to the inner Drain to restore tail position and length.
//
// Close is idempotent and releases the replacement sequence.
func (s *Splice[T]) Close() {
	d := s.drain
	if d == nil {
		return
	}
	s.drain = nil
	defer s.stop()
	for {
		if _, ok := d.Next(); !ok {
			break
		}
	}
	defer d.Close()
	v := d.vec
	assert(v != nil, "splice: inner drain closed prematurely")

	if d.tailLen == 0 {
		// Nothing to preserve beyond the range: append until full or the
		// replacement runs out; the rest is dropped with the pull iterator.
		for v.n < len(v.storage) {
			item, ok := s.next()
			if !ok {
				return
			}
			v.storage[v.n] = item
			v.n++
		}
		return
	}

	if !d.fill(s.next) {
		// Replacement exhausted before the gap was full; Drain.Close moves
		// the tail down to the current length.
		return
	}

	// The gap is full but the replacement may hold more. Go sequences
	// carry no size hint, so collect the remainder right away — bounded by
	// the free capacity, beyond which elements are dropped anyway — to get
	// an exact count before the tail moves.
	room := len(v.storage) - d.tailStart - d.tailLen
	if room <= 0 {
		return
	}
	scratch := make([]T, 0, room)
	for len(scratch) < room {
		item, ok := s.next()
		if !ok {
			break
		}
		scratch = append(scratch, item)
	}
	if len(scratch) == 0 {
		return
	}
	d.moveTail(len(scratch))
	i := 0
	filled := d.fill(func() (T, bool) {
		if i == len(scratch) {
			var zero T
			return zero, false
		}
		i++
		return scratch[i-1], true
	})
	assert(filled && i == len(scratch), "splice: exact-count fill fell short")
}

// fill writes replacement elements into the moved-out range between the
// current length and the tail start, advancing the length per slot. It
// reports whether the whole range was filled.
func (d *Drain[T]) fill(next func() (T, bool)) bool {
	v := d.vec
	for v.n < d.tailStart {
		item, ok := next()
		if !ok {
			return false
		}
		v.storage[v.n] = item
		v.n++
	}
	return true
}

// moveTail opens room for k more elements before the tail by relocating
// the tail upward. The caller guarantees the move stays within capacity.
func (d *Drain[T]) moveTail(k int) {
	v := d.vec
	assert(d.tailStart+k+d.tailLen <= len(v.storage), "splice: tail move exceeds capacity")
	copy(v.storage[d.tailStart+k:d.tailStart+k+d.tailLen], v.storage[d.tailStart:d.tailStart+d.tailLen])
	d.tailStart += k
}

package stackvec

import (
	"fmt"
	"iter"
)

// Vec is a sequence container with a fixed capacity.
//
// The backing store is sized at construction and never reallocated. A Vec
// tracks the count of live elements; elements live in the prefix
// storage[0:len], slots beyond it are never read or exposed. Every
// operation that excludes an element from the live prefix clears the
// vacated slot, so a Vec holds no hidden references.
//
// A vector created by
//
//	Vec[T]{}
//
// is a valid object with capacity 0: empty, and rejecting every insertion.
//
// Methods that take or return positions use indexes into the live prefix.
type Vec[T any] struct {
	storage []T // backing store; len(storage) is the fixed capacity
	n       int // live elements occupy storage[0:n]
}

// New creates an empty Vec with the given capacity.
//
// The backing store is allocated here, once; no later operation allocates.
func New[T any](capacity int) Vec[T] {
	assert(capacity >= 0, "vector capacity must not be negative")
	return Vec[T]{storage: make([]T, capacity)}
}

// Wrap creates an empty Vec over caller-supplied backing storage.
//
// The capacity is len(storage). Pre-existing slice contents are treated as
// moved out: the Vec will neither read nor clear them until its own
// elements occupy their slots. Wrapping a stack array makes the whole
// container allocation-free:
//
//	var buf [8]item
//	v := stackvec.Wrap(buf[:])
func Wrap[T any](storage []T) Vec[T] {
	return Vec[T]{storage: storage[:len(storage)]}
}

// From creates a full Vec, adopting the slice as backing storage.
//
// Capacity and length are both len(storage). The slice is consumed: callers
// must not use it afterwards, since the Vec mutates it in place.
func From[T any](storage []T) Vec[T] {
	return Vec[T]{storage: storage[:len(storage)], n: len(storage)}
}

// FromLen creates a Vec over the slice with an explicit length.
//
// The length is clamped to [0, len(storage)]. Slice elements beyond the
// length remain physically present but are not owned by the Vec: they are
// never read, exposed, or cleared on behalf of the container. They stay
// the caller's responsibility until container elements overwrite them.
func FromLen[T any](storage []T, n int) Vec[T] {
	if n < 0 {
		n = 0
	}
	if n > len(storage) {
		n = len(storage)
	}
	return Vec[T]{storage: storage[:len(storage)], n: n}
}

// Len returns the number of live elements.
func (v Vec[T]) Len() int {
	return v.n
}

// Cap returns the fixed capacity.
func (v Vec[T]) Cap() int {
	return len(v.storage)
}

// Remaining returns the number of free slots.
func (v Vec[T]) Remaining() int {
	return len(v.storage) - v.n
}

// IsEmpty reports whether the Vec has no elements.
func (v Vec[T]) IsEmpty() bool {
	return v.n == 0
}

// AsSlice returns a view over the live prefix.
//
// The view aliases the backing store: writing through it mutates the Vec.
// It is invalidated by any operation that changes the length.
func (v Vec[T]) AsSlice() []T {
	return v.storage[:v.n]
}

// Backing returns the whole backing store, including slots beyond the live
// prefix. For advanced use only: the Vec gives no guarantees about the
// contents of the free region, and writes through the returned slice
// bypass all container invariants.
func (v Vec[T]) Backing() []T {
	return v.storage
}

// Get returns the element at index i, or false if i is out of range.
func (v Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, false
	}
	return v.storage[i], true
}

// At returns the element at index i, panicking when i is out of range,
// matching the indexing contract of Go slices.
func (v Vec[T]) At(i int) T {
	return v.AsSlice()[i]
}

// Set replaces the element at index i.
func (v *Vec[T]) Set(i int, item T) error {
	if i < 0 || i >= v.n {
		return ErrIndexOutOfBounds
	}
	v.storage[i] = item
	return nil
}

// Push appends an element.
//
// When the Vec is full it returns ErrCapacityOverflow and leaves the
// container untouched; the caller still holds its copy of the element.
func (v *Vec[T]) Push(item T) error {
	if v.n == len(v.storage) {
		return ErrCapacityOverflow
	}
	v.storage[v.n] = item
	v.n++
	return nil
}

// MustPush appends an element and panics on overflow.
//
// It is the clearly-marked fatal variant of Push for callers that have
// sized their capacity by construction. The two policies are never mixed:
// every other insertion path reports overflow recoverably.
func (v *Vec[T]) MustPush(item T) {
	assert(v.n < len(v.storage), "stackvec: capacity exhausted")
	v.storage[v.n] = item
	v.n++
}

// Pop removes and returns the last element, or false when empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	item := v.storage[v.n]
	v.storage[v.n] = zero
	return item, true
}

// Insert places an element at index i, shifting [i, Len) up by one slot.
//
// It returns ErrIndexOutOfBounds when i > Len and ErrCapacityOverflow when
// the Vec is full; in both cases the container is untouched.
func (v *Vec[T]) Insert(i int, item T) error {
	if i < 0 || i > v.n {
		return ErrIndexOutOfBounds
	}
	if v.n == len(v.storage) {
		return ErrCapacityOverflow
	}
	copy(v.storage[i+1:v.n+1], v.storage[i:v.n])
	v.storage[i] = item
	v.n++
	return nil
}

// Remove takes out the element at index i, shifting [i+1, Len) down by one.
func (v *Vec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, ErrIndexOutOfBounds
	}
	item := v.storage[i]
	copy(v.storage[i:v.n-1], v.storage[i+1:v.n])
	v.n--
	v.storage[v.n] = zero
	return item, nil
}

// SwapRemove takes out the element at index i by overwriting its slot with
// the last element. O(1), does not preserve element order.
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, ErrIndexOutOfBounds
	}
	item := v.storage[i]
	v.n--
	v.storage[i] = v.storage[v.n]
	v.storage[v.n] = zero
	return item, nil
}

// Truncate shortens the Vec to k elements, clearing the excess slots.
// A no-op when k >= Len.
func (v *Vec[T]) Truncate(k int) {
	if k < 0 {
		k = 0
	}
	if k >= v.n {
		return
	}
	clearSlots(v.storage[k:v.n])
	v.n = k
}

// Clear removes all elements.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Retain keeps exactly the elements for which keep returns true,
// preserving their relative order. The predicate receives a pointer and
// may mutate the element in place. Rejected elements are cleared once,
// in a single left-to-right compaction pass.
func (v *Vec[T]) Retain(keep func(*T) bool) {
	del := 0
	for i := 0; i < v.n; i++ {
		if !keep(&v.storage[i]) {
			del++
		} else if del > 0 {
			v.storage[i-del] = v.storage[i]
		}
	}
	if del > 0 {
		v.Truncate(v.n - del)
	}
}

// Extend appends as many elements of items as remaining capacity allows
// and returns the unconsumed suffix, or nil when everything fit. Partial
// application is intentional and observable, not an error.
func (v *Vec[T]) Extend(items []T) []T {
	k := len(v.storage) - v.n
	if k > len(items) {
		k = len(items)
	}
	copy(v.storage[v.n:v.n+k], items[:k])
	v.n += k
	if k < len(items) {
		return items[k:]
	}
	return nil
}

// ExtendSeq appends elements pulled from seq until the Vec is full or the
// sequence ends, and returns the number appended. Elements beyond the free
// capacity are not consumed.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) int {
	if v.n == len(v.storage) {
		return 0
	}
	count := 0
	for item := range seq {
		v.storage[v.n] = item
		v.n++
		count++
		if v.n == len(v.storage) {
			break
		}
	}
	return count
}

// SplitOff relocates the elements [at, Len) into a new Vec of the same
// capacity and shrinks the receiver to [0, at). The vacated slots in the
// receiver are cleared.
func (v *Vec[T]) SplitOff(at int) (Vec[T], error) {
	if at < 0 || at > v.n {
		return Vec[T]{}, ErrIndexOutOfBounds
	}
	other := New[T](len(v.storage))
	other.n = copy(other.storage, v.storage[at:v.n])
	clearSlots(v.storage[at:v.n])
	v.n = at
	return other, nil
}

// Clone returns a Vec with the same capacity and an element-wise copy of
// the live prefix.
func (v Vec[T]) Clone() Vec[T] {
	other := New[T](len(v.storage))
	other.n = copy(other.storage, v.storage[:v.n])
	return other
}

// Values returns an iterator over the live prefix in index order.
func (v Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.storage[i]) {
				return
			}
		}
	}
}

// Each visits all elements in index order.
//
// The callback receives each element and its index. Iteration stops at the
// first callback error and returns that error to the caller.
func (v Vec[T]) Each(f func(i int, item T) error) error {
	for i := 0; i < v.n; i++ {
		if err := f(i, v.storage[i]); err != nil {
			return err
		}
	}
	return nil
}

// String formats the live prefix like a Go slice.
func (v Vec[T]) String() string {
	return fmt.Sprintf("%v", v.AsSlice())
}

// clearSlots zeroes a span of the backing store so excluded elements do
// not keep references alive.
func clearSlots[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}

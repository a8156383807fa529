package stackvec

// Of creates a Vec from an explicit element list. Capacity and length are
// both the number of elements given.
func Of[T any](items ...T) Vec[T] {
	return From(items)
}

// Repeat creates a Vec of the given capacity holding item repeated count
// times, clamped to the capacity.
func Repeat[T any](capacity int, item T, count int) Vec[T] {
	v := New[T](capacity)
	if count < 0 {
		count = 0
	}
	if count > capacity {
		count = capacity
	}
	for i := 0; i < count; i++ {
		v.storage[i] = item
	}
	v.n = count
	return v
}

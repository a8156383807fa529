package stackvec

import (
	"cmp"
	"slices"
)

// DedupFunc collapses consecutive runs of equivalent elements to the first
// element of each run, preserving order of first occurrence. same receives
// pointers to the candidate element and to the last retained element and
// may mutate either.
func (v *Vec[T]) DedupFunc(same func(a, b *T) bool) {
	if v.n < 2 {
		return
	}
	w := 1
	for r := 1; r < v.n; r++ {
		if !same(&v.storage[r], &v.storage[w-1]) {
			if w != r {
				v.storage[w] = v.storage[r]
			}
			w++
		}
	}
	v.Truncate(w)
}

// Dedup collapses consecutive runs of equal elements.
//
// Methods cannot introduce additional type constraints, so the comparable
// variants live as package functions.
func Dedup[T comparable](v *Vec[T]) {
	v.DedupFunc(func(a, b *T) bool { return *a == *b })
}

// DedupKey collapses consecutive runs of elements mapping to the same key.
func DedupKey[T any, K comparable](v *Vec[T], key func(*T) K) {
	v.DedupFunc(func(a, b *T) bool { return key(a) == key(b) })
}

// Equal reports element-wise equality of the live prefixes.
func Equal[T comparable](a, b Vec[T]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

// Compare orders two vectors lexicographically over their live prefixes.
func Compare[T cmp.Ordered](a, b Vec[T]) int {
	return slices.Compare(a.AsSlice(), b.AsSlice())
}

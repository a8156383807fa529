package stackvec

import (
	"github.com/go-json-experiment/json"
)

// MarshalJSON encodes the live prefix as a JSON array. Slots beyond the
// length are never serialized.
func (v Vec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.AsSlice())
}

// UnmarshalJSON decodes a JSON array into the Vec.
//
// A Vec with capacity 0 (the zero value) adopts the decoded elements and
// sizes its capacity to fit. A Vec with capacity is cleared and refilled;
// when the payload holds more elements than the capacity the Vec keeps the
// prefix that fits and ErrCapacityOverflow is returned.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if v.Cap() == 0 {
		*v = From(items)
		return nil
	}
	v.Clear()
	if rest := v.Extend(items); len(rest) > 0 {
		return ErrCapacityOverflow
	}
	return nil
}

// Package optional distinguishes "field absent" from "field set to its
// zero value" in partial updates.
package optional

import (
	"bytes"
	"encoding/json"
)

type Value[T any] struct {
	value T
	set   bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func (v Value[T]) IsSet() bool {
	return v.set
}

// Get returns the wrapped value and whether it was provided.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// UnmarshalJSON marks the field as present. An explicit null is treated as absent.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value[T]{}
		return nil
	}
	var inner T
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	*v = Of(inner)
	return nil
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

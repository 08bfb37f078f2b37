package utils

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNullValue is returned when an explicit null targets a field that cannot hold one.
var ErrNullValue = errors.New("cannot be null")

// Optional is a request field that remembers whether it was present in the
// JSON payload. A missing key leaves Set false; an explicit null sets both
// Set and Null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ApplyTo overwrites dst when the field was provided. Null is rejected.
func (o Optional[T]) ApplyTo(dst *T) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return ErrNullValue
	}
	*dst = o.Value
	return nil
}

// ApplyToNullable overwrites dst when the field was provided; null clears it.
func (o Optional[T]) ApplyToNullable(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

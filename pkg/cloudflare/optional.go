package cloudflare

import "encoding/json"

// Optional distinguishes "field not supplied" from "field explicitly set to
// a zero value" in partial-update request bodies. Declare request fields as
// Optional[T] with the `omitzero` JSON option: unset fields are omitted
// from the wire entirely, while Set(zero) still serializes the zero value.
type Optional[T any] struct {
	value T
	set   bool
}

// Set returns an Optional carrying the given value.
func Set[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// Unset returns an Optional with no value.
func Unset[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero implements the encoding/json omitzero contract: an unset Optional
// is omitted from marshaled output.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// Value returns the carried value and whether it was set.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.set
}

// MustValue returns the carried value, or the zero value when unset.
func (o Optional[T]) MustValue() T {
	return o.value
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler. A field present in the input,
// even as an explicit null, marks the Optional as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	err := json.Unmarshal(data, &o.value)
	if err != nil {
		return err
	}

	o.set = true

	return nil
}

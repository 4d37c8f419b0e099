package types

// fieldState is the tri-state of a Field.
type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldNull
	fieldValue
)

// Field is an optional argument for partial updates. It distinguishes a
// field the caller did not supply (Unset, the zero value) from one
// explicitly set to null and from one set to a value.
//
//	params.UpdateSlice{
//	    DatasetID:   "ds",
//	    SliceID:     "sl",
//	    Name:        types.Set("renamed"),   // sent
//	    Description: types.Null[string](),   // sent as null
//	    // IsPinned unset: omitted from the payload
//	}
type Field[T any] struct {
	state fieldState
	value T
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{state: fieldValue, value: v}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{state: fieldNull}
}

// Unset returns a Field that was not supplied. Equivalent to the zero value.
func Unset[T any]() Field[T] {
	return Field[T]{}
}

// FromPtr returns Null for a nil pointer and Set(*p) otherwise.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Null[T]()
	}
	return Set(*p)
}

// IsSet reports whether the caller supplied the field, as null or a value.
func (f Field[T]) IsSet() bool {
	return f.state != fieldUnset
}

// IsNull reports whether the field was explicitly set to null.
func (f Field[T]) IsNull() bool {
	return f.state == fieldNull
}

// Get returns the value and true when the field holds a value.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldValue
}

// Wire returns the payload value: nil for null, the value otherwise.
// It must only be called when IsSet is true.
func (f Field[T]) Wire() any {
	if f.state == fieldNull {
		return nil
	}
	return f.value
}

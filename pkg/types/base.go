package types

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"
)

// JSON is an opaque free-form JSON value used for meta, parameters and
// report contents. The bytes are kept compacted and in their original key
// order; a nil JSON is absent and is omitted by omitempty.
type JSON []byte

// NewJSON marshals v into a JSON value.
func NewJSON(v any) (JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return JSON(b), nil
}

// MustJSON is like NewJSON but panics on error. Intended for literals.
func MustJSON(v any) JSON {
	j, err := NewJSON(v)
	if err != nil {
		panic(err)
	}
	return j
}

// RawJSON wraps already encoded JSON. The input is compacted.
func RawJSON(b []byte) (JSON, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return nil, err
	}
	return JSON(buf.Bytes()), nil
}

// IsNull returns true for absent values and for JSON null.
func (j JSON) IsNull() bool {
	return len(j) == 0 || string(j) == "null"
}

// Decode unmarshals the value into v.
func (j JSON) Decode(v any) error {
	if j.IsNull() {
		return nil
	}
	return json.Unmarshal(j, v)
}

// Value decodes the value into a generic tree.
func (j JSON) Value() (any, error) {
	var v any
	err := j.Decode(&v)
	return v, err
}

// Equal compares two values structurally, ignoring whitespace and key order.
func (j JSON) Equal(other JSON) bool {
	if j.IsNull() || other.IsNull() {
		return j.IsNull() && other.IsNull()
	}
	a, err := j.Value()
	if err != nil {
		return false
	}
	b, err := other.Value()
	if err != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// String returns the encoded value.
func (j JSON) String() string {
	if len(j) == 0 {
		return "null"
	}
	return string(j)
}

// MarshalJSON implements json.Marshaler.
func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves the value nil.
func (j *JSON) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*j = nil
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*j = JSON(buf.Bytes())
	return nil
}

// Time is a custom time type that handles JSON marshaling/unmarshaling.
// When the time is zero, it marshals to JSON null.
// Use *Time for true omitempty behavior.
type Time struct {
	time.Time
}

// IsZero returns true if the time is the zero value.
func (t Time) IsZero() bool {
	return t.Time.IsZero()
}

// MarshalJSON implements json.Marshaler.
// Zero times are marshaled as JSON null.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Try parsing as a number (Unix timestamp)
		var ts float64
		if err := json.Unmarshal(data, &ts); err != nil {
			return err
		}
		t.Time = time.Unix(int64(ts), int64((ts-float64(int64(ts)))*1e9))
		return nil
	}
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05.000000", s)
		if err != nil {
			parsed, err = time.Parse("2006-01-02T15:04:05", s)
			if err != nil {
				return err
			}
		}
	}
	t.Time = parsed
	return nil
}

// TimePtr returns a pointer to a Time value.
func TimePtr(t time.Time) *Time {
	return &Time{Time: t}
}

// Audit holds the bookkeeping fields that only the server populates.
type Audit struct {
	CreatedAt *Time  `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt *Time  `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

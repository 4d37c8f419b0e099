package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DataMetaFromMap converts a flat key/value map into typed metadata entries,
// sorted by key. Kinds are inferred from the runtime type:
//
//	bool                  -> BOOLEAN
//	integers, floats      -> NUMBER
//	time.Time, *time.Time -> DATETIME (RFC 3339)
//	string                -> STRING
//	anything else         -> ANNOTATION
func DataMetaFromMap(m map[string]any) ([]DataMeta, error) {
	if len(m) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DataMeta, 0, len(keys))
	for _, k := range keys {
		kind, value := InferMetaType(m[k])
		raw, err := NewJSON(value)
		if err != nil {
			return nil, fmt.Errorf("meta %q: %w", k, err)
		}
		out = append(out, DataMeta{Key: k, Type: kind, Value: raw})
	}
	return out, nil
}

// InferMetaType returns the metadata kind for v and the value to encode.
// bool is checked first so it is never classified as a number.
func InferMetaType(v any) (DataMetaType, any) {
	switch x := v.(type) {
	case bool:
		return DataMetaTypeBoolean, x
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return DataMetaTypeNumber, x
	case time.Time:
		return DataMetaTypeDatetime, x.Format(time.RFC3339)
	case *time.Time:
		if x == nil {
			return DataMetaTypeAnnotation, nil
		}
		return DataMetaTypeDatetime, x.Format(time.RFC3339)
	case string:
		return DataMetaTypeString, x
	default:
		return DataMetaTypeAnnotation, x
	}
}

// MetaMap converts typed metadata back into a flat map. DATETIME values are
// parsed into time.Time; other values decode into their JSON form.
func MetaMap(meta []DataMeta) (map[string]any, error) {
	out := make(map[string]any, len(meta))
	for _, m := range meta {
		v, err := m.Value.Value()
		if err != nil {
			return nil, fmt.Errorf("meta %q: %w", m.Key, err)
		}
		if s, ok := v.(string); ok && m.Type == DataMetaTypeDatetime {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				v = t
			}
		}
		out[m.Key] = v
	}
	return out, nil
}

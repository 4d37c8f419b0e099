// Package params builds the GraphQL variables for every operation.
//
// Each operation has a struct whose Variables method validates required
// arguments and returns the payload keyed by wire (camelCase) names.
// Validation failures are *errors.BadParameterError and happen before
// any payload is built.
package params

import (
	"encoding/json"
	"fmt"

	"github.com/superb-ai/onprem-go/pkg/config"
	sdkerrors "github.com/superb-ai/onprem-go/pkg/errors"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// Variables is a GraphQL variables payload.
type Variables = map[string]any

// Builder is implemented by the parameters of every operation.
type Builder interface {
	Variables() (Variables, error)
}

// enum is satisfied by the closed string enums in pkg/types.
type enum interface {
	~string
	Valid() bool
}

// required adds key=value, failing when value is empty.
func required(v Variables, key, value string) error {
	if value == "" {
		return sdkerrors.Required(key)
	}
	v[key] = value
	return nil
}

// requiredAll checks several required identifiers in order.
func requiredAll(v Variables, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := required(v, pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// optional adds key=value when value is non-empty.
func optional(v Variables, key, value string) {
	if value != "" {
		v[key] = value
	}
}

// optionalPtr adds key=*p when p is non-nil.
func optionalPtr[T any](v Variables, key string, p *T) {
	if p != nil {
		v[key] = *p
	}
}

// optionalJSON adds key=j when j is present.
func optionalJSON(v Variables, key string, j types.JSON) {
	if len(j) > 0 {
		v[key] = j
	}
}

// field adds a tri-state field: Unset is omitted, Null is sent as null.
func field[T any](v Variables, key string, f types.Field[T]) {
	if f.IsSet() {
		v[key] = f.Wire()
	}
}

// enumField adds a tri-state enum field after validating its value.
func enumField[E enum](v Variables, key string, f types.Field[E]) error {
	if !f.IsSet() {
		return nil
	}
	if e, ok := f.Get(); ok {
		if !e.Valid() {
			return sdkerrors.NewBadParameterError(key, fmt.Sprintf("unknown value %q", string(e)))
		}
		v[key] = string(e)
		return nil
	}
	v[key] = nil
	return nil
}

// requiredEnum adds a validated, non-empty enum value.
func requiredEnum[E enum](v Variables, key string, e E) error {
	if e == "" {
		return sdkerrors.Required(key)
	}
	if !e.Valid() {
		return sdkerrors.NewBadParameterError(key, fmt.Sprintf("unknown value %q", string(e)))
	}
	v[key] = string(e)
	return nil
}

// page adds cursor and length, applying the default and bounds.
func page(v Variables, cursor string, length, maxLength int) error {
	if length == 0 {
		length = config.DefaultPageLength
	}
	if length < config.MinPageLength || length > maxLength {
		return sdkerrors.NewBadParameterError("length",
			fmt.Sprintf("must be between %d and %d, got %d", config.MinPageLength, maxLength, length))
	}
	v["length"] = length
	optional(v, "cursor", cursor)
	return nil
}

// wire encodes a filter or order-by structure into its wire form. Enum
// values inside it are validated by their MarshalJSON.
func wire(v Variables, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		if ve, ok := sdkerrors.AsValidationError(err); ok {
			return sdkerrors.NewBadParameterError(key, ve.Error())
		}
		return sdkerrors.NewBadParameterError(key, err.Error())
	}
	v[key] = json.RawMessage(b)
	return nil
}

// orderBy validates and adds an OrderBy.
func orderBy[F enum](v Variables, o *types.OrderBy[F]) error {
	if o == nil {
		return nil
	}
	if !o.Field.Valid() {
		return sdkerrors.NewBadParameterError("orderBy.field", fmt.Sprintf("unknown value %q", string(o.Field)))
	}
	if !o.Direction.Valid() {
		return sdkerrors.NewBadParameterError("orderBy.direction", fmt.Sprintf("unknown value %q", string(o.Direction)))
	}
	v["orderBy"] = map[string]any{"field": string(o.Field), "direction": string(o.Direction)}
	return nil
}

// idOrName adds idKey=id when id is set, otherwise nameKey=name. At least
// one must be given; id wins when both are.
func idOrName(v Variables, idKey, id, nameKey, name string) error {
	switch {
	case id != "":
		v[idKey] = id
	case name != "":
		v[nameKey] = name
	default:
		return sdkerrors.NewBadParameterError(idKey, fmt.Sprintf("either %s or %s is required", idKey, nameKey))
	}
	return nil
}

// contentRef is the reference-by-id form of a content.
func contentRef(c *types.Content) any {
	if c == nil {
		return nil
	}
	return map[string]any{"id": c.ID}
}

// metaList is the embedded form of typed metadata.
func metaList(meta []types.DataMeta) ([]any, error) {
	if meta == nil {
		return nil, nil
	}
	out := make([]any, 0, len(meta))
	for _, m := range meta {
		if m.Key == "" {
			return nil, sdkerrors.Required("meta.key")
		}
		if !m.Type.Valid() {
			return nil, sdkerrors.NewBadParameterError("meta.type", fmt.Sprintf("unknown value %q", string(m.Type)))
		}
		out = append(out, map[string]any{
			"key":   m.Key,
			"type":  string(m.Type),
			"value": m.Value,
		})
	}
	return out, nil
}

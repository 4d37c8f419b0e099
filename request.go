package onprem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	pkgerrors "github.com/superb-ai/onprem-go/pkg/errors"
	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/transport"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// Resource names used in not-found errors.
const (
	resourceDataset       = "dataset"
	resourceData          = "data"
	resourceSlice         = "slice"
	resourceModel         = "model"
	resourcePredictionSet = "prediction set"
	resourceDiagnosis     = "diagnosis"
	resourceReport        = "analytics report"
	resourceContent       = "content"
)

// call validates p, then runs op. Parameter errors return before the
// transport is touched.
func call[P params.Builder](ctx context.Context, c *Client, op queries.Operation[P], resource string, p P) (json.RawMessage, error) {
	vars, err := op.Variables(p)
	if err != nil {
		return nil, err
	}
	return c.exec.Execute(ctx, &transport.Request{
		Name:      op.Name,
		Resource:  resource,
		Field:     op.Field,
		Document:  op.Document,
		Variables: vars,
	})
}

// one runs op and decodes a single entity. A null payload is a
// *NotFoundError, never a zero entity.
func one[T any, P params.Builder](ctx context.Context, c *Client, op queries.Operation[P], resource string, p P) (*T, error) {
	raw, err := call(ctx, c, op, resource, p)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, pkgerrors.NewNotFoundError(resource, "")
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, decodeError(op.Name, err)
	}
	return &out, nil
}

// page runs a list op and decodes its items, cursor and count.
func page[T any, P params.Builder](ctx context.Context, c *Client, op queries.Operation[P], resource string, p P) (*types.Page[T], error) {
	raw, err := call(ctx, c, op, resource, p)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, &pkgerrors.TransportError{Op: op.Name, Err: pkgerrors.ErrEmptyResponse}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeError(op.Name, err)
	}
	var meta struct {
		Next       *string `json:"next"`
		TotalCount int     `json:"totalCount"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, decodeError(op.Name, err)
	}

	out := &types.Page[T]{TotalCount: meta.TotalCount, Items: []T{}}
	if meta.Next != nil {
		out.Next = *meta.Next
	}
	if items, ok := fields[op.Items]; ok && !isNull(items) {
		if err := json.Unmarshal(items, &out.Items); err != nil {
			return nil, decodeError(op.Name, err)
		}
	}
	c.logDebug("onprem: page fetched", "operation", op.Name, "items", len(out.Items), "hasMore", out.HasMore())
	return out, nil
}

// deleted runs a delete op and decodes its boolean result.
func deleted[P params.Builder](ctx context.Context, c *Client, op queries.Operation[P], resource string, p P) (bool, error) {
	raw, err := call(ctx, c, op, resource, p)
	if err != nil {
		return false, err
	}
	if isNull(raw) {
		return false, pkgerrors.NewNotFoundError(resource, "")
	}
	var ok bool
	if err := json.Unmarshal(raw, &ok); err != nil {
		return false, decodeError(op.Name, err)
	}
	return ok, nil
}

// scalar runs op and decodes a non-null scalar such as a URL.
func scalar[T any, P params.Builder](ctx context.Context, c *Client, op queries.Operation[P], resource string, p P) (T, error) {
	var out T
	raw, err := call(ctx, c, op, resource, p)
	if err != nil {
		return out, err
	}
	if isNull(raw) {
		return out, &pkgerrors.TransportError{Op: op.Name, Err: pkgerrors.ErrEmptyResponse}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, decodeError(op.Name, err)
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeError wraps a response decoding failure. Enum violations keep their
// *ValidationError in the chain.
func decodeError(op string, err error) error {
	return &pkgerrors.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
}

// All collects every page of a list call, passing each page's cursor to
// the next call until the cursor is empty.
//
// Example:
//
//	slices, err := onprem.All(ctx, func(ctx context.Context, cursor string) (*types.Page[onprem.Slice], error) {
//	    return client.Slices().List(ctx, params.ListSlices{DatasetID: id, Cursor: cursor, Length: 50})
//	})
func All[T any](ctx context.Context, list func(ctx context.Context, cursor string) (*types.Page[T], error)) ([]T, error) {
	var out []T
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p, err := list(ctx, cursor)
		if err != nil {
			return out, err
		}
		out = append(out, p.Items...)
		if !p.HasMore() {
			return out, nil
		}
		if p.Next == cursor {
			return out, fmt.Errorf("onprem: server repeated cursor %q", cursor)
		}
		cursor = p.Next
	}
}

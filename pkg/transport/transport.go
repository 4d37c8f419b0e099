// Package transport carries GraphQL operations and blob transfers over HTTP.
//
// Executor posts one GraphQL operation, unwraps the response envelope down to
// the value of its single top-level field and classifies failures into the
// pkg/errors taxonomy. BlobStore moves raw bytes to and from presigned URLs.
// Both are interfaces so callers can substitute fakes in tests.
package transport

import (
	"context"
	"encoding/json"
)

// Request is one GraphQL operation.
type Request struct {
	// Name is the logical operation name used in logs and metrics.
	Name string
	// Resource names the entity kind for not-found errors.
	Resource string
	// Field is the top-level response field to unwrap.
	Field string
	// Document is the GraphQL query or mutation.
	Document string
	// Variables are the operation variables, keyed by wire name.
	Variables map[string]any
}

// Executor runs GraphQL operations.
type Executor interface {
	// Execute returns the raw JSON of req.Field, which may be the literal
	// null.
	Execute(ctx context.Context, req *Request) (json.RawMessage, error)
}

// BlobStore transfers content bytes through presigned URLs.
type BlobStore interface {
	Put(ctx context.Context, url string, body []byte, contentType string) error
	Get(ctx context.Context, url string) ([]byte, error)
}

package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// SlicesClient handles slice operations.
type SlicesClient struct {
	client *Client
}

// Get retrieves a slice by id or, when SliceID is empty, by name.
func (c *SlicesClient) Get(ctx context.Context, p params.GetSlice) (*Slice, error) {
	return one[Slice](ctx, c.client, queries.GetSlice, resourceSlice, p)
}

// List retrieves one page of the slices of a dataset.
func (c *SlicesClient) List(ctx context.Context, p params.ListSlices) (*types.Page[Slice], error) {
	return page[Slice](ctx, c.client, queries.ListSlices, resourceSlice, p)
}

// Create creates a slice.
func (c *SlicesClient) Create(ctx context.Context, p params.CreateSlice) (*Slice, error) {
	return one[Slice](ctx, c.client, queries.CreateSlice, resourceSlice, p)
}

// Update changes the supplied fields of a slice.
func (c *SlicesClient) Update(ctx context.Context, p params.UpdateSlice) (*Slice, error) {
	return one[Slice](ctx, c.client, queries.UpdateSlice, resourceSlice, p)
}

// Delete deletes a slice. Its data items are kept.
func (c *SlicesClient) Delete(ctx context.Context, p params.DeleteSlice) (bool, error) {
	return deleted(ctx, c.client, queries.DeleteSlice, resourceSlice, p)
}

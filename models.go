package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// ModelsClient handles model operations.
type ModelsClient struct {
	client *Client
}

// Get retrieves a model by id or, when ModelID is empty, by name.
func (c *ModelsClient) Get(ctx context.Context, p params.GetModel) (*Model, error) {
	return one[Model](ctx, c.client, queries.GetModel, resourceModel, p)
}

// List retrieves one page of the models of a dataset.
func (c *ModelsClient) List(ctx context.Context, p params.ListModels) (*types.Page[Model], error) {
	return page[Model](ctx, c.client, queries.ListModels, resourceModel, p)
}

// Create registers a model.
func (c *ModelsClient) Create(ctx context.Context, p params.CreateModel) (*Model, error) {
	return one[Model](ctx, c.client, queries.CreateModel, resourceModel, p)
}

// Update changes the supplied fields of a model.
func (c *ModelsClient) Update(ctx context.Context, p params.UpdateModel) (*Model, error) {
	return one[Model](ctx, c.client, queries.UpdateModel, resourceModel, p)
}

// Delete deletes a model.
func (c *ModelsClient) Delete(ctx context.Context, p params.ModelRef) (bool, error) {
	return deleted(ctx, c.client, queries.DeleteModel, resourceModel, p)
}

// Pin marks a model as pinned.
func (c *ModelsClient) Pin(ctx context.Context, p params.ModelRef) (*Model, error) {
	return one[Model](ctx, c.client, queries.PinModel, resourceModel, p)
}

// Unpin clears the pinned mark of a model.
func (c *ModelsClient) Unpin(ctx context.Context, p params.ModelRef) (*Model, error) {
	return one[Model](ctx, c.client, queries.UnpinModel, resourceModel, p)
}

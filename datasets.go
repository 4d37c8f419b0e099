package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// DatasetsClient handles dataset operations.
type DatasetsClient struct {
	client *Client
}

// Get retrieves a dataset by id or, when DatasetID is empty, by name.
func (c *DatasetsClient) Get(ctx context.Context, p params.GetDataset) (*Dataset, error) {
	return one[Dataset](ctx, c.client, queries.GetDataset, resourceDataset, p)
}

// List retrieves one page of datasets.
func (c *DatasetsClient) List(ctx context.Context, p params.ListDatasets) (*types.Page[Dataset], error) {
	return page[Dataset](ctx, c.client, queries.ListDatasets, resourceDataset, p)
}

// Create creates a dataset and returns it as stored by the server.
func (c *DatasetsClient) Create(ctx context.Context, p params.CreateDataset) (*Dataset, error) {
	return one[Dataset](ctx, c.client, queries.CreateDataset, resourceDataset, p)
}

// Update changes the supplied fields of a dataset.
func (c *DatasetsClient) Update(ctx context.Context, p params.UpdateDataset) (*Dataset, error) {
	return one[Dataset](ctx, c.client, queries.UpdateDataset, resourceDataset, p)
}

// Delete deletes a dataset.
func (c *DatasetsClient) Delete(ctx context.Context, p params.DeleteDataset) (bool, error) {
	return deleted(ctx, c.client, queries.DeleteDataset, resourceDataset, p)
}

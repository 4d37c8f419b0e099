package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// PredictionsClient handles prediction set operations.
type PredictionsClient struct {
	client *Client
}

// ListSets retrieves one page of the prediction sets of a dataset.
func (c *PredictionsClient) ListSets(ctx context.Context, p params.ListPredictionSets) (*types.Page[PredictionSet], error) {
	return page[PredictionSet](ctx, c.client, queries.ListPredictionSets, resourcePredictionSet, p)
}

// GetSet retrieves a prediction set.
func (c *PredictionsClient) GetSet(ctx context.Context, p params.PredictionSetRef) (*PredictionSet, error) {
	return one[PredictionSet](ctx, c.client, queries.GetPredictionSet, resourcePredictionSet, p)
}

// DeleteSet deletes a prediction set and its predictions.
func (c *PredictionsClient) DeleteSet(ctx context.Context, p params.PredictionSetRef) (bool, error) {
	return deleted(ctx, c.client, queries.DeletePredictionSet, resourcePredictionSet, p)
}

// DeleteFromData removes the prediction of one set from one data item.
func (c *PredictionsClient) DeleteFromData(ctx context.Context, p params.DeletePredictionFromData) (bool, error) {
	return deleted(ctx, c.client, queries.DeletePredictionFromData, resourceData, p)
}

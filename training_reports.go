package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
)

// TrainingReportsClient manages the training report of a model. Every
// operation returns the owning model.
type TrainingReportsClient struct {
	client *Client
}

// Create attaches a training report to a model.
func (c *TrainingReportsClient) Create(ctx context.Context, p params.CreateTrainingReport) (*Model, error) {
	return one[Model](ctx, c.client, queries.CreateTrainingReport, resourceModel, p)
}

// Update changes the supplied fields of a training report.
func (c *TrainingReportsClient) Update(ctx context.Context, p params.UpdateTrainingReport) (*Model, error) {
	return one[Model](ctx, c.client, queries.UpdateTrainingReport, resourceModel, p)
}

// Delete removes a training report from a model.
func (c *TrainingReportsClient) Delete(ctx context.Context, p params.DeleteTrainingReport) (*Model, error) {
	return one[Model](ctx, c.client, queries.DeleteTrainingReport, resourceModel, p)
}

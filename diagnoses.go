package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// DiagnosesClient handles model diagnosis operations.
type DiagnosesClient struct {
	client *Client
}

// Get retrieves a diagnosis by id or, when DiagnosisID is empty, by name.
func (c *DiagnosesClient) Get(ctx context.Context, p params.GetDiagnosis) (*Diagnosis, error) {
	return one[Diagnosis](ctx, c.client, queries.GetDiagnosis, resourceDiagnosis, p)
}

// List retrieves one page of the diagnoses of a dataset.
func (c *DiagnosesClient) List(ctx context.Context, p params.ListDiagnoses) (*types.Page[Diagnosis], error) {
	return page[Diagnosis](ctx, c.client, queries.ListDiagnoses, resourceDiagnosis, p)
}

// Create creates a diagnosis.
func (c *DiagnosesClient) Create(ctx context.Context, p params.CreateDiagnosis) (*Diagnosis, error) {
	return one[Diagnosis](ctx, c.client, queries.CreateDiagnosis, resourceDiagnosis, p)
}

// Update changes the supplied fields of a diagnosis.
func (c *DiagnosesClient) Update(ctx context.Context, p params.UpdateDiagnosis) (*Diagnosis, error) {
	return one[Diagnosis](ctx, c.client, queries.UpdateDiagnosis, resourceDiagnosis, p)
}

// Delete deletes a diagnosis. Deleting an unknown id returns a
// *NotFoundError.
func (c *DiagnosesClient) Delete(ctx context.Context, p params.DiagnosisRef) (bool, error) {
	return deleted(ctx, c.client, queries.DeleteDiagnosis, resourceDiagnosis, p)
}

// CreateReportItem adds a chart to a diagnosis and returns the diagnosis.
func (c *DiagnosesClient) CreateReportItem(ctx context.Context, p params.CreateDiagnosisReportItem) (*Diagnosis, error) {
	return one[Diagnosis](ctx, c.client, queries.CreateDiagnosisReportItem, resourceDiagnosis, p)
}

// UpdateReportItem changes the supplied fields of a diagnosis chart.
func (c *DiagnosesClient) UpdateReportItem(ctx context.Context, p params.UpdateDiagnosisReportItem) (*Diagnosis, error) {
	return one[Diagnosis](ctx, c.client, queries.UpdateDiagnosisReportItem, resourceDiagnosis, p)
}

// DeleteReportItem removes a chart from a diagnosis.
func (c *DiagnosesClient) DeleteReportItem(ctx context.Context, p params.DeleteDiagnosisReportItem) (*Diagnosis, error) {
	return one[Diagnosis](ctx, c.client, queries.DeleteDiagnosisReportItem, resourceDiagnosis, p)
}

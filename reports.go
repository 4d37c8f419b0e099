package onprem

import (
	"context"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// File names read by the report viewer inside a report item's folder
// content.
const (
	ReportsFileName = "reports.json"
	DataIDsFileName = "data_ids.json"
)

// ReportsClient handles analytics report operations.
type ReportsClient struct {
	client *Client
}

// Get retrieves an analytics report.
func (c *ReportsClient) Get(ctx context.Context, p params.ReportRef) (*AnalyticsReport, error) {
	return one[AnalyticsReport](ctx, c.client, queries.GetReport, resourceReport, p)
}

// List retrieves one page of the analytics reports of a dataset.
func (c *ReportsClient) List(ctx context.Context, p params.ListReports) (*types.Page[AnalyticsReport], error) {
	return page[AnalyticsReport](ctx, c.client, queries.ListReports, resourceReport, p)
}

// Create creates an analytics report.
func (c *ReportsClient) Create(ctx context.Context, p params.CreateReport) (*AnalyticsReport, error) {
	return one[AnalyticsReport](ctx, c.client, queries.CreateReport, resourceReport, p)
}

// Update changes the supplied fields of an analytics report.
func (c *ReportsClient) Update(ctx context.Context, p params.UpdateReport) (*AnalyticsReport, error) {
	return one[AnalyticsReport](ctx, c.client, queries.UpdateReport, resourceReport, p)
}

// Delete deletes an analytics report.
func (c *ReportsClient) Delete(ctx context.Context, p params.ReportRef) (bool, error) {
	return deleted(ctx, c.client, queries.DeleteReport, resourceReport, p)
}

// CreateItem adds a chart to a report and returns the report.
func (c *ReportsClient) CreateItem(ctx context.Context, p params.CreateReportItem) (*AnalyticsReport, error) {
	return one[AnalyticsReport](ctx, c.client, queries.CreateReportItem, resourceReport, p)
}

// UpdateItem changes the supplied fields of a report chart.
func (c *ReportsClient) UpdateItem(ctx context.Context, p params.UpdateReportItem) (*AnalyticsReport, error) {
	return one[AnalyticsReport](ctx, c.client, queries.UpdateReportItem, resourceReport, p)
}

// DeleteItem removes a chart from a report.
func (c *ReportsClient) DeleteItem(ctx context.Context, p params.DeleteReportItem) (*AnalyticsReport, error) {
	return one[AnalyticsReport](ctx, c.client, queries.DeleteReportItem, resourceReport, p)
}

// UploadReportsJSON writes the chart payload of a report item as
// reports.json inside its folder content. The payload is opaque.
func (c *ReportsClient) UploadReportsJSON(ctx context.Context, contentID string, chart any) error {
	return c.client.contents.UploadFileJSON(ctx, contentID, ReportsFileName, chart)
}

// UploadDataIDsJSON writes the per-category data ids of a report item as
// data_ids.json inside its folder content.
func (c *ReportsClient) UploadDataIDsJSON(ctx context.Context, contentID string, dataIDs any) error {
	return c.client.contents.UploadFileJSON(ctx, contentID, DataIDsFileName, dataIDs)
}

package params

import (
	"github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// ReportRef identifies an analytics report for get and delete.
type ReportRef struct {
	DatasetID string
	ReportID  string
}

// Variables implements Builder.
func (p ReportRef) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "reportId", p.ReportID); err != nil {
		return nil, err
	}
	return v, nil
}

// ListReports lists the analytics reports of a dataset.
type ListReports struct {
	DatasetID string
	Filter    *types.AnalyticsReportFilter
	OrderBy   *types.AnalyticsReportOrderBy
	Cursor    string
	Length    int
}

// Variables implements Builder.
func (p ListReports) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if p.Filter != nil {
		if err := wire(v, "filter", p.Filter); err != nil {
			return nil, err
		}
	}
	if err := orderBy(v, p.OrderBy); err != nil {
		return nil, err
	}
	if err := page(v, p.Cursor, p.Length, config.MaxPageLength); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateReport creates an analytics report.
type CreateReport struct {
	DatasetID   string
	Title       string
	Description string
	Meta        types.JSON
}

// Variables implements Builder.
func (p CreateReport) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "title", p.Title); err != nil {
		return nil, err
	}
	optional(v, "description", p.Description)
	optionalJSON(v, "meta", p.Meta)
	return v, nil
}

// UpdateReport changes only the supplied fields of an analytics report.
type UpdateReport struct {
	DatasetID   string
	ReportID    string
	Title       types.Field[string]
	Description types.Field[string]
	Status      types.Field[types.AnalyticsReportStatus]
	Meta        types.Field[types.JSON]
}

// Variables implements Builder.
func (p UpdateReport) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "reportId", p.ReportID); err != nil {
		return nil, err
	}
	field(v, "title", p.Title)
	field(v, "description", p.Description)
	if err := enumField(v, "status", p.Status); err != nil {
		return nil, err
	}
	field(v, "meta", p.Meta)
	return v, nil
}

// CreateReportItem adds a chart to an analytics report.
type CreateReportItem struct {
	DatasetID   string
	ReportID    string
	Type        types.AnalyticsReportItemType
	Title       string
	Description string
	ContentID   string
	Meta        types.JSON
}

// Variables implements Builder.
func (p CreateReportItem) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "reportId", p.ReportID, "title", p.Title); err != nil {
		return nil, err
	}
	if err := requiredEnum(v, "type", p.Type); err != nil {
		return nil, err
	}
	optional(v, "description", p.Description)
	optional(v, "contentId", p.ContentID)
	optionalJSON(v, "meta", p.Meta)
	return v, nil
}

// UpdateReportItem changes only the supplied fields of a report item.
type UpdateReportItem struct {
	DatasetID   string
	ReportID    string
	ItemID      string
	Type        types.Field[types.AnalyticsReportItemType]
	Title       types.Field[string]
	Description types.Field[string]
	ContentID   types.Field[string]
	Meta        types.Field[types.JSON]
}

// Variables implements Builder.
func (p UpdateReportItem) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "reportId", p.ReportID, "itemId", p.ItemID); err != nil {
		return nil, err
	}
	if err := enumField(v, "type", p.Type); err != nil {
		return nil, err
	}
	field(v, "title", p.Title)
	field(v, "description", p.Description)
	field(v, "contentId", p.ContentID)
	field(v, "meta", p.Meta)
	return v, nil
}

// DeleteReportItem removes a chart from an analytics report.
type DeleteReportItem struct {
	DatasetID string
	ReportID  string
	ItemID    string
}

// Variables implements Builder.
func (p DeleteReportItem) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "reportId", p.ReportID, "itemId", p.ItemID); err != nil {
		return nil, err
	}
	return v, nil
}

package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var GetReport = Operation[params.ReportRef]{
	Name:  "reports.get",
	Field: "analyticsReport",
	Document: `query AnalyticsReport($datasetId: ID!, $reportId: ID!) {
	analyticsReport(datasetId: $datasetId, reportId: $reportId) {` + reportFields + `
	}
}`,
}

var ListReports = Operation[params.ListReports]{
	Name:  "reports.list",
	Field: "analyticsReports",
	Items: "analyticsReports",
	Document: `query AnalyticsReports(
	$datasetId: ID!,
	$filter: AnalyticsReportFilter,
	$orderBy: AnalyticsReportOrderBy,
	$cursor: String,
	$length: Int,
) {
	analyticsReports(
		datasetId: $datasetId,
		filter: $filter,
		orderBy: $orderBy,
		cursor: $cursor,
		length: $length,
	) {
		analyticsReports {` + reportFields + `
		}
		next
		totalCount
	}
}`,
}

var CreateReport = Operation[params.CreateReport]{
	Name:  "reports.create",
	Field: "createAnalyticsReport",
	Document: `mutation CreateAnalyticsReport($datasetId: ID!, $title: String!, $description: String, $meta: JSON) {
	createAnalyticsReport(datasetId: $datasetId, title: $title, description: $description, meta: $meta) {` + reportFields + `
	}
}`,
}

var UpdateReport = Operation[params.UpdateReport]{
	Name:  "reports.update",
	Field: "updateAnalyticsReport",
	Document: `mutation UpdateAnalyticsReport(
	$datasetId: ID!,
	$reportId: ID!,
	$title: String,
	$description: String,
	$status: AnalyticsReportStatus,
	$meta: JSON,
) {
	updateAnalyticsReport(
		datasetId: $datasetId,
		reportId: $reportId,
		title: $title,
		description: $description,
		status: $status,
		meta: $meta,
	) {` + reportFields + `
	}
}`,
}

var DeleteReport = Operation[params.ReportRef]{
	Name:  "reports.delete",
	Field: "deleteAnalyticsReport",
	Document: `mutation DeleteAnalyticsReport($datasetId: ID!, $reportId: ID!) {
	deleteAnalyticsReport(datasetId: $datasetId, reportId: $reportId)
}`,
}

var CreateReportItem = Operation[params.CreateReportItem]{
	Name:  "reports.createItem",
	Field: "createAnalyticsReportItem",
	Document: `mutation CreateAnalyticsReportItem(
	$datasetId: ID!,
	$reportId: ID!,
	$type: AnalyticsReportItemType!,
	$title: String!,
	$description: String,
	$contentId: ID,
	$meta: JSON,
) {
	createAnalyticsReportItem(
		datasetId: $datasetId,
		reportId: $reportId,
		type: $type,
		title: $title,
		description: $description,
		contentId: $contentId,
		meta: $meta,
	) {` + reportFields + `
	}
}`,
}

var UpdateReportItem = Operation[params.UpdateReportItem]{
	Name:  "reports.updateItem",
	Field: "updateAnalyticsReportItem",
	Document: `mutation UpdateAnalyticsReportItem(
	$datasetId: ID!,
	$reportId: ID!,
	$itemId: ID!,
	$type: AnalyticsReportItemType,
	$title: String,
	$description: String,
	$contentId: ID,
	$meta: JSON,
) {
	updateAnalyticsReportItem(
		datasetId: $datasetId,
		reportId: $reportId,
		itemId: $itemId,
		type: $type,
		title: $title,
		description: $description,
		contentId: $contentId,
		meta: $meta,
	) {` + reportFields + `
	}
}`,
}

var DeleteReportItem = Operation[params.DeleteReportItem]{
	Name:  "reports.deleteItem",
	Field: "deleteAnalyticsReportItem",
	Document: `mutation DeleteAnalyticsReportItem($datasetId: ID!, $reportId: ID!, $itemId: ID!) {
	deleteAnalyticsReportItem(datasetId: $datasetId, reportId: $reportId, itemId: $itemId) {` + reportFields + `
	}
}`,
}

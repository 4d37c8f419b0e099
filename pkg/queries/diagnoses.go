package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var GetDiagnosis = Operation[params.GetDiagnosis]{
	Name:  "diagnoses.get",
	Field: "diagnosis",
	Document: `query Diagnosis($datasetId: ID!, $diagnosisId: ID, $name: String) {
	diagnosis(datasetId: $datasetId, diagnosisId: $diagnosisId, name: $name) {` + diagnosisFields + `
	}
}`,
}

var ListDiagnoses = Operation[params.ListDiagnoses]{
	Name:  "diagnoses.list",
	Field: "diagnoses",
	Items: "diagnoses",
	Document: `query Diagnoses(
	$datasetId: ID!,
	$filter: DiagnosisFilter,
	$orderBy: DiagnosisOrderBy,
	$cursor: String,
	$length: Int,
) {
	diagnoses(
		datasetId: $datasetId,
		filter: $filter,
		orderBy: $orderBy,
		cursor: $cursor,
		length: $length,
	) {
		diagnoses {` + diagnosisFields + `
		}
		next
		totalCount
	}
}`,
}

var CreateDiagnosis = Operation[params.CreateDiagnosis]{
	Name:  "diagnoses.create",
	Field: "createDiagnosis",
	Document: `mutation CreateDiagnosis(
	$datasetId: ID!,
	$name: String!,
	$description: String,
	$scoreKey: String,
	$scoreValue: Float,
	$scoreUnit: String,
	$diagnosisParameters: JSONObject,
	$contents: JSONObject,
	$sourceSliceId: ID,
	$targetSliceId: ID,
	$sourceDataCount: Int,
	$targetDataCount: Int,
	$diagnosisDataCount: Int,
) {
	createDiagnosis(
		datasetId: $datasetId,
		name: $name,
		description: $description,
		scoreKey: $scoreKey,
		scoreValue: $scoreValue,
		scoreUnit: $scoreUnit,
		diagnosisParameters: $diagnosisParameters,
		contents: $contents,
		sourceSliceId: $sourceSliceId,
		targetSliceId: $targetSliceId,
		sourceDataCount: $sourceDataCount,
		targetDataCount: $targetDataCount,
		diagnosisDataCount: $diagnosisDataCount,
	) {` + diagnosisFields + `
	}
}`,
}

var UpdateDiagnosis = Operation[params.UpdateDiagnosis]{
	Name:  "diagnoses.update",
	Field: "updateDiagnosis",
	Document: `mutation UpdateDiagnosis(
	$datasetId: ID!,
	$diagnosisId: ID!,
	$name: String,
	$description: String,
	$status: DiagnosisStatus,
	$scoreKey: String,
	$scoreValue: Float,
	$scoreUnit: String,
	$diagnosisParameters: JSONObject,
	$contents: JSONObject,
	$sourceSliceId: ID,
	$targetSliceId: ID,
	$sourceDataCount: Int,
	$targetDataCount: Int,
	$diagnosisDataCount: Int,
) {
	updateDiagnosis(
		datasetId: $datasetId,
		diagnosisId: $diagnosisId,
		name: $name,
		description: $description,
		status: $status,
		scoreKey: $scoreKey,
		scoreValue: $scoreValue,
		scoreUnit: $scoreUnit,
		diagnosisParameters: $diagnosisParameters,
		contents: $contents,
		sourceSliceId: $sourceSliceId,
		targetSliceId: $targetSliceId,
		sourceDataCount: $sourceDataCount,
		targetDataCount: $targetDataCount,
		diagnosisDataCount: $diagnosisDataCount,
	) {` + diagnosisFields + `
	}
}`,
}

var DeleteDiagnosis = Operation[params.DiagnosisRef]{
	Name:  "diagnoses.delete",
	Field: "deleteDiagnosis",
	Document: `mutation DeleteDiagnosis($datasetId: ID!, $diagnosisId: ID!) {
	deleteDiagnosis(datasetId: $datasetId, diagnosisId: $diagnosisId)
}`,
}

var CreateDiagnosisReportItem = Operation[params.CreateDiagnosisReportItem]{
	Name:  "diagnoses.createReportItem",
	Field: "createDiagnosisReportItem",
	Document: `mutation CreateDiagnosisReportItem(
	$datasetId: ID!,
	$diagnosisId: ID!,
	$name: String!,
	$type: DiagnosisReportItemType!,
	$contentId: ID,
	$description: String,
	$discriminatorValue: String,
) {
	createDiagnosisReportItem(
		datasetId: $datasetId,
		diagnosisId: $diagnosisId,
		name: $name,
		type: $type,
		contentId: $contentId,
		description: $description,
		discriminatorValue: $discriminatorValue,
	) {` + diagnosisFields + `
	}
}`,
}

var UpdateDiagnosisReportItem = Operation[params.UpdateDiagnosisReportItem]{
	Name:  "diagnoses.updateReportItem",
	Field: "updateDiagnosisReportItem",
	Document: `mutation UpdateDiagnosisReportItem(
	$datasetId: ID!,
	$diagnosisId: ID!,
	$diagnosisReportItemId: ID!,
	$name: String,
	$type: DiagnosisReportItemType,
	$contentId: ID,
	$description: String,
	$discriminatorValue: String,
) {
	updateDiagnosisReportItem(
		datasetId: $datasetId,
		diagnosisId: $diagnosisId,
		diagnosisReportItemId: $diagnosisReportItemId,
		name: $name,
		type: $type,
		contentId: $contentId,
		description: $description,
		discriminatorValue: $discriminatorValue,
	) {` + diagnosisFields + `
	}
}`,
}

var DeleteDiagnosisReportItem = Operation[params.DeleteDiagnosisReportItem]{
	Name:  "diagnoses.deleteReportItem",
	Field: "deleteDiagnosisReportItem",
	Document: `mutation DeleteDiagnosisReportItem($datasetId: ID!, $diagnosisId: ID!, $diagnosisReportItemId: ID!) {
	deleteDiagnosisReportItem(
		datasetId: $datasetId,
		diagnosisId: $diagnosisId,
		diagnosisReportItemId: $diagnosisReportItemId,
	) {` + diagnosisFields + `
	}
}`,
}

package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var GetModel = Operation[params.GetModel]{
	Name:  "models.get",
	Field: "model",
	Document: `query Model($datasetId: ID!, $modelId: ID, $name: String) {
	model(datasetId: $datasetId, id: $modelId, name: $name) {` + modelFields + `
	}
}`,
}

var ListModels = Operation[params.ListModels]{
	Name:  "models.list",
	Field: "models",
	Items: "models",
	Document: `query Models(
	$datasetId: ID!,
	$filter: ModelFilter,
	$orderBy: ModelOrderBy,
	$cursor: String,
	$length: Int,
) {
	models(
		datasetId: $datasetId,
		filter: $filter,
		orderBy: $orderBy,
		cursor: $cursor,
		length: $length,
	) {
		models {` + modelFields + `
		}
		next
		totalCount
	}
}`,
}

var CreateModel = Operation[params.CreateModel]{
	Name:  "models.create",
	Field: "createModel",
	Document: `mutation CreateModel(
	$datasetId: ID!,
	$name: String!,
	$taskType: ModelTaskType!,
	$description: String,
	$customDagId: String,
	$totalDataCount: Int,
	$trainDataCount: Int,
	$validationDataCount: Int,
	$trainingParameters: JSON,
	$trainSliceId: ID,
	$validationSliceId: ID,
	$isPinned: Boolean,
	$scoreKey: String,
	$scoreValue: Float,
	$scoreUnit: String,
	$contents: JSON,
) {
	createModel(
		datasetId: $datasetId,
		name: $name,
		taskType: $taskType,
		description: $description,
		customDagId: $customDagId,
		totalDataCount: $totalDataCount,
		trainDataCount: $trainDataCount,
		validationDataCount: $validationDataCount,
		trainingParameters: $trainingParameters,
		trainSliceId: $trainSliceId,
		validationSliceId: $validationSliceId,
		isPinned: $isPinned,
		scoreKey: $scoreKey,
		scoreValue: $scoreValue,
		scoreUnit: $scoreUnit,
		contents: $contents,
	) {` + modelFields + `
	}
}`,
}

var UpdateModel = Operation[params.UpdateModel]{
	Name:  "models.update",
	Field: "updateModel",
	Document: `mutation UpdateModel(
	$datasetId: ID!,
	$modelId: ID!,
	$name: String,
	$description: String,
	$status: ModelStatus,
	$taskType: ModelTaskType,
	$customDagId: String,
	$totalDataCount: Int,
	$trainDataCount: Int,
	$validationDataCount: Int,
	$trainingParameters: JSON,
	$trainSliceId: ID,
	$validationSliceId: ID,
	$isPinned: Boolean,
	$scoreKey: String,
	$scoreValue: Float,
	$scoreUnit: String,
	$contents: JSON,
) {
	updateModel(
		datasetId: $datasetId,
		id: $modelId,
		name: $name,
		description: $description,
		status: $status,
		taskType: $taskType,
		customDagId: $customDagId,
		totalDataCount: $totalDataCount,
		trainDataCount: $trainDataCount,
		validationDataCount: $validationDataCount,
		trainingParameters: $trainingParameters,
		trainSliceId: $trainSliceId,
		validationSliceId: $validationSliceId,
		isPinned: $isPinned,
		scoreKey: $scoreKey,
		scoreValue: $scoreValue,
		scoreUnit: $scoreUnit,
		contents: $contents,
	) {` + modelFields + `
	}
}`,
}

var DeleteModel = Operation[params.ModelRef]{
	Name:  "models.delete",
	Field: "deleteModel",
	Document: `mutation DeleteModel($datasetId: ID!, $modelId: ID!) {
	deleteModel(datasetId: $datasetId, id: $modelId)
}`,
}

var PinModel = Operation[params.ModelRef]{
	Name:  "models.pin",
	Field: "pinModel",
	Document: `mutation PinModel($datasetId: ID!, $modelId: ID!) {
	pinModel(datasetId: $datasetId, id: $modelId) {` + modelFields + `
	}
}`,
}

var UnpinModel = Operation[params.ModelRef]{
	Name:  "models.unpin",
	Field: "unpinModel",
	Document: `mutation UnpinModel($datasetId: ID!, $modelId: ID!) {
	unpinModel(datasetId: $datasetId, id: $modelId) {` + modelFields + `
	}
}`,
}

var CreateTrainingReport = Operation[params.CreateTrainingReport]{
	Name:  "trainingReports.create",
	Field: "createTrainingReport",
	Document: `mutation CreateTrainingReport(
	$datasetId: ID!,
	$modelId: ID!,
	$name: String!,
	$contentId: ID,
	$description: String,
) {
	createTrainingReport(
		datasetId: $datasetId,
		modelId: $modelId,
		name: $name,
		contentId: $contentId,
		description: $description,
	) {` + modelFields + `
	}
}`,
}

var UpdateTrainingReport = Operation[params.UpdateTrainingReport]{
	Name:  "trainingReports.update",
	Field: "updateTrainingReport",
	Document: `mutation UpdateTrainingReport(
	$datasetId: ID!,
	$modelId: ID!,
	$trainingReportId: ID!,
	$name: String,
	$contentId: ID,
	$description: String,
) {
	updateTrainingReport(
		datasetId: $datasetId,
		modelId: $modelId,
		id: $trainingReportId,
		name: $name,
		contentId: $contentId,
		description: $description,
	) {` + modelFields + `
	}
}`,
}

var DeleteTrainingReport = Operation[params.DeleteTrainingReport]{
	Name:  "trainingReports.delete",
	Field: "deleteTrainingReport",
	Document: `mutation DeleteTrainingReport($datasetId: ID!, $modelId: ID!, $trainingReportId: ID!) {
	deleteTrainingReport(datasetId: $datasetId, modelId: $modelId, id: $trainingReportId) {` + modelFields + `
	}
}`,
}

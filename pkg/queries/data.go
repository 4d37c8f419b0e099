package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var GetData = Operation[params.GetData]{
	Name:  "data.get",
	Field: "data",
	Document: `query Data($datasetId: ID!, $dataId: ID, $dataKey: String) {
	data(datasetId: $datasetId, id: $dataId, key: $dataKey) {` + dataFields + `
	}
}`,
}

var ListData = Operation[params.ListData]{
	Name:  "data.list",
	Field: "dataList",
	Items: "data",
	Document: `query DataList($datasetId: ID!, $filter: DataListFilter, $cursor: String, $length: Int) {
	dataList(datasetId: $datasetId, filter: $filter, cursor: $cursor, length: $length) {
		data {` + dataFields + `
		}
		next
		totalCount
	}
}`,
}

var ListDataIDs = Operation[params.ListData]{
	Name:  "data.listIds",
	Field: "dataList",
	Items: "data",
	Document: `query DataIdList($datasetId: ID!, $filter: DataListFilter, $cursor: String, $length: Int) {
	dataList(datasetId: $datasetId, filter: $filter, cursor: $cursor, length: $length) {
		data {
			id
		}
		next
		totalCount
	}
}`,
}

var CreateData = Operation[params.CreateData]{
	Name:  "data.create",
	Field: "createData",
	Document: `mutation CreateData(
	$datasetId: ID!,
	$key: String!,
	$type: DataType!,
	$slices: [String!],
	$scene: [SceneInput!],
	$thumbnail: ContentBaseInput,
	$annotation: AnnotationInput,
	$predictions: [PredictionInput!],
	$meta: [DataMetaInput!],
	$systemMeta: [DataMetaInput!],
) {
	createData(
		datasetId: $datasetId,
		key: $key,
		type: $type,
		slices: $slices,
		scene: $scene,
		thumbnail: $thumbnail,
		annotation: $annotation,
		predictions: $predictions,
		meta: $meta,
		systemMeta: $systemMeta,
	) {` + dataFields + `
	}
}`,
}

var UpdateData = Operation[params.UpdateData]{
	Name:  "data.update",
	Field: "updateData",
	Document: `mutation UpdateData(
	$datasetId: ID!,
	$dataId: ID!,
	$key: String,
	$meta: [DataMetaInput!],
	$systemMeta: [DataMetaInput!],
) {
	updateData(
		datasetId: $datasetId,
		id: $dataId,
		key: $key,
		meta: $meta,
		systemMeta: $systemMeta,
	) {` + dataFields + `
	}
}`,
}

var DeleteData = Operation[params.DeleteData]{
	Name:  "data.delete",
	Field: "deleteData",
	Document: `mutation DeleteData($datasetId: ID!, $dataId: ID!) {
	deleteData(datasetId: $datasetId, id: $dataId)
}`,
}

var AddDataToSlice = Operation[params.DataSlice]{
	Name:  "data.addToSlice",
	Field: "addDataToSlice",
	Document: `mutation AddDataToSlice($datasetId: ID!, $dataId: ID!, $sliceId: ID!) {
	addDataToSlice(datasetId: $datasetId, dataId: $dataId, sliceId: $sliceId) {` + dataFields + `
	}
}`,
}

var RemoveDataFromSlice = Operation[params.DataSlice]{
	Name:  "data.removeFromSlice",
	Field: "removeDataFromSlice",
	Document: `mutation RemoveDataFromSlice($datasetId: ID!, $dataId: ID!, $sliceId: ID!) {
	removeDataFromSlice(datasetId: $datasetId, dataId: $dataId, sliceId: $sliceId) {` + dataFields + `
	}
}`,
}

var InsertPrediction = Operation[params.InsertPrediction]{
	Name:  "data.insertPrediction",
	Field: "insertPrediction",
	Document: `mutation InsertPrediction($datasetId: ID!, $dataId: ID!, $prediction: PredictionInput!) {
	insertPrediction(datasetId: $datasetId, dataId: $dataId, prediction: $prediction) {` + dataFields + `
	}
}`,
}

var DeletePrediction = Operation[params.DeletePrediction]{
	Name:  "data.deletePrediction",
	Field: "deletePrediction",
	Document: `mutation DeletePrediction($datasetId: ID!, $dataId: ID!, $setId: ID!) {
	deletePrediction(datasetId: $datasetId, dataId: $dataId, setId: $setId) {` + dataFields + `
	}
}`,
}

var UpdateAnnotation = Operation[params.UpdateAnnotation]{
	Name:  "data.updateAnnotation",
	Field: "updateAnnotation",
	Document: `mutation UpdateAnnotation($datasetId: ID!, $dataId: ID!, $meta: JSON) {
	updateAnnotation(datasetId: $datasetId, dataId: $dataId, meta: $meta) {` + dataFields + `
	}
}`,
}

var InsertAnnotationVersion = Operation[params.InsertAnnotationVersion]{
	Name:  "data.insertAnnotationVersion",
	Field: "insertAnnotationVersion",
	Document: `mutation InsertAnnotationVersion($datasetId: ID!, $dataId: ID!, $version: AnnotationVersionInput!) {
	insertAnnotationVersion(datasetId: $datasetId, dataId: $dataId, version: $version) {` + dataFields + `
	}
}`,
}

var DeleteAnnotationVersion = Operation[params.DeleteAnnotationVersion]{
	Name:  "data.deleteAnnotationVersion",
	Field: "deleteAnnotationVersion",
	Document: `mutation DeleteAnnotationVersion($datasetId: ID!, $dataId: ID!, $versionId: ID!) {
	deleteAnnotationVersion(datasetId: $datasetId, dataId: $dataId, id: $versionId) {` + dataFields + `
	}
}`,
}

var UpdateScene = Operation[params.UpdateScene]{
	Name:  "data.updateScene",
	Field: "updateScene",
	Document: `mutation UpdateScene(
	$datasetId: ID!,
	$dataId: ID!,
	$sceneId: ID!,
	$content: ContentBaseInput,
	$meta: JSON,
) {
	updateScene(
		datasetId: $datasetId,
		dataId: $dataId,
		id: $sceneId,
		content: $content,
		meta: $meta,
	) {` + dataFields + `
	}
}`,
}

package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var ListPredictionSets = Operation[params.ListPredictionSets]{
	Name:  "predictions.listSets",
	Field: "predictionSets",
	Items: "predictionSets",
	Document: `query PredictionSets($datasetId: ID!, $filter: PredictionSetFilter, $cursor: String, $length: Int) {
	predictionSets(datasetId: $datasetId, filter: $filter, cursor: $cursor, length: $length) {
		predictionSets {` + predictionSetFields + `
		}
		next
		totalCount
	}
}`,
}

var GetPredictionSet = Operation[params.PredictionSetRef]{
	Name:  "predictions.getSet",
	Field: "predictionSet",
	Document: `query PredictionSet($datasetId: ID!, $predictionSetId: ID!) {
	predictionSet(datasetId: $datasetId, id: $predictionSetId) {` + predictionSetFields + `
	}
}`,
}

var DeletePredictionSet = Operation[params.PredictionSetRef]{
	Name:  "predictions.deleteSet",
	Field: "deletePredictionSet",
	Document: `mutation DeletePredictionSet($datasetId: ID!, $predictionSetId: ID!) {
	deletePredictionSet(datasetId: $datasetId, id: $predictionSetId)
}`,
}

var DeletePredictionFromData = Operation[params.DeletePredictionFromData]{
	Name:  "predictions.deleteFromData",
	Field: "deletePredictionFromData",
	Document: `mutation DeletePredictionFromData($datasetId: ID!, $dataId: ID!, $predictionSetId: ID!) {
	deletePredictionFromData(datasetId: $datasetId, dataId: $dataId, setId: $predictionSetId)
}`,
}

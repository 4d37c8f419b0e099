package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var GetDataset = Operation[params.GetDataset]{
	Name:  "datasets.get",
	Field: "dataset",
	Document: `query Dataset($datasetId: ID, $name: String) {
	dataset(datasetId: $datasetId, name: $name) {` + datasetFields + `
	}
}`,
}

var ListDatasets = Operation[params.ListDatasets]{
	Name:  "datasets.list",
	Field: "datasets",
	Items: "datasets",
	Document: `query Datasets($filter: DatasetFilter, $cursor: String, $length: Int) {
	datasets(filter: $filter, cursor: $cursor, length: $length) {
		datasets {` + datasetFields + `
		}
		next
		totalCount
	}
}`,
}

var CreateDataset = Operation[params.CreateDataset]{
	Name:  "datasets.create",
	Field: "createDataset",
	Document: `mutation CreateDataset($name: String!, $description: String) {
	createDataset(name: $name, description: $description) {` + datasetFields + `
	}
}`,
}

var UpdateDataset = Operation[params.UpdateDataset]{
	Name:  "datasets.update",
	Field: "updateDataset",
	Document: `mutation UpdateDataset($datasetId: ID!, $name: String, $description: String) {
	updateDataset(datasetId: $datasetId, name: $name, description: $description) {` + datasetFields + `
	}
}`,
}

var DeleteDataset = Operation[params.DeleteDataset]{
	Name:  "datasets.delete",
	Field: "deleteDataset",
	Document: `mutation DeleteDataset($datasetId: ID!) {
	deleteDataset(datasetId: $datasetId)
}`,
}

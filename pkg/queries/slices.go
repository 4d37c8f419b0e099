package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var GetSlice = Operation[params.GetSlice]{
	Name:  "slices.get",
	Field: "slice",
	Document: `query Slice($datasetId: ID!, $sliceId: ID, $name: String) {
	slice(datasetId: $datasetId, sliceId: $sliceId, name: $name) {` + sliceFields + `
	}
}`,
}

var ListSlices = Operation[params.ListSlices]{
	Name:  "slices.list",
	Field: "slices",
	Items: "slices",
	Document: `query Slices($datasetId: ID!, $filter: SliceFilter, $cursor: String, $length: Int) {
	slices(datasetId: $datasetId, filter: $filter, cursor: $cursor, length: $length) {
		slices {` + sliceFields + `
		}
		next
		totalCount
	}
}`,
}

var CreateSlice = Operation[params.CreateSlice]{
	Name:  "slices.create",
	Field: "createSlice",
	Document: `mutation CreateSlice($datasetId: ID!, $name: String!, $description: String) {
	createSlice(datasetId: $datasetId, name: $name, description: $description) {` + sliceFields + `
	}
}`,
}

var UpdateSlice = Operation[params.UpdateSlice]{
	Name:  "slices.update",
	Field: "updateSlice",
	Document: `mutation UpdateSlice(
	$datasetId: ID!,
	$sliceId: ID!,
	$name: String,
	$description: String,
	$isPinned: Boolean,
) {
	updateSlice(
		datasetId: $datasetId,
		sliceId: $sliceId,
		name: $name,
		description: $description,
		isPinned: $isPinned,
	) {` + sliceFields + `
	}
}`,
}

var DeleteSlice = Operation[params.DeleteSlice]{
	Name:  "slices.delete",
	Field: "deleteSlice",
	Document: `mutation DeleteSlice($datasetId: ID!, $sliceId: ID!) {
	deleteSlice(datasetId: $datasetId, sliceId: $sliceId)
}`,
}

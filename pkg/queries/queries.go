// Package queries is the static catalogue of GraphQL operations. Each
// Operation bundles a document with the parameter type that builds its
// variables and the top-level response field it returns.
package queries

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/superb-ai/onprem-go/pkg/params"
)

// Operation is a registry entry for one logical operation.
type Operation[P params.Builder] struct {
	// Name is the logical name, e.g. "slices.list".
	Name string
	// Field is the top-level response field the transport unwraps.
	Field string
	// Items is the key holding the entity list inside a page response.
	// Empty for non-list operations.
	Items string
	// Document is the GraphQL query or mutation text.
	Document string
}

// Variables builds the variables payload for p.
func (o Operation[P]) Variables(p P) (params.Variables, error) {
	return p.Variables()
}

// Entry returns the untyped catalogue entry for o.
func (o Operation[P]) Entry() Entry {
	return Entry{Name: o.Name, Field: o.Field, Items: o.Items, Document: o.Document}
}

// Entry is an Operation without its parameter type.
type Entry struct {
	Name     string
	Field    string
	Items    string
	Document string
}

// Parse parses the document of an entry.
func (e Entry) Parse() (*ast.QueryDocument, error) {
	return Parse(e.Name, e.Document)
}

// Parse parses a GraphQL document and checks that it holds exactly one
// operation with exactly one top-level field.
func Parse(name, document string) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: document})
	if err != nil {
		return nil, err
	}
	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("%s: expected one operation, got %d", name, len(doc.Operations))
	}
	if n := len(doc.Operations[0].SelectionSet); n != 1 {
		return nil, fmt.Errorf("%s: expected one top-level field, got %d", name, n)
	}
	return doc, nil
}

// TopLevelField returns the name of the single top-level field of a parsed
// document.
func TopLevelField(doc *ast.QueryDocument) string {
	if doc == nil || len(doc.Operations) == 0 || len(doc.Operations[0].SelectionSet) == 0 {
		return ""
	}
	if f, ok := doc.Operations[0].SelectionSet[0].(*ast.Field); ok {
		return f.Name
	}
	return ""
}

// DeclaredVariables returns the variable names declared by a parsed document.
func DeclaredVariables(doc *ast.QueryDocument) map[string]bool {
	out := map[string]bool{}
	if doc == nil || len(doc.Operations) == 0 {
		return out
	}
	for _, vd := range doc.Operations[0].VariableDefinitions {
		out[vd.Variable] = true
	}
	return out
}

// All returns every registered operation.
func All() []Entry {
	return []Entry{
		GetDataset.Entry(),
		ListDatasets.Entry(),
		CreateDataset.Entry(),
		UpdateDataset.Entry(),
		DeleteDataset.Entry(),

		GetSlice.Entry(),
		ListSlices.Entry(),
		CreateSlice.Entry(),
		UpdateSlice.Entry(),
		DeleteSlice.Entry(),

		GetData.Entry(),
		ListData.Entry(),
		ListDataIDs.Entry(),
		CreateData.Entry(),
		UpdateData.Entry(),
		DeleteData.Entry(),
		AddDataToSlice.Entry(),
		RemoveDataFromSlice.Entry(),
		InsertPrediction.Entry(),
		DeletePrediction.Entry(),
		UpdateAnnotation.Entry(),
		InsertAnnotationVersion.Entry(),
		DeleteAnnotationVersion.Entry(),
		UpdateScene.Entry(),

		GetModel.Entry(),
		ListModels.Entry(),
		CreateModel.Entry(),
		UpdateModel.Entry(),
		DeleteModel.Entry(),
		PinModel.Entry(),
		UnpinModel.Entry(),
		CreateTrainingReport.Entry(),
		UpdateTrainingReport.Entry(),
		DeleteTrainingReport.Entry(),

		ListPredictionSets.Entry(),
		GetPredictionSet.Entry(),
		DeletePredictionSet.Entry(),
		DeletePredictionFromData.Entry(),

		GetDiagnosis.Entry(),
		ListDiagnoses.Entry(),
		CreateDiagnosis.Entry(),
		UpdateDiagnosis.Entry(),
		DeleteDiagnosis.Entry(),
		CreateDiagnosisReportItem.Entry(),
		UpdateDiagnosisReportItem.Entry(),
		DeleteDiagnosisReportItem.Entry(),

		GetReport.Entry(),
		ListReports.Entry(),
		CreateReport.Entry(),
		UpdateReport.Entry(),
		DeleteReport.Entry(),
		CreateReportItem.Entry(),
		UpdateReportItem.Entry(),
		DeleteReportItem.Entry(),

		CreateContent.Entry(),
		CreateFolderContent.Entry(),
		FileUploadURL.Entry(),
		DownloadURL.Entry(),
	}
}

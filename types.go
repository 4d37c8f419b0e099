package onprem

import "github.com/superb-ai/onprem-go/pkg/types"

// Entity types, re-exported from pkg/types.
type (
	Dataset             = types.Dataset
	Data                = types.Data
	Scene               = types.Scene
	Annotation          = types.Annotation
	AnnotationVersion   = types.AnnotationVersion
	Prediction          = types.Prediction
	DataMeta            = types.DataMeta
	Slice               = types.Slice
	Content             = types.Content
	ContentUpload       = types.ContentUpload
	Model               = types.Model
	TrainingReport      = types.TrainingReport
	PredictionSet       = types.PredictionSet
	Diagnosis           = types.Diagnosis
	DiagnosisReportItem = types.DiagnosisReportItem
	AnalyticsReport     = types.AnalyticsReport
	AnalyticsReportItem = types.AnalyticsReportItem
)

// JSON is an opaque free-form JSON value.
type JSON = types.JSON

// Set returns a partial-update field holding v.
func Set[T any](v T) types.Field[T] { return types.Set(v) }

// Null returns a partial-update field explicitly set to null.
func Null[T any]() types.Field[T] { return types.Null[T]() }

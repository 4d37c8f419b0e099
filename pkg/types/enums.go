package types

import (
	"encoding/json"
	"slices"

	sdkerrors "github.com/superb-ai/onprem-go/pkg/errors"
)

// parseEnum validates s against the closed set values. The empty string is
// accepted as "not set".
func parseEnum[E ~string](field, s string, values []E) (E, error) {
	if s == "" || slices.Contains(values, E(s)) {
		return E(s), nil
	}
	return "", &sdkerrors.ValidationError{Field: field, Value: s, Message: "unknown value"}
}

func unmarshalEnum[E ~string](field string, data []byte, values []E, dst *E) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return sdkerrors.NewValidationErrorWithCause(field, "expected a string", err)
	}
	v, err := parseEnum(field, s, values)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func marshalEnum[E ~string](field string, v E, values []E) ([]byte, error) {
	if _, err := parseEnum(field, string(v), values); err != nil {
		return nil, err
	}
	return json.Marshal(string(v))
}

// DataType is the kind of a data item.
type DataType string

const (
	DataTypeSuperbImage DataType = "SUPERB_IMAGE"
	DataTypeSuperbVideo DataType = "SUPERB_VIDEO"
	DataTypeMCAP        DataType = "MCAP"
)

var dataTypes = []DataType{DataTypeSuperbImage, DataTypeSuperbVideo, DataTypeMCAP}

// ParseDataType validates s as a DataType.
func ParseDataType(s string) (DataType, error) { return parseEnum("type", s, dataTypes) }

// Valid reports whether t is a known value.
func (t DataType) Valid() bool { return slices.Contains(dataTypes, t) }

// String returns the string representation of the data type.
func (t DataType) String() string { return string(t) }

// MarshalJSON implements json.Marshaler.
func (t DataType) MarshalJSON() ([]byte, error) { return marshalEnum("type", t, dataTypes) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *DataType) UnmarshalJSON(b []byte) error { return unmarshalEnum("type", b, dataTypes, t) }

// SceneType is the kind of a scene within a data item.
type SceneType string

const (
	SceneTypeImage SceneType = "IMAGE"
	SceneTypeVideo SceneType = "VIDEO"
	SceneTypeMCAP  SceneType = "MCAP"
)

var sceneTypes = []SceneType{SceneTypeImage, SceneTypeVideo, SceneTypeMCAP}

// ParseSceneType validates s as a SceneType.
func ParseSceneType(s string) (SceneType, error) { return parseEnum("scene.type", s, sceneTypes) }

// Valid reports whether t is a known value.
func (t SceneType) Valid() bool { return slices.Contains(sceneTypes, t) }

// String returns the string representation of the scene type.
func (t SceneType) String() string { return string(t) }

// MarshalJSON implements json.Marshaler.
func (t SceneType) MarshalJSON() ([]byte, error) { return marshalEnum("scene.type", t, sceneTypes) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *SceneType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("scene.type", b, sceneTypes, t)
}

// DataMetaType is the value kind of a metadata entry.
type DataMetaType string

const (
	DataMetaTypeString     DataMetaType = "STRING"
	DataMetaTypeNumber     DataMetaType = "NUMBER"
	DataMetaTypeBoolean    DataMetaType = "BOOLEAN"
	DataMetaTypeDatetime   DataMetaType = "DATETIME"
	DataMetaTypeAnnotation DataMetaType = "ANNOTATION"
)

var dataMetaTypes = []DataMetaType{
	DataMetaTypeString, DataMetaTypeNumber, DataMetaTypeBoolean,
	DataMetaTypeDatetime, DataMetaTypeAnnotation,
}

// Valid reports whether t is a known value.
func (t DataMetaType) Valid() bool { return slices.Contains(dataMetaTypes, t) }

// String returns the string representation of the meta type.
func (t DataMetaType) String() string { return string(t) }

// MarshalJSON implements json.Marshaler.
func (t DataMetaType) MarshalJSON() ([]byte, error) {
	return marshalEnum("meta.type", t, dataMetaTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *DataMetaType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("meta.type", b, dataMetaTypes, t)
}

// ModelStatus is the lifecycle status of a model.
type ModelStatus string

const (
	ModelStatusPending    ModelStatus = "PENDING"
	ModelStatusPreparing  ModelStatus = "PREPARING"
	ModelStatusInProgress ModelStatus = "IN_PROGRESS"
	ModelStatusCompleted  ModelStatus = "COMPLETED"
	ModelStatusFailed     ModelStatus = "FAILED"
)

var modelStatuses = []ModelStatus{
	ModelStatusPending, ModelStatusPreparing, ModelStatusInProgress,
	ModelStatusCompleted, ModelStatusFailed,
}

// ParseModelStatus validates s as a ModelStatus.
func ParseModelStatus(s string) (ModelStatus, error) { return parseEnum("status", s, modelStatuses) }

// Valid reports whether s is a known value.
func (s ModelStatus) Valid() bool { return slices.Contains(modelStatuses, s) }

// String returns the string representation of the model status.
func (s ModelStatus) String() string { return string(s) }

// MarshalJSON implements json.Marshaler.
func (s ModelStatus) MarshalJSON() ([]byte, error) { return marshalEnum("status", s, modelStatuses) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *ModelStatus) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("status", b, modelStatuses, s)
}

// ModelTaskType is the task a model was trained for.
type ModelTaskType string

const (
	ModelTaskTypeClassification       ModelTaskType = "CLASSIFICATION"
	ModelTaskTypeObjectDetection      ModelTaskType = "OBJECT_DETECTION"
	ModelTaskTypeInstanceSegmentation ModelTaskType = "INSTANCE_SEGMENTATION"
	ModelTaskTypeSemanticSegmentation ModelTaskType = "SEMANTIC_SEGMENTATION"
	ModelTaskTypeOCR                  ModelTaskType = "OCR"
)

var modelTaskTypes = []ModelTaskType{
	ModelTaskTypeClassification, ModelTaskTypeObjectDetection,
	ModelTaskTypeInstanceSegmentation, ModelTaskTypeSemanticSegmentation,
	ModelTaskTypeOCR,
}

// ParseModelTaskType validates s as a ModelTaskType.
func ParseModelTaskType(s string) (ModelTaskType, error) {
	return parseEnum("taskType", s, modelTaskTypes)
}

// Valid reports whether t is a known value.
func (t ModelTaskType) Valid() bool { return slices.Contains(modelTaskTypes, t) }

// String returns the string representation of the task type.
func (t ModelTaskType) String() string { return string(t) }

// MarshalJSON implements json.Marshaler.
func (t ModelTaskType) MarshalJSON() ([]byte, error) {
	return marshalEnum("taskType", t, modelTaskTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ModelTaskType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("taskType", b, modelTaskTypes, t)
}

// DiagnosisStatus is the lifecycle status of a diagnosis.
type DiagnosisStatus string

const (
	DiagnosisStatusPending    DiagnosisStatus = "PENDING"
	DiagnosisStatusInProgress DiagnosisStatus = "IN_PROGRESS"
	DiagnosisStatusCompleted  DiagnosisStatus = "COMPLETED"
	DiagnosisStatusFailed     DiagnosisStatus = "FAILED"
)

var diagnosisStatuses = []DiagnosisStatus{
	DiagnosisStatusPending, DiagnosisStatusInProgress,
	DiagnosisStatusCompleted, DiagnosisStatusFailed,
}

// ParseDiagnosisStatus validates s as a DiagnosisStatus.
func ParseDiagnosisStatus(s string) (DiagnosisStatus, error) {
	return parseEnum("status", s, diagnosisStatuses)
}

// Valid reports whether s is a known value.
func (s DiagnosisStatus) Valid() bool { return slices.Contains(diagnosisStatuses, s) }

// String returns the string representation of the diagnosis status.
func (s DiagnosisStatus) String() string { return string(s) }

// MarshalJSON implements json.Marshaler.
func (s DiagnosisStatus) MarshalJSON() ([]byte, error) {
	return marshalEnum("status", s, diagnosisStatuses)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *DiagnosisStatus) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("status", b, diagnosisStatuses, s)
}

// AnalyticsReportStatus is the lifecycle status of an analytics report.
type AnalyticsReportStatus string

const (
	AnalyticsReportStatusPending    AnalyticsReportStatus = "PENDING"
	AnalyticsReportStatusInProgress AnalyticsReportStatus = "IN_PROGRESS"
	AnalyticsReportStatusCompleted  AnalyticsReportStatus = "COMPLETED"
	AnalyticsReportStatusFailed     AnalyticsReportStatus = "FAILED"
)

var analyticsReportStatuses = []AnalyticsReportStatus{
	AnalyticsReportStatusPending, AnalyticsReportStatusInProgress,
	AnalyticsReportStatusCompleted, AnalyticsReportStatusFailed,
}

// ParseAnalyticsReportStatus validates s as an AnalyticsReportStatus.
func ParseAnalyticsReportStatus(s string) (AnalyticsReportStatus, error) {
	return parseEnum("status", s, analyticsReportStatuses)
}

// Valid reports whether s is a known value.
func (s AnalyticsReportStatus) Valid() bool { return slices.Contains(analyticsReportStatuses, s) }

// String returns the string representation of the report status.
func (s AnalyticsReportStatus) String() string { return string(s) }

// MarshalJSON implements json.Marshaler.
func (s AnalyticsReportStatus) MarshalJSON() ([]byte, error) {
	return marshalEnum("status", s, analyticsReportStatuses)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *AnalyticsReportStatus) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("status", b, analyticsReportStatuses, s)
}

// AnalyticsReportItemType is the chart kind of a report item.
type AnalyticsReportItemType string

const (
	AnalyticsReportItemTypePie           AnalyticsReportItemType = "PIE"
	AnalyticsReportItemTypeHorizontalBar AnalyticsReportItemType = "HORIZONTAL_BAR"
	AnalyticsReportItemTypeVerticalBar   AnalyticsReportItemType = "VERTICAL_BAR"
	AnalyticsReportItemTypeHeatmap       AnalyticsReportItemType = "HEATMAP"
	AnalyticsReportItemTypeTable         AnalyticsReportItemType = "TABLE"
	AnalyticsReportItemTypeLineChart     AnalyticsReportItemType = "LINE_CHART"
	AnalyticsReportItemTypeScatterPlot   AnalyticsReportItemType = "SCATTER_PLOT"
	AnalyticsReportItemTypeHistogram     AnalyticsReportItemType = "HISTOGRAM"
	AnalyticsReportItemTypeMetrics       AnalyticsReportItemType = "METRICS"
)

var analyticsReportItemTypes = []AnalyticsReportItemType{
	AnalyticsReportItemTypePie, AnalyticsReportItemTypeHorizontalBar,
	AnalyticsReportItemTypeVerticalBar, AnalyticsReportItemTypeHeatmap,
	AnalyticsReportItemTypeTable, AnalyticsReportItemTypeLineChart,
	AnalyticsReportItemTypeScatterPlot, AnalyticsReportItemTypeHistogram,
	AnalyticsReportItemTypeMetrics,
}

// ParseAnalyticsReportItemType validates s as an AnalyticsReportItemType.
func ParseAnalyticsReportItemType(s string) (AnalyticsReportItemType, error) {
	return parseEnum("type", s, analyticsReportItemTypes)
}

// Valid reports whether t is a known value.
func (t AnalyticsReportItemType) Valid() bool { return slices.Contains(analyticsReportItemTypes, t) }

// String returns the string representation of the item type.
func (t AnalyticsReportItemType) String() string { return string(t) }

// MarshalJSON implements json.Marshaler.
func (t AnalyticsReportItemType) MarshalJSON() ([]byte, error) {
	return marshalEnum("type", t, analyticsReportItemTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *AnalyticsReportItemType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("type", b, analyticsReportItemTypes, t)
}

// OrderDirection is the sort direction of an OrderBy.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

var orderDirections = []OrderDirection{OrderAsc, OrderDesc}

// Valid reports whether d is a known value.
func (d OrderDirection) Valid() bool { return slices.Contains(orderDirections, d) }

// String returns the string representation of the direction.
func (d OrderDirection) String() string { return string(d) }

// MarshalJSON implements json.Marshaler.
func (d OrderDirection) MarshalJSON() ([]byte, error) {
	return marshalEnum("direction", d, orderDirections)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *OrderDirection) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("direction", b, orderDirections, d)
}

// ModelOrderField is a sortable model field.
type ModelOrderField string

const (
	ModelOrderCreatedAt  ModelOrderField = "createdAt"
	ModelOrderUpdatedAt  ModelOrderField = "updatedAt"
	ModelOrderName       ModelOrderField = "name"
	ModelOrderScoreValue ModelOrderField = "scoreValue"
)

var modelOrderFields = []ModelOrderField{
	ModelOrderCreatedAt, ModelOrderUpdatedAt, ModelOrderName, ModelOrderScoreValue,
}

// Valid reports whether f is a known value.
func (f ModelOrderField) Valid() bool { return slices.Contains(modelOrderFields, f) }

// MarshalJSON implements json.Marshaler.
func (f ModelOrderField) MarshalJSON() ([]byte, error) {
	return marshalEnum("orderBy.field", f, modelOrderFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *ModelOrderField) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("orderBy.field", b, modelOrderFields, f)
}

// DiagnosisOrderField is a sortable diagnosis field.
type DiagnosisOrderField string

const (
	DiagnosisOrderCreatedAt   DiagnosisOrderField = "createdAt"
	DiagnosisOrderUpdatedAt   DiagnosisOrderField = "updatedAt"
	DiagnosisOrderCompletedAt DiagnosisOrderField = "completedAt"
	DiagnosisOrderName        DiagnosisOrderField = "name"
	DiagnosisOrderScoreValue  DiagnosisOrderField = "scoreValue"
)

var diagnosisOrderFields = []DiagnosisOrderField{
	DiagnosisOrderCreatedAt, DiagnosisOrderUpdatedAt, DiagnosisOrderCompletedAt,
	DiagnosisOrderName, DiagnosisOrderScoreValue,
}

// Valid reports whether f is a known value.
func (f DiagnosisOrderField) Valid() bool { return slices.Contains(diagnosisOrderFields, f) }

// MarshalJSON implements json.Marshaler.
func (f DiagnosisOrderField) MarshalJSON() ([]byte, error) {
	return marshalEnum("orderBy.field", f, diagnosisOrderFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *DiagnosisOrderField) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("orderBy.field", b, diagnosisOrderFields, f)
}

// AnalyticsReportOrderField is a sortable report field.
type AnalyticsReportOrderField string

const (
	AnalyticsReportOrderCreatedAt   AnalyticsReportOrderField = "createdAt"
	AnalyticsReportOrderUpdatedAt   AnalyticsReportOrderField = "updatedAt"
	AnalyticsReportOrderCompletedAt AnalyticsReportOrderField = "completedAt"
	AnalyticsReportOrderTitle       AnalyticsReportOrderField = "title"
)

var analyticsReportOrderFields = []AnalyticsReportOrderField{
	AnalyticsReportOrderCreatedAt, AnalyticsReportOrderUpdatedAt,
	AnalyticsReportOrderCompletedAt, AnalyticsReportOrderTitle,
}

// Valid reports whether f is a known value.
func (f AnalyticsReportOrderField) Valid() bool {
	return slices.Contains(analyticsReportOrderFields, f)
}

// MarshalJSON implements json.Marshaler.
func (f AnalyticsReportOrderField) MarshalJSON() ([]byte, error) {
	return marshalEnum("orderBy.field", f, analyticsReportOrderFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *AnalyticsReportOrderField) UnmarshalJSON(b []byte) error {
	return unmarshalEnum("orderBy.field", b, analyticsReportOrderFields, f)
}

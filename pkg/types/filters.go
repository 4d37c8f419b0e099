package types

// Filter combines positive (Must) and negative (Not) constraints. Either
// side may be nil; absent option fields are omitted from the payload.
type Filter[O any] struct {
	Must *O `json:"must,omitempty"`
	Not  *O `json:"not,omitempty"`
}

// OrderBy sorts a list by a resource-specific field.
type OrderBy[F ~string] struct {
	Field     F              `json:"field"`
	Direction OrderDirection `json:"direction"`
}

// DatasetFilterOptions constrains dataset listings.
type DatasetFilterOptions struct {
	IDIn         []string `json:"idIn,omitempty"`
	NameContains string   `json:"nameContains,omitempty"`
	NameIn       []string `json:"nameIn,omitempty"`
}

// SliceFilterOptions constrains slice listings.
type SliceFilterOptions struct {
	IDIn         []string `json:"idIn,omitempty"`
	NameContains string   `json:"nameContains,omitempty"`
	NameIn       []string `json:"nameIn,omitempty"`
	IsPinned     *bool    `json:"isPinned,omitempty"`
}

// DataFilterOptions constrains data listings.
type DataFilterOptions struct {
	IDIn        []string   `json:"idIn,omitempty"`
	KeyContains string     `json:"keyContains,omitempty"`
	KeyMatches  string     `json:"keyMatches,omitempty"`
	TypeIn      []DataType `json:"typeIn,omitempty"`
	SliceIDIn   []string   `json:"sliceIdIn,omitempty"`
}

// ModelFilterOptions constrains model listings.
type ModelFilterOptions struct {
	IDIn         []string        `json:"idIn,omitempty"`
	NameContains string          `json:"nameContains,omitempty"`
	StatusIn     []ModelStatus   `json:"statusIn,omitempty"`
	TaskTypeIn   []ModelTaskType `json:"taskTypeIn,omitempty"`
	IsPinned     *bool           `json:"isPinned,omitempty"`
}

// PredictionSetFilterOptions constrains prediction set listings.
type PredictionSetFilterOptions struct {
	IDIn         []string `json:"idIn,omitempty"`
	NameContains string   `json:"nameContains,omitempty"`
}

// DiagnosisFilterOptions constrains diagnosis listings.
type DiagnosisFilterOptions struct {
	IDIn         []string          `json:"idIn,omitempty"`
	NameContains string            `json:"nameContains,omitempty"`
	StatusIn     []DiagnosisStatus `json:"statusIn,omitempty"`
	CreatedByIn  []string          `json:"createdByIn,omitempty"`
	ScoreKeyIn   []string          `json:"scoreKeyIn,omitempty"`
}

// AnalyticsReportFilterOptions constrains analytics report listings.
type AnalyticsReportFilterOptions struct {
	IDIn          []string                `json:"idIn,omitempty"`
	TitleContains string                  `json:"titleContains,omitempty"`
	StatusIn      []AnalyticsReportStatus `json:"statusIn,omitempty"`
	CreatedByIn   []string                `json:"createdByIn,omitempty"`
}

// Filter instantiations used by the list operations.
type (
	DatasetFilter         = Filter[DatasetFilterOptions]
	SliceFilter           = Filter[SliceFilterOptions]
	DataFilter            = Filter[DataFilterOptions]
	ModelFilter           = Filter[ModelFilterOptions]
	PredictionSetFilter   = Filter[PredictionSetFilterOptions]
	DiagnosisFilter       = Filter[DiagnosisFilterOptions]
	AnalyticsReportFilter = Filter[AnalyticsReportFilterOptions]
)

// OrderBy instantiations used by the list operations.
type (
	ModelOrderBy           = OrderBy[ModelOrderField]
	DiagnosisOrderBy       = OrderBy[DiagnosisOrderField]
	AnalyticsReportOrderBy = OrderBy[AnalyticsReportOrderField]
)

package types

// Diagnosis is an evaluation run comparing a source and target slice.
type Diagnosis struct {
	ID                   string                `json:"id,omitempty"`
	DatasetID            string                `json:"datasetId,omitempty"`
	Name                 string                `json:"name,omitempty"`
	Description          string                `json:"description,omitempty"`
	Status               DiagnosisStatus       `json:"status,omitempty"`
	ScoreKey             string                `json:"scoreKey,omitempty"`
	ScoreValue           *float64              `json:"scoreValue,omitempty"`
	ScoreUnit            string                `json:"scoreUnit,omitempty"`
	DiagnosisParameters  JSON                  `json:"diagnosisParameters,omitempty"`
	Contents             JSON                  `json:"contents,omitempty"`
	SourceSliceID        string                `json:"sourceSliceId,omitempty"`
	TargetSliceID        string                `json:"targetSliceId,omitempty"`
	SourceDataCount      *int                  `json:"sourceDataCount,omitempty"`
	TargetDataCount      *int                  `json:"targetDataCount,omitempty"`
	DiagnosisDataCount   *int                  `json:"diagnosisDataCount,omitempty"`
	DiagnosisReportItems []DiagnosisReportItem `json:"diagnosisReportItems,omitempty"`
	CompletedAt          *Time                 `json:"completedAt,omitempty"`
	Audit
}

// DiagnosisReportItem is a chart attached to a diagnosis. Several items may
// share a name and differ by DiscriminatorValue.
type DiagnosisReportItem struct {
	ID                 string                  `json:"id,omitempty"`
	DiagnosisID        string                  `json:"diagnosisId,omitempty"`
	Name               string                  `json:"name,omitempty"`
	Type               AnalyticsReportItemType `json:"type,omitempty"`
	ContentID          string                  `json:"contentId,omitempty"`
	Description        string                  `json:"description,omitempty"`
	DiscriminatorValue string                  `json:"discriminatorValue,omitempty"`
	Audit
}

// AnalyticsReport is a dashboard of chart items over a dataset.
type AnalyticsReport struct {
	ID          string                `json:"id,omitempty"`
	DatasetID   string                `json:"datasetId,omitempty"`
	Title       string                `json:"title,omitempty"`
	Description string                `json:"description,omitempty"`
	Status      AnalyticsReportStatus `json:"status,omitempty"`
	Meta        JSON                  `json:"meta,omitempty"`
	Items       []AnalyticsReportItem `json:"items,omitempty"`
	CompletedAt *Time                 `json:"completedAt,omitempty"`
	Audit
}

// AnalyticsReportItem is a single chart in an analytics report.
type AnalyticsReportItem struct {
	ID          string                  `json:"id,omitempty"`
	ReportID    string                  `json:"reportId,omitempty"`
	Type        AnalyticsReportItemType `json:"type,omitempty"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	ContentID   string                  `json:"contentId,omitempty"`
	Meta        JSON                    `json:"meta,omitempty"`
	Audit
}

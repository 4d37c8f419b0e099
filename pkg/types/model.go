package types

// Model is a trained model registered against a dataset.
type Model struct {
	ID                  string          `json:"id,omitempty"`
	DatasetID           string          `json:"datasetId,omitempty"`
	Name                string          `json:"name,omitempty"`
	Description         string          `json:"description,omitempty"`
	TaskType            ModelTaskType   `json:"taskType,omitempty"`
	Status              ModelStatus     `json:"status,omitempty"`
	CustomDagID         string          `json:"customDagId,omitempty"`
	TotalDataCount      *int            `json:"totalDataCount,omitempty"`
	TrainDataCount      *int            `json:"trainDataCount,omitempty"`
	ValidationDataCount *int            `json:"validationDataCount,omitempty"`
	TrainingParameters  JSON            `json:"trainingParameters,omitempty"`
	TrainSliceID        string          `json:"trainSliceId,omitempty"`
	ValidationSliceID   string          `json:"validationSliceId,omitempty"`
	IsPinned            *bool           `json:"isPinned,omitempty"`
	ScoreKey            string          `json:"scoreKey,omitempty"`
	ScoreValue          *float64        `json:"scoreValue,omitempty"`
	ScoreUnit           string          `json:"scoreUnit,omitempty"`
	Contents            JSON            `json:"contents,omitempty"`
	TrainingReport      *TrainingReport `json:"trainingReport,omitempty"`
	CompletedAt         *Time           `json:"completedAt,omitempty"`
	Audit
}

// TrainingReport links a model to the content holding its training report.
type TrainingReport struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	ModelID     string `json:"modelId,omitempty"`
	ContentID   string `json:"contentId,omitempty"`
	Description string `json:"description,omitempty"`
	Audit
}

// PredictionSet is a named group of predictions produced by a model run.
type PredictionSet struct {
	ID                      string   `json:"id,omitempty"`
	DatasetID               string   `json:"datasetId,omitempty"`
	Name                    string   `json:"name,omitempty"`
	AnnotationsContents     []string `json:"annotationsContents,omitempty"`
	EvaluationResultContent JSON     `json:"evaluationResultContent,omitempty"`
	Audit
}

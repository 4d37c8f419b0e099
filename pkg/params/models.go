package params

import (
	"github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// GetModel looks up a model by id or, when ModelID is empty, by name.
type GetModel struct {
	DatasetID string
	ModelID   string
	Name      string
}

// Variables implements Builder.
func (p GetModel) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if err := idOrName(v, "modelId", p.ModelID, "name", p.Name); err != nil {
		return nil, err
	}
	return v, nil
}

// ListModels lists the models of a dataset.
type ListModels struct {
	DatasetID string
	Filter    *types.ModelFilter
	OrderBy   *types.ModelOrderBy
	Cursor    string
	Length    int
}

// Variables implements Builder.
func (p ListModels) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if p.Filter != nil {
		if err := wire(v, "filter", p.Filter); err != nil {
			return nil, err
		}
	}
	if err := orderBy(v, p.OrderBy); err != nil {
		return nil, err
	}
	if err := page(v, p.Cursor, p.Length, config.MaxPageLength); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateModel registers a model.
type CreateModel struct {
	DatasetID           string
	Name                string
	TaskType            types.ModelTaskType
	Description         string
	CustomDagID         string
	TotalDataCount      *int
	TrainDataCount      *int
	ValidationDataCount *int
	TrainingParameters  types.JSON
	TrainSliceID        string
	ValidationSliceID   string
	IsPinned            *bool
	ScoreKey            string
	ScoreValue          *float64
	ScoreUnit           string
	Contents            types.JSON
}

// Variables implements Builder.
func (p CreateModel) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "name", p.Name); err != nil {
		return nil, err
	}
	if err := requiredEnum(v, "taskType", p.TaskType); err != nil {
		return nil, err
	}
	optional(v, "description", p.Description)
	optional(v, "customDagId", p.CustomDagID)
	optionalPtr(v, "totalDataCount", p.TotalDataCount)
	optionalPtr(v, "trainDataCount", p.TrainDataCount)
	optionalPtr(v, "validationDataCount", p.ValidationDataCount)
	optionalJSON(v, "trainingParameters", p.TrainingParameters)
	optional(v, "trainSliceId", p.TrainSliceID)
	optional(v, "validationSliceId", p.ValidationSliceID)
	optionalPtr(v, "isPinned", p.IsPinned)
	optional(v, "scoreKey", p.ScoreKey)
	optionalPtr(v, "scoreValue", p.ScoreValue)
	optional(v, "scoreUnit", p.ScoreUnit)
	optionalJSON(v, "contents", p.Contents)
	return v, nil
}

// UpdateModel changes only the supplied fields of a model.
type UpdateModel struct {
	DatasetID           string
	ModelID             string
	Name                types.Field[string]
	Description         types.Field[string]
	Status              types.Field[types.ModelStatus]
	TaskType            types.Field[types.ModelTaskType]
	CustomDagID         types.Field[string]
	TotalDataCount      types.Field[int]
	TrainDataCount      types.Field[int]
	ValidationDataCount types.Field[int]
	TrainingParameters  types.Field[types.JSON]
	TrainSliceID        types.Field[string]
	ValidationSliceID   types.Field[string]
	IsPinned            types.Field[bool]
	ScoreKey            types.Field[string]
	ScoreValue          types.Field[float64]
	ScoreUnit           types.Field[string]
	Contents            types.Field[types.JSON]
}

// Variables implements Builder.
func (p UpdateModel) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "modelId", p.ModelID); err != nil {
		return nil, err
	}
	field(v, "name", p.Name)
	field(v, "description", p.Description)
	if err := enumField(v, "status", p.Status); err != nil {
		return nil, err
	}
	if err := enumField(v, "taskType", p.TaskType); err != nil {
		return nil, err
	}
	field(v, "customDagId", p.CustomDagID)
	field(v, "totalDataCount", p.TotalDataCount)
	field(v, "trainDataCount", p.TrainDataCount)
	field(v, "validationDataCount", p.ValidationDataCount)
	field(v, "trainingParameters", p.TrainingParameters)
	field(v, "trainSliceId", p.TrainSliceID)
	field(v, "validationSliceId", p.ValidationSliceID)
	field(v, "isPinned", p.IsPinned)
	field(v, "scoreKey", p.ScoreKey)
	field(v, "scoreValue", p.ScoreValue)
	field(v, "scoreUnit", p.ScoreUnit)
	field(v, "contents", p.Contents)
	return v, nil
}

// ModelRef identifies a model for delete, pin and unpin.
type ModelRef struct {
	DatasetID string
	ModelID   string
}

// Variables implements Builder.
func (p ModelRef) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "modelId", p.ModelID); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateTrainingReport attaches a training report to a model.
type CreateTrainingReport struct {
	DatasetID   string
	ModelID     string
	Name        string
	ContentID   string
	Description string
}

// Variables implements Builder.
func (p CreateTrainingReport) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "modelId", p.ModelID, "name", p.Name); err != nil {
		return nil, err
	}
	optional(v, "contentId", p.ContentID)
	optional(v, "description", p.Description)
	return v, nil
}

// UpdateTrainingReport changes only the supplied fields of a training report.
type UpdateTrainingReport struct {
	DatasetID        string
	ModelID          string
	TrainingReportID string
	Name             types.Field[string]
	ContentID        types.Field[string]
	Description      types.Field[string]
}

// Variables implements Builder.
func (p UpdateTrainingReport) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v,
		"datasetId", p.DatasetID,
		"modelId", p.ModelID,
		"trainingReportId", p.TrainingReportID,
	); err != nil {
		return nil, err
	}
	field(v, "name", p.Name)
	field(v, "contentId", p.ContentID)
	field(v, "description", p.Description)
	return v, nil
}

// DeleteTrainingReport removes a training report from a model.
type DeleteTrainingReport struct {
	DatasetID        string
	ModelID          string
	TrainingReportID string
}

// Variables implements Builder.
func (p DeleteTrainingReport) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v,
		"datasetId", p.DatasetID,
		"modelId", p.ModelID,
		"trainingReportId", p.TrainingReportID,
	); err != nil {
		return nil, err
	}
	return v, nil
}
